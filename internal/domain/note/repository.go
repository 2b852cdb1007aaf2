package note

import (
	"context"

	"github.com/sention-aktivitus/klientportal-api/internal/models"
)

type Repository interface {
	// -------- Client --------
	GetClient(
		ctx context.Context,
		clientID string,
	) (*models.Client, error)

	// -------- Note --------
	CreateNote(
		ctx context.Context,
		n *models.Note,
	) error

	GetNote(
		ctx context.Context,
		clientID string,
		noteID string,
	) (*models.Note, error)

	// ListNotes returns the client's notes sorted by performed-at
	// descending, newest event first.
	ListNotes(
		ctx context.Context,
		clientID string,
	) ([]models.Note, error)

	DeleteNote(
		ctx context.Context,
		clientID string,
		noteID string,
	) error
}
