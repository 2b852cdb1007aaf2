package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/sention-aktivitus/klientportal-api/internal/models"
)

type NoteGormRepository struct {
	db *gorm.DB
}

func NewNoteGormRepository(db *gorm.DB) *NoteGormRepository {
	return &NoteGormRepository{db: db}
}

// --------------------------------------------------
// Client
// --------------------------------------------------

func (r *NoteGormRepository) GetClient(
	ctx context.Context,
	clientID string,
) (*models.Client, error) {

	var client models.Client
	if err := r.db.WithContext(ctx).First(&client, "id = ?", clientID).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

// --------------------------------------------------
// Note
// --------------------------------------------------

func (r *NoteGormRepository) CreateNote(
	ctx context.Context,
	n *models.Note,
) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *NoteGormRepository) GetNote(
	ctx context.Context,
	clientID string,
	noteID string,
) (*models.Note, error) {

	var n models.Note
	if err := r.db.WithContext(ctx).
		Where("id = ? AND client_id = ?", noteID, clientID).
		First(&n).Error; err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *NoteGormRepository) ListNotes(
	ctx context.Context,
	clientID string,
) ([]models.Note, error) {

	var notes []models.Note
	if err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("performed_at DESC").
		Find(&notes).Error; err != nil {
		return nil, err
	}
	return notes, nil
}

func (r *NoteGormRepository) DeleteNote(
	ctx context.Context,
	clientID string,
	noteID string,
) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND client_id = ?", noteID, clientID).
		Delete(&models.Note{}).Error
}
