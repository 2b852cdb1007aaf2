package note

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/sention-aktivitus/klientportal-api/internal/audit"
	"github.com/sention-aktivitus/klientportal-api/internal/httperr"
	"github.com/sention-aktivitus/klientportal-api/internal/models"
)

// fakeRepo keeps notes in memory, newest performed-at first on list.
type fakeRepo struct {
	clients map[string]*models.Client
	notes   map[string]*models.Note
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		clients: map[string]*models.Client{
			"c1": {ID: "c1", Name: "Anna Andersson"},
		},
		notes: map[string]*models.Note{},
	}
}

func (r *fakeRepo) GetClient(_ context.Context, clientID string) (*models.Client, error) {
	c, ok := r.clients[clientID]
	if !ok {
		return nil, httperr.ErrBusiness("client_not_found")
	}
	return c, nil
}

func (r *fakeRepo) CreateNote(_ context.Context, n *models.Note) error {
	r.notes[n.ID] = n
	return nil
}

func (r *fakeRepo) GetNote(_ context.Context, clientID, noteID string) (*models.Note, error) {
	n, ok := r.notes[noteID]
	if !ok || n.ClientID != clientID {
		return nil, httperr.ErrBusiness("note_not_found")
	}
	return n, nil
}

func (r *fakeRepo) ListNotes(_ context.Context, clientID string) ([]models.Note, error) {
	var out []models.Note
	for _, n := range r.notes {
		if n.ClientID == clientID {
			out = append(out, *n)
		}
	}
	return out, nil
}

func (r *fakeRepo) DeleteNote(_ context.Context, clientID, noteID string) error {
	delete(r.notes, noteID)
	return nil
}

type noopSink struct{}

func (noopSink) Log(*string, string, string, *string, any) error { return nil }

func testDispatcher() *audit.Dispatcher {
	return audit.NewDispatcher(noopSink{})
}

func testUser(t *testing.T, id, email, name, password string) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &models.User{ID: id, Email: email, DisplayName: name, PasswordHash: string(hash)}
}

var noon = time.Date(2024, time.May, 15, 9, 30, 0, 0, time.UTC)

func TestCreateNote_TrimsAndStamps(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCreateNote(repo, testDispatcher())
	author := testUser(t, "u1", "lena@sention.se", "Lena", "hemlig")

	n, err := uc.Execute(context.Background(), CreateNoteInput{
		ClientID: "c1",
		Text:     "  Samtal om träningsupplägg  ",
	}, author, noon)

	require.NoError(t, err)
	assert.Equal(t, "Samtal om träningsupplägg", n.Text)
	assert.Equal(t, "u1", n.AuthorID)
	assert.Equal(t, "Lena", n.AuthorName)
	assert.Equal(t, "lena@sention.se", n.AuthorEmail)
	assert.NotEmpty(t, n.ID)
}

func TestCreateNote_PerformedAtDefaultsToTodayNoon(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCreateNote(repo, testDispatcher())
	author := testUser(t, "u1", "lena@sention.se", "", "hemlig")

	n, err := uc.Execute(context.Background(), CreateNoteInput{
		ClientID: "c1",
		Text:     "Uppföljning",
	}, author, noon)

	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.May, 15, 12, 0, 0, 0, time.UTC), n.PerformedAt)
}

func TestCreateNote_ExplicitPerformedDateAtNoon(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCreateNote(repo, testDispatcher())
	author := testUser(t, "u1", "lena@sention.se", "", "hemlig")

	n, err := uc.Execute(context.Background(), CreateNoteInput{
		ClientID:      "c1",
		Text:          "Uppföljning",
		PerformedDate: "2024-05-02",
	}, author, noon)

	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.May, 2, 12, 0, 0, 0, time.UTC), n.PerformedAt)
}

func TestCreateNote_AuthorNameFallsBackToEmailLocalPart(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCreateNote(repo, testDispatcher())
	author := testUser(t, "u1", "lena@sention.se", "", "hemlig")

	n, err := uc.Execute(context.Background(), CreateNoteInput{
		ClientID: "c1",
		Text:     "Uppföljning",
	}, author, noon)

	require.NoError(t, err)
	assert.Equal(t, "lena", n.AuthorName)
}

func TestCreateNote_RejectsEmptyText(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCreateNote(repo, testDispatcher())
	author := testUser(t, "u1", "lena@sention.se", "", "hemlig")

	_, err := uc.Execute(context.Background(), CreateNoteInput{
		ClientID: "c1",
		Text:     "   ",
	}, author, noon)

	assert.True(t, httperr.IsBusiness(err, "empty_note"))
}

func TestCreateNote_UnknownClient(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCreateNote(repo, testDispatcher())
	author := testUser(t, "u1", "lena@sention.se", "", "hemlig")

	_, err := uc.Execute(context.Background(), CreateNoteInput{
		ClientID: "missing",
		Text:     "Uppföljning",
	}, author, noon)

	assert.True(t, httperr.IsBusiness(err, "client_not_found"))
}

func TestDeleteNote_AuthorWithCorrectPassword(t *testing.T) {
	repo := newFakeRepo()
	author := testUser(t, "u1", "lena@sention.se", "Lena", "hemlig")
	repo.notes["n1"] = &models.Note{ID: "n1", ClientID: "c1", AuthorID: "u1"}

	err := NewDeleteNote(repo, testDispatcher()).
		Execute(context.Background(), "c1", "n1", author, "hemlig")

	require.NoError(t, err)
	notes, _ := repo.ListNotes(context.Background(), "c1")
	assert.Empty(t, notes)
}

func TestDeleteNote_NonAuthorIsRejected(t *testing.T) {
	repo := newFakeRepo()
	actor := testUser(t, "u2", "johan@sention.se", "Johan", "hemlig")
	repo.notes["n1"] = &models.Note{ID: "n1", ClientID: "c1", AuthorID: "u1"}

	err := NewDeleteNote(repo, testDispatcher()).
		Execute(context.Background(), "c1", "n1", actor, "hemlig")

	assert.True(t, httperr.IsBusiness(err, "not_note_author"))

	// The note must survive the rejected attempt.
	notes, _ := repo.ListNotes(context.Background(), "c1")
	assert.Len(t, notes, 1)
}

func TestDeleteNote_WrongPasswordAborts(t *testing.T) {
	repo := newFakeRepo()
	author := testUser(t, "u1", "lena@sention.se", "Lena", "hemlig")
	repo.notes["n1"] = &models.Note{ID: "n1", ClientID: "c1", AuthorID: "u1"}

	err := NewDeleteNote(repo, testDispatcher()).
		Execute(context.Background(), "c1", "n1", author, "fel-lösenord")

	assert.True(t, httperr.IsBusiness(err, "reauthentication_failed"))

	notes, _ := repo.ListNotes(context.Background(), "c1")
	assert.Len(t, notes, 1)
}

func TestDeleteNote_EmptyPassword(t *testing.T) {
	repo := newFakeRepo()
	author := testUser(t, "u1", "lena@sention.se", "Lena", "hemlig")
	repo.notes["n1"] = &models.Note{ID: "n1", ClientID: "c1", AuthorID: "u1"}

	err := NewDeleteNote(repo, testDispatcher()).
		Execute(context.Background(), "c1", "n1", author, "")

	assert.True(t, httperr.IsBusiness(err, "password_required"))
}
