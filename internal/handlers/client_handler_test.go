package handlers

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sention-aktivitus/klientportal-api/internal/models"
)

type recordingQueue struct {
	parked []string
	failOn string
}

func (q *recordingQueue) Park(_ context.Context, key string) error {
	if key == q.failOn {
		return errors.New("queue unavailable")
	}
	q.parked = append(q.parked, key)
	return nil
}

func (q *recordingQueue) Next(_ context.Context) (string, error) {
	return "", nil
}

func TestParkDocumentBlobs_QueuesEveryKey(t *testing.T) {
	q := &recordingQueue{}
	docs := []models.Document{
		{ID: "d1", StorageKey: "clients/c1/documents/d1-a.pdf"},
		{ID: "d2", StorageKey: "clients/c1/documents/d2-b.pdf"},
	}

	parkDocumentBlobs(context.Background(), q, docs)

	assert.Equal(t, []string{
		"clients/c1/documents/d1-a.pdf",
		"clients/c1/documents/d2-b.pdf",
	}, q.parked)
}

func TestParkDocumentBlobs_SkipsFailedKeyAndContinues(t *testing.T) {
	q := &recordingQueue{failOn: "clients/c1/documents/d2-b.pdf"}
	docs := []models.Document{
		{ID: "d1", StorageKey: "clients/c1/documents/d1-a.pdf"},
		{ID: "d2", StorageKey: "clients/c1/documents/d2-b.pdf"},
		{ID: "d3", StorageKey: "clients/c1/documents/d3-c.pdf"},
	}

	parkDocumentBlobs(context.Background(), q, docs)

	assert.Equal(t, []string{
		"clients/c1/documents/d1-a.pdf",
		"clients/c1/documents/d3-c.pdf",
	}, q.parked)
}
