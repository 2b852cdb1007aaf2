package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeQueue struct {
	keys []string
}

func (q *fakeQueue) Park(_ context.Context, key string) error {
	q.keys = append(q.keys, key)
	return nil
}

func (q *fakeQueue) Next(_ context.Context) (string, error) {
	if len(q.keys) == 0 {
		return "", nil
	}
	key := q.keys[0]
	q.keys = q.keys[1:]
	return key, nil
}

type fakeDeleter struct {
	deleted []string
	failOn  string
}

func (d *fakeDeleter) Delete(_ context.Context, key string) error {
	if key == d.failOn {
		return errors.New("backend unavailable")
	}
	d.deleted = append(d.deleted, key)
	return nil
}

func TestDrain_ReclaimsAllParkedBlobs(t *testing.T) {
	queue := &fakeQueue{keys: []string{"clients/c1/documents/a.pdf", "clients/c1/documents/b.pdf"}}
	deleter := &fakeDeleter{}

	NewReaper(queue, deleter, time.Minute).Drain(context.Background())

	assert.Equal(t, []string{"clients/c1/documents/a.pdf", "clients/c1/documents/b.pdf"}, deleter.deleted)
	assert.Empty(t, queue.keys)
}

func TestDrain_ReparksOnFailure(t *testing.T) {
	queue := &fakeQueue{keys: []string{"clients/c1/documents/a.pdf"}}
	deleter := &fakeDeleter{failOn: "clients/c1/documents/a.pdf"}

	NewReaper(queue, deleter, time.Minute).Drain(context.Background())

	assert.Empty(t, deleter.deleted)
	assert.Equal(t, []string{"clients/c1/documents/a.pdf"}, queue.keys, "failed key stays parked")
}

func TestDrain_EmptyQueueIsANoop(t *testing.T) {
	queue := &fakeQueue{}
	deleter := &fakeDeleter{}

	NewReaper(queue, deleter, time.Minute).Drain(context.Background())

	assert.Empty(t, deleter.deleted)
}
