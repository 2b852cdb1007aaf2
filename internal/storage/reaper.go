package storage

import (
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
)

// Document deletion is metadata-first: the database row goes away in the
// request, the blob key is parked here, and the reaper reclaims the blob
// later. A crash between the two steps leaves a parked key, never a
// dangling metadata record.

const pendingDeletionsKey = "documents:pending_deletion"

type DeletionQueue interface {
	Park(ctx context.Context, key string) error
	Next(ctx context.Context) (string, error)
}

type RedisDeletionQueue struct {
	rdb *redis.Client
}

func NewRedisDeletionQueue(rdb *redis.Client) *RedisDeletionQueue {
	return &RedisDeletionQueue{rdb: rdb}
}

func (q *RedisDeletionQueue) Park(ctx context.Context, key string) error {
	return q.rdb.RPush(ctx, pendingDeletionsKey, key).Err()
}

// Next pops one parked key, or returns "" when the queue is empty.
func (q *RedisDeletionQueue) Next(ctx context.Context) (string, error) {
	key, err := q.rdb.LPop(ctx, pendingDeletionsKey).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return key, nil
}

type blobDeleter interface {
	Delete(ctx context.Context, key string) error
}

type Reaper struct {
	queue    DeletionQueue
	blobs    blobDeleter
	interval time.Duration
}

func NewReaper(queue DeletionQueue, blobs blobDeleter, interval time.Duration) *Reaper {
	return &Reaper{
		queue:    queue,
		blobs:    blobs,
		interval: interval,
	}
}

// Run drains the queue on every tick until ctx is cancelled.
func (r *Reaper) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.Drain(ctx)
		}
	}
}

// Drain reclaims every parked blob. A failed delete re-parks the key for
// the next round instead of dropping it.
func (r *Reaper) Drain(ctx context.Context) {
	for {
		key, err := r.queue.Next(ctx)
		if err != nil {
			log.Println("deletion queue error:", err)
			return
		}
		if key == "" {
			return
		}

		if err := r.blobs.Delete(ctx, key); err != nil {
			log.Printf("failed to reclaim blob %s: %v", key, err)
			if err := r.queue.Park(ctx, key); err != nil {
				log.Println("failed to re-park blob key:", err)
			}
			return
		}
	}
}
