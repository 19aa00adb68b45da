package cache

import (
	"github.com/google/uuid"
	"github.com/puzpuzpuz/xsync/v3"
)

// UnreadCounter keeps per-user unread-notification counts in process.
// It is a plain invalidation cache: writes to the notifications table drop
// the counter, the next read primes it from the repository.
type UnreadCounter struct {
	counts *xsync.MapOf[uuid.UUID, int64]
}

func NewUnreadCounter() *UnreadCounter {
	return &UnreadCounter{counts: xsync.NewMapOf[uuid.UUID, int64]()}
}

func (c *UnreadCounter) Get(userID uuid.UUID) (int64, bool) {
	return c.counts.Load(userID)
}

func (c *UnreadCounter) Set(userID uuid.UUID, count int64) {
	c.counts.Store(userID, count)
}

func (c *UnreadCounter) Invalidate(userID uuid.UUID) {
	c.counts.Delete(userID)
}
