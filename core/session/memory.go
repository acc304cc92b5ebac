package session

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// MemoryStore keeps sessions in process memory with a TTL. Suitable for
// development and single-instance deployments.
type MemoryStore struct {
	cache *gocache.Cache
	ttl   time.Duration
}

// NewMemoryStore creates an in-memory store. Sessions expire after ttl
// of inactivity; expired entries are swept twice per ttl.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &MemoryStore{
		cache: gocache.New(ttl, ttl/2),
		ttl:   ttl,
	}
}

func (s *MemoryStore) Load(_ context.Context, id string) (Session, bool, error) {
	v, ok := s.cache.Get(id)
	if !ok {
		return Session{}, false, nil
	}
	return v.(Session), true, nil
}

func (s *MemoryStore) Save(_ context.Context, sess Session) error {
	s.cache.Set(sess.ID, sess, s.ttl)
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.cache.Delete(id)
	return nil
}
