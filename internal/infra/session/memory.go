package session

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/okravchuk/matoblik/internal/domain"
)

// MemoryStore is an in-process session store used when no Redis is
// configured. Expired tokens are swept every ten minutes; lookups of expired
// tokens fail immediately regardless of the sweep.
type MemoryStore struct {
	cache *gocache.Cache
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		cache: gocache.New(gocache.NoExpiration, 10*time.Minute),
	}
}

func (s *MemoryStore) Create(ctx context.Context, token string, identityID uint, ttl time.Duration) error {
	s.cache.Set(token, identityID, ttl)
	return nil
}

func (s *MemoryStore) Lookup(ctx context.Context, token string) (uint, error) {
	value, ok := s.cache.Get(token)
	if !ok {
		return 0, domain.NotFoundError{Resource: "session"}
	}
	return value.(uint), nil
}

func (s *MemoryStore) Destroy(ctx context.Context, token string) error {
	s.cache.Delete(token)
	return nil
}
