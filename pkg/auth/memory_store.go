package auth

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// MemoryStore is an in-memory IdentityStore for tests and local development.
type MemoryStore struct {
	mu         sync.RWMutex
	principals map[uuid.UUID]*Principal
	passwords  map[uuid.UUID][]byte
}

// NewMemoryStore creates an empty in-memory identity store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		principals: make(map[uuid.UUID]*Principal),
		passwords:  make(map[uuid.UUID][]byte),
	}
}

// Add registers a principal, optionally with a password for Authenticate.
func (s *MemoryStore) Add(p *Principal, password string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *p
	s.principals[p.ID] = &cp

	if password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
		if err != nil {
			return err
		}
		s.passwords[p.ID] = hash
	}

	return nil
}

func (s *MemoryStore) Lookup(ctx context.Context, userID uuid.UUID) (*Principal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.principals[userID]
	if !ok {
		return nil, ErrUserNotFound
	}

	cp := *p
	return &cp, nil
}

func (s *MemoryStore) Authenticate(ctx context.Context, email, password string) (*Principal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for id, p := range s.principals {
		if p.Email != email {
			continue
		}
		hash, ok := s.passwords[id]
		if !ok {
			break
		}
		if bcrypt.CompareHashAndPassword(hash, []byte(password)) != nil {
			break
		}
		cp := *p
		return &cp, nil
	}

	return nil, ErrInvalidCredentials
}
