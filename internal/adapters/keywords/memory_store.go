package keywords

import (
	"context"
	"sort"
	"sync"

	"github.com/mikey/avana-extractor/internal/core"
	"go.uber.org/zap"
)

// MemoryStore is an in-memory implementation of the KeywordRepository interface
type MemoryStore struct {
	profiles map[string]*core.RoleConfig
	mu       sync.RWMutex
	logger   *zap.Logger
}

// NewMemoryStore creates a new in-memory keyword store
func NewMemoryStore(logger *zap.Logger) *MemoryStore {
	return &MemoryStore{
		profiles: make(map[string]*core.RoleConfig),
		logger:   logger,
	}
}

// Get retrieves a profile by name
func (s *MemoryStore) Get(ctx context.Context, name string) (*core.RoleConfig, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	profile, ok := s.profiles[name]
	if !ok {
		return nil, ErrNotFound
	}

	return copyProfile(profile), nil
}

// Save creates or replaces a profile
func (s *MemoryStore) Save(ctx context.Context, profile *core.RoleConfig) error {
	stored, err := prepare(profile)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.profiles[stored.Name] = stored
	s.logger.Debug("Saved keyword profile",
		zap.String("name", stored.Name),
		zap.Int("keywords", len(stored.Keywords)))
	return nil
}

// Delete removes a profile
func (s *MemoryStore) Delete(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.profiles[name]; !ok {
		return ErrNotFound
	}
	delete(s.profiles, name)
	return nil
}

// List returns all profile names in alphabetical order
func (s *MemoryStore) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.profiles))
	for name := range s.profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func copyProfile(p *core.RoleConfig) *core.RoleConfig {
	kw := make([]string, len(p.Keywords))
	copy(kw, p.Keywords)
	return &core.RoleConfig{Name: p.Name, Keywords: kw, UpdatedAt: p.UpdatedAt}
}
