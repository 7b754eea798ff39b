// Package memory holds the process-local stores backing the shelter API.
// State lives only for the lifetime of the process and is lost on restart.
package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/shelterworks/shelter-api/internal/core/domain"
	"github.com/shelterworks/shelter-api/internal/core/ports"
)

// AnimalStore is an in-memory animal repository. A single RWMutex serializes
// mutations, so batch creation assigns its whole id block atomically.
type AnimalStore struct {
	mu      sync.RWMutex
	animals []*domain.Animal
	nextID  int
}

// NewAnimalStore returns an empty store whose first assigned id is 1.
func NewAnimalStore() *AnimalStore {
	return &AnimalStore{nextID: 1}
}

// nextAvailableID computes max(counter, highest stored id + 1). The counter
// already holds the next id to assign, so sequential creates stay contiguous
// while records inserted with higher ids still push the assignment forward.
// Callers must hold mu.
func (s *AnimalStore) nextAvailableID() int {
	next := s.nextID
	for _, a := range s.animals {
		if a.ID >= next {
			next = a.ID + 1
		}
	}
	return next
}

func (s *AnimalStore) Create(_ context.Context, in ports.CreateAnimalInput) (*domain.Animal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	a := &domain.Animal{
		ID:        s.nextAvailableID(),
		Name:      in.Name,
		Species:   in.Species,
		Race:      in.Race,
		Gender:    in.Gender,
		Age:       in.Age,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.animals = append(s.animals, a)
	s.nextID = a.ID + 1

	return clone(a), nil
}

func (s *AnimalStore) CreateMany(_ context.Context, ins []ports.CreateAnimalInput) ([]*domain.Animal, error) {
	if len(ins) == 0 {
		return nil, domain.ErrEmptyBatch
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	start := s.nextAvailableID()

	created := make([]*domain.Animal, 0, len(ins))
	for i, in := range ins {
		a := &domain.Animal{
			ID:        start + i,
			Name:      in.Name,
			Species:   in.Species,
			Race:      in.Race,
			Gender:    in.Gender,
			Age:       in.Age,
			CreatedAt: now,
			UpdatedAt: now,
		}
		s.animals = append(s.animals, a)
		created = append(created, clone(a))
	}
	s.nextID = start + len(ins)

	return created, nil
}

func (s *AnimalStore) FindAll(_ context.Context) ([]*domain.Animal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot(), nil
}

func (s *AnimalStore) FindByID(_ context.Context, id int) (*domain.Animal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, a := range s.animals {
		if a.ID == id {
			return clone(a), nil
		}
	}
	return nil, domain.ErrAnimalNotFound
}

func (s *AnimalStore) Update(_ context.Context, id int, in ports.UpdateAnimalInput) (*domain.Animal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, a := range s.animals {
		if a.ID != id {
			continue
		}
		if in.Name != nil {
			a.Name = *in.Name
		}
		if in.Species != nil {
			a.Species = *in.Species
		}
		if in.Race != nil {
			a.Race = *in.Race
		}
		if in.Gender != nil {
			a.Gender = *in.Gender
		}
		if in.Age != nil {
			a.Age = *in.Age
		}
		a.UpdatedAt = time.Now().UTC()
		return clone(a), nil
	}
	return nil, domain.ErrAnimalNotFound
}

func (s *AnimalStore) Delete(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, a := range s.animals {
		if a.ID == id {
			s.animals = append(s.animals[:i], s.animals[i+1:]...)
			return nil
		}
	}
	return domain.ErrAnimalNotFound
}

func (s *AnimalStore) Search(_ context.Context, query string) ([]*domain.Animal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if query == "" {
		return s.snapshot(), nil
	}

	q := strings.ToLower(query)
	var matched []*domain.Animal
	for _, a := range s.animals {
		if containsFold(a.Name, q) || containsFold(a.Species, q) ||
			containsFold(a.Race, q) || containsFold(a.Gender, q) {
			matched = append(matched, clone(a))
		}
	}
	return matched, nil
}

// snapshot copies the collection in insertion order. Callers must hold mu.
func (s *AnimalStore) snapshot() []*domain.Animal {
	out := make([]*domain.Animal, 0, len(s.animals))
	for _, a := range s.animals {
		out = append(out, clone(a))
	}
	return out
}

func containsFold(field, loweredQuery string) bool {
	return strings.Contains(strings.ToLower(field), loweredQuery)
}

func clone(a *domain.Animal) *domain.Animal {
	c := *a
	return &c
}
