package ports

import (
	"context"

	"github.com/shelterworks/shelter-api/internal/core/domain"
)

// CreateAnimalInput carries the fields accepted when creating an animal.
// The store assigns id, createdAt and updatedAt.
type CreateAnimalInput struct {
	Name    string
	Species string
	Race    string
	Gender  string
	Age     int
}

// UpdateAnimalInput carries a partial update. Nil fields are left untouched;
// id and createdAt can never change.
type UpdateAnimalInput struct {
	Name    *string
	Species *string
	Race    *string
	Gender  *string
	Age     *int
}

// AnimalRepository owns the animal collection. No other component mutates it.
type AnimalRepository interface {
	Create(ctx context.Context, in CreateAnimalInput) (*domain.Animal, error)
	// CreateMany assigns a contiguous ascending block of ids, one per element
	// in input order, all stamped with the same instant. Fails with
	// domain.ErrEmptyBatch on empty input.
	CreateMany(ctx context.Context, ins []CreateAnimalInput) ([]*domain.Animal, error)
	// FindAll returns a snapshot in insertion order; mutating the returned
	// slice or records must not affect the store.
	FindAll(ctx context.Context) ([]*domain.Animal, error)
	FindByID(ctx context.Context, id int) (*domain.Animal, error)
	Update(ctx context.Context, id int, in UpdateAnimalInput) (*domain.Animal, error)
	Delete(ctx context.Context, id int) error
	// Search matches the query as a case-insensitive substring against name,
	// species, race and gender. An empty query returns every record.
	Search(ctx context.Context, query string) ([]*domain.Animal, error)
}
