package ports

import (
	"context"

	"github.com/shelterworks/shelter-api/internal/core/domain"
)

// AnimalService defines the use-case operations exposed to the HTTP layer.
type AnimalService interface {
	// List returns all animals, or the substring-search result when query is
	// non-empty.
	List(ctx context.Context, query string) ([]*domain.Animal, error)
	Get(ctx context.Context, id int) (*domain.Animal, error)
	Create(ctx context.Context, in CreateAnimalInput) (*domain.Animal, error)
	CreateMany(ctx context.Context, ins []CreateAnimalInput) ([]*domain.Animal, error)
	Update(ctx context.Context, id int, in UpdateAnimalInput) (*domain.Animal, error)
	Delete(ctx context.Context, id int) error
}
