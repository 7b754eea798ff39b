package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/shelterworks/shelter-api/internal/api/metrics"
	"github.com/shelterworks/shelter-api/internal/core/domain"
	"github.com/shelterworks/shelter-api/internal/core/ports"
)

// AnimalService implements the animal use cases over the repository port.
type AnimalService struct {
	repo ports.AnimalRepository
	log  zerolog.Logger
}

func NewAnimalService(repo ports.AnimalRepository, log zerolog.Logger) *AnimalService {
	return &AnimalService{repo: repo, log: log}
}

func (s *AnimalService) List(ctx context.Context, query string) ([]*domain.Animal, error) {
	if query == "" {
		return s.repo.FindAll(ctx)
	}
	metrics.AnimalSearchesTotal.Inc()
	return s.repo.Search(ctx, query)
}

func (s *AnimalService) Get(ctx context.Context, id int) (*domain.Animal, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *AnimalService) Create(ctx context.Context, in ports.CreateAnimalInput) (*domain.Animal, error) {
	a, err := s.repo.Create(ctx, in)
	if err != nil {
		return nil, err
	}

	metrics.AnimalsCreatedTotal.WithLabelValues("single").Inc()
	s.log.Info().Int("id", a.ID).Str("name", a.Name).Str("species", a.Species).Msg("animal created")

	return a, nil
}

func (s *AnimalService) CreateMany(ctx context.Context, ins []ports.CreateAnimalInput) ([]*domain.Animal, error) {
	created, err := s.repo.CreateMany(ctx, ins)
	if err != nil {
		return nil, err
	}

	metrics.AnimalsCreatedTotal.WithLabelValues("batch").Add(float64(len(created)))
	s.log.Info().Int("count", len(created)).Int("first_id", created[0].ID).Msg("animals created in batch")

	return created, nil
}

func (s *AnimalService) Update(ctx context.Context, id int, in ports.UpdateAnimalInput) (*domain.Animal, error) {
	a, err := s.repo.Update(ctx, id, in)
	if err != nil {
		return nil, err
	}

	s.log.Info().Int("id", id).Msg("animal updated")
	return a, nil
}

func (s *AnimalService) Delete(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	metrics.AnimalsDeletedTotal.Inc()
	s.log.Info().Int("id", id).Msg("animal deleted")
	return nil
}
