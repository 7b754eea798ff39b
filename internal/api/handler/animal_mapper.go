package handler

import (
	"github.com/shelterworks/shelter-api/internal/core/domain"
	"github.com/shelterworks/shelter-api/internal/core/ports"
)

// --- Request → Service input ---

func toCreateInput(req createAnimalRequest) ports.CreateAnimalInput {
	in := ports.CreateAnimalInput{
		Name:    req.Name,
		Species: req.Species,
		Race:    req.Race,
		Gender:  req.Gender,
	}
	if req.Age != nil {
		in.Age = *req.Age
	}
	return in
}

func toUpdateInput(req updateAnimalRequest) ports.UpdateAnimalInput {
	return ports.UpdateAnimalInput{
		Name:    req.Name,
		Species: req.Species,
		Race:    req.Race,
		Gender:  req.Gender,
		Age:     req.Age,
	}
}

// --- Domain entity → HTTP response ---

func toAnimalResponse(a *domain.Animal) animalResponse {
	return animalResponse{
		ID:        a.ID,
		Name:      a.Name,
		Species:   a.Species,
		Race:      a.Race,
		Gender:    a.Gender,
		Age:       a.Age,
		CreatedAt: a.CreatedAt.UTC(),
		UpdatedAt: a.UpdatedAt.UTC(),
	}
}

func toAnimalListResponse(animals []*domain.Animal) []animalResponse {
	out := make([]animalResponse, len(animals))
	for i, a := range animals {
		out[i] = toAnimalResponse(a)
	}
	return out
}
