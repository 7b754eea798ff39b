package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shelterworks/shelter-api/internal/core/domain"
	"github.com/shelterworks/shelter-api/internal/core/ports"
)

func animalInput(name string) ports.CreateAnimalInput {
	return ports.CreateAnimalInput{
		Name:    name,
		Species: "Dog",
		Race:    "Mongrel",
		Gender:  domain.GenderMale,
		Age:     2,
	}
}

func TestAnimalStore_Create_AssignsSequentialIDs(t *testing.T) {
	ctx := context.Background()
	store := NewAnimalStore()

	first, err := store.Create(ctx, animalInput("Rex"))
	require.NoError(t, err)
	second, err := store.Create(ctx, animalInput("Milo"))
	require.NoError(t, err)

	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 2, second.ID)
	assert.Equal(t, first.CreatedAt, first.UpdatedAt)
}

func TestAnimalStore_Create_NoGapsBetweenAssignments(t *testing.T) {
	ctx := context.Background()
	store := NewAnimalStore()

	var assigned []int
	for _, name := range []string{"Rex", "Milo", "Luna"} {
		a, err := store.Create(ctx, animalInput(name))
		require.NoError(t, err)
		assigned = append(assigned, a.ID)
	}
	assert.Equal(t, []int{1, 2, 3}, assigned)

	// A batch after single creates continues the sequence without a gap,
	// and so does the next single create after the batch.
	batch, err := store.CreateMany(ctx, []ports.CreateAnimalInput{
		animalInput("A"), animalInput("B"),
	})
	require.NoError(t, err)
	assert.Equal(t, []int{4, 5}, []int{batch[0].ID, batch[1].ID})

	next, err := store.Create(ctx, animalInput("Ziggy"))
	require.NoError(t, err)
	assert.Equal(t, 6, next.ID)
}

func TestAnimalStore_IDsNeverReused(t *testing.T) {
	ctx := context.Background()
	store := NewAnimalStore()

	var assigned []int
	for i := 0; i < 3; i++ {
		a, err := store.Create(ctx, animalInput("A"))
		require.NoError(t, err)
		assigned = append(assigned, a.ID)
	}

	// Delete everything, including the highest id ever assigned.
	for _, id := range assigned {
		require.NoError(t, store.Delete(ctx, id))
	}

	next, err := store.Create(ctx, animalInput("B"))
	require.NoError(t, err)
	for _, id := range assigned {
		assert.Greater(t, next.ID, id)
	}
}

func TestAnimalStore_CreateMany_ContiguousBlock(t *testing.T) {
	ctx := context.Background()
	store := NewAnimalStore()

	created, err := store.CreateMany(ctx, []ports.CreateAnimalInput{
		animalInput("A"), animalInput("B"), animalInput("C"),
	})
	require.NoError(t, err)
	require.Len(t, created, 3)

	assert.Equal(t, []int{created[0].ID, created[1].ID, created[2].ID}, []int{1, 2, 3})
	assert.Equal(t, "A", created[0].Name)
	assert.Equal(t, "C", created[2].Name)

	// All elements share the same creation instant.
	assert.Equal(t, created[0].CreatedAt, created[1].CreatedAt)
	assert.Equal(t, created[1].CreatedAt, created[2].CreatedAt)

	// The counter advanced past the whole block.
	next, err := store.Create(ctx, animalInput("D"))
	require.NoError(t, err)
	assert.Equal(t, 4, next.ID)
}

func TestAnimalStore_CreateMany_EmptyBatch(t *testing.T) {
	store := NewAnimalStore()

	_, err := store.CreateMany(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrEmptyBatch)
}

func TestAnimalStore_FindAll_ReturnsSnapshot(t *testing.T) {
	ctx := context.Background()
	store := NewAnimalStore()

	_, err := store.Create(ctx, animalInput("Rex"))
	require.NoError(t, err)

	all, err := store.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)

	// Mutating the snapshot must not leak into the store.
	all[0].Name = "Changed"
	stored, err := store.FindByID(ctx, all[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "Rex", stored.Name)
}

func TestAnimalStore_Update_PreservesIDAndCreatedAt(t *testing.T) {
	ctx := context.Background()
	store := NewAnimalStore()

	created, err := store.Create(ctx, animalInput("Rex"))
	require.NoError(t, err)

	name := "Max"
	age := 5
	updated, err := store.Update(ctx, created.ID, ports.UpdateAnimalInput{Name: &name, Age: &age})
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.Equal(t, "Max", updated.Name)
	assert.Equal(t, 5, updated.Age)
	assert.Equal(t, "Dog", updated.Species) // untouched field survives
	assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))
}

func TestAnimalStore_Update_NotFound(t *testing.T) {
	store := NewAnimalStore()

	name := "Ghost"
	_, err := store.Update(context.Background(), 42, ports.UpdateAnimalInput{Name: &name})
	assert.ErrorIs(t, err, domain.ErrAnimalNotFound)
}

func TestAnimalStore_Delete(t *testing.T) {
	ctx := context.Background()
	store := NewAnimalStore()

	created, err := store.Create(ctx, animalInput("Rex"))
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, created.ID))

	_, err = store.FindByID(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrAnimalNotFound)
	assert.ErrorIs(t, store.Delete(ctx, created.ID), domain.ErrAnimalNotFound)
}

func TestAnimalStore_Search(t *testing.T) {
	ctx := context.Background()
	store := NewAnimalStore()

	_, err := store.Create(ctx, ports.CreateAnimalInput{
		Name: "Rex", Species: "Dog", Race: "Shepherd", Gender: domain.GenderMale, Age: 4,
	})
	require.NoError(t, err)
	_, err = store.Create(ctx, ports.CreateAnimalInput{
		Name: "Whiskers", Species: "Cat", Race: "Tabby", Gender: domain.GenderFemale, Age: 2,
	})
	require.NoError(t, err)

	for _, q := range []string{"re", "RE"} {
		found, err := store.Search(ctx, q)
		require.NoError(t, err)
		require.NotEmpty(t, found, "query %q", q)
		assert.Equal(t, "Rex", found[0].Name)
	}

	// Matches against species, race and gender too.
	byRace, err := store.Search(ctx, "tab")
	require.NoError(t, err)
	require.Len(t, byRace, 1)
	assert.Equal(t, "Whiskers", byRace[0].Name)

	byGender, err := store.Search(ctx, "female")
	require.NoError(t, err)
	require.Len(t, byGender, 1)

	all, err := store.Search(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	none, err := store.Search(ctx, "zzz")
	require.NoError(t, err)
	assert.Empty(t, none)
}
