package service

import (
	"context"
	"testing"

	"anoa.com/plusgems/internal/dto"
	"anoa.com/plusgems/internal/model"
	"anoa.com/plusgems/pkg/apperror"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateHero(t *testing.T) {
	svc := NewHeroService(newFakeHeroRepo(), newFakeNominationRepo())

	hero, err := svc.CreateHero(context.Background(), dto.CreateHeroRequest{
		Name: "  Ana Souza  ",
		Team: "Marketing",
	})

	require.NoError(t, err)
	assert.Equal(t, "Ana Souza", hero.Name)
	assert.Equal(t, "Marketing", hero.Team)
	assert.NotEqual(t, uuid.Nil, hero.ID)
}

func TestCreateHeroRejectsBlankFields(t *testing.T) {
	svc := NewHeroService(newFakeHeroRepo(), newFakeNominationRepo())

	_, err := svc.CreateHero(context.Background(), dto.CreateHeroRequest{Name: "   ", Team: "Sales"})
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)

	_, err = svc.CreateHero(context.Background(), dto.CreateHeroRequest{Name: "Ana", Team: ""})
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
}

func TestCreateHeroDuplicateName(t *testing.T) {
	svc := NewHeroService(
		newFakeHeroRepo(&model.Hero{Name: "Ana Souza", Team: "Marketing"}),
		newFakeNominationRepo(),
	)

	_, err := svc.CreateHero(context.Background(), dto.CreateHeroRequest{
		Name: "Ana Souza",
		Team: "Engineering",
	})

	assert.ErrorIs(t, err, apperror.ErrConflict)
}

func TestUpdateHero(t *testing.T) {
	hero := &model.Hero{Name: "Ana Souza", Team: "Marketing"}
	svc := NewHeroService(newFakeHeroRepo(hero), newFakeNominationRepo())

	updated, err := svc.UpdateHero(context.Background(), hero.ID, dto.UpdateHeroRequest{
		Name: "Ana Souza",
		Team: "Sales",
	})

	require.NoError(t, err)
	assert.Equal(t, "Sales", updated.Team)
}

func TestUpdateHeroNotFound(t *testing.T) {
	svc := NewHeroService(newFakeHeroRepo(), newFakeNominationRepo())

	_, err := svc.UpdateHero(context.Background(), uuid.New(), dto.UpdateHeroRequest{
		Name: "Ana",
		Team: "Sales",
	})

	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestDeleteHeroRestrictedByNominations(t *testing.T) {
	hero := &model.Hero{Name: "Ana Souza", Team: "Marketing"}
	heroRepo := newFakeHeroRepo(hero)
	nominationRepo := newFakeNominationRepo()
	require.NoError(t, nominationRepo.Create(context.Background(), &model.Nomination{
		NominatorID: hero.ID,
		NomineeID:   uuid.New(),
		MissionID:   uuid.New(),
		Status:      model.StatusPending,
	}))

	svc := NewHeroService(heroRepo, nominationRepo)

	err := svc.DeleteHero(context.Background(), hero.ID)
	assert.ErrorIs(t, err, apperror.ErrConflict)

	// The hero is untouched after the refused delete.
	_, err = heroRepo.FindByID(context.Background(), hero.ID)
	assert.NoError(t, err)
}

func TestDeleteHero(t *testing.T) {
	hero := &model.Hero{Name: "Ana Souza", Team: "Marketing"}
	heroRepo := newFakeHeroRepo(hero)
	svc := NewHeroService(heroRepo, newFakeNominationRepo())

	require.NoError(t, svc.DeleteHero(context.Background(), hero.ID))

	_, err := heroRepo.FindByID(context.Background(), hero.ID)
	assert.Error(t, err)
}
