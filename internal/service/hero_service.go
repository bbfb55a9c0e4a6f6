package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"anoa.com/plusgems/internal/dto"
	"anoa.com/plusgems/internal/model"
	"anoa.com/plusgems/internal/repository"
	"anoa.com/plusgems/pkg/apperror"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type HeroService interface {
	CreateHero(ctx context.Context, req dto.CreateHeroRequest) (*model.Hero, error)
	GetAllHeroes(ctx context.Context, filter dto.HeroFilter) ([]dto.HeroResponse, error)
	UpdateHero(ctx context.Context, id uuid.UUID, req dto.UpdateHeroRequest) (*model.Hero, error)
	DeleteHero(ctx context.Context, id uuid.UUID) error
}

type heroService struct {
	repo           repository.HeroRepository
	nominationRepo repository.NominationRepository
}

func NewHeroService(repo repository.HeroRepository, nominationRepo repository.NominationRepository) HeroService {
	return &heroService{repo: repo, nominationRepo: nominationRepo}
}

func (s *heroService) CreateHero(ctx context.Context, req dto.CreateHeroRequest) (*model.Hero, error) {
	name := strings.TrimSpace(req.Name)
	team := strings.TrimSpace(req.Team)
	if name == "" || team == "" {
		return nil, fmt.Errorf("%w: name and team are required", apperror.ErrInvalidInput)
	}

	existing, _ := s.repo.FindByName(ctx, name)
	if existing != nil {
		return nil, fmt.Errorf("%w: hero %s already exists", apperror.ErrConflict, name)
	}

	hero := &model.Hero{Name: name, Team: team}
	if err := s.repo.Create(ctx, hero); err != nil {
		return nil, fmt.Errorf("%w: %v", apperror.ErrPersistence, err)
	}
	return hero, nil
}

func (s *heroService) GetAllHeroes(ctx context.Context, filter dto.HeroFilter) ([]dto.HeroResponse, error) {
	heroes, err := s.repo.FindAll(ctx, filter.Team)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperror.ErrPersistence, err)
	}

	responses := make([]dto.HeroResponse, 0, len(heroes))
	for _, hero := range heroes {
		responses = append(responses, dto.HeroResponse{
			ID:        hero.ID,
			Name:      hero.Name,
			Team:      hero.Team,
			CreatedAt: hero.CreatedAt,
		})
	}
	return responses, nil
}

func (s *heroService) UpdateHero(ctx context.Context, id uuid.UUID, req dto.UpdateHeroRequest) (*model.Hero, error) {
	hero, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", apperror.ErrPersistence, err)
	}

	name := strings.TrimSpace(req.Name)
	team := strings.TrimSpace(req.Team)
	if name == "" || team == "" {
		return nil, fmt.Errorf("%w: name and team are required", apperror.ErrInvalidInput)
	}

	if name != hero.Name {
		existing, _ := s.repo.FindByName(ctx, name)
		if existing != nil {
			return nil, fmt.Errorf("%w: hero %s already exists", apperror.ErrConflict, name)
		}
	}

	hero.Name = name
	hero.Team = team
	if err := s.repo.Update(ctx, hero); err != nil {
		return nil, fmt.Errorf("%w: %v", apperror.ErrPersistence, err)
	}
	return hero, nil
}

func (s *heroService) DeleteHero(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.ErrNotFound
		}
		return fmt.Errorf("%w: %v", apperror.ErrPersistence, err)
	}

	count, err := s.nominationRepo.CountByHero(ctx, id)
	if err != nil {
		return fmt.Errorf("%w: %v", apperror.ErrPersistence, err)
	}
	if count > 0 {
		return fmt.Errorf("%w: hero is referenced by %d nominations", apperror.ErrConflict, count)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("%w: %v", apperror.ErrPersistence, err)
	}
	return nil
}
