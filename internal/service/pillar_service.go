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

type PillarService interface {
	CreatePillar(ctx context.Context, req dto.CreatePillarRequest) (*model.Pillar, error)
	GetAllPillars(ctx context.Context) ([]dto.PillarResponse, error)
	UpdatePillar(ctx context.Context, id uuid.UUID, req dto.UpdatePillarRequest) (*model.Pillar, error)
	DeletePillar(ctx context.Context, id uuid.UUID) error
}

type pillarService struct {
	repo        repository.PillarRepository
	missionRepo repository.MissionRepository
}

func NewPillarService(repo repository.PillarRepository, missionRepo repository.MissionRepository) PillarService {
	return &pillarService{repo: repo, missionRepo: missionRepo}
}

func (s *pillarService) CreatePillar(ctx context.Context, req dto.CreatePillarRequest) (*model.Pillar, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", apperror.ErrInvalidInput)
	}

	existing, _ := s.repo.FindByName(ctx, name)
	if existing != nil {
		return nil, fmt.Errorf("%w: pillar %s already exists", apperror.ErrConflict, name)
	}

	pillar := &model.Pillar{Name: name, Icon: req.Icon}
	if err := s.repo.Create(ctx, pillar); err != nil {
		return nil, fmt.Errorf("%w: %v", apperror.ErrPersistence, err)
	}
	return pillar, nil
}

func (s *pillarService) GetAllPillars(ctx context.Context) ([]dto.PillarResponse, error) {
	pillars, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperror.ErrPersistence, err)
	}

	responses := make([]dto.PillarResponse, 0, len(pillars))
	for _, pillar := range pillars {
		responses = append(responses, dto.PillarResponse{
			ID:   pillar.ID,
			Name: pillar.Name,
			Icon: pillar.Icon,
		})
	}
	return responses, nil
}

func (s *pillarService) UpdatePillar(ctx context.Context, id uuid.UUID, req dto.UpdatePillarRequest) (*model.Pillar, error) {
	pillar, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", apperror.ErrPersistence, err)
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", apperror.ErrInvalidInput)
	}

	if name != pillar.Name {
		existing, _ := s.repo.FindByName(ctx, name)
		if existing != nil {
			return nil, fmt.Errorf("%w: pillar %s already exists", apperror.ErrConflict, name)
		}
	}

	pillar.Name = name
	if req.Icon != nil {
		pillar.Icon = req.Icon
	}
	if err := s.repo.Update(ctx, pillar); err != nil {
		return nil, fmt.Errorf("%w: %v", apperror.ErrPersistence, err)
	}
	return pillar, nil
}

func (s *pillarService) DeletePillar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.ErrNotFound
		}
		return fmt.Errorf("%w: %v", apperror.ErrPersistence, err)
	}

	count, err := s.missionRepo.CountByPillar(ctx, id)
	if err != nil {
		return fmt.Errorf("%w: %v", apperror.ErrPersistence, err)
	}
	if count > 0 {
		return fmt.Errorf("%w: pillar still owns %d missions", apperror.ErrConflict, count)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("%w: %v", apperror.ErrPersistence, err)
	}
	return nil
}
