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

type MissionService interface {
	CreateMission(ctx context.Context, req dto.CreateMissionRequest) (*model.Mission, error)
	GetCrystalMap(ctx context.Context) ([]dto.CrystalMapEntry, error)
	UpdateMission(ctx context.Context, id uuid.UUID, req dto.UpdateMissionRequest) (*model.Mission, error)
	DeleteMission(ctx context.Context, id uuid.UUID) error
}

type missionService struct {
	repo           repository.MissionRepository
	pillarRepo     repository.PillarRepository
	nominationRepo repository.NominationRepository
}

func NewMissionService(
	repo repository.MissionRepository,
	pillarRepo repository.PillarRepository,
	nominationRepo repository.NominationRepository,
) MissionService {
	return &missionService{repo: repo, pillarRepo: pillarRepo, nominationRepo: nominationRepo}
}

func (s *missionService) CreateMission(ctx context.Context, req dto.CreateMissionRequest) (*model.Mission, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", apperror.ErrInvalidInput)
	}
	if req.CrystalReward <= 0 {
		return nil, fmt.Errorf("%w: crystal reward must be positive", apperror.ErrInvalidInput)
	}

	// The pillar must exist before any mission references it.
	if _, err := s.pillarRepo.FindByID(ctx, req.PillarID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: pillar does not exist", apperror.ErrInvalidInput)
		}
		return nil, fmt.Errorf("%w: %v", apperror.ErrPersistence, err)
	}

	mission := &model.Mission{
		Name:          name,
		Description:   strings.TrimSpace(req.Description),
		CrystalReward: req.CrystalReward,
		PillarID:      req.PillarID,
	}
	if err := s.repo.Create(ctx, mission); err != nil {
		return nil, fmt.Errorf("%w: %v", apperror.ErrPersistence, err)
	}
	return mission, nil
}

// GetCrystalMap returns every pillar with its missions ordered by reward
// descending. Pillars without missions are kept so the map stays complete.
func (s *missionService) GetCrystalMap(ctx context.Context) ([]dto.CrystalMapEntry, error) {
	pillars, err := s.pillarRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperror.ErrPersistence, err)
	}
	missions, err := s.repo.FindAll(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperror.ErrPersistence, err)
	}

	byPillar := make(map[uuid.UUID][]dto.MissionResponse)
	for _, mission := range missions {
		byPillar[mission.PillarID] = append(byPillar[mission.PillarID], dto.MissionResponse{
			ID:            mission.ID,
			Name:          mission.Name,
			Description:   mission.Description,
			CrystalReward: mission.CrystalReward,
			PillarID:      mission.PillarID,
			PillarName:    mission.Pillar.Name,
		})
	}

	entries := make([]dto.CrystalMapEntry, 0, len(pillars))
	for _, pillar := range pillars {
		missionList := byPillar[pillar.ID]
		if missionList == nil {
			missionList = []dto.MissionResponse{}
		}
		entries = append(entries, dto.CrystalMapEntry{
			Pillar: dto.PillarResponse{
				ID:   pillar.ID,
				Name: pillar.Name,
				Icon: pillar.Icon,
			},
			Missions: missionList,
		})
	}
	return entries, nil
}

func (s *missionService) UpdateMission(ctx context.Context, id uuid.UUID, req dto.UpdateMissionRequest) (*model.Mission, error) {
	mission, err := s.repo.FindByID(ctx, id)
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
	if req.CrystalReward <= 0 {
		return nil, fmt.Errorf("%w: crystal reward must be positive", apperror.ErrInvalidInput)
	}

	if req.PillarID != mission.PillarID {
		if _, err := s.pillarRepo.FindByID(ctx, req.PillarID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: pillar does not exist", apperror.ErrInvalidInput)
			}
			return nil, fmt.Errorf("%w: %v", apperror.ErrPersistence, err)
		}
	}

	// Reward changes re-price historical aggregates: nominations carry no
	// snapshot, totals are always derived from the current mission reward.
	mission.Name = name
	mission.Description = strings.TrimSpace(req.Description)
	mission.CrystalReward = req.CrystalReward
	mission.PillarID = req.PillarID
	mission.Pillar = model.Pillar{} // keep Save from writing the preloaded association
	if err := s.repo.Update(ctx, mission); err != nil {
		return nil, fmt.Errorf("%w: %v", apperror.ErrPersistence, err)
	}
	return mission, nil
}

func (s *missionService) DeleteMission(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.ErrNotFound
		}
		return fmt.Errorf("%w: %v", apperror.ErrPersistence, err)
	}

	count, err := s.nominationRepo.CountByMission(ctx, id)
	if err != nil {
		return fmt.Errorf("%w: %v", apperror.ErrPersistence, err)
	}
	if count > 0 {
		return fmt.Errorf("%w: mission is referenced by %d nominations", apperror.ErrConflict, count)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("%w: %v", apperror.ErrPersistence, err)
	}
	return nil
}
