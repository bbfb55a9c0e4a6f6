package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"anoa.com/plusgems/internal/dto"
	"anoa.com/plusgems/internal/model"
	"anoa.com/plusgems/internal/repository"
	"anoa.com/plusgems/pkg/apperror"
	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type NominationService interface {
	Create(ctx context.Context, input dto.CreateNominationInput) (*model.Nomination, error)
	Transition(ctx context.Context, id uuid.UUID, status string) error
	List(ctx context.Context, status string) (*dto.NominationListResponse, error)
}

type nominationService struct {
	repo        repository.NominationRepository
	heroRepo    repository.HeroRepository
	missionRepo repository.MissionRepository
	redisClient *redis.Client
	sanitizer   *bluemonday.Policy
}

func NewNominationService(
	repo repository.NominationRepository,
	heroRepo repository.HeroRepository,
	missionRepo repository.MissionRepository,
	redisClient *redis.Client,
) NominationService {
	return &nominationService{
		repo:        repo,
		heroRepo:    heroRepo,
		missionRepo: missionRepo,
		redisClient: redisClient,
		sanitizer:   bluemonday.StrictPolicy(),
	}
}

func (s *nominationService) Create(ctx context.Context, input dto.CreateNominationInput) (*model.Nomination, error) {
	if input.NominatorID == input.NomineeID {
		return nil, fmt.Errorf("%w: a hero cannot nominate themselves", apperror.ErrInvalidInput)
	}

	justification := strings.TrimSpace(s.sanitizer.Sanitize(input.Justification))
	if justification == "" {
		return nil, fmt.Errorf("%w: justification is required", apperror.ErrInvalidInput)
	}

	if _, err := s.heroRepo.FindByID(ctx, input.NominatorID); err != nil {
		return nil, refError(err, "nominator")
	}
	if _, err := s.heroRepo.FindByID(ctx, input.NomineeID); err != nil {
		return nil, refError(err, "nominee")
	}
	if _, err := s.missionRepo.FindByID(ctx, input.MissionID); err != nil {
		return nil, refError(err, "mission")
	}

	nomination := &model.Nomination{
		NominatorID:   input.NominatorID,
		NomineeID:     input.NomineeID,
		MissionID:     input.MissionID,
		Justification: justification,
		Evidence:      input.Evidence,
		Status:        model.StatusPending,
	}

	if err := s.repo.Create(ctx, nomination); err != nil {
		return nil, fmt.Errorf("%w: %v", apperror.ErrPersistence, err)
	}

	s.invalidateDashboard(ctx)
	return nomination, nil
}

func (s *nominationService) Transition(ctx context.Context, id uuid.UUID, status string) error {
	if !model.IsTerminalStatus(status) {
		return fmt.Errorf("%w: status must be approved or refused", apperror.ErrInvalidInput)
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return err
		}
		return fmt.Errorf("%w: %v", apperror.ErrPersistence, err)
	}

	s.invalidateDashboard(ctx)
	return nil
}

func (s *nominationService) List(ctx context.Context, status string) (*dto.NominationListResponse, error) {
	records, err := s.repo.ListRecords(ctx, repository.NominationFilter{})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperror.ErrPersistence, err)
	}

	counts := dto.NominationStatusCounts{Total: len(records)}
	filtered := records
	if status != "" {
		filtered = make([]model.NominationRecord, 0, len(records))
	}
	for _, rec := range records {
		switch rec.Status {
		case model.StatusPending:
			counts.Pending++
		case model.StatusApproved:
			counts.Approved++
		case model.StatusRefused:
			counts.Refused++
		}
		if status != "" && rec.Status == status {
			filtered = append(filtered, rec)
		}
	}

	return &dto.NominationListResponse{Data: filtered, Meta: counts}, nil
}

// invalidateDashboard drops the memoized record set so the next dashboard
// read sees the write immediately instead of after the TTL.
func (s *nominationService) invalidateDashboard(ctx context.Context) {
	if s.redisClient == nil {
		return
	}
	if err := s.redisClient.Del(ctx, dashboardRecordsKey).Err(); err != nil {
		log.Printf("failed to invalidate dashboard cache: %v", err)
	}
}

func refError(err error, field string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: %s does not exist", apperror.ErrInvalidInput, field)
	}
	return fmt.Errorf("%w: %v", apperror.ErrPersistence, err)
}
