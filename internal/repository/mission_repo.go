package repository

import (
	"context"

	"anoa.com/plusgems/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MissionRepository interface {
	Create(ctx context.Context, mission *model.Mission) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Mission, error)
	FindAll(ctx context.Context, pillarID *uuid.UUID) ([]*model.Mission, error)
	Update(ctx context.Context, mission *model.Mission) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountByPillar(ctx context.Context, pillarID uuid.UUID) (int64, error)
}

type missionRepository struct {
	db *gorm.DB
}

func NewMissionRepository(db *gorm.DB) MissionRepository {
	return &missionRepository{db: db}
}

func (r *missionRepository) Create(ctx context.Context, mission *model.Mission) error {
	return r.db.WithContext(ctx).Create(mission).Error
}

func (r *missionRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Mission, error) {
	var mission model.Mission
	if err := r.db.WithContext(ctx).Preload("Pillar").First(&mission, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &mission, nil
}

func (r *missionRepository) FindAll(ctx context.Context, pillarID *uuid.UUID) ([]*model.Mission, error) {
	var missions []*model.Mission
	query := r.db.WithContext(ctx).Preload("Pillar").Order("crystal_reward DESC")

	if pillarID != nil {
		query = query.Where("pillar_id = ?", *pillarID)
	}

	if err := query.Find(&missions).Error; err != nil {
		return nil, err
	}
	return missions, nil
}

func (r *missionRepository) Update(ctx context.Context, mission *model.Mission) error {
	return r.db.WithContext(ctx).Save(mission).Error
}

func (r *missionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Mission{}, "id = ?", id).Error
}

func (r *missionRepository) CountByPillar(ctx context.Context, pillarID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Mission{}).
		Where("pillar_id = ?", pillarID).
		Count(&count).Error
	return count, err
}
