package repository

import (
	"context"

	"anoa.com/plusgems/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PillarRepository interface {
	Create(ctx context.Context, pillar *model.Pillar) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Pillar, error)
	FindByName(ctx context.Context, name string) (*model.Pillar, error)
	FindAll(ctx context.Context) ([]*model.Pillar, error)
	Update(ctx context.Context, pillar *model.Pillar) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type pillarRepository struct {
	db *gorm.DB
}

func NewPillarRepository(db *gorm.DB) PillarRepository {
	return &pillarRepository{db: db}
}

func (r *pillarRepository) Create(ctx context.Context, pillar *model.Pillar) error {
	return r.db.WithContext(ctx).Create(pillar).Error
}

func (r *pillarRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Pillar, error) {
	var pillar model.Pillar
	if err := r.db.WithContext(ctx).First(&pillar, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &pillar, nil
}

func (r *pillarRepository) FindByName(ctx context.Context, name string) (*model.Pillar, error) {
	var pillar model.Pillar
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&pillar).Error; err != nil {
		return nil, err
	}
	return &pillar, nil
}

func (r *pillarRepository) FindAll(ctx context.Context) ([]*model.Pillar, error) {
	var pillars []*model.Pillar
	if err := r.db.WithContext(ctx).Order("name").Find(&pillars).Error; err != nil {
		return nil, err
	}
	return pillars, nil
}

func (r *pillarRepository) Update(ctx context.Context, pillar *model.Pillar) error {
	return r.db.WithContext(ctx).Save(pillar).Error
}

func (r *pillarRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Pillar{}, "id = ?", id).Error
}
