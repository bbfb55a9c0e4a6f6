package repository

import (
	"context"

	"anoa.com/plusgems/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type HeroRepository interface {
	Create(ctx context.Context, hero *model.Hero) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Hero, error)
	FindByName(ctx context.Context, name string) (*model.Hero, error)
	FindAll(ctx context.Context, team string) ([]*model.Hero, error)
	Update(ctx context.Context, hero *model.Hero) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type heroRepository struct {
	db *gorm.DB
}

func NewHeroRepository(db *gorm.DB) HeroRepository {
	return &heroRepository{db: db}
}

func (r *heroRepository) Create(ctx context.Context, hero *model.Hero) error {
	return r.db.WithContext(ctx).Create(hero).Error
}

func (r *heroRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Hero, error) {
	var hero model.Hero
	if err := r.db.WithContext(ctx).First(&hero, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &hero, nil
}

func (r *heroRepository) FindByName(ctx context.Context, name string) (*model.Hero, error) {
	var hero model.Hero
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&hero).Error; err != nil {
		return nil, err
	}
	return &hero, nil
}

func (r *heroRepository) FindAll(ctx context.Context, team string) ([]*model.Hero, error) {
	var heroes []*model.Hero
	query := r.db.WithContext(ctx).Order("name")

	if team != "" {
		query = query.Where("team = ?", team)
	}

	if err := query.Find(&heroes).Error; err != nil {
		return nil, err
	}
	return heroes, nil
}

func (r *heroRepository) Update(ctx context.Context, hero *model.Hero) error {
	return r.db.WithContext(ctx).Save(hero).Error
}

func (r *heroRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Hero{}, "id = ?", id).Error
}
