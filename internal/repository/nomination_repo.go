package repository

import (
	"context"
	"time"

	"anoa.com/plusgems/internal/model"
	"anoa.com/plusgems/pkg/apperror"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NominationFilter narrows the denormalized record listing. Zero values mean
// "no restriction".
type NominationFilter struct {
	Status string
	From   *time.Time
	To     *time.Time
}

type NominationRepository interface {
	Create(ctx context.Context, nomination *model.Nomination) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Nomination, error)
	// UpdateStatus sets the status column atomically. Returns
	// apperror.ErrNotFound when no row matches the id.
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
	// ListRecords returns nominations joined with both hero roles, mission
	// and pillar, most recent first.
	ListRecords(ctx context.Context, filter NominationFilter) ([]model.NominationRecord, error)
	CountByHero(ctx context.Context, heroID uuid.UUID) (int64, error)
	CountByMission(ctx context.Context, missionID uuid.UUID) (int64, error)
}

type nominationRepository struct {
	db *gorm.DB
}

func NewNominationRepository(db *gorm.DB) NominationRepository {
	return &nominationRepository{db: db}
}

func (r *nominationRepository) Create(ctx context.Context, nomination *model.Nomination) error {
	return r.db.WithContext(ctx).Create(nomination).Error
}

func (r *nominationRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Nomination, error) {
	var nomination model.Nomination
	if err := r.db.WithContext(ctx).First(&nomination, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &nomination, nil
}

func (r *nominationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	result := r.db.WithContext(ctx).Model(&model.Nomination{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperror.ErrNotFound
	}
	return nil
}

func (r *nominationRepository) ListRecords(ctx context.Context, filter NominationFilter) ([]model.NominationRecord, error) {
	records := []model.NominationRecord{}

	query := r.db.WithContext(ctx).Table("nominations AS n").
		Select(`n.id, n.created_at, n.status, n.justification, n.evidence,
			nominator.name AS nominator_name,
			nominee.name AS nominee_name, nominee.team AS nominee_team,
			m.name AS mission_name, m.crystal_reward,
			p.name AS pillar_name`).
		Joins("JOIN heroes AS nominator ON nominator.id = n.nominator_id").
		Joins("JOIN heroes AS nominee ON nominee.id = n.nominee_id").
		Joins("JOIN missions AS m ON m.id = n.mission_id").
		Joins("JOIN pillars AS p ON p.id = m.pillar_id").
		Order("n.created_at DESC")

	if filter.Status != "" {
		query = query.Where("n.status = ?", filter.Status)
	}
	if filter.From != nil {
		query = query.Where("n.created_at >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("n.created_at < ?", *filter.To)
	}

	if err := query.Scan(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *nominationRepository) CountByHero(ctx context.Context, heroID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Nomination{}).
		Where("nominator_id = ? OR nominee_id = ?", heroID, heroID).
		Count(&count).Error
	return count, err
}

func (r *nominationRepository) CountByMission(ctx context.Context, missionID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Nomination{}).
		Where("mission_id = ?", missionID).
		Count(&count).Error
	return count, err
}
