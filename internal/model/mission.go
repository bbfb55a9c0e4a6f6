package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Mission is an achievement with a fixed crystal reward, owned by one pillar.
type Mission struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name          string    `gorm:"size:150;not null" json:"name"`
	Description   string    `gorm:"type:text" json:"description"`
	CrystalReward int       `gorm:"not null" json:"crystal_reward"`
	PillarID      uuid.UUID `gorm:"type:uuid;not null" json:"pillar_id"`
	Pillar        Pillar    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"pillar"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (m *Mission) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
