package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Pillar is a value dimension grouping related missions.
// Icon holds an optional base64-encoded image stored inline.
type Pillar struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Icon      *string   `gorm:"type:text" json:"icon,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (p *Pillar) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
