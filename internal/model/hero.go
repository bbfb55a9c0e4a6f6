package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Hero is a person eligible to give or receive recognition. The same hero may
// appear as nominator and nominee across nominations, never in both roles of
// a single one.
type Hero struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Team      string    `gorm:"size:100;not null" json:"team"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (h *Hero) BeforeCreate(tx *gorm.DB) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	return nil
}
