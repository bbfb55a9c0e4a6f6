package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Nomination lifecycle states. A nomination starts pending; approving or
// refusing overwrites the single status column, so the two can never both
// hold at once.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRefused  = "refused"
)

// IsTerminalStatus reports whether s is a decision an administrator can set.
func IsTerminalStatus(s string) bool {
	return s == StatusApproved || s == StatusRefused
}

// Nomination records one hero recognizing another for a completed mission.
// It owns the justification text and the optional inline evidence image;
// hero and mission references are by id only. The reward is never copied
// here: aggregates always read it live through the mission join.
type Nomination struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	NominatorID   uuid.UUID `gorm:"type:uuid;not null" json:"nominator_id"`
	Nominator     Hero      `gorm:"foreignKey:NominatorID;constraint:OnDelete:RESTRICT" json:"nominator,omitempty"`
	NomineeID     uuid.UUID `gorm:"type:uuid;not null" json:"nominee_id"`
	Nominee       Hero      `gorm:"foreignKey:NomineeID;constraint:OnDelete:RESTRICT" json:"nominee,omitempty"`
	MissionID     uuid.UUID `gorm:"type:uuid;not null" json:"mission_id"`
	Mission       Mission   `gorm:"foreignKey:MissionID;constraint:OnDelete:RESTRICT" json:"mission,omitempty"`
	Justification string    `gorm:"type:text;not null" json:"justification"`
	Evidence      *string   `gorm:"type:text" json:"evidence,omitempty"` // base64, stored inline
	Status        string    `gorm:"size:20;not null;default:pending" json:"status"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (n *Nomination) BeforeCreate(tx *gorm.DB) (err error) {
	if n.ID == uuid.Nil {
		n.ID, err = uuid.NewV7()
	}
	return
}

// NominationRecord is the denormalized read model the aggregation helpers
// consume: one nomination joined with hero names, mission and pillar.
type NominationRecord struct {
	ID            uuid.UUID `json:"id"`
	CreatedAt     time.Time `json:"created_at"`
	Status        string    `json:"status"`
	Justification string    `json:"justification"`
	Evidence      *string   `json:"evidence,omitempty"`
	NominatorName string    `json:"nominator_name"`
	NomineeName   string    `json:"nominee_name"`
	NomineeTeam   string    `json:"nominee_team"`
	MissionName   string    `json:"mission_name"`
	CrystalReward int       `json:"crystal_reward"`
	PillarName    string    `json:"pillar_name"`
}
