package dto

import "github.com/google/uuid"

type CreateMissionRequest struct {
	Name          string    `json:"name" form:"name" binding:"required,min=1,max=150"`
	Description   string    `json:"description" form:"description"`
	CrystalReward int       `json:"crystal_reward" form:"crystal_reward" binding:"required,gt=0"`
	PillarID      uuid.UUID `json:"pillar_id" form:"pillar_id" binding:"required"`
}

type UpdateMissionRequest struct {
	Name          string    `json:"name" form:"name" binding:"required,min=1,max=150"`
	Description   string    `json:"description" form:"description"`
	CrystalReward int       `json:"crystal_reward" form:"crystal_reward" binding:"required,gt=0"`
	PillarID      uuid.UUID `json:"pillar_id" form:"pillar_id" binding:"required"`
}

type MissionResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	CrystalReward int       `json:"crystal_reward"`
	PillarID      uuid.UUID `json:"pillar_id"`
	PillarName    string    `json:"pillar_name"`
}

// CrystalMapEntry groups one pillar with its missions, richest reward first.
// Pillars without missions still appear with an empty list.
type CrystalMapEntry struct {
	Pillar   PillarResponse    `json:"pillar"`
	Missions []MissionResponse `json:"missions"`
}
