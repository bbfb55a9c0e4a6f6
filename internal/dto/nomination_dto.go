package dto

import (
	"anoa.com/plusgems/internal/model"
	"github.com/google/uuid"
)

type CreateNominationInput struct {
	NominatorID   uuid.UUID `json:"nominator_id" form:"nominator_id" binding:"required"`
	NomineeID     uuid.UUID `json:"nominee_id" form:"nominee_id" binding:"required"`
	MissionID     uuid.UUID `json:"mission_id" form:"mission_id" binding:"required"`
	Justification string    `json:"justification" form:"justification" binding:"required"`
	// Evidence is an optional base64-encoded image, stored inline with the
	// nomination. Set from the uploaded file by the handler.
	Evidence *string `json:"evidence,omitempty" form:"-"`
}

type TransitionNominationRequest struct {
	Status string `json:"status" binding:"required,oneof=approved refused"`
}

type NominationStatusCounts struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Refused  int `json:"refused"`
}

type NominationListResponse struct {
	Data []model.NominationRecord `json:"data"`
	Meta NominationStatusCounts   `json:"meta"`
}
