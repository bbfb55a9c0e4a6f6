package dto

import "github.com/google/uuid"

type CreatePillarRequest struct {
	Name string  `json:"name" form:"name" binding:"required,min=1,max=100"`
	Icon *string `json:"icon,omitempty" form:"-"`
}

type UpdatePillarRequest struct {
	Name string  `json:"name" form:"name" binding:"required,min=1,max=100"`
	Icon *string `json:"icon,omitempty" form:"-"`
}

type PillarResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Icon *string   `json:"icon,omitempty"`
}
