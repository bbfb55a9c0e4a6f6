package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateHeroRequest struct {
	Name string `json:"name" form:"name" binding:"required,min=1,max=100"`
	Team string `json:"team" form:"team" binding:"required,min=1,max=100"`
}

type UpdateHeroRequest struct {
	Name string `json:"name" form:"name" binding:"required,min=1,max=100"`
	Team string `json:"team" form:"team" binding:"required,min=1,max=100"`
}

type HeroFilter struct {
	Team string `form:"team"`
}

type HeroResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Team      string    `json:"team"`
	CreatedAt time.Time `json:"created_at"`
}
