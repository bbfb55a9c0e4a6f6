package handler

import (
	"net/http"

	"anoa.com/plusgems/internal/dto"
	"anoa.com/plusgems/internal/service"
	"anoa.com/plusgems/pkg/response"
	"github.com/gin-gonic/gin"
)

type HeroHandler struct {
	heroService service.HeroService
}

func NewHeroHandler(heroService service.HeroService) *HeroHandler {
	return &HeroHandler{
		heroService: heroService,
	}
}

func (h *HeroHandler) CreateHero(c *gin.Context) {
	var req dto.CreateHeroRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": formatValidationError(err)})
		return
	}

	hero, err := h.heroService.CreateHero(c.Request.Context(), req)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, hero)
}

func (h *HeroHandler) GetAllHeroes(c *gin.Context) {
	var filter dto.HeroFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": formatValidationError(err)})
		return
	}

	heroes, err := h.heroService.GetAllHeroes(c.Request.Context(), filter)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": heroes})
}

func (h *HeroHandler) UpdateHero(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req dto.UpdateHeroRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": formatValidationError(err)})
		return
	}

	hero, err := h.heroService.UpdateHero(c.Request.Context(), id, req)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, hero)
}

func (h *HeroHandler) DeleteHero(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.heroService.DeleteHero(c.Request.Context(), id); err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "hero deleted"})
}
