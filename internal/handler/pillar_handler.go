package handler

import (
	"net/http"

	"anoa.com/plusgems/internal/dto"
	"anoa.com/plusgems/internal/service"
	"anoa.com/plusgems/pkg/response"
	"github.com/gin-gonic/gin"
)

type PillarHandler struct {
	pillarService service.PillarService
}

func NewPillarHandler(pillarService service.PillarService) *PillarHandler {
	return &PillarHandler{
		pillarService: pillarService,
	}
}

func (h *PillarHandler) CreatePillar(c *gin.Context) {
	var req dto.CreatePillarRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": formatValidationError(err)})
		return
	}

	if fileHeader, err := c.FormFile("icon"); err == nil && fileHeader != nil {
		icon, err := readImageBase64(fileHeader)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		req.Icon = icon
	}

	pillar, err := h.pillarService.CreatePillar(c.Request.Context(), req)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, pillar)
}

func (h *PillarHandler) GetAllPillars(c *gin.Context) {
	pillars, err := h.pillarService.GetAllPillars(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": pillars})
}

func (h *PillarHandler) UpdatePillar(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req dto.UpdatePillarRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": formatValidationError(err)})
		return
	}

	if fileHeader, err := c.FormFile("icon"); err == nil && fileHeader != nil {
		icon, err := readImageBase64(fileHeader)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		req.Icon = icon
	}

	pillar, err := h.pillarService.UpdatePillar(c.Request.Context(), id, req)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, pillar)
}

func (h *PillarHandler) DeletePillar(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.pillarService.DeletePillar(c.Request.Context(), id); err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "pillar deleted"})
}
