package handler

import (
	"net/http"

	"anoa.com/plusgems/internal/dto"
	"anoa.com/plusgems/internal/service"
	"anoa.com/plusgems/pkg/response"
	"github.com/gin-gonic/gin"
)

type MissionHandler struct {
	missionService service.MissionService
}

func NewMissionHandler(missionService service.MissionService) *MissionHandler {
	return &MissionHandler{
		missionService: missionService,
	}
}

func (h *MissionHandler) CreateMission(c *gin.Context) {
	var req dto.CreateMissionRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": formatValidationError(err)})
		return
	}

	mission, err := h.missionService.CreateMission(c.Request.Context(), req)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, mission)
}

// GetCrystalMap lists every pillar with its missions, richest first.
func (h *MissionHandler) GetCrystalMap(c *gin.Context) {
	entries, err := h.missionService.GetCrystalMap(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": entries})
}

func (h *MissionHandler) UpdateMission(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req dto.UpdateMissionRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": formatValidationError(err)})
		return
	}

	mission, err := h.missionService.UpdateMission(c.Request.Context(), id, req)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, mission)
}

func (h *MissionHandler) DeleteMission(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.missionService.DeleteMission(c.Request.Context(), id); err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "mission deleted"})
}
