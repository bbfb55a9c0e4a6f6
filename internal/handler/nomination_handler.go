package handler

import (
	"net/http"

	"anoa.com/plusgems/internal/dto"
	"anoa.com/plusgems/internal/service"
	"anoa.com/plusgems/pkg/response"
	"github.com/gin-gonic/gin"
)

type NominationHandler struct {
	nominationService service.NominationService
}

func NewNominationHandler(nominationService service.NominationService) *NominationHandler {
	return &NominationHandler{
		nominationService: nominationService,
	}
}

// Create accepts JSON or multipart form; the optional evidence file is
// base64-encoded and stored inline with the nomination row.
func (h *NominationHandler) Create(c *gin.Context) {
	var input dto.CreateNominationInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": formatValidationError(err)})
		return
	}

	if fileHeader, err := c.FormFile("evidence"); err == nil && fileHeader != nil {
		evidence, err := readImageBase64(fileHeader)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		input.Evidence = evidence
	}

	nomination, err := h.nominationService.Create(c.Request.Context(), input)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, nomination)
}

func (h *NominationHandler) Transition(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req dto.TransitionNominationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": formatValidationError(err)})
		return
	}

	if err := h.nominationService.Transition(c.Request.Context(), id, req.Status); err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id, "status": req.Status})
}

func (h *NominationHandler) List(c *gin.Context) {
	status := c.Query("status")

	res, err := h.nominationService.List(c.Request.Context(), status)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}
