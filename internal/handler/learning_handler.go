package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/skillswap-api/internal/service"
	appErrors "github.com/noah-isme/skillswap-api/pkg/errors"
	"github.com/noah-isme/skillswap-api/pkg/response"
)

// LearningHandler wires the learning-request store to HTTP routes.
type LearningHandler struct {
	learning *service.LearningService
}

// NewLearningHandler constructs a LearningHandler.
func NewLearningHandler(learning *service.LearningService) *LearningHandler {
	return &LearningHandler{learning: learning}
}

// List godoc
// @Summary List learning requests
// @Tags Learning
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /learning [get]
func (h *LearningHandler) List(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.learning.List(c.Request.Context()))
}

// Create godoc
// @Summary File a learning request and match a teacher
// @Tags Learning
// @Accept json
// @Produce json
// @Param payload body service.CreateLearningRequest true "Learning request payload"
// @Success 201 {object} response.Envelope
// @Router /learning [post]
func (h *LearningHandler) Create(c *gin.Context) {
	var req service.CreateLearningRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid learning request payload"))
		return
	}
	created, err := h.learning.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, created)
}

// Schedule godoc
// @Summary Schedule a class for a matched learning request
// @Tags Learning
// @Accept json
// @Produce json
// @Param id path string true "Learning request ID"
// @Param payload body service.ScheduleSessionRequest true "Schedule payload"
// @Success 200 {object} response.Envelope
// @Router /learning/{id}/schedule [post]
func (h *LearningHandler) Schedule(c *gin.Context) {
	var req service.ScheduleSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid schedule payload"))
		return
	}
	updated, err := h.learning.ScheduleSession(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, updated)
}
