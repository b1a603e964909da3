package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/skillswap-api/internal/service"
	"github.com/noah-isme/skillswap-api/pkg/response"
)

// SwapHandler exposes the swap view built from scheduled learning requests.
type SwapHandler struct {
	swaps *service.SwapService
}

// NewSwapHandler constructs a SwapHandler.
func NewSwapHandler(swaps *service.SwapService) *SwapHandler {
	return &SwapHandler{swaps: swaps}
}

// Active godoc
// @Summary List active swaps
// @Tags Swaps
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /swaps/active [get]
func (h *SwapHandler) Active(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.swaps.ActiveSwaps())
}
