package settlement

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/duonglna/hoibongcuoinhandao/internal/schedule"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// Settle godoc
// @Summary      Settle a session and create payment shares
// @Tags         settlement
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        scheduleID  path      int            true  "Schedule ID"
// @Param        request     body      SettleRequest  true  "Opt-in subsets"
// @Success      200         {array}   Share
// @Failure      400         {object}  gin.H
// @Failure      404         {object}  gin.H
// @Failure      409         {object}  gin.H
// @Failure      500         {object}  gin.H
// @Router       /admin/schedules/{scheduleID}/settle [post]
func (h *Handler) Settle(c *gin.Context) {
	scheduleID, err := strconv.Atoi(c.Param("scheduleID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid schedule ID"})
		return
	}

	var req SettleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	shares, err := h.service.Settle(c.Request.Context(), scheduleID, req)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrScheduleNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Schedule not found"})
		case errors.Is(err, ErrAlreadySettled):
			c.JSON(http.StatusConflict, gin.H{"error": "Schedule is already settled"})
		case errors.Is(err, ErrNoParticipants):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Schedule has no participants"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to settle schedule"})
		}
		return
	}

	c.JSON(http.StatusOK, shares)
}
