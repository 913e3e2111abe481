package payment

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

// ListBySchedule godoc
// @Summary      List payments for a schedule
// @Tags         payments
// @Security     BearerAuth
// @Produce      json
// @Param        scheduleID  path      int  true  "Schedule ID"
// @Success      200         {array}   Payment
// @Failure      400         {object}  gin.H
// @Failure      500         {object}  gin.H
// @Router       /admin/schedules/{scheduleID}/payments [get]
func (h *Handler) ListBySchedule(c *gin.Context) {
	scheduleID, err := strconv.Atoi(c.Param("scheduleID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid schedule ID"})
		return
	}

	payments, err := h.repo.GetBySchedule(c.Request.Context(), scheduleID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch payments"})
		return
	}
	if payments == nil {
		payments = []Payment{}
	}

	c.JSON(http.StatusOK, payments)
}

// ListByMember godoc
// @Summary      List payments for a member
// @Tags         payments
// @Security     BearerAuth
// @Produce      json
// @Param        memberID  path      int  true  "Member ID"
// @Success      200       {array}   Payment
// @Failure      400       {object}  gin.H
// @Failure      500       {object}  gin.H
// @Router       /admin/members/{memberID}/payments [get]
func (h *Handler) ListByMember(c *gin.Context) {
	memberID, err := strconv.Atoi(c.Param("memberID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid member ID"})
		return
	}

	payments, err := h.repo.GetByMember(c.Request.Context(), memberID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch payments"})
		return
	}
	if payments == nil {
		payments = []Payment{}
	}

	c.JSON(http.StatusOK, payments)
}
