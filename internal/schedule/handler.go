package schedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/duonglna/hoibongcuoinhandao/internal/court"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// ListSchedules godoc
// @Summary      List schedules
// @Description  Returns all schedules with participants.
// @Tags         schedules
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   Schedule
// @Router       /admin/schedules [get]
func (h *Handler) ListSchedules(c *gin.Context) {
	schedules, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusOK, []Schedule{})
		return
	}
	if schedules == nil {
		schedules = []Schedule{}
	}

	c.JSON(http.StatusOK, schedules)
}

// WeekFeed godoc
// @Summary      Pending session feed
// @Description  Pending sessions enriched with court info, ordered by start datetime.
// @Tags         schedules
// @Produce      json
// @Success      200  {array}   EnrichedSchedule
// @Router       /schedules/week [get]
func (h *Handler) WeekFeed(c *gin.Context) {
	feed, err := h.service.WeekFeed(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusOK, []EnrichedSchedule{})
		return
	}

	c.JSON(http.StatusOK, feed)
}

// MemberWeekSchedule godoc
// @Summary      Member's sessions this week
// @Description  Sessions within the current week the member participates in,
// @Description  each with the member's payment once settled.
// @Tags         schedules
// @Produce      json
// @Param        member_id  query     int  true  "Member ID"
// @Success      200        {array}   MemberSchedule
// @Failure      400        {object}  gin.H
// @Router       /member/schedule [get]
func (h *Handler) MemberWeekSchedule(c *gin.Context) {
	memberID, err := strconv.Atoi(c.Query("member_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "member_id query param required"})
		return
	}

	feed, err := h.service.MemberWeekSchedule(c.Request.Context(), memberID)
	if err != nil {
		c.JSON(http.StatusOK, []MemberSchedule{})
		return
	}

	c.JSON(http.StatusOK, feed)
}

// CreateSchedule godoc
// @Summary      Create schedule
// @Description  Creates a session; the stored court price is snapshotted from
// @Description  the court's current hourly rate.
// @Tags         schedules
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        schedule  body      CreateScheduleRequest  true  "Schedule"
// @Success      201       {object}  Schedule
// @Failure      400       {object}  gin.H
// @Failure      404       {object}  gin.H
// @Failure      500       {object}  gin.H
// @Router       /admin/schedules [post]
func (h *Handler) CreateSchedule(c *gin.Context) {
	var req CreateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidDateTime):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date or start time"})
		case errors.Is(err, court.ErrCourtNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Court not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create schedule"})
		}
		return
	}

	c.JSON(http.StatusCreated, s)
}

// UpdateSchedule godoc
// @Summary      Update schedule
// @Tags         schedules
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        scheduleID  path      int                    true  "Schedule ID"
// @Param        schedule    body      CreateScheduleRequest  true  "Schedule"
// @Success      200         {object}  Schedule
// @Failure      400         {object}  gin.H
// @Failure      404         {object}  gin.H
// @Failure      500         {object}  gin.H
// @Router       /admin/schedules/{scheduleID} [put]
func (h *Handler) UpdateSchedule(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("scheduleID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid schedule ID"})
		return
	}

	var req CreateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrScheduleNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Schedule not found"})
		case errors.Is(err, ErrInvalidDateTime):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date or start time"})
		case errors.Is(err, court.ErrCourtNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Court not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update schedule"})
		}
		return
	}

	c.JSON(http.StatusOK, s)
}

// DeleteSchedule godoc
// @Summary      Delete schedule
// @Tags         schedules
// @Security     BearerAuth
// @Produce      json
// @Param        scheduleID  path      int  true  "Schedule ID"
// @Success      200         {object}  gin.H
// @Failure      400         {object}  gin.H
// @Failure      404         {object}  gin.H
// @Failure      500         {object}  gin.H
// @Router       /admin/schedules/{scheduleID} [delete]
func (h *Handler) DeleteSchedule(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("scheduleID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid schedule ID"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrScheduleNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Schedule not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete schedule"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Schedule deleted"})
}
