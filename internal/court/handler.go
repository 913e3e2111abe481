package court

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// ListCourts godoc
// @Summary      List courts
// @Description  Returns active courts. Admins can pass all=true for inactive ones too.
// @Tags         courts
// @Produce      json
// @Param        all  query     bool  false  "Include inactive courts"
// @Success      200  {array}   Court
// @Router       /courts [get]
func (h *Handler) ListCourts(c *gin.Context) {
	onlyActive := c.Query("all") != "true"

	courts, err := h.service.GetAll(c.Request.Context(), onlyActive)
	if err != nil {
		c.JSON(http.StatusOK, []Court{})
		return
	}
	if courts == nil {
		courts = []Court{}
	}

	c.JSON(http.StatusOK, courts)
}

// CreateCourt godoc
// @Summary      Create court
// @Tags         courts
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        court  body      CreateCourtRequest  true  "Court"
// @Success      201    {object}  Court
// @Failure      400    {object}  gin.H
// @Failure      500    {object}  gin.H
// @Router       /admin/courts [post]
func (h *Handler) CreateCourt(c *gin.Context) {
	var req CreateCourtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	court, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create court"})
		return
	}

	c.JSON(http.StatusCreated, court)
}

// UpdateCourt godoc
// @Summary      Update court
// @Tags         courts
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        courtID  path      int                 true  "Court ID"
// @Param        court    body      UpdateCourtRequest  true  "Court"
// @Success      200      {object}  Court
// @Failure      400      {object}  gin.H
// @Failure      404      {object}  gin.H
// @Failure      500      {object}  gin.H
// @Router       /admin/courts/{courtID} [put]
func (h *Handler) UpdateCourt(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("courtID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid court ID"})
		return
	}

	var req UpdateCourtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	court, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, ErrCourtNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Court not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update court"})
		return
	}

	c.JSON(http.StatusOK, court)
}

// DeleteCourt godoc
// @Summary      Delete court
// @Tags         courts
// @Security     BearerAuth
// @Produce      json
// @Param        courtID  path      int  true  "Court ID"
// @Success      200      {object}  gin.H
// @Failure      400      {object}  gin.H
// @Failure      404      {object}  gin.H
// @Failure      500      {object}  gin.H
// @Router       /admin/courts/{courtID} [delete]
func (h *Handler) DeleteCourt(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("courtID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid court ID"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrCourtNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Court not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete court"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Court deleted"})
}
