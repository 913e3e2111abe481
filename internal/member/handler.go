package member

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

// ListMembers godoc
// @Summary      List members
// @Description  Returns all club members.
// @Tags         members
// @Produce      json
// @Success      200  {array}   Member
// @Router       /members [get]
func (h *Handler) ListMembers(c *gin.Context) {
	members, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		// Read path degrades to an empty list.
		c.JSON(http.StatusOK, []Member{})
		return
	}
	if members == nil {
		members = []Member{}
	}

	c.JSON(http.StatusOK, members)
}

// CreateMember godoc
// @Summary      Create member
// @Tags         members
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        member  body      CreateMemberRequest  true  "Member"
// @Success      201     {object}  Member
// @Failure      400     {object}  gin.H
// @Failure      500     {object}  gin.H
// @Router       /admin/members [post]
func (h *Handler) CreateMember(c *gin.Context) {
	var req CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	m, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create member"})
		return
	}

	c.JSON(http.StatusCreated, m)
}

// UpdateMember godoc
// @Summary      Update member
// @Tags         members
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        memberID  path      int                  true  "Member ID"
// @Param        member    body      UpdateMemberRequest  true  "Member"
// @Success      200       {object}  Member
// @Failure      400       {object}  gin.H
// @Failure      404       {object}  gin.H
// @Failure      500       {object}  gin.H
// @Router       /admin/members/{memberID} [put]
func (h *Handler) UpdateMember(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("memberID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid member ID"})
		return
	}

	var req UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	m, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, ErrMemberNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Member not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update member"})
		return
	}

	c.JSON(http.StatusOK, m)
}

// DeleteMember godoc
// @Summary      Delete member
// @Description  Removes the member. Historical payments and funds are kept.
// @Tags         members
// @Security     BearerAuth
// @Produce      json
// @Param        memberID  path      int  true  "Member ID"
// @Success      200       {object}  gin.H
// @Failure      400       {object}  gin.H
// @Failure      404       {object}  gin.H
// @Failure      500       {object}  gin.H
// @Router       /admin/members/{memberID} [delete]
func (h *Handler) DeleteMember(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("memberID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid member ID"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrMemberNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Member not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete member"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Member deleted"})
}
