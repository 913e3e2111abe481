package fund

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/duonglna/hoibongcuoinhandao/internal/member"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// MemberBalance godoc
// @Summary      Get a member's fund balance
// @Tags         funds
// @Produce      json
// @Param        member_id  query     int  true  "Member ID"
// @Success      200        {object}  MemberFinancialInfo
// @Failure      400        {object}  gin.H
// @Router       /member/balance [get]
func (h *Handler) MemberBalance(c *gin.Context) {
	memberID, err := strconv.Atoi(c.Query("member_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid member ID"})
		return
	}

	info, err := h.service.MemberBalance(c.Request.Context(), memberID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute balance"})
		return
	}

	c.JSON(http.StatusOK, info)
}

// ListFunds godoc
// @Summary      List all fund contributions
// @Tags         funds
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   Fund
// @Failure      500  {object}  gin.H
// @Router       /admin/funds [get]
func (h *Handler) ListFunds(c *gin.Context) {
	funds, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch funds"})
		return
	}
	if funds == nil {
		funds = []Fund{}
	}

	c.JSON(http.StatusOK, funds)
}

// CreateFund godoc
// @Summary      Record a fund contribution
// @Tags         funds
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      CreateFundRequest  true  "Contribution"
// @Success      201      {object}  Fund
// @Failure      400      {object}  gin.H
// @Failure      404      {object}  gin.H
// @Failure      500      {object}  gin.H
// @Router       /admin/funds [post]
func (h *Handler) CreateFund(c *gin.Context) {
	var req CreateFundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	f, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, member.ErrMemberNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Member not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record contribution"})
		return
	}

	c.JSON(http.StatusCreated, f)
}
