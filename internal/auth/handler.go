package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}

// Handler issues admin tokens against the shared club password.
type Handler struct {
	jwtSecret     string
	plainPassword string
	passwordHash  string
}

func NewHandler(jwtSecret, plainPassword, passwordHash string) *Handler {
	return &Handler{
		jwtSecret:     jwtSecret,
		plainPassword: plainPassword,
		passwordHash:  passwordHash,
	}
}

// Login godoc
// @Summary      Exchange the admin password for a JWT
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      LoginRequest  true  "Credentials"
// @Success      200      {object}  LoginResponse
// @Failure      400      {object}  gin.H
// @Failure      401      {object}  gin.H
// @Failure      503      {object}  gin.H
// @Router       /auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := CheckAdminPassword(req.Password, h.plainPassword, h.passwordHash); err != nil {
		if errors.Is(err, ErrNoPasswordSet) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Admin login is not configured"})
			return
		}
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Wrong password"})
		return
	}

	token, err := GenerateAdminToken(h.jwtSecret)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
		return
	}

	c.JSON(http.StatusOK, LoginResponse{Token: token, Role: RoleAdmin})
}
