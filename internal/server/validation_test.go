package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type contributionForm struct {
	MemberID int     `validate:"required"`
	Amount   float64 `validate:"required,gt=0"`
}

func TestValidateStruct_Valid(t *testing.T) {
	errs := ValidateStruct(contributionForm{MemberID: 1, Amount: 50000})
	assert.Empty(t, errs)
}

func TestValidateStruct_Invalid(t *testing.T) {
	errs := ValidateStruct(contributionForm{Amount: -5})

	require.Len(t, errs, 2)

	byField := make(map[string]ValidationError, len(errs))
	for _, e := range errs {
		byField[e.Field] = e
	}

	assert.Equal(t, "required", byField["MemberID"].Tag)
	assert.Equal(t, "MemberID is required", byField["MemberID"].Message)
	assert.Equal(t, "gt", byField["Amount"].Tag)
	assert.Equal(t, "Amount must be greater than 0", byField["Amount"].Message)
}

func TestRespondWithValidationErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/test", func(c *gin.Context) {
		RespondWithValidationErrors(c, ValidateStruct(contributionForm{}))
	})

	req := httptest.NewRequest("POST", "/test", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "validation failed")
}
