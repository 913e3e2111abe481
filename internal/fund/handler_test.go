package fund

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/duonglna/hoibongcuoinhandao/internal/member"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubService struct {
	fund    *Fund
	funds   []Fund
	info    MemberFinancialInfo
	err     error
	infoErr error
}

func (s *stubService) Create(ctx context.Context, req CreateFundRequest) (*Fund, error) {
	return s.fund, s.err
}

func (s *stubService) GetAll(ctx context.Context) ([]Fund, error) {
	return s.funds, s.err
}

func (s *stubService) MemberBalance(ctx context.Context, memberID int) (MemberFinancialInfo, error) {
	return s.info, s.infoErr
}

func fundRouter(service Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewHandler(service)
	router.GET("/member/balance", h.MemberBalance)
	router.GET("/admin/funds", h.ListFunds)
	router.POST("/admin/funds", h.CreateFund)
	return router
}

func TestHandler_MemberBalance(t *testing.T) {
	router := fundRouter(&stubService{info: MemberFinancialInfo{
		MemberID:      5,
		TotalFunds:    150000,
		TotalPayments: 120000,
		Balance:       30000,
	}})

	req := httptest.NewRequest("GET", "/member/balance?member_id=5", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var info MemberFinancialInfo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &info))
	assert.Equal(t, 30000.0, info.Balance)
}

func TestHandler_MemberBalance_MissingParam(t *testing.T) {
	router := fundRouter(&stubService{})

	req := httptest.NewRequest("GET", "/member/balance", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListFunds_EmptyIsArray(t *testing.T) {
	router := fundRouter(&stubService{})

	req := httptest.NewRequest("GET", "/admin/funds", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

func TestHandler_CreateFund(t *testing.T) {
	router := fundRouter(&stubService{fund: &Fund{ID: 1, MemberID: 5, Amount: 100000}})

	body, _ := json.Marshal(CreateFundRequest{MemberID: 5, Amount: 100000})
	req := httptest.NewRequest("POST", "/admin/funds", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHandler_CreateFund_NonPositiveAmount(t *testing.T) {
	router := fundRouter(&stubService{})

	body, _ := json.Marshal(map[string]interface{}{"member_id": 5, "amount": -10})
	req := httptest.NewRequest("POST", "/admin/funds", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateFund_UnknownMember(t *testing.T) {
	router := fundRouter(&stubService{err: member.ErrMemberNotFound})

	body, _ := json.Marshal(CreateFundRequest{MemberID: 99, Amount: 100000})
	req := httptest.NewRequest("POST", "/admin/funds", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
