package fund

import (
	"context"
	"database/sql"
	"errors"

	"github.com/duonglna/hoibongcuoinhandao/internal/logger"
	"github.com/duonglna/hoibongcuoinhandao/internal/member"
	"github.com/duonglna/hoibongcuoinhandao/internal/metrics"
	"github.com/duonglna/hoibongcuoinhandao/internal/payment"
)

type Service interface {
	Create(ctx context.Context, req CreateFundRequest) (*Fund, error)
	GetAll(ctx context.Context) ([]Fund, error)
	MemberBalance(ctx context.Context, memberID int) (MemberFinancialInfo, error)
}

type service struct {
	repo        Repository
	memberRepo  member.Repository
	paymentRepo payment.Repository
}

func NewService(repo Repository, memberRepo member.Repository, paymentRepo payment.Repository) Service {
	return &service{repo: repo, memberRepo: memberRepo, paymentRepo: paymentRepo}
}

func (s *service) Create(ctx context.Context, req CreateFundRequest) (*Fund, error) {
	if _, err := s.memberRepo.GetByID(ctx, req.MemberID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, member.ErrMemberNotFound
		}
		return nil, err
	}

	f, err := s.repo.Create(ctx, req.MemberID, req.Amount)
	if err != nil {
		return nil, err
	}

	metrics.RecordFundContribution()
	return f, nil
}

func (s *service) GetAll(ctx context.Context) ([]Fund, error) {
	return s.repo.GetAll(ctx)
}

// MemberBalance derives the member's position from their contribution and
// payment history. Either source failing degrades to empty rather than
// failing the whole read.
func (s *service) MemberBalance(ctx context.Context, memberID int) (MemberFinancialInfo, error) {
	funds, err := s.repo.GetByMember(ctx, memberID)
	if err != nil {
		logger.Errorf("failed to load funds for member %d: %v", memberID, err)
		funds = nil
	}

	payments, err := s.paymentRepo.GetByMember(ctx, memberID)
	if err != nil {
		logger.Errorf("failed to load payments for member %d: %v", memberID, err)
		payments = nil
	}

	return ComputeBalance(memberID, funds, payments), nil
}
