package settlement

import (
	"context"
	"database/sql"
	"errors"

	"github.com/duonglna/hoibongcuoinhandao/internal/logger"
	"github.com/duonglna/hoibongcuoinhandao/internal/member"
	"github.com/duonglna/hoibongcuoinhandao/internal/metrics"
	"github.com/duonglna/hoibongcuoinhandao/internal/schedule"
)

type SettleRequest struct {
	RacketParticipants []int `json:"racket_participants"`
	WaterParticipants  []int `json:"water_participants"`
}

// Notifier queues a settlement receipt for later delivery. Implementations
// must not block on the mail transport.
type Notifier interface {
	EnqueueSettlementReceipt(ctx context.Context, to, memberName, sessionDate string, total float64) error
}

type Service interface {
	Settle(ctx context.Context, scheduleID int, req SettleRequest) ([]Share, error)
}

type service struct {
	repo         Repository
	scheduleRepo schedule.Repository
	memberRepo   member.Repository
	notifier     Notifier
}

// NewService creates the settlement service. notifier may be nil, in which
// case no receipts are sent.
func NewService(repo Repository, scheduleRepo schedule.Repository, memberRepo member.Repository, notifier Notifier) Service {
	return &service{repo: repo, scheduleRepo: scheduleRepo, memberRepo: memberRepo, notifier: notifier}
}

func (s *service) Settle(ctx context.Context, scheduleID int, req SettleRequest) ([]Share, error) {
	sched, err := s.scheduleRepo.GetByID(ctx, scheduleID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			metrics.RecordSettlement("not_found")
			return nil, schedule.ErrScheduleNotFound
		}
		metrics.RecordSettlement("error")
		return nil, err
	}

	if sched.Status == schedule.StatusDone {
		metrics.RecordSettlement("conflict")
		return nil, ErrAlreadySettled
	}

	shares, err := ComputeShares(
		Costs{CourtPrice: sched.CourtPrice, RacketPrice: sched.RacketPrice, WaterPrice: sched.WaterPrice},
		sched.Participants, req.RacketParticipants, req.WaterParticipants,
	)
	if err != nil {
		metrics.RecordSettlement("invalid")
		return nil, err
	}

	if err := s.repo.Settle(ctx, scheduleID, shares); err != nil {
		if errors.Is(err, ErrAlreadySettled) {
			metrics.RecordSettlement("conflict")
		} else {
			metrics.RecordSettlement("error")
		}
		return nil, err
	}

	metrics.RecordSettlement("ok")
	metrics.RecordPaymentsCreated(len(shares))

	s.sendReceipts(ctx, sched, shares)

	return shares, nil
}

// sendReceipts is best-effort: the settlement is already committed, so
// lookup or queue failures are logged and swallowed.
func (s *service) sendReceipts(ctx context.Context, sched *schedule.Schedule, shares []Share) {
	if s.notifier == nil {
		return
	}

	members, err := s.memberRepo.GetAll(ctx)
	if err != nil {
		logger.Errorf("settlement receipts skipped, member lookup failed: %v", err)
		return
	}

	byID := make(map[int]member.Member, len(members))
	for _, m := range members {
		byID[m.ID] = m
	}

	for _, share := range shares {
		m, ok := byID[share.MemberID]
		if !ok || m.Email == "" {
			continue
		}
		if err := s.notifier.EnqueueSettlementReceipt(ctx, m.Email, m.Name, sched.Date, share.Total()); err != nil {
			logger.Errorf("failed to enqueue settlement receipt for member %d: %v", share.MemberID, err)
		}
	}
}
