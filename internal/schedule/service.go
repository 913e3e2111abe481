package schedule

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/duonglna/hoibongcuoinhandao/internal/court"
	"github.com/duonglna/hoibongcuoinhandao/internal/logger"
	"github.com/duonglna/hoibongcuoinhandao/internal/metrics"
	"github.com/duonglna/hoibongcuoinhandao/internal/payment"
)

var ErrInvalidDateTime = errors.New("invalid date or start time")

// MemberSchedule is a feed entry for one member, carrying their payment
// share for the session once it has been settled.
type MemberSchedule struct {
	EnrichedSchedule
	Payment *payment.Payment `json:"payment"`
}

type Service interface {
	Create(ctx context.Context, req CreateScheduleRequest) (*Schedule, error)
	GetAll(ctx context.Context) ([]Schedule, error)
	GetByID(ctx context.Context, id int) (*Schedule, error)
	Update(ctx context.Context, id int, req CreateScheduleRequest) (*Schedule, error)
	Delete(ctx context.Context, id int) error
	WeekFeed(ctx context.Context) ([]EnrichedSchedule, error)
	MemberWeekSchedule(ctx context.Context, memberID int) ([]MemberSchedule, error)
}

type service struct {
	repo        Repository
	courtRepo   court.Repository
	paymentRepo payment.Repository
}

func NewService(repo Repository, courtRepo court.Repository, paymentRepo payment.Repository) Service {
	return &service{
		repo:        repo,
		courtRepo:   courtRepo,
		paymentRepo: paymentRepo,
	}
}

func (s *service) Create(ctx context.Context, req CreateScheduleRequest) (*Schedule, error) {
	params, err := s.buildParams(ctx, req)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, *params)
	if err != nil {
		return nil, err
	}

	metrics.RecordScheduleCreated()
	return created, nil
}

func (s *service) GetAll(ctx context.Context) ([]Schedule, error) {
	return s.repo.GetAll(ctx)
}

func (s *service) GetByID(ctx context.Context, id int) (*Schedule, error) {
	sched, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrScheduleNotFound
		}
		return nil, err
	}
	return sched, nil
}

func (s *service) Update(ctx context.Context, id int, req CreateScheduleRequest) (*Schedule, error) {
	params, err := s.buildParams(ctx, req)
	if err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, id, *params)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrScheduleNotFound
		}
		return nil, err
	}
	return updated, nil
}

func (s *service) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

// buildParams validates the request and recomputes the stored court price
// snapshot from the referenced court's current hourly rate.
func (s *service) buildParams(ctx context.Context, req CreateScheduleRequest) (*CreateParams, error) {
	probe := Schedule{Date: req.Date, StartTime: req.StartTime}
	if _, err := probe.StartAt(); err != nil {
		return nil, ErrInvalidDateTime
	}

	ct, err := s.courtRepo.GetByID(ctx, req.CourtID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, court.ErrCourtNotFound
		}
		return nil, err
	}

	return &CreateParams{
		CourtID:        req.CourtID,
		Date:           req.Date,
		StartTime:      req.StartTime,
		Hours:          req.Hours,
		NumberOfCourts: req.NumberOfCourts,
		CourtPrice:     float64(req.NumberOfCourts) * req.Hours * ct.PricePerHour,
		RacketPrice:    req.RacketPrice,
		WaterPrice:     req.WaterPrice,
		Participants:   req.Participants,
	}, nil
}

// WeekFeed returns pending sessions enriched and ordered for display.
func (s *service) WeekFeed(ctx context.Context) ([]EnrichedSchedule, error) {
	schedules, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	courts := s.courtsForEnrichment(ctx)
	return BuildFeed(schedules, courts, StatusIs(StatusPending), time.Now()), nil
}

// MemberWeekSchedule returns this week's sessions the member participates in,
// each with the member's payment share when the session is settled.
func (s *service) MemberWeekSchedule(ctx context.Context, memberID int) ([]MemberSchedule, error) {
	schedules, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	courts := s.courtsForEnrichment(ctx)
	feed := BuildFeed(schedules, courts, And(ThisWeek(), HasParticipant(memberID)), time.Now())

	payments, err := s.paymentRepo.GetByMember(ctx, memberID)
	if err != nil {
		logger.Errorf("Failed to load payments for member %d: %v", memberID, err)
		payments = nil
	}
	byScheduleID := make(map[int]payment.Payment, len(payments))
	for _, p := range payments {
		byScheduleID[p.ScheduleID] = p
	}

	result := make([]MemberSchedule, 0, len(feed))
	for _, entry := range feed {
		ms := MemberSchedule{EnrichedSchedule: entry}
		if p, ok := byScheduleID[entry.ID]; ok {
			pay := p
			ms.Payment = &pay
		}
		result = append(result, ms)
	}

	return result, nil
}

// courtsForEnrichment degrades to an empty list so a court lookup failure
// never takes the feed down; entries simply render without court info.
func (s *service) courtsForEnrichment(ctx context.Context) []court.Court {
	courts, err := s.courtRepo.GetAll(ctx, false)
	if err != nil {
		logger.Errorf("Failed to load courts for feed enrichment: %v", err)
		return nil
	}
	return courts
}
