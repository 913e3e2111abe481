package notify

import (
	"context"
	"time"

	"github.com/duonglna/hoibongcuoinhandao/internal/court"
	"github.com/duonglna/hoibongcuoinhandao/internal/logger"
	"github.com/duonglna/hoibongcuoinhandao/internal/member"
	"github.com/duonglna/hoibongcuoinhandao/internal/schedule"
)

// Reminder periodically queues emails for sessions happening tomorrow.
type Reminder struct {
	notifier     *Service
	scheduleRepo schedule.Repository
	memberRepo   member.Repository
	courtRepo    court.Repository
	interval     time.Duration
}

func NewReminder(notifier *Service, scheduleRepo schedule.Repository, memberRepo member.Repository, courtRepo court.Repository) *Reminder {
	return &Reminder{
		notifier:     notifier,
		scheduleRepo: scheduleRepo,
		memberRepo:   memberRepo,
		courtRepo:    courtRepo,
		interval:     time.Hour,
	}
}

func (r *Reminder) Start(ctx context.Context) {
	logger.Info("Reminder worker started")

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Reminder worker stopped")
			return
		case <-ticker.C:
			r.run(ctx, time.Now())
		}
	}
}

func (r *Reminder) run(ctx context.Context, now time.Time) {
	schedules, err := r.scheduleRepo.GetAll(ctx)
	if err != nil {
		logger.Errorf("Reminder run skipped, schedule lookup failed: %v", err)
		return
	}

	due := dueTomorrow(schedules, now)
	if len(due) == 0 {
		return
	}

	members, err := r.memberRepo.GetAll(ctx)
	if err != nil {
		logger.Errorf("Reminder run skipped, member lookup failed: %v", err)
		return
	}
	byID := make(map[int]member.Member, len(members))
	for _, m := range members {
		byID[m.ID] = m
	}

	courts, err := r.courtRepo.GetAll(ctx, false)
	if err != nil {
		logger.Errorf("Reminder court lookup failed: %v", err)
	}
	courtsByID := make(map[int]court.Court, len(courts))
	for _, ct := range courts {
		courtsByID[ct.ID] = ct
	}

	for _, s := range due {
		courtName := "(unknown court)"
		if ct, ok := courtsByID[s.CourtID]; ok {
			courtName = ct.Name
		}
		for _, id := range s.Participants {
			m, ok := byID[id]
			if !ok || m.Email == "" {
				continue
			}
			if err := r.notifier.EnqueueSessionReminder(ctx, m.Email, m.Name, courtName, s.Date, s.StartTime); err != nil {
				logger.Errorf("Failed to queue reminder for member %d: %v", id, err)
			}
		}
	}
}

// dueTomorrow selects pending sessions whose calendar date is the day after
// now. Unparseable dates are skipped.
func dueTomorrow(schedules []schedule.Schedule, now time.Time) []schedule.Schedule {
	tomorrow := now.AddDate(0, 0, 1)
	y, m, d := tomorrow.Date()

	var due []schedule.Schedule
	for _, s := range schedules {
		if s.Status != schedule.StatusPending {
			continue
		}
		start, err := s.StartAt()
		if err != nil {
			continue
		}
		sy, sm, sd := start.Date()
		if sy == y && sm == m && sd == d {
			due = append(due, s)
		}
	}
	return due
}
