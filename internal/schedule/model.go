package schedule

import (
	"fmt"
	"time"

	"github.com/duonglna/hoibongcuoinhandao/internal/court"
)

type Status string

const (
	StatusPending Status = "pending"
	StatusDone    Status = "done"
)

// SessionState is derived from status and the clock, never stored.
type SessionState string

const (
	StateUpcoming      SessionState = "upcoming"
	StateInProgress    SessionState = "in_progress"
	StatePastUnsettled SessionState = "past_unsettled"
	StatePastSettled   SessionState = "past_settled"
	StateUnknown       SessionState = "unknown"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

type Schedule struct {
	ID             int       `db:"id" json:"id"`
	CourtID        int       `db:"court_id" json:"court_id"`
	Date           string    `db:"date" json:"date"`
	StartTime      string    `db:"start_time" json:"start_time"`
	Hours          float64   `db:"hours" json:"hours"`
	NumberOfCourts int       `db:"number_of_courts" json:"number_of_courts"`
	CourtPrice     float64   `db:"court_price" json:"court_price"`
	RacketPrice    float64   `db:"racket_price" json:"racket_price"`
	WaterPrice     float64   `db:"water_price" json:"water_price"`
	Status         Status    `db:"status" json:"status"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`

	Participants []int `db:"-" json:"participants"`
}

// StartAt resolves the schedule's calendar date and start time in local time.
func (s Schedule) StartAt() (time.Time, error) {
	d, err := time.ParseInLocation(dateLayout, s.Date, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("bad date %q: %w", s.Date, err)
	}
	tm, err := time.Parse(timeLayout, s.StartTime)
	if err != nil {
		return time.Time{}, fmt.Errorf("bad start time %q: %w", s.StartTime, err)
	}
	return time.Date(d.Year(), d.Month(), d.Day(), tm.Hour(), tm.Minute(), 0, 0, time.Local), nil
}

func (s Schedule) EndAt() (time.Time, error) {
	start, err := s.StartAt()
	if err != nil {
		return time.Time{}, err
	}
	return start.Add(time.Duration(s.Hours * float64(time.Hour))), nil
}

// State derives the session lifecycle position. PastSettled is terminal.
func (s Schedule) State(now time.Time) SessionState {
	start, err := s.StartAt()
	if err != nil {
		return StateUnknown
	}
	end, _ := s.EndAt()

	switch {
	case now.Before(start):
		return StateUpcoming
	case now.Before(end):
		return StateInProgress
	case s.Status == StatusDone:
		return StatePastSettled
	default:
		return StatePastUnsettled
	}
}

// EnrichedSchedule attaches the resolved court (nil when the referenced court
// no longer exists) and a display price recomputed from the court's current
// hourly rate, which may differ from the stored CourtPrice snapshot.
type EnrichedSchedule struct {
	Schedule
	Court           *court.Court `json:"court"`
	TotalCourtPrice float64      `json:"total_court_price"`
	State           SessionState `json:"state"`
}

type CreateScheduleRequest struct {
	CourtID        int     `json:"court_id" binding:"required"`
	Date           string  `json:"date" binding:"required"`
	StartTime      string  `json:"start_time" binding:"required"`
	Hours          float64 `json:"hours" binding:"required,gte=0.5"`
	NumberOfCourts int     `json:"number_of_courts" binding:"required,min=1"`
	RacketPrice    float64 `json:"racket_price" binding:"gte=0"`
	WaterPrice     float64 `json:"water_price" binding:"gte=0"`
	Participants   []int   `json:"participants"`
}
