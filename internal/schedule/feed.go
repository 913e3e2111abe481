package schedule

import (
	"sort"
	"time"

	"github.com/duonglna/hoibongcuoinhandao/internal/court"
)

// Predicate selects schedules for a display context. The several ad hoc
// "which sessions to show" filters collapse into compositions of these.
type Predicate func(s Schedule, now time.Time) bool

func StatusIs(status Status) Predicate {
	return func(s Schedule, _ time.Time) bool {
		return s.Status == status
	}
}

func Upcoming() Predicate {
	return func(s Schedule, now time.Time) bool {
		start, err := s.StartAt()
		if err != nil {
			return false
		}
		return now.Before(start)
	}
}

// ThisWeek matches schedules dated within the Monday-to-Sunday week
// containing now.
func ThisWeek() Predicate {
	return func(s Schedule, now time.Time) bool {
		start, err := s.StartAt()
		if err != nil {
			return false
		}
		weekStart := startOfWeek(now)
		weekEnd := weekStart.AddDate(0, 0, 7)
		return !start.Before(weekStart) && start.Before(weekEnd)
	}
}

func HasParticipant(memberID int) Predicate {
	return func(s Schedule, _ time.Time) bool {
		for _, p := range s.Participants {
			if p == memberID {
				return true
			}
		}
		return false
	}
}

func And(preds ...Predicate) Predicate {
	return func(s Schedule, now time.Time) bool {
		for _, p := range preds {
			if !p(s, now) {
				return false
			}
		}
		return true
	}
}

func startOfWeek(now time.Time) time.Time {
	weekday := int(now.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday belongs to the week that started the previous Monday
	}
	day := now.AddDate(0, 0, -(weekday - 1))
	return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, now.Location())
}

// BuildFeed filters schedules by pred, enriches each with its resolved court
// and a display price recomputed from the court's current rate, and orders
// ascending by start datetime. Schedules whose date or time fails to parse
// are dropped rather than failing the feed. Equal start keys keep their
// original relative order.
func BuildFeed(schedules []Schedule, courts []court.Court, pred Predicate, now time.Time) []EnrichedSchedule {
	courtsByID := make(map[int]court.Court, len(courts))
	for _, ct := range courts {
		courtsByID[ct.ID] = ct
	}

	feed := make([]EnrichedSchedule, 0, len(schedules))
	for _, s := range schedules {
		if _, err := s.StartAt(); err != nil {
			continue
		}
		if !pred(s, now) {
			continue
		}

		enriched := EnrichedSchedule{
			Schedule: s,
			State:    s.State(now),
		}
		if ct, ok := courtsByID[s.CourtID]; ok {
			c := ct
			enriched.Court = &c
			enriched.TotalCourtPrice = float64(s.NumberOfCourts) * s.Hours * ct.PricePerHour
		}
		feed = append(feed, enriched)
	}

	sort.SliceStable(feed, func(i, j int) bool {
		a, _ := feed[i].StartAt()
		b, _ := feed[j].StartAt()
		return a.Before(b)
	})

	return feed
}
