package payment

import "time"

// Payment is one participant's settled share of a session. Rows are written
// in a batch at settlement time and never updated or deleted.
type Payment struct {
	ID          int       `db:"id" json:"id"`
	ScheduleID  int       `db:"schedule_id" json:"schedule_id"`
	MemberID    int       `db:"member_id" json:"member_id"`
	CourtShare  float64   `db:"court_share" json:"court_share"`
	RacketShare float64   `db:"racket_share" json:"racket_share"`
	WaterShare  float64   `db:"water_share" json:"water_share"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// Total is the participant's full share across the three cost categories.
func (p Payment) Total() float64 {
	return p.CourtShare + p.RacketShare + p.WaterShare
}
