package schedule

import "context"

type CreateParams struct {
	CourtID        int
	Date           string
	StartTime      string
	Hours          float64
	NumberOfCourts int
	CourtPrice     float64
	RacketPrice    float64
	WaterPrice     float64
	Participants   []int
}

type Repository interface {
	Create(ctx context.Context, params CreateParams) (*Schedule, error)
	GetAll(ctx context.Context) ([]Schedule, error)
	GetByID(ctx context.Context, id int) (*Schedule, error)
	Update(ctx context.Context, id int, params CreateParams) (*Schedule, error)
	Delete(ctx context.Context, id int) error
}
