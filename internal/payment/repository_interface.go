package payment

import "context"

type Repository interface {
	GetBySchedule(ctx context.Context, scheduleID int) ([]Payment, error)
	GetByMember(ctx context.Context, memberID int) ([]Payment, error)
}
