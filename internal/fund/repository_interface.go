package fund

import "context"

type Repository interface {
	Create(ctx context.Context, memberID int, amount float64) (*Fund, error)
	GetAll(ctx context.Context) ([]Fund, error)
	GetByMember(ctx context.Context, memberID int) ([]Fund, error)
}
