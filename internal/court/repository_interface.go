package court

import "context"

type Repository interface {
	Create(ctx context.Context, name, address, mapLink string, pricePerHour float64) (*Court, error)
	GetAll(ctx context.Context, onlyActive bool) ([]Court, error)
	GetByID(ctx context.Context, id int) (*Court, error)
	Update(ctx context.Context, id int, name, address, mapLink string, pricePerHour float64, active bool) (*Court, error)
	Delete(ctx context.Context, id int) error
}
