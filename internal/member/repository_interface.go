package member

import "context"

type Repository interface {
	Create(ctx context.Context, name, phone, email string) (*Member, error)
	GetAll(ctx context.Context) ([]Member, error)
	GetByID(ctx context.Context, id int) (*Member, error)
	Update(ctx context.Context, id int, name, phone, email string) (*Member, error)
	Delete(ctx context.Context, id int) error
}
