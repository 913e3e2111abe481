package fund

import (
	"context"

	"github.com/jmoiron/sqlx"
)

const fundColumns = `id, member_id, amount, created_at`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, memberID int, amount float64) (*Fund, error) {
	var f Fund
	err := r.db.GetContext(ctx, &f,
		`INSERT INTO funds (member_id, amount) VALUES ($1, $2) RETURNING `+fundColumns,
		memberID, amount,
	)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *repository) GetAll(ctx context.Context) ([]Fund, error) {
	var funds []Fund
	err := r.db.SelectContext(ctx, &funds,
		`SELECT `+fundColumns+` FROM funds ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	return funds, nil
}

func (r *repository) GetByMember(ctx context.Context, memberID int) ([]Fund, error) {
	var funds []Fund
	err := r.db.SelectContext(ctx, &funds,
		`SELECT `+fundColumns+` FROM funds WHERE member_id = $1 ORDER BY created_at DESC, id DESC`,
		memberID,
	)
	if err != nil {
		return nil, err
	}
	return funds, nil
}
