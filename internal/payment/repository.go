package payment

import (
	"context"

	"github.com/jmoiron/sqlx"
)

const paymentColumns = `id, schedule_id, member_id, court_share, racket_share, water_share, created_at`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetBySchedule(ctx context.Context, scheduleID int) ([]Payment, error) {
	var payments []Payment
	err := r.db.SelectContext(ctx, &payments,
		`SELECT `+paymentColumns+` FROM payments WHERE schedule_id = $1 ORDER BY id ASC`, scheduleID)
	if err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *repository) GetByMember(ctx context.Context, memberID int) ([]Payment, error) {
	var payments []Payment
	err := r.db.SelectContext(ctx, &payments,
		`SELECT `+paymentColumns+` FROM payments WHERE member_id = $1 ORDER BY id ASC`, memberID)
	if err != nil {
		return nil, err
	}
	return payments, nil
}
