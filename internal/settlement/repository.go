package settlement

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"
)

var ErrAlreadySettled = errors.New("schedule is already settled")

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Settle(ctx context.Context, scheduleID int, shares []Share) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// The status guard makes the flip conditional: a second settle attempt
	// matches zero rows and the whole transaction is abandoned.
	result, err := tx.ExecContext(ctx,
		`UPDATE schedules SET status = 'done' WHERE id = $1 AND status = 'pending'`,
		scheduleID,
	)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrAlreadySettled
	}

	for _, share := range shares {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO payments (schedule_id, member_id, court_share, racket_share, water_share) VALUES ($1, $2, $3, $4, $5)`,
			scheduleID, share.MemberID, share.CourtShare, share.RacketShare, share.WaterShare,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}
