package member

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"
)

var ErrMemberNotFound = errors.New("member not found")

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, name, phone, email string) (*Member, error) {
	query := `
		INSERT INTO members (name, phone, email)
		VALUES ($1, $2, $3)
		RETURNING id, name, phone, email, created_at
	`

	var m Member
	err := r.db.GetContext(ctx, &m, query, name, phone, email)
	if err != nil {
		return nil, err
	}

	return &m, nil
}

func (r *repository) GetAll(ctx context.Context) ([]Member, error) {
	query := `
		SELECT id, name, phone, email, created_at
		FROM members
		ORDER BY id ASC
	`

	var members []Member
	err := r.db.SelectContext(ctx, &members, query)
	if err != nil {
		return nil, err
	}

	return members, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Member, error) {
	query := `
		SELECT id, name, phone, email, created_at
		FROM members
		WHERE id = $1
	`

	var m Member
	err := r.db.GetContext(ctx, &m, query, id)
	if err != nil {
		return nil, err
	}

	return &m, nil
}

func (r *repository) Update(ctx context.Context, id int, name, phone, email string) (*Member, error) {
	query := `
		UPDATE members
		SET name = $1, phone = $2, email = $3
		WHERE id = $4
		RETURNING id, name, phone, email, created_at
	`

	var m Member
	err := r.db.GetContext(ctx, &m, query, name, phone, email, id)
	if err != nil {
		return nil, err
	}

	return &m, nil
}

// Delete removes the member row only. Historical payment and fund rows keep
// their member_id and become orphaned references.
func (r *repository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM members WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrMemberNotFound
	}

	return nil
}
