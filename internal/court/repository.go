package court

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"
)

var ErrCourtNotFound = errors.New("court not found")

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, name, address, mapLink string, pricePerHour float64) (*Court, error) {
	query := `
		INSERT INTO courts (name, address, map_link, price_per_hour)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, address, map_link, price_per_hour, active, created_at
	`

	var court Court
	err := r.db.GetContext(ctx, &court, query, name, address, mapLink, pricePerHour)
	if err != nil {
		return nil, err
	}

	return &court, nil
}

func (r *repository) GetAll(ctx context.Context, onlyActive bool) ([]Court, error) {
	query := `
		SELECT id, name, address, map_link, price_per_hour, active, created_at
		FROM courts
	`
	if onlyActive {
		query += " WHERE active"
	}
	query += " ORDER BY id ASC"

	var courts []Court
	err := r.db.SelectContext(ctx, &courts, query)
	if err != nil {
		return nil, err
	}

	return courts, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Court, error) {
	query := `
		SELECT id, name, address, map_link, price_per_hour, active, created_at
		FROM courts
		WHERE id = $1
	`

	var court Court
	err := r.db.GetContext(ctx, &court, query, id)
	if err != nil {
		return nil, err
	}

	return &court, nil
}

func (r *repository) Update(ctx context.Context, id int, name, address, mapLink string, pricePerHour float64, active bool) (*Court, error) {
	query := `
		UPDATE courts
		SET name = $1, address = $2, map_link = $3, price_per_hour = $4, active = $5
		WHERE id = $6
		RETURNING id, name, address, map_link, price_per_hour, active, created_at
	`

	var court Court
	err := r.db.GetContext(ctx, &court, query, name, address, mapLink, pricePerHour, active, id)
	if err != nil {
		return nil, err
	}

	return &court, nil
}

func (r *repository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM courts WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrCourtNotFound
	}

	return nil
}
