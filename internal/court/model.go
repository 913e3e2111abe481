package court

import "time"

type Court struct {
	ID           int       `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Address      string    `db:"address" json:"address"`
	MapLink      string    `db:"map_link" json:"map_link"`
	PricePerHour float64   `db:"price_per_hour" json:"price_per_hour"`
	Active       bool      `db:"active" json:"active"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

type CreateCourtRequest struct {
	Name         string  `json:"name" binding:"required"`
	Address      string  `json:"address"`
	MapLink      string  `json:"map_link"`
	PricePerHour float64 `json:"price_per_hour" binding:"gte=0"`
}

type UpdateCourtRequest struct {
	Name         string  `json:"name" binding:"required"`
	Address      string  `json:"address"`
	MapLink      string  `json:"map_link"`
	PricePerHour float64 `json:"price_per_hour" binding:"gte=0"`
	Active       *bool   `json:"active"`
}
