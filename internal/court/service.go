package court

import (
	"context"
	"database/sql"
	"errors"
)

type Service interface {
	Create(ctx context.Context, req CreateCourtRequest) (*Court, error)
	GetAll(ctx context.Context, onlyActive bool) ([]Court, error)
	GetByID(ctx context.Context, id int) (*Court, error)
	Update(ctx context.Context, id int, req UpdateCourtRequest) (*Court, error)
	Delete(ctx context.Context, id int) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateCourtRequest) (*Court, error) {
	return s.repo.Create(ctx, req.Name, req.Address, req.MapLink, req.PricePerHour)
}

func (s *service) GetAll(ctx context.Context, onlyActive bool) ([]Court, error) {
	return s.repo.GetAll(ctx, onlyActive)
}

func (s *service) GetByID(ctx context.Context, id int) (*Court, error) {
	court, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCourtNotFound
		}
		return nil, err
	}
	return court, nil
}

func (s *service) Update(ctx context.Context, id int, req UpdateCourtRequest) (*Court, error) {
	// Active defaults to true when the request omits it, matching create.
	active := true
	if req.Active != nil {
		active = *req.Active
	}

	court, err := s.repo.Update(ctx, id, req.Name, req.Address, req.MapLink, req.PricePerHour, active)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCourtNotFound
		}
		return nil, err
	}
	return court, nil
}

func (s *service) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
