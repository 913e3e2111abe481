package member

import (
	"context"
	"database/sql"
	"errors"
)

type Service interface {
	Create(ctx context.Context, req CreateMemberRequest) (*Member, error)
	GetAll(ctx context.Context) ([]Member, error)
	GetByID(ctx context.Context, id int) (*Member, error)
	Update(ctx context.Context, id int, req UpdateMemberRequest) (*Member, error)
	Delete(ctx context.Context, id int) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateMemberRequest) (*Member, error) {
	return s.repo.Create(ctx, req.Name, req.Phone, req.Email)
}

func (s *service) GetAll(ctx context.Context) ([]Member, error) {
	return s.repo.GetAll(ctx)
}

func (s *service) GetByID(ctx context.Context, id int) (*Member, error) {
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}
	return m, nil
}

func (s *service) Update(ctx context.Context, id int, req UpdateMemberRequest) (*Member, error) {
	m, err := s.repo.Update(ctx, id, req.Name, req.Phone, req.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}
	return m, nil
}

func (s *service) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
