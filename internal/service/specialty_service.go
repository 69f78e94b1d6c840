package service

import (
	"context"

	"school_manager/internal/model"
	"school_manager/internal/repository"
)

type SpecialtyService interface {
	Create(ctx context.Context, req model.SpecialtyRequest) (*model.Specialty, error)
	List(ctx context.Context) ([]model.Specialty, error)
	Get(ctx context.Context, id int64) (*model.Specialty, error)
	Update(ctx context.Context, id int64, req model.SpecialtyRequest) (*model.Specialty, error)
	Delete(ctx context.Context, id int64) error
}

type specialtyService struct {
	repo repository.SpecialtyRepository
}

func NewSpecialtyService(repo repository.SpecialtyRepository) SpecialtyService {
	return &specialtyService{repo: repo}
}

func (s *specialtyService) Create(ctx context.Context, req model.SpecialtyRequest) (*model.Specialty, error) {
	sp := &model.Specialty{Name: req.Name}
	if err := s.repo.Create(ctx, sp); err != nil {
		return nil, err
	}
	return sp, nil
}

func (s *specialtyService) List(ctx context.Context) ([]model.Specialty, error) {
	return s.repo.List(ctx)
}

func (s *specialtyService) Get(ctx context.Context, id int64) (*model.Specialty, error) {
	sp, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sp == nil {
		return nil, ErrSpecialtyNotFound
	}
	return sp, nil
}

func (s *specialtyService) Update(ctx context.Context, id int64, req model.SpecialtyRequest) (*model.Specialty, error) {
	sp := &model.Specialty{ID: id, Name: req.Name}
	if err := s.repo.Update(ctx, sp); err != nil {
		return nil, notFound(err, ErrSpecialtyNotFound)
	}
	return sp, nil
}

func (s *specialtyService) Delete(ctx context.Context, id int64) error {
	return notFound(s.repo.Delete(ctx, id), ErrSpecialtyNotFound)
}
