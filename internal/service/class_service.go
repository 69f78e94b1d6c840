package service

import (
	"context"

	"school_manager/internal/model"
	"school_manager/internal/repository"
)

type ClassService interface {
	Create(ctx context.Context, req model.CreateClassRequest) (*model.Class, error)
	List(ctx context.Context, filter repository.ClassFilter) ([]model.Class, error)
	Get(ctx context.Context, id int64) (*model.Class, error)
	Update(ctx context.Context, id int64, req model.UpdateClassRequest) (*model.Class, error)
	Delete(ctx context.Context, id int64) error
}

type classService struct {
	repo repository.ClassRepository
}

func NewClassService(repo repository.ClassRepository) ClassService {
	return &classService{repo: repo}
}

// Create stores the class and reads it back so the response carries the
// teacher and specialty names.
func (s *classService) Create(ctx context.Context, req model.CreateClassRequest) (*model.Class, error) {
	c := &model.Class{
		SpecialtyID: req.SpecialtyID.Int64(),
		TeacherID:   req.TeacherID.Int64(),
		Day:         req.Day,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return s.Get(ctx, c.ID)
}

func (s *classService) List(ctx context.Context, filter repository.ClassFilter) ([]model.Class, error) {
	return s.repo.List(ctx, filter)
}

func (s *classService) Get(ctx context.Context, id int64) (*model.Class, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrClassNotFound
	}
	return c, nil
}

// Update merges onto the stored class and re-checks the time range on the
// merged result, so moving only one end is still validated.
func (s *classService) Update(ctx context.Context, id int64, req model.UpdateClassRequest) (*model.Class, error) {
	if errs := req.CrossValidate(); errs != nil {
		return nil, errs
	}

	c, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.SpecialtyID != nil {
		c.SpecialtyID = req.SpecialtyID.Int64()
	}
	if req.TeacherID != nil {
		c.TeacherID = req.TeacherID.Int64()
	}
	if req.Day != nil {
		c.Day = *req.Day
	}
	if req.StartTime != nil {
		c.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		c.EndTime = *req.EndTime
	}
	if errs := model.CheckClassTimes(c.StartTime, c.EndTime); errs != nil {
		return nil, errs
	}

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, notFound(err, ErrClassNotFound)
	}
	return s.Get(ctx, id)
}

func (s *classService) Delete(ctx context.Context, id int64) error {
	return notFound(s.repo.Delete(ctx, id), ErrClassNotFound)
}
