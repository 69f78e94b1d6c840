package service

import (
	"context"

	"school_manager/internal/model"
	"school_manager/internal/repository"
)

type AttendanceService interface {
	Create(ctx context.Context, req model.CreateAttendanceRequest) (*model.Attendance, error)
	List(ctx context.Context, filter repository.AttendanceFilter) ([]model.Attendance, error)
	Get(ctx context.Context, id int64) (*model.Attendance, error)
	Update(ctx context.Context, id int64, req model.UpdateAttendanceRequest) (*model.Attendance, error)
	Delete(ctx context.Context, id int64) error
}

type attendanceService struct {
	repo repository.AttendanceRepository
}

func NewAttendanceService(repo repository.AttendanceRepository) AttendanceService {
	return &attendanceService{repo: repo}
}

func (s *attendanceService) Create(ctx context.Context, req model.CreateAttendanceRequest) (*model.Attendance, error) {
	a := &model.Attendance{
		StudentID: req.StudentID.Int64(),
		ClassID:   req.ClassID.Int64(),
		Date:      req.Date,
		Present:   *req.Present,
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return s.Get(ctx, a.ID)
}

func (s *attendanceService) List(ctx context.Context, filter repository.AttendanceFilter) ([]model.Attendance, error) {
	return s.repo.List(ctx, filter)
}

func (s *attendanceService) Get(ctx context.Context, id int64) (*model.Attendance, error) {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, ErrAttendanceNotFound
	}
	return a, nil
}

// Update merges onto the stored record and reads it back so the joined
// student fields follow a changed student_id.
func (s *attendanceService) Update(ctx context.Context, id int64, req model.UpdateAttendanceRequest) (*model.Attendance, error) {
	a, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.StudentID != nil {
		a.StudentID = req.StudentID.Int64()
	}
	if req.ClassID != nil {
		a.ClassID = req.ClassID.Int64()
	}
	if req.Date != nil {
		a.Date = *req.Date
	}
	if req.Present != nil {
		a.Present = *req.Present
	}

	if err := s.repo.Update(ctx, a); err != nil {
		return nil, notFound(err, ErrAttendanceNotFound)
	}
	return s.Get(ctx, id)
}

func (s *attendanceService) Delete(ctx context.Context, id int64) error {
	return notFound(s.repo.Delete(ctx, id), ErrAttendanceNotFound)
}
