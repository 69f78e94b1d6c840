package service

import (
	"context"
	"fmt"

	"school_manager/internal/model"
	"school_manager/internal/repository"
)

type EnrollmentService interface {
	Enroll(ctx context.Context, studentID, classID int64) (*model.Enrollment, error)
	List(ctx context.Context) ([]model.Enrollment, error)
	ListByStudent(ctx context.Context, studentID int64) ([]model.Enrollment, error)
	ListByClass(ctx context.Context, classID int64) ([]model.Enrollment, error)
	Unenroll(ctx context.Context, studentID, classID int64) error
}

type enrollmentService struct {
	repo repository.EnrollmentRepository
}

func NewEnrollmentService(repo repository.EnrollmentRepository) EnrollmentService {
	return &enrollmentService{repo: repo}
}

// Enroll checks for an existing pair before inserting. Two concurrent
// requests can both pass the check; the unique index then rejects the second
// insert and it is reported the same way.
func (s *enrollmentService) Enroll(ctx context.Context, studentID, classID int64) (*model.Enrollment, error) {
	exists, err := s.repo.Exists(ctx, studentID, classID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyEnrolled
	}

	e := &model.Enrollment{StudentID: studentID, ClassID: classID}
	if err := s.repo.Create(ctx, e); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrAlreadyEnrolled
		}
		return nil, fmt.Errorf("failed to enroll student: %w", err)
	}
	return e, nil
}

func (s *enrollmentService) List(ctx context.Context) ([]model.Enrollment, error) {
	return s.repo.List(ctx)
}

func (s *enrollmentService) ListByStudent(ctx context.Context, studentID int64) ([]model.Enrollment, error) {
	return s.repo.ListByStudent(ctx, studentID)
}

func (s *enrollmentService) ListByClass(ctx context.Context, classID int64) ([]model.Enrollment, error) {
	return s.repo.ListByClass(ctx, classID)
}

func (s *enrollmentService) Unenroll(ctx context.Context, studentID, classID int64) error {
	return notFound(s.repo.Delete(ctx, studentID, classID), ErrEnrollmentNotFound)
}
