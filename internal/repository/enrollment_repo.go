package repository

import (
	"context"
	"fmt"

	"school_manager/internal/model"
)

type EnrollmentRepository interface {
	Exists(ctx context.Context, studentID, classID int64) (bool, error)
	Create(ctx context.Context, e *model.Enrollment) error
	List(ctx context.Context) ([]model.Enrollment, error)
	ListByStudent(ctx context.Context, studentID int64) ([]model.Enrollment, error)
	ListByClass(ctx context.Context, classID int64) ([]model.Enrollment, error)
	Delete(ctx context.Context, studentID, classID int64) error
}

type enrollmentRepository struct {
	db DB
}

func NewEnrollmentRepository(db DB) EnrollmentRepository {
	return &enrollmentRepository{db: db}
}

const enrollmentColumns = `id, student_id, class_id, created_at`

func scanEnrollment(row rowScanner) (model.Enrollment, error) {
	var e model.Enrollment
	err := row.Scan(&e.ID, &e.StudentID, &e.ClassID, &e.CreatedAt)
	return e, err
}

func (r *enrollmentRepository) Exists(ctx context.Context, studentID, classID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM student_class WHERE student_id = $1 AND class_id = $2)`,
		studentID, classID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check enrollment: %w", err)
	}
	return exists, nil
}

func (r *enrollmentRepository) Create(ctx context.Context, e *model.Enrollment) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO student_class (student_id, class_id) VALUES ($1, $2) RETURNING id, created_at`,
		e.StudentID, e.ClassID).Scan(&e.ID, &e.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create enrollment: %w", err)
	}
	return nil
}

func (r *enrollmentRepository) list(ctx context.Context, where string, args ...any) ([]model.Enrollment, error) {
	rows, err := r.db.Query(ctx, `SELECT `+enrollmentColumns+` FROM student_class`+where+` ORDER BY id`, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query enrollments: %w", err)
	}
	list, err := collect(rows, scanEnrollment)
	if err != nil {
		return nil, fmt.Errorf("failed to read enrollments: %w", err)
	}
	return list, nil
}

func (r *enrollmentRepository) List(ctx context.Context) ([]model.Enrollment, error) {
	return r.list(ctx, "")
}

func (r *enrollmentRepository) ListByStudent(ctx context.Context, studentID int64) ([]model.Enrollment, error) {
	return r.list(ctx, ` WHERE student_id = $1`, studentID)
}

func (r *enrollmentRepository) ListByClass(ctx context.Context, classID int64) ([]model.Enrollment, error) {
	return r.list(ctx, ` WHERE class_id = $1`, classID)
}

// Delete removes the (student, class) pair.
func (r *enrollmentRepository) Delete(ctx context.Context, studentID, classID int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM student_class WHERE student_id = $1 AND class_id = $2`, studentID, classID)
	if err != nil {
		return fmt.Errorf("failed to delete enrollment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
