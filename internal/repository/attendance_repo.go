package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"school_manager/internal/model"

	"github.com/jackc/pgx/v5"
)

// AttendanceFilter narrows attendance listings. Zero values are ignored.
type AttendanceFilter struct {
	StudentID int64
	ClassID   int64
	Date      string
}

type AttendanceRepository interface {
	Create(ctx context.Context, a *model.Attendance) error
	FindByID(ctx context.Context, id int64) (*model.Attendance, error)
	List(ctx context.Context, filter AttendanceFilter) ([]model.Attendance, error)
	Update(ctx context.Context, a *model.Attendance) error
	Delete(ctx context.Context, id int64) error
}

type attendanceRepository struct {
	db DB
}

func NewAttendanceRepository(db DB) AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceSelect = `SELECT a.id, a.student_id, a.class_id, to_char(a.date, 'YYYY-MM-DD'), a.present,
       u.first_name, u.email
  FROM attendance a
  JOIN users u ON u.id = a.student_id`

func scanAttendance(row rowScanner) (model.Attendance, error) {
	var a model.Attendance
	err := row.Scan(&a.ID, &a.StudentID, &a.ClassID, &a.Date, &a.Present, &a.StudentName, &a.StudentEmail)
	return a, err
}

func (r *attendanceRepository) Create(ctx context.Context, a *model.Attendance) error {
	sql := `INSERT INTO attendance (student_id, class_id, date, present)
            VALUES ($1, $2, $3::text::date, $4) RETURNING id`
	if err := r.db.QueryRow(ctx, sql, a.StudentID, a.ClassID, a.Date, a.Present).Scan(&a.ID); err != nil {
		return fmt.Errorf("failed to create attendance: %w", err)
	}
	return nil
}

func (r *attendanceRepository) FindByID(ctx context.Context, id int64) (*model.Attendance, error) {
	a, err := scanAttendance(r.db.QueryRow(ctx, attendanceSelect+` WHERE a.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find attendance by ID: %w", err)
	}
	return &a, nil
}

// List retrieves attendance records matching filter, newest date first.
func (r *attendanceRepository) List(ctx context.Context, filter AttendanceFilter) ([]model.Attendance, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(attendanceSelect)
	queryBuilder.WriteString(" WHERE TRUE")
	args := []any{}

	if filter.StudentID != 0 {
		args = append(args, filter.StudentID)
		fmt.Fprintf(&queryBuilder, " AND a.student_id = $%d", len(args))
	}
	if filter.ClassID != 0 {
		args = append(args, filter.ClassID)
		fmt.Fprintf(&queryBuilder, " AND a.class_id = $%d", len(args))
	}
	if filter.Date != "" {
		args = append(args, filter.Date)
		fmt.Fprintf(&queryBuilder, " AND a.date = $%d::text::date", len(args))
	}
	queryBuilder.WriteString(" ORDER BY a.date DESC, a.id")

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance: %w", err)
	}
	list, err := collect(rows, scanAttendance)
	if err != nil {
		return nil, fmt.Errorf("failed to read attendance: %w", err)
	}
	return list, nil
}

func (r *attendanceRepository) Update(ctx context.Context, a *model.Attendance) error {
	sql := `UPDATE attendance SET student_id = $1, class_id = $2, date = $3::text::date, present = $4 WHERE id = $5`
	tag, err := r.db.Exec(ctx, sql, a.StudentID, a.ClassID, a.Date, a.Present, a.ID)
	if err != nil {
		return fmt.Errorf("failed to update attendance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *attendanceRepository) Delete(ctx context.Context, id int64) error {
	if err := deleteByID(ctx, r.db, `DELETE FROM attendance WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete attendance: %w", err)
	}
	return nil
}
