package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"school_manager/internal/model"

	"github.com/jackc/pgx/v5"
)

// ClassFilter narrows class listings. Zero values are ignored.
type ClassFilter struct {
	TeacherID   int64
	SpecialtyID int64
	Day         string
}

// ClassRepository defines operations for class data
type ClassRepository interface {
	Create(ctx context.Context, c *model.Class) error
	FindByID(ctx context.Context, id int64) (*model.Class, error)
	List(ctx context.Context, filter ClassFilter) ([]model.Class, error)
	Update(ctx context.Context, c *model.Class) error
	Delete(ctx context.Context, id int64) error
}

type classRepository struct {
	db DB
}

func NewClassRepository(db DB) ClassRepository {
	return &classRepository{db: db}
}

// Times travel as text and come back as HH:MM.
const classSelect = `SELECT c.id, c.specialty_id, c.teacher_id, c.day,
       to_char(c.start_time, 'HH24:MI'), to_char(c.end_time, 'HH24:MI'),
       u.first_name || ' ' || u.last_name, s.name
  FROM classes c
  JOIN users u ON u.id = c.teacher_id
  JOIN specialties s ON s.id = c.specialty_id`

func scanClass(row rowScanner) (model.Class, error) {
	var c model.Class
	err := row.Scan(&c.ID, &c.SpecialtyID, &c.TeacherID, &c.Day, &c.StartTime, &c.EndTime,
		&c.TeacherName, &c.SpecialtyName)
	return c, err
}

// Create inserts a class. Joined names are not populated.
func (r *classRepository) Create(ctx context.Context, c *model.Class) error {
	sql := `INSERT INTO classes (specialty_id, teacher_id, day, start_time, end_time)
            VALUES ($1, $2, $3, $4::text::time, $5::text::time) RETURNING id`
	err := r.db.QueryRow(ctx, sql, c.SpecialtyID, c.TeacherID, c.Day, c.StartTime, c.EndTime).Scan(&c.ID)
	if err != nil {
		return fmt.Errorf("failed to create class: %w", err)
	}
	return nil
}

// FindByID retrieves a class with teacher and specialty names.
func (r *classRepository) FindByID(ctx context.Context, id int64) (*model.Class, error) {
	c, err := scanClass(r.db.QueryRow(ctx, classSelect+` WHERE c.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find class by ID: %w", err)
	}
	return &c, nil
}

// List retrieves classes matching filter, ordered by weekday and start time.
func (r *classRepository) List(ctx context.Context, filter ClassFilter) ([]model.Class, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(classSelect)
	queryBuilder.WriteString(" WHERE TRUE")
	args := []any{}

	if filter.TeacherID != 0 {
		args = append(args, filter.TeacherID)
		fmt.Fprintf(&queryBuilder, " AND c.teacher_id = $%d", len(args))
	}
	if filter.SpecialtyID != 0 {
		args = append(args, filter.SpecialtyID)
		fmt.Fprintf(&queryBuilder, " AND c.specialty_id = $%d", len(args))
	}
	if filter.Day != "" {
		args = append(args, filter.Day)
		fmt.Fprintf(&queryBuilder, " AND c.day = $%d", len(args))
	}

	queryBuilder.WriteString(` ORDER BY array_position(ARRAY['monday','tuesday','wednesday','thursday','friday','saturday','sunday']::varchar[], c.day), c.start_time, c.id`)

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query classes: %w", err)
	}
	classes, err := collect(rows, scanClass)
	if err != nil {
		return nil, fmt.Errorf("failed to read classes: %w", err)
	}
	return classes, nil
}

func (r *classRepository) Update(ctx context.Context, c *model.Class) error {
	sql := `UPDATE classes
            SET specialty_id = $1, teacher_id = $2, day = $3, start_time = $4::text::time, end_time = $5::text::time
            WHERE id = $6`
	tag, err := r.db.Exec(ctx, sql, c.SpecialtyID, c.TeacherID, c.Day, c.StartTime, c.EndTime, c.ID)
	if err != nil {
		return fmt.Errorf("failed to update class: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *classRepository) Delete(ctx context.Context, id int64) error {
	if err := deleteByID(ctx, r.db, `DELETE FROM classes WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete class: %w", err)
	}
	return nil
}
