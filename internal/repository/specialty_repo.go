package repository

import (
	"context"
	"errors"
	"fmt"

	"school_manager/internal/model"

	"github.com/jackc/pgx/v5"
)

type SpecialtyRepository interface {
	Create(ctx context.Context, s *model.Specialty) error
	FindByID(ctx context.Context, id int64) (*model.Specialty, error)
	List(ctx context.Context) ([]model.Specialty, error)
	Update(ctx context.Context, s *model.Specialty) error
	Delete(ctx context.Context, id int64) error
}

type specialtyRepository struct {
	db DB
}

func NewSpecialtyRepository(db DB) SpecialtyRepository {
	return &specialtyRepository{db: db}
}

func scanSpecialty(row rowScanner) (model.Specialty, error) {
	var s model.Specialty
	err := row.Scan(&s.ID, &s.Name)
	return s, err
}

func (r *specialtyRepository) Create(ctx context.Context, s *model.Specialty) error {
	err := r.db.QueryRow(ctx, `INSERT INTO specialties (name) VALUES ($1) RETURNING id`, s.Name).Scan(&s.ID)
	if err != nil {
		return fmt.Errorf("failed to create specialty: %w", err)
	}
	return nil
}

func (r *specialtyRepository) FindByID(ctx context.Context, id int64) (*model.Specialty, error) {
	s, err := scanSpecialty(r.db.QueryRow(ctx, `SELECT id, name FROM specialties WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find specialty by ID: %w", err)
	}
	return &s, nil
}

func (r *specialtyRepository) List(ctx context.Context) ([]model.Specialty, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM specialties ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query specialties: %w", err)
	}
	list, err := collect(rows, scanSpecialty)
	if err != nil {
		return nil, fmt.Errorf("failed to read specialties: %w", err)
	}
	return list, nil
}

func (r *specialtyRepository) Update(ctx context.Context, s *model.Specialty) error {
	tag, err := r.db.Exec(ctx, `UPDATE specialties SET name = $1 WHERE id = $2`, s.Name, s.ID)
	if err != nil {
		return fmt.Errorf("failed to update specialty: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *specialtyRepository) Delete(ctx context.Context, id int64) error {
	if err := deleteByID(ctx, r.db, `DELETE FROM specialties WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete specialty: %w", err)
	}
	return nil
}
