package repository

import (
	"context"
	"errors"
	"fmt"

	"school_manager/internal/model"

	"github.com/jackc/pgx/v5"
)

// UserRepository defines operations for user data
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByID(ctx context.Context, id int64) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	ListByRole(ctx context.Context, role model.Role) ([]model.User, error)
	Update(ctx context.Context, user *model.User) error
	Delete(ctx context.Context, id int64) error
}

type userRepository struct {
	db DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db DB) UserRepository {
	return &userRepository{db: db}
}

const userColumns = `id, first_name, last_name, dni, email, password, role_id, status, specialty_id, created_at`

func scanUser(row rowScanner) (model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.FirstName, &u.LastName, &u.DNI, &u.Email, &u.Password,
		&u.RoleID, &u.Status, &u.SpecialtyID, &u.CreatedAt)
	return u, err
}

// Create inserts a new user into the database
func (r *userRepository) Create(ctx context.Context, u *model.User) error {
	sql := `INSERT INTO users (first_name, last_name, dni, email, password, role_id, status, specialty_id)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id, created_at`
	err := r.db.QueryRow(ctx, sql, u.FirstName, u.LastName, u.DNI, u.Email, u.Password,
		u.RoleID, u.Status, u.SpecialtyID).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *userRepository) findOne(ctx context.Context, where string, arg any) (*model.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE `+where, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

// FindByEmail retrieves a user by email. A missing user is (nil, nil).
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	u, err := r.findOne(ctx, `email = $1`, email)
	if err != nil {
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	return u, nil
}

// FindByID retrieves a user by their ID
func (r *userRepository) FindByID(ctx context.Context, id int64) (*model.User, error) {
	u, err := r.findOne(ctx, `id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find user by ID: %w", err)
	}
	return u, nil
}

func (r *userRepository) List(ctx context.Context) ([]model.User, error) {
	rows, err := r.db.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	users, err := collect(rows, scanUser)
	if err != nil {
		return nil, fmt.Errorf("failed to read users: %w", err)
	}
	return users, nil
}

// ListByRole backs the teacher and student listings.
func (r *userRepository) ListByRole(ctx context.Context, role model.Role) ([]model.User, error) {
	rows, err := r.db.Query(ctx, `SELECT `+userColumns+` FROM users WHERE role_id = $1 ORDER BY last_name, first_name`, role)
	if err != nil {
		return nil, fmt.Errorf("failed to query users by role: %w", err)
	}
	users, err := collect(rows, scanUser)
	if err != nil {
		return nil, fmt.Errorf("failed to read users by role: %w", err)
	}
	return users, nil
}

// Update writes every mutable column of user.
func (r *userRepository) Update(ctx context.Context, u *model.User) error {
	sql := `UPDATE users
            SET first_name = $1, last_name = $2, dni = $3, email = $4, password = $5,
                role_id = $6, status = $7, specialty_id = $8
            WHERE id = $9`
	tag, err := r.db.Exec(ctx, sql, u.FirstName, u.LastName, u.DNI, u.Email, u.Password,
		u.RoleID, u.Status, u.SpecialtyID, u.ID)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *userRepository) Delete(ctx context.Context, id int64) error {
	if err := deleteByID(ctx, r.db, `DELETE FROM users WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}
