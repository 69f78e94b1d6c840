package service

import (
	"errors"

	"school_manager/internal/repository"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("a user with this email already exists")
	ErrAlreadyEnrolled    = errors.New("student is already enrolled in this class")

	ErrUserNotFound       = errors.New("user not found")
	ErrSpecialtyNotFound  = errors.New("specialty not found")
	ErrClassNotFound      = errors.New("class not found")
	ErrEnrollmentNotFound = errors.New("enrollment not found")
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrMessageNotFound    = errors.New("class message not found")
	ErrItemNotFound       = errors.New("item not found")
)

// notFound swaps the repository's generic miss for the resource sentinel.
func notFound(err, sentinel error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return sentinel
	}
	return err
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
