package handler

import (
	"errors"
	"net/http"
	"regexp"

	"school_manager/internal/middleware"
	"school_manager/internal/service"
	"school_manager/internal/validation"
	"school_manager/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

var notFoundErrors = []error{
	service.ErrUserNotFound,
	service.ErrSpecialtyNotFound,
	service.ErrClassNotFound,
	service.ErrEnrollmentNotFound,
	service.ErrAttendanceNotFound,
	service.ErrMessageNotFound,
	service.ErrItemNotFound,
}

// respondError is the single place errors become HTTP responses.
func respondError(c *gin.Context, err error) {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		c.JSON(http.StatusBadRequest, gin.H{"errors": verrs})
		return
	}

	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	case errors.Is(err, service.ErrEmailTaken):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error(), "field": "email"})
		return
	case errors.Is(err, service.ErrAlreadyEnrolled):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	for _, nf := range notFoundErrors {
		if errors.Is(err, nf) {
			c.JSON(http.StatusNotFound, gin.H{"error": nf.Error()})
			return
		}
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if status, body, ok := storeError(pgErr); ok {
			c.JSON(status, body)
			return
		}
	}

	log := logger.Get()
	log.Error().
		Err(err).
		Str("request_id", c.GetString(middleware.RequestIDKey)).
		Str("method", c.Request.Method).
		Str("route", c.FullPath()).
		Msg("unhandled error")
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}

var detailKeyRe = regexp.MustCompile(`Key \(([^)]+)\)=`)

// conflictField names the offending column of a constraint violation.
func conflictField(pgErr *pgconn.PgError) string {
	if m := detailKeyRe.FindStringSubmatch(pgErr.Detail); m != nil {
		return m[1]
	}
	if pgErr.ColumnName != "" {
		return pgErr.ColumnName
	}
	return pgErr.ConstraintName
}

// storeError maps client-caused database errors. Anything else is left to
// the 500 path.
func storeError(pgErr *pgconn.PgError) (int, gin.H, bool) {
	var (
		status int
		msg    string
	)
	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		status, msg = http.StatusConflict, "a record with this value already exists"
	case pgerrcode.ForeignKeyViolation:
		status, msg = http.StatusBadRequest, "referenced record does not exist"
	case pgerrcode.NotNullViolation:
		status, msg = http.StatusBadRequest, "a required value is missing"
	case pgerrcode.CheckViolation:
		status, msg = http.StatusBadRequest, "value violates a data constraint"
	case pgerrcode.InvalidTextRepresentation, pgerrcode.InvalidDatetimeFormat, pgerrcode.DatetimeFieldOverflow:
		status, msg = http.StatusBadRequest, "invalid value format"
	case pgerrcode.StringDataRightTruncationDataException:
		status, msg = http.StatusBadRequest, "value is too long"
	default:
		return 0, nil, false
	}

	body := gin.H{"error": msg}
	if field := conflictField(pgErr); field != "" {
		body["field"] = field
	}
	return status, body, true
}
