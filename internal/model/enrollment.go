package model

import (
	"time"

	"school_manager/internal/validation"
)

// Enrollment links a student to a class. A pair is enrolled at most once.
type Enrollment struct {
	ID        int64     `json:"id"`
	StudentID int64     `json:"student_id"`
	ClassID   int64     `json:"class_id"`
	CreatedAt time.Time `json:"created_at"`
}

// EnrollmentRequest is used both to enroll and to unenroll.
type EnrollmentRequest struct {
	StudentID validation.ID `json:"student_id" validate:"required,gt=0"`
	ClassID   validation.ID `json:"class_id" validate:"required,gt=0"`
}
