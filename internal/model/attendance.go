package model

import "school_manager/internal/validation"

type Attendance struct {
	ID        int64  `json:"id"`
	StudentID int64  `json:"student_id"`
	ClassID   int64  `json:"class_id"`
	Date      string `json:"date"`
	Present   bool   `json:"present"`
	// Set on the full listing only.
	StudentName  string `json:"first_name,omitempty"`
	StudentEmail string `json:"email,omitempty"`
}

type CreateAttendanceRequest struct {
	StudentID validation.ID `json:"student_id" validate:"required,gt=0"`
	ClassID   validation.ID `json:"class_id" validate:"required,gt=0"`
	Date      string        `json:"date" validate:"required,ymd"`
	Present   *bool         `json:"present" validate:"required"`
}

type UpdateAttendanceRequest struct {
	StudentID *validation.ID `json:"student_id" validate:"omitempty,gt=0"`
	ClassID   *validation.ID `json:"class_id" validate:"omitempty,gt=0"`
	Date      *string        `json:"date" validate:"omitempty,ymd"`
	Present   *bool          `json:"present"`
}
