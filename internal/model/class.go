package model

import "school_manager/internal/validation"

// Days of the week a class can be scheduled on.
var Days = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

// Class is a weekly slot of a specialty taught by one teacher. TeacherName and
// SpecialtyName are filled on reads only.
type Class struct {
	ID            int64  `json:"id"`
	SpecialtyID   int64  `json:"specialty_id"`
	TeacherID     int64  `json:"teacher_id"`
	Day           string `json:"day"`
	StartTime     string `json:"start_time"`
	EndTime       string `json:"end_time"`
	TeacherName   string `json:"teacher_name,omitempty"`
	SpecialtyName string `json:"specialty_name,omitempty"`
}

type CreateClassRequest struct {
	SpecialtyID validation.ID `json:"specialty_id" validate:"required,gt=0"`
	TeacherID   validation.ID `json:"teacher_id" validate:"required,gt=0"`
	Day         string        `json:"day" validate:"required,oneof=monday tuesday wednesday thursday friday saturday sunday"`
	StartTime   string        `json:"start_time" validate:"required,hhmm"`
	EndTime     string        `json:"end_time" validate:"required,hhmm"`
}

func (r *CreateClassRequest) CrossValidate() validation.Errors {
	return CheckClassTimes(r.StartTime, r.EndTime)
}

type UpdateClassRequest struct {
	SpecialtyID *validation.ID `json:"specialty_id" validate:"omitempty,gt=0"`
	TeacherID   *validation.ID `json:"teacher_id" validate:"omitempty,gt=0"`
	Day         *string        `json:"day" validate:"omitempty,oneof=monday tuesday wednesday thursday friday saturday sunday"`
	StartTime   *string        `json:"start_time" validate:"omitempty,hhmm"`
	EndTime     *string        `json:"end_time" validate:"omitempty,hhmm"`
}

// CrossValidate checks the time range when both ends are in the body. A
// single moved end is checked against the stored class by the service.
func (r *UpdateClassRequest) CrossValidate() validation.Errors {
	if r.StartTime == nil || r.EndTime == nil {
		return nil
	}
	return CheckClassTimes(*r.StartTime, *r.EndTime)
}

// CheckClassTimes requires end to be strictly after start. The error is
// reported on end_time.
func CheckClassTimes(start, end string) validation.Errors {
	s, okStart := validation.ParseClock(start)
	e, okEnd := validation.ParseClock(end)
	if okStart && okEnd && e > s {
		return nil
	}
	return validation.Errors{{Field: "end_time", Message: "end_time must be after start_time"}}
}
