package handler

import (
	"school_manager/internal/validation"

	"github.com/gin-gonic/gin"
)

type idParam struct {
	ID validation.ID `json:"id" validate:"required,gt=0"`
}

type studentParam struct {
	StudentID validation.ID `json:"student_id" validate:"required,gt=0"`
}

type classParam struct {
	ClassID validation.ID `json:"class_id" validate:"required,gt=0"`
}

type teacherParam struct {
	TeacherID validation.ID `json:"teacher_id" validate:"required,gt=0"`
}

type specialtyParam struct {
	SpecialtyID validation.ID `json:"specialty_id" validate:"required,gt=0"`
}

type dayParam struct {
	Day string `json:"day" validate:"required,oneof=monday tuesday wednesday thursday friday saturday sunday"`
}

type studentClassParam struct {
	StudentID validation.ID `json:"student_id" validate:"required,gt=0"`
	ClassID   validation.ID `json:"class_id" validate:"required,gt=0"`
}

type classDateParam struct {
	ClassID validation.ID `json:"class_id" validate:"required,gt=0"`
	Date    string        `json:"date" validate:"required,ymd"`
}

// bindParams validates the route's path parameters into dst.
func bindParams(c *gin.Context, v *validation.Validator, dst any) error {
	params := make(map[string]string, len(c.Params))
	for _, p := range c.Params {
		params[p.Key] = p.Value
	}
	return v.Params(params, dst)
}
