package model

type Specialty struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type SpecialtyRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}
