package model

import (
	"time"

	"school_manager/internal/validation"
)

// ClassMessage is an announcement posted to a class.
type ClassMessage struct {
	ID        int64     `json:"id"`
	ClassID   int64     `json:"class_id"`
	Title     *string   `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateMessageRequest struct {
	ClassID validation.ID `json:"class_id" validate:"required,gt=0"`
	Title   *string       `json:"title" validate:"omitempty,max=100"`
	Content string        `json:"content" validate:"required,min=1"`
}

type UpdateMessageRequest struct {
	ClassID *validation.ID `json:"class_id" validate:"omitempty,gt=0"`
	Title   *string        `json:"title" validate:"omitempty,max=100"`
	Content *string        `json:"content" validate:"omitempty,min=1"`
}
