package repository

import (
	"context"
	"errors"
	"fmt"

	"school_manager/internal/model"

	"github.com/jackc/pgx/v5"
)

type MessageRepository interface {
	Create(ctx context.Context, m *model.ClassMessage) error
	FindByID(ctx context.Context, id int64) (*model.ClassMessage, error)
	List(ctx context.Context) ([]model.ClassMessage, error)
	ListByClass(ctx context.Context, classID int64) ([]model.ClassMessage, error)
	Update(ctx context.Context, m *model.ClassMessage) error
	Delete(ctx context.Context, id int64) error
}

type messageRepository struct {
	db DB
}

func NewMessageRepository(db DB) MessageRepository {
	return &messageRepository{db: db}
}

const messageColumns = `id, class_id, title, content, created_at`

func scanMessage(row rowScanner) (model.ClassMessage, error) {
	var m model.ClassMessage
	err := row.Scan(&m.ID, &m.ClassID, &m.Title, &m.Content, &m.CreatedAt)
	return m, err
}

func (r *messageRepository) Create(ctx context.Context, m *model.ClassMessage) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO class_message (class_id, title, content) VALUES ($1, $2, $3) RETURNING id, created_at`,
		m.ClassID, m.Title, m.Content).Scan(&m.ID, &m.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create class message: %w", err)
	}
	return nil
}

func (r *messageRepository) FindByID(ctx context.Context, id int64) (*model.ClassMessage, error) {
	m, err := scanMessage(r.db.QueryRow(ctx, `SELECT `+messageColumns+` FROM class_message WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find class message by ID: %w", err)
	}
	return &m, nil
}

func (r *messageRepository) list(ctx context.Context, where string, args ...any) ([]model.ClassMessage, error) {
	rows, err := r.db.Query(ctx, `SELECT `+messageColumns+` FROM class_message`+where+` ORDER BY created_at DESC, id DESC`, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query class messages: %w", err)
	}
	list, err := collect(rows, scanMessage)
	if err != nil {
		return nil, fmt.Errorf("failed to read class messages: %w", err)
	}
	return list, nil
}

// List retrieves every message, newest first.
func (r *messageRepository) List(ctx context.Context) ([]model.ClassMessage, error) {
	return r.list(ctx, "")
}

func (r *messageRepository) ListByClass(ctx context.Context, classID int64) ([]model.ClassMessage, error) {
	return r.list(ctx, ` WHERE class_id = $1`, classID)
}

func (r *messageRepository) Update(ctx context.Context, m *model.ClassMessage) error {
	tag, err := r.db.Exec(ctx, `UPDATE class_message SET class_id = $1, title = $2, content = $3 WHERE id = $4`,
		m.ClassID, m.Title, m.Content, m.ID)
	if err != nil {
		return fmt.Errorf("failed to update class message: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *messageRepository) Delete(ctx context.Context, id int64) error {
	if err := deleteByID(ctx, r.db, `DELETE FROM class_message WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete class message: %w", err)
	}
	return nil
}
