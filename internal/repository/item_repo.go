package repository

import (
	"context"
	"errors"
	"fmt"

	"school_manager/internal/model"

	"github.com/jackc/pgx/v5"
)

type ItemRepository interface {
	Create(ctx context.Context, it *model.Item) error
	FindByID(ctx context.Context, id int64) (*model.Item, error)
	List(ctx context.Context) ([]model.Item, error)
	Update(ctx context.Context, it *model.Item) error
	Delete(ctx context.Context, id int64) error
}

type itemRepository struct {
	db DB
}

func NewItemRepository(db DB) ItemRepository {
	return &itemRepository{db: db}
}

func scanItem(row rowScanner) (model.Item, error) {
	var it model.Item
	err := row.Scan(&it.ID, &it.Name, &it.Quantity)
	return it, err
}

func (r *itemRepository) Create(ctx context.Context, it *model.Item) error {
	err := r.db.QueryRow(ctx, `INSERT INTO items (name, quantity) VALUES ($1, $2) RETURNING id`,
		it.Name, it.Quantity).Scan(&it.ID)
	if err != nil {
		return fmt.Errorf("failed to create item: %w", err)
	}
	return nil
}

func (r *itemRepository) FindByID(ctx context.Context, id int64) (*model.Item, error) {
	it, err := scanItem(r.db.QueryRow(ctx, `SELECT id, name, quantity FROM items WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find item by ID: %w", err)
	}
	return &it, nil
}

func (r *itemRepository) List(ctx context.Context) ([]model.Item, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, quantity FROM items ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query items: %w", err)
	}
	items, err := collect(rows, scanItem)
	if err != nil {
		return nil, fmt.Errorf("failed to read items: %w", err)
	}
	return items, nil
}

func (r *itemRepository) Update(ctx context.Context, it *model.Item) error {
	tag, err := r.db.Exec(ctx, `UPDATE items SET name = $1, quantity = $2 WHERE id = $3`, it.Name, it.Quantity, it.ID)
	if err != nil {
		return fmt.Errorf("failed to update item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *itemRepository) Delete(ctx context.Context, id int64) error {
	if err := deleteByID(ctx, r.db, `DELETE FROM items WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}
	return nil
}
