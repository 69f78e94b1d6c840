package service

import (
	"context"
	"testing"

	"school_manager/internal/model"
	"school_manager/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeItemRepo struct {
	items map[int64]model.Item
}

func (r *fakeItemRepo) Create(_ context.Context, it *model.Item) error {
	it.ID = int64(len(r.items) + 1)
	r.items[it.ID] = *it
	return nil
}

func (r *fakeItemRepo) FindByID(_ context.Context, id int64) (*model.Item, error) {
	it, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return &it, nil
}

func (r *fakeItemRepo) List(context.Context) ([]model.Item, error) {
	out := []model.Item{}
	for _, it := range r.items {
		out = append(out, it)
	}
	return out, nil
}

func (r *fakeItemRepo) Update(_ context.Context, it *model.Item) error {
	r.items[it.ID] = *it
	return nil
}

func (r *fakeItemRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.items[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

func TestItemService_ZeroQuantityIsKept(t *testing.T) {
	repo := &fakeItemRepo{items: map[int64]model.Item{}}
	svc := NewItemService(repo)
	ctx := context.Background()

	qty := 12
	it, err := svc.Create(ctx, model.CreateItemRequest{Name: "Projector", Quantity: &qty})
	require.NoError(t, err)

	zero := 0
	it, err = svc.Update(ctx, it.ID, model.UpdateItemRequest{Quantity: &zero})
	require.NoError(t, err)
	assert.Equal(t, 0, it.Quantity)
	assert.Equal(t, "Projector", it.Name)

	require.NoError(t, svc.Delete(ctx, it.ID))
	_, err = svc.Get(ctx, it.ID)
	assert.ErrorIs(t, err, ErrItemNotFound)
}
