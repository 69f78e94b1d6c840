package service

import (
	"context"

	"school_manager/internal/model"
	"school_manager/internal/repository"
)

type ItemService interface {
	Create(ctx context.Context, req model.CreateItemRequest) (*model.Item, error)
	List(ctx context.Context) ([]model.Item, error)
	Get(ctx context.Context, id int64) (*model.Item, error)
	Update(ctx context.Context, id int64, req model.UpdateItemRequest) (*model.Item, error)
	Delete(ctx context.Context, id int64) error
}

type itemService struct {
	repo repository.ItemRepository
}

func NewItemService(repo repository.ItemRepository) ItemService {
	return &itemService{repo: repo}
}

func (s *itemService) Create(ctx context.Context, req model.CreateItemRequest) (*model.Item, error) {
	it := &model.Item{Name: req.Name, Quantity: *req.Quantity}
	if err := s.repo.Create(ctx, it); err != nil {
		return nil, err
	}
	return it, nil
}

func (s *itemService) List(ctx context.Context) ([]model.Item, error) {
	return s.repo.List(ctx)
}

func (s *itemService) Get(ctx context.Context, id int64) (*model.Item, error) {
	it, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if it == nil {
		return nil, ErrItemNotFound
	}
	return it, nil
}

func (s *itemService) Update(ctx context.Context, id int64, req model.UpdateItemRequest) (*model.Item, error) {
	it, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		it.Name = *req.Name
	}
	if req.Quantity != nil {
		it.Quantity = *req.Quantity
	}
	if err := s.repo.Update(ctx, it); err != nil {
		return nil, notFound(err, ErrItemNotFound)
	}
	return it, nil
}

func (s *itemService) Delete(ctx context.Context, id int64) error {
	return notFound(s.repo.Delete(ctx, id), ErrItemNotFound)
}
