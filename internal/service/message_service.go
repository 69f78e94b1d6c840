package service

import (
	"context"

	"school_manager/internal/model"
	"school_manager/internal/repository"
)

type MessageService interface {
	Create(ctx context.Context, req model.CreateMessageRequest) (*model.ClassMessage, error)
	List(ctx context.Context) ([]model.ClassMessage, error)
	ListByClass(ctx context.Context, classID int64) ([]model.ClassMessage, error)
	Get(ctx context.Context, id int64) (*model.ClassMessage, error)
	Update(ctx context.Context, id int64, req model.UpdateMessageRequest) (*model.ClassMessage, error)
	Delete(ctx context.Context, id int64) error
}

type messageService struct {
	repo repository.MessageRepository
}

func NewMessageService(repo repository.MessageRepository) MessageService {
	return &messageService{repo: repo}
}

func (s *messageService) Create(ctx context.Context, req model.CreateMessageRequest) (*model.ClassMessage, error) {
	m := &model.ClassMessage{ClassID: req.ClassID.Int64(), Title: req.Title, Content: req.Content}
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *messageService) List(ctx context.Context) ([]model.ClassMessage, error) {
	return s.repo.List(ctx)
}

func (s *messageService) ListByClass(ctx context.Context, classID int64) ([]model.ClassMessage, error) {
	return s.repo.ListByClass(ctx, classID)
}

func (s *messageService) Get(ctx context.Context, id int64) (*model.ClassMessage, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, ErrMessageNotFound
	}
	return m, nil
}

func (s *messageService) Update(ctx context.Context, id int64, req model.UpdateMessageRequest) (*model.ClassMessage, error) {
	m, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.ClassID != nil {
		m.ClassID = req.ClassID.Int64()
	}
	if req.Title != nil {
		m.Title = req.Title
	}
	if req.Content != nil {
		m.Content = *req.Content
	}
	if err := s.repo.Update(ctx, m); err != nil {
		return nil, notFound(err, ErrMessageNotFound)
	}
	return m, nil
}

func (s *messageService) Delete(ctx context.Context, id int64) error {
	return notFound(s.repo.Delete(ctx, id), ErrMessageNotFound)
}
