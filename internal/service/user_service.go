package service

import (
	"context"
	"errors"
	"fmt"

	"school_manager/internal/model"
	"school_manager/internal/repository"
	"school_manager/internal/utils"
	"school_manager/internal/validation"
	"school_manager/pkg/logger"

	"golang.org/x/crypto/bcrypt"
)

type UserService interface {
	Create(ctx context.Context, req model.CreateUserRequest) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	ListByRole(ctx context.Context, role model.Role) ([]model.User, error)
	Get(ctx context.Context, id int64) (*model.User, error)
	Update(ctx context.Context, id int64, req model.UpdateUserRequest) (*model.User, error)
	Delete(ctx context.Context, id int64) error
}

type userService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

// Create registers a user. Role defaults to student and status to active.
func (s *userService) Create(ctx context.Context, req model.CreateUserRequest) (*model.User, error) {
	existing, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		DNI:       req.DNI,
		Email:     req.Email,
		Password:  hash,
		RoleID:    model.RoleStudent,
		Status:    model.StatusActive,
	}
	if req.RoleID != nil {
		user.RoleID = *req.RoleID
	}
	if req.Status != nil {
		user.Status = *req.Status
	}
	if req.SpecialtyID != nil {
		id := req.SpecialtyID.Int64()
		user.SpecialtyID = &id
	}

	if err := s.repo.Create(ctx, user); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user in repository: %w", err)
	}

	log := logger.Get()
	log.Info().Int64("user_id", user.ID).Stringer("role", user.RoleID).Msg("user created")
	return user, nil
}

func (s *userService) List(ctx context.Context) ([]model.User, error) {
	return s.repo.List(ctx)
}

func (s *userService) ListByRole(ctx context.Context, role model.Role) ([]model.User, error) {
	return s.repo.ListByRole(ctx, role)
}

func (s *userService) Get(ctx context.Context, id int64) (*model.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// Update merges the set fields onto the stored user. A new password is hashed
// before it is written.
func (s *userService) Update(ctx context.Context, id int64, req model.UpdateUserRequest) (*model.User, error) {
	user, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.DNI != nil {
		user.DNI = *req.DNI
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Password != nil {
		hash, err := hashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		user.Password = hash
	}
	if req.RoleID != nil {
		user.RoleID = *req.RoleID
	}
	if req.Status != nil {
		user.Status = *req.Status
	}
	if req.SpecialtyID != nil {
		sid := req.SpecialtyID.Int64()
		user.SpecialtyID = &sid
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, notFound(err, ErrUserNotFound)
	}
	return user, nil
}

func (s *userService) Delete(ctx context.Context, id int64) error {
	return notFound(s.repo.Delete(ctx, id), ErrUserNotFound)
}

// hashPassword reports bcrypt's byte limit as a field error. The rune-based
// max tag lets multi-byte passwords through that are still too long.
func hashPassword(password string) (string, error) {
	hash, err := utils.HashPassword(password)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", validation.Errors{{Field: "password", Message: "password must be at most 72 bytes long"}}
	}
	return hash, err
}
