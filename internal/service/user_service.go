package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	apperrors "usersvc/internal/errors"
	"usersvc/internal/model"
	"usersvc/internal/repository"
)

// UserPage is one page of users with pagination metadata.
type UserPage struct {
	Users      []model.User
	Total      int64
	Page       int
	PageSize   int
	TotalPages int
}

// UserService exposes domain operations.
type UserService interface {
	ListUsers(ctx context.Context, page, limit int) (*UserPage, error)
	GetUser(ctx context.Context, id uint) (*model.User, error)
	CreateUser(ctx context.Context, user *model.User) (*model.User, error)
	UpdateUser(ctx context.Context, id uint, merged *model.User) (*model.User, error)
	DeleteUser(ctx context.Context, id uint) error
}

type userService struct {
	repo repository.UserRepository
}

// NewUserService builds a UserService backed by the given repository.
func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) ListUsers(ctx context.Context, page, limit int) (*UserPage, error) {
	users, total, err := s.repo.List(ctx, page, limit)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	if users == nil {
		users = []model.User{}
	}
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return &UserPage{
		Users:      users,
		Total:      total,
		Page:       page,
		PageSize:   limit,
		TotalPages: totalPages,
	}, nil
}

func (s *userService) GetUser(ctx context.Context, id uint) (*model.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find user %d: %w", id, err)
	}
	if user == nil {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}

func (s *userService) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrEmailTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// UpdateUser persists the merged record. All mutable fields are written so
// updated_at refreshes even when the request repeats current values.
func (s *userService) UpdateUser(ctx context.Context, id uint, merged *model.User) (*model.User, error) {
	updates := map[string]any{
		"first_name": merged.FirstName,
		"last_name":  merged.LastName,
		"email":      merged.Email,
		"age":        merged.Age,
	}
	user, err := s.repo.Update(ctx, id, updates)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrEmailTaken
		}
		return nil, fmt.Errorf("update user %d: %w", id, err)
	}
	if user == nil {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}

func (s *userService) DeleteUser(ctx context.Context, id uint) error {
	removed, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete user %d: %w", id, err)
	}
	if !removed {
		return apperrors.ErrUserNotFound
	}
	return nil
}
