package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"usersvc/internal/model"
)

// UserRepository defines persistence operations.
type UserRepository interface {
	List(ctx context.Context, page, limit int) ([]model.User, int64, error)
	FindByID(ctx context.Context, id uint) (*model.User, error)
	Create(ctx context.Context, user *model.User) error
	Update(ctx context.Context, id uint, updates map[string]any) (*model.User, error)
	Delete(ctx context.Context, id uint) (bool, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository builds a GORM-backed repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// List returns one page of users ordered newest first plus the total row
// count. Page and limit must already be validated by the caller.
func (r *userRepository) List(ctx context.Context, page, limit int) ([]model.User, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.User{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []model.User
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&users).Error
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

// FindByID returns (nil, nil) when no record matches.
func (r *userRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

// Update applies a partial field replacement and returns the refreshed record,
// or (nil, nil) when no row matched the id.
func (r *userRepository) Update(ctx context.Context, id uint, updates map[string]any) (*model.User, error) {
	res := r.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return nil, res.Error
	}
	// MySQL reports zero affected rows for no-op updates too, so absence is
	// decided by the re-fetch rather than RowsAffected.
	return r.FindByID(ctx, id)
}

// Delete reports whether a record was actually removed.
func (r *userRepository) Delete(ctx context.Context, id uint) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&model.User{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
