package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "usersvc/internal/errors"
	"usersvc/internal/model"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) List(ctx context.Context, page, limit int) ([]model.User, int64, error) {
	args := m.Called(ctx, page, limit)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]model.User), args.Get(1).(int64), args.Error(2)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, id uint, updates map[string]any) (*model.User, error) {
	args := m.Called(ctx, id, updates)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uint) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func TestListUsers_PageMath(t *testing.T) {
	tests := []struct {
		name       string
		total      int64
		limit      int
		totalPages int
	}{
		{"exact multiple", 20, 10, 2},
		{"remainder rounds up", 21, 10, 3},
		{"fewer than one page", 3, 10, 1},
		{"empty table", 0, 10, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockUserRepository)
			repo.On("List", mock.Anything, 1, tt.limit).Return([]model.User{}, tt.total, nil)

			svc := NewUserService(repo)
			page, err := svc.ListUsers(context.Background(), 1, tt.limit)

			assert.NoError(t, err)
			assert.Equal(t, tt.total, page.Total)
			assert.Equal(t, tt.totalPages, page.TotalPages)
			assert.Equal(t, tt.limit, page.PageSize)
			repo.AssertExpectations(t)
		})
	}
}

func TestListUsers_NilRowsBecomeEmptySlice(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("List", mock.Anything, 5, 10).Return(nil, int64(0), nil)

	svc := NewUserService(repo)
	page, err := svc.ListUsers(context.Background(), 5, 10)

	assert.NoError(t, err)
	assert.NotNil(t, page.Users)
	assert.Empty(t, page.Users)
}

func TestGetUser_NotFound(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("FindByID", mock.Anything, uint(42)).Return(nil, nil)

	svc := NewUserService(repo)
	user, err := svc.GetUser(context.Background(), 42)

	assert.Nil(t, user)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestGetUser_Found(t *testing.T) {
	stored := &model.User{ID: 7, FirstName: "Alice", LastName: "Wilson", Email: "alice@example.com", Age: 28}
	repo := new(MockUserRepository)
	repo.On("FindByID", mock.Anything, uint(7)).Return(stored, nil)

	svc := NewUserService(repo)
	user, err := svc.GetUser(context.Background(), 7)

	assert.NoError(t, err)
	assert.Equal(t, stored, user)
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("Create", mock.Anything, mock.Anything).Return(gorm.ErrDuplicatedKey)

	svc := NewUserService(repo)
	created, err := svc.CreateUser(context.Background(), &model.User{Email: "alice@example.com"})

	assert.Nil(t, created)
	assert.ErrorIs(t, err, apperrors.ErrEmailTaken)
}

func TestUpdateUser_WritesAllMutableFields(t *testing.T) {
	merged := &model.User{ID: 7, FirstName: "Alice", LastName: "Chen", Email: "alice@example.com", Age: 29}
	repo := new(MockUserRepository)
	repo.On("Update", mock.Anything, uint(7), map[string]any{
		"first_name": "Alice",
		"last_name":  "Chen",
		"email":      "alice@example.com",
		"age":        29,
	}).Return(merged, nil)

	svc := NewUserService(repo)
	updated, err := svc.UpdateUser(context.Background(), 7, merged)

	assert.NoError(t, err)
	assert.Equal(t, merged, updated)
	repo.AssertExpectations(t)
}

func TestUpdateUser_NotFound(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("Update", mock.Anything, uint(99), mock.Anything).Return(nil, nil)

	svc := NewUserService(repo)
	updated, err := svc.UpdateUser(context.Background(), 99, &model.User{})

	assert.Nil(t, updated)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestDeleteUser(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("Delete", mock.Anything, uint(7)).Return(true, nil).Once()
	repo.On("Delete", mock.Anything, uint(7)).Return(false, nil).Once()

	svc := NewUserService(repo)

	assert.NoError(t, svc.DeleteUser(context.Background(), 7))
	assert.ErrorIs(t, svc.DeleteUser(context.Background(), 7), apperrors.ErrUserNotFound)
	repo.AssertExpectations(t)
}
