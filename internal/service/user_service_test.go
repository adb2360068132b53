package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "adminpanel/internal/errors"
	"adminpanel/internal/model"
)

func TestUserService_List(t *testing.T) {
	tests := []struct {
		name           string
		page           int
		total          int64
		wantOffset     int
		wantRows       int
		wantPage       int
		wantTotalPages int
	}{
		{
			name:           "first page",
			page:           1,
			total:          25,
			wantOffset:     0,
			wantRows:       10,
			wantPage:       1,
			wantTotalPages: 3,
		},
		{
			name:           "last partial page",
			page:           3,
			total:          25,
			wantOffset:     20,
			wantRows:       5,
			wantPage:       3,
			wantTotalPages: 3,
		},
		{
			name:           "page below one is clamped",
			page:           0,
			total:          25,
			wantOffset:     0,
			wantRows:       10,
			wantPage:       1,
			wantTotalPages: 3,
		},
		{
			name:           "empty table",
			page:           1,
			total:          0,
			wantOffset:     0,
			wantRows:       0,
			wantPage:       1,
			wantTotalPages: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := new(MockUserRepository)
			users.On("Count", mock.Anything).Return(tt.total, nil)
			users.On("List", mock.Anything, tt.wantOffset, 10).
				Return(make([]model.User, tt.wantRows), nil)

			svc := NewUserService(testRepos(nil, nil, nil, users, nil))

			page, err := svc.List(context.Background(), tt.page)

			assert.NoError(t, err)
			assert.Len(t, page.Users, tt.wantRows)
			assert.Equal(t, tt.total, page.Pagination.Total)
			assert.Equal(t, tt.wantPage, page.Pagination.Page)
			assert.Equal(t, 10, page.Pagination.Limit)
			assert.Equal(t, tt.wantTotalPages, page.Pagination.TotalPages)
			users.AssertExpectations(t)
		})
	}
}

func TestUserService_Search(t *testing.T) {
	t.Run("matches come back as one page", func(t *testing.T) {
		users := new(MockUserRepository)
		users.On("Search", mock.Anything, "jane", 20).
			Return([]model.User{{ID: 1, Name: "Jane"}, {ID: 2, Name: "Janet"}}, nil)

		svc := NewUserService(testRepos(nil, nil, nil, users, nil))

		page, err := svc.Search(context.Background(), "jane")

		assert.NoError(t, err)
		assert.Len(t, page.Users, 2)
		assert.Equal(t, int64(2), page.Pagination.Total)
		assert.Equal(t, 1, page.Pagination.Page)
		assert.Equal(t, 1, page.Pagination.TotalPages)
		users.AssertExpectations(t)
	})

	t.Run("no matches still reports one page", func(t *testing.T) {
		users := new(MockUserRepository)
		users.On("Search", mock.Anything, "zzz", 20).Return([]model.User{}, nil)

		svc := NewUserService(testRepos(nil, nil, nil, users, nil))

		page, err := svc.Search(context.Background(), "zzz")

		assert.NoError(t, err)
		assert.Empty(t, page.Users)
		assert.Equal(t, int64(0), page.Pagination.Total)
		assert.Equal(t, 1, page.Pagination.TotalPages)
		users.AssertExpectations(t)
	})
}

func TestUserService_Create(t *testing.T) {
	act := ActionContext{AdminID: 1, IPAddress: "203.0.113.5", UserAgent: "test-agent"}

	t.Run("creates user and audit entry", func(t *testing.T) {
		users := new(MockUserRepository)
		audits := new(MockAuditLogRepository)
		users.On("FindByEmail", mock.Anything, "new@example.com").
			Return(nil, gorm.ErrRecordNotFound)
		users.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)

		var logged *model.AuditLog
		audits.On("Create", mock.Anything, mock.AnythingOfType("*model.AuditLog")).
			Run(func(args mock.Arguments) {
				logged = args.Get(1).(*model.AuditLog)
			}).
			Return(nil)

		svc := NewUserService(testRepos(nil, nil, audits, users, nil))

		user, err := svc.Create(context.Background(), act, &model.User{
			Name:  "New User",
			Email: "new@example.com",
			Role:  "User",
		})

		assert.NoError(t, err)
		assert.Equal(t, "new@example.com", user.Email)
		assert.Equal(t, model.ActionCreate, logged.Action)
		assert.Equal(t, model.ResourceUser, logged.Resource)
		assert.Contains(t, logged.Details, "new@example.com")
		users.AssertExpectations(t)
		audits.AssertExpectations(t)
	})

	t.Run("duplicate email", func(t *testing.T) {
		users := new(MockUserRepository)
		users.On("FindByEmail", mock.Anything, "taken@example.com").
			Return(&model.User{ID: 9, Email: "taken@example.com"}, nil)

		svc := NewUserService(testRepos(nil, nil, nil, users, nil))

		user, err := svc.Create(context.Background(), act, &model.User{
			Name:  "Dup",
			Email: "taken@example.com",
		})

		assert.ErrorIs(t, err, apperrors.ErrEmailTaken)
		assert.Nil(t, user)
		users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestUserService_ToggleActive(t *testing.T) {
	act := ActionContext{AdminID: 1, IPAddress: "203.0.113.5"}

	t.Run("toggling twice restores the original state", func(t *testing.T) {
		stored := &model.User{ID: 4, Name: "Flip", Email: "flip@example.com", IsActive: true}

		users := new(MockUserRepository)
		audits := new(MockAuditLogRepository)
		users.On("FindByID", mock.Anything, uint(4)).Return(stored, nil)
		users.On("Update", mock.Anything, stored).Return(nil)

		var actions []string
		audits.On("Create", mock.Anything, mock.AnythingOfType("*model.AuditLog")).
			Run(func(args mock.Arguments) {
				actions = append(actions, args.Get(1).(*model.AuditLog).Action)
			}).
			Return(nil)

		svc := NewUserService(testRepos(nil, nil, audits, users, nil))

		first, err := svc.ToggleActive(context.Background(), act, 4)
		assert.NoError(t, err)
		assert.False(t, first.IsActive)

		second, err := svc.ToggleActive(context.Background(), act, 4)
		assert.NoError(t, err)
		assert.True(t, second.IsActive)

		assert.Equal(t, []string{model.ActionDeactivate, model.ActionActivate}, actions)
		audits.AssertNumberOfCalls(t, "Create", 2)
	})

	t.Run("unknown user", func(t *testing.T) {
		users := new(MockUserRepository)
		users.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)

		svc := NewUserService(testRepos(nil, nil, nil, users, nil))

		user, err := svc.ToggleActive(context.Background(), act, 99)

		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
		assert.Nil(t, user)
	})
}

func TestUserService_Delete(t *testing.T) {
	act := ActionContext{AdminID: 1, IPAddress: "203.0.113.5"}

	t.Run("deletes user and records it", func(t *testing.T) {
		users := new(MockUserRepository)
		audits := new(MockAuditLogRepository)
		users.On("FindByID", mock.Anything, uint(4)).Return(&model.User{ID: 4}, nil)
		users.On("Delete", mock.Anything, uint(4)).Return(nil)

		var logged *model.AuditLog
		audits.On("Create", mock.Anything, mock.AnythingOfType("*model.AuditLog")).
			Run(func(args mock.Arguments) {
				logged = args.Get(1).(*model.AuditLog)
			}).
			Return(nil)

		svc := NewUserService(testRepos(nil, nil, audits, users, nil))

		err := svc.Delete(context.Background(), act, 4)

		assert.NoError(t, err)
		assert.Equal(t, model.ActionDelete, logged.Action)
		assert.Equal(t, uint(4), *logged.ResourceID)
		users.AssertExpectations(t)
	})

	t.Run("unknown user", func(t *testing.T) {
		users := new(MockUserRepository)
		users.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)

		svc := NewUserService(testRepos(nil, nil, nil, users, nil))

		err := svc.Delete(context.Background(), act, 99)

		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
		users.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}
