package usecase_test

import (
	"context"
	"testing"

	"storefront/internal/domain/model"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAdminUser_UpdateRole(t *testing.T) {
	a, _, _ := newActions(t)
	users := new(UserRepoMock)
	users.On("Update", mock.Anything, int64(7), model.UserUpdateRequest{Role: model.RoleAdmin}).
		Return(model.User{ID: 7, Role: model.RoleAdmin}, nil).Once()

	uc := usecase.NewAdminUserUsecase(users, a)
	st := uc.UpdateRole(context.Background(), admin1, usecase.Fields{"id": "7", "role": "admin"})

	assert.True(t, st.Success)
	assert.Equal(t, []string{"/admin/users"}, st.Stale)
	users.AssertExpectations(t)
}

// 自分自身のロールは変えられない
func TestAdminUser_UpdateRole_Self(t *testing.T) {
	a, _, _ := newActions(t)
	users := new(UserRepoMock)

	uc := usecase.NewAdminUserUsecase(users, a)
	st := uc.UpdateRole(context.Background(), admin1, usecase.Fields{"id": "1", "role": "user"})

	assert.False(t, st.Success)
	assert.NotEmpty(t, st.Errors["general"])
	assert.Empty(t, users.Calls)
}

func TestAdminUser_UpdateRole_InvalidRole(t *testing.T) {
	a, _, _ := newActions(t)
	users := new(UserRepoMock)

	uc := usecase.NewAdminUserUsecase(users, a)
	st := uc.UpdateRole(context.Background(), admin1, usecase.Fields{"id": "7", "role": "root"})

	assert.Equal(t, []string{"Invalid role"}, st.Errors["role"])
	assert.Empty(t, users.Calls)
}

func TestAdminUser_Delete(t *testing.T) {
	a, _, _ := newActions(t)
	users := new(UserRepoMock)
	users.On("Delete", mock.Anything, int64(7)).Return(nil).Once()

	uc := usecase.NewAdminUserUsecase(users, a)
	st := uc.Delete(context.Background(), admin1, usecase.Fields{"id": "7"})

	assert.True(t, st.Success)
	users.AssertExpectations(t)
}

func TestAdminUser_List(t *testing.T) {
	a, _, _ := newActions(t)
	users := new(UserRepoMock)
	users.On("List", mock.Anything).Return([]model.User{{ID: 1}, {ID: 7}}, nil).Once()

	uc := usecase.NewAdminUserUsecase(users, a)

	got, err := uc.List(context.Background(), admin1)
	require.NoError(t, err)
	assert.Len(t, got, 2)

	_, err = uc.List(context.Background(), anonymous)
	assert.ErrorIs(t, err, usecase.ErrAuthenticationRequired)
}
