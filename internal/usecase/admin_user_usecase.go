package usecase

import (
	"context"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"
	"storefront/internal/validator"
)

type AdminUserUsecase struct {
	userRepo repo.UserRepository
	actions  *Actions
}

func NewAdminUserUsecase(userRepo repo.UserRepository, actions *Actions) *AdminUserUsecase {
	return &AdminUserUsecase{userRepo: userRepo, actions: actions}
}

func (u *AdminUserUsecase) List(ctx context.Context, id model.Identity) ([]model.User, error) {
	if !id.IsAuthenticated() {
		return []model.User{}, ErrAuthenticationRequired
	}
	if !id.IsAdmin() {
		return []model.User{}, readError(ErrForbidden)
	}
	users, err := u.userRepo.List(ctx)
	if err != nil {
		return []model.User{}, readError(err)
	}
	return users, nil
}

// UpdateRole はロール変更（自分自身は変更不可）
func (u *AdminUserUsecase) UpdateRole(ctx context.Context, id model.Identity, raw Fields) State {
	const name = "admin.users.role"
	if st, ok := authorizeAdmin(name, u.actions, id); !ok {
		return st
	}
	return RunAction(ctx, u.actions, name, raw, validator.UserRole,
		func(ctx context.Context, in model.UserRoleRequest) (model.User, error) {
			if in.ID == id.UserID {
				return model.User{}, errSelfChange
			}
			return u.userRepo.Update(ctx, in.ID, model.UserUpdateRequest{Role: in.Role})
		},
		"/admin/users",
	)
}

func (u *AdminUserUsecase) Delete(ctx context.Context, id model.Identity, raw Fields) State {
	const name = "admin.users.delete"
	if st, ok := authorizeAdmin(name, u.actions, id); !ok {
		return st
	}
	return RunAction(ctx, u.actions, name, raw, validator.UserID,
		func(ctx context.Context, in model.UserIDRequest) (int64, error) {
			if in.ID == id.UserID {
				return 0, errSelfChange
			}
			if err := u.userRepo.Delete(ctx, in.ID); err != nil && !isNotFound(err) {
				return 0, err
			}
			return in.ID, nil
		},
		"/admin/users",
	)
}
