package repository

import (
	"context"
	"strconv"

	"storefront/internal/domain/model"
	"storefront/internal/infra/backend"
)

type UserAPIRepository struct {
	res *backend.Resource[model.User, model.UserCreateRequest, model.UserUpdateRequest]
}

// DI
func NewUserAPIRepository(c *backend.Client) *UserAPIRepository {
	return &UserAPIRepository{
		res: backend.NewResource[model.User, model.UserCreateRequest, model.UserUpdateRequest](c, "users"),
	}
}

func (r *UserAPIRepository) List(ctx context.Context) ([]model.User, error) {
	return r.res.List(ctx)
}

func (r *UserAPIRepository) FindByID(ctx context.Context, userID int64) (model.User, error) {
	return r.res.Get(ctx, strconv.FormatInt(userID, 10))
}

func (r *UserAPIRepository) Update(ctx context.Context, userID int64, in model.UserUpdateRequest) (model.User, error) {
	return r.res.Update(ctx, strconv.FormatInt(userID, 10), in)
}

func (r *UserAPIRepository) Delete(ctx context.Context, userID int64) error {
	return r.res.Delete(ctx, strconv.FormatInt(userID, 10))
}
