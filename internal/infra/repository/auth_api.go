package repository

import (
	"context"

	"storefront/internal/domain/model"
	"storefront/internal/infra/backend"
)

type AuthAPIRepository struct {
	res *backend.Resource[model.AuthResult, model.RegisterRequest, model.RegisterRequest]
}

// DI
func NewAuthAPIRepository(c *backend.Client) *AuthAPIRepository {
	return &AuthAPIRepository{
		res: backend.NewResource[model.AuthResult, model.RegisterRequest, model.RegisterRequest](c, "auth"),
	}
}

// POST auth/login
func (r *AuthAPIRepository) Login(ctx context.Context, in model.LoginRequest) (model.AuthResult, error) {
	var out model.AuthResult
	err := r.res.PostPath(ctx, "login", in, &out)
	return out, err
}

// POST auth/register（確認用パスワードは送らない）
func (r *AuthAPIRepository) Register(ctx context.Context, in model.RegisterRequest) (model.AuthResult, error) {
	in.ConfirmPassword = ""
	var out model.AuthResult
	err := r.res.PostPath(ctx, "register", in, &out)
	return out, err
}

// POST auth/logout
func (r *AuthAPIRepository) Logout(ctx context.Context) error {
	return r.res.PostPath(ctx, "logout", nil, nil)
}
