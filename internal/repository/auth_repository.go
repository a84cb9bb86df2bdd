package repository

import (
	"context"

	"storefront/internal/domain/model"
)

// 認証はバックエンドに任せる（トークンの発行元）
type AuthRepository interface {
	Login(ctx context.Context, in model.LoginRequest) (model.AuthResult, error)
	Register(ctx context.Context, in model.RegisterRequest) (model.AuthResult, error)
	Logout(ctx context.Context) error
}
