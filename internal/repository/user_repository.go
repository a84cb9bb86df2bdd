package repository

import (
	"context"

	"storefront/internal/domain/model"
)

// 管理画面のユーザー操作
type UserRepository interface {
	List(ctx context.Context) ([]model.User, error)
	FindByID(ctx context.Context, userID int64) (model.User, error)
	// ロールの変更など
	Update(ctx context.Context, userID int64, in model.UserUpdateRequest) (model.User, error)
	Delete(ctx context.Context, userID int64) error
}
