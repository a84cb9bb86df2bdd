package repository

import (
	"context"

	"storefront/internal/domain/model"
)

type OrderRepository interface {
	FindByID(ctx context.Context, id model.ID) (model.Order, error)
	ListByUserID(ctx context.Context, userID int64) ([]model.Order, error)
	Create(ctx context.Context, in model.OrderCreateRequest) (model.Order, error)
	UpdateStatus(ctx context.Context, id model.ID, status model.OrderStatus) (model.Order, error)

	//管理者用の注文一覧
	List(ctx context.Context) ([]model.Order, error)
}
