package repository

import (
	"context"

	"storefront/internal/domain/model"
	"storefront/internal/infra/backend"
)

// 対象なしを統一（backend の 404 / data:null）
var ErrNotFound = backend.ErrNotFound

// 商品の取得・保存を約束。
type ProductRepository interface {
	List(ctx context.Context) ([]model.Product, error)
	FindByID(ctx context.Context, id model.ID) (model.Product, error)

	Create(ctx context.Context, in model.ProductCreateRequest) (model.Product, error)
	// 渡したフィールドだけ更新
	Update(ctx context.Context, id model.ID, in model.ProductUpdateRequest) (model.Product, error)
	Delete(ctx context.Context, id model.ID) error
}
