package repository

import (
	"context"

	"storefront/internal/domain/model"
)

// カートはbearerトークンのユーザーのもの（userIdは送らない）
type CartRepository interface {
	Current(ctx context.Context) (model.Cart, error)
	Add(ctx context.Context, in model.AddToCartRequest) (model.Cart, error)
	Update(ctx context.Context, in model.UpdateCartItemRequest) (model.Cart, error)
	Remove(ctx context.Context, productID model.ID) (model.Cart, error)
	Clear(ctx context.Context) error
}
