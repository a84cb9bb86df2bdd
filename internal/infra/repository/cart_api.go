package repository

import (
	"context"
	"net/url"

	"storefront/internal/domain/model"
	"storefront/internal/infra/backend"
)

type CartAPIRepository struct {
	res *backend.Resource[model.Cart, model.AddToCartRequest, model.UpdateCartItemRequest]
}

// DI
func NewCartAPIRepository(c *backend.Client) *CartAPIRepository {
	return &CartAPIRepository{
		res: backend.NewResource[model.Cart, model.AddToCartRequest, model.UpdateCartItemRequest](c, "cart"),
	}
}

// GET cart/current
func (r *CartAPIRepository) Current(ctx context.Context) (model.Cart, error) {
	var cart model.Cart
	err := r.res.GetPath(ctx, "current", &cart)
	return cart, err
}

// POST cart/add {productId, quantity}
func (r *CartAPIRepository) Add(ctx context.Context, in model.AddToCartRequest) (model.Cart, error) {
	var cart model.Cart
	err := r.res.PostPath(ctx, "add", in, &cart)
	return cart, err
}

// POST cart/update {productId, quantity}
func (r *CartAPIRepository) Update(ctx context.Context, in model.UpdateCartItemRequest) (model.Cart, error) {
	var cart model.Cart
	err := r.res.PostPath(ctx, "update", in, &cart)
	return cart, err
}

// DELETE cart/items/{productId}
func (r *CartAPIRepository) Remove(ctx context.Context, productID model.ID) (model.Cart, error) {
	var cart model.Cart
	err := r.res.DeletePath(ctx, "items/"+url.PathEscape(productID.String()), &cart)
	return cart, err
}

// DELETE cart/clear
func (r *CartAPIRepository) Clear(ctx context.Context) error {
	return r.res.DeletePath(ctx, "clear", nil)
}
