package repository

import (
	"context"
	"strconv"

	"storefront/internal/domain/model"
	"storefront/internal/infra/backend"
)

type OrderAPIRepository struct {
	res *backend.Resource[model.Order, model.OrderCreateRequest, model.OrderUpdateRequest]
}

// DI
func NewOrderAPIRepository(c *backend.Client) *OrderAPIRepository {
	return &OrderAPIRepository{
		res: backend.NewResource[model.Order, model.OrderCreateRequest, model.OrderUpdateRequest](c, "orders"),
	}
}

func (r *OrderAPIRepository) FindByID(ctx context.Context, id model.ID) (model.Order, error) {
	return r.res.Get(ctx, id.String())
}

// GET orders/user/{userId}
func (r *OrderAPIRepository) ListByUserID(ctx context.Context, userID int64) ([]model.Order, error) {
	return r.res.ListPath(ctx, "user/"+strconv.FormatInt(userID, 10))
}

func (r *OrderAPIRepository) Create(ctx context.Context, in model.OrderCreateRequest) (model.Order, error) {
	return r.res.Create(ctx, in)
}

// PUT orders/{id} {status}
func (r *OrderAPIRepository) UpdateStatus(ctx context.Context, id model.ID, status model.OrderStatus) (model.Order, error) {
	return r.res.Update(ctx, id.String(), model.OrderUpdateRequest{Status: status})
}

func (r *OrderAPIRepository) List(ctx context.Context) ([]model.Order, error) {
	return r.res.List(ctx)
}
