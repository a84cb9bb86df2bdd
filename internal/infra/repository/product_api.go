package repository

import (
	"context"

	"storefront/internal/domain/model"
	"storefront/internal/infra/backend"
)

type ProductAPIRepository struct {
	res *backend.Resource[model.Product, model.ProductCreateRequest, model.ProductUpdateRequest]
}

// DI
func NewProductAPIRepository(c *backend.Client) *ProductAPIRepository {
	return &ProductAPIRepository{
		res: backend.NewResource[model.Product, model.ProductCreateRequest, model.ProductUpdateRequest](c, "products"),
	}
}

func (r *ProductAPIRepository) List(ctx context.Context) ([]model.Product, error) {
	return r.res.List(ctx)
}

func (r *ProductAPIRepository) FindByID(ctx context.Context, id model.ID) (model.Product, error) {
	return r.res.Get(ctx, id.String())
}

func (r *ProductAPIRepository) Create(ctx context.Context, in model.ProductCreateRequest) (model.Product, error) {
	return r.res.Create(ctx, in)
}

func (r *ProductAPIRepository) Update(ctx context.Context, id model.ID, in model.ProductUpdateRequest) (model.Product, error) {
	return r.res.Update(ctx, id.String(), in)
}

func (r *ProductAPIRepository) Delete(ctx context.Context, id model.ID) error {
	return r.res.Delete(ctx, id.String())
}
