package repository

import (
	"context"
	"net/url"

	"storefront/internal/domain/model"
	"storefront/internal/infra/backend"
)

type PaymentAPIRepository struct {
	res *backend.Resource[model.Payment, model.CheckoutRequest, model.CheckoutRequest]
}

// DI
func NewPaymentAPIRepository(c *backend.Client) *PaymentAPIRepository {
	return &PaymentAPIRepository{
		res: backend.NewResource[model.Payment, model.CheckoutRequest, model.CheckoutRequest](c, "payments"),
	}
}

// POST payments/checkout
func (r *PaymentAPIRepository) Checkout(ctx context.Context, in model.CheckoutRequest) (model.Payment, error) {
	var p model.Payment
	err := r.res.PostPath(ctx, "checkout", in, &p)
	return p, err
}

// GET payments/verify?session_id=...
func (r *PaymentAPIRepository) Verify(ctx context.Context, sessionID string) (model.Payment, error) {
	var p model.Payment
	err := r.res.GetPath(ctx, "verify?session_id="+url.QueryEscape(sessionID), &p)
	return p, err
}
