package repository

import (
	"context"

	"storefront/internal/domain/model"
)

type PaymentRepository interface {
	// checkout sessionを作る（stripeCheckoutUrlが返る）
	Checkout(ctx context.Context, in model.CheckoutRequest) (model.Payment, error)
	// session_idで決済状態を1回だけ確認
	Verify(ctx context.Context, sessionID string) (model.Payment, error)
}
