package usecase

import (
	"context"
	"errors"
	"time"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"
	"storefront/internal/validator"

	"github.com/shopspring/decimal"
)

// Clockはテストで差し替える
type Clock func() time.Time

var (
	errOrderNotCreated   = errors.New("Failed to create order")
	errCheckoutNotOpened = errors.New("Failed to create checkout session")
)

// CheckoutResultはブラウザが遷移する先（決済ページ）
type CheckoutResult struct {
	OrderID     model.ID `json:"orderId"`
	OrderNumber string   `json:"orderNumber"`
	CheckoutURL string   `json:"checkoutUrl"`
}

type CheckoutUsecase struct {
	orderRepo   repo.OrderRepository
	cartRepo    repo.CartRepository
	paymentRepo repo.PaymentRepository
	profileRepo repo.ProfileRepository
	actions     *Actions
	now         Clock
}

func NewCheckoutUsecase(
	orderRepo repo.OrderRepository,
	cartRepo repo.CartRepository,
	paymentRepo repo.PaymentRepository,
	profileRepo repo.ProfileRepository,
	actions *Actions,
	now Clock,
) *CheckoutUsecase {
	if now == nil {
		now = time.Now
	}
	return &CheckoutUsecase{
		orderRepo:   orderRepo,
		cartRepo:    cartRepo,
		paymentRepo: paymentRepo,
		profileRepo: profileRepo,
		actions:     actions,
		now:         now,
	}
}

// CreateOrderAndCheckout は 注文作成 → checkout session作成 の2段。
// 金額はサーバー側のカート合計（小数2桁に丸める）をそのまま使う。
func (u *CheckoutUsecase) CreateOrderAndCheckout(ctx context.Context, id model.Identity, raw Fields) State {
	const name = "checkout"
	if st, ok := authorize(name, u.actions, id); !ok {
		return st
	}
	return RunAction(ctx, u.actions, name, raw, validator.Shipping,
		func(ctx context.Context, addr model.ShippingAddress) (CheckoutResult, error) {
			cart, err := u.cartRepo.Current(ctx)
			if err != nil {
				return CheckoutResult{}, err
			}
			if cart.IsEmpty() {
				return CheckoutResult{}, errCartEmpty
			}

			email, err := u.customerEmail(ctx, id)
			if err != nil {
				return CheckoutResult{}, err
			}

			line := addr.Line()

			// STEP 1: 注文
			o, err := u.orderRepo.Create(ctx, model.OrderCreateRequest{
				CustomerID:      id.UserID,
				ShippingAddress: line,
				Items:           []model.CartItem{},
			})
			if err != nil {
				return CheckoutResult{}, err
			}
			if o.ID == "" {
				return CheckoutResult{}, errOrderNotCreated
			}

			number := orderNumber(o.ID, u.now().UnixMilli())

			// STEP 2: checkout session
			p, err := u.paymentRepo.Checkout(ctx, model.CheckoutRequest{
				OrderNumber:     number,
				CustomerEmail:   email,
				CustomerID:      id.UserID,
				TotalAmount:     CartAmount(cart),
				ShippingAddress: line,
			})
			if err != nil {
				// 注文は残る（pendingのまま）
				u.actions.Log.WithError(err).WithField("order_number", number).Error("checkout session failed")
				return CheckoutResult{}, err
			}
			if p.StripeCheckoutURL == "" {
				return CheckoutResult{}, errCheckoutNotOpened
			}

			return CheckoutResult{
				OrderID:     o.ID,
				OrderNumber: number,
				CheckoutURL: p.StripeCheckoutURL,
			}, nil
		},
		"/orders",
	)
}

// トークンに email が無ければプロフィールから引く
func (u *CheckoutUsecase) customerEmail(ctx context.Context, id model.Identity) (string, error) {
	if id.Email != "" || u.profileRepo == nil {
		return id.Email, nil
	}
	p, err := u.profileRepo.Get(ctx, id.UserID)
	if err != nil {
		return "", err
	}
	return p.Email, nil
}

// CartAmountはカート合計を小数2桁に丸めた額。
// totalが来ていないときは明細から計算する
func CartAmount(cart model.Cart) float64 {
	total := decimal.NewFromFloat(cart.Total)
	if total.IsZero() {
		for _, it := range cart.Items {
			total = total.Add(decimal.NewFromFloat(it.Product.Price).Mul(decimal.NewFromInt(it.Quantity)))
		}
	}
	return total.Round(2).InexactFloat64()
}
