package usecase

import (
	"context"
	"errors"
	"strconv"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"
	"storefront/internal/validator"
)

var (
	errCartEmpty     = errors.New("Cart is empty")
	errOrderNotFound = errors.New("Order not found")
)

type OrderUsecase struct {
	orderRepo repo.OrderRepository
	cartRepo  repo.CartRepository
	actions   *Actions
}

func NewOrderUsecase(orderRepo repo.OrderRepository, cartRepo repo.CartRepository, actions *Actions) *OrderUsecase {
	return &OrderUsecase{
		orderRepo: orderRepo,
		cartRepo:  cartRepo,
		actions:   actions,
	}
}

// ListMine は GET orders/user/{id}
func (u *OrderUsecase) ListMine(ctx context.Context, id model.Identity) ([]model.Order, error) {
	if !id.IsAuthenticated() {
		return []model.Order{}, ErrAuthenticationRequired
	}
	orders, err := u.orderRepo.ListByUserID(ctx, id.UserID)
	if err != nil {
		return []model.Order{}, readError(err)
	}
	return orders, nil
}

// Get は自分の注文だけ（adminは全部）
func (u *OrderUsecase) Get(ctx context.Context, id model.Identity, orderID model.ID) (model.Order, error) {
	if !id.IsAuthenticated() {
		return model.Order{}, ErrAuthenticationRequired
	}
	o, err := u.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return model.Order{}, readError(err)
	}
	if !owns(id, o) {
		return model.Order{}, readError(repo.ErrNotFound)
	}
	return o, nil
}

// Recent はバックエンドの並び順のまま先頭 n 件
func (u *OrderUsecase) Recent(ctx context.Context, id model.Identity, n int) ([]model.Order, error) {
	orders, err := u.ListMine(ctx, id)
	if err != nil {
		return orders, err
	}
	if n >= 0 && len(orders) > n {
		orders = orders[:n]
	}
	return orders, nil
}

func (u *OrderUsecase) ByStatus(ctx context.Context, id model.Identity, status model.OrderStatus) ([]model.Order, error) {
	orders, err := u.ListMine(ctx, id)
	if err != nil {
		return orders, err
	}
	return filterByStatus(orders, status), nil
}

// PlaceOrder はカートから注文を作り、カートを空にする（決済なし）
func (u *OrderUsecase) PlaceOrder(ctx context.Context, id model.Identity, raw Fields) State {
	const name = "orders.create"
	if st, ok := authorize(name, u.actions, id); !ok {
		return st
	}
	return RunAction(ctx, u.actions, name, raw, validator.Shipping,
		func(ctx context.Context, addr model.ShippingAddress) (model.Order, error) {
			cart, err := u.cartRepo.Current(ctx)
			if err != nil {
				return model.Order{}, err
			}
			if cart.IsEmpty() {
				return model.Order{}, errCartEmpty
			}

			// items は空で送る（バックエンドがカートから組み立てる）
			o, err := u.orderRepo.Create(ctx, model.OrderCreateRequest{
				CustomerID:      id.UserID,
				ShippingAddress: addr.Line(),
				Items:           []model.CartItem{},
			})
			if err != nil {
				return model.Order{}, err
			}

			if err := u.cartRepo.Clear(ctx); err != nil {
				u.actions.Log.WithError(err).WithField("order_id", o.ID).Error("clear cart after order failed")
			}
			return o, nil
		},
		"/orders", "/cart",
	)
}

// CancelOrder は PUT orders/{id} {status: cancelled}
func (u *OrderUsecase) CancelOrder(ctx context.Context, id model.Identity, raw Fields) State {
	const name = "orders.cancel"
	if st, ok := authorize(name, u.actions, id); !ok {
		return st
	}
	return RunAction(ctx, u.actions, name, raw, validator.OrderID,
		func(ctx context.Context, in model.OrderIDRequest) (model.Order, error) {
			o, err := u.orderRepo.FindByID(ctx, in.ID)
			if err != nil {
				return model.Order{}, err
			}
			if !owns(id, o) {
				return model.Order{}, errOrderNotFound
			}
			return u.orderRepo.UpdateStatus(ctx, in.ID, model.OrderStatusCancelled)
		},
		"/orders", "/admin/orders",
	)
}

// userIdが無い注文は本人のものとみなす
func owns(id model.Identity, o model.Order) bool {
	return id.IsAdmin() || o.UserID == "" || o.UserID.Int64() == id.UserID
}

func filterByStatus(orders []model.Order, status model.OrderStatus) []model.Order {
	out := make([]model.Order, 0, len(orders))
	for _, o := range orders {
		if o.Status == status {
			out = append(out, o)
		}
	}
	return out
}

func orderNumber(orderID model.ID, millis int64) string {
	return "ORD-" + orderID.String() + "-" + strconv.FormatInt(millis, 10)
}
