package usecase

import (
	"context"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"
	"storefront/internal/validator"
)

type AdminOrderUsecase struct {
	orderRepo repo.OrderRepository
	actions   *Actions
}

func NewAdminOrderUsecase(orderRepo repo.OrderRepository, actions *Actions) *AdminOrderUsecase {
	return &AdminOrderUsecase{orderRepo: orderRepo, actions: actions}
}

// 注文一覧（status指定があれば絞る）
func (u *AdminOrderUsecase) List(ctx context.Context, id model.Identity, status model.OrderStatus) ([]model.Order, error) {
	if !id.IsAuthenticated() {
		return []model.Order{}, ErrAuthenticationRequired
	}
	if !id.IsAdmin() {
		return []model.Order{}, readError(ErrForbidden)
	}
	orders, err := u.orderRepo.List(ctx)
	if err != nil {
		return []model.Order{}, readError(err)
	}
	if status != "" {
		orders = filterByStatus(orders, status)
	}
	return orders, nil
}

// UpdateStatus は PUT orders/{id} {status}
func (u *AdminOrderUsecase) UpdateStatus(ctx context.Context, id model.Identity, raw Fields) State {
	const name = "admin.orders.status"
	if st, ok := authorizeAdmin(name, u.actions, id); !ok {
		return st
	}
	return RunAction(ctx, u.actions, name, raw, validator.OrderStatus,
		func(ctx context.Context, in model.OrderStatusRequest) (model.Order, error) {
			return u.orderRepo.UpdateStatus(ctx, in.ID, in.Status)
		},
		"/admin/orders", "/orders",
	)
}
