package usecase

import (
	"context"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"
	"storefront/internal/validator"
)

// CartUsecase は /cart の業務ロジックです。
// カートはトークンのユーザーのものなので userId は送りません。
type CartUsecase struct {
	cartRepo repo.CartRepository
	actions  *Actions
}

func NewCartUsecase(cartRepo repo.CartRepository, actions *Actions) *CartUsecase {
	return &CartUsecase{
		cartRepo: cartRepo,
		actions:  actions,
	}
}

// GetCart は現在のカート
func (u *CartUsecase) GetCart(ctx context.Context, id model.Identity) (model.Cart, error) {
	if !id.IsAuthenticated() {
		return model.Cart{}, ErrAuthenticationRequired
	}
	cart, err := u.cartRepo.Current(ctx)
	if err != nil {
		return model.Cart{}, readError(err)
	}
	return cart, nil
}

func (u *CartUsecase) Total(ctx context.Context, id model.Identity) (float64, error) {
	cart, err := u.GetCart(ctx, id)
	if err != nil {
		return 0, err
	}
	return cart.Total, nil
}

// ItemCount はヘッダーのバッジ用。未ログインは 0
func (u *CartUsecase) ItemCount(ctx context.Context, id model.Identity) (int64, error) {
	if !id.IsAuthenticated() {
		return 0, nil
	}
	cart, err := u.GetCart(ctx, id)
	if err != nil {
		return 0, err
	}
	return cart.ItemCount, nil
}

func (u *CartUsecase) AddToCart(ctx context.Context, id model.Identity, raw Fields) State {
	const name = "cart.add"
	if st, ok := authorize(name, u.actions, id); !ok {
		return st
	}
	return RunAction(ctx, u.actions, name, raw, validator.AddToCart,
		func(ctx context.Context, in model.AddToCartRequest) (model.Cart, error) {
			return u.cartRepo.Add(ctx, in)
		},
		"/cart", "/",
	)
}

func (u *CartUsecase) UpdateCartItem(ctx context.Context, id model.Identity, raw Fields) State {
	const name = "cart.update"
	if st, ok := authorize(name, u.actions, id); !ok {
		return st
	}
	return RunAction(ctx, u.actions, name, raw, validator.UpdateCartItem,
		func(ctx context.Context, in model.UpdateCartItemRequest) (model.Cart, error) {
			return u.cartRepo.Update(ctx, in)
		},
		"/cart",
	)
}

func (u *CartUsecase) RemoveFromCart(ctx context.Context, id model.Identity, raw Fields) State {
	const name = "cart.remove"
	if st, ok := authorize(name, u.actions, id); !ok {
		return st
	}
	return RunAction(ctx, u.actions, name, raw, validator.RemoveFromCart,
		func(ctx context.Context, in model.RemoveFromCartRequest) (model.Cart, error) {
			return u.cartRepo.Remove(ctx, in.ProductID)
		},
		"/cart",
	)
}

func (u *CartUsecase) ClearCart(ctx context.Context, id model.Identity) State {
	const name = "cart.clear"
	if st, ok := authorize(name, u.actions, id); !ok {
		return st
	}
	return RunAction(ctx, u.actions, name, Fields{}, validator.Empty,
		func(ctx context.Context, _ struct{}) (any, error) {
			return nil, u.cartRepo.Clear(ctx)
		},
		"/cart",
	)
}
