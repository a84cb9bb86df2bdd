package usecase_test

import (
	"context"
	"testing"

	"storefront/internal/domain/model"
	"storefront/internal/infra/backend"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// 認証済みで add-to-cart → cart/add が1回、/cart と / が無効化される
func TestCartUsecase_AddToCart_Authenticated(t *testing.T) {
	ctx := context.Background()
	a, _, _ := newActions(t)

	carts := new(CartRepoMock)
	carts.On("Add", mock.Anything, model.AddToCartRequest{ProductID: "1", Quantity: 1}).
		Return(model.Cart{ItemCount: 1, Total: 10}, nil).Once()

	uc := usecase.NewCartUsecase(carts, a)
	st := uc.AddToCart(ctx, user7, usecase.Fields{"productId": "1", "quantity": "1"})

	assert.True(t, st.Success)
	assert.Equal(t, model.Cart{ItemCount: 1, Total: 10}, st.Data)
	assert.Equal(t, []string{"/cart", "/"}, st.Stale)
	carts.AssertExpectations(t)
}

// 未ログインは通信しない
func TestCartUsecase_AddToCart_Unauthenticated(t *testing.T) {
	ctx := context.Background()
	a, _, spy := newActions(t)

	carts := new(CartRepoMock)
	uc := usecase.NewCartUsecase(carts, a)

	st := uc.AddToCart(ctx, anonymous, usecase.Fields{"productId": "1", "quantity": "1"})

	assert.False(t, st.Success)
	assert.Equal(t, map[string][]string{"userId": {"Authentication required. Please log in."}}, st.Errors)
	assert.Nil(t, st.Stale)
	carts.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	assert.Empty(t, carts.Calls)
	assert.Equal(t, []string{"cart.add:unauthenticated"}, spy.all())
}

func TestCartUsecase_UpdateCartItem_InvalidQuantity(t *testing.T) {
	a, _, _ := newActions(t)
	carts := new(CartRepoMock)
	uc := usecase.NewCartUsecase(carts, a)

	st := uc.UpdateCartItem(context.Background(), user7, usecase.Fields{"productId": "1", "quantity": "0"})

	assert.False(t, st.Success)
	assert.Equal(t, []string{"Quantity must be at least 1"}, st.Errors["quantity"])
	assert.Empty(t, carts.Calls)
}

func TestCartUsecase_Remove_BackendFailure(t *testing.T) {
	a, _, _ := newActions(t)
	carts := new(CartRepoMock)
	carts.On("Remove", mock.Anything, model.ID("3")).
		Return(nil, &backend.Error{Kind: backend.ErrApplication, Code: 500, Message: "Item not in cart"}).Once()

	uc := usecase.NewCartUsecase(carts, a)
	st := uc.RemoveFromCart(context.Background(), user7, usecase.Fields{"productId": "3"})

	assert.False(t, st.Success)
	assert.Equal(t, []string{"Item not in cart"}, st.Errors["general"])
	carts.AssertExpectations(t)
}

func TestCartUsecase_ClearCart(t *testing.T) {
	a, _, _ := newActions(t)
	carts := new(CartRepoMock)
	carts.On("Clear", mock.Anything).Return(nil).Once()

	uc := usecase.NewCartUsecase(carts, a)
	st := uc.ClearCart(context.Background(), user7)

	assert.True(t, st.Success)
	assert.Equal(t, []string{"/cart"}, st.Stale)
	carts.AssertExpectations(t)
}

func TestCartUsecase_ItemCount(t *testing.T) {
	a, _, _ := newActions(t)
	carts := new(CartRepoMock)
	carts.On("Current", mock.Anything).Return(model.Cart{ItemCount: 4}, nil).Once()

	uc := usecase.NewCartUsecase(carts, a)

	n, err := uc.ItemCount(context.Background(), anonymous)
	assert.NoError(t, err)
	assert.Zero(t, n)

	n, err = uc.ItemCount(context.Background(), user7)
	assert.NoError(t, err)
	assert.Equal(t, int64(4), n)
	carts.AssertExpectations(t)
}

func TestCartUsecase_GetCart_Unauthenticated(t *testing.T) {
	a, _, _ := newActions(t)
	uc := usecase.NewCartUsecase(new(CartRepoMock), a)

	_, err := uc.GetCart(context.Background(), anonymous)
	assert.ErrorIs(t, err, usecase.ErrAuthenticationRequired)
}
