package usecase_test

import (
	"context"
	"sync"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"

	"github.com/stretchr/testify/mock"
)

// =====================
// Repository mocks
// =====================

type CartRepoMock struct{ mock.Mock }

var _ repo.CartRepository = (*CartRepoMock)(nil)

func (m *CartRepoMock) Current(ctx context.Context) (model.Cart, error) {
	args := m.Called(ctx)
	c, _ := args.Get(0).(model.Cart)
	return c, args.Error(1)
}

func (m *CartRepoMock) Add(ctx context.Context, in model.AddToCartRequest) (model.Cart, error) {
	args := m.Called(ctx, in)
	c, _ := args.Get(0).(model.Cart)
	return c, args.Error(1)
}

func (m *CartRepoMock) Update(ctx context.Context, in model.UpdateCartItemRequest) (model.Cart, error) {
	args := m.Called(ctx, in)
	c, _ := args.Get(0).(model.Cart)
	return c, args.Error(1)
}

func (m *CartRepoMock) Remove(ctx context.Context, productID model.ID) (model.Cart, error) {
	args := m.Called(ctx, productID)
	c, _ := args.Get(0).(model.Cart)
	return c, args.Error(1)
}

func (m *CartRepoMock) Clear(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type OrderRepoMock struct{ mock.Mock }

var _ repo.OrderRepository = (*OrderRepoMock)(nil)

func (m *OrderRepoMock) FindByID(ctx context.Context, id model.ID) (model.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

func (m *OrderRepoMock) ListByUserID(ctx context.Context, userID int64) ([]model.Order, error) {
	args := m.Called(ctx, userID)
	o, _ := args.Get(0).([]model.Order)
	return o, args.Error(1)
}

func (m *OrderRepoMock) Create(ctx context.Context, in model.OrderCreateRequest) (model.Order, error) {
	args := m.Called(ctx, in)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

func (m *OrderRepoMock) UpdateStatus(ctx context.Context, id model.ID, status model.OrderStatus) (model.Order, error) {
	args := m.Called(ctx, id, status)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

func (m *OrderRepoMock) List(ctx context.Context) ([]model.Order, error) {
	args := m.Called(ctx)
	o, _ := args.Get(0).([]model.Order)
	return o, args.Error(1)
}

type PaymentRepoMock struct{ mock.Mock }

var _ repo.PaymentRepository = (*PaymentRepoMock)(nil)

func (m *PaymentRepoMock) Checkout(ctx context.Context, in model.CheckoutRequest) (model.Payment, error) {
	args := m.Called(ctx, in)
	p, _ := args.Get(0).(model.Payment)
	return p, args.Error(1)
}

func (m *PaymentRepoMock) Verify(ctx context.Context, sessionID string) (model.Payment, error) {
	args := m.Called(ctx, sessionID)
	p, _ := args.Get(0).(model.Payment)
	return p, args.Error(1)
}

type ProductRepoMock struct{ mock.Mock }

var _ repo.ProductRepository = (*ProductRepoMock)(nil)

func (m *ProductRepoMock) List(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	p, _ := args.Get(0).([]model.Product)
	return p, args.Error(1)
}

func (m *ProductRepoMock) FindByID(ctx context.Context, id model.ID) (model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *ProductRepoMock) Create(ctx context.Context, in model.ProductCreateRequest) (model.Product, error) {
	args := m.Called(ctx, in)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *ProductRepoMock) Update(ctx context.Context, id model.ID, in model.ProductUpdateRequest) (model.Product, error) {
	args := m.Called(ctx, id, in)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *ProductRepoMock) Delete(ctx context.Context, id model.ID) error {
	return m.Called(ctx, id).Error(0)
}

type ProfileRepoMock struct{ mock.Mock }

var _ repo.ProfileRepository = (*ProfileRepoMock)(nil)

func (m *ProfileRepoMock) Get(ctx context.Context, userID int64) (model.Profile, error) {
	args := m.Called(ctx, userID)
	p, _ := args.Get(0).(model.Profile)
	return p, args.Error(1)
}

func (m *ProfileRepoMock) Update(ctx context.Context, userID int64, in model.ProfileUpdateRequest) (model.Profile, error) {
	args := m.Called(ctx, userID, in)
	p, _ := args.Get(0).(model.Profile)
	return p, args.Error(1)
}

type AddressRepoMock struct{ mock.Mock }

var _ repo.AddressRepository = (*AddressRepoMock)(nil)

func (m *AddressRepoMock) ListByUserID(ctx context.Context, userID int64) ([]model.Address, error) {
	args := m.Called(ctx, userID)
	a, _ := args.Get(0).([]model.Address)
	return a, args.Error(1)
}

func (m *AddressRepoMock) Create(ctx context.Context, userID int64, in model.AddressCreateRequest) (model.Address, error) {
	args := m.Called(ctx, userID, in)
	a, _ := args.Get(0).(model.Address)
	return a, args.Error(1)
}

func (m *AddressRepoMock) Delete(ctx context.Context, userID, addressID int64) error {
	return m.Called(ctx, userID, addressID).Error(0)
}

type UserRepoMock struct{ mock.Mock }

var _ repo.UserRepository = (*UserRepoMock)(nil)

func (m *UserRepoMock) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	u, _ := args.Get(0).([]model.User)
	return u, args.Error(1)
}

func (m *UserRepoMock) FindByID(ctx context.Context, userID int64) (model.User, error) {
	args := m.Called(ctx, userID)
	u, _ := args.Get(0).(model.User)
	return u, args.Error(1)
}

func (m *UserRepoMock) Update(ctx context.Context, userID int64, in model.UserUpdateRequest) (model.User, error) {
	args := m.Called(ctx, userID, in)
	u, _ := args.Get(0).(model.User)
	return u, args.Error(1)
}

func (m *UserRepoMock) Delete(ctx context.Context, userID int64) error {
	return m.Called(ctx, userID).Error(0)
}

type AuthRepoMock struct{ mock.Mock }

var _ repo.AuthRepository = (*AuthRepoMock)(nil)

func (m *AuthRepoMock) Login(ctx context.Context, in model.LoginRequest) (model.AuthResult, error) {
	args := m.Called(ctx, in)
	r, _ := args.Get(0).(model.AuthResult)
	return r, args.Error(1)
}

func (m *AuthRepoMock) Register(ctx context.Context, in model.RegisterRequest) (model.AuthResult, error) {
	args := m.Called(ctx, in)
	r, _ := args.Get(0).(model.AuthResult)
	return r, args.Error(1)
}

func (m *AuthRepoMock) Logout(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// =====================
// observer spy
// =====================

type actionSpy struct {
	mu      sync.Mutex
	results []string
}

func (s *actionSpy) ObserveAction(action, result string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results = append(s.results, action+":"+result)
}

func (s *actionSpy) all() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.results...)
}

// =====================
// identities
// =====================

var (
	anonymous = model.Identity{}
	user7     = model.Identity{UserID: 7, Name: "Ada", Email: "ada@example.com", Role: model.RoleUser, Token: "tok"}
	admin1    = model.Identity{UserID: 1, Name: "Root", Email: "root@example.com", Role: model.RoleAdmin, Token: "tok-admin"}
)
