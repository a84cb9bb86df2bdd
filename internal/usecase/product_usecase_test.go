package usecase_test

import (
	"context"
	"testing"

	"storefront/internal/domain/model"
	"storefront/internal/infra/backend"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func catalog() []model.Product {
	return []model.Product{
		{ID: "1", Name: "Desk Lamp", Description: "Warm light", Category: "home"},
		{ID: "2", Name: "Mug", Description: "Ceramic", Category: "kitchen"},
		{ID: "3", Name: "Kettle", Description: "Boils water fast", Category: "kitchen"},
	}
}

func TestProductQueries(t *testing.T) {
	a, _, _ := newActions(t)
	products := new(ProductRepoMock)
	products.On("List", mock.Anything).Return(catalog(), nil)

	uc := usecase.NewProductUsecase(products, a)
	ctx := context.Background()

	found, err := uc.Search(ctx, "WATER")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, model.ID("3"), found[0].ID)

	found, err = uc.Search(ctx, "kitchen")
	require.NoError(t, err)
	assert.Len(t, found, 2)

	featured, err := uc.Featured(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, featured, 2)

	byCat, err := uc.ByCategory(ctx, "home")
	require.NoError(t, err)
	assert.Len(t, byCat, 1)

	cats, err := uc.Categories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"home", "kitchen"}, cats)
}

func TestProductAll_BackendDown(t *testing.T) {
	a, _, _ := newActions(t)
	products := new(ProductRepoMock)
	products.On("List", mock.Anything).Return(nil, &backend.Error{Kind: backend.ErrNetwork, Message: "Network error: refused"})

	uc := usecase.NewProductUsecase(products, a)
	items, err := uc.All(context.Background())

	assert.NotNil(t, items)
	he, ok := usecase.AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, 502, he.Status)
}

func TestAdminCreateProduct(t *testing.T) {
	a, _, _ := newActions(t)
	products := new(ProductRepoMock)
	products.On("Create", mock.Anything, model.ProductCreateRequest{
		Name: "Lamp", Description: "Bright", Price: 12, Category: "home",
		Image: "https://cdn.example.com/lamp.png", Stock: 3,
	}).Return(model.Product{ID: "10", Name: "Lamp"}, nil).Once()

	uc := usecase.NewProductUsecase(products, a)
	st := uc.AdminCreateProduct(context.Background(), admin1, usecase.Fields{
		"name": " Lamp ", "description": "Bright", "price": "12", "category": "home",
		"image": "https://cdn.example.com/lamp.png", "stock": "3",
	})

	assert.True(t, st.Success)
	assert.Equal(t, []string{"/admin/products", "/products"}, st.Stale)
	products.AssertExpectations(t)
}

func TestAdminCreateProduct_Invalid(t *testing.T) {
	a, _, _ := newActions(t)
	products := new(ProductRepoMock)

	uc := usecase.NewProductUsecase(products, a)
	st := uc.AdminCreateProduct(context.Background(), admin1, usecase.Fields{
		"name": "Lamp", "price": "-1", "image": "not a url", "stock": "1",
	})

	assert.False(t, st.Success)
	assert.Equal(t, []string{"Price must be positive"}, st.Errors["price"])
	assert.Equal(t, []string{"Invalid image URL"}, st.Errors["image"])
	assert.Equal(t, []string{"Description is required"}, st.Errors["description"])
	assert.Empty(t, products.Calls)
}

func TestAdminUpdateProduct_Partial(t *testing.T) {
	a, _, _ := newActions(t)
	products := new(ProductRepoMock)
	products.On("Update", mock.Anything, model.ID("4"), mock.MatchedBy(func(in model.ProductUpdateRequest) bool {
		return in.Price != nil && *in.Price == 9.5 && in.Name == nil && in.Stock == nil
	})).Return(model.Product{ID: "4", Price: 9.5}, nil).Once()

	uc := usecase.NewProductUsecase(products, a)
	st := uc.AdminUpdateProduct(context.Background(), admin1, usecase.Fields{"id": "4", "price": "9.5"})

	assert.True(t, st.Success)
	products.AssertExpectations(t)
}

// 既に無い商品の削除も成功（2回目も同じ）
func TestAdminDeleteProduct_Idempotent(t *testing.T) {
	a, _, _ := newActions(t)
	products := new(ProductRepoMock)
	products.On("Delete", mock.Anything, model.ID("4")).Return(nil).Once()
	products.On("Delete", mock.Anything, model.ID("4")).
		Return(&backend.Error{Kind: backend.ErrNotFound, Code: 404, Message: "Not Found"}).Once()

	uc := usecase.NewProductUsecase(products, a)
	ctx := context.Background()

	first := uc.AdminDeleteProduct(ctx, admin1, usecase.Fields{"id": "4"})
	second := uc.AdminDeleteProduct(ctx, admin1, usecase.Fields{"id": "4"})

	assert.True(t, first.Success)
	assert.True(t, second.Success)
	products.AssertExpectations(t)
}

func TestAdminProduct_NonAdmin(t *testing.T) {
	a, _, _ := newActions(t)
	products := new(ProductRepoMock)

	uc := usecase.NewProductUsecase(products, a)

	st := uc.AdminDeleteProduct(context.Background(), user7, usecase.Fields{"id": "4"})
	assert.False(t, st.Success)
	assert.Equal(t, []string{"Admin access required"}, st.Errors["general"])

	st = uc.AdminDeleteProduct(context.Background(), anonymous, usecase.Fields{"id": "4"})
	assert.Equal(t, usecase.Unauthenticated(), st)

	assert.Empty(t, products.Calls)
}
