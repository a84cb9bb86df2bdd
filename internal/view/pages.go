package view

import (
	"storefront/internal/domain/model"
)

// テンプレートが参照する .Data の形

type HomeData struct {
	Featured   []model.Product
	Categories []string
	CartCount  int64
	Recent     []model.Order
}

type ProductsData struct {
	Products   []model.Product
	Categories []string
	Category   string
	Query      string
}

type CheckoutData struct {
	Cart      model.Cart
	Addresses []model.Address
	Amount    float64
}

// AuthFormDataはlogin/register。Redirectはログイン後の戻り先
type AuthFormData struct {
	Redirect string
}

type AdminOrdersData struct {
	Orders []model.Order
	Status model.OrderStatus
}

type ErrorData struct {
	Status  int
	Message string
}
