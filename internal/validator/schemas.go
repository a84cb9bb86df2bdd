package validator

import "storefront/internal/domain/model"

// カート
var (
	AddToCart      = NewSchema[model.AddToCartRequest]()
	UpdateCartItem = NewSchema[model.UpdateCartItemRequest]()
	RemoveFromCart = NewSchema[model.RemoveFromCartRequest]()
)

// 注文・チェックアウト
var (
	Shipping    = NewSchema[model.ShippingAddress]()
	OrderID     = NewSchema[model.OrderIDRequest]()
	OrderStatus = NewSchema[model.OrderStatusRequest]()
)

// 商品（admin）
var (
	ProductCreate = NewSchema[model.ProductCreateRequest]()
	ProductUpdate = NewSchema[model.ProductUpdateForm]()
	ProductID     = NewSchema[model.ProductIDRequest]()
)

// プロフィール・住所
var (
	ProfileUpdate = NewSchema[model.ProfileUpdateRequest]()
	AddressCreate = NewSchema[model.AddressCreateRequest]()
	AddressID     = NewSchema[model.AddressIDRequest]()
)

// ユーザー（admin）
var (
	UserRole = NewSchema[model.UserRoleRequest]()
	UserID   = NewSchema[model.UserIDRequest]()
)

// Emptyは入力を持たないaction用
var Empty = NewSchema[struct{}]()
