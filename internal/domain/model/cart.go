package model

// カート。total/itemCountはサーバー計算値で、クライアントでは再計算しない
type Cart struct {
	ID        ID         `json:"id"`
	UserID    ID         `json:"userId"`
	Items     []CartItem `json:"items"`
	Total     float64    `json:"total"`
	ItemCount int64      `json:"itemCount"`
	UpdatedAt string     `json:"updatedAt,omitempty"`
}

// IsEmptyは明細が無いか
func (c *Cart) IsEmpty() bool {
	return c == nil || len(c.Items) == 0
}

type AddToCartRequest struct {
	ProductID ID    `json:"productId" validate:"required" msg:"Product is required"`
	Quantity  int64 `json:"quantity" validate:"gte=1" msg:"Quantity must be at least 1"`
}

type UpdateCartItemRequest struct {
	ProductID ID    `json:"productId" validate:"required" msg:"Product is required"`
	Quantity  int64 `json:"quantity" validate:"gte=1" msg:"Quantity must be at least 1"`
}

type RemoveFromCartRequest struct {
	ProductID ID `json:"productId" validate:"required" msg:"Product is required"`
}
