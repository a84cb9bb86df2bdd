package model

// カートの明細（商品スナップショット込み）
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int64   `json:"quantity"`
}

// Subtotalは表示用（合計の正はサーバー側のtotal）
func (i CartItem) Subtotal() float64 {
	return i.Product.Price * float64(i.Quantity)
}
