package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// OrderStatusesは選択肢の並び順
var OrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusProcessing,
	OrderStatusShipped,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

// 配送先（注文に埋め込む形）
type ShippingAddress struct {
	FullName string `json:"fullName" validate:"required" msg:"Full name is required"`
	Street   string `json:"street" validate:"required" msg:"Street address is required"`
	City     string `json:"city" validate:"required" msg:"City is required"`
	State    string `json:"state" validate:"required" msg:"State is required"`
	ZipCode  string `json:"zipCode" validate:"required" msg:"ZIP code is required"`
	Country  string `json:"country" validate:"required" msg:"Country is required"`
}

// Lineはバックエンドが要求する1行の住所文字列
func (a ShippingAddress) Line() string {
	return fmt.Sprintf("%s, %s, %s, %s %s, %s", a.FullName, a.Street, a.City, a.State, a.ZipCode, a.Country)
}

// 状態遷移はサーバー側が正。クライアントは要求するだけ
type Order struct {
	ID              ID          `json:"id"`
	UserID          ID          `json:"userId"`
	Items           []CartItem  `json:"items"`
	Total           float64     `json:"total"`
	Status          OrderStatus `json:"status"`
	ShippingAddress AddressLine `json:"shippingAddress"`
	CreatedAt       string      `json:"createdAt"`
	UpdatedAt       string      `json:"updatedAt"`
}

// バックエンドはカートから明細を引くので items は空で送る
type OrderCreateRequest struct {
	CustomerID      int64      `json:"customerId"`
	ShippingAddress string     `json:"shippingAddress"`
	Items           []CartItem `json:"items"`
}

type OrderUpdateRequest struct {
	Status OrderStatus `json:"status,omitempty"`
}

// AddressLineは文字列でもオブジェクトでも1行の住所として読む
type AddressLine string

func (l *AddressLine) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*l = ""
		return nil
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*l = AddressLine(s)
		return nil
	}
	var a ShippingAddress
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	*l = AddressLine(a.Line())
	return nil
}

// 注文IDの入力（キャンセル・ステータス変更）
type OrderIDRequest struct {
	ID ID `json:"id" validate:"required" msg:"Order ID is required"`
}

type OrderStatusRequest struct {
	ID     ID          `json:"id" validate:"required" msg:"Order ID is required"`
	Status OrderStatus `json:"status" validate:"oneof=pending processing shipped delivered cancelled" msg:"Invalid status"`
}
