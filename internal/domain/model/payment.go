package model

type PaymentStatus string

const (
	PaymentStatusPending    PaymentStatus = "PENDING"
	PaymentStatusProcessing PaymentStatus = "PROCESSING"
	PaymentStatusCompleted  PaymentStatus = "COMPLETED"
	PaymentStatusFailed     PaymentStatus = "FAILED"
	PaymentStatusCancelled  PaymentStatus = "CANCELLED"
)

// POST /payments/checkout の入力
type CheckoutRequest struct {
	OrderNumber     string  `json:"orderNumber"`
	CustomerEmail   string  `json:"customerEmail,omitempty"`
	CustomerID      int64   `json:"customerId"`
	TotalAmount     float64 `json:"totalAmount"`
	ShippingAddress string  `json:"shippingAddress,omitempty"`
}

// 決済セッション（checkoutの応答・verifyの応答で共通）
type Payment struct {
	ID                ID            `json:"id"`
	OrderNumber       string        `json:"orderNumber"`
	CustomerID        int64         `json:"customerId"`
	CustomerEmail     string        `json:"customerEmail,omitempty"`
	TotalAmount       float64       `json:"totalAmount"`
	ShippingAddress   string        `json:"shippingAddress,omitempty"`
	StripeCheckoutURL string        `json:"stripeCheckoutUrl,omitempty"`
	Status            PaymentStatus `json:"status"`
	CreatedAt         string        `json:"createdAt,omitempty"`
	UpdatedAt         string        `json:"updatedAt,omitempty"`
}
