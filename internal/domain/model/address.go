package model

// 保存済み住所。デフォルトの一意性はサーバー側で保証
type Address struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"userId"`
	FullName  string `json:"fullName"`
	Street    string `json:"street"`
	City      string `json:"city"`
	State     string `json:"state"`
	ZipCode   string `json:"zipCode"`
	Country   string `json:"country"`
	IsDefault bool   `json:"isDefault"`
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

type AddressCreateRequest struct {
	ShippingAddress
	IsDefault bool `json:"isDefault"`
}

type AddressIDRequest struct {
	ID int64 `json:"id" validate:"gt=0" msg:"Address ID is required"`
}
