package model

// 商品（クライアントからは読み取り専用。更新はDTO経由のみ）
type Product struct {
	ID          ID      `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	Stock       int64   `json:"stock"`
	Rating      float64 `json:"rating"`
	CreatedAt   string  `json:"createdAt,omitempty"`
	UpdatedAt   string  `json:"updatedAt,omitempty"`
}

type ProductCreateRequest struct {
	Name        string   `json:"name" validate:"required" msg:"Name is required"`
	Description string   `json:"description" validate:"required" msg:"Description is required"`
	Price       float64  `json:"price" validate:"gt=0" msg:"Price must be positive"`
	Category    string   `json:"category" validate:"required" msg:"Category is required"`
	Image       string   `json:"image" validate:"required,url" msg:"Invalid image URL"`
	Stock       int64    `json:"stock" validate:"gte=0" msg:"Stock must be non-negative"`
	Rating      *float64 `json:"rating,omitempty" validate:"omitempty,gte=0,lte=5"`
}

// 部分更新。nilのフィールドは送らない
type ProductUpdateRequest struct {
	Name        *string  `json:"name,omitempty" validate:"omitempty,min=1" msg:"Name is required"`
	Description *string  `json:"description,omitempty" validate:"omitempty,min=1" msg:"Description is required"`
	Price       *float64 `json:"price,omitempty" validate:"omitempty,gt=0" msg:"Price must be positive"`
	Category    *string  `json:"category,omitempty" validate:"omitempty,min=1" msg:"Category is required"`
	Image       *string  `json:"image,omitempty" validate:"omitempty,url" msg:"Invalid image URL"`
	Stock       *int64   `json:"stock,omitempty" validate:"omitempty,gte=0" msg:"Stock must be non-negative"`
	Rating      *float64 `json:"rating,omitempty" validate:"omitempty,gte=0,lte=5"`
}

type ProductIDRequest struct {
	ID ID `json:"id" validate:"required" msg:"Product ID is required"`
}

// 更新フォーム。IDはパスに使い、本文には含めない
type ProductUpdateForm struct {
	ID ID `json:"id" validate:"required" msg:"Product ID is required"`
	ProductUpdateRequest
}
