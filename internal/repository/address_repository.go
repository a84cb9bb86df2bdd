package repository

import (
	"context"

	"storefront/internal/domain/model"
)

// 住所(Address)を保存・取得する窓口
type AddressRepository interface {
	//ユーザーが持つ住所一覧を返す
	ListByUserID(ctx context.Context, userID int64) ([]model.Address, error)

	//住所を新規作成する。作成後の住所（IDなどが埋まったもの）を返す
	Create(ctx context.Context, userID int64, in model.AddressCreateRequest) (model.Address, error)

	//住所の削除。
	Delete(ctx context.Context, userID, addressID int64) error
}

// プロフィール（名前・メール）
type ProfileRepository interface {
	Get(ctx context.Context, userID int64) (model.Profile, error)
	Update(ctx context.Context, userID int64, in model.ProfileUpdateRequest) (model.Profile, error)
}
