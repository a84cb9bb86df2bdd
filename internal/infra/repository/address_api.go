package repository

import (
	"context"
	"fmt"

	"storefront/internal/domain/model"
	"storefront/internal/infra/backend"
)

// users/{id}/addresses 配下
type AddressAPIRepository struct {
	res *backend.Resource[model.Address, model.AddressCreateRequest, model.AddressCreateRequest]
}

// DI
func NewAddressAPIRepository(c *backend.Client) *AddressAPIRepository {
	return &AddressAPIRepository{
		res: backend.NewResource[model.Address, model.AddressCreateRequest, model.AddressCreateRequest](c, "users"),
	}
}

func (r *AddressAPIRepository) ListByUserID(ctx context.Context, userID int64) ([]model.Address, error) {
	return r.res.ListPath(ctx, fmt.Sprintf("%d/addresses", userID))
}

func (r *AddressAPIRepository) Create(ctx context.Context, userID int64, in model.AddressCreateRequest) (model.Address, error) {
	var a model.Address
	err := r.res.PostPath(ctx, fmt.Sprintf("%d/addresses", userID), in, &a)
	return a, err
}

func (r *AddressAPIRepository) Delete(ctx context.Context, userID, addressID int64) error {
	return r.res.DeletePath(ctx, fmt.Sprintf("%d/addresses/%d", userID, addressID), nil)
}

// users/{id}/profile
type ProfileAPIRepository struct {
	res *backend.Resource[model.Profile, model.ProfileUpdateRequest, model.ProfileUpdateRequest]
}

// DI
func NewProfileAPIRepository(c *backend.Client) *ProfileAPIRepository {
	return &ProfileAPIRepository{
		res: backend.NewResource[model.Profile, model.ProfileUpdateRequest, model.ProfileUpdateRequest](c, "users"),
	}
}

func (r *ProfileAPIRepository) Get(ctx context.Context, userID int64) (model.Profile, error) {
	var p model.Profile
	err := r.res.GetPath(ctx, fmt.Sprintf("%d/profile", userID), &p)
	return p, err
}

func (r *ProfileAPIRepository) Update(ctx context.Context, userID int64, in model.ProfileUpdateRequest) (model.Profile, error) {
	var p model.Profile
	err := r.res.PutPath(ctx, fmt.Sprintf("%d/profile", userID), in, &p)
	return p, err
}
