package usecase

import (
	"context"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"
	"storefront/internal/validator"

	"golang.org/x/sync/errgroup"
)

type ProfileUsecase struct {
	profileRepo repo.ProfileRepository
	addressRepo repo.AddressRepository
	actions     *Actions
}

func NewProfileUsecase(profileRepo repo.ProfileRepository, addressRepo repo.AddressRepository, actions *Actions) *ProfileUsecase {
	return &ProfileUsecase{
		profileRepo: profileRepo,
		addressRepo: addressRepo,
		actions:     actions,
	}
}

type ProfilePage struct {
	Profile   model.Profile
	Addresses []model.Address
}

// Addresses は保存済み住所（チェックアウトの入力補助）
func (u *ProfileUsecase) Addresses(ctx context.Context, id model.Identity) ([]model.Address, error) {
	if !id.IsAuthenticated() {
		return []model.Address{}, ErrAuthenticationRequired
	}
	addrs, err := u.addressRepo.ListByUserID(ctx, id.UserID)
	if err != nil {
		return []model.Address{}, readError(err)
	}
	return addrs, nil
}

// Page はプロフィールと住所一覧を並行で取る。
// 住所が取れないときは空一覧で表示する
func (u *ProfileUsecase) Page(ctx context.Context, id model.Identity) (ProfilePage, error) {
	if !id.IsAuthenticated() {
		return ProfilePage{}, ErrAuthenticationRequired
	}

	var page ProfilePage
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		p, err := u.profileRepo.Get(gctx, id.UserID)
		if err != nil {
			return err
		}
		page.Profile = p
		return nil
	})

	g.Go(func() error {
		addrs, err := u.addressRepo.ListByUserID(gctx, id.UserID)
		if err != nil {
			u.actions.Log.WithError(err).WithField("user_id", id.UserID).Warn("list addresses failed")
			addrs = []model.Address{}
		}
		page.Addresses = addrs
		return nil
	})

	if err := g.Wait(); err != nil {
		return ProfilePage{}, readError(err)
	}
	return page, nil
}

func (u *ProfileUsecase) UpdateProfile(ctx context.Context, id model.Identity, raw Fields) State {
	const name = "profile.update"
	if st, ok := authorize(name, u.actions, id); !ok {
		return st
	}
	return RunAction(ctx, u.actions, name, raw, validator.ProfileUpdate,
		func(ctx context.Context, in model.ProfileUpdateRequest) (model.Profile, error) {
			in.Email = validator.NormalizeEmail(in.Email)
			return u.profileRepo.Update(ctx, id.UserID, in)
		},
		"/profile",
	)
}

func (u *ProfileUsecase) CreateAddress(ctx context.Context, id model.Identity, raw Fields) State {
	const name = "addresses.create"
	if st, ok := authorize(name, u.actions, id); !ok {
		return st
	}
	return RunAction(ctx, u.actions, name, raw, validator.AddressCreate,
		func(ctx context.Context, in model.AddressCreateRequest) (model.Address, error) {
			return u.addressRepo.Create(ctx, id.UserID, in)
		},
		"/profile",
	)
}

// DeleteAddress は既に無い住所でも成功
func (u *ProfileUsecase) DeleteAddress(ctx context.Context, id model.Identity, raw Fields) State {
	const name = "addresses.delete"
	if st, ok := authorize(name, u.actions, id); !ok {
		return st
	}
	return RunAction(ctx, u.actions, name, raw, validator.AddressID,
		func(ctx context.Context, in model.AddressIDRequest) (int64, error) {
			if err := u.addressRepo.Delete(ctx, id.UserID, in.ID); err != nil && !isNotFound(err) {
				return 0, err
			}
			return in.ID, nil
		},
		"/profile",
	)
}
