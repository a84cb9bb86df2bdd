package usecase

import (
	"context"
	"sort"
	"strings"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"
	"storefront/internal/validator"
)

// トップページに出す件数
const FeaturedLimit = 8

type ProductUsecase struct {
	productRepo repo.ProductRepository
	actions     *Actions
}

// DI
func NewProductUsecase(productRepo repo.ProductRepository, actions *Actions) *ProductUsecase {
	return &ProductUsecase{
		productRepo: productRepo,
		actions:     actions,
	}
}

func (u *ProductUsecase) All(ctx context.Context) ([]model.Product, error) {
	items, err := u.productRepo.List(ctx)
	if err != nil {
		return []model.Product{}, readError(err)
	}
	return items, nil
}

func (u *ProductUsecase) Get(ctx context.Context, id model.ID) (model.Product, error) {
	if strings.TrimSpace(id.String()) == "" {
		return model.Product{}, readError(repo.ErrNotFound)
	}
	p, err := u.productRepo.FindByID(ctx, id)
	if err != nil {
		return model.Product{}, readError(err)
	}
	return p, nil
}

// Featured は一覧の先頭 n 件
func (u *ProductUsecase) Featured(ctx context.Context, n int) ([]model.Product, error) {
	items, err := u.All(ctx)
	if err != nil {
		return items, err
	}
	if n >= 0 && len(items) > n {
		items = items[:n]
	}
	return items, nil
}

func (u *ProductUsecase) ByCategory(ctx context.Context, category string) ([]model.Product, error) {
	items, err := u.All(ctx)
	if err != nil {
		return items, err
	}
	out := make([]model.Product, 0, len(items))
	for _, p := range items {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out, nil
}

// Search は name / description / category の部分一致（大文字小文字は無視）
func (u *ProductUsecase) Search(ctx context.Context, q string) ([]model.Product, error) {
	items, err := u.All(ctx)
	if err != nil {
		return items, err
	}
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return items, nil
	}
	out := make([]model.Product, 0, len(items))
	for _, p := range items {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Description), q) ||
			strings.Contains(strings.ToLower(p.Category), q) {
			out = append(out, p)
		}
	}
	return out, nil
}

// Categories はカテゴリ一覧（重複なし・昇順）
func (u *ProductUsecase) Categories(ctx context.Context) ([]string, error) {
	items, err := u.All(ctx)
	if err != nil {
		return []string{}, err
	}
	seen := map[string]struct{}{}
	out := []string{}
	for _, p := range items {
		if p.Category == "" {
			continue
		}
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	sort.Strings(out)
	return out, nil
}

func (u *ProductUsecase) AdminCreateProduct(ctx context.Context, id model.Identity, raw Fields) State {
	const name = "admin.products.create"
	if st, ok := authorizeAdmin(name, u.actions, id); !ok {
		return st
	}
	return RunAction(ctx, u.actions, name, raw, validator.ProductCreate,
		func(ctx context.Context, in model.ProductCreateRequest) (model.Product, error) {
			in.Name = strings.TrimSpace(in.Name)
			return u.productRepo.Create(ctx, in)
		},
		"/admin/products", "/products",
	)
}

func (u *ProductUsecase) AdminUpdateProduct(ctx context.Context, id model.Identity, raw Fields) State {
	const name = "admin.products.update"
	if st, ok := authorizeAdmin(name, u.actions, id); !ok {
		return st
	}
	return RunAction(ctx, u.actions, name, raw, validator.ProductUpdate,
		func(ctx context.Context, in model.ProductUpdateForm) (model.Product, error) {
			return u.productRepo.Update(ctx, in.ID, in.ProductUpdateRequest)
		},
		"/admin/products", "/products",
	)
}

// AdminDeleteProduct は存在しない商品の削除も成功にする
func (u *ProductUsecase) AdminDeleteProduct(ctx context.Context, id model.Identity, raw Fields) State {
	const name = "admin.products.delete"
	if st, ok := authorizeAdmin(name, u.actions, id); !ok {
		return st
	}
	return RunAction(ctx, u.actions, name, raw, validator.ProductID,
		func(ctx context.Context, in model.ProductIDRequest) (model.ID, error) {
			if err := u.productRepo.Delete(ctx, in.ID); err != nil && !isNotFound(err) {
				return "", err
			}
			return in.ID, nil
		},
		"/admin/products", "/products",
	)
}
