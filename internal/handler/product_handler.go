package handler

import (
	"strings"

	"storefront/internal/domain/model"
	"storefront/internal/usecase"
	"storefront/internal/view"

	"github.com/labstack/echo/v4"
	"golang.org/x/sync/errgroup"
)

// トップに出す最近の注文数
const recentOrders = 3

// / と /products の公開ページ
type ProductHandler struct {
	uc     *usecase.ProductUsecase
	cart   *usecase.CartUsecase
	orders *usecase.OrderUsecase
	pres   *Presenter
}

// DI
func NewProductHandler(uc *usecase.ProductUsecase, cart *usecase.CartUsecase, orders *usecase.OrderUsecase, pres *Presenter) *ProductHandler {
	return &ProductHandler{uc: uc, cart: cart, orders: orders, pres: pres}
}

// 公開商品のルートを登録
func (h *ProductHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", h.pres.cached("home", "", h.home))
	e.GET("/products", h.pres.cached("products", "Products", h.list))
	e.GET("/products/:id", h.pres.cached("product", "Product", h.detail))
}

// トップ。カート件数と最近の注文は取れなくても表示する
func (h *ProductHandler) home(c echo.Context, id model.Identity) (any, error) {
	ctx := c.Request().Context()
	var data view.HomeData

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		ps, err := h.uc.Featured(gctx, usecase.FeaturedLimit)
		data.Featured = ps
		return err
	})
	g.Go(func() error {
		cs, err := h.uc.Categories(gctx)
		data.Categories = cs
		return err
	})
	if id.IsAuthenticated() {
		g.Go(func() error {
			n, err := h.cart.ItemCount(gctx, id)
			if err != nil {
				h.pres.log.WithError(err).Warn("cart count failed")
			}
			data.CartCount = n
			return nil
		})
		g.Go(func() error {
			recent, err := h.orders.Recent(gctx, id, recentOrders)
			if err != nil {
				h.pres.log.WithError(err).Warn("recent orders failed")
			}
			data.Recent = recent
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return data, nil
}

// ?q= は検索、?category= は絞り込み（両方あれば検索結果を絞る）
func (h *ProductHandler) list(c echo.Context, _ model.Identity) (any, error) {
	ctx := c.Request().Context()
	q := strings.TrimSpace(c.QueryParam("q"))
	category := strings.TrimSpace(c.QueryParam("category"))

	var (
		products []model.Product
		err      error
	)
	switch {
	case q != "":
		products, err = h.uc.Search(ctx, q)
		if err == nil && category != "" {
			products = inCategory(products, category)
		}
	case category != "":
		products, err = h.uc.ByCategory(ctx, category)
	default:
		products, err = h.uc.All(ctx)
	}
	if err != nil {
		return nil, err
	}

	categories, err := h.uc.Categories(ctx)
	if err != nil {
		return nil, err
	}

	return view.ProductsData{
		Products:   products,
		Categories: categories,
		Category:   category,
		Query:      q,
	}, nil
}

func (h *ProductHandler) detail(c echo.Context, _ model.Identity) (any, error) {
	return h.uc.Get(c.Request().Context(), model.ID(c.Param("id")))
}

func inCategory(ps []model.Product, category string) []model.Product {
	out := make([]model.Product, 0, len(ps))
	for _, p := range ps {
		if strings.EqualFold(p.Category, category) {
			out = append(out, p)
		}
	}
	return out
}
