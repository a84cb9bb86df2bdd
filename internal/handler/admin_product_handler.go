package handler

import (
	"storefront/internal/domain/model"
	"storefront/internal/middleware"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

// 管理者用の商品管理
type AdminProductHandler struct {
	uc   *usecase.ProductUsecase
	pres *Presenter
}

// DI
func NewAdminProductHandler(uc *usecase.ProductUsecase, pres *Presenter) *AdminProductHandler {
	return &AdminProductHandler{uc: uc, pres: pres}
}

// 画面はadminのみ。actionは usecase 側で admin を確認して State で返す
func (h *AdminProductHandler) RegisterRoutes(e *echo.Echo, g Guards) {
	e.GET("/admin/products", h.pres.cached("admin_products", "Manage products", h.list), g.admin()...)

	a := e.Group("/actions/admin/products", g.action()...)
	a.POST("", h.create)
	a.POST("/update", h.update)
	a.POST("/delete", h.delete)
}

func (h *AdminProductHandler) list(c echo.Context, _ model.Identity) (any, error) {
	return h.uc.All(c.Request().Context())
}

func (h *AdminProductHandler) create(c echo.Context) error {
	fields, err := readFields(c)
	if err != nil {
		return h.pres.action(c, bindError())
	}
	return h.pres.action(c, h.uc.AdminCreateProduct(c.Request().Context(), middleware.IdentityFrom(c), fields))
}

// 空欄のフィールドは変更しない
func (h *AdminProductHandler) update(c echo.Context) error {
	fields, err := readFields(c)
	if err != nil {
		return h.pres.action(c, bindError())
	}
	return h.pres.action(c, h.uc.AdminUpdateProduct(c.Request().Context(), middleware.IdentityFrom(c), dropEmpty(fields)))
}

func (h *AdminProductHandler) delete(c echo.Context) error {
	fields, err := readFields(c)
	if err != nil {
		return h.pres.action(c, bindError())
	}
	return h.pres.action(c, h.uc.AdminDeleteProduct(c.Request().Context(), middleware.IdentityFrom(c), fields))
}
