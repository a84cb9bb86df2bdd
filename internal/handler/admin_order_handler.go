package handler

import (
	"storefront/internal/domain/model"
	"storefront/internal/middleware"
	"storefront/internal/usecase"
	"storefront/internal/view"

	"github.com/labstack/echo/v4"
)

type AdminOrderHandler struct {
	uc   *usecase.AdminOrderUsecase
	pres *Presenter
}

func NewAdminOrderHandler(uc *usecase.AdminOrderUsecase, pres *Presenter) *AdminOrderHandler {
	return &AdminOrderHandler{uc: uc, pres: pres}
}

func (h *AdminOrderHandler) RegisterRoutes(e *echo.Echo, g Guards) {
	e.GET("/admin/orders", h.pres.cached("admin_orders", "Manage orders", h.list), g.admin()...)

	e.POST("/actions/admin/orders/status", h.updateStatus, g.action()...)
}

// ?status= で絞り込み
func (h *AdminOrderHandler) list(c echo.Context, id model.Identity) (any, error) {
	status := model.OrderStatus(c.QueryParam("status"))
	orders, err := h.uc.List(c.Request().Context(), id, status)
	if err != nil {
		return nil, err
	}
	return view.AdminOrdersData{Orders: orders, Status: status}, nil
}

func (h *AdminOrderHandler) updateStatus(c echo.Context) error {
	fields, err := readFields(c)
	if err != nil {
		return h.pres.action(c, bindError())
	}
	return h.pres.action(c, h.uc.UpdateStatus(c.Request().Context(), middleware.IdentityFrom(c), fields))
}
