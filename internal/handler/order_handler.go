package handler

import (
	"storefront/internal/domain/model"
	"storefront/internal/middleware"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /orders の画面と注文action
type OrderHandler struct {
	uc   *usecase.OrderUsecase
	pres *Presenter
}

// DI
func NewOrderHandler(uc *usecase.OrderUsecase, pres *Presenter) *OrderHandler {
	return &OrderHandler{uc: uc, pres: pres}
}

func (h *OrderHandler) RegisterRoutes(e *echo.Echo, g Guards) {
	e.GET("/orders", h.pres.cached("orders", "Orders", h.list), g.auth()...)

	a := e.Group("/actions/orders", g.action()...)
	a.POST("", h.place)
	a.POST("/cancel", h.cancel)
}

// ?status= で絞り込み
func (h *OrderHandler) list(c echo.Context, id model.Identity) (any, error) {
	if s := c.QueryParam("status"); s != "" {
		return h.uc.ByStatus(c.Request().Context(), id, model.OrderStatus(s))
	}
	return h.uc.ListMine(c.Request().Context(), id)
}

func (h *OrderHandler) place(c echo.Context) error {
	fields, err := readFields(c)
	if err != nil {
		return h.pres.action(c, bindError())
	}
	return h.pres.action(c, h.uc.PlaceOrder(c.Request().Context(), middleware.IdentityFrom(c), fields))
}

func (h *OrderHandler) cancel(c echo.Context) error {
	fields, err := readFields(c)
	if err != nil {
		return h.pres.action(c, bindError())
	}
	return h.pres.action(c, h.uc.CancelOrder(c.Request().Context(), middleware.IdentityFrom(c), fields))
}
