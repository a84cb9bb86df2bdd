package handler

import (
	"storefront/internal/domain/model"
	"storefront/internal/middleware"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /cart の画面と /actions/cart/*
type CartHandler struct {
	uc   *usecase.CartUsecase
	pres *Presenter
}

// DI
func NewCartHandler(uc *usecase.CartUsecase, pres *Presenter) *CartHandler {
	return &CartHandler{uc: uc, pres: pres}
}

func (h *CartHandler) RegisterRoutes(e *echo.Echo, g Guards) {
	e.GET("/cart", h.pres.cached("cart", "Cart", h.getCart), g.auth()...)

	a := e.Group("/actions/cart", g.action()...)
	a.POST("/add", h.addToCart)
	a.POST("/update", h.updateItem)
	a.POST("/remove", h.removeItem)
	a.POST("/clear", h.clear)
}

func (h *CartHandler) getCart(c echo.Context, id model.Identity) (any, error) {
	return h.uc.GetCart(c.Request().Context(), id)
}

func (h *CartHandler) addToCart(c echo.Context) error {
	fields, err := readFields(c)
	if err != nil {
		return h.pres.action(c, bindError())
	}
	return h.pres.action(c, h.uc.AddToCart(c.Request().Context(), middleware.IdentityFrom(c), fields))
}

func (h *CartHandler) updateItem(c echo.Context) error {
	fields, err := readFields(c)
	if err != nil {
		return h.pres.action(c, bindError())
	}
	return h.pres.action(c, h.uc.UpdateCartItem(c.Request().Context(), middleware.IdentityFrom(c), fields))
}

func (h *CartHandler) removeItem(c echo.Context) error {
	fields, err := readFields(c)
	if err != nil {
		return h.pres.action(c, bindError())
	}
	return h.pres.action(c, h.uc.RemoveFromCart(c.Request().Context(), middleware.IdentityFrom(c), fields))
}

func (h *CartHandler) clear(c echo.Context) error {
	return h.pres.action(c, h.uc.ClearCart(c.Request().Context(), middleware.IdentityFrom(c)))
}
