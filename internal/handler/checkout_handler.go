package handler

import (
	"errors"
	"net/http"

	"storefront/internal/middleware"
	"storefront/internal/usecase"
	"storefront/internal/view"

	"github.com/labstack/echo/v4"
)

// /checkout と決済から戻ってくる /payment/*
type CheckoutHandler struct {
	uc       *usecase.CheckoutUsecase
	cart     *usecase.CartUsecase
	profile  *usecase.ProfileUsecase
	payments *usecase.PaymentUsecase
	pres     *Presenter
}

// DI
func NewCheckoutHandler(
	uc *usecase.CheckoutUsecase,
	cart *usecase.CartUsecase,
	profile *usecase.ProfileUsecase,
	payments *usecase.PaymentUsecase,
	pres *Presenter,
) *CheckoutHandler {
	return &CheckoutHandler{uc: uc, cart: cart, profile: profile, payments: payments, pres: pres}
}

func (h *CheckoutHandler) RegisterRoutes(e *echo.Echo, g Guards) {
	e.GET("/checkout", h.checkoutPage, g.auth()...)
	e.GET("/payment/success", h.paymentSuccess)
	e.GET("/payment/cancel", h.paymentCancel)

	e.POST("/actions/checkout", h.checkout, g.action()...)
}

// カートが空ならカートへ戻す
func (h *CheckoutHandler) checkoutPage(c echo.Context) error {
	ctx := c.Request().Context()
	id := middleware.IdentityFrom(c)

	cart, err := h.cart.GetCart(ctx, id)
	if err != nil {
		return h.pres.writeError(c, err)
	}
	if cart.IsEmpty() {
		return c.Redirect(http.StatusSeeOther, "/cart")
	}

	addrs, err := h.profile.Addresses(ctx, id)
	if err != nil {
		if errors.Is(err, usecase.ErrAuthenticationRequired) {
			return h.pres.writeError(c, err)
		}
		h.pres.log.WithError(err).Warn("saved addresses failed")
	}

	return h.pres.render(c, http.StatusOK, "checkout", "Checkout", view.CheckoutData{
		Cart:      cart,
		Addresses: addrs,
		Amount:    usecase.CartAmount(cart),
	})
}

func (h *CheckoutHandler) checkout(c echo.Context) error {
	fields, err := readFields(c)
	if err != nil {
		return h.pres.action(c, bindError())
	}
	return h.pres.action(c, h.uc.CreateOrderAndCheckout(c.Request().Context(), middleware.IdentityFrom(c), fields))
}

// ?session_id= を1回だけ確認する。カートを消せたらカート関連ページも捨てる
func (h *CheckoutHandler) paymentSuccess(c echo.Context) error {
	v := h.payments.Verify(c.Request().Context(), middleware.IdentityFrom(c), c.QueryParam("session_id"))

	for _, se := range v.SideEffects {
		if se.Name == "cart.clear" && se.OK() {
			h.pres.Invalidate("/cart", "/")
		}
	}
	if v.State == usecase.VerificationSuccess {
		h.pres.Invalidate("/orders")
	}

	return h.pres.render(c, http.StatusOK, "payment_success", "Payment", v)
}

func (h *CheckoutHandler) paymentCancel(c echo.Context) error {
	return h.pres.render(c, http.StatusOK, "payment_cancel", "Payment cancelled", nil)
}
