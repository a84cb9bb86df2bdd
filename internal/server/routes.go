package server

import (
	"net/http"

	"storefront/internal/handler"
	"storefront/internal/infra/metrics"
	"storefront/internal/view"

	"github.com/labstack/echo/v4"
)

// Handlersは画面とactionのハンドラ一式
type Handlers struct {
	Auth         *handler.AuthHandler
	Product      *handler.ProductHandler
	Cart         *handler.CartHandler
	Order        *handler.OrderHandler
	Checkout     *handler.CheckoutHandler
	Profile      *handler.ProfileHandler
	AdminProduct *handler.AdminProductHandler
	AdminOrder   *handler.AdminOrderHandler
	AdminUser    *handler.AdminUserHandler
}

func RegisterRoutes(e *echo.Echo, h Handlers, g handler.Guards, m *metrics.Metrics) {
	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	if m != nil {
		e.GET("/metrics", echo.WrapHandler(m.Handler()))
	}

	static := http.FileServer(http.FS(view.StaticFS()))
	e.GET("/static/*", echo.WrapHandler(http.StripPrefix("/static/", static)))
	e.GET("/placeholder.svg", echo.WrapHandler(static))

	h.Auth.RegisterRoutes(e, g)
	h.Product.RegisterRoutes(e)
	h.Cart.RegisterRoutes(e, g)
	h.Order.RegisterRoutes(e, g)
	h.Checkout.RegisterRoutes(e, g)
	h.Profile.RegisterRoutes(e, g)
	h.AdminProduct.RegisterRoutes(e, g)
	h.AdminOrder.RegisterRoutes(e, g)
	h.AdminUser.RegisterRoutes(e, g)
}
