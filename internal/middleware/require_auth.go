package middleware

import (
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"
)

// RequireAuthは画面用。未ログインなら /login?redirect=<元のパス> へ
func RequireAuth(loginPath string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if IdentityFrom(c).IsAuthenticated() {
				return next(c)
			}
			target := loginPath + "?redirect=" + url.QueryEscape(c.Request().URL.RequestURI())
			return c.Redirect(http.StatusSeeOther, target)
		}
	}
}
