package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

//contextに入っているIdentityがadminかどうかを確認します。
//RequireAuthの後ろに置く

func AdminRoleGuard() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := IdentityFrom(c)
			if !id.IsAuthenticated() {
				return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
			}

			//userは拒否、adminだけ許可
			if !id.IsAdmin() {
				return echo.NewHTTPError(http.StatusForbidden, "admin only")
			}

			return next(c)
		}
	}
}
