package middleware

import (
	"strings"

	"storefront/internal/domain/model"
	"storefront/internal/infra/backend"

	"github.com/labstack/echo/v4"
)

const (
	CtxIdentityKey = "identity" // model.Identity
)

// IdentityResolverはトークン → Identity（usecase.AuthUsecase）
type IdentityResolver interface {
	Resolve(rawToken string) (model.Identity, error)
}

// Sessionはcookie（無ければBearerヘッダ）のトークンを検証し、
// Identityをecho contextへ、トークンをrequest contextへ載せる。
// 検証できなくても止めない（未ログインとして進む）
func Session(resolver IdentityResolver, cookieName string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			ctx := req.Context()

			//バックエンドへ X-Request-ID を引き継ぐ
			if rid := c.Response().Header().Get(echo.HeaderXRequestID); rid != "" {
				ctx = backend.WithRequestID(ctx, rid)
			}

			rawToken := tokenFromRequest(c, cookieName)
			if rawToken != "" {
				if id, err := resolver.Resolve(rawToken); err == nil {
					c.Set(CtxIdentityKey, id)
					ctx = backend.WithToken(ctx, id.Token)
				}
			}

			c.SetRequest(req.WithContext(ctx))
			return next(c)
		}
	}
}

// IdentityFromは未ログインならゼロ値
func IdentityFrom(c echo.Context) model.Identity {
	id, _ := c.Get(CtxIdentityKey).(model.Identity)
	return id
}

func tokenFromRequest(c echo.Context, cookieName string) string {
	if ck, err := c.Cookie(cookieName); err == nil && strings.TrimSpace(ck.Value) != "" {
		return strings.TrimSpace(ck.Value)
	}

	//Bearer形式か確認してtokenを抜く
	authz := c.Request().Header.Get(echo.HeaderAuthorization)
	parts := strings.SplitN(authz, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
