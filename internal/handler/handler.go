package handler

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"storefront/internal/domain/model"
	"storefront/internal/middleware"
	"storefront/internal/usecase"
	"storefront/internal/view"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

const loginPath = "/login"

// Guardsはserverが組み立てたmiddleware（nilなら付けない）
type Guards struct {
	RequireAuth echo.MiddlewareFunc
	AdminOnly   echo.MiddlewareFunc
	ActionLimit echo.MiddlewareFunc
}

func (g Guards) auth() []echo.MiddlewareFunc {
	return compact(g.RequireAuth)
}

func (g Guards) admin() []echo.MiddlewareFunc {
	return compact(g.RequireAuth, g.AdminOnly)
}

func (g Guards) action() []echo.MiddlewareFunc {
	return compact(g.ActionLimit)
}

func compact(mws ...echo.MiddlewareFunc) []echo.MiddlewareFunc {
	out := make([]echo.MiddlewareFunc, 0, len(mws))
	for _, m := range mws {
		if m != nil {
			out = append(out, m)
		}
	}
	return out
}

// Presenterはページ描画（キャッシュ込み）とaction応答をまとめる
type Presenter struct {
	renderer *view.Renderer
	cache    *view.Cache
	log      logrus.FieldLogger
}

func NewPresenter(renderer *view.Renderer, cache *view.Cache, log logrus.FieldLogger) *Presenter {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Presenter{renderer: renderer, cache: cache, log: log}
}

// loaderはページの .Data を作る
type loader func(c echo.Context, id model.Identity) (any, error)

// cachedは path|user で描画結果をキャッシュする。エラー時は入れない
func (p *Presenter) cached(name, title string, load loader) echo.HandlerFunc {
	return func(c echo.Context) error {
		id := middleware.IdentityFrom(c)
		key := view.CacheKey{
			Path:   c.Request().URL.Path,
			Query:  c.Request().URL.RawQuery,
			UserID: id.UserID,
		}
		if b, ok := p.cache.Get(key); ok {
			c.Response().Header().Set("X-Cache", "HIT")
			return c.HTMLBlob(http.StatusOK, b)
		}

		data, err := load(c, id)
		if err != nil {
			return p.writeError(c, err)
		}

		b, err := p.renderer.HTML(name, view.Page{Title: title, Identity: id, Data: data})
		if err != nil {
			return p.writeError(c, err)
		}
		p.cache.Put(key, b)
		c.Response().Header().Set("X-Cache", "MISS")
		return c.HTMLBlob(http.StatusOK, b)
	}
}

// renderはキャッシュしないページ
func (p *Presenter) render(c echo.Context, status int, name, title string, data any) error {
	b, err := p.renderer.HTML(name, view.Page{
		Title:    title,
		Identity: middleware.IdentityFrom(c),
		Data:     data,
	})
	if err != nil {
		return err
	}
	return c.HTMLBlob(status, b)
}

// writeErrorは画面用。未ログインはログインへ、HTTPErrorはそのステータスのエラーページ
func (p *Presenter) writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, usecase.ErrAuthenticationRequired) {
		return redirectToLogin(c)
	}

	status := http.StatusInternalServerError
	msg := "internal error"
	if he, ok := usecase.AsHTTPError(err); ok {
		status = he.Status
		msg = he.Message
	} else {
		p.log.WithError(err).WithField("path", c.Request().URL.Path).Error("render page failed")
	}

	if rerr := p.render(c, status, "error", http.StatusText(status), view.ErrorData{Status: status, Message: msg}); rerr != nil {
		return echo.NewHTTPError(status, msg)
	}
	return nil
}

// actionはStateをJSONで返し、成功ならStaleのページを捨てる
func (p *Presenter) action(c echo.Context, st usecase.State) error {
	if st.Success {
		for _, path := range st.Stale {
			p.cache.Invalidate(path)
		}
	}
	if st.Errors == nil {
		st.Errors = map[string][]string{}
	}
	return c.JSON(http.StatusOK, st)
}

// Invalidateはaction以外（決済確認など）で古くなったページを捨てる
func (p *Presenter) Invalidate(paths ...string) {
	for _, path := range paths {
		p.cache.Invalidate(path)
	}
}

func redirectToLogin(c echo.Context) error {
	target := loginPath + "?redirect=" + url.QueryEscape(c.Request().URL.RequestURI())
	return c.Redirect(http.StatusSeeOther, target)
}

// safeRedirectは自サイト内のパスだけ通す
func safeRedirect(s, def string) string {
	s = strings.TrimSpace(s)
	if s == "" || !strings.HasPrefix(s, "/") || strings.HasPrefix(s, "//") || strings.HasPrefix(s, "/\\") {
		return def
	}
	return s
}
