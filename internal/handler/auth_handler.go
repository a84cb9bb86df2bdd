package handler

import (
	"net/http"
	"time"

	"storefront/internal/config"
	"storefront/internal/domain/model"
	"storefront/internal/middleware"
	"storefront/internal/usecase"
	"storefront/internal/view"

	"github.com/labstack/echo/v4"
)

// /login, /register と /actions/auth/*
type AuthHandler struct {
	uc     *usecase.AuthUsecase
	pres   *Presenter
	cookie string
	secure bool
}

// DI
func NewAuthHandler(uc *usecase.AuthUsecase, pres *Presenter, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		pres:   pres,
		cookie: cfg.AuthCookie,
		secure: cfg.CookieSecure,
	}
}

// ログイン・登録の成功時に返す data
type authResponse struct {
	User     model.User `json:"user"`
	Redirect string     `json:"redirect"`
}

func (h *AuthHandler) RegisterRoutes(e *echo.Echo, g Guards) {
	e.GET("/login", h.loginPage)
	e.GET("/register", h.registerPage)

	a := e.Group("/actions/auth", g.action()...)
	a.POST("/login", h.login)
	a.POST("/register", h.register)
	a.POST("/logout", h.logout)
}

func (h *AuthHandler) loginPage(c echo.Context) error {
	if middleware.IdentityFrom(c).IsAuthenticated() {
		return c.Redirect(http.StatusSeeOther, safeRedirect(c.QueryParam("redirect"), "/"))
	}
	return h.pres.render(c, http.StatusOK, "login", "Log in", view.AuthFormData{
		Redirect: safeRedirect(c.QueryParam("redirect"), "/"),
	})
}

func (h *AuthHandler) registerPage(c echo.Context) error {
	if middleware.IdentityFrom(c).IsAuthenticated() {
		return c.Redirect(http.StatusSeeOther, "/")
	}
	return h.pres.render(c, http.StatusOK, "register", "Register", view.AuthFormData{
		Redirect: safeRedirect(c.QueryParam("redirect"), "/"),
	})
}

func (h *AuthHandler) login(c echo.Context) error {
	fields, err := readFields(c)
	if err != nil {
		return h.pres.action(c, bindError())
	}

	st, token := h.uc.Login(c.Request().Context(), fields)
	if st.Success {
		h.setAuthCookie(c, token)
		user, _ := st.Data.(model.User)
		st.Data = authResponse{User: user, Redirect: redirectField(fields, "/")}
	}
	return h.pres.action(c, st)
}

func (h *AuthHandler) register(c echo.Context) error {
	fields, err := readFields(c)
	if err != nil {
		return h.pres.action(c, bindError())
	}

	st, token := h.uc.Register(c.Request().Context(), fields)
	if st.Success {
		user, _ := st.Data.(model.User)
		redirect := redirectField(fields, "/")
		if token == "" {
			// トークンが無ければログインしてもらう
			redirect = loginPath
		} else {
			h.setAuthCookie(c, token)
		}
		st.Data = authResponse{User: user, Redirect: redirect}
	}
	return h.pres.action(c, st)
}

func (h *AuthHandler) logout(c echo.Context) error {
	st := h.uc.Logout(c.Request().Context(), middleware.IdentityFrom(c))
	h.clearAuthCookie(c)
	st.Data = authResponse{Redirect: "/"}
	return h.pres.action(c, st)
}

// トークンをCookieにセット（JSからは読ませない）
func (h *AuthHandler) setAuthCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     h.cookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) clearAuthCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     h.cookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func redirectField(f usecase.Fields, def string) string {
	s, _ := f["redirect"].(string)
	return safeRedirect(s, def)
}
