package handler

import (
	"storefront/internal/domain/model"
	"storefront/internal/middleware"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /profile の画面と住所action
type ProfileHandler struct {
	uc   *usecase.ProfileUsecase
	pres *Presenter
}

// DI
func NewProfileHandler(uc *usecase.ProfileUsecase, pres *Presenter) *ProfileHandler {
	return &ProfileHandler{uc: uc, pres: pres}
}

func (h *ProfileHandler) RegisterRoutes(e *echo.Echo, g Guards) {
	e.GET("/profile", h.pres.cached("profile", "Profile", h.page), g.auth()...)

	e.POST("/actions/profile", h.update, g.action()...)

	a := e.Group("/actions/addresses", g.action()...)
	a.POST("", h.createAddress)
	a.POST("/delete", h.deleteAddress)
}

func (h *ProfileHandler) page(c echo.Context, id model.Identity) (any, error) {
	return h.uc.Page(c.Request().Context(), id)
}

func (h *ProfileHandler) update(c echo.Context) error {
	fields, err := readFields(c)
	if err != nil {
		return h.pres.action(c, bindError())
	}
	return h.pres.action(c, h.uc.UpdateProfile(c.Request().Context(), middleware.IdentityFrom(c), fields))
}

func (h *ProfileHandler) createAddress(c echo.Context) error {
	fields, err := readFields(c)
	if err != nil {
		return h.pres.action(c, bindError())
	}
	// チェックボックスは未チェックだと送られない
	if _, ok := fields["isDefault"]; !ok {
		fields["isDefault"] = false
	}
	return h.pres.action(c, h.uc.CreateAddress(c.Request().Context(), middleware.IdentityFrom(c), fields))
}

func (h *ProfileHandler) deleteAddress(c echo.Context) error {
	fields, err := readFields(c)
	if err != nil {
		return h.pres.action(c, bindError())
	}
	return h.pres.action(c, h.uc.DeleteAddress(c.Request().Context(), middleware.IdentityFrom(c), fields))
}
