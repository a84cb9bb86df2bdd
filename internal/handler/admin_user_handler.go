package handler

import (
	"storefront/internal/domain/model"
	"storefront/internal/middleware"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

type AdminUserHandler struct {
	uc   *usecase.AdminUserUsecase
	pres *Presenter
}

func NewAdminUserHandler(uc *usecase.AdminUserUsecase, pres *Presenter) *AdminUserHandler {
	return &AdminUserHandler{uc: uc, pres: pres}
}

func (h *AdminUserHandler) RegisterRoutes(e *echo.Echo, g Guards) {
	e.GET("/admin/users", h.pres.cached("admin_users", "Manage users", h.list), g.admin()...)

	a := e.Group("/actions/admin/users", g.action()...)
	a.POST("/role", h.updateRole)
	a.POST("/delete", h.delete)
}

func (h *AdminUserHandler) list(c echo.Context, id model.Identity) (any, error) {
	return h.uc.List(c.Request().Context(), id)
}

func (h *AdminUserHandler) updateRole(c echo.Context) error {
	fields, err := readFields(c)
	if err != nil {
		return h.pres.action(c, bindError())
	}
	return h.pres.action(c, h.uc.UpdateRole(c.Request().Context(), middleware.IdentityFrom(c), fields))
}

func (h *AdminUserHandler) delete(c echo.Context) error {
	fields, err := readFields(c)
	if err != nil {
		return h.pres.action(c, bindError())
	}
	return h.pres.action(c, h.uc.Delete(c.Request().Context(), middleware.IdentityFrom(c), fields))
}
