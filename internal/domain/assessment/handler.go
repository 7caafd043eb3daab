package assessment

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"

	"github.com/healthassist/healthassist/internal/platform/auth"
	"github.com/healthassist/healthassist/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/assessments", h.Create)
	api.GET("/assessments", h.List)
	api.GET("/assessments/:id", h.Get)
}

func (h *Handler) Create(c echo.Context) error {
	ctx := c.Request().Context()
	ident := auth.IdentityFromContext(ctx)
	if ident == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}

	var in CreateInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	a, err := h.svc.Create(ctx, ident, in)
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to create assessment")
	}
	return c.JSON(http.StatusCreated, a)
}

func (h *Handler) List(c echo.Context) error {
	ctx := c.Request().Context()
	uid := auth.UserIDFromContext(ctx)
	if uid == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}

	p := pagination.FromContext(c)
	items, total, err := h.svc.ListForUser(ctx, uid, p.Limit, p.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list assessments")
	}
	if items == nil {
		items = []*Assessment{}
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, p.Limit, p.Offset))
}

func (h *Handler) Get(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "assessment not found")
	}

	a, err := h.svc.Get(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return echo.NewHTTPError(http.StatusNotFound, "assessment not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to fetch assessment")
	}
	if err := auth.CheckOwnership(ctx, a.UserID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, a)
}
