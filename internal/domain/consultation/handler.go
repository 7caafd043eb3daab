package consultation

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
	api.POST("/consultations", h.Create)
	api.GET("/consultations", h.List)
	api.PATCH("/consultations/:id/status", h.UpdateStatus)
}

func (h *Handler) Create(c echo.Context) error {
	ctx := c.Request().Context()
	id := auth.IdentityFromContext(ctx)
	if id == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}

	var in CreateInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	consult, err := h.svc.Create(ctx, id, in)
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to book consultation")
	}
	return c.JSON(http.StatusCreated, consult)
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
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list consultations")
	}
	if items == nil {
		items = []*Consultation{}
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, p.Limit, p.Offset))
}

func (h *Handler) UpdateStatus(c echo.Context) error {
	ctx := c.Request().Context()
	ident := auth.IdentityFromContext(ctx)
	if ident == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "consultation not found")
	}

	var in StatusInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	existing, err := h.svc.Get(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return echo.NewHTTPError(http.StatusNotFound, "consultation not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to fetch consultation")
	}
	if err := auth.CheckOwnership(ctx, existing.UserID); err != nil {
		return err
	}

	updated, err := h.svc.UpdateStatus(ctx, ident, id, in.Status)
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to update consultation")
	}
	return c.JSON(http.StatusOK, updated)
}
