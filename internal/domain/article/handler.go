package article

import (
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"

	"github.com/healthassist/healthassist/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes registers the public article routes; no auth required.
func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/articles", h.List)
	api.GET("/articles/:slug", h.GetBySlug)
}

func (h *Handler) List(c echo.Context) error {
	p := pagination.FromContext(c)
	f := ListFilter{
		FeaturedOnly: c.QueryParam("featured") == "true",
		Limit:        p.Limit,
		Offset:       p.Offset,
	}

	items, total, err := h.svc.List(c.Request().Context(), f)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list articles")
	}
	if items == nil {
		items = []*Article{}
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, p.Limit, p.Offset))
}

func (h *Handler) GetBySlug(c echo.Context) error {
	a, err := h.svc.GetBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return echo.NewHTTPError(http.StatusNotFound, "article not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to fetch article")
	}
	return c.JSON(http.StatusOK, a)
}
