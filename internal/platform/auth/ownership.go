package auth

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
)

// CheckOwnership verifies that the authenticated caller owns a resource. It
// compares the caller's user id against the resource's stored owner id and
// returns a 403 HTTP error on mismatch. Handlers call this once per request
// after loading the resource, so the ownership rule lives in one place.
func CheckOwnership(ctx context.Context, ownerID string) error {
	uid := UserIDFromContext(ctx)
	if uid == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}
	if uid != ownerID {
		return echo.NewHTTPError(http.StatusForbidden, "forbidden")
	}
	return nil
}
