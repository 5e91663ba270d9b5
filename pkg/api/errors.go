package api

import (
	"errors"
	"log/slog"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/wayplan/wayplan/pkg/changeset"
	"github.com/wayplan/wayplan/pkg/store"
)

// mapStoreError maps store and engine errors to HTTP error responses.
func mapStoreError(err error) *echo.HTTPError {
	if errors.Is(err, store.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "itinerary not found")
	}
	if errors.Is(err, store.ErrRevisionNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "revision not found")
	}
	if errors.Is(err, store.ErrAlreadyExists) {
		return echo.NewHTTPError(http.StatusConflict, "itinerary already exists")
	}
	if errors.Is(err, store.ErrVersionConflict) {
		return echo.NewHTTPError(http.StatusConflict, "itinerary changed concurrently; reload and retry")
	}
	if errors.Is(err, changeset.ErrLoadFailed) {
		// Load failures wrap the store error; the common case is a
		// missing document.
		return echo.NewHTTPError(http.StatusNotFound, "itinerary not found")
	}

	// Unexpected error
	slog.Error("Unexpected store error", "error", err)
	return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
}
