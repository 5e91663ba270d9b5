package api

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	echo "github.com/labstack/echo/v5"

	"github.com/wayplan/wayplan/pkg/agent"
	"github.com/wayplan/wayplan/pkg/agent/orchestrator"
	"github.com/wayplan/wayplan/pkg/database"
	"github.com/wayplan/wayplan/pkg/itinerary"
	"github.com/wayplan/wayplan/pkg/models"
)

// CreateItineraryResponse is the HTTP response for POST /itineraries.
type CreateItineraryResponse struct {
	ItineraryID string `json:"itineraryId"`
	RunID       string `json:"runId"`
	Version     int    `json:"version"`
	Status      string `json:"status"`
}

// createItineraryHandler handles POST /api/v1/itineraries: it persists
// an empty day scaffold and queues the generation pipeline.
func (s *Server) createItineraryHandler(c *echo.Context) error {
	var req models.CreateItineraryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Destination == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "destination is required")
	}
	dayCount, err := itinerary.DayCount(req.StartDate, req.EndDate)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid trip dates: "+err.Error())
	}

	currency := req.Currency
	if currency == "" {
		currency = s.cfg.Defaults.Currency
	}

	it := &models.Itinerary{
		ItineraryID: uuid.New().String(),
		Version:     1,
		Origin:      req.Origin,
		Destination: req.Destination,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Currency:    currency,
		Themes:      req.Themes,
		Status:      models.ItineraryStatusGenerating,
	}
	it.Touch()
	for day := 1; day <= dayCount; day++ {
		date, err := itinerary.DateForDay(req.StartDate, day)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid trip dates: "+err.Error())
		}
		it.Days = append(it.Days, &models.Day{
			DayNumber: day,
			Date:      date,
			Pace:      s.cfg.Defaults.Pace,
			Nodes:     []*models.Node{},
		})
	}

	if err := s.store.Create(c.Request().Context(), it); err != nil {
		return mapStoreError(err)
	}

	runID, err := s.dispatcher.Submit(orchestrator.Request{
		ItineraryID: it.ItineraryID,
		Task:        agent.TaskGenerate,
		Create:      &req,
	})
	if err != nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "planner is overloaded, try again later")
	}

	return c.JSON(http.StatusAccepted, CreateItineraryResponse{
		ItineraryID: it.ItineraryID,
		RunID:       runID,
		Version:     it.Version,
		Status:      string(it.Status),
	})
}

// getItineraryHandler handles GET /api/v1/itineraries/:id.
func (s *Server) getItineraryHandler(c *echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "itinerary id is required")
	}
	it, err := s.store.Get(c.Request().Context(), id)
	if err != nil {
		return mapStoreError(err)
	}
	return c.JSON(http.StatusOK, it)
}

// getRevisionHandler handles GET /api/v1/itineraries/:id/revisions/:version.
func (s *Server) getRevisionHandler(c *echo.Context) error {
	id := c.Param("id")
	version, err := strconv.Atoi(c.Param("version"))
	if err != nil || version < 1 {
		return echo.NewHTTPError(http.StatusBadRequest, "version must be a positive integer")
	}
	snap, err := s.store.GetAtVersion(c.Request().Context(), id, version)
	if err != nil {
		return mapStoreError(err)
	}
	return c.JSON(http.StatusOK, snap)
}

// proposeHandler handles POST /api/v1/itineraries/:id/propose: a dry
// run of a change set. Nothing is persisted; the response carries the
// would-be diff and per-operation statuses.
func (s *Server) proposeHandler(c *echo.Context) error {
	id := c.Param("id")
	var cs models.ChangeSet
	if err := c.Bind(&cs); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	result, err := s.engine.Propose(c.Request().Context(), id, &cs, "user")
	if err != nil {
		return mapStoreError(err)
	}
	return c.JSON(http.StatusOK, result)
}

// applyHandler handles POST /api/v1/itineraries/:id/apply: a direct
// user-initiated change set commit (typically a previously proposed one).
func (s *Server) applyHandler(c *echo.Context) error {
	id := c.Param("id")
	var cs models.ChangeSet
	if err := c.Bind(&cs); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	result, err := s.engine.Apply(c.Request().Context(), id, &cs, "user")
	if err != nil {
		return mapStoreError(err)
	}
	if result.State == models.CommitStateCommitted {
		s.pub.ItineraryCommitted(id, result.Diff.ToVersion,
			len(result.Diff.Added), len(result.Diff.Removed), len(result.Diff.Updated), "user")
	}
	return c.JSON(http.StatusOK, result)
}

// undoHandler handles POST /api/v1/itineraries/:id/undo: full-snapshot
// restore of a prior version, committed as a new version.
func (s *Server) undoHandler(c *echo.Context) error {
	id := c.Param("id")
	var req models.UndoRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.ToVersion < 1 {
		return echo.NewHTTPError(http.StatusBadRequest, "toVersion must be a positive integer")
	}
	result, err := s.engine.Undo(c.Request().Context(), id, req.ToVersion)
	if err != nil {
		return mapStoreError(err)
	}
	s.pub.ItineraryCommitted(id, result.Diff.ToVersion,
		len(result.Diff.Added), len(result.Diff.Removed), len(result.Diff.Updated), "user")
	return c.JSON(http.StatusOK, result)
}

// healthHandler handles GET /health.
func (s *Server) healthHandler(c *echo.Context) error {
	if s.db == nil {
		return c.JSON(http.StatusOK, map[string]string{"status": "healthy"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	dbHealth, err := database.Health(ctx, s.db.DB())
	if err != nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]any{
			"status":   "unhealthy",
			"database": dbHealth,
			"error":    err.Error(),
		})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"status":   "healthy",
		"database": dbHealth,
	})
}
