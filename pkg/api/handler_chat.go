package api

import (
	"context"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/wayplan/wayplan/pkg/agent"
	"github.com/wayplan/wayplan/pkg/agent/orchestrator"
	"github.com/wayplan/wayplan/pkg/models"
)

// chatHandler handles POST /api/v1/itineraries/:id/chat: one synchronous
// chat turn through the edit pipeline. The user message and the
// assistant reply are both appended to the transcript.
func (s *Server) chatHandler(c *echo.Context) error {
	id := c.Param("id")
	var req models.ChatRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Message == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "message is required")
	}

	ctx := c.Request().Context()
	if _, err := s.store.Get(ctx, id); err != nil {
		return mapStoreError(err)
	}

	if err := s.store.AppendChat(ctx, id, models.ChatEntry{Role: "user", Text: req.Message}); err != nil {
		return mapStoreError(err)
	}
	s.pub.ChatUserMessage(id, req.Message, req.UserID)

	timeout := s.cfg.Dispatch.RunTimeout
	if req.DeadlineMs > 0 {
		if d := time.Duration(req.DeadlineMs) * time.Millisecond; d < timeout {
			timeout = d
		}
	}
	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	res, err := s.orch.Execute(runCtx, orchestrator.Request{
		ItineraryID: id,
		Task:        agent.TaskEdit,
		Message:     req.Message,
	})
	if err != nil {
		return mapStoreError(err)
	}

	reply := res.Analysis
	if reply == "" {
		reply = "I couldn't make that change. Could you rephrase?"
	}
	if err := s.store.AppendChat(ctx, id, models.ChatEntry{Role: "assistant", Text: reply}); err != nil {
		return mapStoreError(err)
	}

	resp := models.ChatResponse{
		Version:  res.Version,
		Messages: []models.ChatMessage{{Role: "assistant", Text: reply}},
		Status:   chatStatus(res.Status),
	}
	if len(res.Diff.Added)+len(res.Diff.Removed)+len(res.Diff.Updated) > 0 {
		diff := res.Diff
		resp.Diff = &diff
	}
	return c.JSON(http.StatusOK, resp)
}

func chatStatus(st orchestrator.Status) string {
	switch st {
	case orchestrator.StatusCompleted:
		return "applied"
	case orchestrator.StatusPartial:
		return "partial"
	default:
		return "failed"
	}
}
