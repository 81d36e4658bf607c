package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/leavehq/leave_management_app/internal/middleware"
	"github.com/leavehq/leave_management_app/internal/platform/events"
)

// leaveStatusEventName is the SSE event name clients subscribe to.
const leaveStatusEventName = "leaveStatusUpdated"

// eventsHandler streams leave status events to connected clients over SSE.
type eventsHandler struct {
	hub *events.Hub
}

func newEventsHandler(hub *events.Hub) *eventsHandler {
	return &eventsHandler{hub: hub}
}

// registerEventRoutes registers the SSE stream endpoint.
func registerEventRoutes(rg *gin.RouterGroup, hub *events.Hub) {
	h := newEventsHandler(hub)
	rg.GET("/events", h.stream)
}

// stream godoc
// @Summary Leave status event stream
// @Description Server-sent events stream of leaveStatusUpdated events addressed to the caller.
// @Tags events
// @Produce text/event-stream
// @Success 200
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /events [get]
func (h *eventsHandler) stream(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	ch, cancel := h.hub.Subscribe(userID)
	defer cancel()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	logger.Info("SSE client connected")

	clientGone := c.Request.Context().Done()
	c.Stream(func(w io.Writer) bool {
		select {
		case <-clientGone:
			return false
		case event, open := <-ch:
			if !open {
				return false
			}
			c.SSEvent(leaveStatusEventName, event)
			return true
		}
	})

	logger.Info("SSE client disconnected")
}
