package events

import (
	"context"
	"log/slog"
	"sync"

	"github.com/leavehq/leave_management_app/internal/core/domain"
	portssvc "github.com/leavehq/leave_management_app/internal/core/ports/services"
)

// subscriberBuffer bounds how many undelivered events a subscriber may lag behind.
const subscriberBuffer = 8

// Hub is an in-process fan-out of leave status events keyed by recipient user ID.
// A user may hold several subscriptions (one per open connection). Publishing
// never blocks: subscribers with full buffers miss the event.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[string]map[chan domain.LeaveStatusEvent]struct{}
	logger      *slog.Logger
}

// NewHub creates an empty event hub.
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		subscribers: make(map[string]map[chan domain.LeaveStatusEvent]struct{}),
		logger:      logger,
	}
}

// Ensure Hub implements the publisher port
var _ portssvc.LeaveEventPublisher = (*Hub)(nil)

// Subscribe registers a channel that receives events addressed to userID.
// The returned cancel function must be called when the connection closes.
func (h *Hub) Subscribe(userID string) (<-chan domain.LeaveStatusEvent, func()) {
	ch := make(chan domain.LeaveStatusEvent, subscriberBuffer)

	h.mu.Lock()
	if h.subscribers[userID] == nil {
		h.subscribers[userID] = make(map[chan domain.LeaveStatusEvent]struct{})
	}
	h.subscribers[userID][ch] = struct{}{}
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		if subs, ok := h.subscribers[userID]; ok {
			delete(subs, ch)
			if len(subs) == 0 {
				delete(h.subscribers, userID)
			}
		}
		h.mu.Unlock()
	}
	return ch, cancel
}

// PublishLeaveStatus delivers the event to the affected employee and the
// managers of the request's department. Delivery is best effort.
func (h *Hub) PublishLeaveStatus(ctx context.Context, event domain.LeaveStatusEvent) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, userID := range event.Recipients() {
		for ch := range h.subscribers[userID] {
			select {
			case ch <- event:
			default:
				// Subscriber is not draining; drop rather than block the decision flow.
				if h.logger != nil {
					h.logger.Warn("Dropping leave status event for slow subscriber",
						slog.String("user_id", userID),
						slog.String("leave_request_id", event.LeaveRequest.LeaveRequestID))
				}
			}
		}
	}
}

// SubscriberCount returns how many channels are registered for a user.
func (h *Hub) SubscriberCount(userID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers[userID])
}
