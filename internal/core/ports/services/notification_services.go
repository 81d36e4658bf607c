package services

import (
	"context"
	"time"

	"github.com/leavehq/leave_management_app/internal/core/domain"
)

// LeaveEventPublisher broadcasts leave status changes to connected clients.
// Publishing must never block the caller; delivery is best effort.
type LeaveEventPublisher interface {
	PublishLeaveStatus(ctx context.Context, event domain.LeaveStatusEvent)
}

// LoginMetadata describes the request that triggered a login notification.
type LoginMetadata struct {
	IP        string
	UserAgent string
	Timestamp time.Time
}

// Mailer sends transactional emails. Failures are logged by callers and never
// propagate to the flow that triggered the send.
type Mailer interface {
	SendLoginNotification(ctx context.Context, to string, name string, meta LoginMetadata) error
}
