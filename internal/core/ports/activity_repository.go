package ports

import (
	"context"

	"github.com/projecthub/portal/internal/core/domain"
)

// ActivityRepository defines persistence for the audit trail.
type ActivityRepository interface {
	Insert(ctx context.Context, e *domain.ActivityEvent) error
}

// ActivityRecorder is the enqueue side of the activity dispatcher. Services
// call Record fire-and-forget; persistence happens on a worker goroutine.
type ActivityRecorder interface {
	Record(e domain.ActivityEvent)
}
