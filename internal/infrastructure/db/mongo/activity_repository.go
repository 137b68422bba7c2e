package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/projecthub/portal/internal/core/domain"
)

const activityCollection = "activity_events"

// ActivityRepository persists the append-only audit trail. Events are never
// read back by the application; the collection exists for operators.
type ActivityRepository struct {
	coll *mongo.Collection
}

func NewActivityRepository(db *mongo.Database) *ActivityRepository {
	return &ActivityRepository{coll: db.Collection(activityCollection)}
}

func (r *ActivityRepository) Insert(ctx context.Context, e *domain.ActivityEvent) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, e); err != nil {
		return fmt.Errorf("insert activity event: %w", err)
	}
	return nil
}
