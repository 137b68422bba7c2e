package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/projecthub/portal/internal/core/domain"
	"github.com/projecthub/portal/internal/core/ports"
)

const moderationCollection = "moderation_requests"

type ModerationRepository struct {
	coll *mongo.Collection
}

func NewModerationRepository(db *mongo.Database) *ModerationRepository {
	return &ModerationRepository{coll: db.Collection(moderationCollection)}
}

type moderationDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	UserID       string             `bson:"user_id"`
	Status       string             `bson:"status"`
	CreatedAt    time.Time          `bson:"created_at"`
	ResolvedBy   string             `bson:"resolved_by,omitempty"`
	ResolvedAt   *time.Time         `bson:"resolved_at,omitempty"`
	AdminComment string             `bson:"admin_comment,omitempty"`
}

func (d *moderationDoc) toDomain() *domain.ModerationRequest {
	return &domain.ModerationRequest{
		ID:           d.ID.Hex(),
		UserID:       d.UserID,
		Status:       domain.ModerationStatus(d.Status),
		CreatedAt:    d.CreatedAt,
		ResolvedBy:   d.ResolvedBy,
		ResolvedAt:   d.ResolvedAt,
		AdminComment: d.AdminComment,
	}
}

func (r *ModerationRepository) Create(ctx context.Context, req *domain.ModerationRequest) (*domain.ModerationRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := moderationDoc{
		UserID:    req.UserID,
		Status:    string(req.Status),
		CreatedAt: req.CreatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert moderation request: %w", err)
	}

	created := *req
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *ModerationRepository) ListPending(ctx context.Context) ([]*domain.ModerationRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"status": string(domain.ModerationPending)}
	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list pending requests: %w", err)
	}
	defer cursor.Close(ctx)

	var requests []*domain.ModerationRequest
	for cursor.Next(ctx) {
		var doc moderationDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode moderation request: %w", err)
		}
		requests = append(requests, doc.toDomain())
	}
	return requests, cursor.Err()
}

func (r *ModerationRepository) ResolvePending(ctx context.Context, userID string, res ports.RequestResolution) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"user_id": userID, "status": string(domain.ModerationPending)}
	update := bson.M{"$set": bson.M{
		"status":        string(res.Status),
		"resolved_by":   res.ResolvedBy,
		"resolved_at":   res.ResolvedAt,
		"admin_comment": res.AdminComment,
	}}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("resolve moderation request: %w", err)
	}
	if result.MatchedCount == 0 {
		return domain.ErrRequestNotFound
	}
	return nil
}

// EnsureIndexes backs the one-pending-request-per-user lookup.
func (r *ModerationRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
