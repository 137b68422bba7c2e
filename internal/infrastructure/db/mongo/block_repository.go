package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/projecthub/portal/internal/core/domain"
)

const blocksCollection = "portal_blocks"

type BlockRepository struct {
	coll *mongo.Collection
}

func NewBlockRepository(db *mongo.Database) *BlockRepository {
	return &BlockRepository{coll: db.Collection(blocksCollection)}
}

type blockDoc struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Type       string             `bson:"type"`
	Title      string             `bson:"title"`
	Content    string             `bson:"content"`
	AuthorID   string             `bson:"author_id"`
	AuthorName string             `bson:"author_name"`
	CreatedAt  time.Time          `bson:"created_at"`
}

func (d *blockDoc) toDomain() *domain.PortalBlock {
	return &domain.PortalBlock{
		ID:         d.ID.Hex(),
		Type:       domain.BlockType(d.Type),
		Title:      d.Title,
		Content:    d.Content,
		AuthorID:   d.AuthorID,
		AuthorName: d.AuthorName,
		CreatedAt:  d.CreatedAt,
	}
}

func (r *BlockRepository) Create(ctx context.Context, b *domain.PortalBlock) (*domain.PortalBlock, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := blockDoc{
		Type:       string(b.Type),
		Title:      b.Title,
		Content:    b.Content,
		AuthorID:   b.AuthorID,
		AuthorName: b.AuthorName,
		CreatedAt:  b.CreatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert portal block: %w", err)
	}

	created := *b
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *BlockRepository) FindByID(ctx context.Context, id string) (*domain.PortalBlock, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrBlockNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc blockDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrBlockNotFound
		}
		return nil, fmt.Errorf("find portal block: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *BlockRepository) List(ctx context.Context) ([]*domain.PortalBlock, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list portal blocks: %w", err)
	}
	defer cursor.Close(ctx)

	var blocks []*domain.PortalBlock
	for cursor.Next(ctx) {
		var doc blockDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode portal block: %w", err)
		}
		blocks = append(blocks, doc.toDomain())
	}
	return blocks, cursor.Err()
}
