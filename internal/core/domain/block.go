package domain

import (
	"errors"
	"time"
)

// BlockType classifies a community portal block.
type BlockType string

const (
	BlockNews     BlockType = "news"
	BlockArticle  BlockType = "article"
	BlockQuestion BlockType = "question"
)

var (
	ErrBlockNotFound    = errors.New("portal block not found")
	ErrInvalidBlockType = errors.New("invalid block type")
)

// IsValid reports whether t is a known block type.
func (t BlockType) IsValid() bool {
	return t == BlockNews || t == BlockArticle || t == BlockQuestion
}

// PortalBlock is a community post (news item, article, or question).
// Likes is a read-time projection of the counter kept in Redis and is not
// persisted with the document.
type PortalBlock struct {
	ID         string    `json:"id"`
	Type       BlockType `json:"type"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	AuthorID   string    `json:"author_id"`
	AuthorName string    `json:"author_name"`
	Likes      int64     `json:"likes"`
	CreatedAt  time.Time `json:"created_at"`
}
