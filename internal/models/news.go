package models

import (
	"context"
	"time"

	"github.com/uptrace/bun"
)

type NewsArticle struct {
	bun.BaseModel `bun:"table:news"`

	ID          int64     `bun:"id,pk,autoincrement" json:"id"`
	Title       string    `bun:"title,notnull" json:"title"`
	Excerpt     *string   `bun:"excerpt" json:"excerpt"`
	Content     string    `bun:"content,notnull" json:"content"`
	ImageURL    *string   `bun:"image_url" json:"imageUrl"`
	Category    string    `bun:"category,notnull" json:"category"`
	Author      *string   `bun:"author" json:"author"`
	PublishedAt time.Time `bun:"published_at,notnull" json:"publishedAt"`
	IsPublished bool      `bun:"is_published,notnull" json:"isPublished"`
	CreatedAt   time.Time `bun:"created_at,notnull" json:"createdAt"`
	UpdatedAt   time.Time `bun:"updated_at,notnull" json:"updatedAt"`
}

var _ bun.BeforeAppendModelHook = (*NewsArticle)(nil)

func (n *NewsArticle) BeforeAppendModel(ctx context.Context, query bun.Query) error {
	stampTimes(query, &n.CreatedAt, &n.UpdatedAt)
	if _, ok := query.(*bun.InsertQuery); ok && n.PublishedAt.IsZero() {
		n.PublishedAt = n.CreatedAt
	}
	return nil
}

func (n *NewsArticle) GetID() int64 { return n.ID }
