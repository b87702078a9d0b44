package models

import (
	"context"
	"time"

	"github.com/uptrace/bun"
)

type Testimonial struct {
	bun.BaseModel `bun:"table:testimonials"`

	ID         int64     `bun:"id,pk,autoincrement" json:"id"`
	Name       string    `bun:"name,notnull" json:"name"`
	Role       *string   `bun:"role" json:"role"`
	Content    string    `bun:"content,notnull" json:"content"`
	ImageURL   *string   `bun:"image_url" json:"imageUrl"`
	Rating     int       `bun:"rating,notnull" json:"rating"`
	OrderIndex int       `bun:"order_index,notnull" json:"orderIndex"`
	IsActive   bool      `bun:"is_active,notnull" json:"isActive"`
	CreatedAt  time.Time `bun:"created_at,notnull" json:"createdAt"`
	UpdatedAt  time.Time `bun:"updated_at,notnull" json:"updatedAt"`
}

var _ bun.BeforeAppendModelHook = (*Testimonial)(nil)

func (t *Testimonial) BeforeAppendModel(ctx context.Context, query bun.Query) error {
	stampTimes(query, &t.CreatedAt, &t.UpdatedAt)
	return nil
}

func (t *Testimonial) GetID() int64 { return t.ID }
