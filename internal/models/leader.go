package models

import (
	"context"
	"time"

	"github.com/uptrace/bun"
)

// Leader is a member of the organization's leadership team. IsActive is kept
// as an integer flag on disk.
type Leader struct {
	bun.BaseModel `bun:"table:leadership"`

	ID            int64     `bun:"id,pk,autoincrement" json:"id"`
	Name          string    `bun:"name,notnull" json:"name"`
	Role          string    `bun:"role,notnull" json:"role"`
	Bio           *string   `bun:"bio" json:"bio"`
	ImageURL      *string   `bun:"image_url" json:"imageUrl"`
	Qualification *string   `bun:"qualification" json:"qualification"`
	Experience    *string   `bun:"experience" json:"experience"`
	Email         *string   `bun:"email" json:"email"`
	LinkedIn      *string   `bun:"linked_in" json:"linkedIn"`
	OrderIndex    int       `bun:"order_index,notnull" json:"orderIndex"`
	IsActive      bool      `bun:"is_active,notnull" json:"isActive"`
	CreatedAt     time.Time `bun:"created_at,notnull" json:"createdAt"`
	UpdatedAt     time.Time `bun:"updated_at,notnull" json:"updatedAt"`
}

var _ bun.BeforeAppendModelHook = (*Leader)(nil)

func (l *Leader) BeforeAppendModel(ctx context.Context, query bun.Query) error {
	stampTimes(query, &l.CreatedAt, &l.UpdatedAt)
	return nil
}

func (l *Leader) GetID() int64 { return l.ID }
