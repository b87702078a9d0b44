package models

import (
	"context"
	"time"

	"github.com/uptrace/bun"
)

type Program struct {
	bun.BaseModel `bun:"table:programs"`

	ID                  int64     `bun:"id,pk,autoincrement" json:"id"`
	Title               string    `bun:"title,notnull" json:"title"`
	Description         string    `bun:"description,notnull" json:"description"`
	DetailedDescription *string   `bun:"detailed_description" json:"detailedDescription"`
	ImageURL            *string   `bun:"image_url" json:"imageUrl"`
	Icon                string    `bun:"icon,notnull" json:"icon"`
	Category            string    `bun:"category,notnull" json:"category"`
	Objectives          *string   `bun:"objectives" json:"objectives"`
	TargetGroup         *string   `bun:"target_group" json:"targetGroup"`
	HowWeWork           *string   `bun:"how_we_work" json:"howWeWork"`
	Components          *string   `bun:"components" json:"components"`
	FutureInitiatives   *string   `bun:"future_initiatives" json:"futureInitiatives"`
	OrderIndex          int       `bun:"order_index,notnull" json:"orderIndex"`
	IsActive            bool      `bun:"is_active,notnull" json:"isActive"`
	CreatedAt           time.Time `bun:"created_at,notnull" json:"createdAt"`
	UpdatedAt           time.Time `bun:"updated_at,notnull" json:"updatedAt"`
}

var _ bun.BeforeAppendModelHook = (*Program)(nil)

func (p *Program) BeforeAppendModel(ctx context.Context, query bun.Query) error {
	stampTimes(query, &p.CreatedAt, &p.UpdatedAt)
	return nil
}

func (p *Program) GetID() int64 { return p.ID }
