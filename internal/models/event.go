package models

import (
	"context"
	"time"

	"github.com/uptrace/bun"
)

// Event is a public event listed on the website. Registration counting is
// owned by the registration flow; the content store only persists the
// numbers.
type Event struct {
	bun.BaseModel `bun:"table:events"`

	ID                   int64      `bun:"id,pk,autoincrement" json:"id"`
	Title                string     `bun:"title,notnull" json:"title"`
	Description          *string    `bun:"description" json:"description"`
	EventDate            time.Time  `bun:"event_date,notnull" json:"eventDate"`
	StartTime            *string    `bun:"start_time" json:"startTime"`
	EndTime              *string    `bun:"end_time" json:"endTime"`
	Location             *string    `bun:"location" json:"location"`
	EventType            string     `bun:"event_type,notnull" json:"eventType"`
	ImageURL             *string    `bun:"image_url" json:"imageUrl"`
	MaxParticipants      *int       `bun:"max_participants" json:"maxParticipants"`
	CurrentParticipants  int        `bun:"current_participants,notnull" json:"currentParticipants"`
	RegistrationDeadline *time.Time `bun:"registration_deadline" json:"registrationDeadline"`
	IsRegistrationOpen   bool       `bun:"is_registration_open,notnull" json:"isRegistrationOpen"`
	IsActive             bool       `bun:"is_active,notnull" json:"isActive"`
	CreatedAt            time.Time  `bun:"created_at,notnull" json:"createdAt"`
	UpdatedAt            time.Time  `bun:"updated_at,notnull" json:"updatedAt"`
}

var _ bun.BeforeAppendModelHook = (*Event)(nil)

func (e *Event) BeforeAppendModel(ctx context.Context, query bun.Query) error {
	stampTimes(query, &e.CreatedAt, &e.UpdatedAt)
	return nil
}

func (e *Event) GetID() int64 { return e.ID }
