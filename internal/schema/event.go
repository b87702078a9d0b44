package schema

import (
	"time"

	"ms-content/internal/models"
)

type EventInsert struct {
	Title                string     `json:"title" validate:"required,max=200"`
	Description          *string    `json:"description,omitempty"`
	EventDate            time.Time  `json:"eventDate" validate:"required"`
	StartTime            *string    `json:"startTime,omitempty"`
	EndTime              *string    `json:"endTime,omitempty"`
	Location             *string    `json:"location,omitempty"`
	EventType            string     `json:"eventType" validate:"required,max=64"`
	ImageURL             *string    `json:"imageUrl,omitempty"`
	MaxParticipants      *int       `json:"maxParticipants,omitempty" validate:"omitempty,min=1"`
	CurrentParticipants  *int       `json:"currentParticipants,omitempty" validate:"omitempty,min=0"`
	RegistrationDeadline *time.Time `json:"registrationDeadline,omitempty"`
	IsRegistrationOpen   *bool      `json:"isRegistrationOpen,omitempty"`
	IsActive             *bool      `json:"isActive,omitempty"`
}

func (e *EventInsert) Entity() models.Entity { return models.EntityEvents }

func (e *EventInsert) Validate() error {
	var extra []FieldError
	if e.RegistrationDeadline != nil && !e.EventDate.IsZero() && e.RegistrationDeadline.After(e.EventDate) {
		extra = append(extra, FieldError{Field: "registrationDeadline", Rule: "lte=eventDate"})
	}
	if e.MaxParticipants != nil && intOr(e.CurrentParticipants, 0) > *e.MaxParticipants {
		extra = append(extra, FieldError{Field: "currentParticipants", Rule: "lte=maxParticipants"})
	}
	return check(e.Entity(), e, extra...)
}

func (e *EventInsert) Key() NaturalKey {
	return NaturalKey{Label: e.Title, Group: e.EventType}
}

func (e *EventInsert) Model() models.Identified {
	return &models.Event{
		Title:                e.Title,
		Description:          e.Description,
		EventDate:            e.EventDate,
		StartTime:            e.StartTime,
		EndTime:              e.EndTime,
		Location:             e.Location,
		EventType:            e.EventType,
		ImageURL:             e.ImageURL,
		MaxParticipants:      e.MaxParticipants,
		CurrentParticipants:  intOr(e.CurrentParticipants, 0),
		RegistrationDeadline: e.RegistrationDeadline,
		IsRegistrationOpen:   boolOr(e.IsRegistrationOpen, true),
		IsActive:             boolOr(e.IsActive, true),
	}
}
