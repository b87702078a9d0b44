package schema

import "ms-content/internal/models"

type LeaderInsert struct {
	Name          string  `json:"name" validate:"required,max=120"`
	Role          string  `json:"role" validate:"required,max=120"`
	Bio           *string `json:"bio,omitempty"`
	ImageURL      *string `json:"imageUrl,omitempty"`
	Qualification *string `json:"qualification,omitempty"`
	Experience    *string `json:"experience,omitempty"`
	Email         *string `json:"email,omitempty" validate:"omitempty,email"`
	LinkedIn      *string `json:"linkedIn,omitempty" validate:"omitempty,url"`
	OrderIndex    *int    `json:"orderIndex,omitempty" validate:"omitempty,min=0"`
	IsActive      *bool   `json:"isActive,omitempty"`
}

func (l *LeaderInsert) Entity() models.Entity { return models.EntityLeadership }

func (l *LeaderInsert) Validate() error { return check(l.Entity(), l) }

func (l *LeaderInsert) HasOrderIndex() bool { return l.OrderIndex != nil }

func (l *LeaderInsert) Key() NaturalKey {
	return NaturalKey{Label: l.Name, Group: l.Role}
}

func (l *LeaderInsert) Model() models.Identified {
	return &models.Leader{
		Name:          l.Name,
		Role:          l.Role,
		Bio:           l.Bio,
		ImageURL:      l.ImageURL,
		Qualification: l.Qualification,
		Experience:    l.Experience,
		Email:         l.Email,
		LinkedIn:      l.LinkedIn,
		OrderIndex:    intOr(l.OrderIndex, 0),
		IsActive:      boolOr(l.IsActive, true),
	}
}
