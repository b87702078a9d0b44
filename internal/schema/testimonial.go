package schema

import "ms-content/internal/models"

type TestimonialInsert struct {
	Name       string  `json:"name" validate:"required,max=120"`
	Role       *string `json:"role,omitempty"`
	Content    string  `json:"content" validate:"required"`
	ImageURL   *string `json:"imageUrl,omitempty"`
	Rating     *int    `json:"rating,omitempty" validate:"omitempty,min=1,max=5"`
	OrderIndex *int    `json:"orderIndex,omitempty" validate:"omitempty,min=0"`
	IsActive   *bool   `json:"isActive,omitempty"`
}

func (t *TestimonialInsert) Entity() models.Entity { return models.EntityTestimonials }

func (t *TestimonialInsert) Validate() error { return check(t.Entity(), t) }

func (t *TestimonialInsert) HasOrderIndex() bool { return t.OrderIndex != nil }

func (t *TestimonialInsert) Key() NaturalKey {
	role := ""
	if t.Role != nil {
		role = *t.Role
	}
	return NaturalKey{Label: t.Name, Group: role}
}

func (t *TestimonialInsert) Model() models.Identified {
	return &models.Testimonial{
		Name:       t.Name,
		Role:       t.Role,
		Content:    t.Content,
		ImageURL:   t.ImageURL,
		Rating:     intOr(t.Rating, 5),
		OrderIndex: intOr(t.OrderIndex, 0),
		IsActive:   boolOr(t.IsActive, true),
	}
}
