package schema

import "ms-content/internal/models"

type ProgramInsert struct {
	Title               string  `json:"title" validate:"required,max=200"`
	Description         string  `json:"description" validate:"required"`
	DetailedDescription *string `json:"detailedDescription,omitempty"`
	ImageURL            *string `json:"imageUrl,omitempty"`
	Icon                string  `json:"icon" validate:"required,max=64"`
	Category            string  `json:"category" validate:"required,max=64"`
	Objectives          *string `json:"objectives,omitempty"`
	TargetGroup         *string `json:"targetGroup,omitempty"`
	HowWeWork           *string `json:"howWeWork,omitempty"`
	Components          *string `json:"components,omitempty"`
	FutureInitiatives   *string `json:"futureInitiatives,omitempty"`
	OrderIndex          *int    `json:"orderIndex,omitempty" validate:"omitempty,min=0"`
	IsActive            *bool   `json:"isActive,omitempty"`
}

func (p *ProgramInsert) Entity() models.Entity { return models.EntityPrograms }

func (p *ProgramInsert) Validate() error { return check(p.Entity(), p) }

func (p *ProgramInsert) HasOrderIndex() bool { return p.OrderIndex != nil }

func (p *ProgramInsert) Key() NaturalKey {
	return NaturalKey{Label: p.Title, Group: p.Category}
}

func (p *ProgramInsert) Model() models.Identified {
	return &models.Program{
		Title:               p.Title,
		Description:         p.Description,
		DetailedDescription: p.DetailedDescription,
		ImageURL:            p.ImageURL,
		Icon:                p.Icon,
		Category:            p.Category,
		Objectives:          p.Objectives,
		TargetGroup:         p.TargetGroup,
		HowWeWork:           p.HowWeWork,
		Components:          p.Components,
		FutureInitiatives:   p.FutureInitiatives,
		OrderIndex:          intOr(p.OrderIndex, 0),
		IsActive:            boolOr(p.IsActive, true),
	}
}
