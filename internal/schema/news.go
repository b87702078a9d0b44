package schema

import (
	"time"

	"ms-content/internal/models"
)

type NewsInsert struct {
	Title       string     `json:"title" validate:"required,max=200"`
	Excerpt     *string    `json:"excerpt,omitempty" validate:"omitempty,max=500"`
	Content     string     `json:"content" validate:"required"`
	ImageURL    *string    `json:"imageUrl,omitempty"`
	Category    string     `json:"category" validate:"required,max=64"`
	Author      *string    `json:"author,omitempty"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
	IsPublished *bool      `json:"isPublished,omitempty"`
}

func (n *NewsInsert) Entity() models.Entity { return models.EntityNews }

func (n *NewsInsert) Validate() error { return check(n.Entity(), n) }

func (n *NewsInsert) Key() NaturalKey {
	return NaturalKey{Label: n.Title, Group: n.Category}
}

// Model leaves PublishedAt zero when unset; the insert hook stamps it with
// the creation time.
func (n *NewsInsert) Model() models.Identified {
	article := &models.NewsArticle{
		Title:       n.Title,
		Excerpt:     n.Excerpt,
		Content:     n.Content,
		ImageURL:    n.ImageURL,
		Category:    n.Category,
		Author:      n.Author,
		IsPublished: boolOr(n.IsPublished, true),
	}
	if n.PublishedAt != nil {
		article.PublishedAt = *n.PublishedAt
	}
	return article
}
