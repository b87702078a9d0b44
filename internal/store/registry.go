package store

import (
	"fmt"
	"reflect"

	"ms-content/internal/models"
)

type tableInfo struct {
	table       string
	labelColumn string
	groupColumn string
	ordered     bool
	hasActive   bool
	modelType   reflect.Type
}

var registry = map[models.Entity]tableInfo{
	models.EntityPrograms: {
		labelColumn: "title", groupColumn: "category", ordered: true, hasActive: true,
		modelType: reflect.TypeOf(models.Program{}),
	},
	models.EntityLeadership: {
		labelColumn: "name", groupColumn: "role", ordered: true, hasActive: true,
		modelType: reflect.TypeOf(models.Leader{}),
	},
	models.EntityHeroContent: {
		labelColumn: "title",
		modelType:   reflect.TypeOf(models.HeroContent{}),
	},
	models.EntityAboutContent: {
		labelColumn: "title",
		modelType:   reflect.TypeOf(models.AboutContent{}),
	},
	models.EntityContactInfo: {
		labelColumn: "email",
		modelType:   reflect.TypeOf(models.ContactInfo{}),
	},
	models.EntityDonationConfig: {
		labelColumn: "title",
		modelType:   reflect.TypeOf(models.DonationConfig{}),
	},
	models.EntityTestimonials: {
		labelColumn: "name", groupColumn: "role", ordered: true, hasActive: true,
		modelType: reflect.TypeOf(models.Testimonial{}),
	},
	models.EntityEvents: {
		labelColumn: "title", groupColumn: "event_type", hasActive: true,
		modelType: reflect.TypeOf(models.Event{}),
	},
	models.EntityNews: {
		labelColumn: "title", groupColumn: "category",
		modelType: reflect.TypeOf(models.NewsArticle{}),
	},
}

func lookup(entity models.Entity) (tableInfo, error) {
	info, ok := registry[entity]
	if !ok {
		return tableInfo{}, fmt.Errorf("%w: %q", ErrUnknownEntity, entity)
	}
	info.table = entity.String()
	return info, nil
}

// Ordered reports whether rows of entity are displayed by orderIndex.
func Ordered(entity models.Entity) bool {
	info, err := lookup(entity)
	return err == nil && info.ordered
}

// Grouped reports whether CountByGroup is supported for entity.
func Grouped(entity models.Entity) bool {
	info, err := lookup(entity)
	return err == nil && info.groupColumn != ""
}
