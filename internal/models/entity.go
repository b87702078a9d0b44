package models

// Entity names a content table. The same names are used by the schema
// validators, the store registry and the migrations.
type Entity string

const (
	EntityPrograms       Entity = "programs"
	EntityLeadership     Entity = "leadership"
	EntityHeroContent    Entity = "hero_content"
	EntityAboutContent   Entity = "about_content"
	EntityContactInfo    Entity = "contact_info"
	EntityDonationConfig Entity = "donation_config"
	EntityTestimonials   Entity = "testimonials"
	EntityEvents         Entity = "events"
	EntityNews           Entity = "news"
)

// Entities lists every content entity in migration order.
var Entities = []Entity{
	EntityPrograms,
	EntityLeadership,
	EntityHeroContent,
	EntityAboutContent,
	EntityContactInfo,
	EntityDonationConfig,
	EntityTestimonials,
	EntityEvents,
	EntityNews,
}

func (e Entity) String() string {
	return string(e)
}

// Valid reports whether e is one of the known content entities.
func (e Entity) Valid() bool {
	for _, known := range Entities {
		if known == e {
			return true
		}
	}
	return false
}

// Identified is implemented by every content model so writers can read back
// the store-assigned id after an insert.
type Identified interface {
	GetID() int64
}
