package schema_test

import (
	"errors"
	"testing"
	"time"

	"ms-content/internal/models"
	"ms-content/internal/schema"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int              { return &v }
func boolPtr(v bool) *bool           { return &v }
func strPtr(v string) *string        { return &v }
func timePtr(v time.Time) *time.Time { return &v }

func validProgram() *schema.ProgramInsert {
	return &schema.ProgramInsert{
		Title:       "Education for All",
		Description: "After-school learning centres",
		Icon:        "book-open",
		Category:    "education",
		OrderIndex:  intPtr(1),
	}
}

func TestProgramInsertValid(t *testing.T) {
	p := validProgram()
	assert.NoError(t, p.Validate())
	assert.True(t, p.HasOrderIndex())
	assert.Equal(t, models.EntityPrograms, p.Entity())
	assert.Equal(t, schema.NaturalKey{Label: "Education for All", Group: "education"}, p.Key())
}

func TestProgramInsertMissingRequiredFields(t *testing.T) {
	tests := []struct {
		name  string
		edit  func(p *schema.ProgramInsert)
		field string
	}{
		{"missing title", func(p *schema.ProgramInsert) { p.Title = "" }, "title"},
		{"missing icon", func(p *schema.ProgramInsert) { p.Icon = "" }, "icon"},
		{"missing category", func(p *schema.ProgramInsert) { p.Category = "" }, "category"},
		{"missing description", func(p *schema.ProgramInsert) { p.Description = "" }, "description"},
		{"negative order index", func(p *schema.ProgramInsert) { p.OrderIndex = intPtr(-1) }, "orderIndex"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validProgram()
			tt.edit(p)

			err := p.Validate()
			require.Error(t, err)

			var verr *schema.ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, models.EntityPrograms, verr.Entity)
			assert.True(t, verr.HasField(tt.field), "expected %s in %v", tt.field, verr)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestProgramInsertDefaults(t *testing.T) {
	p := &schema.ProgramInsert{
		Title:       "Clean Water",
		Description: "Wells and filters",
		Icon:        "droplet",
		Category:    "health",
	}
	require.NoError(t, p.Validate())
	assert.False(t, p.HasOrderIndex())

	program := p.Model().(*models.Program)
	assert.Equal(t, 0, program.OrderIndex)
	assert.True(t, program.IsActive)
	assert.Nil(t, program.ImageURL)
	assert.Zero(t, program.ID)

	p.IsActive = boolPtr(false)
	p.OrderIndex = intPtr(7)
	program = p.Model().(*models.Program)
	assert.False(t, program.IsActive)
	assert.Equal(t, 7, program.OrderIndex)
}

func TestDecodeProgram(t *testing.T) {
	p, err := schema.Decode[schema.ProgramInsert]([]byte(`{
		"title": "Women Empowerment",
		"description": "Skills and micro-credit",
		"icon": "users",
		"category": "livelihood",
		"imageUrl": null,
		"orderIndex": 3
	}`))
	require.NoError(t, err)
	assert.Equal(t, "Women Empowerment", p.Title)
	assert.Nil(t, p.ImageURL)
	assert.Equal(t, 3, *p.OrderIndex)
}

func TestDecodeRejectsWrongPrimitiveType(t *testing.T) {
	_, err := schema.Decode[schema.ProgramInsert]([]byte(`{
		"title": "Women Empowerment",
		"description": "Skills and micro-credit",
		"icon": "users",
		"category": "livelihood",
		"orderIndex": "three"
	}`))
	require.Error(t, err)

	var verr *schema.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.True(t, verr.HasField("orderIndex"))

	_, err = schema.Decode[schema.ProgramInsert]([]byte(`{"title": 42}`))
	require.True(t, errors.As(err, &verr))
	assert.True(t, verr.HasField("title"))
}

func TestDecodeRejectsMissingAndUnknownFields(t *testing.T) {
	_, err := schema.Decode[schema.ProgramInsert]([]byte(`{"description": "x", "category": "health"}`))
	var verr *schema.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.True(t, verr.HasField("title"))
	assert.True(t, verr.HasField("icon"))

	_, err = schema.Decode[schema.ProgramInsert]([]byte(`{"title": "x", "colour": "red"}`))
	require.True(t, errors.As(err, &verr))
	assert.True(t, verr.HasField("colour"))
}

func TestLeaderInsert(t *testing.T) {
	l := &schema.LeaderInsert{Name: "Asha Rao", Role: "Founder", Email: strPtr("not-an-email")}
	err := l.Validate()
	var verr *schema.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.True(t, verr.HasField("email"))

	l.Email = strPtr("asha@example.org")
	require.NoError(t, l.Validate())

	leader := l.Model().(*models.Leader)
	assert.True(t, leader.IsActive)
	assert.Equal(t, schema.NaturalKey{Label: "Asha Rao", Group: "Founder"}, l.Key())

	l.Role = ""
	require.Error(t, l.Validate())
}

func TestEventInsertCrossFieldRules(t *testing.T) {
	eventDate := time.Date(2026, 12, 5, 10, 0, 0, 0, time.UTC)
	e := &schema.EventInsert{
		Title:                "Annual Health Camp",
		EventDate:            eventDate,
		EventType:            "camp",
		MaxParticipants:      intPtr(100),
		CurrentParticipants:  intPtr(20),
		RegistrationDeadline: timePtr(eventDate.AddDate(0, 0, -3)),
	}
	require.NoError(t, e.Validate())

	e.RegistrationDeadline = timePtr(eventDate.AddDate(0, 0, 1))
	e.CurrentParticipants = intPtr(101)
	err := e.Validate()
	var verr *schema.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.True(t, verr.HasField("registrationDeadline"))
	assert.True(t, verr.HasField("currentParticipants"))

	e = &schema.EventInsert{Title: "No date", EventType: "talk"}
	require.True(t, errors.As(e.Validate(), &verr))
	assert.True(t, verr.HasField("eventDate"))
}

func TestEventInsertDefaults(t *testing.T) {
	e := &schema.EventInsert{Title: "Open Day", EventDate: time.Now().Add(48 * time.Hour), EventType: "open-day"}
	require.NoError(t, e.Validate())

	event := e.Model().(*models.Event)
	assert.True(t, event.IsActive)
	assert.True(t, event.IsRegistrationOpen)
	assert.Equal(t, 0, event.CurrentParticipants)
	assert.Nil(t, event.MaxParticipants)
}

func TestSiteContentInserts(t *testing.T) {
	contact := &schema.ContactInfoInsert{Address: "12 Lake Road", Phone: "+91 80 1234 5678", Email: "hello@example.org"}
	require.NoError(t, contact.Validate())

	contact.FacebookURL = strPtr("facebook")
	var verr *schema.ValidationError
	require.True(t, errors.As(contact.Validate(), &verr))
	assert.True(t, verr.HasField("facebookUrl"))

	donation := &schema.DonationConfigInsert{Title: "Support us", Description: "Every rupee counts", UPIID: strPtr("not-a-vpa")}
	require.True(t, errors.As(donation.Validate(), &verr))
	assert.True(t, verr.HasField("upiId"))

	hero := &schema.HeroContentInsert{Title: "Hope starts here"}
	require.True(t, errors.As(hero.Validate(), &verr))
	assert.True(t, verr.HasField("subtitle"))
}

func TestTestimonialAndNewsDefaults(t *testing.T) {
	tm := &schema.TestimonialInsert{Name: "Ravi", Content: "Changed my life"}
	require.NoError(t, tm.Validate())
	assert.Equal(t, 5, tm.Model().(*models.Testimonial).Rating)

	tm.Rating = intPtr(6)
	require.Error(t, tm.Validate())

	n := &schema.NewsInsert{Title: "New centre opens", Content: "...", Category: "announcements"}
	require.NoError(t, n.Validate())
	article := n.Model().(*models.NewsArticle)
	assert.True(t, article.IsPublished)
	assert.True(t, article.PublishedAt.IsZero())
}

func TestSingletonKeysMatchLabelColumn(t *testing.T) {
	hero := &schema.HeroContentInsert{Title: "Every child in school"}
	about := &schema.AboutContentInsert{Title: "About Asha Seva"}
	contact := &schema.ContactInfoInsert{Email: "hello@ashaseva.org", Phone: "+91 80 4000 1234"}
	donation := &schema.DonationConfigInsert{Title: "Support our work"}

	assert.Equal(t, schema.NaturalKey{Label: "Every child in school"}, hero.Key())
	assert.Equal(t, schema.NaturalKey{Label: "About Asha Seva"}, about.Key())
	assert.Equal(t, schema.NaturalKey{Label: "hello@ashaseva.org"}, contact.Key())
	assert.Equal(t, schema.NaturalKey{Label: "Support our work"}, donation.Key())
}
