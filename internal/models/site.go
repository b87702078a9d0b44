package models

import (
	"context"
	"time"

	"github.com/uptrace/bun"
)

// The site content records below are singletons in practice: the website
// reads the most recently written row of each.

type HeroContent struct {
	bun.BaseModel `bun:"table:hero_content"`

	ID                  int64     `bun:"id,pk,autoincrement" json:"id"`
	Title               string    `bun:"title,notnull" json:"title"`
	Subtitle            string    `bun:"subtitle,notnull" json:"subtitle"`
	Description         *string   `bun:"description" json:"description"`
	PrimaryButtonText   *string   `bun:"primary_button_text" json:"primaryButtonText"`
	PrimaryButtonLink   *string   `bun:"primary_button_link" json:"primaryButtonLink"`
	SecondaryButtonText *string   `bun:"secondary_button_text" json:"secondaryButtonText"`
	SecondaryButtonLink *string   `bun:"secondary_button_link" json:"secondaryButtonLink"`
	BackgroundImageURL  *string   `bun:"background_image_url" json:"backgroundImageUrl"`
	UpdatedAt           time.Time `bun:"updated_at,notnull" json:"updatedAt"`
}

type AboutContent struct {
	bun.BaseModel `bun:"table:about_content"`

	ID          int64     `bun:"id,pk,autoincrement" json:"id"`
	Title       string    `bun:"title,notnull" json:"title"`
	Description string    `bun:"description,notnull" json:"description"`
	Mission     *string   `bun:"mission" json:"mission"`
	Vision      *string   `bun:"vision" json:"vision"`
	Values      *string   `bun:"values" json:"values"`
	History     *string   `bun:"history" json:"history"`
	ImageURL    *string   `bun:"image_url" json:"imageUrl"`
	UpdatedAt   time.Time `bun:"updated_at,notnull" json:"updatedAt"`
}

type ContactInfo struct {
	bun.BaseModel `bun:"table:contact_info"`

	ID           int64     `bun:"id,pk,autoincrement" json:"id"`
	Address      string    `bun:"address,notnull" json:"address"`
	Phone        string    `bun:"phone,notnull" json:"phone"`
	Email        string    `bun:"email,notnull" json:"email"`
	WorkingHours *string   `bun:"working_hours" json:"workingHours"`
	MapURL       *string   `bun:"map_url" json:"mapUrl"`
	FacebookURL  *string   `bun:"facebook_url" json:"facebookUrl"`
	TwitterURL   *string   `bun:"twitter_url" json:"twitterUrl"`
	InstagramURL *string   `bun:"instagram_url" json:"instagramUrl"`
	LinkedInURL  *string   `bun:"linked_in_url" json:"linkedInUrl"`
	YouTubeURL   *string   `bun:"youtube_url" json:"youtubeUrl"`
	UpdatedAt    time.Time `bun:"updated_at,notnull" json:"updatedAt"`
}

type DonationConfig struct {
	bun.BaseModel `bun:"table:donation_config"`

	ID               int64     `bun:"id,pk,autoincrement" json:"id"`
	Title            string    `bun:"title,notnull" json:"title"`
	Description      string    `bun:"description,notnull" json:"description"`
	BankName         *string   `bun:"bank_name" json:"bankName"`
	AccountName      *string   `bun:"account_name" json:"accountName"`
	AccountNumber    *string   `bun:"account_number" json:"accountNumber"`
	IFSCCode         *string   `bun:"ifsc_code" json:"ifscCode"`
	UPIID            *string   `bun:"upi_id" json:"upiId"`
	QRCodeURL        *string   `bun:"qr_code_url" json:"qrCodeUrl"`
	TaxExemptionNote *string   `bun:"tax_exemption_note" json:"taxExemptionNote"`
	SuggestedAmounts *string   `bun:"suggested_amounts" json:"suggestedAmounts"`
	UpdatedAt        time.Time `bun:"updated_at,notnull" json:"updatedAt"`
}

var (
	_ bun.BeforeAppendModelHook = (*HeroContent)(nil)
	_ bun.BeforeAppendModelHook = (*AboutContent)(nil)
	_ bun.BeforeAppendModelHook = (*ContactInfo)(nil)
	_ bun.BeforeAppendModelHook = (*DonationConfig)(nil)
)

func (h *HeroContent) BeforeAppendModel(ctx context.Context, query bun.Query) error {
	stampUpdated(query, &h.UpdatedAt)
	return nil
}

func (a *AboutContent) BeforeAppendModel(ctx context.Context, query bun.Query) error {
	stampUpdated(query, &a.UpdatedAt)
	return nil
}

func (c *ContactInfo) BeforeAppendModel(ctx context.Context, query bun.Query) error {
	stampUpdated(query, &c.UpdatedAt)
	return nil
}

func (d *DonationConfig) BeforeAppendModel(ctx context.Context, query bun.Query) error {
	stampUpdated(query, &d.UpdatedAt)
	return nil
}

func (h *HeroContent) GetID() int64    { return h.ID }
func (a *AboutContent) GetID() int64   { return a.ID }
func (c *ContactInfo) GetID() int64    { return c.ID }
func (d *DonationConfig) GetID() int64 { return d.ID }
