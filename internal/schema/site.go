package schema

import "ms-content/internal/models"

// Singleton records key on their entity name: the website only ever reads
// one row of each.

type HeroContentInsert struct {
	Title               string  `json:"title" validate:"required,max=200"`
	Subtitle            string  `json:"subtitle" validate:"required"`
	Description         *string `json:"description,omitempty"`
	PrimaryButtonText   *string `json:"primaryButtonText,omitempty"`
	PrimaryButtonLink   *string `json:"primaryButtonLink,omitempty"`
	SecondaryButtonText *string `json:"secondaryButtonText,omitempty"`
	SecondaryButtonLink *string `json:"secondaryButtonLink,omitempty"`
	BackgroundImageURL  *string `json:"backgroundImageUrl,omitempty"`
}

func (h *HeroContentInsert) Entity() models.Entity { return models.EntityHeroContent }
func (h *HeroContentInsert) Validate() error       { return check(h.Entity(), h) }
func (h *HeroContentInsert) Key() NaturalKey       { return NaturalKey{Label: h.Title} }

func (h *HeroContentInsert) Model() models.Identified {
	return &models.HeroContent{
		Title:               h.Title,
		Subtitle:            h.Subtitle,
		Description:         h.Description,
		PrimaryButtonText:   h.PrimaryButtonText,
		PrimaryButtonLink:   h.PrimaryButtonLink,
		SecondaryButtonText: h.SecondaryButtonText,
		SecondaryButtonLink: h.SecondaryButtonLink,
		BackgroundImageURL:  h.BackgroundImageURL,
	}
}

type AboutContentInsert struct {
	Title       string  `json:"title" validate:"required,max=200"`
	Description string  `json:"description" validate:"required"`
	Mission     *string `json:"mission,omitempty"`
	Vision      *string `json:"vision,omitempty"`
	Values      *string `json:"values,omitempty"`
	History     *string `json:"history,omitempty"`
	ImageURL    *string `json:"imageUrl,omitempty"`
}

func (a *AboutContentInsert) Entity() models.Entity { return models.EntityAboutContent }
func (a *AboutContentInsert) Validate() error       { return check(a.Entity(), a) }
func (a *AboutContentInsert) Key() NaturalKey       { return NaturalKey{Label: a.Title} }

func (a *AboutContentInsert) Model() models.Identified {
	return &models.AboutContent{
		Title:       a.Title,
		Description: a.Description,
		Mission:     a.Mission,
		Vision:      a.Vision,
		Values:      a.Values,
		History:     a.History,
		ImageURL:    a.ImageURL,
	}
}

type ContactInfoInsert struct {
	Address      string  `json:"address" validate:"required"`
	Phone        string  `json:"phone" validate:"required,max=32"`
	Email        string  `json:"email" validate:"required,email"`
	WorkingHours *string `json:"workingHours,omitempty"`
	MapURL       *string `json:"mapUrl,omitempty" validate:"omitempty,url"`
	FacebookURL  *string `json:"facebookUrl,omitempty" validate:"omitempty,url"`
	TwitterURL   *string `json:"twitterUrl,omitempty" validate:"omitempty,url"`
	InstagramURL *string `json:"instagramUrl,omitempty" validate:"omitempty,url"`
	LinkedInURL  *string `json:"linkedInUrl,omitempty" validate:"omitempty,url"`
	YouTubeURL   *string `json:"youtubeUrl,omitempty" validate:"omitempty,url"`
}

func (c *ContactInfoInsert) Entity() models.Entity { return models.EntityContactInfo }
func (c *ContactInfoInsert) Validate() error       { return check(c.Entity(), c) }
func (c *ContactInfoInsert) Key() NaturalKey       { return NaturalKey{Label: c.Email} }

func (c *ContactInfoInsert) Model() models.Identified {
	return &models.ContactInfo{
		Address:      c.Address,
		Phone:        c.Phone,
		Email:        c.Email,
		WorkingHours: c.WorkingHours,
		MapURL:       c.MapURL,
		FacebookURL:  c.FacebookURL,
		TwitterURL:   c.TwitterURL,
		InstagramURL: c.InstagramURL,
		LinkedInURL:  c.LinkedInURL,
		YouTubeURL:   c.YouTubeURL,
	}
}

type DonationConfigInsert struct {
	Title            string  `json:"title" validate:"required,max=200"`
	Description      string  `json:"description" validate:"required"`
	BankName         *string `json:"bankName,omitempty"`
	AccountName      *string `json:"accountName,omitempty"`
	AccountNumber    *string `json:"accountNumber,omitempty" validate:"omitempty,numeric"`
	IFSCCode         *string `json:"ifscCode,omitempty" validate:"omitempty,len=11,alphanum"`
	UPIID            *string `json:"upiId,omitempty" validate:"omitempty,contains=@"`
	QRCodeURL        *string `json:"qrCodeUrl,omitempty"`
	TaxExemptionNote *string `json:"taxExemptionNote,omitempty"`
	SuggestedAmounts *string `json:"suggestedAmounts,omitempty"`
}

func (d *DonationConfigInsert) Entity() models.Entity { return models.EntityDonationConfig }
func (d *DonationConfigInsert) Validate() error       { return check(d.Entity(), d) }
func (d *DonationConfigInsert) Key() NaturalKey       { return NaturalKey{Label: d.Title} }

func (d *DonationConfigInsert) Model() models.Identified {
	return &models.DonationConfig{
		Title:            d.Title,
		Description:      d.Description,
		BankName:         d.BankName,
		AccountName:      d.AccountName,
		AccountNumber:    d.AccountNumber,
		IFSCCode:         d.IFSCCode,
		UPIID:            d.UPIID,
		QRCodeURL:        d.QRCodeURL,
		TaxExemptionNote: d.TaxExemptionNote,
		SuggestedAmounts: d.SuggestedAmounts,
	}
}
