package content

import "ms-content/internal/schema"

func Hero() *schema.HeroContentInsert {
	return &schema.HeroContentInsert{
		Title:               "Together, We Build Brighter Futures",
		Subtitle:            "Education, health and dignity for every community we serve",
		Description:         text("For over twenty years we have worked alongside families in villages and city neighbourhoods to create lasting change."),
		PrimaryButtonText:   text("Donate Now"),
		PrimaryButtonLink:   text("/donate"),
		SecondaryButtonText: text("Our Programs"),
		SecondaryButtonLink: text("/programs"),
		BackgroundImageURL:  text("/images/hero.jpg"),
	}
}

func About() *schema.AboutContentInsert {
	return &schema.AboutContentInsert{
		Title:       "About Asha Seva Foundation",
		Description: "Asha Seva Foundation is a registered nonprofit working on education, health, livelihoods and the environment.",
		Mission:     text("To empower underserved communities through education, healthcare and sustainable livelihoods."),
		Vision:      text("A society where every person can live with dignity and opportunity."),
		Values:      text("Compassion, integrity, accountability, community ownership"),
		History:     text("Started in 2004 as a single health camp, the foundation now runs programmes in 120 villages."),
		ImageURL:    text("/images/about.jpg"),
	}
}

func Contact() *schema.ContactInfoInsert {
	return &schema.ContactInfoInsert{
		Address:      "12 Gandhi Road, Koramangala, Bengaluru 560034",
		Phone:        "+91 80 4123 4567",
		Email:        "info@ashaseva.org",
		WorkingHours: text("Monday to Saturday, 9:30 AM to 6:00 PM"),
		MapURL:       text("https://maps.google.com/?q=Koramangala+Bengaluru"),
		FacebookURL:  text("https://www.facebook.com/ashaseva"),
		TwitterURL:   text("https://twitter.com/ashaseva"),
		InstagramURL: text("https://www.instagram.com/ashaseva"),
		LinkedInURL:  text("https://www.linkedin.com/company/ashaseva"),
		YouTubeURL:   text("https://www.youtube.com/@ashaseva"),
	}
}

func Donation() *schema.DonationConfigInsert {
	return &schema.DonationConfigInsert{
		Title:            "Support Our Work",
		Description:      "Your contribution funds classrooms, health camps and relief for families in need.",
		BankName:         text("State Bank of India"),
		AccountName:      text("Asha Seva Foundation"),
		AccountNumber:    text("30211457896"),
		IFSCCode:         text("SBIN0001234"),
		UPIID:            text("ashaseva@sbi"),
		TaxExemptionNote: text("Donations are eligible for 50% tax exemption under Section 80G of the Income Tax Act."),
		SuggestedAmounts: text("500,1000,2500,5000"),
	}
}
