// Package content holds the canonical records applied by the seed
// executables. Every ordered record declares its orderIndex.
package content

import "ms-content/internal/schema"

func text(s string) *string { return &s }
func order(i int) *int      { return &i }

// InitialPrograms is the initial eight-program set, orderIndex 1 to 8.
func InitialPrograms() []*schema.ProgramInsert {
	return []*schema.ProgramInsert{
		{
			Title:               "Education for All",
			Description:         "Free after-school learning centres for children from low-income families.",
			DetailedDescription: text("Our learning centres give first-generation learners a safe place to study, with trained tutors, books and daily meals."),
			ImageURL:            text("/images/programs/education.jpg"),
			Icon:                "GraduationCap",
			Category:            "education",
			Objectives:          text("Reduce school dropout rates and improve basic literacy and numeracy."),
			TargetGroup:         text("Children aged 6 to 14 in urban slums and rural villages."),
			HowWeWork:           text("Volunteer tutors run evening classes in community halls, tracking each child's progress every term."),
			Components:          text("Remedial classes, library corners, scholarship support, parent meetings."),
			FutureInitiatives:   text("Open five new centres and add a secondary school bridge course."),
			OrderIndex:          order(1),
		},
		{
			Title:               "Healthcare Outreach",
			Description:         "Mobile health camps bringing checkups and medicines to underserved villages.",
			DetailedDescription: text("Doctors and nurses travel with our mobile clinic to hold monthly camps where no primary health centre is within reach."),
			ImageURL:            text("/images/programs/health.jpg"),
			Icon:                "HeartPulse",
			Category:            "health",
			Objectives:          text("Early detection of chronic illness and improved maternal health."),
			TargetGroup:         text("Rural households, pregnant women and the elderly."),
			HowWeWork:           text("Camps are scheduled with village councils and followed up by trained community health workers."),
			Components:          text("General checkups, eye screening, free medicines, referrals."),
			FutureInitiatives:   text("Telemedicine kiosks in three districts."),
			OrderIndex:          order(2),
		},
		{
			Title:               "Women Empowerment",
			Description:         "Self-help groups, financial literacy and leadership training for women.",
			DetailedDescription: text("We organise women into self-help groups that save together, access credit and take part in local decision making."),
			ImageURL:            text("/images/programs/women.jpg"),
			Icon:                "Users",
			Category:            "women-empowerment",
			Objectives:          text("Economic independence and a stronger voice for women in their communities."),
			TargetGroup:         text("Women aged 18 and above from marginalised communities."),
			HowWeWork:           text("Field coordinators facilitate weekly group meetings and link groups to banks."),
			Components:          text("Savings groups, bookkeeping workshops, legal awareness sessions."),
			FutureInitiatives:   text("A federation of self-help groups running a shared marketplace."),
			OrderIndex:          order(3),
		},
		{
			Title:               "Skill Development",
			Description:         "Vocational courses that prepare young people for local jobs.",
			DetailedDescription: text("Short, certified courses in trades that local employers are hiring for, followed by placement support."),
			ImageURL:            text("/images/programs/skills.jpg"),
			Icon:                "Briefcase",
			Category:            "livelihood",
			Objectives:          text("Place trainees in stable employment or self-employment."),
			TargetGroup:         text("Youth aged 18 to 30 who left formal education."),
			HowWeWork:           text("Courses are designed with employer partners and taught by working professionals."),
			Components:          text("Tailoring, electrical repair, computer basics, soft skills, job fairs."),
			FutureInitiatives:   text("Apprenticeships with partner manufacturers."),
			OrderIndex:          order(4),
		},
		{
			Title:               "Clean Water and Sanitation",
			Description:         "Safe drinking water and toilets for villages and schools.",
			DetailedDescription: text("We install water filtration units and build sanitation blocks, then train local committees to maintain them."),
			ImageURL:            text("/images/programs/water.jpg"),
			Icon:                "Droplets",
			Category:            "health",
			Objectives:          text("Reduce waterborne disease and keep girls in school."),
			TargetGroup:         text("Villages and government schools without safe water."),
			HowWeWork:           text("Communities contribute labour and form water committees that own the assets."),
			Components:          text("Filtration plants, school toilets, hygiene education."),
			FutureInitiatives:   text("Rainwater harvesting in drought-prone blocks."),
			OrderIndex:          order(5),
		},
		{
			Title:               "Environmental Conservation",
			Description:         "Tree planting, waste management and climate awareness drives.",
			DetailedDescription: text("Volunteers and schools plant and care for native trees while neighbourhoods learn to segregate and compost waste."),
			ImageURL:            text("/images/programs/environment.jpg"),
			Icon:                "Leaf",
			Category:            "environment",
			Objectives:          text("Increase green cover and cut landfill waste."),
			TargetGroup:         text("Schools, resident associations and farmers."),
			HowWeWork:           text("Each planting site is adopted by a school or group responsible for watering and survival checks."),
			Components:          text("Plantation drives, composting units, eco clubs."),
			FutureInitiatives:   text("Community seed banks for native species."),
			OrderIndex:          order(6),
		},
		{
			Title:               "Child Nutrition",
			Description:         "Nutritious meals and growth monitoring for young children.",
			DetailedDescription: text("Daily meals at our centres are paired with monthly growth checks and counselling for parents."),
			ImageURL:            text("/images/programs/nutrition.jpg"),
			Icon:                "Apple",
			Category:            "child-welfare",
			Objectives:          text("Reduce malnutrition among children under six."),
			TargetGroup:         text("Children under six and their mothers."),
			HowWeWork:           text("Anganwadi workers and our volunteers record weight and height and refer severe cases."),
			Components:          text("Meal programme, growth charts, nutrition workshops."),
			FutureInitiatives:   text("Kitchen gardens at every centre."),
			OrderIndex:          order(7),
		},
		{
			Title:               "Disaster Relief",
			Description:         "Emergency food, shelter and rebuilding support after floods and cyclones.",
			DetailedDescription: text("Our response teams distribute relief kits within days of a disaster and stay to help families rebuild."),
			ImageURL:            text("/images/programs/relief.jpg"),
			Icon:                "LifeBuoy",
			Category:            "community",
			Objectives:          text("Meet immediate needs and restore livelihoods after disasters."),
			TargetGroup:         text("Families affected by natural disasters."),
			HowWeWork:           text("Relief is coordinated with district authorities and distributed through local volunteers."),
			Components:          text("Relief kits, temporary shelters, house repair grants."),
			FutureInitiatives:   text("Village disaster preparedness plans."),
			OrderIndex:          order(8),
		},
	}
}

// AdditionalPrograms extends the initial set with orderIndex 9 to 12.
func AdditionalPrograms() []*schema.ProgramInsert {
	return []*schema.ProgramInsert{
		{
			Title:               "Digital Literacy",
			Description:         "Computer and internet skills for students and adults.",
			DetailedDescription: text("Community computer labs teach everything from typing to online banking and safe internet use."),
			ImageURL:            text("/images/programs/digital.jpg"),
			Icon:                "Laptop",
			Category:            "education",
			Objectives:          text("Close the digital divide for families without devices at home."),
			TargetGroup:         text("Students, women and senior citizens."),
			HowWeWork:           text("Lab sessions are scheduled around school hours and work shifts."),
			Components:          text("Computer labs, online safety sessions, government services help desk."),
			FutureInitiatives:   text("Mobile computer lab for remote villages."),
			OrderIndex:          order(9),
		},
		{
			Title:               "Elderly Care",
			Description:         "Day care, health support and companionship for senior citizens.",
			DetailedDescription: text("Our day care centres offer meals, physiotherapy and social activities for elders living alone."),
			ImageURL:            text("/images/programs/elderly.jpg"),
			Icon:                "HandHeart",
			Category:            "community",
			Objectives:          text("Improve the health and dignity of elders without family support."),
			TargetGroup:         text("Senior citizens above 60."),
			HowWeWork:           text("Volunteers make home visits and bring elders to the centre twice a week."),
			Components:          text("Day care, home visits, pension enrolment help."),
			FutureInitiatives:   text("A helpline staffed by trained volunteers."),
			OrderIndex:          order(10),
		},
		{
			Title:               "Youth Sports and Leadership",
			Description:         "Sports coaching that builds teamwork and leadership in young people.",
			DetailedDescription: text("Weekly coaching in football, kabaddi and athletics is combined with life skills sessions."),
			ImageURL:            text("/images/programs/sports.jpg"),
			Icon:                "Trophy",
			Category:            "youth",
			Objectives:          text("Keep adolescents engaged and develop local leaders."),
			TargetGroup:         text("Adolescents aged 12 to 19."),
			HowWeWork:           text("Trained coaches from the community lead teams and mentor players."),
			Components:          text("Coaching, tournaments, life skills curriculum."),
			FutureInitiatives:   text("A district-level youth league."),
			OrderIndex:          order(11),
		},
		{
			Title:               "Sustainable Agriculture",
			Description:         "Training small farmers in low-cost, climate-resilient farming.",
			DetailedDescription: text("Farmer field schools demonstrate organic inputs, water-saving irrigation and crop diversification."),
			ImageURL:            text("/images/programs/agriculture.jpg"),
			Icon:                "Sprout",
			Category:            "livelihood",
			Objectives:          text("Raise farm incomes while protecting soil and water."),
			TargetGroup:         text("Small and marginal farmers."),
			HowWeWork:           text("Lead farmers host demonstration plots that neighbours visit through the season."),
			Components:          text("Field schools, seed distribution, market linkages."),
			FutureInitiatives:   text("Farmer producer organisations for collective selling."),
			OrderIndex:          order(12),
		},
	}
}

// Programs is the complete twelve-program set used by full reconciliation.
func Programs() []*schema.ProgramInsert {
	return append(InitialPrograms(), AdditionalPrograms()...)
}
