package content

import (
	"ms-content/internal/models"
	"ms-content/internal/schema"
	"ms-content/internal/seed"
)

func inserts[T schema.Insert](records []T) []schema.Insert {
	out := make([]schema.Insert, 0, len(records))
	for _, r := range records {
		out = append(out, r)
	}
	return out
}

// ProgramsPlan replaces every program with the twelve-program set.
func ProgramsPlan() seed.Plan {
	return seed.Plan{
		Name:    "seed-programs",
		Entity:  models.EntityPrograms,
		Mode:    seed.ModeFullReconciliation,
		Records: inserts(Programs()),
	}
}

// InitialProgramsPlan replaces every program with the initial eight.
func InitialProgramsPlan() seed.Plan {
	return seed.Plan{
		Name:    "seed-programs-initial",
		Entity:  models.EntityPrograms,
		Mode:    seed.ModeFullReconciliation,
		Records: inserts(InitialPrograms()),
	}
}

// AdditionalProgramsPlan appends the four programs with orderIndex 9 to 12.
func AdditionalProgramsPlan() seed.Plan {
	return seed.Plan{
		Name:    "seed-programs-additional",
		Entity:  models.EntityPrograms,
		Mode:    seed.ModeAdditive,
		Records: inserts(AdditionalPrograms()),
	}
}

func LeadershipPlan() seed.Plan {
	return seed.Plan{
		Name:    "seed-leadership",
		Entity:  models.EntityLeadership,
		Mode:    seed.ModeFullReconciliation,
		Records: inserts(Leadership()),
	}
}

// SiteContentPlans replace the hero, about, contact and donation records.
// Each plan runs in its own transaction.
func SiteContentPlans() []seed.Plan {
	single := func(name string, rec schema.Insert) seed.Plan {
		return seed.Plan{
			Name:    name,
			Entity:  rec.Entity(),
			Mode:    seed.ModeFullReconciliation,
			Records: []schema.Insert{rec},
			Atomic:  true,
		}
	}
	return []seed.Plan{
		single("seed-hero", Hero()),
		single("seed-about", About()),
		single("seed-contact", Contact()),
		single("seed-donation", Donation()),
	}
}

// DiffPlans are the plans content-diff compares the store against.
func DiffPlans() []seed.Plan {
	return append([]seed.Plan{ProgramsPlan(), LeadershipPlan()}, SiteContentPlans()...)
}
