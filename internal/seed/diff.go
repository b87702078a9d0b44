package seed

import (
	"context"
	"fmt"
	"io"

	"ms-content/internal/models"
	"ms-content/internal/schema"
	"ms-content/internal/store"
)

// Change is a canonical record present in the store with a different
// orderIndex or active flag.
type Change struct {
	Key     schema.NaturalKey
	Current store.RowSummary
	Target  store.RowSummary
}

// Diff compares the store with a plan without writing anything.
type Diff struct {
	Plan    string
	Entity  models.Entity
	Missing []schema.NaturalKey
	Extra   []store.RowSummary
	Changed []Change
}

func (d *Diff) InSync() bool {
	return len(d.Missing) == 0 && len(d.Extra) == 0 && len(d.Changed) == 0
}

// Diff reports how far the store is from plan's canonical records. Additive
// plans never report extra rows.
func (s *Seeder) Diff(ctx context.Context, plan Plan) (*Diff, error) {
	if err := plan.check(); err != nil {
		return nil, err
	}

	rows, err := s.store.Summaries(ctx, plan.Entity)
	if err != nil {
		return nil, err
	}

	current := make(map[schema.NaturalKey][]store.RowSummary, len(rows))
	for _, row := range rows {
		key := schema.NaturalKey{Label: row.Label, Group: row.Group}
		current[key] = append(current[key], row)
	}

	ordered := store.Ordered(plan.Entity)
	d := &Diff{Plan: plan.Name, Entity: plan.Entity}
	for _, rec := range plan.Records {
		key := rec.Key()
		matches := current[key]
		if len(matches) == 0 {
			d.Missing = append(d.Missing, key)
			continue
		}
		row := matches[0]
		current[key] = matches[1:]

		target := targetSummary(rec)
		if (ordered && row.OrderIndex != target.OrderIndex) || row.Active != target.Active {
			d.Changed = append(d.Changed, Change{Key: key, Current: row, Target: target})
		}
	}

	if plan.Mode == ModeFullReconciliation {
		for _, row := range rows {
			key := schema.NaturalKey{Label: row.Label, Group: row.Group}
			if len(current[key]) > 0 && current[key][0].ID == row.ID {
				d.Extra = append(d.Extra, row)
				current[key] = current[key][1:]
			}
		}
	}
	return d, nil
}

// targetSummary is the row a canonical record would produce.
func targetSummary(rec schema.Insert) store.RowSummary {
	key := rec.Key()
	summary := store.RowSummary{Label: key.Label, Group: key.Group, Active: true}

	switch m := rec.Model().(type) {
	case *models.Program:
		summary.OrderIndex, summary.Active = m.OrderIndex, m.IsActive
	case *models.Leader:
		summary.OrderIndex, summary.Active = m.OrderIndex, m.IsActive
	case *models.Testimonial:
		summary.OrderIndex, summary.Active = m.OrderIndex, m.IsActive
	case *models.Event:
		summary.Active = m.IsActive
	}
	return summary
}

func (d *Diff) Render(w io.Writer) error {
	headingColor.Fprintf(w, "== %s: %s (diff) ==\n", d.Plan, d.Entity)

	for _, key := range d.Missing {
		fmt.Fprintf(w, "+ %s\n", key)
	}
	for _, row := range d.Extra {
		fmt.Fprintf(w, "- %s (id %d)\n", schema.NaturalKey{Label: row.Label, Group: row.Group}, row.ID)
	}
	for _, c := range d.Changed {
		fmt.Fprintf(w, "~ %s: order %d -> %d, active %s -> %s\n",
			c.Key, c.Current.OrderIndex, c.Target.OrderIndex, yesNo(c.Current.Active), yesNo(c.Target.Active))
	}

	if d.InSync() {
		okColor.Fprintln(w, "in sync")
	} else {
		failColor.Fprintf(w, "%d missing, %d extra, %d changed\n", len(d.Missing), len(d.Extra), len(d.Changed))
	}

	_, err := fmt.Fprintln(w)
	return err
}
