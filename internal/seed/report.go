package seed

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"ms-content/internal/models"
	"ms-content/internal/schema"
	"ms-content/internal/store"

	"github.com/fatih/color"
)

// Report is the verification summary of one seed run.
type Report struct {
	RunID  string
	Plan   string
	Entity models.Entity
	Mode   Mode
	Atomic bool

	Before   int
	Deleted  int64
	Inserted int
	// Expected is the row count the store should hold after the run.
	Expected int
	Total    int

	Rows    []store.RowSummary
	Groups  []store.GroupCount
	Missing []schema.NaturalKey

	RolledBack bool
	Err        error
}

// Complete reports whether the run finished and the store holds every
// canonical record.
func (r *Report) Complete() bool {
	return r.Err == nil && r.Total == r.Expected && len(r.Missing) == 0
}

var (
	headingColor = color.New(color.FgCyan, color.Bold)
	okColor      = color.New(color.FgGreen, color.Bold)
	failColor    = color.New(color.FgRed, color.Bold)
)

// columns names the label and group columns printed for each entity.
func columns(entity models.Entity) (label, group string) {
	switch entity {
	case models.EntityPrograms, models.EntityNews:
		return "TITLE", "CATEGORY"
	case models.EntityLeadership, models.EntityTestimonials:
		return "NAME", "ROLE"
	case models.EntityEvents:
		return "TITLE", "TYPE"
	case models.EntityContactInfo:
		return "EMAIL", ""
	default:
		return "TITLE", ""
	}
}

// Render writes the human-readable report. Colors are dropped automatically
// when w is not a terminal.
func (r *Report) Render(w io.Writer) error {
	headingColor.Fprintf(w, "== %s: %s (%s", r.Plan, r.Entity, r.Mode)
	if r.Atomic {
		headingColor.Fprint(w, ", atomic")
	}
	headingColor.Fprintln(w, ") ==")

	fmt.Fprintf(w, "run %s\n", r.RunID)
	fmt.Fprintf(w, "before: %d  deleted: %d  inserted: %d\n", r.Before, r.Deleted, r.Inserted)

	if len(r.Rows) > 0 {
		label, group := columns(r.Entity)
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		header := []string{"ID", "ORDER", label}
		if group != "" {
			header = append(header, group)
		}
		header = append(header, "ACTIVE")
		fmt.Fprintln(tw, strings.Join(header, "\t"))

		for _, row := range r.Rows {
			cells := []string{fmt.Sprint(row.ID), fmt.Sprint(row.OrderIndex), row.Label}
			if group != "" {
				cells = append(cells, row.Group)
			}
			cells = append(cells, yesNo(row.Active))
			fmt.Fprintln(tw, strings.Join(cells, "\t"))
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}

	if len(r.Groups) > 0 {
		_, group := columns(r.Entity)
		fmt.Fprintf(w, "by %s:\n", strings.ToLower(group))
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		for _, g := range r.Groups {
			fmt.Fprintf(tw, "  %s\t%d\n", g.Group, g.Count)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}

	fmt.Fprintf(w, "total: %d (expected %d)\n", r.Total, r.Expected)

	for _, key := range r.Missing {
		fmt.Fprintf(w, "missing: %s\n", key)
	}

	switch {
	case r.Err != nil && r.RolledBack:
		failColor.Fprintf(w, "FAILED (rolled back): %v\n", r.Err)
	case r.Err != nil:
		failColor.Fprintf(w, "FAILED: %v\n", r.Err)
	case !r.Complete():
		failColor.Fprintln(w, "INCOMPLETE: re-run the full reconciliation script")
	default:
		okColor.Fprintln(w, "OK")
	}

	_, err := fmt.Fprintln(w)
	return err
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
