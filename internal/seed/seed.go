// Package seed brings content tables to a canonical state and verifies the
// result.
//
// A Plan names one entity, its canonical records and how they are applied:
// full reconciliation deletes every row first, additive only appends. Records
// are validated and inserted one at a time, in list order, and the first
// failure stops the run. The Report produced afterwards shows what the store
// actually holds, so an interrupted run is visible as expected N versus a
// smaller total.
package seed

import (
	"context"
	"errors"
	"fmt"

	"ms-content/internal/logger"
	"ms-content/internal/models"
	"ms-content/internal/schema"
	"ms-content/internal/store"

	"github.com/google/uuid"
)

type Mode int

const (
	modeUnset Mode = iota
	ModeFullReconciliation
	ModeAdditive
)

func (m Mode) String() string {
	switch m {
	case ModeFullReconciliation:
		return "full reconciliation"
	case ModeAdditive:
		return "additive"
	default:
		return "unset"
	}
}

var (
	ErrModeRequired       = errors.New("seed mode must be set explicitly")
	ErrOrderIndexRequired = errors.New("record must declare its orderIndex")
	ErrEntityMismatch     = errors.New("record does not belong to the plan entity")
	ErrIncompleteSeed     = errors.New("store does not match the canonical set")
	ErrUnknownSeedEntity  = errors.New("plan targets an unknown entity")
)

// Plan is one seed operation over a single entity.
type Plan struct {
	Name    string
	Entity  models.Entity
	Mode    Mode
	Records []schema.Insert
	// Atomic runs the whole plan in one transaction: a failure leaves the
	// store exactly as it was.
	Atomic bool
}

// RecordError identifies the canonical record a run stopped at.
type RecordError struct {
	Index int
	Key   schema.NaturalKey
	Err   error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("record %d (%s): %v", e.Index+1, e.Key, e.Err)
}

func (e *RecordError) Unwrap() error { return e.Err }

// check rejects a plan before anything is written.
func (p Plan) check() error {
	if p.Mode != ModeFullReconciliation && p.Mode != ModeAdditive {
		return fmt.Errorf("%s: %w", p.Name, ErrModeRequired)
	}
	if !p.Entity.Valid() {
		return fmt.Errorf("%s: %w: %q", p.Name, ErrUnknownSeedEntity, p.Entity)
	}

	ordered := store.Ordered(p.Entity)
	for i, rec := range p.Records {
		if rec.Entity() != p.Entity {
			return &RecordError{Index: i, Key: rec.Key(), Err: fmt.Errorf("%w: %s", ErrEntityMismatch, rec.Entity())}
		}
		if !ordered {
			continue
		}
		if o, ok := rec.(schema.Ordered); !ok || !o.HasOrderIndex() {
			return &RecordError{Index: i, Key: rec.Key(), Err: ErrOrderIndexRequired}
		}
	}
	return nil
}

type Seeder struct {
	store *store.Store
	log   *logger.Logger
}

func NewSeeder(st *store.Store, log *logger.Logger) *Seeder {
	return &Seeder{store: st, log: log}
}

// Run applies plan and verifies the result. The returned report is never nil
// and is filled in even when the run fails part way.
func (s *Seeder) Run(ctx context.Context, plan Plan) (*Report, error) {
	report := &Report{
		RunID:  uuid.NewString(),
		Plan:   plan.Name,
		Entity: plan.Entity,
		Mode:   plan.Mode,
		Atomic: plan.Atomic,
	}

	if err := plan.check(); err != nil {
		report.Err = err
		s.log.Error("SEED", fmt.Sprintf("[%s] %s rejected: %v", report.RunID, plan.Name, err))
		return report, err
	}

	before, err := s.store.Count(ctx, plan.Entity)
	if err != nil {
		report.Err = err
		return report, err
	}
	report.Before = before

	report.Expected = len(plan.Records)
	if plan.Mode == ModeAdditive {
		report.Expected += before
	}

	s.log.LogSeed(report.RunID, plan.Entity.String(), fmt.Sprintf("%s: %d rows before, %d records (%s)", plan.Name, before, len(plan.Records), plan.Mode))

	apply := func(ctx context.Context, st *store.Store) error {
		return s.apply(ctx, st, plan, report)
	}
	if plan.Atomic {
		err = s.store.RunInTx(ctx, apply)
		if err != nil {
			report.RolledBack = true
			report.Deleted, report.Inserted = 0, 0
		}
	} else {
		err = apply(ctx, s.store)
	}
	if err != nil {
		report.Err = err
		s.log.Error("SEED", fmt.Sprintf("[%s] %s stopped: %v", report.RunID, plan.Name, err))
	}

	if verr := s.verify(ctx, plan, report); verr != nil {
		if err == nil {
			report.Err = verr
			return report, verr
		}
		s.log.Warn("SEED", fmt.Sprintf("[%s] verification failed: %v", report.RunID, verr))
	}

	if err == nil {
		s.log.LogSeed(report.RunID, plan.Entity.String(), fmt.Sprintf("%d rows after, expected %d", report.Total, report.Expected))
	}
	return report, err
}

func (s *Seeder) apply(ctx context.Context, st *store.Store, plan Plan, report *Report) error {
	if plan.Mode == ModeFullReconciliation {
		deleted, err := st.DeleteAll(ctx, plan.Entity)
		if err != nil {
			return err
		}
		report.Deleted = deleted
		s.log.LogSeed(report.RunID, plan.Entity.String(), fmt.Sprintf("deleted %d rows", deleted))
	}

	for i, rec := range plan.Records {
		id, err := st.Create(ctx, rec)
		if err != nil {
			return &RecordError{Index: i, Key: rec.Key(), Err: err}
		}
		report.Inserted++
		s.log.Debug("SEED", fmt.Sprintf("[%s] inserted %s #%d: %s", report.RunID, plan.Entity, id, rec.Key()))
	}
	return nil
}

// verify reads the store back after a run.
func (s *Seeder) verify(ctx context.Context, plan Plan, report *Report) error {
	rows, err := s.store.Summaries(ctx, plan.Entity)
	if err != nil {
		return err
	}
	report.Rows = rows
	report.Total = len(rows)

	if store.Grouped(plan.Entity) {
		groups, err := s.store.CountByGroup(ctx, plan.Entity)
		if err != nil {
			return err
		}
		report.Groups = groups
	}

	report.Missing = missingKeys(plan.Records, rows)
	return nil
}

// missingKeys lists canonical keys without a matching row. Duplicate keys
// must be matched by as many rows.
func missingKeys(records []schema.Insert, rows []store.RowSummary) []schema.NaturalKey {
	available := make(map[schema.NaturalKey]int, len(rows))
	for _, row := range rows {
		available[schema.NaturalKey{Label: row.Label, Group: row.Group}]++
	}

	var missing []schema.NaturalKey
	for _, rec := range records {
		key := rec.Key()
		if available[key] > 0 {
			available[key]--
			continue
		}
		missing = append(missing, key)
	}
	return missing
}
