package seed

import (
	"context"
	"fmt"
	"io"
	"time"

	"ms-content/internal/logger"
	"ms-content/internal/store"
)

const scriptBusyTimeout = 5 * time.Second

// RunScript opens the store at path, runs plans in order and prints each
// report to out. It stops at the first failed or incomplete plan. The store
// is closed on every path.
func RunScript(ctx context.Context, out io.Writer, log *logger.Logger, path string, plans ...Plan) (err error) {
	st, err := store.Open(ctx, store.Options{Path: path, BusyTimeout: scriptBusyTimeout, Logger: log})
	if err != nil {
		return err
	}
	defer func() {
		if cerr := st.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close store: %w", cerr)
		}
	}()

	seeder := NewSeeder(st, log)
	for _, plan := range plans {
		report, runErr := seeder.Run(ctx, plan)
		if rerr := report.Render(out); rerr != nil {
			return fmt.Errorf("render %s report: %w", plan.Name, rerr)
		}
		if runErr != nil {
			return fmt.Errorf("%s: %w", plan.Name, runErr)
		}
		if !report.Complete() {
			return fmt.Errorf("%s: %w: %d of %d rows", plan.Name, ErrIncompleteSeed, report.Total, report.Expected)
		}
	}
	return nil
}

// DiffScript prints the current-vs-target diff of each plan without writing.
// It returns ErrIncompleteSeed when any plan is out of sync.
func DiffScript(ctx context.Context, out io.Writer, log *logger.Logger, path string, plans ...Plan) (err error) {
	st, err := store.Open(ctx, store.Options{Path: path, BusyTimeout: scriptBusyTimeout, Logger: log})
	if err != nil {
		return err
	}
	defer func() {
		if cerr := st.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close store: %w", cerr)
		}
	}()

	seeder := NewSeeder(st, log)
	outOfSync := 0
	for _, plan := range plans {
		d, err := seeder.Diff(ctx, plan)
		if err != nil {
			return fmt.Errorf("%s: %w", plan.Name, err)
		}
		if err := d.Render(out); err != nil {
			return fmt.Errorf("render %s diff: %w", plan.Name, err)
		}
		if !d.InSync() {
			outOfSync++
		}
	}

	if outOfSync > 0 {
		return fmt.Errorf("%w: %d of %d plans differ", ErrIncompleteSeed, outOfSync, len(plans))
	}
	return nil
}
