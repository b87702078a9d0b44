// Package store is the content store: one SQLite file holding one table per
// content entity, accessed through bun.
//
// A *Store is owned by a single process invocation. Open applies the embedded
// migrations and checks that every entity known to the schema has a table;
// Close releases the file and must run on every exit path.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"ms-content/internal/database/migrations"
	"ms-content/internal/logger"
	"ms-content/internal/models"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
)

var (
	// ErrStoreAccess wraps failures to open, lock or migrate the store file.
	ErrStoreAccess = errors.New("content store unavailable")
	// ErrUnknownEntity is a configuration error: the schema and the store
	// disagree on an entity name.
	ErrUnknownEntity = errors.New("unknown content entity")
	// ErrNotFound is returned when a singleton record has not been seeded.
	ErrNotFound = errors.New("content not found")
	// ErrNotGrouped is returned by CountByGroup for entities without a
	// grouping column.
	ErrNotGrouped = errors.New("entity has no grouping column")
)

// MemoryPath opens a private in-memory store.
const MemoryPath = ":memory:"

type Options struct {
	Path        string
	BusyTimeout time.Duration
	Migrations  migrations.MigrateOptions
	Logger      *logger.Logger
}

type Store struct {
	db   *bun.DB
	idb  bun.IDB
	path string
	log  *logger.Logger
	inTx bool
}

// Open opens (creating if needed) the store file at opts.Path. Calling it
// again on the same path is safe: migrations are idempotent.
func Open(ctx context.Context, opts Options) (*Store, error) {
	if opts.Path == "" {
		opts.Path = MemoryPath
	}
	if opts.Migrations.MigrationsTable == "" {
		opts.Migrations = migrations.DefaultOptions()
	}

	if !isMemory(opts.Path) {
		if err := os.MkdirAll(filepath.Dir(opts.Path), 0755); err != nil {
			return nil, fmt.Errorf("%w: create directory for %s: %w", ErrStoreAccess, opts.Path, err)
		}
	}

	sqldb, err := sql.Open(sqliteshim.ShimName, opts.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %w", ErrStoreAccess, opts.Path, err)
	}
	// One writer, and a single shared connection keeps :memory: databases alive.
	sqldb.SetMaxOpenConns(1)

	if err := prepare(ctx, sqldb, opts); err != nil {
		sqldb.Close()
		return nil, err
	}

	s := &Store{
		db:   bun.NewDB(sqldb, sqlitedialect.New()),
		path: opts.Path,
		log:  opts.Logger,
	}
	s.idb = s.db

	s.log.LogDatabase("OPEN", opts.Path, "content store ready")
	return s, nil
}

func prepare(ctx context.Context, sqldb *sql.DB, opts Options) error {
	if err := sqldb.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: connect %s: %w", ErrStoreAccess, opts.Path, err)
	}

	if opts.BusyTimeout > 0 {
		pragma := fmt.Sprintf("PRAGMA busy_timeout = %d", opts.BusyTimeout.Milliseconds())
		if _, err := sqldb.ExecContext(ctx, pragma); err != nil {
			return fmt.Errorf("%w: set busy timeout: %w", ErrStoreAccess, err)
		}
	}

	if opts.Migrations.AutoMigrate {
		runner := migrations.NewRunner(sqldb, opts.Migrations)
		if err := runner.RunMigrations(); err != nil {
			return fmt.Errorf("%w: migrate %s: %w", ErrStoreAccess, opts.Path, err)
		}
	}

	return checkTables(ctx, sqldb)
}

// checkTables fails when an entity declared by the schema has no table.
func checkTables(ctx context.Context, sqldb *sql.DB) error {
	for _, entity := range models.Entities {
		var name string
		err := sqldb.QueryRowContext(ctx,
			"SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?", entity.String()).Scan(&name)
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%w: table %q is missing", ErrUnknownEntity, entity)
		}
		if err != nil {
			return fmt.Errorf("%w: inspect table %q: %w", ErrStoreAccess, entity, err)
		}
	}
	return nil
}

func isMemory(path string) bool {
	return path == MemoryPath || strings.HasPrefix(path, "file::memory:")
}

// Path is the file the store was opened from.
func (s *Store) Path() string { return s.path }

// DataVersion returns SQLite's data_version for the store's connection. The
// value changes whenever another connection, such as a seed script, commits
// to the same file.
func (s *Store) DataVersion(ctx context.Context) (int64, error) {
	var version int64
	if err := s.idb.NewRaw("PRAGMA data_version").Scan(ctx, &version); err != nil {
		return 0, fmt.Errorf("%w: read data_version: %w", ErrStoreAccess, err)
	}
	return version, nil
}

// RunInTx runs fn inside one SQLite transaction. The *Store passed to fn is
// bound to the transaction; nested calls reuse it.
func (s *Store) RunInTx(ctx context.Context, fn func(ctx context.Context, tx *Store) error) error {
	if s.inTx {
		return fn(ctx, s)
	}
	return s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		return fn(ctx, &Store{db: s.db, idb: tx, path: s.path, log: s.log, inTx: true})
	})
}

// Close releases the store file. It is a no-op on a transaction-bound store.
func (s *Store) Close() error {
	if s.inTx {
		return nil
	}
	s.log.LogDatabase("CLOSE", s.path, "content store closed")
	return s.db.Close()
}
