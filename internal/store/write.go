package store

import (
	"context"
	"fmt"
	"reflect"

	"ms-content/internal/models"
	"ms-content/internal/schema"

	"github.com/uptrace/bun"
)

// Create validates in and inserts it, returning the assigned id. Nothing is
// written when validation fails.
func (s *Store) Create(ctx context.Context, in schema.Insert) (int64, error) {
	info, err := lookup(in.Entity())
	if err != nil {
		return 0, err
	}

	if err := in.Validate(); err != nil {
		return 0, err
	}

	model := in.Model()
	if t := reflect.TypeOf(model); t.Kind() != reflect.Pointer || t.Elem() != info.modelType {
		return 0, fmt.Errorf("%w: %T does not belong to %s", ErrUnknownEntity, model, info.table)
	}

	if _, err := s.idb.NewInsert().Model(model).Exec(ctx); err != nil {
		return 0, fmt.Errorf("insert into %s: %w", info.table, err)
	}
	return model.GetID(), nil
}

// DeleteAll removes every row of entity and returns how many were removed.
// Deleting from an empty table is a no-op.
func (s *Store) DeleteAll(ctx context.Context, entity models.Entity) (int64, error) {
	info, err := lookup(entity)
	if err != nil {
		return 0, err
	}

	res, err := s.idb.NewDelete().
		TableExpr("?", bun.Ident(info.table)).
		Where("1 = 1").
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("delete from %s: %w", info.table, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete from %s: %w", info.table, err)
	}
	return n, nil
}
