package store

import (
	"context"
	"fmt"
	"reflect"

	"ms-content/internal/models"

	"github.com/uptrace/bun"
)

// ListOptions selects and orders rows returned by List.
type ListOptions struct {
	// Ordered sorts by orderIndex ascending, ties by id, for entities that
	// carry an orderIndex. Other entities are always returned by id.
	Ordered bool
	// ActiveOnly drops rows whose isActive flag is false. It is ignored for
	// entities without the flag.
	ActiveOnly bool
}

// GroupCount is the number of rows sharing one grouping value, such as the
// programs of one category.
type GroupCount struct {
	Group string `bun:"grp" json:"group"`
	Count int    `bun:"total" json:"count"`
}

// RowSummary is the (id, label, group, orderIndex, active) tuple printed by
// seed reports.
type RowSummary struct {
	ID         int64  `bun:"id" json:"id"`
	Label      string `bun:"label" json:"label"`
	Group      string `bun:"grp" json:"group"`
	OrderIndex int    `bun:"order_index" json:"orderIndex"`
	Active     bool   `bun:"active" json:"active"`
}

// List loads rows of entity into dest, which must point to a slice of the
// entity's model type.
func (s *Store) List(ctx context.Context, entity models.Entity, opts ListOptions, dest any) error {
	info, err := lookup(entity)
	if err != nil {
		return err
	}

	want := reflect.PointerTo(reflect.SliceOf(info.modelType))
	if reflect.TypeOf(dest) != want {
		return fmt.Errorf("%w: cannot list %s into %T", ErrUnknownEntity, info.table, dest)
	}

	q := s.idb.NewSelect().Model(dest)
	if opts.ActiveOnly && info.hasActive {
		q = q.Where("? = ?", bun.Ident("is_active"), true)
	}
	q = orderRows(q, info, opts.Ordered)

	if err := q.Scan(ctx); err != nil {
		return fmt.Errorf("list %s: %w", info.table, err)
	}
	return nil
}

// Count returns the number of rows of entity.
func (s *Store) Count(ctx context.Context, entity models.Entity) (int, error) {
	info, err := lookup(entity)
	if err != nil {
		return 0, err
	}

	n, err := s.idb.NewSelect().TableExpr("?", bun.Ident(info.table)).Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", info.table, err)
	}
	return n, nil
}

// CountByGroup counts rows per grouping value, sorted by group. The counts
// sum to Count.
func (s *Store) CountByGroup(ctx context.Context, entity models.Entity) ([]GroupCount, error) {
	info, err := lookup(entity)
	if err != nil {
		return nil, err
	}
	if info.groupColumn == "" {
		return nil, fmt.Errorf("%w: %s", ErrNotGrouped, info.table)
	}

	groups := make([]GroupCount, 0)
	err = s.idb.NewSelect().
		TableExpr("?", bun.Ident(info.table)).
		ColumnExpr("COALESCE(?, '') AS grp", bun.Ident(info.groupColumn)).
		ColumnExpr("count(*) AS total").
		GroupExpr("grp").
		OrderExpr("grp ASC").
		Scan(ctx, &groups)
	if err != nil {
		return nil, fmt.Errorf("count %s by %s: %w", info.table, info.groupColumn, err)
	}
	return nonNil(groups), nil
}

// Summaries returns one RowSummary per row. Ordered entities are sorted by
// orderIndex then id, others by id.
func (s *Store) Summaries(ctx context.Context, entity models.Entity) ([]RowSummary, error) {
	info, err := lookup(entity)
	if err != nil {
		return nil, err
	}

	q := s.idb.NewSelect().
		TableExpr("?", bun.Ident(info.table)).
		Column("id").
		ColumnExpr("? AS label", bun.Ident(info.labelColumn))

	if info.groupColumn != "" {
		q = q.ColumnExpr("COALESCE(?, '') AS grp", bun.Ident(info.groupColumn))
	} else {
		q = q.ColumnExpr("'' AS grp")
	}
	if info.ordered {
		q = q.Column("order_index")
	} else {
		q = q.ColumnExpr("0 AS order_index")
	}
	if info.hasActive {
		q = q.ColumnExpr("? AS active", bun.Ident("is_active"))
	} else {
		q = q.ColumnExpr("1 AS active")
	}

	rows := make([]RowSummary, 0)
	if err := orderRows(q, info, true).Scan(ctx, &rows); err != nil {
		return nil, fmt.Errorf("summarize %s: %w", info.table, err)
	}
	return nonNil(rows), nil
}

func orderRows(q *bun.SelectQuery, info tableInfo, ordered bool) *bun.SelectQuery {
	if ordered && info.ordered {
		q = q.OrderExpr("? ASC", bun.Ident("order_index"))
	}
	return q.OrderExpr("? ASC", bun.Ident("id"))
}
