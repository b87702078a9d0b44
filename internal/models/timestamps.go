package models

import (
	"time"

	"github.com/uptrace/bun"
)

// stampTimes fills created/updated timestamps on insert and refreshes the
// updated timestamp on update. Values already set by the caller are kept on
// insert so fixtures can pin them.
func stampTimes(query bun.Query, createdAt, updatedAt *time.Time) {
	now := time.Now().UTC()
	switch query.(type) {
	case *bun.InsertQuery:
		if createdAt.IsZero() {
			*createdAt = now
		}
		if updatedAt.IsZero() {
			*updatedAt = *createdAt
		}
	case *bun.UpdateQuery:
		*updatedAt = now
	}
}

func stampUpdated(query bun.Query, updatedAt *time.Time) {
	switch query.(type) {
	case *bun.InsertQuery:
		if updatedAt.IsZero() {
			*updatedAt = time.Now().UTC()
		}
	case *bun.UpdateQuery:
		*updatedAt = time.Now().UTC()
	}
}
