// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"
)

const slotsTable = "kv_slots"

// buildGetSlotQuery selects the value of one slot.
func buildGetSlotQuery(key string) (string, []any, error) {
	return sq.Select("value").
		From(slotsTable).
		Where(sq.Eq{"key": key}).
		ToSql()
}

// buildUpsertSlotQuery inserts a slot or overwrites its value.
func buildUpsertSlotQuery(key, value string) (string, []any, error) {
	return sq.Insert(slotsTable).
		Columns("key", "value", "updated_at").
		Values(key, value, sq.Expr("CURRENT_TIMESTAMP")).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
}
