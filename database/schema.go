/*
 * Copyright 2026 motorlot.
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package database

import (
	"context"
	"fmt"

	"github.com/motorlot/motorlot/model"

	"github.com/uptrace/bun"
)

// ForeignKeyConstraint describes a foreign key relationship between tables.
type ForeignKeyConstraint struct {
	Table           string
	Column          string
	ReferenceTable  string
	ReferenceColumn string
	OnDelete        string // CASCADE, RESTRICT, SET NULL, NO ACTION
	OnUpdate        string // CASCADE, RESTRICT, SET NULL, NO ACTION
}

// InlineClause renders the constraint for CreateTableQuery.ForeignKey, which
// prefixes FOREIGN KEY itself. SQLite cannot add constraints to existing
// tables, so every constraint rides along at table creation.
func (fk *ForeignKeyConstraint) InlineClause() (string, []interface{}) {
	clause := "(?) REFERENCES ? (?)"
	args := []interface{}{
		bun.Ident(fk.Column),
		bun.Ident(fk.ReferenceTable),
		bun.Ident(fk.ReferenceColumn),
	}
	if fk.OnDelete != "" {
		clause += " ON DELETE " + fk.OnDelete
	}
	if fk.OnUpdate != "" {
		clause += " ON UPDATE " + fk.OnUpdate
	}
	return clause, args
}

// schemaForeignKeys lists the constraints of the lot schema. A sale may not
// outlive its vehicle, so vehicle deletion is restricted.
func schemaForeignKeys() []ForeignKeyConstraint {
	return []ForeignKeyConstraint{
		{
			Table:           "sales",
			Column:          "vehicle_id",
			ReferenceTable:  "vehicles",
			ReferenceColumn: "id",
			OnDelete:        "RESTRICT",
		},
	}
}

// EnsureSchema creates the inventory tables, the foreign key between them,
// and the unique chassis index when they do not exist yet. Safe to run on
// every startup.
func EnsureSchema(ctx context.Context, db *bun.DB) error {
	if _, err := db.NewCreateTable().
		Model((*model.Vehicle)(nil)).
		IfNotExists().
		Exec(ctx); err != nil {
		return fmt.Errorf("create vehicles table: %w", err)
	}

	salesTable := db.NewCreateTable().
		Model((*model.Sale)(nil)).
		IfNotExists()
	for _, fk := range schemaForeignKeys() {
		if fk.Table == "sales" {
			clause, args := fk.InlineClause()
			salesTable = salesTable.ForeignKey(clause, args...)
		}
	}
	if _, err := salesTable.Exec(ctx); err != nil {
		return fmt.Errorf("create sales table: %w", err)
	}

	// MySQL has no CREATE INDEX IF NOT EXISTS, so an already-existing index
	// is detected from the error instead.
	if _, err := db.NewCreateIndex().
		Model((*model.Vehicle)(nil)).
		Unique().
		Index("uq_vehicles_chassis_number").
		Column("chassis_number").
		Exec(ctx); err != nil {
		if is, code := IsSqlError(err); !is || (code != ExistIndexErr && code != ExistTableErr) {
			return fmt.Errorf("create chassis index: %w", err)
		}
	}
	return nil
}
