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

// Package model holds the persisted entities of the lot: vehicles and the
// sales recorded against them.
package model

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/motorlot/motorlot/types"

	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"
)

// MinModelYear is the oldest model year the inventory accepts.
const MinModelYear = 1900

var chassisPattern = regexp.MustCompile(`^[a-zA-Z0-9]+$`)

// Vehicle is a car in the lot inventory. The chassis number identifies the
// physical vehicle and never changes once the row exists.
type Vehicle struct {
	bun.BaseModel `bun:"table:vehicles,alias:v"`

	ID            int64           `bun:"id,pk,autoincrement" json:"id"`
	Make          string          `bun:"make,notnull" json:"make"`
	Model         string          `bun:"model,notnull" json:"model"`
	ChassisNumber string          `bun:"chassis_number,notnull" json:"chassis_number"`
	ModelYear     int             `bun:"model_year,notnull" json:"model_year"`
	Price         decimal.Decimal `bun:"price,notnull,type:numeric(12,2)" json:"price" swaggertype:"string"`

	Sales []*Sale `bun:"rel:has-many,join:id=vehicle_id" json:"sales,omitempty"`
}

// Validate reports every invalid field at once.
func (v *Vehicle) Validate() error {
	e := &types.ValidationError{}
	if strings.TrimSpace(v.Make) == "" {
		e.Add("make", "must not be empty")
	}
	if strings.TrimSpace(v.Model) == "" {
		e.Add("model", "must not be empty")
	}
	if v.ChassisNumber == "" {
		e.Add("chassis_number", "must not be empty")
	} else if !chassisPattern.MatchString(v.ChassisNumber) {
		e.Add("chassis_number", "must contain only letters and digits")
	}
	if year := time.Now().Year(); v.ModelYear < MinModelYear || v.ModelYear > year {
		e.Add("model_year", fmt.Sprintf("must be between %d and %d", MinModelYear, year))
	}
	if v.Price.IsNegative() {
		e.Add("price", "must not be negative")
	}
	return e.ErrorOrNil()
}
