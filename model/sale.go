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

package model

import (
	"strings"

	"github.com/motorlot/motorlot/types"

	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"
)

// Sale records the sale of one vehicle to one buyer on a calendar date.
type Sale struct {
	bun.BaseModel `bun:"table:sales,alias:s"`

	ID        int64           `bun:"id,pk,autoincrement" json:"id"`
	VehicleID int64           `bun:"vehicle_id,notnull" json:"vehicle_id"`
	BuyerName string          `bun:"buyer_name,notnull" json:"buyer_name"`
	Price     decimal.Decimal `bun:"price,notnull,type:numeric(12,2)" json:"price" swaggertype:"string"`
	SaleDate  types.Date      `bun:"sale_date,notnull,type:date" json:"sale_date" swaggertype:"string"`

	Vehicle *Vehicle `bun:"rel:belongs-to,join:vehicle_id=id" json:"vehicle,omitempty"`
}

// Validate reports every invalid field at once. Whether the referenced
// vehicle exists is checked against storage, not here.
func (s *Sale) Validate() error {
	e := &types.ValidationError{}
	if s.VehicleID <= 0 {
		e.Add("vehicle_id", "must reference a vehicle")
	}
	if strings.TrimSpace(s.BuyerName) == "" {
		e.Add("buyer_name", "must not be empty")
	}
	if s.Price.IsNegative() {
		e.Add("price", "must not be negative")
	}
	if s.SaleDate.IsZero() {
		e.Add("sale_date", "must be set")
	} else if s.SaleDate.After(types.Today()) {
		e.Add("sale_date", "must not be in the future")
	}
	return e.ErrorOrNil()
}
