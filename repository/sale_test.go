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

package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/motorlot/motorlot/model"
	"github.com/motorlot/motorlot/types"

	"github.com/shopspring/decimal"
)

func TestSaleListByVehicle(t *testing.T) {
	db := newTestDB(t)
	vehicles := NewVehicleRepository(db)
	sales := NewSaleRepository(db)
	ctx := context.Background()

	lot := seedVehicle(t, vehicles, "LBV001")
	other := seedVehicle(t, vehicles, "LBV002")

	day := types.NewDate(2024, time.April, 2)
	late := seedSale(t, sales, lot.ID, "Late Buyer", 9000, types.NewDate(2024, time.May, 20))
	tieA := seedSale(t, sales, lot.ID, "Tie A", 8000, day)
	tieB := seedSale(t, sales, lot.ID, "Tie B", 8100, day)
	seedSale(t, sales, other.ID, "Elsewhere", 7000, day)

	got, err := sales.ListByVehicle(ctx, lot.ID)
	if err != nil {
		t.Fatalf("list by vehicle: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 sales, got %d", len(got))
	}
	// Same-day sales fall back to insertion order.
	if got[0].ID != tieA.ID || got[1].ID != tieB.ID || got[2].ID != late.ID {
		t.Fatalf("wrong order: %d %d %d", got[0].ID, got[1].ID, got[2].ID)
	}

	empty, err := sales.ListByVehicle(ctx, 404)
	if err != nil {
		t.Fatalf("list by missing vehicle: %v", err)
	}
	if empty == nil || len(empty) != 0 {
		t.Fatalf("expected empty non-nil slice, got %+v", empty)
	}
}

func TestSaleCountByVehicle(t *testing.T) {
	db := newTestDB(t)
	vehicles := NewVehicleRepository(db)
	sales := NewSaleRepository(db)
	ctx := context.Background()

	lot := seedVehicle(t, vehicles, "CBV001")
	bare := seedVehicle(t, vehicles, "CBV002")
	seedSale(t, sales, lot.ID, "One", 5000, types.NewDate(2023, time.July, 1))
	seedSale(t, sales, lot.ID, "Two", 5100, types.NewDate(2023, time.August, 1))

	n, err := sales.CountByVehicle(ctx, lot.ID)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2, got %d", n)
	}
	n, err = sales.CountByVehicle(ctx, bare.ID)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 0 {
		t.Fatalf("expected 0, got %d", n)
	}
}

func TestSaleSearchByBuyer(t *testing.T) {
	db := newTestDB(t)
	vehicles := NewVehicleRepository(db)
	sales := NewSaleRepository(db)
	ctx := context.Background()

	lot := seedVehicle(t, vehicles, "SBB001")
	smith := seedSale(t, sales, lot.ID, "Alice Smith", 6000, types.NewDate(2024, time.January, 3))
	smythe := seedSale(t, sales, lot.ID, "Bob Smythe", 6100, types.NewDate(2024, time.January, 4))
	seedSale(t, sales, lot.ID, "Carol Jones", 6200, types.NewDate(2024, time.January, 5))

	search, err := types.NewTextSearch("SMIT")
	if err != nil {
		t.Fatalf("text search: %v", err)
	}
	got, err := sales.SearchByBuyer(ctx, search, nil)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(got) != 1 || got[0].ID != smith.ID {
		t.Fatalf("case-insensitive buyer match failed: %+v", got)
	}

	search, err = types.NewTextSearch("smyth")
	if err != nil {
		t.Fatalf("text search: %v", err)
	}
	got, err = sales.SearchByBuyer(ctx, search, nil)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(got) != 1 || got[0].ID != smythe.ID {
		t.Fatalf("substring buyer match failed: %+v", got)
	}
}

func TestSaleFilterByPrice(t *testing.T) {
	db := newTestDB(t)
	vehicles := NewVehicleRepository(db)
	sales := NewSaleRepository(db)
	ctx := context.Background()

	lot := seedVehicle(t, vehicles, "FBP001")
	day := types.NewDate(2024, time.June, 1)
	cheap := seedSale(t, sales, lot.ID, "Cheap", 4000, day)
	mid := seedSale(t, sales, lot.ID, "Mid", 5500, day)
	dear := seedSale(t, sales, lot.ID, "Dear", 9000, day)

	between, err := types.NewPriceRange(decimal.NewFromInt(4000), decimal.NewFromInt(5500))
	if err != nil {
		t.Fatalf("price range: %v", err)
	}
	got, err := sales.FilterByPrice(ctx, between, nil)
	if err != nil {
		t.Fatalf("filter: %v", err)
	}
	// Both bounds are inclusive.
	if len(got) != 2 || got[0].ID != cheap.ID || got[1].ID != mid.ID {
		t.Fatalf("inclusive range failed: %+v", got)
	}

	got, err = sales.FilterByPrice(ctx, types.NewPriceRangeFrom(decimal.NewFromInt(5500)), nil)
	if err != nil {
		t.Fatalf("filter from: %v", err)
	}
	if len(got) != 2 || got[0].ID != mid.ID || got[1].ID != dear.ID {
		t.Fatalf("lower bound only failed: %+v", got)
	}

	got, err = sales.FilterByPrice(ctx, types.NewPriceRangeTo(decimal.NewFromInt(4500)), nil)
	if err != nil {
		t.Fatalf("filter to: %v", err)
	}
	if len(got) != 1 || got[0].ID != cheap.ID {
		t.Fatalf("upper bound only failed: %+v", got)
	}

	if _, err := sales.FilterByPrice(ctx, nil, nil); !types.IsValidation(err) {
		t.Fatalf("nil range should be rejected, got %v", err)
	}
}

func TestSaleFilterByDate(t *testing.T) {
	db := newTestDB(t)
	vehicles := NewVehicleRepository(db)
	sales := NewSaleRepository(db)
	ctx := context.Background()

	lot := seedVehicle(t, vehicles, "FBD001")
	jan := seedSale(t, sales, lot.ID, "January", 5000, types.NewDate(2024, time.January, 15))
	mar := seedSale(t, sales, lot.ID, "March", 5100, types.NewDate(2024, time.March, 15))
	jun := seedSale(t, sales, lot.ID, "June", 5200, types.NewDate(2024, time.June, 15))

	between, err := types.NewDateRange(types.NewDate(2024, time.January, 15), types.NewDate(2024, time.March, 15))
	if err != nil {
		t.Fatalf("date range: %v", err)
	}
	got, err := sales.FilterByDate(ctx, between, nil)
	if err != nil {
		t.Fatalf("filter: %v", err)
	}
	if len(got) != 2 || got[0].ID != jan.ID || got[1].ID != mar.ID {
		t.Fatalf("inclusive range failed: %+v", got)
	}

	got, err = sales.FilterByDate(ctx, types.NewDateRangeFrom(types.NewDate(2024, time.April, 1)), nil)
	if err != nil {
		t.Fatalf("filter from: %v", err)
	}
	if len(got) != 1 || got[0].ID != jun.ID {
		t.Fatalf("lower bound only failed: %+v", got)
	}

	got, err = sales.FilterByDate(ctx, types.NewDateRangeTo(types.NewDate(2024, time.February, 1)), nil)
	if err != nil {
		t.Fatalf("filter to: %v", err)
	}
	if len(got) != 1 || got[0].ID != jan.ID {
		t.Fatalf("upper bound only failed: %+v", got)
	}

	if _, err := sales.FilterByDate(ctx, nil, nil); !types.IsValidation(err) {
		t.Fatalf("nil range should be rejected, got %v", err)
	}
}

func TestSaleGetWithVehicle(t *testing.T) {
	db := newTestDB(t)
	vehicles := NewVehicleRepository(db)
	sales := NewSaleRepository(db)
	ctx := context.Background()

	lot := seedVehicle(t, vehicles, "GWV001")
	s := seedSale(t, sales, lot.ID, "Buyer", 7500, types.NewDate(2024, time.February, 2))

	got, err := sales.GetWithVehicle(ctx, s.ID)
	if err != nil {
		t.Fatalf("get with vehicle: %v", err)
	}
	if got.Vehicle == nil {
		t.Fatal("vehicle relation not loaded")
	}
	if got.Vehicle.ID != lot.ID || got.Vehicle.ChassisNumber != "GWV001" {
		t.Fatalf("wrong vehicle attached: %+v", got.Vehicle)
	}

	_, err = sales.GetWithVehicle(ctx, 404)
	if !types.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestSaleCreateOrphan(t *testing.T) {
	sales := NewSaleRepository(newTestDB(t))
	ctx := context.Background()

	s := &model.Sale{
		VehicleID: 9999,
		BuyerName: "Orphan Buyer",
		Price:     decimal.NewFromInt(5000),
		SaleDate:  types.NewDate(2024, time.March, 3),
	}
	err := sales.Create(ctx, s)
	var ri *types.ReferentialIntegrityError
	if !errors.As(err, &ri) {
		t.Fatalf("expected referential integrity error, got %v", err)
	}
	if ri.Entity != "sale" {
		t.Fatalf("expected sale entity, got %s", ri.Entity)
	}
}
