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
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/motorlot/motorlot/database"
	"github.com/motorlot/motorlot/model"
	"github.com/motorlot/motorlot/types"

	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"
)

// newTestDB connects to a named in-memory SQLite database with the schema
// applied. Each test gets its own database.
func newTestDB(t *testing.T) *bun.DB {
	t.Helper()
	database.EnableBunSqlSilent(true)
	t.Cleanup(func() { database.EnableBunSqlSilent(false) })

	cfg := database.DefaultConnectionConfig()
	cfg.Type = "sqlite"
	cfg.DBName = fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	cfg.HealthCheckInterval = 0

	m := database.NewDatabaseManager(cfg)
	ctx := context.Background()
	if err := m.Connect(ctx); err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(func() { _ = m.Disconnect() })

	db := m.GetDB()
	if err := database.EnsureSchema(ctx, db); err != nil {
		t.Fatalf("ensure schema: %v", err)
	}
	return db
}

func newVehicle(chassis string) *model.Vehicle {
	return &model.Vehicle{
		Make:          "Toyota",
		Model:         "Corolla",
		ChassisNumber: chassis,
		ModelYear:     2021,
		Price:         decimal.NewFromInt(18000),
	}
}

func seedVehicle(t *testing.T, repo VehicleRepository, chassis string) *model.Vehicle {
	t.Helper()
	v := newVehicle(chassis)
	if err := repo.Create(context.Background(), v); err != nil {
		t.Fatalf("seed vehicle %s: %v", chassis, err)
	}
	return v
}

func seedSale(t *testing.T, repo SaleRepository, vehicleID int64, buyer string, price int64, date types.Date) *model.Sale {
	t.Helper()
	s := &model.Sale{
		VehicleID: vehicleID,
		BuyerName: buyer,
		Price:     decimal.NewFromInt(price),
		SaleDate:  date,
	}
	if err := repo.Create(context.Background(), s); err != nil {
		t.Fatalf("seed sale for %s: %v", buyer, err)
	}
	return s
}

func TestRepositoryCreateAndGet(t *testing.T) {
	repo := NewVehicleRepository(newTestDB(t))
	ctx := context.Background()

	v := newVehicle("CRT001")
	if err := repo.Create(ctx, v); err != nil {
		t.Fatalf("create: %v", err)
	}
	if v.ID == 0 {
		t.Fatal("create should populate the id")
	}

	got, err := repo.GetByID(ctx, v.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ChassisNumber != "CRT001" || got.Make != "Toyota" {
		t.Fatalf("unexpected row: %+v", got)
	}
	if !got.Price.Equal(decimal.NewFromInt(18000)) {
		t.Fatalf("price did not round-trip: %s", got.Price)
	}
}

func TestRepositoryGetMissing(t *testing.T) {
	repo := NewVehicleRepository(newTestDB(t))
	_, err := repo.GetByID(context.Background(), 404)
	if !types.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestRepositoryCreateValidates(t *testing.T) {
	repo := NewVehicleRepository(newTestDB(t))
	ctx := context.Background()

	bad := newVehicle("BAD01")
	bad.Make = ""
	if err := repo.Create(ctx, bad); !types.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if n, _ := repo.Count(ctx); n != 0 {
		t.Fatalf("invalid entity must not reach storage, count=%d", n)
	}
}

func TestRepositoryCreateDuplicateChassis(t *testing.T) {
	repo := NewVehicleRepository(newTestDB(t))
	ctx := context.Background()

	seedVehicle(t, repo, "DUP001")
	dup := newVehicle("DUP001")
	err := repo.Create(ctx, dup)
	if !types.IsConflict(err) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestRepositoryList(t *testing.T) {
	repo := NewVehicleRepository(newTestDB(t))
	ctx := context.Background()

	first := seedVehicle(t, repo, "LSTA1")
	second := seedVehicle(t, repo, "LSTB2")
	third := seedVehicle(t, repo, "LSTC3")

	all, err := repo.List(ctx, nil)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(all))
	}
	if all[0].ID != first.ID || all[1].ID != second.ID || all[2].ID != third.ID {
		t.Fatal("list should be ordered by id ascending")
	}

	page, err := types.NewPageRequest(1, 1)
	if err != nil {
		t.Fatalf("page request: %v", err)
	}
	window, err := repo.List(ctx, page)
	if err != nil {
		t.Fatalf("list window: %v", err)
	}
	if len(window) != 1 || window[0].ID != second.ID {
		t.Fatalf("expected only the second row, got %+v", window)
	}

	far, _ := types.NewPageRequest(100, 10)
	empty, err := repo.List(ctx, far)
	if err != nil {
		t.Fatalf("list past the end: %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("expected empty page, got %d rows", len(empty))
	}
}

func TestRepositoryListPagesConcatenate(t *testing.T) {
	repo := NewVehicleRepository(newTestDB(t))
	ctx := context.Background()

	for i := 0; i < 6; i++ {
		seedVehicle(t, repo, fmt.Sprintf("CAT%03d", i))
	}

	firstPage, _ := types.NewPageRequest(0, 3)
	secondPage, _ := types.NewPageRequest(3, 3)
	bothPages, _ := types.NewPageRequest(0, 6)

	first, err := repo.List(ctx, firstPage)
	if err != nil {
		t.Fatalf("first page: %v", err)
	}
	second, err := repo.List(ctx, secondPage)
	if err != nil {
		t.Fatalf("second page: %v", err)
	}
	whole, err := repo.List(ctx, bothPages)
	if err != nil {
		t.Fatalf("whole window: %v", err)
	}

	joined := append(append([]*model.Vehicle{}, first...), second...)
	if len(joined) != len(whole) {
		t.Fatalf("expected %d rows, got %d", len(whole), len(joined))
	}
	for i := range whole {
		if joined[i].ID != whole[i].ID {
			t.Fatalf("row %d differs: %d != %d", i, joined[i].ID, whole[i].ID)
		}
	}
}

func TestRepositoryPage(t *testing.T) {
	repo := NewVehicleRepository(newTestDB(t))
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		seedVehicle(t, repo, fmt.Sprintf("PGE%03d", i))
	}

	page, err := types.NewPageRequest(2, 2)
	if err != nil {
		t.Fatalf("page request: %v", err)
	}
	result, err := repo.Page(ctx, page)
	if err != nil {
		t.Fatalf("page: %v", err)
	}
	if result.Total != 5 {
		t.Fatalf("expected total 5, got %d", result.Total)
	}
	if len(result.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(result.Items))
	}
	if result.Skip != 2 || result.Limit != 2 {
		t.Fatalf("window not echoed: %+v", result)
	}
}

func TestRepositoryPageEmpty(t *testing.T) {
	repo := NewVehicleRepository(newTestDB(t))
	result, err := repo.Page(context.Background(), nil)
	if err != nil {
		t.Fatalf("page: %v", err)
	}
	if result.Total != 0 {
		t.Fatalf("expected total 0, got %d", result.Total)
	}
	if result.Items == nil || len(result.Items) != 0 {
		t.Fatal("items should be an empty non-nil slice")
	}
}

func TestRepositoryUpdate(t *testing.T) {
	repo := NewVehicleRepository(newTestDB(t))
	ctx := context.Background()

	v := seedVehicle(t, repo, "UPD001")
	v.Model = "Camry"
	v.Price = decimal.NewFromInt(21500)
	if err := repo.Update(ctx, v.ID, v); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, err := repo.GetByID(ctx, v.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Model != "Camry" || !got.Price.Equal(decimal.NewFromInt(21500)) {
		t.Fatalf("update not persisted: %+v", got)
	}
}

func TestRepositoryUpdateUnchangedValues(t *testing.T) {
	repo := NewVehicleRepository(newTestDB(t))
	ctx := context.Background()

	// Writing identical values must still report the row as found.
	v := seedVehicle(t, repo, "UPD002")
	if err := repo.Update(ctx, v.ID, v); err != nil {
		t.Fatalf("no-op update: %v", err)
	}
}

func TestRepositoryUpdateMissing(t *testing.T) {
	repo := NewVehicleRepository(newTestDB(t))
	err := repo.Update(context.Background(), 404, newVehicle("UPD404"))
	if !types.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestRepositoryDelete(t *testing.T) {
	repo := NewVehicleRepository(newTestDB(t))
	ctx := context.Background()

	v := seedVehicle(t, repo, "DEL001")
	if err := repo.Delete(ctx, v.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.GetByID(ctx, v.ID); !types.IsNotFound(err) {
		t.Fatalf("row should be gone, got %v", err)
	}
	if err := repo.Delete(ctx, v.ID); !types.IsNotFound(err) {
		t.Fatalf("second delete should be not found, got %v", err)
	}
}

func TestRepositoryCountAndExists(t *testing.T) {
	repo := NewVehicleRepository(newTestDB(t))
	ctx := context.Background()

	v := seedVehicle(t, repo, "CNT001")
	seedVehicle(t, repo, "CNT002")

	n, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2, got %d", n)
	}

	ok, err := repo.Exists(ctx, v.ID)
	if err != nil {
		t.Fatalf("exists: %v", err)
	}
	if !ok {
		t.Fatal("existing row reported missing")
	}
	ok, err = repo.Exists(ctx, 404)
	if err != nil {
		t.Fatalf("exists: %v", err)
	}
	if ok {
		t.Fatal("missing row reported existing")
	}
}

func TestRepositorySaleDateRoundTrip(t *testing.T) {
	db := newTestDB(t)
	vehicles := NewVehicleRepository(db)
	sales := NewSaleRepository(db)
	ctx := context.Background()

	v := seedVehicle(t, vehicles, "DATE01")
	date := types.NewDate(2024, time.February, 29)
	s := seedSale(t, sales, v.ID, "Leap Buyer", 12000, date)

	got, err := sales.GetByID(ctx, s.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !got.SaleDate.Equal(date) {
		t.Fatalf("sale date did not round-trip: %s != %s", got.SaleDate, date)
	}
}
