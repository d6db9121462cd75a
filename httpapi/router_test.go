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

package httpapi_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/motorlot/motorlot"
	"github.com/motorlot/motorlot/database"
	"github.com/motorlot/motorlot/httpapi"
	"github.com/motorlot/motorlot/model"
	"github.com/motorlot/motorlot/types"
	"github.com/motorlot/motorlot/utils"

	"github.com/shopspring/decimal"
)

func newTestRouter(t *testing.T) (http.Handler, motorlot.Service) {
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

	if err := database.EnsureSchema(ctx, m.GetDB()); err != nil {
		t.Fatalf("ensure schema: %v", err)
	}
	svc := motorlot.NewService(m.GetDB())
	utils.SetLoggerLevel("SERVICE", "fatal")
	utils.SetLoggerLevel("HTTP", "fatal")
	return httpapi.NewRouter(svc, m, nil), svc
}

// doJSON serves one request against the router and returns the recorder.
// A non-nil body is sent as JSON.
func doJSON(t *testing.T, h http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(buf)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.NewDecoder(rec.Body).Decode(v); err != nil {
		t.Fatalf("decode response body %q: %v", rec.Body.String(), err)
	}
}

func seedLotVehicle(t *testing.T, svc motorlot.Service, chassis string) *model.Vehicle {
	t.Helper()
	v := &model.Vehicle{
		Make:          "Toyota",
		Model:         "Corolla",
		ChassisNumber: chassis,
		ModelYear:     2021,
		Price:         decimal.NewFromInt(18000),
	}
	if err := svc.CreateVehicle(context.Background(), v); err != nil {
		t.Fatalf("seed vehicle %s: %v", chassis, err)
	}
	return v
}

func seedLotSale(t *testing.T, svc motorlot.Service, vehicleID int64, buyer string, price int64, date types.Date) *model.Sale {
	t.Helper()
	s := &model.Sale{
		VehicleID: vehicleID,
		BuyerName: buyer,
		Price:     decimal.NewFromInt(price),
		SaleDate:  date,
	}
	if err := svc.CreateSale(context.Background(), s); err != nil {
		t.Fatalf("seed sale for vehicle %d: %v", vehicleID, err)
	}
	return s
}

func TestHealthz(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/healthz", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var status database.HealthStatus
	decodeBody(t, rec, &status)
	if !status.Healthy || !status.Connected {
		t.Errorf("health = %+v, want healthy and connected", status)
	}
}

func TestRequestIDGenerated(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/healthz", nil)
	if got := rec.Header().Get("X-Request-ID"); got == "" {
		t.Error("X-Request-ID header missing")
	}
}

func TestRequestIDEchoed(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Request-ID", "req-42")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if got := rec.Header().Get("X-Request-ID"); got != "req-42" {
		t.Errorf("X-Request-ID = %q, want req-42", got)
	}
}

func TestUnknownRoute(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/nope", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestMethodNotAllowed(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPatch, "/vehicles/1", nil)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", rec.Code)
	}
}
