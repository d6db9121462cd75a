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
	"strings"
	"testing"
)

// newTestManager connects to a named in-memory SQLite database. The name
// keeps tests isolated from each other while cache=shared lets the pool's
// connections see the same data.
func newTestManager(t *testing.T) AbstractDatabaseManager {
	t.Helper()
	cfg := DefaultConnectionConfig()
	cfg.Type = "sqlite"
	cfg.DBName = fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	cfg.HealthCheckInterval = 0

	m := NewDatabaseManager(cfg)
	if err := m.Connect(context.Background()); err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(func() { _ = m.Disconnect() })
	return m
}

func TestManagerConnect(t *testing.T) {
	m := newTestManager(t)
	if m.GetDB() == nil || m.GetSQLDB() == nil {
		t.Fatal("connected manager should expose handles")
	}
	if err := m.Ping(context.Background()); err != nil {
		t.Fatalf("ping: %v", err)
	}
}

func TestManagerHealthCheck(t *testing.T) {
	m := newTestManager(t)
	status := m.HealthCheck(context.Background())
	if !status.Healthy || !status.Connected {
		t.Fatalf("expected healthy status, got %+v", status)
	}
	if status.ResponseTime <= 0 {
		t.Fatalf("response time not measured: %+v", status)
	}
}

func TestManagerStats(t *testing.T) {
	m := newTestManager(t)
	stats := m.GetStats()
	if stats.MaxOpenConns != 30 {
		t.Fatalf("pool config not applied, got %d", stats.MaxOpenConns)
	}
}

func TestManagerReconnect(t *testing.T) {
	m := newTestManager(t)
	if err := m.Reconnect(context.Background()); err != nil {
		t.Fatalf("reconnect: %v", err)
	}
	if err := m.Ping(context.Background()); err != nil {
		t.Fatalf("ping after reconnect: %v", err)
	}
}

func TestManagerPingBeforeConnect(t *testing.T) {
	cfg := DefaultConnectionConfig()
	cfg.Type = "sqlite"
	m := NewDatabaseManager(cfg)
	if err := m.Ping(context.Background()); err == nil {
		t.Fatal("expected error before connect")
	}
}

func TestManagerRejectsUnknownType(t *testing.T) {
	cfg := DefaultConnectionConfig()
	cfg.Type = "cockroach"
	m := NewDatabaseManager(cfg)
	if err := m.Connect(context.Background()); err == nil {
		t.Fatal("expected error for unsupported type")
	}
}
