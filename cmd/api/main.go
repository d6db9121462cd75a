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

package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/motorlot/motorlot"
	"github.com/motorlot/motorlot/database"
	_ "github.com/motorlot/motorlot/docs"
	"github.com/motorlot/motorlot/httpapi"
	"github.com/motorlot/motorlot/telemetry"
	"github.com/motorlot/motorlot/utils"

	"go.opentelemetry.io/otel/trace"
)

// @title motorlot API
// @version 1.0
// @description Vehicle inventory and sales records for a car lot.
// @BasePath /
func main() {
	utils.ConfigureLogLevel(os.Getenv("LOG_LEVEL"))
	log := utils.NewLogger("MAIN")

	var tracer trace.Tracer
	tp, shutdownTracing, err := telemetry.InitTracing(log, telemetry.Config{
		ServiceName: "motorlot",
		Endpoint:    os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
		Probability: 1,
	})
	if err != nil {
		log.Warnf("tracing disabled: %v", err)
	} else {
		defer shutdownTracing(context.Background())
		tracer = tp.Tracer("motorlot")
	}

	cfg := loadDatabaseConfig(log)
	manager := database.NewDatabaseManager(cfg)
	ctx := context.Background()
	if err := manager.Connect(ctx); err != nil {
		log.Fatalf("connect %s database: %v", cfg.Type, err)
	}
	defer func() { _ = manager.Disconnect() }()

	if err := database.EnsureSchema(ctx, manager.GetDB()); err != nil {
		log.Fatalf("ensure schema: %v", err)
	}

	svc := motorlot.NewService(manager.GetDB())
	router := httpapi.NewRouter(svc, manager, tracer)

	addr := utils.EnvDefaultString("HTTP_ADDR", ":8000")
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	stopCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()
	log.Infof("listening on %s", addr)

	select {
	case err := <-errCh:
		log.Fatalf("server: %v", err)
	case <-stopCtx.Done():
		stop()
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Errorf("shutdown: %v", err)
		}
	}
}

// loadDatabaseConfig reads the config file named by MOTORLOT_CONFIG, then
// falls back to environment variables, then to a local sqlite file, so the
// service starts in any of the three setups.
func loadDatabaseConfig(log *utils.Logger) *database.ConnectionConfig {
	path := utils.EnvDefaultString("MOTORLOT_CONFIG", "configs/config.yaml")
	cfg, err := database.LoadConfig(path)
	if err == nil {
		return &cfg.Database
	}
	log.Warnf("config %s unusable (%v), trying environment", path, err)
	if cfg, err = database.LoadConfig(""); err == nil {
		return &cfg.Database
	}
	log.Warnf("environment config unusable (%v), using local sqlite file", err)
	db := database.DefaultConnectionConfig()
	db.Type = "sqlite"
	db.DBName = "motorlot.db"
	return db
}
