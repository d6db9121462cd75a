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

package httpapi

import (
	"net/http"
	"strconv"

	"github.com/motorlot/motorlot"
	"github.com/motorlot/motorlot/database"
	"github.com/motorlot/motorlot/types"
	"github.com/motorlot/motorlot/utils"

	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.opentelemetry.io/otel/trace"
)

type api struct {
	svc     motorlot.Service
	manager database.AbstractDatabaseManager
	log     *utils.Logger
}

// NewRouter builds the HTTP surface of the lot service. A nil tracer
// disables the tracing middleware.
func NewRouter(svc motorlot.Service, manager database.AbstractDatabaseManager, tracer trace.Tracer) *mux.Router {
	a := &api{svc: svc, manager: manager, log: utils.NewLogger("HTTP")}

	r := mux.NewRouter()
	r.Use(requestIDMiddleware)
	if tracer != nil {
		r.Use(tracingMiddleware(tracer))
	}
	r.Use(a.accessLogMiddleware)

	r.HandleFunc("/healthz", a.health).Methods(http.MethodGet)

	v := r.PathPrefix("/vehicles").Subrouter()
	v.HandleFunc("", a.createVehicle).Methods(http.MethodPost)
	v.HandleFunc("", a.listVehicles).Methods(http.MethodGet)
	v.HandleFunc("/search", a.searchVehicles).Methods(http.MethodGet)
	v.HandleFunc("/chassis/{number}", a.getVehicleByChassis).Methods(http.MethodGet)
	v.HandleFunc("/{id:[0-9]+}", a.getVehicle).Methods(http.MethodGet)
	v.HandleFunc("/{id:[0-9]+}", a.updateVehicle).Methods(http.MethodPut)
	v.HandleFunc("/{id:[0-9]+}", a.deleteVehicle).Methods(http.MethodDelete)
	v.HandleFunc("/{id:[0-9]+}/with-sales", a.getVehicleWithSales).Methods(http.MethodGet)

	s := r.PathPrefix("/sales").Subrouter()
	s.HandleFunc("", a.createSale).Methods(http.MethodPost)
	s.HandleFunc("", a.listSales).Methods(http.MethodGet)
	s.HandleFunc("/vehicle/{id:[0-9]+}", a.salesByVehicle).Methods(http.MethodGet)
	s.HandleFunc("/buyer/{name}", a.salesByBuyer).Methods(http.MethodGet)
	s.HandleFunc("/filter/price", a.filterSalesByPrice).Methods(http.MethodGet)
	s.HandleFunc("/filter/date", a.filterSalesByDate).Methods(http.MethodGet)
	s.HandleFunc("/{id:[0-9]+}", a.getSale).Methods(http.MethodGet)
	s.HandleFunc("/{id:[0-9]+}", a.updateSale).Methods(http.MethodPut)
	s.HandleFunc("/{id:[0-9]+}", a.deleteSale).Methods(http.MethodDelete)
	s.HandleFunc("/{id:[0-9]+}/with-vehicle", a.getSaleWithVehicle).Methods(http.MethodGet)

	r.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)
	return r
}

// health reports database health.
// @Summary Service health
// @Produce json
// @Success 200 {object} database.HealthStatus
// @Router /healthz [get]
func (a *api) health(w http.ResponseWriter, r *http.Request) {
	status := a.manager.HealthCheck(r.Context())
	code := http.StatusOK
	if !status.Healthy {
		code = http.StatusServiceUnavailable
	}
	respondJSON(w, code, status)
}

func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		return 0, types.NewValidationError("id", "must be an integer")
	}
	return id, nil
}

func parsePage(r *http.Request) (*types.PageRequest, error) {
	q := r.URL.Query()
	skip, limit := 0, types.DefaultLimit
	if v := q.Get("skip"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, types.NewValidationError("skip", "must be an integer")
		}
		skip = n
	}
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, types.NewValidationError("limit", "must be an integer")
		}
		limit = n
	}
	return types.NewPageRequest(skip, limit)
}
