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
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/motorlot/motorlot/model"
	"github.com/motorlot/motorlot/telemetry"
	"github.com/motorlot/motorlot/types"

	"github.com/gorilla/mux"
)

// vehicleWithSales keeps the sales key in the payload even when the
// list is empty; the model omits it elsewhere.
type vehicleWithSales struct {
	*model.Vehicle
	Sales []*model.Sale `json:"sales"`
}

// createVehicle adds a vehicle to the inventory.
// @Summary Create vehicle
// @Accept json
// @Produce json
// @Param vehicle body model.Vehicle true "Vehicle"
// @Success 201 {object} model.Vehicle
// @Router /vehicles [post]
func (a *api) createVehicle(w http.ResponseWriter, r *http.Request) {
	ctx, span := telemetry.AddSpan(r.Context(), "createVehicle")
	defer span.End()

	var v model.Vehicle
	if err := json.NewDecoder(r.Body).Decode(&v); err != nil {
		a.respondError(w, r, types.NewValidationError("body", "must be valid JSON"))
		return
	}
	v.ID = 0 // ids are storage-assigned
	if err := a.svc.CreateVehicle(ctx, &v); err != nil {
		a.respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, &v)
}

// listVehicles pages through the inventory.
// @Summary List vehicles
// @Produce json
// @Param skip query int false "Rows to skip"
// @Param limit query int false "Page size, at most 100"
// @Success 200 {array} model.Vehicle
// @Header 200 {string} X-Total-Count "Total number of vehicles"
// @Router /vehicles [get]
func (a *api) listVehicles(w http.ResponseWriter, r *http.Request) {
	ctx, span := telemetry.AddSpan(r.Context(), "listVehicles")
	defer span.End()

	page, err := parsePage(r)
	if err != nil {
		a.respondError(w, r, err)
		return
	}
	result, err := a.svc.Vehicles().Page(ctx, page)
	if err != nil {
		a.respondError(w, r, err)
		return
	}
	w.Header().Set("X-Total-Count", strconv.Itoa(result.Total))
	respondJSON(w, http.StatusOK, result.Items)
}

// searchVehicles matches make or model case-insensitively.
// @Summary Search vehicles
// @Produce json
// @Param query query string true "Substring of make or model"
// @Param skip query int false "Rows to skip"
// @Param limit query int false "Page size, at most 100"
// @Success 200 {array} model.Vehicle
// @Router /vehicles/search [get]
func (a *api) searchVehicles(w http.ResponseWriter, r *http.Request) {
	ctx, span := telemetry.AddSpan(r.Context(), "searchVehicles")
	defer span.End()

	search, err := types.NewTextSearch(r.URL.Query().Get("query"))
	if err != nil {
		a.respondError(w, r, err)
		return
	}
	page, err := parsePage(r)
	if err != nil {
		a.respondError(w, r, err)
		return
	}
	items, err := a.svc.Vehicles().SearchMakeModel(ctx, search, page)
	if err != nil {
		a.respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, items)
}

// getVehicle retrieves one vehicle.
// @Summary Get vehicle
// @Produce json
// @Param id path int true "Vehicle ID"
// @Success 200 {object} model.Vehicle
// @Router /vehicles/{id} [get]
func (a *api) getVehicle(w http.ResponseWriter, r *http.Request) {
	ctx, span := telemetry.AddSpan(r.Context(), "getVehicle")
	defer span.End()

	id, err := pathID(r)
	if err != nil {
		a.respondError(w, r, err)
		return
	}
	v, err := a.svc.Vehicles().GetByID(ctx, id)
	if err != nil {
		a.respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, v)
}

// getVehicleByChassis retrieves one vehicle by its chassis number.
// @Summary Get vehicle by chassis number
// @Produce json
// @Param number path string true "Chassis number"
// @Success 200 {object} model.Vehicle
// @Router /vehicles/chassis/{number} [get]
func (a *api) getVehicleByChassis(w http.ResponseWriter, r *http.Request) {
	ctx, span := telemetry.AddSpan(r.Context(), "getVehicleByChassis")
	defer span.End()

	v, err := a.svc.Vehicles().GetByChassis(ctx, mux.Vars(r)["number"])
	if err != nil {
		a.respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, v)
}

// updateVehicle replaces a stored vehicle.
// @Summary Update vehicle
// @Accept json
// @Produce json
// @Param id path int true "Vehicle ID"
// @Param vehicle body model.Vehicle true "Vehicle"
// @Success 200 {object} model.Vehicle
// @Router /vehicles/{id} [put]
func (a *api) updateVehicle(w http.ResponseWriter, r *http.Request) {
	ctx, span := telemetry.AddSpan(r.Context(), "updateVehicle")
	defer span.End()

	id, err := pathID(r)
	if err != nil {
		a.respondError(w, r, err)
		return
	}
	var v model.Vehicle
	if err := json.NewDecoder(r.Body).Decode(&v); err != nil {
		a.respondError(w, r, types.NewValidationError("body", "must be valid JSON"))
		return
	}
	v.ID = id
	if err := a.svc.UpdateVehicle(ctx, id, &v); err != nil {
		a.respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, &v)
}

// deleteVehicle removes a vehicle without sales.
// @Summary Delete vehicle
// @Param id path int true "Vehicle ID"
// @Success 204
// @Router /vehicles/{id} [delete]
func (a *api) deleteVehicle(w http.ResponseWriter, r *http.Request) {
	ctx, span := telemetry.AddSpan(r.Context(), "deleteVehicle")
	defer span.End()

	id, err := pathID(r)
	if err != nil {
		a.respondError(w, r, err)
		return
	}
	if err := a.svc.DeleteVehicle(ctx, id); err != nil {
		a.respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// getVehicleWithSales returns a vehicle with its sales history.
// @Summary Get vehicle with sales
// @Produce json
// @Param id path int true "Vehicle ID"
// @Success 200 {object} vehicleWithSales
// @Router /vehicles/{id}/with-sales [get]
func (a *api) getVehicleWithSales(w http.ResponseWriter, r *http.Request) {
	ctx, span := telemetry.AddSpan(r.Context(), "getVehicleWithSales")
	defer span.End()

	id, err := pathID(r)
	if err != nil {
		a.respondError(w, r, err)
		return
	}
	v, err := a.svc.VehicleWithSales(ctx, id)
	if err != nil {
		a.respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, vehicleWithSales{Vehicle: v, Sales: v.Sales})
}
