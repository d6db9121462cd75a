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
	"github.com/shopspring/decimal"
)

// saleWithVehicle keeps the vehicle key in the payload; the model omits
// it elsewhere.
type saleWithVehicle struct {
	*model.Sale
	Vehicle *model.Vehicle `json:"vehicle"`
}

// createSale records a sale for an existing vehicle.
// @Summary Create sale
// @Accept json
// @Produce json
// @Param sale body model.Sale true "Sale"
// @Success 201 {object} model.Sale
// @Router /sales [post]
func (a *api) createSale(w http.ResponseWriter, r *http.Request) {
	ctx, span := telemetry.AddSpan(r.Context(), "createSale")
	defer span.End()

	var s model.Sale
	if err := json.NewDecoder(r.Body).Decode(&s); err != nil {
		a.respondError(w, r, types.NewValidationError("body", "must be valid JSON"))
		return
	}
	s.ID = 0 // ids are storage-assigned
	if err := a.svc.CreateSale(ctx, &s); err != nil {
		a.respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, &s)
}

// listSales pages through all recorded sales.
// @Summary List sales
// @Produce json
// @Param skip query int false "Rows to skip"
// @Param limit query int false "Page size, at most 100"
// @Success 200 {array} model.Sale
// @Header 200 {string} X-Total-Count "Total number of sales"
// @Router /sales [get]
func (a *api) listSales(w http.ResponseWriter, r *http.Request) {
	ctx, span := telemetry.AddSpan(r.Context(), "listSales")
	defer span.End()

	page, err := parsePage(r)
	if err != nil {
		a.respondError(w, r, err)
		return
	}
	result, err := a.svc.Sales().Page(ctx, page)
	if err != nil {
		a.respondError(w, r, err)
		return
	}
	w.Header().Set("X-Total-Count", strconv.Itoa(result.Total))
	respondJSON(w, http.StatusOK, result.Items)
}

// getSale retrieves one sale.
// @Summary Get sale
// @Produce json
// @Param id path int true "Sale ID"
// @Success 200 {object} model.Sale
// @Router /sales/{id} [get]
func (a *api) getSale(w http.ResponseWriter, r *http.Request) {
	ctx, span := telemetry.AddSpan(r.Context(), "getSale")
	defer span.End()

	id, err := pathID(r)
	if err != nil {
		a.respondError(w, r, err)
		return
	}
	s, err := a.svc.Sales().GetByID(ctx, id)
	if err != nil {
		a.respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, s)
}

// updateSale replaces a stored sale.
// @Summary Update sale
// @Accept json
// @Produce json
// @Param id path int true "Sale ID"
// @Param sale body model.Sale true "Sale"
// @Success 200 {object} model.Sale
// @Router /sales/{id} [put]
func (a *api) updateSale(w http.ResponseWriter, r *http.Request) {
	ctx, span := telemetry.AddSpan(r.Context(), "updateSale")
	defer span.End()

	id, err := pathID(r)
	if err != nil {
		a.respondError(w, r, err)
		return
	}
	var s model.Sale
	if err := json.NewDecoder(r.Body).Decode(&s); err != nil {
		a.respondError(w, r, types.NewValidationError("body", "must be valid JSON"))
		return
	}
	s.ID = id
	if err := a.svc.UpdateSale(ctx, id, &s); err != nil {
		a.respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, &s)
}

// deleteSale removes a sale record.
// @Summary Delete sale
// @Param id path int true "Sale ID"
// @Success 204
// @Router /sales/{id} [delete]
func (a *api) deleteSale(w http.ResponseWriter, r *http.Request) {
	ctx, span := telemetry.AddSpan(r.Context(), "deleteSale")
	defer span.End()

	id, err := pathID(r)
	if err != nil {
		a.respondError(w, r, err)
		return
	}
	if err := a.svc.DeleteSale(ctx, id); err != nil {
		a.respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// salesByVehicle lists the sales history of one vehicle.
// @Summary List sales of a vehicle
// @Produce json
// @Param id path int true "Vehicle ID"
// @Success 200 {array} model.Sale
// @Router /sales/vehicle/{id} [get]
func (a *api) salesByVehicle(w http.ResponseWriter, r *http.Request) {
	ctx, span := telemetry.AddSpan(r.Context(), "salesByVehicle")
	defer span.End()

	id, err := pathID(r)
	if err != nil {
		a.respondError(w, r, err)
		return
	}
	items, err := a.svc.SalesByVehicle(ctx, id)
	if err != nil {
		a.respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, items)
}

// salesByBuyer matches buyer names case-insensitively.
// @Summary Search sales by buyer
// @Produce json
// @Param name path string true "Substring of the buyer name"
// @Param skip query int false "Rows to skip"
// @Param limit query int false "Page size, at most 100"
// @Success 200 {array} model.Sale
// @Router /sales/buyer/{name} [get]
func (a *api) salesByBuyer(w http.ResponseWriter, r *http.Request) {
	ctx, span := telemetry.AddSpan(r.Context(), "salesByBuyer")
	defer span.End()

	search, err := types.NewTextSearch(mux.Vars(r)["name"])
	if err != nil {
		a.respondError(w, r, err)
		return
	}
	page, err := parsePage(r)
	if err != nil {
		a.respondError(w, r, err)
		return
	}
	items, err := a.svc.Sales().SearchByBuyer(ctx, search, page)
	if err != nil {
		a.respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, items)
}

// filterSalesByPrice lists sales inside an inclusive price window.
// @Summary Filter sales by price
// @Produce json
// @Param min query string false "Lowest price to include"
// @Param max query string false "Highest price to include"
// @Param skip query int false "Rows to skip"
// @Param limit query int false "Page size, at most 100"
// @Success 200 {array} model.Sale
// @Router /sales/filter/price [get]
func (a *api) filterSalesByPrice(w http.ResponseWriter, r *http.Request) {
	ctx, span := telemetry.AddSpan(r.Context(), "filterSalesByPrice")
	defer span.End()

	priceRange, err := parsePriceRange(r)
	if err != nil {
		a.respondError(w, r, err)
		return
	}
	page, err := parsePage(r)
	if err != nil {
		a.respondError(w, r, err)
		return
	}
	items, err := a.svc.Sales().FilterByPrice(ctx, priceRange, page)
	if err != nil {
		a.respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, items)
}

// filterSalesByDate lists sales inside an inclusive calendar-date window.
// @Summary Filter sales by date
// @Produce json
// @Param start query string false "First date to include, YYYY-MM-DD"
// @Param end query string false "Last date to include, YYYY-MM-DD"
// @Param skip query int false "Rows to skip"
// @Param limit query int false "Page size, at most 100"
// @Success 200 {array} model.Sale
// @Router /sales/filter/date [get]
func (a *api) filterSalesByDate(w http.ResponseWriter, r *http.Request) {
	ctx, span := telemetry.AddSpan(r.Context(), "filterSalesByDate")
	defer span.End()

	dateRange, err := parseDateRange(r)
	if err != nil {
		a.respondError(w, r, err)
		return
	}
	page, err := parsePage(r)
	if err != nil {
		a.respondError(w, r, err)
		return
	}
	items, err := a.svc.Sales().FilterByDate(ctx, dateRange, page)
	if err != nil {
		a.respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, items)
}

// getSaleWithVehicle returns a sale with the vehicle it sold.
// @Summary Get sale with vehicle
// @Produce json
// @Param id path int true "Sale ID"
// @Success 200 {object} saleWithVehicle
// @Router /sales/{id}/with-vehicle [get]
func (a *api) getSaleWithVehicle(w http.ResponseWriter, r *http.Request) {
	ctx, span := telemetry.AddSpan(r.Context(), "getSaleWithVehicle")
	defer span.End()

	id, err := pathID(r)
	if err != nil {
		a.respondError(w, r, err)
		return
	}
	s, err := a.svc.SaleWithVehicle(ctx, id)
	if err != nil {
		a.respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, saleWithVehicle{Sale: s, Vehicle: s.Vehicle})
}

// parsePriceRange reads min/max query parameters. Both absent yields nil,
// which the repository rejects.
func parsePriceRange(r *http.Request) (*types.PriceRange, error) {
	q := r.URL.Query()
	minStr, maxStr := q.Get("min"), q.Get("max")

	var minVal, maxVal decimal.Decimal
	var err error
	if minStr != "" {
		if minVal, err = decimal.NewFromString(minStr); err != nil {
			return nil, types.NewValidationError("min", "must be a decimal number")
		}
	}
	if maxStr != "" {
		if maxVal, err = decimal.NewFromString(maxStr); err != nil {
			return nil, types.NewValidationError("max", "must be a decimal number")
		}
	}
	switch {
	case minStr != "" && maxStr != "":
		return types.NewPriceRange(minVal, maxVal)
	case minStr != "":
		return types.NewPriceRangeFrom(minVal), nil
	case maxStr != "":
		return types.NewPriceRangeTo(maxVal), nil
	default:
		return nil, nil
	}
}

// parseDateRange reads start/end query parameters the same way.
func parseDateRange(r *http.Request) (*types.DateRange, error) {
	q := r.URL.Query()
	startStr, endStr := q.Get("start"), q.Get("end")

	var start, end types.Date
	var err error
	if startStr != "" {
		if start, err = types.ParseDate(startStr); err != nil {
			return nil, err
		}
	}
	if endStr != "" {
		if end, err = types.ParseDate(endStr); err != nil {
			return nil, err
		}
	}
	switch {
	case startStr != "" && endStr != "":
		return types.NewDateRange(start, end)
	case startStr != "":
		return types.NewDateRangeFrom(start), nil
	case endStr != "":
		return types.NewDateRangeTo(end), nil
	default:
		return nil, nil
	}
}
