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
	"database/sql"
	"errors"

	"github.com/motorlot/motorlot/model"
	"github.com/motorlot/motorlot/types"

	"github.com/uptrace/bun"
)

type saleRepositoryImpl struct {
	Repository[model.Sale]
}

// NewSaleRepository returns the sale repository.
func NewSaleRepository(db *bun.DB) SaleRepository {
	return &saleRepositoryImpl{Repository: NewRepository[model.Sale](db)}
}

// ListByVehicle returns every sale of the vehicle, oldest sale date first,
// id as the tiebreak.
func (r *saleRepositoryImpl) ListByVehicle(ctx context.Context, vehicleID int64) ([]*model.Sale, error) {
	sales := make([]*model.Sale, 0)
	err := r.NewSelect().
		Model(&sales).
		Where("vehicle_id = ?", vehicleID).
		Order("sale_date ASC", "id ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return sales, nil
}

func (r *saleRepositoryImpl) CountByVehicle(ctx context.Context, vehicleID int64) (int, error) {
	return r.NewSelect().
		Model((*model.Sale)(nil)).
		Where("vehicle_id = ?", vehicleID).
		Count(ctx)
}

// SearchByBuyer matches the term case-insensitively as a substring of the
// buyer name.
func (r *saleRepositoryImpl) SearchByBuyer(ctx context.Context, search types.TextSearch, page *types.PageRequest) ([]*model.Sale, error) {
	window := page
	if window == nil {
		window = types.DefaultPageRequest()
	}
	sales := make([]*model.Sale, 0)
	err := r.NewSelect().
		Model(&sales).
		Where("LOWER(buyer_name) LIKE LOWER(?)", search.Pattern()).
		Order("id ASC").
		Offset(window.Skip()).
		Limit(window.Limit()).
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return sales, nil
}

// FilterByPrice returns sales whose price falls inside the range, bounds
// inclusive.
func (r *saleRepositoryImpl) FilterByPrice(ctx context.Context, priceRange *types.PriceRange, page *types.PageRequest) ([]*model.Sale, error) {
	if priceRange == nil {
		e := &types.ValidationError{}
		e.Add("price", "at least one bound is required")
		return nil, e.ErrorOrNil()
	}
	window := page
	if window == nil {
		window = types.DefaultPageRequest()
	}
	sales := make([]*model.Sale, 0)
	query := r.NewSelect().Model(&sales)
	if min, ok := priceRange.Min(); ok {
		query = query.Where("price >= ?", min)
	}
	if max, ok := priceRange.Max(); ok {
		query = query.Where("price <= ?", max)
	}
	err := query.
		Order("id ASC").
		Offset(window.Skip()).
		Limit(window.Limit()).
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return sales, nil
}

// FilterByDate returns sales whose sale date falls inside the range, bounds
// inclusive.
func (r *saleRepositoryImpl) FilterByDate(ctx context.Context, dateRange *types.DateRange, page *types.PageRequest) ([]*model.Sale, error) {
	if dateRange == nil {
		e := &types.ValidationError{}
		e.Add("sale_date", "at least one bound is required")
		return nil, e.ErrorOrNil()
	}
	window := page
	if window == nil {
		window = types.DefaultPageRequest()
	}
	sales := make([]*model.Sale, 0)
	query := r.NewSelect().Model(&sales)
	if start, ok := dateRange.Start(); ok {
		query = query.Where("sale_date >= ?", start)
	}
	if end, ok := dateRange.End(); ok {
		query = query.Where("sale_date <= ?", end)
	}
	err := query.
		Order("id ASC").
		Offset(window.Skip()).
		Limit(window.Limit()).
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return sales, nil
}

// GetWithVehicle loads the sale and the vehicle it references. The join
// makes id ambiguous, so the filter is alias-qualified.
func (r *saleRepositoryImpl) GetWithVehicle(ctx context.Context, id int64) (*model.Sale, error) {
	sale := new(model.Sale)
	err := r.NewSelect().
		Model(sale).
		Relation("Vehicle").
		Where("s.id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &types.NotFoundError{Entity: "sale", ID: id}
		}
		return nil, err
	}
	return sale, nil
}
