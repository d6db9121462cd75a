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

type vehicleRepositoryImpl struct {
	Repository[model.Vehicle]
}

// NewVehicleRepository returns the vehicle repository.
func NewVehicleRepository(db *bun.DB) VehicleRepository {
	return &vehicleRepositoryImpl{Repository: NewRepository[model.Vehicle](db)}
}

// Update rejects a changed chassis number before delegating. The stored row
// is read first, so a lost race on a concurrent delete surfaces as not found
// from the delegate.
func (r *vehicleRepositoryImpl) Update(ctx context.Context, id int64, vehicle *model.Vehicle) error {
	current, err := r.Repository.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if vehicle.ChassisNumber != current.ChassisNumber {
		e := &types.ValidationError{}
		e.Add("chassis_number", "is immutable")
		return e.ErrorOrNil()
	}
	return r.Repository.Update(ctx, id, vehicle)
}

func (r *vehicleRepositoryImpl) GetByChassis(ctx context.Context, chassis string) (*model.Vehicle, error) {
	vehicle := new(model.Vehicle)
	err := r.NewSelect().
		Model(vehicle).
		Where("chassis_number = ?", chassis).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &types.NotFoundError{Entity: "vehicle", ID: chassis}
		}
		return nil, err
	}
	return vehicle, nil
}

// SearchMakeModel matches the term case-insensitively as a substring of the
// make or the model.
func (r *vehicleRepositoryImpl) SearchMakeModel(ctx context.Context, search types.TextSearch, page *types.PageRequest) ([]*model.Vehicle, error) {
	window := page
	if window == nil {
		window = types.DefaultPageRequest()
	}
	vehicles := make([]*model.Vehicle, 0)
	err := r.NewSelect().
		Model(&vehicles).
		Where("LOWER(make) LIKE LOWER(?)", search.Pattern()).
		WhereOr("LOWER(model) LIKE LOWER(?)", search.Pattern()).
		Order("id ASC").
		Offset(window.Skip()).
		Limit(window.Limit()).
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return vehicles, nil
}

// GetWithSales loads the vehicle and its sales ordered by sale date. A
// vehicle without sales carries an empty, non-nil slice.
func (r *vehicleRepositoryImpl) GetWithSales(ctx context.Context, id int64) (*model.Vehicle, error) {
	vehicle := new(model.Vehicle)
	err := r.NewSelect().
		Model(vehicle).
		Relation("Sales", func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Order("sale_date ASC", "id ASC")
		}).
		Where("v.id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &types.NotFoundError{Entity: "vehicle", ID: id}
		}
		return nil, err
	}
	if vehicle.Sales == nil {
		vehicle.Sales = make([]*model.Sale, 0)
	}
	return vehicle, nil
}
