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

	"github.com/motorlot/motorlot/model"
	"github.com/motorlot/motorlot/types"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/schema"
)

// CrudRepository defines basic CRUD operations for a generic entity type.
// Writes validate the entity first and return *types.ValidationError before
// touching storage; constraint violations come back as *types.ConflictError
// or *types.ReferentialIntegrityError.
type CrudRepository[T any] interface {
	Create(ctx context.Context, entity *T) error

	GetByID(ctx context.Context, id int64) (*T, error)

	List(ctx context.Context, page *types.PageRequest) ([]*T, error)

	Update(ctx context.Context, id int64, entity *T) error

	Delete(ctx context.Context, id int64) error

	Count(ctx context.Context) (int, error)

	Exists(ctx context.Context, id int64) (bool, error)
}

// PageQueryRepository defines pagination functionality for listing entities.
type PageQueryRepository[T any] interface {
	Page(ctx context.Context, page *types.PageRequest) (*types.Pagination[T], error)
}

// Repository combines CRUD and pagination and exposes Bun query builders for
// the specialized query sets.
type Repository[T any] interface {
	CrudRepository[T]
	PageQueryRepository[T]
	Dialect() schema.Dialect
	NewSelect() *bun.SelectQuery
	NewInsert() *bun.InsertQuery
	NewUpdate() *bun.UpdateQuery
	NewDelete() *bun.DeleteQuery
}

// VehicleRepository adds the vehicle-specific query set. The chassis number
// is immutable: Update rejects a changed chassis before touching storage.
type VehicleRepository interface {
	Repository[model.Vehicle]

	GetByChassis(ctx context.Context, chassis string) (*model.Vehicle, error)

	SearchMakeModel(ctx context.Context, search types.TextSearch, page *types.PageRequest) ([]*model.Vehicle, error)

	GetWithSales(ctx context.Context, id int64) (*model.Vehicle, error)
}

// SaleRepository adds the sale-specific query set.
type SaleRepository interface {
	Repository[model.Sale]

	ListByVehicle(ctx context.Context, vehicleID int64) ([]*model.Sale, error)

	CountByVehicle(ctx context.Context, vehicleID int64) (int, error)

	SearchByBuyer(ctx context.Context, search types.TextSearch, page *types.PageRequest) ([]*model.Sale, error)

	FilterByPrice(ctx context.Context, priceRange *types.PriceRange, page *types.PageRequest) ([]*model.Sale, error)

	FilterByDate(ctx context.Context, dateRange *types.DateRange, page *types.PageRequest) ([]*model.Sale, error)

	GetWithVehicle(ctx context.Context, id int64) (*model.Sale, error)
}
