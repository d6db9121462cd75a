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

package motorlot

import (
	"context"
	"errors"
	"fmt"

	"github.com/motorlot/motorlot/model"
	"github.com/motorlot/motorlot/repository"
	"github.com/motorlot/motorlot/types"
	"github.com/motorlot/motorlot/utils"

	"github.com/uptrace/bun"
)

// Service is the application facade over the vehicle and sale
// repositories. It owns the rules that span both entities: a sale may
// only reference an existing vehicle, and a vehicle that still owns
// sales may not be deleted.
type Service interface {
	// CreateVehicle adds a vehicle to the lot.
	CreateVehicle(ctx context.Context, vehicle *model.Vehicle) error

	// UpdateVehicle replaces the stored vehicle. The chassis number is
	// immutable.
	UpdateVehicle(ctx context.Context, id int64, vehicle *model.Vehicle) error

	// DeleteVehicle removes a vehicle. Vehicles with recorded sales are
	// protected: the call fails with a ConflictError.
	DeleteVehicle(ctx context.Context, id int64) error

	// VehicleWithSales returns a vehicle together with its sales history,
	// oldest sale first.
	VehicleWithSales(ctx context.Context, id int64) (*model.Vehicle, error)

	// CreateSale records a sale. The referenced vehicle must exist.
	CreateSale(ctx context.Context, sale *model.Sale) error

	// UpdateSale replaces the stored sale. The referenced vehicle must
	// exist.
	UpdateSale(ctx context.Context, id int64, sale *model.Sale) error

	// DeleteSale removes a sale record.
	DeleteSale(ctx context.Context, id int64) error

	// SaleWithVehicle returns a sale together with the vehicle it sold.
	SaleWithVehicle(ctx context.Context, id int64) (*model.Sale, error)

	// SalesByVehicle returns the sales history of one vehicle, oldest
	// first. The vehicle itself must exist.
	SalesByVehicle(ctx context.Context, vehicleID int64) ([]*model.Sale, error)

	// Vehicles exposes the vehicle repository for plain reads.
	Vehicles() repository.VehicleRepository

	// Sales exposes the sale repository for plain reads.
	Sales() repository.SaleRepository
}

type lotServiceImpl struct {
	vehicles repository.VehicleRepository
	sales    repository.SaleRepository
	log      *utils.Logger
}

// NewService builds the facade on top of a connected Bun handle.
func NewService(db *bun.DB) Service {
	return &lotServiceImpl{
		vehicles: repository.NewVehicleRepository(db),
		sales:    repository.NewSaleRepository(db),
		log:      utils.NewLogger("SERVICE"),
	}
}

func (s *lotServiceImpl) Vehicles() repository.VehicleRepository { return s.vehicles }

func (s *lotServiceImpl) Sales() repository.SaleRepository { return s.sales }

func (s *lotServiceImpl) CreateVehicle(ctx context.Context, vehicle *model.Vehicle) error {
	return s.vehicles.Create(ctx, vehicle)
}

func (s *lotServiceImpl) UpdateVehicle(ctx context.Context, id int64, vehicle *model.Vehicle) error {
	return s.vehicles.Update(ctx, id, vehicle)
}

func (s *lotServiceImpl) DeleteVehicle(ctx context.Context, id int64) error {
	n, err := s.sales.CountByVehicle(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return &types.ConflictError{
			Entity: "vehicle",
			Detail: fmt.Sprintf("%d sales reference it", n),
		}
	}
	err = s.vehicles.Delete(ctx, id)
	// A sale recorded between the count and the delete trips the foreign
	// key instead; report it the same way as the pre-check.
	var ri *types.ReferentialIntegrityError
	if errors.As(err, &ri) {
		return &types.ConflictError{Entity: "vehicle", Detail: "sales reference it", Err: err}
	}
	return err
}

func (s *lotServiceImpl) VehicleWithSales(ctx context.Context, id int64) (*model.Vehicle, error) {
	return s.vehicles.GetWithSales(ctx, id)
}

func (s *lotServiceImpl) CreateSale(ctx context.Context, sale *model.Sale) error {
	if err := sale.Validate(); err != nil {
		return err
	}
	if err := s.checkVehicleReference(ctx, sale.VehicleID); err != nil {
		return err
	}
	return s.enrichSaleError(s.sales.Create(ctx, sale), sale.VehicleID)
}

func (s *lotServiceImpl) UpdateSale(ctx context.Context, id int64, sale *model.Sale) error {
	if err := sale.Validate(); err != nil {
		return err
	}
	ok, err := s.sales.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return &types.NotFoundError{Entity: "sale", ID: id}
	}
	if err := s.checkVehicleReference(ctx, sale.VehicleID); err != nil {
		return err
	}
	return s.enrichSaleError(s.sales.Update(ctx, id, sale), sale.VehicleID)
}

func (s *lotServiceImpl) DeleteSale(ctx context.Context, id int64) error {
	return s.sales.Delete(ctx, id)
}

func (s *lotServiceImpl) SaleWithVehicle(ctx context.Context, id int64) (*model.Sale, error) {
	sale, err := s.sales.GetWithVehicle(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale.Vehicle == nil || sale.Vehicle.ID == 0 {
		// The foreign key should make this impossible.
		s.log.Errorf("sale %d references vehicle %d which is gone", sale.ID, sale.VehicleID)
		return nil, &types.ConsistencyError{
			Entity: "sale",
			ID:     sale.ID,
			Detail: fmt.Sprintf("references vehicle %d which is gone", sale.VehicleID),
		}
	}
	return sale, nil
}

func (s *lotServiceImpl) SalesByVehicle(ctx context.Context, vehicleID int64) ([]*model.Sale, error) {
	ok, err := s.vehicles.Exists(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &types.NotFoundError{Entity: "vehicle", ID: vehicleID}
	}
	return s.sales.ListByVehicle(ctx, vehicleID)
}

// checkVehicleReference rejects sales that name a vehicle the lot does
// not have. The database constraint is the backstop for races.
func (s *lotServiceImpl) checkVehicleReference(ctx context.Context, vehicleID int64) error {
	ok, err := s.vehicles.Exists(ctx, vehicleID)
	if err != nil {
		return err
	}
	if !ok {
		return &types.ReferentialIntegrityError{
			Entity:      "sale",
			Reference:   "vehicle",
			ReferenceID: vehicleID,
		}
	}
	return nil
}

// enrichSaleError names the broken vehicle reference on foreign key
// violations surfaced by the driver, which only knows the entity.
func (s *lotServiceImpl) enrichSaleError(err error, vehicleID int64) error {
	var ri *types.ReferentialIntegrityError
	if errors.As(err, &ri) {
		ri.Reference = "vehicle"
		ri.ReferenceID = vehicleID
	}
	return err
}
