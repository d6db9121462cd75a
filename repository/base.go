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
	"reflect"
	"strings"

	"github.com/motorlot/motorlot/database"
	"github.com/motorlot/motorlot/types"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/schema"
)

type baseRepositoryImpl[T any] struct {
	db   *bun.DB
	name string
}

// NewRepository returns a generic repository backed by the provided Bun DB.
// The entity name used in errors is derived from the type name.
func NewRepository[T any](db *bun.DB) Repository[T] {
	var zero T
	return &baseRepositoryImpl[T]{
		db:   db,
		name: strings.ToLower(reflect.TypeOf(zero).Name()),
	}
}

func (r *baseRepositoryImpl[T]) Dialect() schema.Dialect { return r.db.Dialect() }

func (r *baseRepositoryImpl[T]) NewSelect() *bun.SelectQuery { return r.db.NewSelect() }

func (r *baseRepositoryImpl[T]) NewInsert() *bun.InsertQuery { return r.db.NewInsert() }

func (r *baseRepositoryImpl[T]) NewUpdate() *bun.UpdateQuery { return r.db.NewUpdate() }

func (r *baseRepositoryImpl[T]) NewDelete() *bun.DeleteQuery { return r.db.NewDelete() }

func (r *baseRepositoryImpl[T]) validate(entity *T) error {
	if v, ok := any(entity).(types.Validator); ok {
		return v.Validate()
	}
	return nil
}

func (r *baseRepositoryImpl[T]) Create(ctx context.Context, entity *T) error {
	if err := r.validate(entity); err != nil {
		return err
	}
	if _, err := r.db.NewInsert().Model(entity).Exec(ctx); err != nil {
		return database.ClassifyError(r.name, err)
	}
	return nil
}

func (r *baseRepositoryImpl[T]) GetByID(ctx context.Context, id int64) (*T, error) {
	var entity T
	err := r.db.NewSelect().Model(&entity).Where("id = ?", id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &types.NotFoundError{Entity: r.name, ID: id}
		}
		return nil, err
	}
	return &entity, nil
}

func (r *baseRepositoryImpl[T]) List(ctx context.Context, page *types.PageRequest) ([]*T, error) {
	window := page
	if window == nil {
		window = types.DefaultPageRequest()
	}
	entities := make([]*T, 0)
	err := r.db.NewSelect().
		Model(&entities).
		Order("id ASC").
		Offset(window.Skip()).
		Limit(window.Limit()).
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return entities, nil
}

func (r *baseRepositoryImpl[T]) Page(ctx context.Context, page *types.PageRequest) (*types.Pagination[T], error) {
	window := page
	if window == nil {
		window = types.DefaultPageRequest()
	}
	entities := make([]*T, 0)
	query := r.db.NewSelect().Model(&entities)
	pagination := types.NewPagination[T](window.Skip(), window.Limit())
	total, err := query.Count(ctx)
	if err != nil || total == 0 {
		return pagination, err
	}
	err = query.
		Order("id ASC").
		Offset(window.Skip()).
		Limit(window.Limit()).
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	pagination.Total = total
	pagination.Items = entities
	return pagination, nil
}

// Update replaces every column except the immutable id. A zero row count
// means the id does not exist: the connection reports matched rows, not
// changed ones, so updates writing identical values still count.
func (r *baseRepositoryImpl[T]) Update(ctx context.Context, id int64, entity *T) error {
	if err := r.validate(entity); err != nil {
		return err
	}
	res, err := r.db.NewUpdate().
		Model(entity).
		ExcludeColumn("id").
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return database.ClassifyError(r.name, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return &types.NotFoundError{Entity: r.name, ID: id}
	}
	return nil
}

func (r *baseRepositoryImpl[T]) Delete(ctx context.Context, id int64) error {
	var entity T
	res, err := r.db.NewDelete().Model(&entity).Where("id = ?", id).Exec(ctx)
	if err != nil {
		return database.ClassifyError(r.name, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return &types.NotFoundError{Entity: r.name, ID: id}
	}
	return nil
}

func (r *baseRepositoryImpl[T]) Count(ctx context.Context) (int, error) {
	return r.db.NewSelect().Model((*T)(nil)).Count(ctx)
}

func (r *baseRepositoryImpl[T]) Exists(ctx context.Context, id int64) (bool, error) {
	return r.db.NewSelect().Model((*T)(nil)).Where("id = ?", id).Exists(ctx)
}
