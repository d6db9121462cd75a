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

package types

import (
	"errors"
	"fmt"
	"strings"
)

// Validator is implemented by entities that validate their own fields.
// Repositories run it before any write reaches the database.
type Validator interface {
	Validate() error
}

// FieldError describes a single invalid field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError reports malformed or out-of-range input. It is raised
// before any write and carries one entry per offending field.
type ValidationError struct {
	Fields []FieldError `json:"fields"`
}

// NewValidationError creates a validation error for a single field.
func NewValidationError(field, message string) *ValidationError {
	e := &ValidationError{}
	e.Add(field, message)
	return e
}

// Add appends one offending field to the error.
func (e *ValidationError) Add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

// ErrorOrNil returns nil when no field was reported, the error otherwise.
func (e *ValidationError) ErrorOrNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		if f.Field == "" {
			parts = append(parts, f.Message)
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// NotFoundError reports that a referenced entity does not exist.
type NotFoundError struct {
	Entity string
	ID     any
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %v not found", e.Entity, e.ID)
}

// ConflictError reports a uniqueness violation, such as a duplicate
// chassis number, detected by a storage constraint or a pre-check.
type ConflictError struct {
	Entity string
	Detail string
	Err    error
}

func (e *ConflictError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s conflicts with existing data", e.Entity)
	}
	return fmt.Sprintf("%s conflicts with existing data: %s", e.Entity, e.Detail)
}

func (e *ConflictError) Unwrap() error { return e.Err }

// ReferentialIntegrityError reports a write that references an entity
// which does not exist, such as a sale naming an unknown vehicle.
type ReferentialIntegrityError struct {
	Entity      string
	Reference   string
	ReferenceID int64
	Err         error
}

func (e *ReferentialIntegrityError) Error() string {
	ref := e.Reference
	if ref == "" {
		ref = "row"
	}
	if e.ReferenceID == 0 {
		return fmt.Sprintf("%s references a %s that does not exist", e.Entity, ref)
	}
	return fmt.Sprintf("%s references %s %d which does not exist", e.Entity, ref, e.ReferenceID)
}

func (e *ReferentialIntegrityError) Unwrap() error { return e.Err }

// ConsistencyError reports a violated invariant that storage constraints
// should have made impossible. It is internal, never caused by input.
type ConsistencyError struct {
	Entity string
	ID     int64
	Detail string
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("consistency violation on %s %d: %s", e.Entity, e.ID, e.Detail)
}

// IsNotFound reports whether err is or wraps a NotFoundError.
func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

// IsValidation reports whether err is or wraps a ValidationError.
func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

// IsConflict reports whether err is or wraps a ConflictError.
func IsConflict(err error) bool {
	var target *ConflictError
	return errors.As(err, &target)
}
