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

import "fmt"

const (
	// DefaultLimit is the page size used when the caller supplies none.
	DefaultLimit = 100

	// MaxLimit caps the page size a caller may request.
	MaxLimit = 100
)

// PageRequest describes an offset-addressed slice of an ordered result
// set. Instances are built through constructors and are always valid:
// skip is never negative and limit is in (0, MaxLimit].
type PageRequest struct {
	skip  int
	limit int
}

// NewPageRequest constructs a PageRequest, rejecting out-of-range values
// instead of coercing them.
func NewPageRequest(skip, limit int) (*PageRequest, error) {
	e := &ValidationError{}
	if skip < 0 {
		e.Add("skip", "must not be negative")
	}
	if limit <= 0 {
		e.Add("limit", "must be greater than zero")
	} else if limit > MaxLimit {
		e.Add("limit", fmt.Sprintf("must not exceed %d", MaxLimit))
	}
	if err := e.ErrorOrNil(); err != nil {
		return nil, err
	}
	return &PageRequest{skip: skip, limit: limit}, nil
}

// DefaultPageRequest constructs the page used when the caller supplies
// no pagination at all: skip 0, limit DefaultLimit.
func DefaultPageRequest() *PageRequest {
	return &PageRequest{skip: 0, limit: DefaultLimit}
}

func (p *PageRequest) Skip() int { return p.skip }

func (p *PageRequest) Limit() int { return p.limit }

// Pagination holds paged result items along with pagination metadata.
type Pagination[T any] struct {
	Skip  int  `json:"skip"`
	Limit int  `json:"limit"`
	Total int  `json:"total"`
	Items []*T `json:"items"`
}

// NewPagination constructs an empty pagination container.
func NewPagination[T any](skip, limit int) *Pagination[T] {
	return &Pagination[T]{skip, limit, 0, make([]*T, 0)}
}
