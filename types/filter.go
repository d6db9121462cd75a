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
	"strings"

	"github.com/shopspring/decimal"
)

// TextSearch is a validated substring search term. Matching is
// case-insensitive; an empty or blank term is rejected at construction
// rather than treated as match-all.
type TextSearch struct {
	term string
}

// NewTextSearch constructs a TextSearch from a raw query string.
func NewTextSearch(term string) (TextSearch, error) {
	trimmed := strings.TrimSpace(term)
	if trimmed == "" {
		return TextSearch{}, NewValidationError("query", "search term must not be empty")
	}
	return TextSearch{term: trimmed}, nil
}

func (s TextSearch) Term() string { return s.term }

// Pattern returns the LIKE pattern matching the term as a substring.
func (s TextSearch) Pattern() string { return "%" + s.term + "%" }

// PriceRange is an inclusive price interval with at least one bound.
type PriceRange struct {
	min *decimal.Decimal
	max *decimal.Decimal
}

// NewPriceRange constructs a range bounded on both sides.
func NewPriceRange(min, max decimal.Decimal) (*PriceRange, error) {
	if min.GreaterThan(max) {
		return nil, NewValidationError("min", "lower bound must not exceed upper bound")
	}
	return &PriceRange{min: &min, max: &max}, nil
}

// NewPriceRangeFrom constructs a range with only a lower bound.
func NewPriceRangeFrom(min decimal.Decimal) *PriceRange {
	return &PriceRange{min: &min}
}

// NewPriceRangeTo constructs a range with only an upper bound.
func NewPriceRangeTo(max decimal.Decimal) *PriceRange {
	return &PriceRange{max: &max}
}

// Min returns the lower bound and whether it is set.
func (r *PriceRange) Min() (decimal.Decimal, bool) {
	if r.min == nil {
		return decimal.Decimal{}, false
	}
	return *r.min, true
}

// Max returns the upper bound and whether it is set.
func (r *PriceRange) Max() (decimal.Decimal, bool) {
	if r.max == nil {
		return decimal.Decimal{}, false
	}
	return *r.max, true
}

// DateRange is an inclusive calendar date interval with at least one bound.
type DateRange struct {
	start *Date
	end   *Date
}

// NewDateRange constructs a range bounded on both sides.
func NewDateRange(start, end Date) (*DateRange, error) {
	if start.After(end) {
		return nil, NewValidationError("start", "start date must not be after end date")
	}
	return &DateRange{start: &start, end: &end}, nil
}

// NewDateRangeFrom constructs a range with only a start date.
func NewDateRangeFrom(start Date) *DateRange {
	return &DateRange{start: &start}
}

// NewDateRangeTo constructs a range with only an end date.
func NewDateRangeTo(end Date) *DateRange {
	return &DateRange{end: &end}
}

// Start returns the start date and whether it is set.
func (r *DateRange) Start() (Date, bool) {
	if r.start == nil {
		return Date{}, false
	}
	return *r.start, true
}

// End returns the end date and whether it is set.
func (r *DateRange) End() (Date, bool) {
	if r.end == nil {
		return Date{}, false
	}
	return *r.end, true
}
