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
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-03-15")
	if err != nil {
		t.Fatalf("parse date: %v", err)
	}
	if d.String() != "2024-03-15" {
		t.Fatalf("unexpected date: %s", d)
	}
	if _, err := ParseDate("15/03/2024"); !IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if _, err := ParseDate("2024-02-30"); !IsValidation(err) {
		t.Fatalf("impossible date should be rejected, got %v", err)
	}
}

func TestDateJSONRoundTrip(t *testing.T) {
	d := NewDate(2023, time.November, 7)
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `"2023-11-07"` {
		t.Fatalf("unexpected encoding: %s", data)
	}
	var back Date
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !back.Equal(d) {
		t.Fatalf("round trip mismatch: %s != %s", back, d)
	}
	if err := json.Unmarshal([]byte(`"not a date"`), &back); err == nil {
		t.Fatal("expected error for malformed date")
	}
}

func TestDateJSONNull(t *testing.T) {
	var d Date
	if err := json.Unmarshal([]byte("null"), &d); err != nil {
		t.Fatalf("unmarshal null: %v", err)
	}
	if !d.IsZero() {
		t.Fatalf("null should decode to the zero date, got %s", d)
	}
}

func TestDateSQLValue(t *testing.T) {
	d := NewDate(2022, time.May, 9)
	v, err := d.Value()
	if err != nil {
		t.Fatalf("value: %v", err)
	}
	if v != "2022-05-09" {
		t.Fatalf("unexpected driver value: %v", v)
	}
	var zero Date
	v, err = zero.Value()
	if err != nil {
		t.Fatalf("zero value: %v", err)
	}
	if v != nil {
		t.Fatalf("zero date should store NULL, got %v", v)
	}
}

func TestDateScan(t *testing.T) {
	var d Date
	if err := d.Scan("2021-08-30"); err != nil {
		t.Fatalf("scan string: %v", err)
	}
	if d.String() != "2021-08-30" {
		t.Fatalf("unexpected date: %s", d)
	}
	if err := d.Scan([]byte("2020-01-02")); err != nil {
		t.Fatalf("scan bytes: %v", err)
	}
	ts := time.Date(2019, time.July, 4, 13, 45, 0, 0, time.UTC)
	if err := d.Scan(ts); err != nil {
		t.Fatalf("scan time: %v", err)
	}
	if d.String() != "2019-07-04" {
		t.Fatalf("time scan should keep the calendar day, got %s", d)
	}
	if err := d.Scan(nil); err != nil {
		t.Fatalf("scan nil: %v", err)
	}
	if !d.IsZero() {
		t.Fatal("nil scan should reset to the zero date")
	}
	if err := d.Scan(42); err == nil {
		t.Fatal("expected error for unsupported scan type")
	}
}

func TestDateOrdering(t *testing.T) {
	early := NewDate(2024, time.January, 1)
	late := NewDate(2024, time.June, 15)
	if !early.Before(late) || !late.After(early) {
		t.Fatal("date ordering is wrong")
	}
	if early.Equal(late) {
		t.Fatal("distinct dates should not be equal")
	}
	if !Today().After(early) {
		t.Fatal("today should come after 2024-01-01")
	}
}
