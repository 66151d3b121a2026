// Licensed to the Apache Software Foundation (ASF) under one or more
// contributor license agreements.  See the NOTICE file distributed with
// this work for additional information regarding copyright ownership.
// The ASF licenses this file to You under the Apache License, Version 2.0
// (the "License"); you may not use this file except in compliance with
// the License.  You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package core

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPick(t *testing.T) {
	src := map[string]any{"a": 1, "b": "two", "c": 3.0}

	got, err := Pick(src, "a", "c", "missing")
	if err != nil {
		t.Fatalf("Pick(%v, a, c, missing) failed: %v", src, err)
	}
	want := map[string]any{"a": 1, "c": 3.0}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("Pick(%v, a, c, missing) diff (-want, +got):\n%v", src, d)
	}

	got, err = Pick(src)
	if err != nil {
		t.Fatalf("Pick(%v) failed: %v", src, err)
	}
	if d := cmp.Diff(map[string]any{}, got); d != "" {
		t.Errorf("Pick(%v) with no keys diff (-want, +got):\n%v", src, d)
	}
}

func TestOmit(t *testing.T) {
	src := map[string]any{"a": 1, "b": "two", "c": 3.0}

	got, err := Omit(src, "b")
	if err != nil {
		t.Fatalf("Omit(%v, b) failed: %v", src, err)
	}
	want := map[string]any{"a": 1, "c": 3.0}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("Omit(%v, b) diff (-want, +got):\n%v", src, d)
	}

	got, err = Omit(src)
	if err != nil {
		t.Fatalf("Omit(%v) failed: %v", src, err)
	}
	if d := cmp.Diff(src, got); d != "" {
		t.Errorf("Omit(%v) with no keys diff (-want, +got):\n%v", src, d)
	}
}

// TestPickOmitRoundTrip tests that picking and omitting the same keys
// splits the source into complementary halves.
func TestPickOmitRoundTrip(t *testing.T) {
	src := map[string]any{"a": 1, "b": 2, "c": 3, "d": 4}
	keys := []string{"a", "c"}

	picked, err := Pick(src, keys...)
	if err != nil {
		t.Fatalf("Pick failed: %v", err)
	}
	omitted, err := Omit(src, keys...)
	if err != nil {
		t.Fatalf("Omit failed: %v", err)
	}

	merged := make(map[string]any, len(src))
	for k, v := range picked {
		merged[k] = v
	}
	for k, v := range omitted {
		merged[k] = v
	}
	if d := cmp.Diff(src, merged); d != "" {
		t.Errorf("merged Pick and Omit halves do not reconstruct the source (-want, +got):\n%v", d)
	}
	for k := range picked {
		if _, ok := omitted[k]; ok {
			t.Errorf("key %q present in both Pick and Omit results", k)
		}
	}
}

func TestPickStructSource(t *testing.T) {
	type person struct {
		Name string
		Age  int
		note string // unexported, never copied
	}
	src := person{Name: "Ada", Age: 36, note: "x"}

	got, err := Pick(src, "Name")
	if err != nil {
		t.Fatalf("Pick(person, Name) failed: %v", err)
	}
	if d := cmp.Diff(map[string]any{"Name": "Ada"}, got); d != "" {
		t.Errorf("Pick(person, Name) diff (-want, +got):\n%v", d)
	}

	got, err = Omit(&src, "Age")
	if err != nil {
		t.Fatalf("Omit(&person, Age) failed: %v", err)
	}
	if d := cmp.Diff(map[string]any{"Name": "Ada"}, got); d != "" {
		t.Errorf("Omit(&person, Age) diff (-want, +got):\n%v", d)
	}
}

func TestPickDoesNotMutateSource(t *testing.T) {
	src := map[string]any{"a": 1, "b": 2}
	if _, err := Pick(src, "a"); err != nil {
		t.Fatalf("Pick failed: %v", err)
	}
	if _, err := Omit(src, "a"); err != nil {
		t.Fatalf("Omit failed: %v", err)
	}
	if d := cmp.Diff(map[string]any{"a": 1, "b": 2}, src); d != "" {
		t.Errorf("source mutated (-want, +got):\n%v", d)
	}
}

func TestPickInvalidSource(t *testing.T) {
	tests := []any{
		nil,
		(*testStruct)(nil),
		42,
		"str",
		[]int{1},
		map[int]string{1: "a"},
	}

	for _, src := range tests {
		if _, err := Pick(src, "a"); !errors.Is(err, ErrInvalidSource) {
			t.Errorf("Pick(%#v, a) error = %v, want ErrInvalidSource", src, err)
		}
		if _, err := Omit(src, "a"); !errors.Is(err, ErrInvalidSource) {
			t.Errorf("Omit(%#v, a) error = %v, want ErrInvalidSource", src, err)
		}
	}
}

func TestPickMapOmitMap(t *testing.T) {
	src := map[string]int{"a": 1, "b": 2, "c": 3}

	if got, want := PickMap(src, "a", "z"), (map[string]int{"a": 1}); !cmp.Equal(want, got) {
		t.Errorf("PickMap(%v, a, z) = %v, want %v", src, got, want)
	}
	if got, want := OmitMap(src, "a"), (map[string]int{"b": 2, "c": 3}); !cmp.Equal(want, got) {
		t.Errorf("OmitMap(%v, a) = %v, want %v", src, got, want)
	}
	if got := OmitMap[string, int](nil); got == nil || len(got) != 0 {
		t.Errorf("OmitMap(nil) = %v, want an empty non-nil map", got)
	}
	if d := cmp.Diff(map[string]int{"a": 1, "b": 2, "c": 3}, src); d != "" {
		t.Errorf("source mutated (-want, +got):\n%v", d)
	}
}
