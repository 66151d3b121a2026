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
	"fmt"
	"reflect"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// ErrInvalidSource is returned by Pick and Omit when the source argument
// is not a non-nil object-shaped value.
var ErrInvalidSource = errors.New("source must be a non-nil object-shaped value")

// Pick returns a new map holding only the listed keys that are present on
// the source. The source may be a string-keyed map, a struct, or a non-nil
// pointer to either; it is never mutated. Keys absent from the source are
// skipped, and an empty key list yields an empty map.
func Pick(src any, keys ...string) (map[string]any, error) {
	fields, err := objectFields(src)
	if err != nil {
		return nil, err
	}
	out := make(map[string]any, len(keys))
	for _, k := range keys {
		if val, ok := fields[k]; ok {
			out[k] = val
		}
	}
	return out, nil
}

// Omit returns a new map holding every source key except the listed ones.
// The source may be a string-keyed map, a struct, or a non-nil pointer to
// either; it is never mutated. An empty key list yields a full shallow
// copy.
func Omit(src any, keys ...string) (map[string]any, error) {
	fields, err := objectFields(src)
	if err != nil {
		return nil, err
	}
	out := make(map[string]any, len(fields))
	for k, val := range fields {
		if !slices.Contains(keys, k) {
			out[k] = val
		}
	}
	return out, nil
}

// objectFields flattens an object-shaped source into a fresh
// map[string]any: map entries by key, struct values by exported field
// name.
func objectFields(src any) (map[string]any, error) {
	if IsNil(src) {
		return nil, fmt.Errorf("%w, got %s", ErrInvalidSource, TypeOf(src))
	}
	rv := reflect.ValueOf(src)
	if rv.Kind() == reflect.Ptr {
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, fmt.Errorf("%w, got a %s-keyed map", ErrInvalidSource, rv.Type().Key())
		}
		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out[iter.Key().String()] = iter.Value().Interface()
		}
		return out, nil
	case reflect.Struct:
		t := rv.Type()
		out := make(map[string]any, t.NumField())
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if !f.IsExported() {
				continue
			}
			out[f.Name] = rv.Field(i).Interface()
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w, got %s", ErrInvalidSource, TypeOf(src))
	}
}

// PickMap is the typed-map counterpart of Pick. It is nil-safe and never
// mutates its input.
func PickMap[K comparable, V any](m map[K]V, keys ...K) map[K]V {
	out := make(map[K]V, len(keys))
	for _, k := range keys {
		if val, ok := m[k]; ok {
			out[k] = val
		}
	}
	return out
}

// OmitMap is the typed-map counterpart of Omit. It is nil-safe and never
// mutates its input.
func OmitMap[K comparable, V any](m map[K]V, keys ...K) map[K]V {
	out := maps.Clone(m)
	if out == nil {
		out = make(map[K]V)
	}
	for _, k := range keys {
		delete(out, k)
	}
	return out
}
