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
	"math"
	"math/big"
	"reflect"
	"runtime"
	"time"
)

// IsString returns true iff the given value has a string kind.
func IsString(v any) bool {
	if _, ok := v.(string); ok {
		return true
	}
	return reflect.ValueOf(v).Kind() == reflect.String
}

// IsBoolean returns true iff the given value has a bool kind.
func IsBoolean(v any) bool {
	if _, ok := v.(bool); ok {
		return true
	}
	return reflect.ValueOf(v).Kind() == reflect.Bool
}

// IsSymbol returns true iff the given value is a Symbol.
func IsSymbol(v any) bool {
	_, ok := v.(Symbol)
	return ok
}

// IsBigInt returns true iff the given value is a big.Int or a non-nil
// pointer to one.
func IsBigInt(v any) bool {
	return !IsNull(v) && IsInstanceOf(v, BigInt)
}

// IsNumber returns true iff the given value has an integer, unsigned,
// float, or complex kind and is a usable number: NaN and infinities are
// numeric-typed but not numbers.
func IsNumber(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	case reflect.Float32, reflect.Float64:
		return isFiniteFloat(rv.Float())
	case reflect.Complex64, reflect.Complex128:
		c := rv.Complex()
		return isFiniteFloat(real(c)) && isFiniteFloat(imag(c))
	default:
		return false
	}
}

func isFiniteFloat(f float64) bool {
	return f == f && !math.IsInf(f, 0)
}

// IsUndefined returns true iff the given value is a nil interface, which
// carries no type information at all.
func IsUndefined(v any) bool {
	return v == nil
}

// IsNull returns true iff the given value is a typed nil pointer, func, or
// unsafe pointer. Nil maps, slices and channels are not null: they behave
// as empty values of their kind and classify as such.
func IsNull(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Func, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}

// IsNil returns true iff the given value is undefined or null.
func IsNil(v any) bool {
	return IsUndefined(v) || IsNull(v)
}

// IsDefined returns true iff the given value is neither undefined nor
// null. Intended as a narrowing filter.
func IsDefined(v any) bool {
	return !IsNil(v)
}

// IsObject returns true iff the given value is in the object category:
// maps, slices, arrays, structs, pointers, channels and unsafe pointers.
// Nil and typed nils stay in the object category, matching the classic
// typeof quirk; callers needing to exclude them combine with IsNull or
// IsNil. Symbols and big.Ints have their own categories and are not
// objects.
func IsObject(v any) bool {
	if v == nil {
		return true
	}
	if IsSymbol(v) || IsInstanceOf(v, BigInt) {
		return false
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Map, reflect.Slice, reflect.Array, reflect.Struct,
		reflect.Ptr, reflect.Chan, reflect.UnsafePointer:
		return true
	default:
		return false
	}
}

// IsArray returns true iff the given value has a slice or array kind.
// Note that fixed-width numeric slices classify under their typed-array
// tags in TypeOf but still satisfy IsArray, since they are ordered
// sequences all the same.
func IsArray(v any) bool {
	switch reflect.ValueOf(v).Kind() {
	case reflect.Slice, reflect.Array:
		return true
	default:
		return false
	}
}

// IsPlainObject returns true iff the given value is a structured value
// with no named type behavior: a string-keyed map of any, or an anonymous
// struct (optionally behind a non-nil pointer). Named struct types are
// class instances, not plain objects.
func IsPlainObject(v any) bool {
	if IsNil(v) {
		return false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr {
		rv = rv.Elem()
	}
	t := rv.Type()
	switch t.Kind() {
	case reflect.Map:
		return isPlainMapType(t)
	case reflect.Struct:
		return t.Name() == ""
	default:
		return false
	}
}

// isPlainMapType reports whether t is a string-keyed map of any, the
// dynamic object shape.
func isPlainMapType(t reflect.Type) bool {
	return t.Key().Kind() == reflect.String && t.Elem() == Any
}

// isSetType reports whether t is a map with an empty struct element, the
// set idiom.
func isSetType(t reflect.Type) bool {
	e := t.Elem()
	return e.Kind() == reflect.Struct && e.NumField() == 0
}

// IsFunction returns true iff the given value is a non-nil func. Regular
// functions, methods, and closures all collapse to one category.
func IsFunction(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Func && !rv.IsNil()
}

// IsPromise returns true iff the given value is a channel, the native
// deferred-value primitive, or is thenable: a value whose type exposes
// callable Then, Catch and Finally methods. The value is only inspected,
// never received from or invoked.
func IsPromise(v any) bool {
	if IsNull(v) {
		return false
	}
	if reflect.ValueOf(v).Kind() == reflect.Chan {
		return true
	}
	return isThenable(v)
}

// isThenable applies the structural check: Then, Catch and Finally must
// all be present as methods. IsObject admits nil first so that the
// follow-up null filter, not a reflect panic, rejects nil input.
func isThenable(v any) bool {
	if !IsObject(v) || IsNil(v) {
		return false
	}
	rv := reflect.ValueOf(v)
	for _, name := range [...]string{"Then", "Catch", "Finally"} {
		if !rv.MethodByName(name).IsValid() {
			return false
		}
	}
	return true
}

// IsDate returns true iff the given value is a time.Time, or a non-nil
// pointer to one, holding a usable instant. The zero time is the invalid
// date: IsDate rejects it even though TypeOf still classifies it as a
// date.
func IsDate(v any) bool {
	switch t := v.(type) {
	case time.Time:
		return !t.IsZero()
	case *time.Time:
		return t != nil && !t.IsZero()
	default:
		return false
	}
}

// IsError returns true iff the given value implements error. Wrapped and
// derived errors all collapse to one category.
func IsError(v any) bool {
	_, ok := v.(error)
	return ok
}

// IsMap returns true iff the given value has a map kind, excluding the two
// shapes with categories of their own: empty-struct-element maps (sets)
// and string-keyed maps of any (plain objects).
func IsMap(v any) bool {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map {
		return false
	}
	t := rv.Type()
	return !isSetType(t) && !isPlainMapType(t)
}

// IsSet returns true iff the given value is a map with an empty struct
// element type, the conventional set shape. Mutually exclusive with IsMap.
func IsSet(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Map && isSetType(rv.Type())
}

// IsRegExp returns true iff the given value is a regexp.Regexp or a
// non-nil pointer to one.
func IsRegExp(v any) bool {
	return !IsNull(v) && IsInstanceOf(v, Regexp)
}

// IsInstanceOf returns true iff the given value is an instance of the
// given type: its type matches exactly, implements it when t is an
// interface, or points to it.
func IsInstanceOf(v any, t reflect.Type) bool {
	if v == nil || t == nil {
		return false
	}
	rt := reflect.TypeOf(v)
	if rt == t {
		return true
	}
	if t.Kind() == reflect.Interface && rt.Implements(t) {
		return true
	}
	return rt.Kind() == reflect.Ptr && rt.Elem() == t
}

// IsIterable returns true iff the given value can be ranged over: strings
// (as character sequences), slices, arrays, maps and channels, plus
// push-iterator funcs of the func(yield func(...) bool) shape.
func IsIterable(v any) bool {
	if IsNil(v) {
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String, reflect.Slice, reflect.Array, reflect.Map, reflect.Chan:
		return true
	case reflect.Func:
		return isSeqFuncType(rv.Type())
	default:
		return false
	}
}

// isSeqFuncType reports whether t has the push-iterator shape: a single
// func(...) bool parameter and no results.
func isSeqFuncType(t reflect.Type) bool {
	if t.NumIn() != 1 || t.NumOut() != 0 || t.IsVariadic() {
		return false
	}
	y := t.In(0)
	return y.Kind() == reflect.Func && y.NumOut() == 1 && y.Out(0).Kind() == reflect.Bool
}

// IsTruthy returns true iff the given value is truthy: nil, typed nils,
// false, zero and NaN numbers, zero big.Ints and empty strings are falsy;
// everything else, including empty collections, is truthy.
func IsTruthy(v any) bool {
	if IsNil(v) {
		return false
	}
	switch b := v.(type) {
	case big.Int:
		return b.Sign() != 0
	case *big.Int:
		return b.Sign() != 0
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f == f && f != 0
	case reflect.Complex64, reflect.Complex128:
		return rv.Complex() != 0
	case reflect.String:
		return rv.Len() != 0
	default:
		return true
	}
}

// FuncName returns the symbol name of a function value, or "" if the
// value is not a non-nil func.
func FuncName(fn any) string {
	rv := reflect.ValueOf(fn)
	if rv.Kind() != reflect.Func || rv.IsNil() {
		return ""
	}
	return runtime.FuncForPC(rv.Pointer()).Name()
}
