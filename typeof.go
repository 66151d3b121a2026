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
	"bytes"
	"math"
	"math/big"
	"reflect"
	"regexp"
	"time"
)

// TypeOf returns the type tag of an arbitrary value. Classification is
// total: every input maps to exactly one tag and the function never
// panics. Branches are ordered and short-circuiting; the first match wins.
//
// Well-known types are matched nominally first, then numeric edge values
// are split out before kind dispatch (NaN by exact self-inequality, so no
// coercion is involved), and the remaining kinds fall through to their
// category tags. Values of kinds with no category, such as uintptr, yield
// TagUnknown.
func TypeOf(v any) Tag {
	if v == nil {
		return TagUndefined
	}

	switch t := v.(type) {
	case Symbol:
		return TagSymbol
	case big.Int:
		return TagBigInt
	case *big.Int:
		if t == nil {
			return TagNull
		}
		return TagBigInt
	case time.Time:
		return TagDate
	case *time.Time:
		if t == nil {
			return TagNull
		}
		return TagDate
	case regexp.Regexp:
		return TagRegexp
	case *regexp.Regexp:
		if t == nil {
			return TagNull
		}
		return TagRegexp
	case bytes.Buffer:
		return TagArrayBuffer
	case *bytes.Buffer:
		if t == nil {
			return TagNull
		}
		return TagArrayBuffer
	}

	if IsNull(v) {
		return TagNull
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return TagBoolean
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return TagNumber
	case reflect.Float32, reflect.Float64:
		return floatTag(rv.Float())
	case reflect.Complex64, reflect.Complex128:
		return complexTag(rv.Complex())
	case reflect.String:
		return TagString
	case reflect.Slice, reflect.Array:
		if tag, ok := typedArrayTag(rv.Type().Elem().Kind()); ok {
			return tag
		}
		return TagArray
	case reflect.Func:
		return TagFunction
	case reflect.Chan:
		return TagPromise
	case reflect.Map:
		return mapTag(rv.Type())
	case reflect.Struct, reflect.Ptr:
		if IsError(v) {
			return TagError
		}
		return TagObject
	default:
		return TagUnknown
	}
}

func floatTag(f float64) Tag {
	if f != f {
		return TagNaN
	}
	if math.IsInf(f, 0) {
		return TagInfinity
	}
	return TagNumber
}

// complexTag splits complex values the same way floats are split: a NaN in
// either part dominates an infinity.
func complexTag(c complex128) Tag {
	re, im := real(c), imag(c)
	if re != re || im != im {
		return TagNaN
	}
	if math.IsInf(re, 0) || math.IsInf(im, 0) {
		return TagInfinity
	}
	return TagNumber
}

// typedArrayTag maps fixed-width numeric element kinds to their sequence
// tags. Platform-width int and uint elements stay generic arrays.
func typedArrayTag(elem reflect.Kind) (Tag, bool) {
	switch elem {
	case reflect.Int8:
		return TagInt8Array, true
	case reflect.Uint8:
		return TagUint8Array, true
	case reflect.Int16:
		return TagInt16Array, true
	case reflect.Uint16:
		return TagUint16Array, true
	case reflect.Int32:
		return TagInt32Array, true
	case reflect.Uint32:
		return TagUint32Array, true
	case reflect.Float32:
		return TagFloat32Array, true
	case reflect.Float64:
		return TagFloat64Array, true
	case reflect.Int64:
		return TagBigInt64Array, true
	case reflect.Uint64:
		return TagBigUint64Array, true
	default:
		return "", false
	}
}

func mapTag(t reflect.Type) Tag {
	if isSetType(t) {
		return TagSet
	}
	if isPlainMapType(t) {
		return TagObject
	}
	return TagMap
}
