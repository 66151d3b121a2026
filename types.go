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
	"math/big"
	"reflect"
	"regexp"
	"time"
)

// Well-known reflected types. Convenience definitions.
var (
	Bool    = reflect.TypeOf((*bool)(nil)).Elem()
	Int     = reflect.TypeOf((*int)(nil)).Elem()
	Int8    = reflect.TypeOf((*int8)(nil)).Elem()
	Int16   = reflect.TypeOf((*int16)(nil)).Elem()
	Int32   = reflect.TypeOf((*int32)(nil)).Elem()
	Int64   = reflect.TypeOf((*int64)(nil)).Elem()
	Uint    = reflect.TypeOf((*uint)(nil)).Elem()
	Uint8   = reflect.TypeOf((*uint8)(nil)).Elem()
	Uint16  = reflect.TypeOf((*uint16)(nil)).Elem()
	Uint32  = reflect.TypeOf((*uint32)(nil)).Elem()
	Uint64  = reflect.TypeOf((*uint64)(nil)).Elem()
	Float32 = reflect.TypeOf((*float32)(nil)).Elem()
	Float64 = reflect.TypeOf((*float64)(nil)).Elem()
	String  = reflect.TypeOf((*string)(nil)).Elem()
	Error   = reflect.TypeOf((*error)(nil)).Elem()

	Any        = reflect.TypeOf((*any)(nil)).Elem()
	ByteSlice  = reflect.TypeOf((*[]byte)(nil)).Elem()
	Time       = reflect.TypeOf((*time.Time)(nil)).Elem()
	BigInt     = reflect.TypeOf((*big.Int)(nil)).Elem()
	Regexp     = reflect.TypeOf((*regexp.Regexp)(nil)).Elem()
	ByteBuffer = reflect.TypeOf((*bytes.Buffer)(nil)).Elem()
)

// Tag is the type category of a value as distinguished by TypeOf. Tags form
// a closed set: every value classifies to exactly one of them, and the
// classification never fails. The tag is its own lowercase string form.
type Tag string

const (
	// TagUndefined is the tag of a nil interface value, which carries no
	// type information at all.
	TagUndefined Tag = "undefined"
	// TagNull is the tag of a typed nil, such as a nil pointer or nil func.
	TagNull     Tag = "null"
	TagBoolean  Tag = "boolean"
	TagNumber   Tag = "number"
	TagNaN      Tag = "nan"
	TagInfinity Tag = "infinity"
	TagString   Tag = "string"
	TagSymbol   Tag = "symbol"
	TagBigInt   Tag = "bigint"
	TagArray    Tag = "array"
	TagDate     Tag = "date"
	TagRegexp   Tag = "regexp"
	TagFunction Tag = "function"
	TagObject   Tag = "object"
	TagMap      Tag = "map"
	TagSet      Tag = "set"
	TagPromise  Tag = "promise"
	TagError    Tag = "error"

	TagArrayBuffer    Tag = "arraybuffer"
	TagInt8Array      Tag = "int8array"
	TagUint8Array     Tag = "uint8array"
	TagInt16Array     Tag = "int16array"
	TagUint16Array    Tag = "uint16array"
	TagInt32Array     Tag = "int32array"
	TagUint32Array    Tag = "uint32array"
	TagFloat32Array   Tag = "float32array"
	TagFloat64Array   Tag = "float64array"
	TagBigInt64Array  Tag = "bigint64array"
	TagBigUint64Array Tag = "biguint64array"

	// TagUnknown is the tag of values no other branch recognizes, such as
	// uintptr or unsafe.Pointer values.
	TagUnknown Tag = "unknown"
)

func (t Tag) String() string {
	return string(t)
}

// IsNumeric returns true iff the tag names a numeric category, including
// the numeric edge tags and bigint.
func (t Tag) IsNumeric() bool {
	switch t {
	case TagNumber, TagNaN, TagInfinity, TagBigInt:
		return true
	default:
		return false
	}
}

// IsTypedArray returns true iff the tag names a fixed-width numeric
// sequence category.
func (t Tag) IsTypedArray() bool {
	switch t {
	case TagInt8Array, TagUint8Array, TagInt16Array, TagUint16Array,
		TagInt32Array, TagUint32Array, TagFloat32Array, TagFloat64Array,
		TagBigInt64Array, TagBigUint64Array:
		return true
	default:
		return false
	}
}

// IsInteger returns true iff the given type is an integer, such as
// uint16, int, or int64.
func IsInteger(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	default:
		return false
	}
}

// IsFloat returns true iff the given type is float32 or float64.
func IsFloat(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

// IsComplex returns true iff the given type is complex64 or complex128.
func IsComplex(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Complex64, reflect.Complex128:
		return true
	default:
		return false
	}
}
