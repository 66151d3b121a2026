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
	"fmt"
	"io"
)

// AssertionError is the error returned by Assert and Raise. It carries the
// caller-supplied message and, optionally, an underlying cause reachable
// through Unwrap, so errors.Is and errors.As traverse the chain.
type AssertionError struct {
	msg   string
	cause error
}

// Error outputs the assertion message, followed by the cause chain when
// one is present.
func (e *AssertionError) Error() string {
	if e.cause == nil {
		return e.msg
	}
	return e.msg + "\n\tcaused by:\n" + e.cause.Error()
}

// Unwrap returns the cause of this error if present.
func (e *AssertionError) Unwrap() error {
	return e.cause
}

// Format implements the fmt.Formatter interface.
func (e *AssertionError) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v', 's':
		io.WriteString(s, e.Error())
	case 'q':
		fmt.Fprintf(s, "%q", e.Error())
	}
}

// AssertOption configures the error produced by Assert or Raise.
type AssertOption func(*AssertionError)

// Cause attaches an underlying cause to the assertion error.
func Cause(err error) AssertOption {
	return func(e *AssertionError) {
		e.cause = err
	}
}

// Assert returns nil when cond is truthy (see IsTruthy) and an
// *AssertionError with the given message otherwise. An empty message
// defaults to "assertion failed".
func Assert(cond any, msg string, opts ...AssertOption) error {
	if IsTruthy(cond) {
		return nil
	}
	return Raise(msg, opts...)
}

// Raise always returns an *AssertionError with the given message.
func Raise(msg string, opts ...AssertOption) error {
	if msg == "" {
		msg = "assertion failed"
	}
	e := &AssertionError{msg: msg}
	for _, opt := range opts {
		opt(e)
	}
	return e
}
