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

// Symbol is an opaque value with a unique identity, intended for use as a
// collision-free key. Two symbols compare equal only if one was copied from
// the other; the description is for debugging and does not participate in
// identity.
type Symbol struct {
	desc *string
}

// NewSymbol returns a fresh Symbol with the given description. Each call
// returns a distinct symbol, even for equal descriptions.
func NewSymbol(description string) Symbol {
	return Symbol{desc: &description}
}

// Description returns the description the symbol was created with.
func (s Symbol) Description() string {
	if s.desc == nil {
		return ""
	}
	return *s.desc
}

func (s Symbol) String() string {
	return "Symbol(" + s.Description() + ")"
}
