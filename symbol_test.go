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

import "testing"

func TestSymbolIdentity(t *testing.T) {
	a := NewSymbol("key")
	b := NewSymbol("key")

	if a == b {
		t.Error("NewSymbol(\"key\") == NewSymbol(\"key\"), want distinct identities")
	}
	if copied := a; copied != a {
		t.Error("a copied symbol must equal its original")
	}
}

func TestSymbolDescription(t *testing.T) {
	if got, want := NewSymbol("key").Description(), "key"; got != want {
		t.Errorf("NewSymbol(\"key\").Description() = %q, want %q", got, want)
	}
	if got, want := NewSymbol("key").String(), "Symbol(key)"; got != want {
		t.Errorf("NewSymbol(\"key\").String() = %q, want %q", got, want)
	}
	if got, want := (Symbol{}).String(), "Symbol()"; got != want {
		t.Errorf("Symbol{}.String() = %q, want %q", got, want)
	}
}

func TestSymbolsAsMapKeys(t *testing.T) {
	a := NewSymbol("k")
	b := NewSymbol("k")
	m := map[Symbol]int{a: 1, b: 2}

	if got, want := len(m), 2; got != want {
		t.Errorf("len(map with two same-description symbols) = %v, want %v", got, want)
	}
	if got, want := m[a], 1; got != want {
		t.Errorf("m[a] = %v, want %v", got, want)
	}
}
