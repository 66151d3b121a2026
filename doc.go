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

// Package core contains runtime type-inspection utilities: a set of
// predicates over arbitrary values, a classifier that maps any value to a
// tag from a closed set of lowercase type names, assertion helpers, and
// shallow object-shaping helpers.
//
// Every inspection function is a pure, total function over its argument:
// it never panics, performs no I/O, and is safe for concurrent use.
package core
