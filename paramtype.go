// Copyright 2025 The Rivaas Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package triex

import (
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// ParamType is the closed set of recognized path-parameter types. The zero
// value is not a valid ParamType.
type ParamType uint8

const (
	// UUID accepts an RFC-4122 canonical textual UUID.
	UUID ParamType = iota + 1
	// Int accepts an optional sign followed by decimal digits.
	Int
	// Float accepts a decimal or exponential numeric literal; anything Int
	// accepts also matches.
	Float
	// Str accepts any non-empty segment containing no '/'.
	Str
	// Path accepts any string, including one containing '/'. It is greedy
	// to the end of the matched path.
	Path
)

// paramTypePriority gives the fixed total order routing tries candidates
// in: lower value is tried first. Types absent from this table (impossible
// in the closed enum, but kept as a defensive fallback) sort after every
// known type.
var paramTypePriority = map[ParamType]int{
	UUID:  0,
	Int:   1,
	Float: 2,
	Str:   3,
	Path:  4,
}

// Priority returns t's fixed matching priority. Lower sorts first.
func Priority(t ParamType) int {
	if p, ok := paramTypePriority[t]; ok {
		return p
	}

	return math.MaxInt
}

// String renders the ParamType's canonical name, as used in {name:type}
// patterns and diagnostic output.
func (t ParamType) String() string {
	switch t {
	case UUID:
		return "uuid"
	case Int:
		return "int"
	case Float:
		return "float"
	case Str:
		return "str"
	case Path:
		return "path"
	default:
		return "unknown"
	}
}

// Validate reports whether segment is acceptable for t and, if so, returns
// the parsed value. The parsed value's dynamic type depends on t:
//
//	UUID  -> uuid.UUID
//	Int   -> int64
//	Float -> float64
//	Str   -> string (the segment itself)
//	Path  -> string (the segment itself, which may contain '/')
//
// Validate never panics on malformed input — a parse failure is reported
// via ok=false, never an error, so the trie can try the next candidate.
func Validate(t ParamType, segment string) (ok bool, parsed any) {
	switch t {
	case UUID:
		id, err := uuid.Parse(segment)
		if err != nil {
			return false, nil
		}

		return true, id
	case Int:
		n, err := strconv.ParseInt(segment, 10, 64)
		if err != nil {
			return false, nil
		}

		return true, n
	case Float:
		if segment == "" {
			return false, nil
		}

		f, err := strconv.ParseFloat(segment, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return false, nil
		}

		return true, f
	case Str:
		if segment == "" || strings.Contains(segment, "/") {
			return false, nil
		}

		return true, segment
	case Path:
		return true, segment
	default:
		return false, nil
	}
}
