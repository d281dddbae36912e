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

// Option configures a RoutingTable at construction time.
type Option func(*RoutingTable)

// WithDiagnostics sets a diagnostic handler for the table.
//
// Diagnostic events are optional informational events — the table's
// matching behavior is unchanged whether diagnostics are collected or not.
//
// Example:
//
//	import "log/slog"
//
//	handler := triex.DiagnosticHandlerFunc(func(e triex.DiagnosticEvent) {
//	    slog.Warn(e.Message, "kind", e.Kind, "fields", e.Fields)
//	})
//	tbl := triex.New(triex.WithDiagnostics(handler))
func WithDiagnostics(handler DiagnosticHandler) Option {
	return func(t *RoutingTable) {
		t.diagnostics = handler
	}
}

// WithStaticBloomFilter enables a bloom-filter pre-check in front of the
// static route map. Off by default: the static map's plain O(1) lookup
// needs no help at the route counts most applications register. Large
// static route counts (hundreds to thousands) benefit from rejecting
// misses before touching the map.
//
// size is the bloom filter's bit-array size; numHashFuncs is the number of
// hash functions it applies. Both must be positive or the option panics,
// since New cannot itself return an error.
func WithStaticBloomFilter(size uint64, numHashFuncs int) Option {
	if size == 0 {
		panic("triex: bloom filter size must be non-zero")
	}

	if numHashFuncs <= 0 {
		panic("triex: bloom hash functions must be positive")
	}

	return func(t *RoutingTable) {
		t.bloomSize = size
		t.bloomHashFuncs = numHashFuncs
	}
}
