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

// DiagnosticEvent represents a routing-table diagnostic or anomaly.
// These are informational events useful for observability: a route was
// registered, or the trie was compacted.
//
// Diagnostic events are optional — the table functions correctly whether
// they are collected or not. Emitting one never performs I/O; it only
// calls the configured handler synchronously.
type DiagnosticEvent struct {
	Kind    DiagnosticKind
	Message string
	Fields  map[string]any // Structured context
}

// DiagnosticKind categorizes diagnostic events.
type DiagnosticKind string

const (
	// DiagRouteRegistered fires once per successful AddRoute call; a call
	// that returns an error does not fire it.
	DiagRouteRegistered DiagnosticKind = "route_registered"

	// DiagPrepareCalled fires the first time Prepare runs its one-shot
	// compaction pass. Subsequent calls are no-ops and do not re-fire it.
	DiagPrepareCalled DiagnosticKind = "prepare_called"
)

// DiagnosticHandler receives diagnostic events from the routing table.
// Implementations may log, emit metrics, trace events, or ignore them.
//
// This interface is optional — if not provided, diagnostics are silently
// dropped. The table's matching behavior is unchanged whether diagnostics
// are collected or not.
//
// Example with logging:
//
//	import "log/slog"
//
//	handler := triex.DiagnosticHandlerFunc(func(e triex.DiagnosticEvent) {
//	    slog.Info(e.Message, "kind", e.Kind, "fields", e.Fields)
//	})
//	tbl := triex.New(triex.WithDiagnostics(handler))
type DiagnosticHandler interface {
	OnDiagnostic(DiagnosticEvent)
}

// DiagnosticHandlerFunc is a function adapter for DiagnosticHandler.
type DiagnosticHandlerFunc func(DiagnosticEvent)

func (f DiagnosticHandlerFunc) OnDiagnostic(e DiagnosticEvent) {
	f(e)
}

// emit dispatches e to the table's configured handler, if any. Nil-safe so
// callers never need to check for a configured handler first.
func (t *RoutingTable) emit(kind DiagnosticKind, message string, fields map[string]any) {
	if t.diagnostics == nil {
		return
	}

	t.diagnostics.OnDiagnostic(DiagnosticEvent{Kind: kind, Message: message, Fields: fields})
}
