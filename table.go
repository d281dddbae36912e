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
	"sync/atomic"

	"github.com/arkrouter/triex/internal/bloom"
)

// Table is the capability contract a routing table implementation must
// satisfy. Clients should depend on this interface rather than *RoutingTable
// directly, so an alternate (e.g. native-accelerated) implementation can be
// substituted behind the same contract.
type Table interface {
	AddRoute(decl RouteDecl) error
	Prepare()
	Lookup(method Method, path string) (LookupResult, bool)
}

// LookupResult is the outcome of a successful RoutingTable.Lookup: the
// opaque route handle and the name -> parsed-value mapping extracted from
// the path. Params is always non-nil, even for a static route (where it is
// empty) — callers never need a nil check.
type LookupResult struct {
	Handle any
	Params map[string]any
}

// staticKey indexes the static route map by (path, method): a StaticRoute
// declaration contributes one entry per registered method.
type staticKey struct {
	path   string
	method Method
}

// RoutingTable is the top-level façade: it splits registered declarations
// into a fast static map (no parameters) and a trie (parameterized),
// orchestrates the one-shot compaction pass, and serves lookups.
//
// Lifecycle: construct with New, call AddRoute for every declaration (in
// any order), then either call Prepare explicitly or let the first Lookup
// trigger it implicitly. After Prepare, the table is frozen: AddRoute
// returns ErrTableFrozen.
type RoutingTable struct {
	staticRoutes map[staticKey]RouteDecl
	trie         *trieNode

	prepared atomic.Bool

	diagnostics DiagnosticHandler

	bloomSize      uint64
	bloomHashFuncs int
	staticBloom    *bloom.Filter
}

// New constructs an empty RoutingTable.
func New(opts ...Option) *RoutingTable {
	t := &RoutingTable{
		staticRoutes: make(map[staticKey]RouteDecl),
		trie:         newTrieNode(),
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// AddRoute dispatches decl to the static map or the trie based on its tag.
// For a StaticRoute, one entry per method is inserted (a full duplicate
// registration silently overwrites the earlier one — last wins). For a
// ParamRoute, the declaration descends into the trie per its Parts.
//
// AddRoute must not be called after Prepare; doing so returns
// ErrTableFrozen without modifying the table.
func (t *RoutingTable) AddRoute(decl RouteDecl) error {
	if t.prepared.Load() {
		return ErrTableFrozen
	}

	switch decl.Kind {
	case DeclStaticRoute:
		for m := range decl.Methods {
			t.staticRoutes[staticKey{path: decl.Path, method: m}] = decl
		}
	case DeclParamRoute:
		if !paramNamesMatch(decl) {
			return ErrParamNamesMismatch
		}

		if err := t.trie.addRoute(decl, decl.Parts); err != nil {
			return err
		}
	default:
		return ErrUnknownRouteDecl
	}

	t.emit(DiagRouteRegistered, "route registered", map[string]any{
		"path": decl.Path,
		"kind": decl.Kind,
	})

	return nil
}

// paramNamesMatch checks the invariant that ParamNames equals the ordered
// sequence of Param.Name values in Parts.
func paramNamesMatch(decl RouteDecl) bool {
	names := paramNamesOf(decl.Parts)

	if len(names) != len(decl.ParamNames) {
		return false
	}

	for i, name := range names {
		if name != decl.ParamNames[i] {
			return false
		}
	}

	return true
}

// Prepare runs the one-shot compaction pass and freezes the table.
// Idempotent: a second call is a no-op.
func (t *RoutingTable) Prepare() {
	if t.prepared.Load() {
		return
	}

	t.trie.prepare()

	if t.bloomSize > 0 {
		t.staticBloom = bloom.New(t.bloomSize, t.bloomHashFuncs)
		for key := range t.staticRoutes {
			t.staticBloom.Add(staticBloomKey(key))
		}
	}

	t.prepared.Store(true)

	t.emit(DiagPrepareCalled, "routing table prepared", nil)
}

// Lookup normalizes path, probes the static map, and on miss delegates to
// the trie, zipping the matched route's ParamNames with the trie's
// extracted argument values. Prepare runs implicitly on first Lookup if it
// has not already run explicitly.
func (t *RoutingTable) Lookup(method Method, rawPath string) (LookupResult, bool) {
	if !t.prepared.Load() {
		t.Prepare()
	}

	path := Normalize(rawPath)
	key := staticKey{path: path, method: method}

	if t.staticBloom == nil || t.staticBloom.Test(staticBloomKey(key)) {
		if decl, ok := t.staticRoutes[key]; ok {
			return LookupResult{Handle: decl.Handle, Params: map[string]any{}}, true
		}
	}

	res, ok := t.trie.lookup(method, path)
	if !ok {
		return LookupResult{}, false
	}

	params := make(map[string]any, len(res.decl.ParamNames))
	for i, name := range res.decl.ParamNames {
		params[name] = res.args[i]
	}

	return LookupResult{Handle: res.decl.Handle, Params: params}, true
}

// staticBloomKey renders a staticKey into the byte form fed to the bloom
// filter. The method's String() form disambiguates identical paths
// registered under different methods.
func staticBloomKey(key staticKey) []byte {
	return []byte(key.method.String() + " " + key.path)
}
