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

// Package triex implements a routing table: given a declared set of routes
// and a (method, path) lookup, it returns the matching route's handle and
// its typed path parameters.
//
// Routes are split into two tiers on registration:
//
//   - Static routes (no path parameters) land in a flat map keyed by
//     (path, method) for O(1) lookup.
//   - Parameterized routes are compiled into a segment trie keyed by path
//     segment, with static children tried before parameter children, and
//     parameter children tried in a fixed type-priority order
//     (uuid < int < float < str < path).
//
// Prepare compacts the trie once: parameter-child maps are reordered by
// priority, and linear chains of single-static-child nodes are fused into a
// single radix-compare edge. After Prepare the table is frozen; AddRoute
// returns ErrTableFrozen if called again.
//
// # Quick Start
//
//	tbl := triex.New()
//	tbl.AddRoute(triex.NewStaticRoute(handle, triex.Methods(triex.GET), "health"))
//	tbl.AddRoute(triex.NewParamRoute(handle2, triex.Methods(triex.GET), "/users/{id}",
//	    []triex.PathPart{triex.Static("users"), triex.Param("id", triex.Int)},
//	    []string{"id"},
//	))
//	tbl.Prepare()
//
//	res, ok := tbl.Lookup(triex.GET, "/users/123")
//	// res.Params["id"] == int64(123)
//
// This package is the core of an HTTP router, not a router: it never parses
// a framework's native route objects, never invokes a handler, and performs
// no I/O. See SPEC_FULL.md for the full boundary contract.
package triex
