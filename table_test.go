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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// TableTestSuite exercises RoutingTable end to end, combining the static
// map and the trie.
type TableTestSuite struct {
	suite.Suite
}

func addParam(t *testing.T, tbl *RoutingTable, handle any, methods MethodSet, path string, params map[string]ParamType) {
	t.Helper()

	parts := SplitParts(Normalize(path), params)
	require.NoError(t, tbl.AddRoute(NewParamRoute(handle, methods, Normalize(path), parts, paramNamesOf(parts))))
}

func (s *TableTestSuite) TestHealthRoute() {
	tbl := New()
	require.NoError(s.T(), tbl.AddRoute(NewStaticRoute("H1", Methods(GET), "health")))

	res, ok := tbl.Lookup(GET, "/health")
	require.True(s.T(), ok)
	assert.Equal(s.T(), "H1", res.Handle)
	assert.Empty(s.T(), res.Params)

	_, ok = tbl.Lookup(POST, "/health")
	assert.False(s.T(), ok)
}

func (s *TableTestSuite) TestUserIDAndStaticMeCompete() {
	tbl := New()
	addParam(s.T(), tbl, "U", Methods(GET), "/users/{user_id}", map[string]ParamType{"user_id": Int})
	require.NoError(s.T(), tbl.AddRoute(NewStaticRoute("M", Methods(GET), "users/me")))

	res, ok := tbl.Lookup(GET, "/users/123")
	require.True(s.T(), ok)
	assert.Equal(s.T(), "U", res.Handle)
	assert.Equal(s.T(), int64(123), res.Params["user_id"])

	res, ok = tbl.Lookup(GET, "/users/me")
	require.True(s.T(), ok)
	assert.Equal(s.T(), "M", res.Handle)
	assert.Empty(s.T(), res.Params)

	_, ok = tbl.Lookup(GET, "/users/abc")
	assert.False(s.T(), ok)
}

func (s *TableTestSuite) TestNestedParams() {
	tbl := New()
	addParam(s.T(), tbl, "P", Methods(GET), "/users/{user_id}/posts/{post_id}",
		map[string]ParamType{"user_id": Int, "post_id": Int})

	res, ok := tbl.Lookup(GET, "/users/7/posts/42")
	require.True(s.T(), ok)
	assert.Equal(s.T(), "P", res.Handle)
	assert.Equal(s.T(), int64(7), res.Params["user_id"])
	assert.Equal(s.T(), int64(42), res.Params["post_id"])
}

// Both routes have no path parameters, so they land in the static map, not
// the trie — radix fusion on a shared static prefix is exercised directly
// against the trie component in TestRadixFusionIsLookupTransparent.
func (s *TableTestSuite) TestSharedStaticPrefixRoutesBothResolve() {
	tbl := New()
	require.NoError(s.T(), tbl.AddRoute(NewStaticRoute("A", Methods(GET), "api/v1/status")))
	require.NoError(s.T(), tbl.AddRoute(NewStaticRoute("B", Methods(GET), "api/v1/info")))

	res, ok := tbl.Lookup(GET, "/api/v1/status")
	require.True(s.T(), ok)
	assert.Equal(s.T(), "A", res.Handle)

	res, ok = tbl.Lookup(GET, "/api/v1/info")
	require.True(s.T(), ok)
	assert.Equal(s.T(), "B", res.Handle)
}

func (s *TableTestSuite) TestPathParam() {
	tbl := New()
	addParam(s.T(), tbl, "F", Methods(GET), "/files/{rest}", map[string]ParamType{"rest": Path})

	res, ok := tbl.Lookup(GET, "/files/a/b/c")
	require.True(s.T(), ok)
	assert.Equal(s.T(), "a/b/c", res.Params["rest"])
}

func (s *TableTestSuite) TestUUIDVsStrPriority() {
	tbl := New()
	addParam(s.T(), tbl, "U", Methods(GET), "/items/{id}", map[string]ParamType{"id": UUID})
	addParam(s.T(), tbl, "S", Methods(GET), "/items/{slug}", map[string]ParamType{"slug": Str})

	res, ok := tbl.Lookup(GET, "/items/550e8400-e29b-41d4-a716-446655440000")
	require.True(s.T(), ok)
	assert.Equal(s.T(), "U", res.Handle)

	res, ok = tbl.Lookup(GET, "/items/widget")
	require.True(s.T(), ok)
	assert.Equal(s.T(), "S", res.Handle)
}

func TestTableSuite(t *testing.T) {
	suite.Run(t, new(TableTestSuite))
}

func TestAddRouteAfterPrepareFails(t *testing.T) {
	tbl := New()
	require.NoError(t, tbl.AddRoute(NewStaticRoute("H", Methods(GET), "health")))
	tbl.Prepare()

	err := tbl.AddRoute(NewStaticRoute("X", Methods(GET), "other"))
	assert.ErrorIs(t, err, ErrTableFrozen)
}

func TestPrepareIsIdempotentOnTable(t *testing.T) {
	tbl := New()
	require.NoError(t, tbl.AddRoute(NewStaticRoute("H", Methods(GET), "health")))

	tbl.Prepare()
	tbl.Prepare()

	res, ok := tbl.Lookup(GET, "/health")
	require.True(t, ok)
	assert.Equal(t, "H", res.Handle)
}

func TestStaticRouteWinsOverSynonymousTriePath(t *testing.T) {
	tbl := New()
	require.NoError(t, tbl.AddRoute(NewStaticRoute("STATIC", Methods(GET), "users/me")))
	addParam(t, tbl, "PARAM", Methods(GET), "/users/{name}", map[string]ParamType{"name": Str})

	res, ok := tbl.Lookup(GET, "/users/me")
	require.True(t, ok)
	assert.Equal(t, "STATIC", res.Handle)
}

func TestInsertionOrderIndependenceOfLookupSet(t *testing.T) {
	build := func(reverse bool) *RoutingTable {
		tbl := New()

		adds := []func(){
			func() { require.NoError(t, tbl.AddRoute(NewStaticRoute("H", Methods(GET), "health"))) },
			func() { addParam(t, tbl, "U", Methods(GET), "/users/{id}", map[string]ParamType{"id": Int}) },
			func() { require.NoError(t, tbl.AddRoute(NewStaticRoute("M", Methods(GET), "users/me"))) },
		}

		if reverse {
			for i := len(adds) - 1; i >= 0; i-- {
				adds[i]()
			}
		} else {
			for _, add := range adds {
				add()
			}
		}

		return tbl
	}

	forward := build(false)
	backward := build(true)

	for _, path := range []string{"/health", "/users/me", "/users/123"} {
		fRes, fOK := forward.Lookup(GET, path)
		bRes, bOK := backward.Lookup(GET, path)

		assert.Equal(t, fOK, bOK)

		if fOK {
			assert.Equal(t, fRes.Handle, bRes.Handle)
		}
	}
}

func TestWithStaticBloomFilterAgreesWithoutIt(t *testing.T) {
	plain := New()
	bloomed := New(WithStaticBloomFilter(1024, 3))

	for _, tbl := range []*RoutingTable{plain, bloomed} {
		require.NoError(t, tbl.AddRoute(NewStaticRoute("H", Methods(GET), "health")))
		require.NoError(t, tbl.AddRoute(NewStaticRoute("R", Methods(GET), "ready")))
	}

	for _, path := range []string{"/health", "/ready", "/missing"} {
		pRes, pOK := plain.Lookup(GET, path)
		bRes, bOK := bloomed.Lookup(GET, path)

		assert.Equal(t, pOK, bOK, path)

		if pOK {
			assert.Equal(t, pRes.Handle, bRes.Handle, path)
		}
	}
}

func TestParamNamesMismatchRejected(t *testing.T) {
	tbl := New()
	parts := []PathPart{Static("users"), Param("id", Int)}

	err := tbl.AddRoute(NewParamRoute("U", Methods(GET), "users/{id}", parts, []string{"wrong_name"}))
	assert.ErrorIs(t, err, ErrParamNamesMismatch)
}

func TestDiagnosticsFireOnRegisterAndPrepare(t *testing.T) {
	var kinds []DiagnosticKind

	handler := DiagnosticHandlerFunc(func(e DiagnosticEvent) {
		kinds = append(kinds, e.Kind)
	})

	tbl := New(WithDiagnostics(handler))
	require.NoError(t, tbl.AddRoute(NewStaticRoute("H", Methods(GET), "health")))
	tbl.Prepare()
	tbl.Prepare() // second call must not re-fire DiagPrepareCalled

	assert.Contains(t, kinds, DiagRouteRegistered)

	count := 0

	for _, k := range kinds {
		if k == DiagPrepareCalled {
			count++
		}
	}

	assert.Equal(t, 1, count)
}
