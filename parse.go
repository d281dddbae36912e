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

import "strings"

// Normalize strips exactly one leading and one trailing '/' from path, if
// present. It does not collapse internal "//" — a pattern like "a//b"
// yields the three parts ["a", "", "b"], and the empty literal segment
// participates in matching normally.
func Normalize(path string) string {
	path = strings.TrimPrefix(path, "/")
	path = strings.TrimSuffix(path, "/")

	return path
}

// SplitParts splits a normalized pattern on '/' into an ordered PathPart
// sequence. A piece wrapped in "{name}" is looked up in params to find its
// ParamType; if the name isn't present, the piece is silently dropped (the
// registration producer is expected to supply every declared name — this
// guards only against mismatched converter sets). Every other piece becomes
// a Static part with the piece's literal text.
func SplitParts(pattern string, params map[string]ParamType) []PathPart {
	pieces := strings.Split(pattern, "/")
	parts := make([]PathPart, 0, len(pieces))

	for _, piece := range pieces {
		if strings.HasPrefix(piece, "{") && strings.HasSuffix(piece, "}") && len(piece) >= 2 {
			name := piece[1 : len(piece)-1]

			t, ok := params[name]
			if !ok {
				continue
			}

			parts = append(parts, Param(name, t))

			continue
		}

		parts = append(parts, Static(piece))
	}

	return parts
}

// Convertor is the framework-native converter tag for one path-parameter
// name, as produced by an external route-declaration adapter.
// The concrete converter kinds follow Starlette's naming, since that is
// the convention the routing table's declaration producer is expected to
// bridge from.
type Convertor uint8

const (
	StringConvertor Convertor = iota + 1
	PathConvertor
	IntegerConvertor
	FloatConvertor
	UUIDConvertor
)

// convertorCrosswalk maps each recognized Convertor to its ParamType.
var convertorCrosswalk = map[Convertor]ParamType{
	StringConvertor:  Str,
	PathConvertor:    Path,
	IntegerConvertor: Int,
	FloatConvertor:   Float,
	UUIDConvertor:    UUID,
}

// ParamTypeForConvertor maps a framework-native Convertor to its ParamType.
// ok is false for an unrecognized convertor.
func ParamTypeForConvertor(c Convertor) (t ParamType, ok bool) {
	t, ok = convertorCrosswalk[c]

	return t, ok
}

// FrameworkRoute is the minimal shape of a framework-native route object an
// external adapter hands to ParseRouteDecl: a path pattern with "{name}"
// placeholders, the methods it's registered for, an opaque handle, and the
// converter each declared parameter name was registered with.
type FrameworkRoute struct {
	Handle     any
	Path       string
	Methods    MethodSet
	Convertors map[string]Convertor // name -> Convertor, one entry per {name} in Path
}

// ParseRouteDecl inspects a framework-native route's converter table and
// produces a RouteDecl. If any declared convertor is unrecognized,
// ParseRouteDecl returns (RouteDecl{}, false) — the caller should treat the
// route as ignored by the routing table (an external fallback router, if
// enabled, handles it instead). An empty convertor set produces a
// StaticRoute; otherwise a ParamRoute.
func ParseRouteDecl(fr FrameworkRoute) (RouteDecl, bool) {
	path := Normalize(fr.Path)

	params := make(map[string]ParamType, len(fr.Convertors))

	for name, conv := range fr.Convertors {
		t, ok := ParamTypeForConvertor(conv)
		if !ok {
			return RouteDecl{}, false
		}

		params[name] = t
	}

	if len(params) == 0 {
		return NewStaticRoute(fr.Handle, fr.Methods, path), true
	}

	parts := SplitParts(path, params)

	return NewParamRoute(fr.Handle, fr.Methods, path, parts, paramNamesOf(parts)), true
}
