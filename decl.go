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

// PathPart is one slash-delimited component of a parameterized route
// pattern: either a static literal or a typed parameter. It is a tagged
// variant (see Kind) rather than an interface hierarchy, matching the
// source Python's TypedDict union (StaticPathPart | ParamPathPart).
type PathPart struct {
	// Kind discriminates the variant. Exactly one of the per-variant
	// fields below is meaningful for a given Kind.
	Kind PartKind

	// Literal holds the exact segment text when Kind == PartStatic.
	Literal string

	// Name holds the parameter name when Kind == PartParam.
	Name string

	// Type holds the parameter's ParamType when Kind == PartParam.
	Type ParamType
}

// PartKind discriminates a PathPart's variant.
type PartKind uint8

const (
	PartStatic PartKind = iota + 1
	PartParam
)

// Static builds a PathPart matching an exact segment.
func Static(literal string) PathPart {
	return PathPart{Kind: PartStatic, Literal: literal}
}

// Param builds a PathPart matching one typed, named segment.
func Param(name string, t ParamType) PathPart {
	return PathPart{Kind: PartParam, Name: name, Type: t}
}

// IsStatic reports whether p is a Static part.
func (p PathPart) IsStatic() bool { return p.Kind == PartStatic }

// IsParam reports whether p is a Param part.
func (p PathPart) IsParam() bool { return p.Kind == PartParam }

// RouteDecl is a tagged variant describing a registered route: either a
// StaticRoute (no parameters, keyed by the full path) or a ParamRoute
// (compiled into an ordered list of PathParts for trie insertion).
//
// handle is an opaque reference to the external route object; the routing
// table never inspects it.
type RouteDecl struct {
	Kind    DeclKind
	Handle  any
	Methods MethodSet
	Path    string

	// Parts and ParamNames are meaningful only when Kind == DeclParamRoute.
	// Invariant: ParamNames equals the ordered sequence of Param.Name
	// values found in Parts.
	Parts      []PathPart
	ParamNames []string
}

// DeclKind discriminates a RouteDecl's variant.
type DeclKind uint8

const (
	DeclStaticRoute DeclKind = iota + 1
	DeclParamRoute
)

// NewStaticRoute builds a RouteDecl for a route with no path parameters.
func NewStaticRoute(handle any, methods MethodSet, path string) RouteDecl {
	return RouteDecl{
		Kind:    DeclStaticRoute,
		Handle:  handle,
		Methods: methods,
		Path:    path,
	}
}

// NewParamRoute builds a RouteDecl for a route whose path contains typed
// parameters. paramNames must equal the ordered sequence of Param.Name
// values in parts — callers that build parts via SplitParts get this for
// free; ParseRouteDecl enforces it directly.
func NewParamRoute(handle any, methods MethodSet, path string, parts []PathPart, paramNames []string) RouteDecl {
	return RouteDecl{
		Kind:       DeclParamRoute,
		Handle:     handle,
		Methods:    methods,
		Path:       path,
		Parts:      parts,
		ParamNames: paramNames,
	}
}

// IsStatic reports whether r is a StaticRoute.
func (r RouteDecl) IsStatic() bool { return r.Kind == DeclStaticRoute }

// IsParam reports whether r is a ParamRoute.
func (r RouteDecl) IsParam() bool { return r.Kind == DeclParamRoute }

// paramNamesOf returns the ordered sequence of Param.Name values found in
// parts, used to validate the ParamNames invariant.
func paramNamesOf(parts []PathPart) []string {
	names := make([]string, 0, len(parts))

	for _, p := range parts {
		if p.IsParam() {
			names = append(names, p.Name)
		}
	}

	return names
}
