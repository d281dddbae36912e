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

import "errors"

// Static errors for better error handling and testing.
// These errors should be wrapped with fmt.Errorf and %w when context is needed.
//
// None of these represent "no route for this request" — that is a nil
// result, not an error. A routing table never raises for expected input;
// these cover programmer-error conditions: lifecycle misuse or a corrupt
// internal data model.
var (
	// ErrTableFrozen is returned when AddRoute is called after Prepare.
	ErrTableFrozen = errors.New("routing table is frozen: cannot add route after prepare")

	// ErrUnknownPathPart is returned when a PathPart carries neither a
	// static literal nor a param — an internal invariant violation.
	ErrUnknownPathPart = errors.New("unknown path part kind")

	// ErrUnknownRouteDecl is returned when a RouteDecl carries neither the
	// static nor param tag — an internal invariant violation.
	ErrUnknownRouteDecl = errors.New("route declaration must be static or param")

	// ErrParamNamesMismatch is returned when a ParamRoute's ParamNames does
	// not match the ordered sequence of Param parts.
	ErrParamNamesMismatch = errors.New("param names do not match ordered param parts")
)
