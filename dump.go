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
	"fmt"
	"io"
	"sort"
)

// Dump writes a human-readable tree of every registered route to w: the
// static routes first, then the trie's static children, "{type}" parameter
// placeholders, and any fused radix edges. It's a debugging aid over the
// routing table's own structure — not a framework-console renderer — and
// works before or after Prepare (fusion simply won't appear yet if called
// before).
func (t *RoutingTable) Dump(w io.Writer) {
	paths := make([]string, 0, len(t.staticRoutes))
	seen := make(map[string]struct{}, len(t.staticRoutes))

	for key := range t.staticRoutes {
		if _, ok := seen[key.path]; ok {
			continue
		}

		seen[key.path] = struct{}{}
		paths = append(paths, key.path)
	}

	sort.Strings(paths)

	for _, p := range paths {
		fmt.Fprintf(w, "/%s\n", p)
	}

	t.trie.dump(w, 0)
}

func (n *trieNode) dump(w io.Writer, depth int) {
	indent := func() {
		for range depth {
			fmt.Fprint(w, "  ")
		}
	}

	if n.fused != nil {
		indent()
		fmt.Fprintf(w, "%s\n", n.fused.prefix)
		n.fused.node.dump(w, depth+1)

		return
	}

	literals := make([]string, 0, len(n.staticChildren))
	for lit := range n.staticChildren {
		literals = append(literals, lit)
	}

	sort.Strings(literals)

	for _, lit := range literals {
		indent()
		fmt.Fprintf(w, "%s\n", lit)
		n.staticChildren[lit].dump(w, depth+1)
	}

	for _, t := range n.paramOrder {
		indent()
		fmt.Fprintf(w, "{%s}\n", t)
		n.paramChildren[t].dump(w, depth+1)
	}

	if len(n.paramOrder) == 0 {
		for t, child := range n.paramChildren {
			indent()
			fmt.Fprintf(w, "{%s}\n", t)
			child.dump(w, depth+1)
		}
	}
}
