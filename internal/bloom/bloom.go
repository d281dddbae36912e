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

// Package bloom provides a bloom filter used as an optional pre-check in
// front of the routing table's static route map.
package bloom

import "hash/fnv"

// Filter is a bloom filter for negative lookups. It can tell you:
//   - "Definitely NOT in the set" (100% accurate)
//   - "Possibly in the set" (may have false positives)
//
// Use in routing: reject a (path, method) key that definitely isn't
// registered before touching the static map.
//
// Implementation uses FNV-1a hashing with distinct seeds per hash function
// and a packed uint64 bit array.
type Filter struct {
	bits  []uint64
	size  uint64
	seeds []uint64
}

// New creates a Filter with the given bit-array size and number of hash
// functions.
func New(size uint64, numHashFuncs int) *Filter {
	f := &Filter{
		bits:  make([]uint64, (size+63)/64),
		size:  size,
		seeds: make([]uint64, numHashFuncs),
	}

	for i := range numHashFuncs {
		f.seeds[i] = uint64(i + 1)
	}

	return f
}

func (f *Filter) hashWithSeed(baseHash, seed uint64) uint64 {
	return (baseHash ^ seed) % f.size
}

// Add adds data to the filter.
func (f *Filter) Add(data []byte) {
	h := fnv.New64a()
	h.Write(data)
	base := h.Sum64()

	for _, seed := range f.seeds {
		pos := f.hashWithSeed(base, seed)
		f.bits[pos/64] |= 1 << (pos % 64)
	}
}

// Test reports whether data might be in the filter. A false result is
// certain; a true result may be a false positive.
func (f *Filter) Test(data []byte) bool {
	h := fnv.New64a()
	h.Write(data)
	base := h.Sum64()

	for _, seed := range f.seeds {
		pos := f.hashWithSeed(base, seed)
		if f.bits[pos/64]&(1<<(pos%64)) == 0 {
			return false
		}
	}

	return true
}
