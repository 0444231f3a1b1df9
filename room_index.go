// Copyright 2025 Naren Yellavula
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

package main

import (
	"github.com/willf/bloom"

	"github.com/cybrota/roomtree/avltree"
)

// RoomIndex answers room lookups, using a bloom filter to turn away
// room numbers that are certainly absent before walking the tree.
type RoomIndex struct {
	tree        *avltree.Tree
	bloomFilter *bloom.BloomFilter
}

// NewRoomIndex builds the filter from every key in tree. A size of zero
// sizes the filter from the number of rooms for a 1% false positive rate.
func NewRoomIndex(tree *avltree.Tree, size uint, hashes uint) *RoomIndex {
	var bloomFilter *bloom.BloomFilter
	if size == 0 || hashes == 0 {
		bloomFilter = bloom.NewWithEstimates(uint(max(tree.Len(), 1)), 0.01)
	} else {
		bloomFilter = bloom.New(size, hashes)
	}

	for key := range tree.Keys() {
		bloomFilter.AddString(key)
	}

	return &RoomIndex{
		tree:        tree,
		bloomFilter: bloomFilter,
	}
}

// MightContain is false only for keys that were never inserted
func (ri *RoomIndex) MightContain(key string) bool {
	return ri.bloomFilter.TestString(key)
}

func (ri *RoomIndex) Lookup(key string) (avltree.Record, bool) {
	if !ri.MightContain(key) {
		return avltree.Record{}, false
	}
	return ri.tree.Search(key)
}
