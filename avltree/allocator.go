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

package avltree

import (
	"errors"
)

// ErrAllocation is returned when the allocator cannot hand out another
// node because its limit has been reached.
var ErrAllocation = errors.New("avltree: node allocation failed")

// Allocator hands out tree nodes and takes them back on Clear. Released
// nodes are kept on a free list and reused before new ones are created.
//
// An Allocator may be shared by several trees (Copy draws from the
// source tree's allocator) but, like the trees themselves, it must only
// be used from one goroutine at a time.
type Allocator struct {
	limit int   // maximum live nodes, 0 for no limit
	free  *Node // linked through the left pointer
	live  int   // nodes currently handed out
	total int   // nodes ever created
	spare int   // nodes on the free list
}

// NewAllocator creates an allocator that allows at most limit live
// nodes. A limit of zero or less means unlimited.
func NewAllocator(limit int) *Allocator {
	if limit < 0 {
		limit = 0
	}
	return &Allocator{limit: limit}
}

// Live is the number of nodes handed out and not yet released.
func (a *Allocator) Live() int {
	return a.live
}

// Total is the number of nodes ever created by this allocator.
func (a *Allocator) Total() int {
	return a.total
}

// Spare is the number of released nodes waiting to be reused.
func (a *Allocator) Spare() int {
	return a.spare
}

// Limit is the configured live node limit, 0 if unlimited.
func (a *Allocator) Limit() int {
	return a.limit
}

// makeNode returns a childless node holding rec.
func (a *Allocator) makeNode(rec Record) (*Node, error) {
	if a.limit > 0 && a.live >= a.limit {
		return nil, ErrAllocation
	}
	a.live++

	p := a.free
	if p == nil {
		if a.spare != 0 {
			panic("avltree: free list corrupt")
		}
		a.total++
		return &Node{record: rec}, nil
	}
	a.free = p.left
	a.spare--

	p.record = rec
	p.height = 0
	p.left = nil
	p.right = nil
	return p, nil
}

// cloneFields returns a childless node carrying a copy of n's record.
func (a *Allocator) cloneFields(n *Node) (*Node, error) {
	return a.makeNode(n.record)
}

// release puts a detached node on the free list.
func (a *Allocator) release(n *Node) {
	n.record = Record{}
	n.height = 0
	n.right = nil
	n.left = a.free

	a.free = n
	a.spare++
	a.live--
}
