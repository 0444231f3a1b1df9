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
	"fmt"
)

// field bounds accepted from the ingestion side, excluding terminators
const (
	MaxKeyLen        = 9
	MaxLocationLen   = 71
	MaxDescriptorLen = 41
)

// Record is the payload stored for each room.
type Record struct {
	Key        string // room number, e.g. "101"
	Location   string // building and room, e.g. "Science Hall 101"
	Descriptor string // class setup, e.g. "Lecture/Projector"
	Capacity   int    // seats
}

func (r Record) String() string {
	return fmt.Sprintf("%s | %s | %s | %d", r.Key, r.Location, r.Descriptor, r.Capacity)
}

// Node is one entry of the tree. It owns both of its children.
type Node struct {
	record Record
	height int // height of the subtree rooted here, 0 for a leaf
	left   *Node
	right  *Node
}

// Record returns the node's payload.
func (n *Node) Record() Record {
	return n.record
}

// Key returns the node's key.
func (n *Node) Key() string {
	return n.record.Key
}

// Left returns the left child or nil.
func (n *Node) Left() *Node {
	return n.left
}

// Right returns the right child or nil.
func (n *Node) Right() *Node {
	return n.right
}

// Height returns the height of the subtree rooted at n; -1 for nil.
func (n *Node) Height() int {
	if n == nil {
		return -1
	}
	return n.height
}

// BalanceFactor is height(left) - height(right); 0 for nil.
func (n *Node) BalanceFactor() int {
	if n == nil {
		return 0
	}
	return n.left.Height() - n.right.Height()
}

func (n *Node) updateHeight() {
	n.height = max(n.left.Height(), n.right.Height()) + 1
}
