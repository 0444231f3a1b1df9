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

// Tree holds the root of an AVL tree of records.
type Tree struct {
	root  *Node
	count int
	alloc *Allocator
}

// Option configures a Tree created by New.
type Option func(*Tree)

// WithAllocator makes the tree draw its nodes from a.
func WithAllocator(a *Allocator) Option {
	return func(tree *Tree) {
		if nil != a {
			tree.alloc = a
		}
	}
}

// New creates an empty tree. Without WithAllocator the tree gets its own
// unlimited allocator.
func New(opts ...Option) *Tree {
	tree := &Tree{}
	for _, opt := range opts {
		opt(tree)
	}
	if tree.alloc == nil {
		tree.alloc = NewAllocator(0)
	}
	return tree
}

// Root returns the root node, nil when the tree is empty.
func (tree *Tree) Root() *Node {
	return tree.root
}

// IsEmpty reports whether the tree has no nodes.
func (tree *Tree) IsEmpty() bool {
	return tree.root == nil
}

// Len is the number of records in the tree.
func (tree *Tree) Len() int {
	return tree.count
}

// Height of the whole tree: -1 when empty, 0 for a single node.
func (tree *Tree) Height() int {
	return tree.root.Height()
}

// Allocator returns the allocator the tree draws nodes from.
func (tree *Tree) Allocator() *Allocator {
	return tree.alloc
}

// Insert adds rec under rec.Key and rebalances. It reports whether a new
// node was created; a key that is already present leaves the tree
// untouched. The only error is ErrAllocation.
func (tree *Tree) Insert(rec Record) (bool, error) {
	root, added, err := tree.insert(tree.root, rec)
	tree.root = root
	if added {
		tree.count++
	}
	return added, err
}

// insert returns the new root of the subtree at node.
func (tree *Tree) insert(node *Node, rec Record) (*Node, bool, error) {
	if node == nil {
		n, err := tree.alloc.makeNode(rec)
		if err != nil {
			return nil, false, err
		}
		return n, true, nil
	}

	var added bool
	var err error
	switch c := Compare(rec.Key, node.record.Key); {
	case c < 0:
		node.left, added, err = tree.insert(node.left, rec)
	case c > 0:
		node.right, added, err = tree.insert(node.right, rec)
	default:
		return node, false, nil
	}
	if !added {
		return node, false, err
	}

	node.updateHeight()

	balanceFactor := node.BalanceFactor()
	if balanceFactor > 1 {
		if Compare(rec.Key, node.left.record.Key) < 0 {
			return rotateRight(node), true, nil
		}
		// Left-Right case
		node.left = rotateLeft(node.left)
		return rotateRight(node), true, nil
	} else if balanceFactor < -1 {
		if Compare(rec.Key, node.right.record.Key) > 0 {
			return rotateLeft(node), true, nil
		}
		// Right-Left case
		node.right = rotateRight(node.right)
		return rotateLeft(node), true, nil
	}

	return node, true, nil
}

func rotateLeft(node *Node) *Node {
	pivot := node.right

	node.right = pivot.left
	pivot.left = node

	node.updateHeight()
	pivot.updateHeight()

	return pivot
}

func rotateRight(node *Node) *Node {
	pivot := node.left

	node.left = pivot.right
	pivot.right = node

	node.updateHeight()
	pivot.updateHeight()

	return pivot
}
