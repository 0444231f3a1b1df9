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
	"iter"
)

// All returns the records in ascending key order. The sequence is lazy
// and may be ranged over any number of times; it reflects the tree at
// the moment each range starts. The tree must not be modified while a
// range over it is in progress.
func (tree *Tree) All() iter.Seq[Record] {
	return func(yield func(Record) bool) {
		inOrder(tree.root, yield)
	}
}

// Keys returns the keys in ascending order.
func (tree *Tree) Keys() iter.Seq[string] {
	return func(yield func(string) bool) {
		inOrder(tree.root, func(rec Record) bool {
			return yield(rec.Key)
		})
	}
}

// inOrder returns false once yield has asked to stop.
func inOrder(node *Node, yield func(Record) bool) bool {
	if node == nil {
		return true
	}
	return inOrder(node.left, yield) && yield(node.record) && inOrder(node.right, yield)
}
