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

// Search looks up key and returns its record and true, or a zero Record
// and false when the key is not in the tree.
func (tree *Tree) Search(key string) (Record, bool) {
	n := search(tree.root, key)
	if n == nil {
		return Record{}, false
	}
	return n.record, true
}

func search(node *Node, key string) *Node {
	if node == nil {
		return nil
	}

	switch c := Compare(key, node.record.Key); {
	case c < 0:
		return search(node.left, key)
	case c > 0:
		return search(node.right, key)
	default:
		return node
	}
}
