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

// Copy returns an independent duplicate of the tree using the same
// allocator. The two trees share no nodes. If the allocator runs out,
// whatever was already copied is released and ErrAllocation returned.
func (tree *Tree) Copy() (*Tree, error) {
	dup := &Tree{alloc: tree.alloc}

	root, err := dup.copyNodes(tree.root)
	if err != nil {
		dup.clearNodes(root)
		return nil, err
	}
	dup.root = root
	dup.count = tree.count
	return dup, nil
}

// copyNodes clones pre-order. On error the returned subtree is the part
// that was built so far and still needs releasing.
func (tree *Tree) copyNodes(src *Node) (*Node, error) {
	if src == nil {
		return nil, nil
	}

	n, err := tree.alloc.cloneFields(src)
	if err != nil {
		return nil, err
	}
	n.height = src.height

	n.left, err = tree.copyNodes(src.left)
	if err != nil {
		return n, err
	}
	n.right, err = tree.copyNodes(src.right)
	return n, err
}

// Clear releases every node back to the allocator and leaves the tree
// empty. Clearing an empty tree does nothing.
func (tree *Tree) Clear() {
	tree.root = tree.clearNodes(tree.root)
	tree.count = 0
}

// clearNodes releases post-order and always returns nil.
func (tree *Tree) clearNodes(node *Node) *Node {
	if node == nil {
		return nil
	}
	tree.clearNodes(node.left)
	tree.clearNodes(node.right)
	tree.alloc.release(node)
	return nil
}
