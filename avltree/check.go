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

// Check walks the whole tree and verifies the key ordering, the balance
// of every node, the cached heights and the node count. It returns nil
// for a consistent tree.
func (tree *Tree) Check() error {
	_, n, err := check(tree.root, nil, nil)
	if err != nil {
		return err
	}
	if n != tree.count {
		return fmt.Errorf("node count: actual: %d  expected: %d", n, tree.count)
	}
	return nil
}

// check returns the computed height and node count of the subtree;
// low and high, when set, are exclusive key bounds inherited from the
// ancestors.
func check(node *Node, low *string, high *string) (int, int, error) {
	if node == nil {
		return -1, 0, nil
	}
	key := node.record.Key
	if nil != low && Compare(key, *low) <= 0 {
		return 0, 0, fmt.Errorf("key %q is not greater than ancestor %q", key, *low)
	}
	if nil != high && Compare(key, *high) >= 0 {
		return 0, 0, fmt.Errorf("key %q is not less than ancestor %q", key, *high)
	}

	lh, ln, err := check(node.left, low, &key)
	if err != nil {
		return 0, 0, err
	}
	rh, rn, err := check(node.right, &key, high)
	if err != nil {
		return 0, 0, err
	}

	h := max(lh, rh) + 1
	if h != node.height {
		return 0, 0, fmt.Errorf("node %q height: actual: %d  cached: %d", key, h, node.height)
	}
	if bf := lh - rh; bf > 1 || bf < -1 {
		return 0, 0, fmt.Errorf("node %q out of balance: %+d", key, bf)
	}
	return h, ln + rn + 1, nil
}
