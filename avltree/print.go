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
	"io"
)

// to control the print routine
type branch int

const (
	root branch = iota
	left
	right
)

// Print writes an ASCII picture of the tree to w, turned on its side
// with the right subtree at the top. With printData set each node also
// shows its record and balance factor. It returns the number of levels.
func (tree *Tree) Print(w io.Writer, printData bool) int {
	return printTree(w, tree.root, "", root, printData)
}

func printTree(w io.Writer, node *Node, prefix string, br branch, printData bool) int {
	if node == nil {
		return 0
	}
	rd := 0
	ld := 0
	if nil != node.right {
		t := "       "
		if left == br {
			t = "|      "
		}
		rd = printTree(w, node.right, prefix+t, right, printData)
	}
	switch br {
	case root:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case left:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case right:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	if printData {
		fmt.Fprintf(w, "%q → %q %q %d %+d\n", node.record.Key, node.record.Location,
			node.record.Descriptor, node.record.Capacity, node.BalanceFactor())
	} else {
		fmt.Fprintf(w, "%q\n", node.record.Key)
	}
	if nil != node.left {
		t := "       "
		if right == br {
			t = "|      "
		}
		ld = printTree(w, node.left, prefix+t, left, printData)
	}
	return 1 + max(ld, rd)
}
