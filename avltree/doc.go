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

// Package avltree is a height-balanced binary search tree of room
// records keyed by room number.
//
// Every node carries a Record and a cached subtree height. Insertion
// recurses down to the insertion point and threads the (possibly
// rotated) subtree root back up through each frame; there are no parent
// pointers.
//
// Keys are ordered by Compare, which is a byte-wise ordering where a
// longer run of digits after a common prefix sorts later ("10" < "100").
// It is not a numeric ordering: "21" sorts after "100".
//
// A Tree is not safe for concurrent use. Wrap it in a sync.RWMutex if it
// must be shared between goroutines.
package avltree
