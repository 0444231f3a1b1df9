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

// Compare orders two keys. The result is negative when a sorts before b,
// positive when a sorts after b and zero when they are equal. Only the
// sign is significant.
//
// Keys are scanned position by position. A differing byte decides
// immediately. When the bytes match, the following position is checked:
// if exactly one of the keys continues with a digit, that key is the
// greater one. Bytes past the end of a key read as zero.
func Compare(a, b string) int {
	n := max(len(a), len(b))
	for i := 0; i < n; i++ {
		if diff := int(byteAt(a, i)) - int(byteAt(b, i)); diff != 0 {
			return diff
		}

		nextA := isDigit(byteAt(a, i+1))
		nextB := isDigit(byteAt(b, i+1))
		if nextA && !nextB {
			return 1
		}
		if nextB && !nextA {
			return -1
		}
	}
	return 0
}

func byteAt(s string, i int) byte {
	if i < len(s) {
		return s[i]
	}
	return 0
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
