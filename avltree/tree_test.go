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

package avltree_test

import (
	"bytes"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cybrota/roomtree/avltree"
)

func room(key string) avltree.Record {
	return avltree.Record{
		Key:        key,
		Location:   "Main Hall " + key,
		Descriptor: "Lecture",
		Capacity:   len(key) * 10,
	}
}

func insertKeys(t *testing.T, tree *avltree.Tree, keys ...string) {
	t.Helper()
	for _, key := range keys {
		_, err := tree.Insert(room(key))
		require.NoError(t, err, "insert %q", key)
		require.NoError(t, tree.Check(), "after insert %q", key)
	}
}

func shape(tree *avltree.Tree) string {
	var buf bytes.Buffer
	tree.Print(&buf, true)
	return buf.String()
}

func TestScenarios(t *testing.T) {
	testCases := []struct {
		Name          string
		Keys          []string
		ExpectedRoot  string
		ExpectedLeft  string
		ExpectedRight string
		ExpectedOrder []string
	}{
		{
			Name:          "No rotation",
			Keys:          []string{"101", "102", "100"},
			ExpectedRoot:  "101",
			ExpectedLeft:  "100",
			ExpectedRight: "102",
			ExpectedOrder: []string{"100", "101", "102"},
		},
		{
			Name:          "Right-Right",
			Keys:          []string{"100", "101", "102"},
			ExpectedRoot:  "101",
			ExpectedLeft:  "100",
			ExpectedRight: "102",
			ExpectedOrder: []string{"100", "101", "102"},
		},
		{
			Name:          "Left-Left",
			Keys:          []string{"102", "101", "100"},
			ExpectedRoot:  "101",
			ExpectedLeft:  "100",
			ExpectedRight: "102",
			ExpectedOrder: []string{"100", "101", "102"},
		},
		{
			Name:          "Left-Right",
			Keys:          []string{"5", "3", "4"},
			ExpectedRoot:  "4",
			ExpectedLeft:  "3",
			ExpectedRight: "5",
			ExpectedOrder: []string{"3", "4", "5"},
		},
		{
			Name:          "Right-Left",
			Keys:          []string{"3", "5", "4"},
			ExpectedRoot:  "4",
			ExpectedLeft:  "3",
			ExpectedRight: "5",
			ExpectedOrder: []string{"3", "4", "5"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tree := avltree.New()
			insertKeys(t, tree, tc.Keys...)

			root := tree.Root()
			require.NotNil(t, root)
			assert.Equal(t, tc.ExpectedRoot, root.Key())
			require.NotNil(t, root.Left())
			require.NotNil(t, root.Right())
			assert.Equal(t, tc.ExpectedLeft, root.Left().Key())
			assert.Equal(t, tc.ExpectedRight, root.Right().Key())
			assert.Equal(t, 1, tree.Height())
			assert.Equal(t, 0, root.BalanceFactor())
			assert.Equal(t, tc.ExpectedOrder, slices.Collect(tree.Keys()))
		})
	}
}

func TestEmptyTree(t *testing.T) {
	tree := avltree.New()

	assert.True(t, tree.IsEmpty())
	assert.Equal(t, -1, tree.Height())
	assert.Equal(t, 0, tree.Len())
	assert.NoError(t, tree.Check())

	_, ok := tree.Search("101")
	assert.False(t, ok, "search on an empty tree")

	tree.Clear()
	assert.True(t, tree.IsEmpty())
	assert.Nil(t, tree.Root())
	assert.Empty(t, slices.Collect(tree.All()))
}

func TestDuplicateInsert(t *testing.T) {
	tree := avltree.New()
	insertKeys(t, tree, "201", "105", "330", "150", "99")

	before := shape(tree)
	records := slices.Collect(tree.All())

	replacement := avltree.Record{Key: "150", Location: "Annex", Descriptor: "Lab", Capacity: 5}
	added, err := tree.Insert(replacement)
	require.NoError(t, err)
	assert.False(t, added, "duplicate key must not be added")

	assert.Equal(t, before, shape(tree))
	assert.Equal(t, records, slices.Collect(tree.All()))
	assert.Equal(t, 5, tree.Len())

	rec, ok := tree.Search("150")
	require.True(t, ok)
	assert.Equal(t, room("150"), rec, "original record must be kept")
}

func TestSearch(t *testing.T) {
	tree := avltree.New()
	keys := []string{"310", "120", "100", "A12", "B7", "1000", "21"}
	insertKeys(t, tree, keys...)

	for _, key := range keys {
		rec, ok := tree.Search(key)
		require.True(t, ok, "key %q", key)
		assert.Equal(t, room(key), rec)
	}

	for _, key := range []string{"", "1", "10", "311", "A1", "B70", "2"} {
		_, ok := tree.Search(key)
		assert.False(t, ok, "key %q was never inserted", key)
	}
}

func TestTraversalStopsEarly(t *testing.T) {
	tree := avltree.New()
	insertKeys(t, tree, "1", "2", "3", "4", "5", "6", "7")

	var seen []string
	for rec := range tree.All() {
		seen = append(seen, rec.Key)
		if len(seen) == 3 {
			break
		}
	}
	assert.Equal(t, []string{"1", "2", "3"}, seen)

	// restartable
	assert.Len(t, slices.Collect(tree.All()), 7)
	assert.Len(t, slices.Collect(tree.All()), 7)
}

func TestCopyIsIndependent(t *testing.T) {
	alloc := avltree.NewAllocator(0)
	tree := avltree.New(avltree.WithAllocator(alloc))
	insertKeys(t, tree, "400", "210", "105", "330", "560", "1000")

	dup, err := tree.Copy()
	require.NoError(t, err)
	require.NoError(t, dup.Check())
	assert.Equal(t, slices.Collect(tree.All()), slices.Collect(dup.All()))
	assert.Equal(t, shape(tree), shape(dup))
	assert.Equal(t, 12, alloc.Live())

	original := shape(tree)

	insertKeys(t, dup, "600", "700", "800")
	assert.Equal(t, original, shape(tree))
	assert.Equal(t, 6, tree.Len())
	_, ok := tree.Search("700")
	assert.False(t, ok)

	dup.Clear()
	assert.True(t, dup.IsEmpty())
	assert.Equal(t, original, shape(tree))
	assert.Equal(t, 6, alloc.Live())

	tree.Clear()
	assert.Equal(t, 0, alloc.Live())
}

func TestCopyEmpty(t *testing.T) {
	tree := avltree.New()
	dup, err := tree.Copy()
	require.NoError(t, err)
	assert.True(t, dup.IsEmpty())
	assert.Equal(t, 0, dup.Len())
}

func TestRandomInsertKeepsInvariants(t *testing.T) {
	const alphabet = "0123456789AB"
	rng := rand.New(rand.NewSource(1973))

	for round := 0; round < 20; round++ {
		tree := avltree.New()
		inserted := make(map[string]struct{})

		for i := 0; i < 300; i++ {
			n := 1 + rng.Intn(6)
			b := make([]byte, n)
			for j := range b {
				b[j] = alphabet[rng.Intn(len(alphabet))]
			}
			key := string(b)

			_, exists := inserted[key]
			added, err := tree.Insert(room(key))
			require.NoError(t, err)
			require.Equal(t, !exists, added, "key %q", key)
			inserted[key] = struct{}{}

			require.NoError(t, tree.Check(), "round %d after %q", round, key)
		}

		require.Equal(t, len(inserted), tree.Len())

		keys := slices.Collect(tree.Keys())
		require.Len(t, keys, len(inserted))
		for i := 1; i < len(keys); i++ {
			require.Negative(t, avltree.Compare(keys[i-1], keys[i]), "%q before %q", keys[i-1], keys[i])
		}

		for key := range inserted {
			rec, ok := tree.Search(key)
			require.True(t, ok, "key %q", key)
			require.Equal(t, key, rec.Key)
		}

		// AVL height bound: h < 1.45 log2(n+2)
		assert.LessOrEqual(t, tree.Height(), 2*bitLen(tree.Len()))
	}
}

func TestSequentialInsertStaysShallow(t *testing.T) {
	tree := avltree.New()
	for i := 0; i < 1000; i++ {
		_, err := tree.Insert(room(string(rune('A'+i/100)) + string(rune('A'+(i/10)%10)) + string(rune('A'+i%10))))
		require.NoError(t, err)
	}
	require.NoError(t, tree.Check())
	assert.Equal(t, 1000, tree.Len())
	assert.LessOrEqual(t, tree.Height(), 14)
}

func bitLen(n int) int {
	l := 0
	for n > 0 {
		l++
		n >>= 1
	}
	return l
}
