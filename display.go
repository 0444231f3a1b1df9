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

package main

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/cybrota/roomtree/avltree"
)

var counts = message.NewPrinter(language.English)

// displayInOrder prints the room numbers of the tree in ascending order
func displayInOrder(out io.Writer, tree *avltree.Tree) {
	var keys []string
	for key := range tree.Keys() {
		keys = append(keys, key)
	}
	fmt.Fprintln(out, strings.Join(keys, ", "))
}

func displayRoom(out io.Writer, room avltree.Record) {
	fmt.Fprintf(out, "Room Number: %s, Building/Room: %s, Class Setup: %s, Room Capacity: %d\n",
		room.Key, room.Location, room.Descriptor, room.Capacity)
}

func displayLoadSummary(out io.Writer, stats loadStats) {
	counts.Fprintf(out, "File uploaded, %d items found\n", stats.Read)
	if stats.Duplicates > 0 {
		counts.Fprintf(out, "%d duplicate room numbers ignored\n", stats.Duplicates)
	}
}

// runDemo loads the data file, shows it, duplicates it, shows the copy
// and clears both trees.
func runDemo(out io.Writer, path string, config *Config) error {
	fmt.Fprintf(out, "\n%sAVL BST Test Program%s\n", Info, Reset)
	fmt.Fprintf(out, "====================\n")

	tree, stats, err := loadRoomTree(path, config, config.Data.Verbose, out)
	if err != nil {
		return err
	}
	displayLoadSummary(out, stats)

	fmt.Fprintf(out, "\nIn order display of input tree, with height: %d: \n", tree.Height())
	displayInOrder(out, tree)

	fmt.Fprintf(out, "\n\nCreating duplicate tree\n")
	dup, err := tree.Copy()
	if err != nil {
		tree.Clear()
		return fmt.Errorf("failed to copy tree: %w", err)
	}

	fmt.Fprintf(out, "\nIn order display of copied tree, with height: %d: \n", dup.Height())
	displayInOrder(out, dup)

	tree.Clear()
	dup.Clear()

	fmt.Fprintf(out, "\n\nEnd Program\n")
	return nil
}

// searchRooms looks up each key and prints what was found
func searchRooms(out io.Writer, index *RoomIndex, keys []string) int {
	found := 0
	for _, key := range keys {
		room, ok := index.Lookup(key)
		if !ok {
			fmt.Fprintf(out, "%sRoom %s not found%s\n", Error, key, Reset)
			continue
		}
		found++
		displayRoom(out, room)
	}
	return found
}
