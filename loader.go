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

	"github.com/cybrota/roomtree/avltree"
)

// loadStats counts what happened while populating a tree
type loadStats struct {
	Read       int // rows handed to the tree, duplicates included
	Added      int
	Duplicates int
}

// populateTree inserts the rooms in file order. With verbose set every
// insertion is reported on out the way the original loader did.
func populateTree(tree *avltree.Tree, rooms []avltree.Record, verbose bool, out io.Writer) (loadStats, error) {
	var stats loadStats

	if verbose {
		fmt.Fprintf(out, "\n     ----- Verbose: Begin Loading Data From File\n")
	}

	for i, room := range rooms {
		if verbose {
			fmt.Fprintf(out, "\n%3d) Inserting %s and balancing\n", i+1, room.Key)
		}

		added, err := tree.Insert(room)
		if err != nil {
			return stats, fmt.Errorf("failed to insert room %s: %w", room.Key, err)
		}
		stats.Read++
		if added {
			stats.Added++
		} else {
			stats.Duplicates++
		}

		if verbose {
			fmt.Fprintf(out, "Room number: %s | ", room.Key)
			fmt.Fprintf(out, "Building/Classroom: %s | ", room.Location)
			fmt.Fprintf(out, "Classroom setup: %s | ", room.Descriptor)
			fmt.Fprintf(out, "Room capacity: %d\n", room.Capacity)
			if !added {
				fmt.Fprintf(out, "%s- Duplicate room %s ignored%s\n", Warning, room.Key, Reset)
			}
		}
	}

	if verbose {
		fmt.Fprintf(out, "\n     ----- Verbose: End Loading Data From File\n\n")
	}

	return stats, nil
}

// loadRoomTree reads path and builds a tree from it using the node limit
// from config.
func loadRoomTree(path string, config *Config, verbose bool, out io.Writer) (*avltree.Tree, loadStats, error) {
	rooms, err := readRoomFile(path, config.Data.ShowProgress && !verbose)
	if err != nil {
		return nil, loadStats{}, err
	}

	tree := avltree.New(avltree.WithAllocator(avltree.NewAllocator(config.Tree.MaxNodes)))
	stats, err := populateTree(tree, rooms, verbose, out)
	if err != nil {
		return nil, stats, err
	}
	return tree, stats, nil
}
