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
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/cybrota/roomtree/avltree"
)

func browseTree(t *testing.T) *avltree.Tree {
	t.Helper()
	tree := avltree.New()
	if _, err := populateTree(tree, []avltree.Record{
		{Key: "210", Location: "Science Hall 210", Descriptor: "Lab", Capacity: 24},
		{Key: "100", Location: "Main Hall 100", Descriptor: "Lecture", Capacity: 120},
		{Key: "1000", Location: "Annex 1000", Descriptor: "Seminar", Capacity: 16},
		{Key: "101", Location: "Main Hall 101", Descriptor: "Lecture", Capacity: 80},
	}, false, io.Discard); err != nil {
		t.Fatalf("populateTree returned error: %v", err)
	}
	return tree
}

func keysOf(rooms []avltree.Record) []string {
	keys := make([]string, len(rooms))
	for i, room := range rooms {
		keys[i] = room.Key
	}
	return keys
}

func TestFilterRooms(t *testing.T) {
	tree := browseTree(t)

	testCases := []struct {
		Name     string
		Query    string
		Expected []string
	}{
		{Name: "Empty query lists all in order", Query: "", Expected: []string{"100", "1000", "101", "210"}},
		{Name: "Room number prefix", Query: "10", Expected: []string{"100", "1000", "101"}},
		{Name: "Room number prefix only", Query: "2", Expected: []string{"210"}},
		{Name: "Building word prefix only", Query: "hall", Expected: []string{"100", "101", "210"}},
		{Name: "Building match ignores case", Query: "main hall", Expected: []string{"100", "101"}},
		{Name: "Words spanning building and room", Query: "hall 21", Expected: []string{"210"}},
		{Name: "Inside a word is not a match", Query: "cience", Expected: []string{}},
		{Name: "No match", Query: "gym", Expected: []string{}},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			got := keysOf(filterRooms(tree, tc.Query))
			if strings.Join(got, ",") != strings.Join(tc.Expected, ",") {
				t.Errorf("filterRooms(%q) = %v; want %v", tc.Query, got, tc.Expected)
			}
		})
	}
}

func TestRoomMarkdown(t *testing.T) {
	md := roomMarkdown(avltree.Record{Key: "101", Location: "Main Hall 101", Descriptor: "Lecture", Capacity: 80})
	for _, want := range []string{"# Room 101", "**Building/Room:** Main Hall 101", "**Class Setup:** Lecture", "**Capacity:** 80"} {
		if !strings.Contains(md, want) {
			t.Errorf("roomMarkdown is missing %q", want)
		}
	}
}

func TestModelNavigation(t *testing.T) {
	dc := NewDetailCache(1)
	var model tea.Model = InitialModel(browseTree(t), dc)

	model, _ = model.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyTab})

	m := model.(Model)
	if m.focusIndex != focusRooms {
		t.Fatalf("expected focus on the rooms list, got %d", m.focusIndex)
	}

	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = model.(Model)
	room, ok := m.selectedRoom()
	if !ok || room.Key != "1000" {
		t.Errorf("expected room 1000 selected, got %+v (%v)", room, ok)
	}
	if GetRoomDetail(dc, "1000") == "" {
		t.Errorf("expected the selected room's detail to be cached")
	}

	if view := m.View(); !strings.Contains(view, "Rooms (4 of 4)") {
		t.Errorf("view is missing the room count")
	}
}

func TestModelFilterWithoutMatches(t *testing.T) {
	var model tea.Model = InitialModel(browseTree(t), NewDetailCache(1))
	model, _ = model.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	for _, r := range "gym" {
		model, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}

	m := model.(Model)
	if len(m.rooms) != 0 {
		t.Fatalf("expected no rooms for %q, got %v", m.filterInput.Value(), keysOf(m.rooms))
	}
	view := m.View()
	if !strings.Contains(view, "No rooms match your filter.") {
		t.Errorf("view is missing the no-match notice")
	}
	if !strings.Contains(view, "Rooms (0 of 4)") {
		t.Errorf("view is missing the room count")
	}
}
