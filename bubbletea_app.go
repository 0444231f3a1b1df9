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
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/patrickmn/go-cache"

	"github.com/cybrota/roomtree/avltree"
)

// focus targets, cycled with tab
const (
	focusInput = iota
	focusRooms
	focusDetail
)

// Model represents the Bubble Tea application state
type Model struct {
	ready bool

	filterInput    textinput.Model
	roomsList      list.Model
	detailViewport viewport.Model

	// Data
	tree        *avltree.Tree
	detailCache *cache.Cache

	// State
	focusIndex int
	rooms      []avltree.Record
	lastQuery  string

	// Styling
	styles          *Styles
	glamourRenderer *glamour.TermRenderer

	// Dimensions
	width  int
	height int
}

// Styles holds all the styling for the application
type Styles struct {
	BorderFocused lipgloss.Style
	BorderBlurred lipgloss.Style
	Title         lipgloss.Style
	Prompt        lipgloss.Style
	NoMatch       lipgloss.Style
	HelpKey       lipgloss.Style
	HelpDesc      lipgloss.Style
}

// NewStyles creates the styles for the detected terminal mode
func NewStyles() *Styles {
	palette := GetPalette()
	return &Styles{
		BorderFocused: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(palette.BorderFocus).
			Bold(true),
		BorderBlurred: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(palette.Border),
		Title: lipgloss.NewStyle().
			Foreground(palette.Title).
			Padding(0, 1).
			Bold(true),
		Prompt: lipgloss.NewStyle().
			Foreground(palette.Prompt),
		NoMatch: lipgloss.NewStyle().
			Foreground(palette.Error).
			Italic(true),
		HelpKey: lipgloss.NewStyle().
			Foreground(palette.Muted).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(palette.Muted),
	}
}

// roomItem represents an item in the rooms list
type roomItem struct {
	room avltree.Record
}

func (i roomItem) FilterValue() string { return i.room.Key }
func (i roomItem) Title() string       { return i.room.Key }
func (i roomItem) Description() string { return i.room.Location }

// InitialModel creates the initial model listing every room
func InitialModel(tree *avltree.Tree, dc *cache.Cache) Model {
	styles := NewStyles()

	ti := textinput.New()
	ti.Placeholder = "Type a room number or building..."
	ti.PromptStyle = styles.Prompt
	ti.Focus()
	ti.CharLimit = avltree.MaxLocationLen
	ti.Width = 50

	roomsList := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	roomsList.SetShowTitle(false)
	roomsList.SetShowHelp(false)
	roomsList.SetFilteringEnabled(false)

	detailViewport := viewport.New(0, 0)
	detailViewport.SetContent("Select a room to see its details...")

	glamourRenderer, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(72),
	)

	model := Model{
		filterInput:     ti,
		roomsList:       roomsList,
		detailViewport:  detailViewport,
		tree:            tree,
		detailCache:     dc,
		focusIndex:      focusInput,
		styles:          styles,
		glamourRenderer: glamourRenderer,
	}
	model.updateRooms("")

	return model
}

// Init is called when the program starts
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles all the I/O
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKeys(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.ready = true
	}

	return m, nil
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "tab":
		m.focusIndex = (m.focusIndex + 1) % 3
		if m.focusIndex == focusInput {
			m.filterInput.Focus()
		} else {
			m.filterInput.Blur()
		}
		return m, nil
	case "enter":
		if m.focusIndex == focusRooms {
			if room, ok := m.selectedRoom(); ok {
				// Copy record to clipboard and quit
				return m, tea.Sequence(
					func() tea.Msg {
						copyToClipboard(room.String())
						return tea.Quit()
					},
				)
			}
		}
		return m, nil
	case "up", "k":
		if m.focusIndex == focusRooms {
			m.roomsList.CursorUp()
			m.showSelected()
			return m, nil
		} else if m.focusIndex == focusDetail {
			m.detailViewport.LineUp(1)
			return m, nil
		}
	case "down", "j":
		if m.focusIndex == focusRooms {
			m.roomsList.CursorDown()
			m.showSelected()
			return m, nil
		} else if m.focusIndex == focusDetail {
			m.detailViewport.LineDown(1)
			return m, nil
		}
	}

	switch m.focusIndex {
	case focusInput:
		m.filterInput, cmd = m.filterInput.Update(msg)

		currentQuery := m.filterInput.Value()
		if currentQuery != m.lastQuery {
			m.updateRooms(currentQuery)
			m.lastQuery = currentQuery
		}
	case focusRooms:
		m.roomsList, cmd = m.roomsList.Update(msg)
		m.showSelected()
	default:
		m.detailViewport, cmd = m.detailViewport.Update(msg)
	}

	return m, cmd
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.width < 30 || m.height < 10 {
		return "Terminal too small. Please resize your terminal."
	}

	inputHeight := 3
	listHeight := m.height - inputHeight - 6
	leftWidth := (m.width * 4 / 10) - 1
	rightWidth := m.width - leftWidth - 3

	inputBox := m.boxStyle(focusInput).
		Width(leftWidth).
		Height(inputHeight).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Width(leftWidth-4).Render(m.title(focusInput, " 🔍 Filter Rooms")),
			m.filterInput.View(),
		))

	roomsBox := m.boxStyle(focusRooms).
		Width(leftWidth).
		Height(listHeight).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Width(leftWidth-4).Render(m.title(focusRooms, fmt.Sprintf(" 🏫 Rooms (%d of %d)", len(m.rooms), m.tree.Len()))),
			m.roomsList.View(),
		))

	detailBox := m.boxStyle(focusDetail).
		Width(rightWidth).
		Height(inputHeight + listHeight + 2).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Width(rightWidth-4).Render(m.title(focusDetail, " 📄 Room Details")),
			m.detailViewport.View(),
		))

	leftColumn := lipgloss.JoinVertical(lipgloss.Left, inputBox, roomsBox)
	main := lipgloss.JoinHorizontal(lipgloss.Top, leftColumn, detailBox)

	return lipgloss.JoinVertical(lipgloss.Left, main, m.renderHelp())
}

func (m Model) boxStyle(target int) lipgloss.Style {
	if m.focusIndex == target {
		return m.styles.BorderFocused
	}
	return m.styles.BorderBlurred
}

func (m Model) title(target int, title string) string {
	if m.focusIndex == target {
		return title + " (Active) "
	}
	return title + " "
}

func (m *Model) updateLayout() {
	inputHeight := 3
	listHeight := m.height - inputHeight - 6
	leftWidth := (m.width * 4 / 10) - 1
	rightWidth := m.width - leftWidth - 3

	m.filterInput.Width = leftWidth - 4
	m.roomsList.SetSize(leftWidth-2, listHeight-2)
	m.detailViewport.Width = rightWidth - 2
	m.detailViewport.Height = inputHeight + listHeight
}

// updateRooms refreshes the list with the rooms matching query
func (m *Model) updateRooms(query string) {
	m.rooms = filterRooms(m.tree, query)

	items := make([]list.Item, len(m.rooms))
	for i, room := range m.rooms {
		items[i] = roomItem{room: room}
	}
	m.roomsList.SetItems(items)
	m.roomsList.ResetSelected()

	if len(m.rooms) > 0 {
		m.updateDetail(m.rooms[0])
	} else {
		m.detailViewport.SetContent(m.styles.NoMatch.Render("No rooms match your filter."))
	}
}

func (m *Model) selectedRoom() (avltree.Record, bool) {
	selectedIndex := m.roomsList.Index()
	if selectedIndex >= 0 && selectedIndex < len(m.rooms) {
		return m.rooms[selectedIndex], true
	}
	return avltree.Record{}, false
}

func (m *Model) showSelected() {
	if room, ok := m.selectedRoom(); ok {
		m.updateDetail(room)
	}
}

func (m *Model) updateDetail(room avltree.Record) {
	detail := GetOrFillDetail(m.detailCache, room.Key, func() string {
		content := roomMarkdown(room)
		if m.glamourRenderer == nil {
			return content
		}
		if rendered, err := m.glamourRenderer.Render(content); err == nil {
			return rendered
		}
		return content
	})
	m.detailViewport.SetContent(detail)
	m.detailViewport.GotoTop()
}

func (m Model) renderHelp() string {
	keys := []string{"tab", "↑/↓", "enter", "esc"}
	descs := []string{"switch focus", "select room", "copy room", "quit"}

	var helpEntries []string
	for i, key := range keys {
		helpEntries = append(helpEntries,
			fmt.Sprintf("%s %s",
				m.styles.HelpKey.Render(key),
				m.styles.HelpDesc.Render(descs[i])))
	}

	return lipgloss.NewStyle().
		Padding(1, 0, 0, 2).
		Render(strings.Join(helpEntries, " • "))
}

// filterRooms returns, in key order, the rooms whose number starts with
// query or whose building/room has a word starting with it, ignoring case.
func filterRooms(tree *avltree.Tree, query string) []avltree.Record {
	query = strings.ToLower(strings.TrimSpace(query))

	var rooms []avltree.Record
	for room := range tree.All() {
		if query == "" ||
			strings.HasPrefix(strings.ToLower(room.Key), query) ||
			locationMatches(room.Location, query) {
			rooms = append(rooms, room)
		}
	}
	return rooms
}

// locationMatches reports whether query, already lower-cased, starts one
// of the words of location. A query of several words may span them.
func locationMatches(location string, query string) bool {
	words := strings.Fields(strings.ToLower(location))
	for i := range words {
		if strings.HasPrefix(strings.Join(words[i:], " "), query) {
			return true
		}
	}
	return false
}

func roomMarkdown(room avltree.Record) string {
	var content strings.Builder
	content.WriteString(fmt.Sprintf("# Room %s\n\n", room.Key))
	content.WriteString(fmt.Sprintf("**Building/Room:** %s\n\n", room.Location))
	content.WriteString(fmt.Sprintf("**Class Setup:** %s\n\n", room.Descriptor))
	content.WriteString(fmt.Sprintf("**Capacity:** %d\n\n", room.Capacity))
	return content.String()
}

func copyToClipboard(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to copy room: %v\n", err)
		return err
	}
	fmt.Fprintf(os.Stderr, "📋 Copied %s%s%s to clipboard.\n", Green, text, Reset)
	return nil
}

func runBubbleTeaApp(tree *avltree.Tree, dc *cache.Cache) error {
	model := InitialModel(tree, dc)

	program := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := program.Run()
	return err
}
