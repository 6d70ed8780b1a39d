// Package tui provides the interactive package picker for provisioning runs.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jaspreet-dot-casa/vm-setup/pkg/packages"
)

// keyMap defines the picker keybindings.
type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Toggle  key.Binding
	Confirm key.Binding
	Quit    key.Binding
}

// ShortHelp returns the keybindings shown in the help line.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Toggle, k.Confirm, k.Quit}
}

// FullHelp returns all keybindings.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var defaultKeys = keyMap{
	Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Toggle:  key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", "toggle")),
	Confirm: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
	Quit:    key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "cancel")),
}

// Model is the package picker model.
type Model struct {
	items    []packages.Package
	selected map[string]bool
	cursor   int
	keys     keyMap
	help     help.Model

	// Confirmed is true when the user accepted the selection.
	Confirmed bool
}

// NewModel creates a picker over the registry's packages, pre-selecting
// the defaults.
func NewModel(registry *packages.Registry) *Model {
	m := &Model{
		items:    registry.Packages,
		selected: make(map[string]bool),
		keys:     defaultKeys,
		help:     help.New(),
	}
	for _, pkg := range registry.Packages {
		if pkg.Default {
			m.selected[pkg.Name] = true
		}
	}
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, m.keys.Toggle):
		if len(m.items) > 0 {
			name := m.items[m.cursor].Name
			m.selected[name] = !m.selected[name]
		}
	case key.Matches(keyMsg, m.keys.Confirm):
		m.Confirmed = true
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Quit):
		m.Confirmed = false
		return m, tea.Quit
	}

	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Select packages to install"))
	b.WriteString("\n\n")

	var lastCategory packages.Category
	for i, pkg := range m.items {
		if pkg.Category != lastCategory {
			if lastCategory != "" {
				b.WriteString("\n")
			}
			b.WriteString(categoryStyle.Render(string(pkg.Category)))
			b.WriteString("\n")
			lastCategory = pkg.Category
		}

		cursor := "  "
		if i == m.cursor {
			cursor = cursorStyle.Render("> ")
		}

		mark := "[ ]"
		if m.selected[pkg.Name] {
			mark = checkedStyle.Render("[x]")
		}

		line := fmt.Sprintf("%s%s %s", cursor, mark, pkg.Name)
		if pkg.Description != "" {
			line += descStyle.Render(" — " + pkg.Description)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected package names in manifest order.
func (m *Model) Selected() []string {
	var names []string
	for _, pkg := range m.items {
		if m.selected[pkg.Name] {
			names = append(names, pkg.Name)
		}
	}
	return names
}

// RunPicker runs the picker and returns the confirmed selection. Returns
// (nil, false, nil) when the user cancelled.
func RunPicker(registry *packages.Registry) ([]string, bool, error) {
	model := NewModel(registry)

	p := tea.NewProgram(model)
	final, err := p.Run()
	if err != nil {
		return nil, false, fmt.Errorf("package picker failed: %w", err)
	}

	m, ok := final.(*Model)
	if !ok || !m.Confirmed {
		return nil, false, nil
	}
	return m.Selected(), true, nil
}
