// Package alertmodal provides a blocking error dialog. While visible it
// swallows every message except window resizes, and it resolves with a
// Result enum so callers decide what dismissal means.
package alertmodal

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Pratham-0827/Regex-Tutorial/internal/keys"
	"github.com/Pratham-0827/Regex-Tutorial/internal/ui/styles"
)

// Result indicates the outcome of modal interaction.
type Result int

const (
	ResultNone    Result = iota // No action needed (modal still visible or not visible)
	ResultDismiss               // User acknowledged the alert
	ResultQuit                  // User force-quit (Ctrl+C) while the alert was up
)

// Config controls alert appearance.
type Config struct {
	Title string // e.g., "Regex Error"
	Width int    // box width; 0 uses a default
}

// Model represents the alert state.
type Model struct {
	config  Config
	message string
	visible bool
	width   int
	height  int
}

const defaultWidth = 50

// New creates a hidden alert.
func New(cfg Config) Model {
	if cfg.Width <= 0 {
		cfg.Width = defaultWidth
	}
	return Model{config: cfg}
}

// Show makes the alert visible with the given message.
func (m *Model) Show(message string) {
	m.message = message
	m.visible = true
}

// Hide dismisses the alert.
func (m *Model) Hide() {
	m.visible = false
}

// IsVisible returns whether the alert is displayed.
func (m Model) IsVisible() bool {
	return m.visible
}

// Message returns the text currently shown.
func (m Model) Message() string {
	return m.message
}

// SetSize updates viewport dimensions for overlay centering.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update processes messages and returns the result.
// Returns ResultNone when not visible or for messages that don't resolve the alert.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd, Result) {
	if !m.visible {
		return m, nil, ResultNone
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Common.Quit):
			m.visible = false
			return m, nil, ResultQuit
		case key.Matches(msg, keys.Alert.Dismiss):
			m.visible = false
			return m, nil, ResultDismiss
		}
	}
	return m, nil, ResultNone
}

// View renders the alert box (without positioning).
func (m Model) View() string {
	width := m.config.Width

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.StatusErrorColor)
	messageStyle := lipgloss.NewStyle().
		Foreground(styles.TextPrimaryColor).
		Width(width - 4)
	buttonStyle := styles.ButtonFocusedStyle

	divider := lipgloss.NewStyle().
		Foreground(styles.BorderDefaultColor).
		Render(strings.Repeat("─", width-2))

	content := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(m.config.Title),
		divider,
		messageStyle.Render(m.message),
		"",
		lipgloss.PlaceHorizontal(width-4, lipgloss.Center, buttonStyle.Render("OK")),
	)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.StatusErrorColor).
		Padding(0, 1).
		Width(width).
		Render(content)
}

// Overlay renders the alert centered over background. Background rows under
// the box are replaced whole so ANSI sequences in them are never split.
func (m Model) Overlay(background string) string {
	box := m.View()
	if background == "" || m.width == 0 || m.height == 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
	}

	bgLines := strings.Split(background, "\n")
	for len(bgLines) < m.height {
		bgLines = append(bgLines, "")
	}
	boxLines := strings.Split(box, "\n")

	top := (len(bgLines) - len(boxLines)) / 2
	if top < 0 {
		top = 0
	}
	for i, line := range boxLines {
		row := top + i
		if row >= len(bgLines) {
			break
		}
		bgLines[row] = lipgloss.PlaceHorizontal(m.width, lipgloss.Center, line)
	}
	return strings.Join(bgLines, "\n")
}
