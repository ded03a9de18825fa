// Package keys defines the key bindings used by the terminal UI.
package keys

import "github.com/charmbracelet/bubbles/key"

// CommonKeys are shared by every view.
type CommonKeys struct {
	Quit   key.Binding
	Escape key.Binding
	Enter  key.Binding
	Up     key.Binding
	Down   key.Binding
}

// Common holds the shared bindings.
var Common = CommonKeys{
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
	Escape: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "close"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "select"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
}

// WorkbenchKeys drive the pattern editor.
type WorkbenchKeys struct {
	Compile      key.Binding
	NextFocus    key.Binding
	PrevFocus    key.Binding
	FocusHistory key.Binding
	ScrollUp     key.Binding
	ScrollDown   key.Binding
	Help         key.Binding
}

// Workbench holds the editor bindings.
var Workbench = WorkbenchKeys{
	Compile: key.NewBinding(
		key.WithKeys("ctrl+s"),
		key.WithHelp("ctrl+s", "compile"),
	),
	NextFocus: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next field"),
	),
	PrevFocus: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "previous field"),
	),
	FocusHistory: key.NewBinding(
		key.WithKeys("ctrl+l"),
		key.WithHelp("ctrl+l", "history"),
	),
	ScrollUp: key.NewBinding(
		key.WithKeys("pgup"),
		key.WithHelp("pgup", "scroll output up"),
	),
	ScrollDown: key.NewBinding(
		key.WithKeys("pgdown"),
		key.WithHelp("pgdn", "scroll output down"),
	),
	Help: key.NewBinding(
		key.WithKeys("f1"),
		key.WithHelp("f1", "toggle help"),
	),
}

// AlertKeys dismiss the blocking error dialog.
type AlertKeys struct {
	Dismiss key.Binding
}

// Alert holds the dialog bindings.
var Alert = AlertKeys{
	Dismiss: key.NewBinding(
		key.WithKeys("enter", "esc", " "),
		key.WithHelp("enter", "ok"),
	),
}

// WorkbenchShortHelp returns the bindings shown in the footer.
func WorkbenchShortHelp() []key.Binding {
	return []key.Binding{Workbench.Compile, Workbench.NextFocus, Workbench.Help, Common.Quit}
}

// WorkbenchFullHelp returns the bindings shown when help is expanded.
func WorkbenchFullHelp() [][]key.Binding {
	return [][]key.Binding{
		{Workbench.NextFocus, Workbench.PrevFocus, Workbench.FocusHistory},
		{Common.Up, Common.Down, Common.Enter},
		{Workbench.Compile, Workbench.ScrollUp, Workbench.ScrollDown},
		{Workbench.Help, Common.Quit},
	}
}

// WorkbenchHelp adapts the workbench bindings to bubbles/help.KeyMap.
type WorkbenchHelp struct{}

// ShortHelp implements help.KeyMap.
func (WorkbenchHelp) ShortHelp() []key.Binding { return WorkbenchShortHelp() }

// FullHelp implements help.KeyMap.
func (WorkbenchHelp) FullHelp() [][]key.Binding { return WorkbenchFullHelp() }
