package keys

import (
	"testing"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/stretchr/testify/require"
)

func TestWorkbench_KeyAssignments(t *testing.T) {
	tests := []struct {
		name     string
		binding  key.Binding
		expected []string
	}{
		{name: "Compile uses ctrl+s", binding: Workbench.Compile, expected: []string{"ctrl+s"}},
		{name: "NextFocus uses tab", binding: Workbench.NextFocus, expected: []string{"tab"}},
		{name: "PrevFocus uses shift+tab", binding: Workbench.PrevFocus, expected: []string{"shift+tab"}},
		{name: "Quit uses ctrl+c", binding: Common.Quit, expected: []string{"ctrl+c"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.binding.Keys())
		})
	}
}

func TestWorkbench_HelpTextDefined(t *testing.T) {
	for _, row := range WorkbenchFullHelp() {
		for _, b := range row {
			require.NotEmpty(t, b.Help().Key, "binding %v needs help key", b.Keys())
			require.NotEmpty(t, b.Help().Desc, "binding %v needs help desc", b.Keys())
		}
	}
}

func TestWorkbench_NoPrintableKeysOutsideDialogs(t *testing.T) {
	// Text inputs receive printable keys, so editor bindings must not use them.
	for _, b := range []key.Binding{
		Workbench.Compile, Workbench.NextFocus, Workbench.PrevFocus,
		Workbench.FocusHistory, Workbench.ScrollUp, Workbench.ScrollDown, Workbench.Help,
		Common.Quit,
	} {
		for _, k := range b.Keys() {
			require.Greater(t, len(k), 1, "binding %q would swallow typed text", k)
		}
	}
}

func TestWorkbenchShortHelp(t *testing.T) {
	h := WorkbenchShortHelp()
	require.Len(t, h, 4)
	require.Equal(t, Workbench.Compile, h[0])
	require.Equal(t, Common.Quit, h[3])
}

func TestWorkbenchHelp_ImplementsKeyMap(t *testing.T) {
	var km help.KeyMap = WorkbenchHelp{}
	require.Len(t, km.FullHelp(), 4)
	require.Len(t, km.ShortHelp(), 4)
}

func TestAlert_Dismiss(t *testing.T) {
	require.ElementsMatch(t, []string{"enter", "esc", " "}, Alert.Dismiss.Keys())
}
