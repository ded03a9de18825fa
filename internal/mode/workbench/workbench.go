// Package workbench implements the interactive pattern editor: a history
// table beside pattern, example and explanation inputs, a Compile button and
// a scrollable output pane. All editor state lives in a form.Form; this
// package only maps keys and renders.
package workbench

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Pratham-0827/Regex-Tutorial/internal/form"
	"github.com/Pratham-0827/Regex-Tutorial/internal/history"
	"github.com/Pratham-0827/Regex-Tutorial/internal/keys"
	"github.com/Pratham-0827/Regex-Tutorial/internal/log"
	"github.com/Pratham-0827/Regex-Tutorial/internal/ui/shared/alertmodal"
	"github.com/Pratham-0827/Regex-Tutorial/internal/ui/shared/panes"
	"github.com/Pratham-0827/Regex-Tutorial/internal/ui/styles"
)

// WindowTitle is set on the terminal at startup.
const WindowTitle = "Regex Compiler"

// Focus identifies which component receives keys.
type Focus int

const (
	FocusHistory Focus = iota
	FocusPattern
	FocusExample
	FocusExplanation
	FocusCompile
	focusCount
)

func (f Focus) String() string {
	switch f {
	case FocusHistory:
		return "history"
	case FocusPattern:
		return "pattern"
	case FocusExample:
		return "example"
	case FocusExplanation:
		return "explanation"
	case FocusCompile:
		return "compile"
	}
	return fmt.Sprintf("Focus(%d)", int(f))
}

// Fixed pane heights, borders included.
const (
	inputPaneHeight       = 3
	explanationPaneHeight = 5
	buttonRowHeight       = 1
	minOutputHeight       = 3
	footerHeight          = 1
	gap                   = 1
)

// Model is the Bubble Tea model for the editor.
type Model struct {
	form *form.Form

	historyTable table.Model
	pattern      textinput.Model
	example      textinput.Model
	explanation  textarea.Model
	output       viewport.Model
	help         help.Model
	alert        alertmodal.Model

	focus  Focus
	status string
	width  int
	height int
}

// New creates the editor around f, showing f's current fields and history.
func New(f *form.Form) Model {
	fields := f.Fields()

	pattern := textinput.New()
	pattern.Prompt = ""
	pattern.Placeholder = "Enter regex pattern..."
	pattern.SetValue(fields.Pattern)

	example := textinput.New()
	example.Prompt = ""
	example.Placeholder = "Enter example string..."
	example.SetValue(fields.Example)

	explanation := textarea.New()
	explanation.Placeholder = "Enter explanation..."
	explanation.ShowLineNumbers = false
	explanation.Prompt = ""
	// Explanations are stored whole, so neither length nor line count is capped.
	explanation.CharLimit = 0
	explanation.MaxHeight = 0
	explanation.SetHeight(explanationPaneHeight - 2)
	explanation.SetValue(fields.Explanation)

	tbl := table.New(
		table.WithColumns(historyColumns(40)),
		table.WithFocused(false),
	)
	tblStyles := table.DefaultStyles()
	tblStyles.Header = tblStyles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(styles.BorderDefaultColor).
		BorderBottom(true).
		Bold(true).
		Foreground(styles.TextSecondaryColor)
	tblStyles.Selected = tblStyles.Selected.
		Foreground(styles.SelectionColor).
		Bold(true)
	tbl.SetStyles(tblStyles)

	m := Model{
		form:         f,
		historyTable: tbl,
		pattern:      pattern,
		example:      example,
		explanation:  explanation,
		output:       viewport.New(0, 0),
		help:         help.New(),
		alert:        alertmodal.New(alertmodal.Config{Title: "Regex Error"}),
	}
	m.refreshHistory()
	m.output.SetContent(styles.HintStyle.Render("Press ctrl+s to compile."))
	m.setFocus(FocusPattern)
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tea.SetWindowTitle(WindowTitle))
}

// Focused returns the component that currently receives keys.
func (m Model) Focused() Focus {
	return m.focus
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.alert.IsVisible() {
		if size, ok := msg.(tea.WindowSizeMsg); ok {
			m.resize(size.Width, size.Height)
		}
		var cmd tea.Cmd
		var result alertmodal.Result
		m.alert, cmd, result = m.alert.Update(msg)
		if result == alertmodal.ResultQuit {
			return m, tea.Quit
		}
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	return m.updateFocused(msg)
}

// handleKeyMsg applies global bindings before routing to the focused component.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Common.Quit):
		return m, tea.Quit
	case key.Matches(msg, keys.Workbench.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resize(m.width, m.height)
		return m, nil
	case key.Matches(msg, keys.Workbench.Compile):
		return m.compile()
	case key.Matches(msg, keys.Workbench.NextFocus):
		return m, m.setFocus((m.focus + 1) % focusCount)
	case key.Matches(msg, keys.Workbench.PrevFocus):
		return m, m.setFocus((m.focus + focusCount - 1) % focusCount)
	case key.Matches(msg, keys.Workbench.FocusHistory):
		return m, m.setFocus(FocusHistory)
	case key.Matches(msg, keys.Workbench.ScrollUp):
		m.output.ViewUp()
		return m, nil
	case key.Matches(msg, keys.Workbench.ScrollDown):
		m.output.ViewDown()
		return m, nil
	}

	switch m.focus {
	case FocusHistory:
		if key.Matches(msg, keys.Common.Enter) {
			m.selectHistory(m.historyTable.Cursor())
			return m, nil
		}
	case FocusPattern, FocusExample:
		if key.Matches(msg, keys.Common.Enter) {
			return m.compile()
		}
	case FocusCompile:
		if key.Matches(msg, keys.Common.Enter) || msg.String() == " " {
			return m.compile()
		}
		return m, nil
	}

	return m.updateFocused(msg)
}

// updateFocused forwards msg to the focused component and copies any edit
// into the form.
func (m Model) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case FocusHistory:
		m.historyTable, cmd = m.historyTable.Update(msg)
	case FocusPattern:
		m.pattern, cmd = m.pattern.Update(msg)
		m.form.SetPattern(m.pattern.Value())
	case FocusExample:
		m.example, cmd = m.example.Update(msg)
		m.form.SetExample(m.example.Value())
	case FocusExplanation:
		m.explanation, cmd = m.explanation.Update(msg)
		m.form.SetExplanation(m.explanation.Value())
	}
	return m, cmd
}

func (m *Model) setFocus(f Focus) tea.Cmd {
	m.focus = f
	m.historyTable.Blur()
	m.pattern.Blur()
	m.example.Blur()
	m.explanation.Blur()

	switch f {
	case FocusHistory:
		m.historyTable.Focus()
	case FocusPattern:
		return m.pattern.Focus()
	case FocusExample:
		return m.example.Focus()
	case FocusExplanation:
		return m.explanation.Focus()
	}
	return nil
}

// selectHistory loads entry i into the inputs without compiling.
func (m *Model) selectHistory(i int) {
	if err := m.form.Select(i); err != nil {
		m.status = err.Error()
		return
	}
	fields := m.form.Fields()
	m.pattern.SetValue(fields.Pattern)
	m.example.SetValue(fields.Example)
	m.explanation.Reset()
	m.status = fmt.Sprintf("Loaded entry %d", i+1)
}

func (m Model) compile() (tea.Model, tea.Cmd) {
	out, err := m.form.Compile()
	if errors.Is(err, form.ErrNotReady) {
		m.status = "Enter a pattern and an example first"
		return m, nil
	}
	if err != nil {
		log.ErrorErr(log.CatUI, "Compile failed", err)
		m.status = err.Error()
		return m, nil
	}

	m.output.SetContent(renderOutput(out))
	m.output.GotoTop()

	switch {
	case out.SaveErr != nil:
		m.status = "History not saved"
	case out.Recorded:
		m.refreshHistory()
		m.status = "Saved to history"
	default:
		m.status = ""
	}

	if out.Err != nil {
		m.alert.Show(out.Err.Error())
	}
	return m, nil
}

func renderOutput(out form.Outcome) string {
	lines := make([]string, len(out.Lines))
	for i, line := range out.Lines {
		switch {
		case strings.HasPrefix(line, "Regex error: "), strings.HasPrefix(line, "History not saved: "):
			lines[i] = styles.ErrorStyle.Render(line)
		case line == form.MatchesHeader:
			lines[i] = styles.SuccessStyle.Render(line)
		case line == form.NoMatches:
			lines[i] = styles.HintStyle.Render(line)
		default:
			lines[i] = line
		}
	}
	return strings.Join(lines, "\n")
}

func (m *Model) refreshHistory() {
	entries := m.form.History()
	rows := make([]table.Row, len(entries))
	for i, e := range entries {
		rows[i] = historyRow(e)
	}
	m.historyTable.SetRows(rows)
}

func historyRow(e history.Entry) table.Row {
	flat := strings.NewReplacer("\n", "⏎", "\t", " ")
	return table.Row{flat.Replace(e.Pattern), flat.Replace(e.Example)}
}

func historyColumns(inner int) []table.Column {
	// Each cell carries one column of padding on both sides.
	w := max((inner-4)/2, 4)
	return []table.Column{
		{Title: "Pattern", Width: w},
		{Title: "Example", Width: w},
	}
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.alert.SetSize(width, height)
	m.help.Width = width

	leftW, rightW := m.columnWidths()
	contentH := m.contentHeight()

	m.historyTable.SetColumns(historyColumns(leftW - 2))
	m.historyTable.SetWidth(leftW - 2)
	m.historyTable.SetHeight(max(contentH-2, 1))

	m.pattern.Width = max(rightW-3, 1)
	m.example.Width = max(rightW-3, 1)
	m.explanation.SetWidth(max(rightW-2, 1))

	m.output.Width = max(rightW-2, 1)
	m.output.Height = max(m.outputHeight()-2, 1)
}

func (m Model) columnWidths() (int, int) {
	left := max(min(m.width*35/100, 50), 24)
	right := max(m.width-left-gap, 20)
	return left, right
}

func (m Model) contentHeight() int {
	return max(m.height-m.footerLines(), 1)
}

func (m Model) footerLines() int {
	if !m.help.ShowAll {
		return footerHeight
	}
	rows := 0
	for _, col := range keys.WorkbenchFullHelp() {
		rows = max(rows, len(col))
	}
	return rows
}

func (m Model) outputHeight() int {
	fixed := 2*inputPaneHeight + explanationPaneHeight + buttonRowHeight
	return max(m.contentHeight()-fixed, minOutputHeight)
}

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 {
		return ""
	}

	leftW, rightW := m.columnWidths()
	contentH := m.contentHeight()

	historyPane := panes.BorderedPane(panes.BorderConfig{
		Content:     m.historyTable.View(),
		Width:       leftW,
		Height:      contentH,
		TopLeft:     "History",
		BottomRight: fmt.Sprintf("%d entries", len(m.historyTable.Rows())),
		Focused:     m.focus == FocusHistory,
	})

	right := lipgloss.JoinVertical(lipgloss.Left,
		panes.BorderedPane(panes.BorderConfig{
			Content: m.pattern.View(),
			Width:   rightW,
			Height:  inputPaneHeight,
			TopLeft: "Regex Pattern",
			Focused: m.focus == FocusPattern,
		}),
		panes.BorderedPane(panes.BorderConfig{
			Content: m.example.View(),
			Width:   rightW,
			Height:  inputPaneHeight,
			TopLeft: "Example String",
			Focused: m.focus == FocusExample,
		}),
		panes.BorderedPane(panes.BorderConfig{
			Content: m.explanation.View(),
			Width:   rightW,
			Height:  explanationPaneHeight,
			TopLeft: "Explanation",
			Focused: m.focus == FocusExplanation,
		}),
		m.renderButtonRow(rightW),
		panes.BorderedPane(panes.BorderConfig{
			Content: m.output.View(),
			Width:   rightW,
			Height:  m.outputHeight(),
			TopLeft: "Output",
		}),
	)

	main := lipgloss.JoinHorizontal(lipgloss.Top, historyPane, strings.Repeat(" ", gap), right)
	content := main + "\n" + m.renderFooter()

	if m.alert.IsVisible() {
		return m.alert.Overlay(content)
	}
	return content
}

func (m Model) renderButtonRow(width int) string {
	label := "Compile"
	var button string
	switch {
	case !m.form.CanCompile():
		button = styles.ButtonDisabledStyle.Render(label)
	case m.focus == FocusCompile:
		button = styles.ButtonFocusedStyle.Render(label)
	default:
		button = styles.ButtonStyle.Render(label)
	}

	state := styles.StatusBarStyle.Render(m.form.State().String())
	if m.status != "" {
		state += styles.StatusBarStyle.Render(" · " + m.status)
	}
	row := button + " " + state
	return lipgloss.NewStyle().MaxWidth(width).Render(row)
}

func (m Model) renderFooter() string {
	return m.help.View(keys.WorkbenchHelp{})
}
