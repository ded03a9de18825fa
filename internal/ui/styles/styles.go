// Package styles holds the theme colors and lipgloss styles shared by the UI.
//
// Colors are package-level variables so ApplyTheme can swap them at startup;
// call it before building any views.
package styles

import "github.com/charmbracelet/lipgloss"

// Theme colors. Each is addressable by a dotted token (see tokens).
var (
	TextPrimaryColor     = lipgloss.AdaptiveColor{Light: "#1E1E2E", Dark: "#E6E6E6"}
	TextSecondaryColor   = lipgloss.AdaptiveColor{Light: "#4C4F69", Dark: "#BAC2DE"}
	TextMutedColor       = lipgloss.AdaptiveColor{Light: "#8C8FA1", Dark: "#6C7086"}
	TextDescriptionColor = lipgloss.AdaptiveColor{Light: "#5C5F77", Dark: "#A6ADC8"}

	StatusSuccessColor = lipgloss.AdaptiveColor{Light: "#40A02B", Dark: "#73F59F"}
	StatusWarningColor = lipgloss.AdaptiveColor{Light: "#DF8E1D", Dark: "#FECA57"}
	StatusErrorColor   = lipgloss.AdaptiveColor{Light: "#D20F39", Dark: "#FF6B6B"}

	BorderDefaultColor = lipgloss.AdaptiveColor{Light: "#BCC0CC", Dark: "#45475A"}
	BorderFocusedColor = lipgloss.AdaptiveColor{Light: "#1E66F5", Dark: "#54A0FF"}

	SelectionColor      = lipgloss.AdaptiveColor{Light: "#1E66F5", Dark: "#54A0FF"}
	ButtonColor         = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#1E1E2E"}
	ButtonDisabledColor = lipgloss.AdaptiveColor{Light: "#BCC0CC", Dark: "#45475A"}
)

// Styles rebuilt from the colors by ApplyTheme.
var (
	TitleStyle              lipgloss.Style
	LabelStyle              lipgloss.Style
	FocusedLabelStyle       lipgloss.Style
	HintStyle               lipgloss.Style
	ErrorStyle              lipgloss.Style
	SuccessStyle            lipgloss.Style
	StatusBarStyle          lipgloss.Style
	SelectionIndicatorStyle lipgloss.Style
	ButtonStyle             lipgloss.Style
	ButtonFocusedStyle      lipgloss.Style
	ButtonDisabledStyle     lipgloss.Style
)

func init() {
	rebuildStyles()
}

func rebuildStyles() {
	TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(TextPrimaryColor)
	LabelStyle = lipgloss.NewStyle().Foreground(TextSecondaryColor)
	FocusedLabelStyle = lipgloss.NewStyle().Bold(true).Foreground(BorderFocusedColor)
	HintStyle = lipgloss.NewStyle().Foreground(TextMutedColor).Italic(true)
	ErrorStyle = lipgloss.NewStyle().Foreground(StatusErrorColor)
	SuccessStyle = lipgloss.NewStyle().Foreground(StatusSuccessColor)
	StatusBarStyle = lipgloss.NewStyle().Foreground(TextMutedColor)
	SelectionIndicatorStyle = lipgloss.NewStyle().Bold(true).Foreground(SelectionColor)
	ButtonStyle = lipgloss.NewStyle().
		Padding(0, 2).
		Foreground(ButtonColor).
		Background(TextSecondaryColor)
	ButtonFocusedStyle = ButtonStyle.
		Bold(true).
		Background(BorderFocusedColor)
	ButtonDisabledStyle = lipgloss.NewStyle().
		Padding(0, 2).
		Foreground(TextMutedColor).
		Background(ButtonDisabledColor)
}

// PaneStyle returns the border style for a pane, highlighted when focused.
func PaneStyle(focused bool) lipgloss.Style {
	color := BorderDefaultColor
	if focused {
		color = BorderFocusedColor
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color).
		Padding(0, 1)
}
