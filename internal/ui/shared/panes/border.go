// Package panes renders bordered boxes with titles set into the border line.
package panes

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Pratham-0827/Regex-Tutorial/internal/ui/styles"
)

// BorderConfig describes one bordered pane.
type BorderConfig struct {
	Content     string
	Width       int // outer width including borders
	Height      int // outer height including borders
	TopLeft     string
	BottomRight string
	Focused     bool

	// Nil colors fall back to the theme's border colors.
	BorderColor        lipgloss.TerminalColor
	FocusedBorderColor lipgloss.TerminalColor
}

// BorderedPane renders cfg. Content is clipped to the inner area and padded
// so the result is always exactly Width x Height cells.
func BorderedPane(cfg BorderConfig) string {
	width := max(cfg.Width, 2)
	height := max(cfg.Height, 2)
	inner := width - 2

	color := resolveBorderColor(cfg.BorderColor, cfg.FocusedBorderColor, cfg.Focused)
	borderStyle := lipgloss.NewStyle().Foreground(color)
	titleStyle := lipgloss.NewStyle().Foreground(color).Bold(cfg.Focused)

	lines := make([]string, 0, height)
	lines = append(lines, buildTopBorder(cfg.TopLeft, inner, borderStyle, titleStyle))

	contentLines := strings.Split(cfg.Content, "\n")
	clip := lipgloss.NewStyle().MaxWidth(inner)
	side := borderStyle.Render("│")
	for i := 0; i < height-2; i++ {
		var line string
		if i < len(contentLines) {
			line = clip.Render(contentLines[i])
		}
		if pad := inner - lipgloss.Width(line); pad > 0 {
			line += strings.Repeat(" ", pad)
		}
		lines = append(lines, side+line+side)
	}

	lines = append(lines, buildBottomBorder(cfg.BottomRight, inner, borderStyle, titleStyle))
	return strings.Join(lines, "\n")
}

func resolveBorderColor(border, focused lipgloss.TerminalColor, isFocused bool) lipgloss.TerminalColor {
	if isFocused {
		if focused != nil {
			return focused
		}
		if border != nil {
			return border
		}
		return styles.BorderFocusedColor
	}
	if border != nil {
		return border
	}
	return styles.BorderDefaultColor
}

// buildTopBorder renders ╭─ Title ───╮ with the title dropped or truncated
// when it does not fit.
func buildTopBorder(title string, inner int, borderStyle, titleStyle lipgloss.Style) string {
	return buildBorderLine("╭", "╮", title, true, inner, borderStyle, titleStyle)
}

// buildBottomBorder renders ╰─── Title ─╯ with the title right-aligned.
func buildBottomBorder(title string, inner int, borderStyle, titleStyle lipgloss.Style) string {
	return buildBorderLine("╰", "╯", title, false, inner, borderStyle, titleStyle)
}

func buildBorderLine(left, right, title string, alignLeft bool, inner int, borderStyle, titleStyle lipgloss.Style) string {
	inner = max(inner, 0)
	// "─ " before and " ─" after the title.
	avail := inner - 4
	if title == "" || avail < 1 {
		return borderStyle.Render(left + strings.Repeat("─", inner) + right)
	}

	title = truncate(title, avail)
	label := " " + titleStyle.Render(title) + " "
	fill := inner - 2 - lipgloss.Width(title) - 2
	if alignLeft {
		return borderStyle.Render(left+"─") + label + borderStyle.Render(strings.Repeat("─", fill+1)+right)
	}
	return borderStyle.Render(left+strings.Repeat("─", fill+1)) + label + borderStyle.Render("─"+right)
}

func truncate(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}
