package styles

import (
	"fmt"
	"regexp"
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// DefaultPreset is the preset used when none is configured.
const DefaultPreset = "default"

// Preset is a named set of token colors.
type Preset struct {
	Description string
	Colors      map[string]string // token -> hex; empty for the adaptive default
}

// Presets lists the built-in themes.
var Presets = map[string]Preset{
	DefaultPreset: {
		Description: "Adaptive colors for light and dark terminals",
	},
	"catppuccin-mocha": {
		Description: "Soothing pastel theme (dark)",
		Colors: map[string]string{
			"text.primary":     "#CDD6F4",
			"text.secondary":   "#BAC2DE",
			"text.muted":       "#6C7086",
			"text.description": "#A6ADC8",
			"status.success":   "#A6E3A1",
			"status.warning":   "#F9E2AF",
			"status.error":     "#F38BA8",
			"border.default":   "#45475A",
			"border.focused":   "#89B4FA",
			"selection":        "#CBA6F7",
			"button.text":      "#1E1E2E",
			"button.disabled":  "#313244",
		},
	},
	"dracula": {
		Description: "Dark theme with vivid accents",
		Colors: map[string]string{
			"text.primary":     "#F8F8F2",
			"text.secondary":   "#E2E2DC",
			"text.muted":       "#6272A4",
			"text.description": "#BFBFBF",
			"status.success":   "#50FA7B",
			"status.warning":   "#F1FA8C",
			"status.error":     "#FF5555",
			"border.default":   "#44475A",
			"border.focused":   "#BD93F9",
			"selection":        "#FF79C6",
			"button.text":      "#282A36",
			"button.disabled":  "#44475A",
		},
	},
	"nord": {
		Description: "Arctic, north-bluish palette",
		Colors: map[string]string{
			"text.primary":     "#ECEFF4",
			"text.secondary":   "#D8DEE9",
			"text.muted":       "#4C566A",
			"text.description": "#E5E9F0",
			"status.success":   "#A3BE8C",
			"status.warning":   "#EBCB8B",
			"status.error":     "#BF616A",
			"border.default":   "#434C5E",
			"border.focused":   "#88C0D0",
			"selection":        "#81A1C1",
			"button.text":      "#2E3440",
			"button.disabled":  "#3B4252",
		},
	},
}

// ThemeConfig selects a preset and overrides individual tokens.
type ThemeConfig struct {
	Preset string
	Colors map[string]string
}

var hexColor = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// defaults snapshots the adaptive colors so ApplyTheme can start from them.
var defaults = snapshot()

func tokens() map[string]*lipgloss.AdaptiveColor {
	return map[string]*lipgloss.AdaptiveColor{
		"text.primary":     &TextPrimaryColor,
		"text.secondary":   &TextSecondaryColor,
		"text.muted":       &TextMutedColor,
		"text.description": &TextDescriptionColor,
		"status.success":   &StatusSuccessColor,
		"status.warning":   &StatusWarningColor,
		"status.error":     &StatusErrorColor,
		"border.default":   &BorderDefaultColor,
		"border.focused":   &BorderFocusedColor,
		"selection":        &SelectionColor,
		"button.text":      &ButtonColor,
		"button.disabled":  &ButtonDisabledColor,
	}
}

func snapshot() map[string]lipgloss.AdaptiveColor {
	out := make(map[string]lipgloss.AdaptiveColor)
	for name, c := range tokens() {
		out[name] = *c
	}
	return out
}

// Tokens returns the sorted list of overridable color tokens.
func Tokens() []string {
	names := make([]string, 0, len(defaults))
	for name := range defaults {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ApplyTheme resets colors to the defaults, applies the preset and then the
// per-token overrides, and rebuilds every style.
func ApplyTheme(cfg ThemeConfig) error {
	name := cfg.Preset
	if name == "" {
		name = DefaultPreset
	}
	preset, ok := Presets[name]
	if !ok {
		return fmt.Errorf("unknown theme preset %q", name)
	}

	targets := tokens()
	for token, hex := range cfg.Colors {
		if _, ok := targets[token]; !ok {
			return fmt.Errorf("unknown color token %q", token)
		}
		if !hexColor.MatchString(hex) {
			return fmt.Errorf("invalid color %q for %s: expected #RGB or #RRGGBB", hex, token)
		}
	}

	for token, c := range defaults {
		*targets[token] = c
	}
	for token, hex := range preset.Colors {
		*targets[token] = lipgloss.AdaptiveColor{Light: hex, Dark: hex}
	}
	for token, hex := range cfg.Colors {
		*targets[token] = lipgloss.AdaptiveColor{Light: hex, Dark: hex}
	}

	rebuildStyles()
	return nil
}
