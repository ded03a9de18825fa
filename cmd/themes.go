package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/Pratham-0827/Regex-Tutorial/internal/ui/styles"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List available theme presets",
	Long:  `Display all built-in theme presets and color tokens that can be used in your config file.`,
	Run:   runThemes,
}

func init() {
	rootCmd.AddCommand(themesCmd)
}

func runThemes(cmd *cobra.Command, args []string) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Available theme presets:")
	fmt.Fprintln(out)

	names := make([]string, 0, len(styles.Presets))
	for name := range styles.Presets {
		names = append(names, name)
	}
	sort.Strings(names)

	maxLen := 0
	for _, name := range names {
		maxLen = max(maxLen, len(name))
	}
	for _, name := range names {
		fmt.Fprintf(out, "  %-*s  %s\n", maxLen, name, styles.Presets[name].Description)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Color tokens:")
	for _, tok := range styles.Tokens() {
		fmt.Fprintf(out, "  %s\n", tok)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Use in config.yaml:")
	fmt.Fprintln(out, "  theme:")
	fmt.Fprintln(out, "    preset: catppuccin-mocha")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Override specific colors:")
	fmt.Fprintln(out, "  theme:")
	fmt.Fprintln(out, "    preset: dracula")
	fmt.Fprintln(out, "    colors:")
	fmt.Fprintln(out, "      status.error: \"#FF0000\"")
}
