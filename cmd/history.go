package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/Pratham-0827/Regex-Tutorial/internal/history"
	"github.com/Pratham-0827/Regex-Tutorial/internal/ui/styles"
)

var historyJSON bool

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Print the stored pattern history",
	Long:  `Lists every recorded pattern, example and explanation, oldest first.`,
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "print the history as JSON")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	store, err := openStore(cmd)
	if err != nil {
		return err
	}
	entries := store.Entries()
	out := cmd.OutOrStdout()

	if historyJSON {
		enc := json.NewEncoder(out)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "    ")
		return enc.Encode(entries)
	}

	if len(entries) == 0 {
		fmt.Fprintf(out, "No history in %s\n", store.Path())
		return nil
	}
	fmt.Fprintln(out, historyTable(entries))
	return nil
}

func historyTable(entries []history.Entry) string {
	flat := strings.NewReplacer("\n", "⏎", "\t", " ")
	rows := make([][]string, len(entries))
	for i, e := range entries {
		rows[i] = []string{
			strconv.Itoa(i + 1),
			flat.Replace(e.Pattern),
			flat.Replace(e.Example),
			flat.Replace(e.Explanation),
		}
	}

	header := lipgloss.NewStyle().Bold(true).Foreground(styles.TextSecondaryColor).Padding(0, 1)
	cell := lipgloss.NewStyle().Foreground(styles.TextPrimaryColor).Padding(0, 1)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(styles.BorderDefaultColor)).
		Headers("#", "Pattern", "Example", "Explanation").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		}).
		String()
}
