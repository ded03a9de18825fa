package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Pratham-0827/Regex-Tutorial/internal/repl"
)

var replLineHistory string

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Edit and compile patterns from a line prompt",
	Long: `Starts a line-mode prompt driving the same editor as the full-screen UI.
Type :help for the list of commands.`,
	Args: cobra.NoArgs,
	RunE: runRepl,
}

func init() {
	replCmd.Flags().StringVar(&replLineHistory, "line-history", "", "file for the prompt's input line history")
	rootCmd.AddCommand(replCmd)
}

func runRepl(cmd *cobra.Command, args []string) error {
	f, err := newForm(cmd)
	if err != nil {
		return err
	}
	return repl.Run(repl.NewSession(f), repl.Config{
		HistoryFile: replLineHistory,
		Stdout:      cmd.OutOrStdout(),
		Stderr:      cmd.ErrOrStderr(),
	})
}
