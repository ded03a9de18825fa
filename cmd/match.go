package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Pratham-0827/Regex-Tutorial/internal/form"
	"github.com/Pratham-0827/Regex-Tutorial/internal/history"
)

var (
	matchExplain  string
	matchNoRecord bool
)

var matchCmd = &cobra.Command{
	Use:   "match PATTERN EXAMPLE",
	Short: "Compile a pattern once and print its matches",
	Long: `Runs PATTERN against EXAMPLE exactly as the editor's Compile button does,
records the triple in history unless --no-record is given, and prints the
output. Exits non-zero when the pattern does not compile.`,
	Args: cobra.ExactArgs(2),
	RunE: runMatch,
}

func init() {
	matchCmd.Flags().StringVar(&matchExplain, "explain", "", "explanation stored with the entry")
	matchCmd.Flags().BoolVar(&matchNoRecord, "no-record", false, "do not add the entry to history")
	rootCmd.AddCommand(matchCmd)
}

// discardRecorder reads history but never writes it.
type discardRecorder struct {
	*history.Store
}

func (discardRecorder) Append(history.Entry) (bool, error) { return false, nil }

func runMatch(cmd *cobra.Command, args []string) error {
	store, err := openStore(cmd)
	if err != nil {
		return err
	}
	var rec form.Recorder = store
	if matchNoRecord {
		rec = discardRecorder{store}
	}

	f := form.New(rec, newEngine(), form.Config{RecordInvalid: cfg.History.RecordInvalid})
	f.SetPattern(args[0])
	f.SetExample(args[1])
	f.SetExplanation(matchExplain)

	out, err := f.Compile()
	if err != nil {
		return err
	}
	for _, line := range out.Lines {
		fmt.Fprintln(cmd.OutOrStdout(), line)
	}
	if out.Err != nil {
		// The inline "Regex error:" line already explains the failure.
		cmd.SilenceErrors = true
		return out.Err
	}
	return out.SaveErr
}
