// Package cmd holds the regexlab command line.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Pratham-0827/Regex-Tutorial/internal/config"
	"github.com/Pratham-0827/Regex-Tutorial/internal/form"
	"github.com/Pratham-0827/Regex-Tutorial/internal/history"
	"github.com/Pratham-0827/Regex-Tutorial/internal/log"
	"github.com/Pratham-0827/Regex-Tutorial/internal/match"
	"github.com/Pratham-0827/Regex-Tutorial/internal/mode/workbench"
	"github.com/Pratham-0827/Regex-Tutorial/internal/ui/styles"
)

var (
	flagConfig  string
	flagHistory string
	flagLog     string

	// Set by setup before any command runs.
	cfg        config.Config
	configPath string
	logCleanup func()
)

var rootCmd = &cobra.Command{
	Use:   "regexlab",
	Short: "Try regular expressions against example strings",
	Long: `regexlab is a terminal workbench for regular expressions. Enter a pattern
and an example string, compile, and every match is listed. Each new
pattern/example/explanation triple is kept in a JSON history file that can be
reloaded later.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: teardown,
	RunE:              runWorkbench,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default .regexlab/config.yaml or ~/.config/regexlab/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&flagHistory, "history", "", "history file (overrides history.path)")
	rootCmd.PersistentFlags().StringVar(&flagLog, "log", "", "write a debug log to this file (overrides log.path)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func setup(cmd *cobra.Command, args []string) error {
	v := viper.New()
	if f := cmd.Flags().Lookup("log"); f != nil {
		if err := v.BindPFlag("log.path", f); err != nil {
			return fmt.Errorf("binding --log: %w", err)
		}
	}

	loaded, path, err := config.Load(v, flagConfig)
	if err != nil {
		return err
	}

	cleanup, err := log.Init(loaded.Log.Path)
	if err != nil {
		return err
	}
	logCleanup = cleanup
	if level, err := log.ParseLevel(loaded.Log.Level); err == nil {
		log.SetLevel(level)
	}

	if err := styles.ApplyTheme(loaded.Theme.Styles()); err != nil {
		return fmt.Errorf("applying theme: %w", err)
	}
	if loaded.UI.NoColor || os.Getenv("NO_COLOR") != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	cfg = loaded
	configPath = path
	log.Info(log.CatConfig, "Configuration ready", "command", cmd.Name(), "config", path)
	return nil
}

func teardown(cmd *cobra.Command, args []string) {
	if logCleanup != nil {
		logCleanup()
		logCleanup = nil
	}
}

// openStore loads the history file, applying history.on_load_error when the
// file is malformed.
func openStore(cmd *cobra.Command) (*history.Store, error) {
	path := config.HistoryPath(cfg, configPath, flagHistory)
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}

	store, err := history.Open(path)
	if err == nil {
		return store, nil
	}
	if !errors.Is(err, history.ErrMalformed) || cfg.History.OnLoadError != config.OnLoadErrorReset {
		log.ErrorErr(log.CatHistory, "Cannot load history", err, "path", path)
		return nil, err
	}

	moved, qerr := history.Quarantine(path)
	if qerr != nil {
		return nil, fmt.Errorf("%w (moving it aside also failed: %v)", err, qerr)
	}
	log.Warn(log.CatHistory, "Reset malformed history", "path", path, "moved_to", moved)
	fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s was malformed; moved to %s and starting with empty history\n", path, moved)
	return history.NewStore(path), nil
}

func newEngine() *match.Engine {
	return match.New(match.Options{
		IgnoreCase: cfg.Match.IgnoreCase,
		Multiline:  cfg.Match.Multiline,
		Singleline: cfg.Match.Singleline,
		ECMAScript: cfg.Match.ECMAScript,
		Timeout:    cfg.Match.Timeout,
	})
}

// newForm wires the history store and match engine into an editor form.
func newForm(cmd *cobra.Command) (*form.Form, error) {
	store, err := openStore(cmd)
	if err != nil {
		return nil, err
	}
	return form.New(store, newEngine(), form.Config{
		RecordInvalid:  cfg.History.RecordInvalid,
		InitialPattern: cfg.Form.InitialPattern,
		InitialExample: cfg.Form.InitialExample,
	}), nil
}

func runWorkbench(cmd *cobra.Command, args []string) error {
	f, err := newForm(cmd)
	if err != nil {
		return err
	}

	p := tea.NewProgram(workbench.New(f), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running editor: %w", err)
	}
	return nil
}
