package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Pratham-0827/Regex-Tutorial/internal/config"
	"github.com/Pratham-0827/Regex-Tutorial/internal/history"
	"github.com/Pratham-0827/Regex-Tutorial/internal/match"
)

// runCommand executes the CLI in a fresh working directory with no user
// config, returning stdout and stderr.
func runCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	flagConfig, flagHistory, flagLog = "", "", ""
	historyJSON = false
	matchExplain, matchNoRecord = "", false
	replLineHistory = ""

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func inTempDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	testChdir(t, dir)
	t.Setenv("HOME", dir)
	return dir
}

func TestMatch_PrintsAndRecords(t *testing.T) {
	dir := inTempDir(t)

	out, _, err := runCommand(t, "match", `\b\w+\b`, "This is an example string with several words.", "--explain", "words")

	require.NoError(t, err)
	require.Equal(t, "Matches found:\nThis\nis\nan\nexample\nstring\nwith\nseveral\nwords\n", out)

	entries, err := history.Load(filepath.Join(dir, config.DefaultHistoryFile))
	require.NoError(t, err)
	require.Equal(t, []history.Entry{{
		Pattern:     `\b\w+\b`,
		Example:     "This is an example string with several words.",
		Explanation: "words",
	}}, entries)
}

func TestMatch_Groups(t *testing.T) {
	inTempDir(t)

	out, _, err := runCommand(t, "match", `(\w+)@(\w+)\.com`, "Contact bob@example.com or alice@test.com")

	require.NoError(t, err)
	require.Equal(t, "Matches found:\n('bob', 'example')\n('alice', 'test')\n", out)
}

func TestMatch_NoRecord(t *testing.T) {
	dir := inTempDir(t)

	out, _, err := runCommand(t, "match", "x", "xyz", "--no-record")

	require.NoError(t, err)
	require.Equal(t, "Matches found:\nx\n", out)
	require.NoFileExists(t, filepath.Join(dir, config.DefaultHistoryFile))
}

func TestMatch_InvalidPatternFails(t *testing.T) {
	dir := inTempDir(t)

	out, _, err := runCommand(t, "match", "(", "text")

	require.Error(t, err)
	require.Contains(t, out, "Regex error: ")

	entries, err := history.Load(filepath.Join(dir, config.DefaultHistoryFile))
	require.NoError(t, err)
	require.Len(t, entries, 1, "invalid patterns are recorded by default")
}

func TestMatch_HistoryFlag(t *testing.T) {
	dir := inTempDir(t)
	path := filepath.Join(dir, "elsewhere", "h.json")

	_, _, err := runCommand(t, "--history", path, "match", "a", "a")

	require.NoError(t, err)
	require.FileExists(t, path)
	require.NoFileExists(t, filepath.Join(dir, config.DefaultHistoryFile))
}

func TestHistory_JSON(t *testing.T) {
	inTempDir(t)
	_, _, err := runCommand(t, "match", "a+", "caab", "--explain", "runs")
	require.NoError(t, err)

	out, _, err := runCommand(t, "history", "--json")

	require.NoError(t, err)
	var entries []history.Entry
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	require.Equal(t, []history.Entry{{Pattern: "a+", Example: "caab", Explanation: "runs"}}, entries)
}

func TestHistory_Table(t *testing.T) {
	inTempDir(t)
	_, _, err := runCommand(t, "match", "a+", "caab")
	require.NoError(t, err)

	out, _, err := runCommand(t, "history")

	require.NoError(t, err)
	require.Contains(t, out, "Pattern")
	require.Contains(t, out, "a+")
	require.Contains(t, out, "caab")
}

func TestHistory_Empty(t *testing.T) {
	inTempDir(t)

	out, _, err := runCommand(t, "history")

	require.NoError(t, err)
	require.Contains(t, out, "No history")
}

func TestHistory_MalformedFailsByDefault(t *testing.T) {
	dir := inTempDir(t)
	path := filepath.Join(dir, config.DefaultHistoryFile)
	require.NoError(t, os.WriteFile(path, []byte(`{"pattern": "a"}`), 0o600))

	_, _, err := runCommand(t, "history")

	require.ErrorIs(t, err, history.ErrMalformed)
	require.ErrorContains(t, err, path)
}

func TestHistory_RelativeHistoryFlagReportedAbsolute(t *testing.T) {
	dir := inTempDir(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "h.json"), []byte(`[1]`), 0o600))

	_, _, err := runCommand(t, "--history", "h.json", "history")

	require.ErrorIs(t, err, history.ErrMalformed)
	require.ErrorContains(t, err, filepath.Join(dir, "h.json"))
}

func TestHistory_MalformedResetPolicy(t *testing.T) {
	dir := inTempDir(t)
	path := filepath.Join(dir, config.DefaultHistoryFile)
	require.NoError(t, os.WriteFile(path, []byte(`not json`), 0o600))

	cfgPath := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("history:\n  on_load_error: reset\n"), 0o600))

	out, stderr, err := runCommand(t, "--config", cfgPath, "history")

	require.NoError(t, err)
	require.Contains(t, out, "No history")
	require.Contains(t, stderr, "malformed")
	require.NoFileExists(t, path)

	matches, err := filepath.Glob(path + ".corrupt-*")
	require.NoError(t, err)
	require.Len(t, matches, 1)
}

func TestInit_WritesConfigOnce(t *testing.T) {
	dir := inTempDir(t)

	out, _, err := runCommand(t, "init")
	require.NoError(t, err)
	require.Contains(t, out, config.ProjectConfigPath)
	require.FileExists(t, filepath.Join(dir, config.ProjectConfigPath))

	_, _, err = runCommand(t, "init")
	require.ErrorContains(t, err, "already exists")
}

func TestInit_ProjectConfigIsPickedUp(t *testing.T) {
	dir := inTempDir(t)
	_, _, err := runCommand(t, "init")
	require.NoError(t, err)

	_, _, err = runCommand(t, "match", "a", "a")

	require.NoError(t, err)
	require.FileExists(t, filepath.Join(dir, config.DefaultHistoryFile))
}

func TestConfig_InvalidIsRejected(t *testing.T) {
	dir := inTempDir(t)
	cfgPath := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("history:\n  on_load_error: explode\n"), 0o600))

	_, _, err := runCommand(t, "--config", cfgPath, "history")

	require.ErrorContains(t, err, "on_load_error")
}

func TestThemes_ListsPresets(t *testing.T) {
	inTempDir(t)

	out, _, err := runCommand(t, "themes")

	require.NoError(t, err)
	require.Contains(t, out, "catppuccin-mocha")
	require.Contains(t, out, "dracula")
	require.Contains(t, out, "status.error")
}

func TestLogFlag_WritesLog(t *testing.T) {
	dir := inTempDir(t)
	logPath := filepath.Join(dir, "debug.log")

	_, _, err := runCommand(t, "--log", logPath, "match", "a", "a")

	require.NoError(t, err)
	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	require.Contains(t, string(data), "[INFO] [config] Configuration ready")
}

func TestNewEngine_UsesMatchConfig(t *testing.T) {
	saved := cfg
	t.Cleanup(func() { cfg = saved })

	cfg = config.Defaults()
	cfg.Match.IgnoreCase = true
	cfg.Match.Multiline = true
	cfg.Match.Timeout = 5 * time.Second

	require.Equal(t, match.Options{
		IgnoreCase: true,
		Multiline:  true,
		Timeout:    5 * time.Second,
	}, newEngine().Options())
}

// testChdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func testChdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}
