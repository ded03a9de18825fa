// Package repl drives a form.Form from a line prompt for terminals where the
// full-screen editor is unwanted.
//
// Commands start with a colon. :pattern, :example and :explain take the rest
// of the line verbatim so patterns need no quoting; every other command
// splits its arguments with shell quoting rules.
package repl

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"

	"github.com/Pratham-0827/Regex-Tutorial/internal/form"
	"github.com/Pratham-0827/Regex-Tutorial/internal/log"
	"github.com/Pratham-0827/Regex-Tutorial/internal/match"
)

// DefaultPrompt is shown before each line.
const DefaultPrompt = "regex> "

// ErrUnknownCommand is returned for input that is not a known command.
var ErrUnknownCommand = errors.New("unknown command")

// Response is what one line produced.
type Response struct {
	Lines []string
	Err   error // regex error from a compile; already included in Lines
	Quit  bool
}

// Session executes REPL commands against a form.
type Session struct {
	form *form.Form
}

// NewSession returns a session driving f.
func NewSession(f *form.Form) *Session {
	return &Session{form: f}
}

var commands = []struct {
	name  string
	usage string
}{
	{":pattern", ":pattern <regex>           set the pattern (rest of line, verbatim)"},
	{":example", ":example <text>            set the example string (verbatim)"},
	{":explain", ":explain <text>            set the explanation (verbatim)"},
	{":try", ":try 'PATTERN' 'EXAMPLE' ['EXPLANATION']  set fields and compile"},
	{":compile", ":compile, :c                record and match the current fields"},
	{":history", ":history                   list stored entries"},
	{":load", ":load N                     load entry N into pattern and example"},
	{":show", ":show                       print the current fields"},
	{":help", ":help                       show this help"},
	{":quit", ":quit, :q                   leave"},
}

// Exec runs one input line. Usage mistakes are returned as errors; regex
// errors are part of a normal Response.
func (s *Session) Exec(line string) (Response, error) {
	line = strings.TrimRight(line, "\r\n")
	if strings.TrimSpace(line) == "" {
		return Response{}, nil
	}

	trimmed := strings.TrimLeft(line, " \t")
	name, rest, _ := strings.Cut(trimmed, " ")
	log.Debug(log.CatRepl, "Exec", "command", name)

	switch name {
	case ":pattern":
		s.form.SetPattern(rest)
		return s.fieldSet("pattern"), nil
	case ":example":
		s.form.SetExample(rest)
		return s.fieldSet("example"), nil
	case ":explain":
		s.form.SetExplanation(rest)
		return s.fieldSet("explanation"), nil
	case ":compile", ":c":
		return s.compile()
	case ":show":
		return s.show(), nil
	case ":help":
		return help(), nil
	case ":quit", ":q":
		return Response{Quit: true}, nil
	}

	args, err := shellquote.Split(rest)
	if err != nil {
		return Response{}, fmt.Errorf("parsing %s arguments: %w", name, err)
	}

	switch name {
	case ":try":
		return s.try(args)
	case ":history":
		return s.history(), nil
	case ":load":
		return s.load(args)
	}
	return Response{}, fmt.Errorf("%w %q (try :help)", ErrUnknownCommand, name)
}

func (s *Session) fieldSet(field string) Response {
	return Response{Lines: []string{fmt.Sprintf("%s set (%s)", field, s.form.State())}}
}

func (s *Session) compile() (Response, error) {
	out, err := s.form.Compile()
	if err != nil {
		return Response{}, err
	}
	resp := Response{Lines: out.Lines, Err: out.Err}
	if out.Recorded {
		resp.Lines = append(resp.Lines, fmt.Sprintf("(saved as entry %d)", len(s.form.History())))
	}
	return resp, nil
}

func (s *Session) try(args []string) (Response, error) {
	if len(args) < 2 || len(args) > 3 {
		return Response{}, errors.New("usage: :try 'PATTERN' 'EXAMPLE' ['EXPLANATION']")
	}
	s.form.SetPattern(args[0])
	s.form.SetExample(args[1])
	explanation := ""
	if len(args) == 3 {
		explanation = args[2]
	}
	s.form.SetExplanation(explanation)
	return s.compile()
}

func (s *Session) history() Response {
	entries := s.form.History()
	if len(entries) == 0 {
		return Response{Lines: []string{"History is empty."}}
	}
	lines := make([]string, 0, len(entries))
	for i, e := range entries {
		line := fmt.Sprintf("%3d  %s  %s", i+1, match.Quote(e.Pattern), match.Quote(e.Example))
		if e.Explanation != "" {
			line += "  # " + strings.ReplaceAll(e.Explanation, "\n", " ")
		}
		lines = append(lines, line)
	}
	return Response{Lines: lines}
}

func (s *Session) load(args []string) (Response, error) {
	if len(args) != 1 {
		return Response{}, errors.New("usage: :load N")
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return Response{}, fmt.Errorf("entry number %q: %w", args[0], err)
	}
	if err := s.form.Select(n - 1); err != nil {
		return Response{}, err
	}
	resp := s.show()
	resp.Lines = append([]string{fmt.Sprintf("Loaded entry %d.", n)}, resp.Lines...)
	return resp, nil
}

func (s *Session) show() Response {
	f := s.form.Fields()
	return Response{Lines: []string{
		"pattern:     " + match.Quote(f.Pattern),
		"example:     " + match.Quote(f.Example),
		"explanation: " + match.Quote(f.Explanation),
		"state:       " + s.form.State().String(),
	}}
}

func help() Response {
	lines := make([]string, len(commands))
	for i, c := range commands {
		lines[i] = "  " + c.usage
	}
	return Response{Lines: lines}
}

// Config controls the interactive loop.
type Config struct {
	Prompt      string
	HistoryFile string // readline's own line history; empty keeps it in memory
	Stdin       io.ReadCloser
	Stdout      io.Writer
	Stderr      io.Writer
}

func completer() *readline.PrefixCompleter {
	items := make([]readline.PrefixCompleterInterface, 0, len(commands)+2)
	for _, c := range commands {
		items = append(items, readline.PcItem(c.name))
	}
	items = append(items, readline.PcItem(":c"), readline.PcItem(":q"))
	return readline.NewPrefixCompleter(items...)
}

// Run reads lines until :quit, EOF or a second consecutive interrupt.
func Run(s *Session, cfg Config) error {
	if cfg.Prompt == "" {
		cfg.Prompt = DefaultPrompt
	}
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          cfg.Prompt,
		HistoryFile:     cfg.HistoryFile,
		AutoComplete:    completer(),
		InterruptPrompt: "^C",
		EOFPrompt:       ":quit",
		Stdin:           cfg.Stdin,
		Stdout:          cfg.Stdout,
		Stderr:          cfg.Stderr,
	})
	if err != nil {
		return fmt.Errorf("starting prompt: %w", err)
	}
	defer rl.Close()

	stdout := rl.Stdout()
	stderr := rl.Stderr()
	fmt.Fprintln(stdout, "Type :help for commands.")

	interrupts := 0
	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			if interrupts++; interrupts >= 2 {
				return nil
			}
			fmt.Fprintln(stderr, "(press ctrl+c again or type :quit to leave)")
			continue
		} else if errors.Is(err, io.EOF) {
			return nil
		} else if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}
		interrupts = 0

		resp, err := s.Exec(line)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			continue
		}
		for _, l := range resp.Lines {
			fmt.Fprintln(stdout, l)
		}
		if resp.Quit {
			return nil
		}
	}
}
