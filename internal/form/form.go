// Package form holds the toolkit-independent state behind the pattern editor:
// the three input fields, compile readiness, history selection and the
// compile action that records a triple and renders its matches.
//
// Both the terminal UI and the line-mode REPL drive a Form; neither touches
// the history store or the match engine directly.
package form

import (
	"errors"
	"fmt"

	"github.com/Pratham-0827/Regex-Tutorial/internal/history"
	"github.com/Pratham-0827/Regex-Tutorial/internal/log"
	"github.com/Pratham-0827/Regex-Tutorial/internal/match"
)

// State is the editor's position in its lifecycle.
type State int

const (
	Idle     State = iota // pattern or example is empty
	Ready                 // both pattern and example are filled in
	Compiled              // the last compile attempt has resolved
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Ready:
		return "ready"
	case Compiled:
		return "compiled"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Output lines written around the rendered matches.
const (
	MatchesHeader = "Matches found:"
	NoMatches     = "No matches found."
)

var (
	// ErrNotReady is returned by Compile while pattern or example is empty.
	ErrNotReady = errors.New("pattern and example are required")
	// ErrNoSuchEntry is returned by Select for an index outside the history.
	ErrNoSuchEntry = errors.New("no such history entry")
)

// Recorder stores tried triples.
type Recorder interface {
	Append(e history.Entry) (bool, error)
	Entries() []history.Entry
}

// Matcher runs a pattern against a subject.
type Matcher interface {
	CompileAndMatch(pattern, subject string) (match.Result, error)
}

// Config controls recording policy and the initial field values.
type Config struct {
	// RecordInvalid saves a novel triple before the pattern is compiled, so
	// malformed patterns are recorded too.
	RecordInvalid  bool
	InitialPattern string
	InitialExample string
}

// Fields is the current text of the three inputs.
type Fields struct {
	Pattern     string
	Example     string
	Explanation string
}

// Entry converts the fields into a history entry.
func (f Fields) Entry() history.Entry {
	return history.Entry{Pattern: f.Pattern, Example: f.Example, Explanation: f.Explanation}
}

// Outcome describes one compile attempt.
type Outcome struct {
	Fields   Fields
	Result   match.Result
	Lines    []string
	Err      error // compile or timeout error; the caller should alert the user
	Recorded bool  // a new entry was appended to history
	SaveErr  error // history could not be written
}

// Form is the editor state machine. It is not safe for concurrent use.
type Form struct {
	recorder Recorder
	matcher  Matcher
	cfg      Config

	fields Fields
	state  State
	output []string
}

// New creates a Form seeded with the configured initial pattern and example.
func New(recorder Recorder, matcher Matcher, cfg Config) *Form {
	f := &Form{
		recorder: recorder,
		matcher:  matcher,
		cfg:      cfg,
		fields: Fields{
			Pattern: cfg.InitialPattern,
			Example: cfg.InitialExample,
		},
	}
	f.state = f.readiness()
	return f
}

// SetPattern replaces the pattern text and re-evaluates readiness.
func (f *Form) SetPattern(s string) {
	f.fields.Pattern = s
	f.edited()
}

// SetExample replaces the example text and re-evaluates readiness.
func (f *Form) SetExample(s string) {
	f.fields.Example = s
	f.edited()
}

// SetExplanation replaces the explanation text. It has no effect on readiness.
func (f *Form) SetExplanation(s string) {
	f.fields.Explanation = s
}

func (f *Form) edited() {
	f.state = f.readiness()
}

func (f *Form) readiness() State {
	if f.fields.Pattern != "" && f.fields.Example != "" {
		return Ready
	}
	return Idle
}

// CanCompile reports whether both pattern and example are filled in.
func (f *Form) CanCompile() bool {
	return f.readiness() == Ready
}

// Select loads history entry i into the pattern and example fields and
// clears the explanation. It neither compiles nor changes history.
func (f *Form) Select(i int) error {
	entries := f.recorder.Entries()
	if i < 0 || i >= len(entries) {
		return fmt.Errorf("%w: %d", ErrNoSuchEntry, i)
	}
	e := entries[i]
	f.fields = Fields{Pattern: e.Pattern, Example: e.Example}
	f.state = f.readiness()

	log.Debug(log.CatUI, "Loaded history entry", "index", i, "pattern", e.Pattern)
	return nil
}

// Compile records the current triple in history, matches the pattern against
// the example and replaces the output lines. Regex failures do not return an
// error; they are reported in Outcome.Err with an inline output line.
func (f *Form) Compile() (Outcome, error) {
	if !f.CanCompile() {
		return Outcome{}, ErrNotReady
	}

	out := Outcome{Fields: f.fields}
	f.output = nil

	if f.cfg.RecordInvalid {
		f.record(&out)
	}

	res, err := f.matcher.CompileAndMatch(f.fields.Pattern, f.fields.Example)
	if err != nil {
		out.Err = err
		f.output = append(f.output, "Regex error: "+err.Error())
		if !f.cfg.RecordInvalid {
			log.Debug(log.CatHistory, "Skipped recording failed pattern", "pattern", f.fields.Pattern)
		}
	} else {
		if !f.cfg.RecordInvalid {
			f.record(&out)
		}
		out.Result = res
		if res.Empty() {
			f.output = append(f.output, NoMatches)
		} else {
			f.output = append(f.output, MatchesHeader)
			f.output = append(f.output, res.Strings()...)
		}
	}

	f.state = Compiled
	out.Lines = f.Output()
	return out, nil
}

func (f *Form) record(out *Outcome) {
	added, err := f.recorder.Append(f.fields.Entry())
	if err != nil {
		log.ErrorErr(log.CatHistory, "Failed to save history", err)
		out.SaveErr = err
		f.output = append(f.output, "History not saved: "+err.Error())
		return
	}
	out.Recorded = added
}

// Fields returns the current input values.
func (f *Form) Fields() Fields {
	return f.fields
}

// State returns the current lifecycle state.
func (f *Form) State() State {
	return f.state
}

// Output returns a copy of the lines produced by the last compile.
func (f *Form) Output() []string {
	out := make([]string, len(f.output))
	copy(out, f.output)
	return out
}

// History returns the recorded entries, oldest first.
func (f *Form) History() []history.Entry {
	return f.recorder.Entries()
}
