// Package match compiles user patterns and collects every match against a
// subject string.
//
// Patterns use the backtracking dialect of github.com/dlclark/regexp2:
// backreferences, lookaround, named and unnamed groups, character classes,
// anchors, and greedy or lazy quantifiers behave as in PCRE. Python's
// (?P<name>...), (?P=name), {,n} and \Z are translated first. When named
// and unnamed groups are mixed, unnamed groups are numbered first.
package match

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/dlclark/regexp2"

	"github.com/Pratham-0827/Regex-Tutorial/internal/log"
)

// DefaultTimeout bounds a single CompileAndMatch scan.
const DefaultTimeout = 2 * time.Second

// Options tune how patterns are compiled.
type Options struct {
	IgnoreCase bool
	Multiline  bool // ^ and $ match at line boundaries
	Singleline bool // . matches \n
	ECMAScript bool // JavaScript-compatible behavior
	// Timeout caps the total time spent collecting every match in one
	// subject. Zero disables it.
	Timeout time.Duration
}

func (o Options) regexOptions() regexp2.RegexOptions {
	opts := regexp2.None
	if o.IgnoreCase {
		opts |= regexp2.IgnoreCase
	}
	if o.Multiline {
		opts |= regexp2.Multiline
	}
	if o.Singleline {
		opts |= regexp2.Singleline
	}
	if o.ECMAScript {
		opts |= regexp2.ECMAScript
	}
	return opts
}

// Group is one capturing group's contribution to a match.
type Group struct {
	Number  int
	Name    string // empty for unnamed groups
	Value   string
	Matched bool // false when the group did not take part in the match
}

// Match is one non-overlapping occurrence. Index and Length count runes.
type Match struct {
	Index  int
	Length int
	Text   string
	Groups []Group
}

// Result holds every match of a pattern in a subject, left to right.
type Result struct {
	Pattern    string
	GroupCount int
	Matches    []Match
}

// Empty reports whether nothing matched.
func (r Result) Empty() bool {
	return len(r.Matches) == 0
}

// Strings renders each match the way it is shown to the user.
func (r Result) Strings() []string {
	out := make([]string, len(r.Matches))
	for i, m := range r.Matches {
		out[i] = Render(m, r.GroupCount)
	}
	return out
}

// CompileError reports a malformed pattern.
type CompileError struct {
	Pattern string
	Message string
}

func (e *CompileError) Error() string {
	return e.Message
}

// TimeoutError reports a scan that exceeded Options.Timeout.
type TimeoutError struct {
	Pattern string
	Timeout time.Duration
	Err     error
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("matching %q took longer than %s", e.Pattern, e.Timeout)
}

func (e *TimeoutError) Unwrap() error { return e.Err }

var errDeadline = errors.New("match deadline exceeded")

// Engine compiles and runs patterns with a fixed set of options.
type Engine struct {
	opts Options
}

// New creates an Engine.
func New(opts Options) *Engine {
	return &Engine{opts: opts}
}

// Options returns the engine's compile options.
func (e *Engine) Options() Options {
	return e.opts
}

// Compile parses pattern. Python's named-group spellings are accepted
// alongside regexp2's own. Malformed patterns yield a *CompileError.
func (e *Engine) Compile(pattern string) (*regexp2.Regexp, error) {
	re, err := regexp2.Compile(translate(pattern), e.opts.regexOptions())
	if err != nil {
		return nil, &CompileError{Pattern: pattern, Message: err.Error()}
	}
	if e.opts.Timeout > 0 {
		re.MatchTimeout = e.opts.Timeout
	}
	return re, nil
}

// CompileAndMatch compiles pattern and collects every non-overlapping match
// in subject. An empty match advances the scan by one position, so a
// pattern like `a*` against "" yields exactly one empty match.
func (e *Engine) CompileAndMatch(pattern, subject string) (Result, error) {
	re, err := e.Compile(pattern)
	if err != nil {
		log.Debug(log.CatMatch, "Pattern rejected", "pattern", pattern, "error", err)
		return Result{}, err
	}

	groupNumbers := capturingGroups(re)
	res := Result{Pattern: pattern, GroupCount: len(groupNumbers)}

	// regexp2 applies MatchTimeout per Find call, so the remaining budget is
	// handed to each call and checked between matches.
	deadline := time.Now().Add(e.opts.Timeout)
	m, err := re.FindStringMatch(subject)
	for m != nil && err == nil {
		res.Matches = append(res.Matches, convert(re, m, groupNumbers))
		if e.opts.Timeout > 0 {
			remaining := time.Until(deadline)
			if remaining <= 0 {
				err = errDeadline
				break
			}
			re.MatchTimeout = remaining
		}
		m, err = re.FindNextMatch(m)
	}
	if err != nil {
		log.Warn(log.CatMatch, "Match scan aborted", "pattern", pattern, "error", err)
		return Result{}, &TimeoutError{Pattern: pattern, Timeout: e.opts.Timeout, Err: err}
	}

	log.Debug(log.CatMatch, "Matched", "pattern", pattern, "matches", len(res.Matches))
	return res, nil
}

// capturingGroups lists group numbers excluding the implicit group 0.
func capturingGroups(re *regexp2.Regexp) []int {
	var nums []int
	for _, n := range re.GetGroupNumbers() {
		if n != 0 {
			nums = append(nums, n)
		}
	}
	return nums
}

func convert(re *regexp2.Regexp, m *regexp2.Match, groupNumbers []int) Match {
	out := Match{
		Index:  m.Index,
		Length: m.Length,
		Text:   m.String(),
	}
	if len(groupNumbers) == 0 {
		return out
	}

	out.Groups = make([]Group, 0, len(groupNumbers))
	for _, n := range groupNumbers {
		g := Group{Number: n}
		if name := re.GroupNameFromNumber(n); name != strconv.Itoa(n) {
			g.Name = name
		}
		if mg := m.GroupByNumber(n); mg != nil && len(mg.Captures) > 0 {
			g.Value = mg.String()
			g.Matched = true
		}
		out.Groups = append(out.Groups, g)
	}
	return out
}
