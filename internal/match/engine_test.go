package match

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCompileAndMatch_Words(t *testing.T) {
	e := New(Options{Timeout: DefaultTimeout})

	res, err := e.CompileAndMatch(`\b\w+\b`, "This is an example string with several words.")
	require.NoError(t, err)
	require.Equal(t, 0, res.GroupCount)
	require.Equal(t,
		[]string{"This", "is", "an", "example", "string", "with", "several", "words"},
		res.Strings())
}

func TestCompileAndMatch_TwoGroupsRenderAsTuple(t *testing.T) {
	e := New(Options{})

	res, err := e.CompileAndMatch(`(\w+)@(\w+)`, "bob@example")
	require.NoError(t, err)
	require.Len(t, res.Matches, 1)
	require.Equal(t, 2, res.GroupCount)

	m := res.Matches[0]
	require.Equal(t, "bob@example", m.Text)
	require.Equal(t, []Group{
		{Number: 1, Value: "bob", Matched: true},
		{Number: 2, Value: "example", Matched: true},
	}, m.Groups)
	require.Equal(t, []string{"('bob', 'example')"}, res.Strings())
}

func TestCompileAndMatch_OneGroupRendersValue(t *testing.T) {
	e := New(Options{})

	res, err := e.CompileAndMatch(`(\d+) apples`, "3 apples and 42 apples")
	require.NoError(t, err)
	require.Equal(t, []string{"3", "42"}, res.Strings())
}

func TestCompileAndMatch_NonParticipatingGroup(t *testing.T) {
	e := New(Options{})

	res, err := e.CompileAndMatch(`(a)|(b)`, "ab")
	require.NoError(t, err)
	require.Len(t, res.Matches, 2)

	first := res.Matches[0].Groups
	require.True(t, first[0].Matched)
	require.False(t, first[1].Matched)
	require.Equal(t, "", first[1].Value)

	require.Equal(t, []string{"('a', '')", "('', 'b')"}, res.Strings())
}

func TestCompileAndMatch_NamedGroups(t *testing.T) {
	e := New(Options{})

	res, err := e.CompileAndMatch(`(?<year>\d{4})-(?<month>\d{2})`, "2024-05 and 1999-12")
	require.NoError(t, err)
	require.Len(t, res.Matches, 2)
	require.Equal(t, "year", res.Matches[0].Groups[0].Name)
	require.Equal(t, "month", res.Matches[0].Groups[1].Name)
	require.Equal(t, []string{"('2024', '05')", "('1999', '12')"}, res.Strings())
}

func TestCompileAndMatch_BackreferenceAndLookaround(t *testing.T) {
	e := New(Options{})

	res, err := e.CompileAndMatch(`\b(\w)\w*\1\b`, "abba level xyz")
	require.NoError(t, err)
	require.Equal(t, []string{"a", "l"}, res.Strings())

	res, err = e.CompileAndMatch(`\w+(?=@)`, "bob@example alice@host")
	require.NoError(t, err)
	require.Equal(t, []string{"bob", "alice"}, res.Strings())

	res, err = e.CompileAndMatch(`(?<!\$)\b\d+`, "$5 and 7")
	require.NoError(t, err)
	require.Equal(t, []string{"7"}, res.Strings())
}

func TestCompileAndMatch_NoMatchesIsNotAnError(t *testing.T) {
	e := New(Options{})

	res, err := e.CompileAndMatch(`\d+`, "no digits here")
	require.NoError(t, err)
	require.True(t, res.Empty())
	require.Empty(t, res.Strings())
}

func TestCompileAndMatch_EmptySubjectEmptyMatch(t *testing.T) {
	e := New(Options{})

	res, err := e.CompileAndMatch(`a*`, "")
	require.NoError(t, err)
	require.Len(t, res.Matches, 1)
	require.Equal(t, "", res.Matches[0].Text)
	require.Equal(t, 0, res.Matches[0].Index)
}

func TestCompileAndMatch_EmptyMatchesAdvance(t *testing.T) {
	e := New(Options{})

	res, err := e.CompileAndMatch(`a*`, "baa")
	require.NoError(t, err)
	require.Equal(t, []string{"", "aa", ""}, res.Strings())
	require.Equal(t, []int{0, 1, 3}, []int{res.Matches[0].Index, res.Matches[1].Index, res.Matches[2].Index})
}

func TestCompileAndMatch_NonOverlapping(t *testing.T) {
	e := New(Options{})

	res, err := e.CompileAndMatch(`aa`, "aaaaa")
	require.NoError(t, err)
	require.Equal(t, []string{"aa", "aa"}, res.Strings())
}

func TestCompileAndMatch_Deterministic(t *testing.T) {
	e := New(Options{})
	subject := strings.Repeat("ab12 ", 20)

	first, err := e.CompileAndMatch(`[a-z]+(\d)`, subject)
	require.NoError(t, err)
	second, err := e.CompileAndMatch(`[a-z]+(\d)`, subject)
	require.NoError(t, err)
	require.Equal(t, first, second)
	require.Len(t, first.Matches, 20)
}

func TestCompileAndMatch_MalformedPatterns(t *testing.T) {
	e := New(Options{})

	for _, pattern := range []string{`(`, `a)`, `[a-`, `a{2,1}`, `*a`, `\`} {
		t.Run(pattern, func(t *testing.T) {
			res, err := e.CompileAndMatch(pattern, "anything")
			require.Error(t, err)
			require.Empty(t, res.Matches)

			var ce *CompileError
			require.True(t, errors.As(err, &ce), "expected CompileError, got %T", err)
			require.Equal(t, pattern, ce.Pattern)
			require.NotEmpty(t, ce.Message)
			require.Equal(t, ce.Message, err.Error())
		})
	}
}

func TestCompileAndMatch_Options(t *testing.T) {
	res, err := New(Options{IgnoreCase: true}).CompileAndMatch(`abc`, "ABC abc")
	require.NoError(t, err)
	require.Len(t, res.Matches, 2)

	res, err = New(Options{Multiline: true}).CompileAndMatch(`^\w+$`, "one\ntwo")
	require.NoError(t, err)
	require.Equal(t, []string{"one", "two"}, res.Strings())

	res, err = New(Options{}).CompileAndMatch(`^\w+$`, "one\ntwo")
	require.NoError(t, err)
	require.True(t, res.Empty())

	res, err = New(Options{Singleline: true}).CompileAndMatch(`a.b`, "a\nb")
	require.NoError(t, err)
	require.Len(t, res.Matches, 1)
}

func TestCompileAndMatch_Timeout(t *testing.T) {
	e := New(Options{Timeout: time.Millisecond})

	_, err := e.CompileAndMatch(`(a+)+$`, strings.Repeat("a", 40)+"!")
	require.Error(t, err)

	var te *TimeoutError
	require.True(t, errors.As(err, &te), "expected TimeoutError, got %T: %v", err, err)
	require.Equal(t, time.Millisecond, te.Timeout)
}

func TestCompile_AppliesTimeout(t *testing.T) {
	re, err := New(Options{Timeout: 3 * time.Second}).Compile(`x`)
	require.NoError(t, err)
	require.Equal(t, 3*time.Second, re.MatchTimeout)
}

func TestCompileAndMatch_PythonNamedGroups(t *testing.T) {
	res, err := New(Options{}).CompileAndMatch(`(?P<user>\w+)@(?P<host>\w+)`, "bob@example")
	require.NoError(t, err)

	require.Equal(t, []string{"('bob', 'example')"}, res.Strings())
	require.Equal(t, "user", res.Matches[0].Groups[0].Name)
	require.Equal(t, "host", res.Matches[0].Groups[1].Name)
}

func TestCompileAndMatch_PythonNamedBackreference(t *testing.T) {
	res, err := New(Options{}).CompileAndMatch(`(?P<q>['"]).*?(?P=q)`, `say "hi" and 'yo'`)
	require.NoError(t, err)

	require.Len(t, res.Matches, 2)
	require.Equal(t, `"hi"`, res.Matches[0].Text)
	require.Equal(t, `'yo'`, res.Matches[1].Text)
	require.Equal(t, []string{`"`, `'`}, res.Strings())
}

func TestCompileAndMatch_OpenLowerBound(t *testing.T) {
	res, err := New(Options{}).CompileAndMatch(`a{,2}`, "aaa")
	require.NoError(t, err)

	require.Equal(t, []string{"aa", "a", ""}, res.Strings())
}

func TestCompileAndMatch_EndOfInputIgnoresTrailingNewline(t *testing.T) {
	res, err := New(Options{}).CompileAndMatch(`a\Z`, "a\n")
	require.NoError(t, err)
	require.True(t, res.Empty())

	res, err = New(Options{}).CompileAndMatch(`a\Z`, "ba")
	require.NoError(t, err)
	require.Equal(t, []string{"a"}, res.Strings())
}

func TestCompileAndMatch_UnknownBackreferenceName(t *testing.T) {
	_, err := New(Options{}).CompileAndMatch(`(?P<a>x)(?P=b)`, "xx")

	var ce *CompileError
	require.True(t, errors.As(err, &ce), "expected CompileError, got %T: %v", err, err)
	require.Equal(t, `(?P<a>x)(?P=b)`, ce.Pattern)
}

func TestCompileAndMatch_TimeoutCoversWholeScan(t *testing.T) {
	e := New(Options{Timeout: time.Nanosecond})

	// Every single Find is trivial; only the total scan exceeds the budget.
	_, err := e.CompileAndMatch(`a`, strings.Repeat("a", 10000))

	var te *TimeoutError
	require.True(t, errors.As(err, &te), "expected TimeoutError, got %T: %v", err, err)
	require.Equal(t, time.Nanosecond, te.Timeout)
}
