package history

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Pratham-0827/Regex-Tutorial/internal/log"
)

// ErrMalformed is wrapped by a FileError when the history file exists but is
// not a JSON array of {pattern, example, explanation} objects.
var ErrMalformed = errors.New("malformed history file")

// FileError describes a failure reading or writing the history file.
type FileError struct {
	Path string
	Op   string // "load" or "save"
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s history %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileError) Unwrap() error { return e.Err }

// rawEntry mirrors Entry with pointer fields so missing keys can be told
// apart from empty strings.
type rawEntry struct {
	Pattern     *string `json:"pattern"`
	Example     *string `json:"example"`
	Explanation *string `json:"explanation"`
}

// Load reads every entry from the history file at path.
// If the file does not exist, returns an empty slice.
func Load(path string) ([]Entry, error) {
	if path == "" {
		return nil, &FileError{Path: path, Op: "load", Err: errors.New("history path is empty")}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Debug(log.CatHistory, "History file absent, starting empty", "path", path)
			return []Entry{}, nil
		}
		return nil, &FileError{Path: path, Op: "load", Err: err}
	}

	entries, err := decode(data)
	if err != nil {
		return nil, &FileError{Path: path, Op: "load", Err: err}
	}

	log.Debug(log.CatHistory, "Loaded history", "path", path, "entries", len(entries))
	return entries, nil
}

func decode(data []byte) ([]Entry, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, fmt.Errorf("%w: top-level value is not an array", ErrMalformed)
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.DisallowUnknownFields()

	var raw []rawEntry
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if dec.More() {
		return nil, fmt.Errorf("%w: trailing data after array", ErrMalformed)
	}

	entries := make([]Entry, 0, len(raw))
	for i, r := range raw {
		if r.Pattern == nil || r.Example == nil || r.Explanation == nil {
			return nil, fmt.Errorf("%w: entry %d is missing a field", ErrMalformed, i)
		}
		entries = append(entries, Entry{
			Pattern:     *r.Pattern,
			Example:     *r.Example,
			Explanation: *r.Explanation,
		})
	}
	return entries, nil
}

// Save overwrites the history file at path with entries, pretty-printed with
// four-space indentation. Uses a temp file + rename in the same directory;
// an existing file keeps its permissions, a new one gets 0644.
func Save(path string, entries []Entry) error {
	if path == "" {
		return &FileError{Path: path, Op: "save", Err: errors.New("history path is empty")}
	}
	if entries == nil {
		entries = []Entry{}
	}

	data, err := encode(entries)
	if err != nil {
		return &FileError{Path: path, Op: "save", Err: err}
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return &FileError{Path: path, Op: "save", Err: err}
	}

	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return &FileError{Path: path, Op: "save", Err: err}
	}
	tmpPath := tmp.Name()
	if err := tmp.Chmod(mode); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return &FileError{Path: path, Op: "save", Err: err}
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return &FileError{Path: path, Op: "save", Err: err}
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return &FileError{Path: path, Op: "save", Err: err}
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return &FileError{Path: path, Op: "save", Err: err}
	}

	log.Debug(log.CatHistory, "Saved history", "path", path, "entries", len(entries))
	return nil
}

func encode(entries []Entry) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(entries); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// AppendIfNew appends candidate to entries and saves the result, unless an
// identical entry is already present. The returned bool reports whether
// anything was appended. On a save failure entries is returned unchanged.
func AppendIfNew(path string, entries []Entry, candidate Entry) ([]Entry, bool, error) {
	if contains(entries, candidate) {
		return entries, false, nil
	}

	next := make([]Entry, len(entries), len(entries)+1)
	copy(next, entries)
	next = append(next, candidate)

	if err := Save(path, next); err != nil {
		return entries, false, err
	}
	return next, true, nil
}

// Quarantine moves a malformed history file aside so a fresh one can be
// written. Returns the new location.
func Quarantine(path string) (string, error) {
	dest := fmt.Sprintf("%s.corrupt-%s", path, time.Now().UTC().Format("20060102T150405Z"))
	if err := os.Rename(path, dest); err != nil {
		return "", &FileError{Path: path, Op: "quarantine", Err: err}
	}
	log.Warn(log.CatHistory, "Moved malformed history aside", "path", path, "dest", dest)
	return dest, nil
}

func contains(entries []Entry, e Entry) bool {
	for _, existing := range entries {
		if existing == e {
			return true
		}
	}
	return false
}
