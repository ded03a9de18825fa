// Package history persists the (pattern, example, explanation) triples a user
// has tried to a JSON file.
//
// The file is an array of objects and is always rewritten whole:
//
//	[
//	    {
//	        "pattern": "\\d+",
//	        "example": "42 apples",
//	        "explanation": "digits"
//	    }
//	]
//
// Entries are append-only and keep insertion order. An entry is only added
// when no existing entry matches it on all three fields.
package history

import "sync"

// Entry is one remembered attempt.
type Entry struct {
	Pattern     string `json:"pattern"`
	Example     string `json:"example"`
	Explanation string `json:"explanation"`
}

// Store is the in-memory mirror of a history file.
type Store struct {
	path    string
	entries []Entry
	mu      sync.RWMutex
}

// Open loads the history file at path into a new Store.
// A missing file yields an empty store.
func Open(path string) (*Store, error) {
	entries, err := Load(path)
	if err != nil {
		return nil, err
	}
	return &Store{path: path, entries: entries}, nil
}

// NewStore returns an empty store backed by path without touching the disk.
func NewStore(path string) *Store {
	return &Store{path: path, entries: []Entry{}}
}

// Path returns the backing file location.
func (s *Store) Path() string {
	return s.path
}

// Append adds e and rewrites the file unless an identical entry exists.
// The in-memory list only changes when the write succeeds.
func (s *Store) Append(e Entry) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, added, err := AppendIfNew(s.path, s.entries, e)
	if err != nil {
		return false, err
	}
	s.entries = next
	return added, nil
}

// Contains reports whether an identical entry is stored.
func (s *Store) Contains(e Entry) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return contains(s.entries, e)
}

// At returns the entry at index i.
func (s *Store) At(i int) (Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i < 0 || i >= len(s.entries) {
		return Entry{}, false
	}
	return s.entries[i], true
}

// Len returns the number of stored entries.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Entries returns a copy of all entries, oldest first.
func (s *Store) Entries() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]Entry, len(s.entries))
	copy(result, s.entries)
	return result
}
