package analyzer

import "sort"

// ChangeSet accumulates affected paths, keeping each path once
type ChangeSet struct {
	seen  map[string]struct{}
	paths []string
}

// NewChangeSet creates an empty ChangeSet
func NewChangeSet() *ChangeSet {
	return &ChangeSet{seen: make(map[string]struct{})}
}

// Add records path unless it is empty or already present.
// Returns true if the path was new.
func (s *ChangeSet) Add(path string) bool {
	if path == "" {
		return false
	}
	if _, ok := s.seen[path]; ok {
		return false
	}
	s.seen[path] = struct{}{}
	s.paths = append(s.paths, path)
	return true
}

// Ordered returns the paths in first-seen order
func (s *ChangeSet) Ordered() []string {
	out := make([]string, len(s.paths))
	copy(out, s.paths)
	return out
}

// Paths returns the paths sorted lexicographically
func (s *ChangeSet) Paths() []string {
	out := s.Ordered()
	sort.Strings(out)
	return out
}
