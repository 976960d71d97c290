package models

// FileChange is a single changed path reported by the git layer
type FileChange struct {
	// From is the path before the change (empty for additions)
	From string
	// To is the path after the change (empty for deletions)
	To string
	// Diff is the textual diff, empty when unavailable or binary
	Diff string
}

// NewFileChange creates a new FileChange
func NewFileChange(from, to, diff string) FileChange {
	return FileChange{
		From: from,
		To:   to,
		Diff: diff,
	}
}

// Path returns the before path, falling back to the after path for additions
func (c FileChange) Path() string {
	if c.From != "" {
		return c.From
	}
	return c.To
}

// IndexEntry is a stage-0 entry of the git index
type IndexEntry struct {
	Path string
	// Hash is the hex blob id
	Hash string
}
