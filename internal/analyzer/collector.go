package analyzer

import (
	"bytes"
	"context"
	"strings"

	"github.com/go-git/go-git/v5/utils/binary"

	"github.com/wahlandcase/autocommit/internal/logging"
	"github.com/wahlandcase/autocommit/internal/models"
)

// Source is the read side of a working tree that the collector needs
type Source interface {
	// UnstagedChanges lists differences between the working tree and the index
	UnstagedChanges() ([]models.FileChange, error)
	// HasHead reports whether at least one commit exists
	HasHead() bool
	// StagedChanges lists differences between the index and HEAD
	StagedChanges() ([]models.FileChange, error)
	// IndexEntries lists the stage-0 index entries (used before the first commit)
	IndexEntries() ([]models.IndexEntry, error)
	// BlobContent returns the content of the blob with the given hex hash
	BlobContent(hash string) ([]byte, error)
	// UntrackedFiles lists working tree files git does not track
	UntrackedFiles() ([]string, error)
	// ReadFile reads a working tree file by repository-relative path
	ReadFile(path string) ([]byte, error)
}

// Evidence is everything the classifier gets to see about a pending change
type Evidence struct {
	// Paths is the sorted, deduplicated change set
	Paths []string
	// Sample is the capped concatenation of diff and content text
	Sample string
}

// Empty returns true if nothing changed
func (e Evidence) Empty() bool {
	return len(e.Paths) == 0
}

// Collect gathers changed paths and a text sample from unstaged changes,
// staged changes (or the initial index) and untracked files.
// Listing and read failures are logged and treated as empty.
func Collect(ctx context.Context, src Source, opts Options) Evidence {
	opts = opts.withDefaults()
	logger := logging.Get(ctx)
	set := NewChangeSet()

	unstaged, err := src.UnstagedChanges()
	if err != nil {
		logger.Warn().Err(err).Msg("failed to list unstaged changes")
	}
	diffSamples := collectChanges(set, unstaged)

	var stagedSamples []string
	if src.HasHead() {
		staged, err := src.StagedChanges()
		if err != nil {
			logger.Warn().Err(err).Msg("failed to list staged changes")
		}
		stagedSamples = collectChanges(set, staged)
	} else {
		entries, err := src.IndexEntries()
		if err != nil {
			logger.Warn().Err(err).Msg("failed to read index entries")
		}
		for _, entry := range entries {
			set.Add(entry.Path)
			stagedSamples = append(stagedSamples, readOrEmpty(func() ([]byte, error) {
				return src.BlobContent(entry.Hash)
			}))
		}
	}

	untracked, err := src.UntrackedFiles()
	if err != nil {
		logger.Warn().Err(err).Msg("failed to list untracked files")
	}
	var untrackedSamples []string
	for _, p := range untracked {
		set.Add(p)
		untrackedSamples = append(untrackedSamples, readOrEmpty(func() ([]byte, error) {
			return src.ReadFile(p)
		}))
	}

	samples := make([]string, 0, len(diffSamples)+len(stagedSamples)+len(untrackedSamples))
	samples = append(samples, diffSamples...)
	samples = append(samples, stagedSamples...)
	samples = append(samples, untrackedSamples...)

	evidence := Evidence{
		Paths:  set.Paths(),
		Sample: truncate(strings.Join(samples, "\n"), opts.SampleLimit),
	}

	logger.Debug().
		Int("unstaged", len(unstaged)).
		Int("staged_samples", len(stagedSamples)).
		Int("untracked", len(untracked)).
		Int("paths", len(evidence.Paths)).
		Int("sample_len", len(evidence.Sample)).
		Msg("collected changes")

	return evidence
}

// collectChanges adds each change's path to set and returns the non-empty diffs
func collectChanges(set *ChangeSet, changes []models.FileChange) []string {
	var samples []string
	for _, c := range changes {
		set.Add(c.Path())
		if c.Diff != "" {
			samples = append(samples, c.Diff)
		}
	}
	return samples
}

// readOrEmpty runs read and returns its content as text, or "" when the read
// fails or the content is binary. Invalid UTF-8 sequences are dropped.
func readOrEmpty(read func() ([]byte, error)) string {
	data, err := read()
	if err != nil {
		return ""
	}
	if isBin, err := binary.IsBinary(bytes.NewReader(data)); err != nil || isBin {
		return ""
	}
	return strings.ToValidUTF8(string(data), "")
}

// truncate cuts s to at most limit runes
func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	n := 0
	for i := range s {
		if n == limit {
			return s[:i]
		}
		n++
	}
	return s
}
