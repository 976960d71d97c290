package git

import (
	"bytes"
	"io"
	"sort"
	"strings"

	"github.com/go-git/go-billy/v5/util"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/format/index"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/utils/binary"
	"github.com/go-git/go-git/v5/utils/diff"
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/wahlandcase/autocommit/internal/models"
)

// status returns the worktree status and its paths in sorted order
func (r *Repo) status() (git.Status, []string, error) {
	status, err := r.wt.Status()
	if err != nil {
		return nil, nil, &GitError{Command: "status", Output: err.Error()}
	}

	paths := make([]string, 0, len(status))
	for p := range status {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	return status, paths, nil
}

// UnstagedChanges lists working tree files that differ from the index
func (r *Repo) UnstagedChanges() ([]models.FileChange, error) {
	status, paths, err := r.status()
	if err != nil {
		return nil, err
	}

	idx, err := r.repo.Storer.Index()
	if err != nil {
		return nil, &GitError{Command: "index", Output: err.Error()}
	}

	var changes []models.FileChange
	for _, p := range paths {
		fs := status[p]
		if fs.Worktree == git.Unmodified || fs.Worktree == git.Untracked {
			continue
		}

		before, _ := r.indexContent(idx, p)
		after, to := "", p
		if fs.Worktree == git.Deleted {
			to = ""
		} else {
			after, _ = r.worktreeContent(p)
		}

		changes = append(changes, models.NewFileChange(p, to, unifiedDiff(before, after)))
	}

	return changes, nil
}

// StagedChanges lists index entries that differ from HEAD
func (r *Repo) StagedChanges() ([]models.FileChange, error) {
	tree, err := r.headTree()
	if err != nil {
		return nil, err
	}

	status, paths, err := r.status()
	if err != nil {
		return nil, err
	}

	idx, err := r.repo.Storer.Index()
	if err != nil {
		return nil, &GitError{Command: "index", Output: err.Error()}
	}

	var changes []models.FileChange
	for _, p := range paths {
		fs := status[p]
		if fs.Staging == git.Unmodified || fs.Staging == git.Untracked {
			continue
		}

		from, to := p, p
		var before, after string
		switch fs.Staging {
		case git.Added:
			from = ""
		case git.Renamed:
			if fs.Extra != "" {
				from = fs.Extra
			}
		}
		if from != "" {
			before, _ = treeContent(tree, from)
		}
		if fs.Staging == git.Deleted {
			to = ""
		} else {
			after, _ = r.indexContent(idx, p)
		}

		changes = append(changes, models.NewFileChange(from, to, unifiedDiff(before, after)))
	}

	return changes, nil
}

// IndexEntries lists the stage-0 entries of the index
func (r *Repo) IndexEntries() ([]models.IndexEntry, error) {
	idx, err := r.repo.Storer.Index()
	if err != nil {
		return nil, &GitError{Command: "index", Output: err.Error()}
	}

	var entries []models.IndexEntry
	for _, e := range idx.Entries {
		// conflicted paths carry stages 1-3; normal entries are stage 0
		if e.Stage != 0 {
			continue
		}
		entries = append(entries, models.IndexEntry{Path: e.Name, Hash: e.Hash.String()})
	}
	return entries, nil
}

// BlobContent returns the raw content of a blob
func (r *Repo) BlobContent(hash string) ([]byte, error) {
	blob, err := r.repo.BlobObject(plumbing.NewHash(hash))
	if err != nil {
		return nil, err
	}

	reader, err := blob.Reader()
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	return io.ReadAll(reader)
}

// UntrackedFiles lists files that are neither tracked nor ignored
func (r *Repo) UntrackedFiles() ([]string, error) {
	status, paths, err := r.status()
	if err != nil {
		return nil, err
	}

	var untracked []string
	for _, p := range paths {
		if status[p].Worktree == git.Untracked {
			untracked = append(untracked, p)
		}
	}
	return untracked, nil
}

// ReadFile reads a working tree file by its repository-relative path
func (r *Repo) ReadFile(path string) ([]byte, error) {
	return util.ReadFile(r.wt.Filesystem, path)
}

func (r *Repo) headTree() (*object.Tree, error) {
	ref, err := r.repo.Head()
	if err != nil {
		return nil, &GitError{Command: "rev-parse HEAD", Output: err.Error()}
	}

	commit, err := r.repo.CommitObject(ref.Hash())
	if err != nil {
		return nil, &GitError{Command: "cat-file", Output: err.Error()}
	}

	return commit.Tree()
}

// indexContent returns the staged text of path; ok is false for missing or binary blobs
func (r *Repo) indexContent(idx *index.Index, path string) (string, bool) {
	entry, err := idx.Entry(path)
	if err != nil {
		return "", false
	}
	data, err := r.BlobContent(entry.Hash.String())
	if err != nil {
		return "", false
	}
	return textContent(data)
}

// worktreeContent returns the working tree text of path; ok is false for unreadable or binary files
func (r *Repo) worktreeContent(path string) (string, bool) {
	data, err := r.ReadFile(path)
	if err != nil {
		return "", false
	}
	return textContent(data)
}

func treeContent(tree *object.Tree, path string) (string, bool) {
	file, err := tree.File(path)
	if err != nil {
		return "", false
	}
	if isBin, err := file.IsBinary(); err != nil || isBin {
		return "", false
	}
	contents, err := file.Contents()
	if err != nil {
		return "", false
	}
	return contents, true
}

func textContent(data []byte) (string, bool) {
	if isBin, err := binary.IsBinary(bytes.NewReader(data)); err != nil || isBin {
		return "", false
	}
	return string(data), true
}

// unifiedDiff renders the changed lines between two texts as +/- lines.
// Unchanged lines are left out.
func unifiedDiff(before, after string) string {
	if before == after {
		return ""
	}

	var sb strings.Builder
	for _, d := range diff.Do(before, after) {
		var prefix string
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		default:
			continue
		}

		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			sb.WriteString(prefix)
			sb.WriteString(line)
			if !strings.HasSuffix(line, "\n") {
				sb.WriteString("\n")
			}
		}
	}
	return sb.String()
}
