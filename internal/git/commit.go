package git

import (
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// CommitOptions controls CommitAll
type CommitOptions struct {
	// Amend replaces the commit HEAD points to
	Amend bool
	// AuthorName and AuthorEmail override the git config identity when both are set
	AuthorName  string
	AuthorEmail string
}

// StageAll stages every modified, deleted and untracked (non-ignored) file, like `git add -A`
func (r *Repo) StageAll() error {
	status, paths, err := r.status()
	if err != nil {
		return err
	}

	for _, p := range paths {
		switch status[p].Worktree {
		case git.Unmodified:
			continue
		case git.Deleted:
			if _, err := r.wt.Remove(p); err != nil {
				return &GitError{Command: "rm " + p, Output: err.Error()}
			}
		default:
			if _, err := r.wt.Add(p); err != nil {
				return &GitError{Command: "add " + p, Output: err.Error()}
			}
		}
	}

	return nil
}

// CommitAll stages everything and commits it with message.
// Returns the short hash of the new commit.
func (r *Repo) CommitAll(message string, opts CommitOptions) (string, error) {
	if err := r.StageAll(); err != nil {
		return "", err
	}

	commitOpts := &git.CommitOptions{Amend: opts.Amend}
	if opts.AuthorName != "" && opts.AuthorEmail != "" {
		commitOpts.Author = &object.Signature{
			Name:  opts.AuthorName,
			Email: opts.AuthorEmail,
			When:  time.Now(),
		}
	}

	hash, err := r.wt.Commit(message, commitOpts)
	if err != nil {
		return "", &GitError{Command: "commit", Output: err.Error()}
	}

	return hash.String()[:7], nil
}

// HeadMessage returns the full message of the HEAD commit
func (r *Repo) HeadMessage() (string, error) {
	ref, err := r.repo.Head()
	if err != nil {
		return "", &GitError{Command: "rev-parse HEAD", Output: err.Error()}
	}

	commit, err := r.repo.CommitObject(ref.Hash())
	if err != nil {
		return "", &GitError{Command: "cat-file", Output: err.Error()}
	}

	return commit.Message, nil
}
