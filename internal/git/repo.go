package git

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
)

// ErrBareRepository is returned when the repository has no working tree
var ErrBareRepository = errors.New("bare repository has no working tree")

// NotRepoError indicates no repository was found at or above Path
type NotRepoError struct {
	Path string
}

func (e *NotRepoError) Error() string {
	return "not a git repository (or any parent): " + e.Path
}

// GitError provides better context for git operation failures
type GitError struct {
	Command string
	Output  string
}

func (e *GitError) Error() string {
	return "git " + e.Command + ": " + e.Output
}

// Repo is a non-bare repository with its working tree
type Repo struct {
	repo *git.Repository
	wt   *git.Worktree
	root string
}

// IsGitRepo checks if the path is a git repository
func IsGitRepo(path string) bool {
	_, err := git.PlainOpen(path)
	return err == nil
}

// FindRoot walks up from path to the first directory that is a git repository
func FindRoot(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	dir := abs
	for {
		if IsGitRepo(dir) {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", &NotRepoError{Path: abs}
		}
		dir = parent
	}
}

// Open opens the repository containing path (searching parent directories)
func Open(path string) (*Repo, error) {
	if path == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		path = cwd
	}

	root, err := FindRoot(path)
	if err != nil {
		return nil, err
	}

	repo, err := git.PlainOpen(root)
	if err != nil {
		return nil, err
	}

	r, err := NewRepo(repo)
	if err != nil {
		return nil, err
	}
	r.root = root

	excludes, err := userExcludes()
	if err != nil {
		return nil, &GitError{Command: "config core.excludesFile", Output: err.Error()}
	}
	r.wt.Excludes = append(r.wt.Excludes, excludes...)

	return r, nil
}

// userExcludes loads the core.excludesFile patterns from the system and
// global git config. Worktree.Status only reads .gitignore files on its own.
func userExcludes() ([]gitignore.Pattern, error) {
	rootFS := osfs.New("/")

	system, err := gitignore.LoadSystemPatterns(rootFS)
	if err != nil {
		return nil, err
	}
	if _, err := os.UserHomeDir(); err != nil {
		// no home directory, no global config
		return system, nil
	}
	global, err := gitignore.LoadGlobalPatterns(rootFS)
	if err != nil {
		return nil, err
	}
	return append(system, global...), nil
}

// NewRepo wraps an opened repository. Fails with ErrBareRepository when
// there is no working tree.
func NewRepo(repo *git.Repository) (*Repo, error) {
	wt, err := repo.Worktree()
	if err != nil {
		if errors.Is(err, git.ErrIsBareRepository) {
			return nil, ErrBareRepository
		}
		return nil, err
	}

	return &Repo{
		repo: repo,
		wt:   wt,
		root: wt.Filesystem.Root(),
	}, nil
}

// Root returns the working tree root directory
func (r *Repo) Root() string {
	return r.root
}

// HasHead reports whether HEAD points to a commit
func (r *Repo) HasHead() bool {
	_, err := r.repo.Head()
	return err == nil
}

// HasPendingChanges reports whether anything differs from HEAD, staged or not
func (r *Repo) HasPendingChanges() (bool, error) {
	status, err := r.wt.Status()
	if err != nil {
		return false, &GitError{Command: "status", Output: err.Error()}
	}
	return !status.IsClean(), nil
}
