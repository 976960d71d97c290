package git

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/storage/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wahlandcase/autocommit/internal/analyzer"
	"github.com/wahlandcase/autocommit/internal/models"
)

var testAuthor = CommitOptions{AuthorName: "Test", AuthorEmail: "test@example.com"}

func newMemRepo(t *testing.T) (*Repo, billy.Filesystem) {
	t.Helper()

	fs := memfs.New()
	repo, err := git.Init(memory.NewStorage(), fs)
	require.NoError(t, err)

	r, err := NewRepo(repo)
	require.NoError(t, err)
	return r, fs
}

func writeFile(t *testing.T, fs billy.Filesystem, path, content string) {
	t.Helper()
	require.NoError(t, util.WriteFile(fs, path, []byte(content), 0o644))
}

func stage(t *testing.T, r *Repo, paths ...string) {
	t.Helper()
	for _, p := range paths {
		_, err := r.wt.Add(p)
		require.NoError(t, err)
	}
}

func TestOpen_NotARepository(t *testing.T) {
	dir := t.TempDir()

	_, err := Open(dir)

	var notRepo *NotRepoError
	require.ErrorAs(t, err, &notRepo)
	assert.Contains(t, err.Error(), "not a git repository")
}

func TestOpen_FindsRootFromSubdirectory(t *testing.T) {
	dir := t.TempDir()
	_, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	sub := filepath.Join(dir, "pkg", "inner")
	require.NoError(t, os.MkdirAll(sub, 0o755))

	r, err := Open(sub)
	require.NoError(t, err)

	want, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	got, err := filepath.EvalSymlinks(r.Root())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestOpen_BareRepository(t *testing.T) {
	dir := t.TempDir()
	_, err := git.PlainInit(dir, true)
	require.NoError(t, err)

	_, err = Open(dir)
	assert.ErrorIs(t, err, ErrBareRepository)
}

func TestInitialCommit_IndexEntries(t *testing.T) {
	r, fs := newMemRepo(t)
	writeFile(t, fs, "utils.py", "def square(x):\n    return x * x\n")
	writeFile(t, fs, "hello.py", "print('hello')\n")
	stage(t, r, "utils.py", "hello.py")

	assert.False(t, r.HasHead())

	entries, err := r.IndexEntries()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "hello.py", entries[0].Path)
	assert.Equal(t, "utils.py", entries[1].Path)

	content, err := r.BlobContent(entries[0].Hash)
	require.NoError(t, err)
	assert.Equal(t, "print('hello')\n", string(content))
}

func TestUnstagedAndStagedChanges(t *testing.T) {
	r, fs := newMemRepo(t)
	writeFile(t, fs, "app.go", "package app\n\nfunc Run() {}\n")
	writeFile(t, fs, "old.txt", "remove me\n")
	_, err := r.CommitAll("chore: initial", testAuthor)
	require.NoError(t, err)
	require.True(t, r.HasHead())

	// unstaged modification
	writeFile(t, fs, "app.go", "package app\n\nfunc Run() { fixBug() }\n")
	// staged addition
	writeFile(t, fs, "feature.go", "package app\n")
	stage(t, r, "feature.go")
	// unstaged deletion
	require.NoError(t, fs.Remove("old.txt"))

	unstaged, err := r.UnstagedChanges()
	require.NoError(t, err)
	require.Len(t, unstaged, 2)

	assert.Equal(t, "app.go", unstaged[0].Path())
	assert.Contains(t, unstaged[0].Diff, "-func Run() {}\n")
	assert.Contains(t, unstaged[0].Diff, "+func Run() { fixBug() }\n")
	assert.NotContains(t, unstaged[0].Diff, "package app")

	assert.Equal(t, "old.txt", unstaged[1].Path())
	assert.Equal(t, "", unstaged[1].To)
	assert.Equal(t, "-remove me\n", unstaged[1].Diff)

	staged, err := r.StagedChanges()
	require.NoError(t, err)
	require.Len(t, staged, 1)
	assert.Equal(t, models.NewFileChange("", "feature.go", "+package app\n"), staged[0])
}

func TestUntrackedFiles(t *testing.T) {
	r, fs := newMemRepo(t)
	writeFile(t, fs, ".gitignore", "*.log\n")
	writeFile(t, fs, "debug.log", "noise")
	writeFile(t, fs, "notes.md", "# notes")

	untracked, err := r.UntrackedFiles()
	require.NoError(t, err)
	assert.Equal(t, []string{".gitignore", "notes.md"}, untracked)

	data, err := r.ReadFile("notes.md")
	require.NoError(t, err)
	assert.Equal(t, "# notes", string(data))

	_, err = r.ReadFile("missing.md")
	assert.Error(t, err)
}

func TestBinaryContentHasNoDiff(t *testing.T) {
	r, fs := newMemRepo(t)
	writeFile(t, fs, "logo.png", "\x89PNG\x00\x00")
	_, err := r.CommitAll("chore: logo", testAuthor)
	require.NoError(t, err)

	writeFile(t, fs, "logo.png", "\x89PNG\x00\x01\x02")

	unstaged, err := r.UnstagedChanges()
	require.NoError(t, err)
	require.Len(t, unstaged, 1)
	assert.Equal(t, "logo.png", unstaged[0].Path())
	assert.Empty(t, unstaged[0].Diff)
}

func TestCommitAll(t *testing.T) {
	r, fs := newMemRepo(t)
	writeFile(t, fs, "a.txt", "a")
	writeFile(t, fs, "b.txt", "b")

	hash, err := r.CommitAll("chore: first", testAuthor)
	require.NoError(t, err)
	assert.Len(t, hash, 7)

	pending, err := r.HasPendingChanges()
	require.NoError(t, err)
	assert.False(t, pending)

	require.NoError(t, fs.Remove("a.txt"))
	writeFile(t, fs, "c.txt", "c")

	pending, err = r.HasPendingChanges()
	require.NoError(t, err)
	assert.True(t, pending)

	_, err = r.CommitAll("chore: second", testAuthor)
	require.NoError(t, err)

	pending, err = r.HasPendingChanges()
	require.NoError(t, err)
	assert.False(t, pending, "deletions and untracked files are staged too")

	msg, err := r.HeadMessage()
	require.NoError(t, err)
	assert.Equal(t, "chore: second", msg)
}

func TestCommitAll_Amend(t *testing.T) {
	r, fs := newMemRepo(t)
	writeFile(t, fs, "a.txt", "a")
	first, err := r.CommitAll("chore: first", testAuthor)
	require.NoError(t, err)

	writeFile(t, fs, "a.txt", "aa")
	amendOpts := testAuthor
	amendOpts.Amend = true
	second, err := r.CommitAll("fix(a): Fix bug in a", amendOpts)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)

	msg, err := r.HeadMessage()
	require.NoError(t, err)
	assert.Equal(t, "fix(a): Fix bug in a", msg)

	iter, err := r.repo.Log(&git.LogOptions{})
	require.NoError(t, err)
	count := 0
	require.NoError(t, iter.ForEach(func(*object.Commit) error {
		count++
		return nil
	}))
	assert.Equal(t, 1, count)
}

func TestGenerateMessage_AgainstRepository(t *testing.T) {
	r, fs := newMemRepo(t)
	writeFile(t, fs, "hello.py", "# add greeting\nprint('hello')\n")
	writeFile(t, fs, "utils.py", "def square(x):\n    return x * x\n")
	stage(t, r, "hello.py", "utils.py")

	ctx := context.Background()
	msg := analyzer.GenerateMessage(ctx, r, analyzer.DefaultOptions())

	assert.Equal(t, models.Feat, msg.Type)
	assert.Equal(t, "src", msg.Scope)
	assert.Equal(t, "Files changed: hello.py, utils.py", msg.Body)
	assert.Equal(t, 1, strings.Count(msg.String(), "hello.py, utils.py"))

	first := analyzer.Collect(ctx, r, analyzer.DefaultOptions())
	second := analyzer.Collect(ctx, r, analyzer.DefaultOptions())
	assert.Equal(t, first, second)
	assert.Equal(t, []string{"hello.py", "utils.py"}, first.Paths)
}

func TestGenerateMessage_CleanTree(t *testing.T) {
	r, fs := newMemRepo(t)
	writeFile(t, fs, "a.txt", "a")
	_, err := r.CommitAll("chore: first", testAuthor)
	require.NoError(t, err)

	msg := analyzer.GenerateMessage(context.Background(), r, analyzer.DefaultOptions())
	assert.True(t, msg.IsNoChanges())
}

func TestGenerateMessage_DeduplicatesModifiedAndStaged(t *testing.T) {
	r, fs := newMemRepo(t)
	writeFile(t, fs, "app.js", "let a = 1\n")
	_, err := r.CommitAll("chore: first", testAuthor)
	require.NoError(t, err)

	writeFile(t, fs, "app.js", "let a = 22\n")
	stage(t, r, "app.js")
	writeFile(t, fs, "app.js", "let a = 333\n")

	ev := analyzer.Collect(context.Background(), r, analyzer.DefaultOptions())
	assert.Equal(t, []string{"app.js"}, ev.Paths)
}

func TestOpen_HonorsGlobalExcludesFile(t *testing.T) {
	home := t.TempDir()
	ignoreFile := filepath.Join(home, ".gitignore_global")
	require.NoError(t, os.WriteFile(ignoreFile, []byte(".DS_Store\n*.swp\n"), 0o644))
	gitconfig := "[core]\n\texcludesfile = " + ignoreFile + "\n"
	require.NoError(t, os.WriteFile(filepath.Join(home, ".gitconfig"), []byte(gitconfig), 0o644))
	t.Setenv("HOME", home)

	dir := t.TempDir()
	_, err := git.PlainInit(dir, false)
	require.NoError(t, err)
	for name, content := range map[string]string{
		"main.py":      "print('hi')\n",
		".DS_Store":    "\x00\x00\x00\x01Bud1",
		".main.py.swp": "b0VIM",
	} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}

	r, err := Open(dir)
	require.NoError(t, err)

	untracked, err := r.UntrackedFiles()
	require.NoError(t, err)
	assert.Equal(t, []string{"main.py"}, untracked)

	_, err = r.CommitAll("chore: first", testAuthor)
	require.NoError(t, err)

	tree, err := r.headTree()
	require.NoError(t, err)
	_, err = tree.File("main.py")
	assert.NoError(t, err)
	_, err = tree.File(".DS_Store")
	assert.Error(t, err, "globally ignored files must not be committed")
}
