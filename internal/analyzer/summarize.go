package analyzer

import (
	"fmt"
	"path"
	"strings"

	"github.com/wahlandcase/autocommit/internal/models"
)

// Summarize builds the commit message for an already classified, non-empty
// list of paths.
func Summarize(changeType models.ChangeType, paths []string, opts Options) models.CommitMessage {
	opts = opts.withDefaults()
	scope := deriveScope(paths, opts.SourceExtensions)

	return models.NewCommitMessage(
		changeType,
		scope,
		deriveSubject(changeType, scope, len(paths)),
		deriveBody(paths, opts.BodyFileLimit),
	)
}

func deriveScope(paths []string, sourceExts []string) string {
	if len(paths) == 1 {
		name := path.Base(paths[0])
		if i := strings.Index(name, "."); i >= 0 {
			name = name[:i]
		}
		return name
	}

	for _, p := range paths {
		if inTestsDir(p) {
			return "tests"
		}
	}

	for _, p := range paths {
		for _, ext := range sourceExts {
			if strings.HasSuffix(p, ext) {
				return "src"
			}
		}
	}

	return "general"
}

// inTestsDir reports whether a directory component of p is "tests"
func inTestsDir(p string) bool {
	return strings.HasPrefix(p, "tests/") || strings.Contains(p, "/tests/")
}

func deriveSubject(changeType models.ChangeType, scope string, fileCount int) string {
	switch changeType {
	case models.Feat:
		return fmt.Sprintf("Add %s functionality", scope)
	case models.Fix:
		return fmt.Sprintf("Fix bug in %s", scope)
	case models.Refactor:
		return fmt.Sprintf("Refactor %s code", scope)
	}

	if fileCount == 1 {
		return "Update 1 file"
	}
	return fmt.Sprintf("Update %d files", fileCount)
}

func deriveBody(paths []string, limit int) string {
	shown := paths
	if len(shown) > limit {
		shown = shown[:limit]
	}

	names := make([]string, len(shown))
	for i, p := range shown {
		names[i] = path.Base(p)
	}

	list := strings.Join(names, ", ")
	if len(paths) > limit {
		list += "..."
	}
	return "Files changed: " + list
}
