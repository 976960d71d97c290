package analyzer

import (
	"regexp"
	"strings"

	"github.com/wahlandcase/autocommit/internal/models"
)

// categoryPatterns pairs a change type with the patterns that select it
type categoryPatterns struct {
	changeType models.ChangeType
	patterns   []*regexp.Regexp
}

// changePatterns is checked top to bottom; the first category that matches wins.
// Inputs are lower-cased before matching.
var changePatterns = []categoryPatterns{
	{models.Feat, compileAll(
		`\b(add|new|implement|create|introduce|enable)\b`,
		`\bfeature\b`,
		`\bui\b`,
		`\bcomponent\b`,
		`\bpage\b`,
	)},
	{models.Fix, compileAll(
		`\b(fix|bug|resolve|patch|correct|repair)\b`,
		`\bcrash\b`,
		`\berror\b`,
		`\bfail\b`,
	)},
	{models.Docs, compileAll(
		`\b(doc|readme|comment|update.*(doc|readme|example))\b`,
		`\breadme\.md\b`,
		`\bcontributing\.md\b`,
	)},
	{models.Refactor, compileAll(
		`\b(refactor|clean|optimize|restructure|improve|rename)\b`,
		`\bperformance\b`,
		`\brewrite\b`,
	)},
	{models.Test, compileAll(
		`\b(test|spec|mock|coverage|assert)\b`,
		`\btest_.*\.py\b`,
		`tests?/`,
	)},
	{models.Chore, compileAll(
		`\b(chore|deps|config|build|ci|lint|format)\b`,
		`\.toml$`,
		`\.yml$`,
		`\.yaml$`,
		`\.json$`,
	)},
}

// RE2's \b only knows ASCII word characters, so "éfix" would contain the
// word "fix". These treat every letter and digit as part of a word.
const (
	wordStart = `(?:^|[^\p{L}\p{N}_])`
	wordEnd   = `(?:$|[^\p{L}\p{N}_])`
)

func compileAll(exprs ...string) []*regexp.Regexp {
	res := make([]*regexp.Regexp, len(exprs))
	for i, expr := range exprs {
		res[i] = regexp.MustCompile(unicodeBoundaries(expr))
	}
	return res
}

// unicodeBoundaries replaces a leading or trailing \b. The table uses \b
// nowhere else.
func unicodeBoundaries(expr string) string {
	if strings.HasPrefix(expr, `\b`) {
		expr = wordStart + expr[2:]
	}
	if strings.HasSuffix(expr, `\b`) {
		expr = expr[:len(expr)-2] + wordEnd
	}
	return expr
}

// matches reports whether any pattern of the category matches s
func (c categoryPatterns) matches(s string) bool {
	for _, re := range c.patterns {
		if re.MatchString(s) {
			return true
		}
	}
	return false
}
