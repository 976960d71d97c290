package models

import "fmt"

// ChangeType is the conventional-commit category of a pending change
type ChangeType int

// Declaration order is the classification tie-break order
const (
	Feat ChangeType = iota
	Fix
	Docs
	Refactor
	Test
	Chore
)

var changeTypeNames = []string{
	"feat",
	"fix",
	"docs",
	"refactor",
	"test",
	"chore",
}

// AllChangeTypes returns every category in declaration order
func AllChangeTypes() []ChangeType {
	return []ChangeType{Feat, Fix, Docs, Refactor, Test, Chore}
}

func (c ChangeType) String() string {
	if c >= 0 && int(c) < len(changeTypeNames) {
		return changeTypeNames[c]
	}
	return "unknown"
}

// ParseChangeType converts a label like "feat" back into a ChangeType
func ParseChangeType(s string) (ChangeType, error) {
	for i, name := range changeTypeNames {
		if name == s {
			return ChangeType(i), nil
		}
	}
	return Chore, fmt.Errorf("unknown change type %q", s)
}
