package models

import "fmt"

const (
	noChangesScope   = "general"
	noChangesSubject = "No changes detected"
	noChangesBody    = "No files were modified or added."
)

// CommitMessage is a generated conventional commit message
type CommitMessage struct {
	// Type is the change category (feat, fix, ...)
	Type ChangeType
	// Scope is the optional parenthesised scope (e.g., "auth", "src")
	Scope string
	// Subject is the one-line summary after the header prefix
	Subject string
	// Body is the free text after the blank line
	Body string
}

// NewCommitMessage creates a new CommitMessage
func NewCommitMessage(changeType ChangeType, scope, subject, body string) CommitMessage {
	return CommitMessage{
		Type:    changeType,
		Scope:   scope,
		Subject: subject,
		Body:    body,
	}
}

// NoChanges returns the message used when nothing differs from HEAD
func NoChanges() CommitMessage {
	return NewCommitMessage(Chore, noChangesScope, noChangesSubject, noChangesBody)
}

// IsNoChanges returns true if this is the NoChanges message
func (m CommitMessage) IsNoChanges() bool {
	return m == NoChanges()
}

// Header returns the first line, e.g. "feat(auth): Add auth functionality"
func (m CommitMessage) Header() string {
	if m.Scope == "" {
		return fmt.Sprintf("%s: %s", m.Type, m.Subject)
	}
	return fmt.Sprintf("%s(%s): %s", m.Type, m.Scope, m.Subject)
}

// String returns the full message as passed to git
func (m CommitMessage) String() string {
	if m.Body == "" {
		return m.Header()
	}
	return m.Header() + "\n\n" + m.Body
}
