package analyzer

import (
	"context"

	"github.com/wahlandcase/autocommit/internal/logging"
	"github.com/wahlandcase/autocommit/internal/models"
)

// GenerateMessage suggests a commit message for everything pending in src.
// Returns models.NoChanges() when the working tree matches HEAD.
func GenerateMessage(ctx context.Context, src Source, opts Options) models.CommitMessage {
	return MessageFor(ctx, Collect(ctx, src, opts), opts)
}

// MessageFor classifies and summarizes already collected evidence
func MessageFor(ctx context.Context, evidence Evidence, opts Options) models.CommitMessage {
	if evidence.Empty() {
		return models.NoChanges()
	}

	changeType := Classify(evidence.Sample, evidence.Paths)
	msg := Summarize(changeType, evidence.Paths, opts)

	logging.Get(ctx).Info().
		Str("type", msg.Type.String()).
		Str("scope", msg.Scope).
		Int("files", len(evidence.Paths)).
		Msg("generated commit message")

	return msg
}
