// Package driven defines secondary port interfaces for external adapters.
package driven

import (
	"context"

	"github.com/reviewloop/reviewloop/internal/domain/model"
)

// HostClient defines the driven port for the source-control host. Read
// methods fetch PR metadata and diffs; SubmitReview posts the accumulated
// batch of anchored comments as a single comment-only review.
type HostClient interface {
	// FetchPullRequestContext returns the PR title and description used as
	// review context.
	FetchPullRequestContext(ctx context.Context, owner, repo string, number int) (model.PullRequestContext, error)

	// FetchFullDiff returns the unified diff of the whole pull request.
	FetchFullDiff(ctx context.Context, owner, repo string, number int) (string, error)

	// FetchIncrementalDiff returns the unified diff between two commits,
	// used on synchronize events to review only the newly pushed changes.
	FetchIncrementalDiff(ctx context.Context, owner, repo, base, head string) (string, error)

	// SubmitReview posts a comment-only review carrying the given anchored
	// comments. Callers never invoke it with an empty batch.
	SubmitReview(ctx context.Context, owner, repo string, number int, comments []model.ReviewComment) error
}
