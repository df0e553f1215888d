package github

import (
	"context"
	"fmt"

	gh "github.com/google/go-github/v82/github"

	"github.com/reviewloop/reviewloop/internal/domain/model"
)

// SubmitReview posts the accumulated anchored comments as one batched
// comment-only review. The event is always COMMENT: the bot never approves
// or requests changes. Comments anchor to the new file side, matching the
// new-line coordinates the prompt asks the model to answer with.
func (c *Client) SubmitReview(ctx context.Context, owner, repo string, number int, comments []model.ReviewComment) error {
	draftComments := make([]*gh.DraftReviewComment, 0, len(comments))
	for _, comment := range comments {
		draftComments = append(draftComments, &gh.DraftReviewComment{
			Path: gh.Ptr(comment.Path),
			Line: gh.Ptr(comment.Line),
			Side: gh.Ptr("RIGHT"),
			Body: gh.Ptr(comment.Body),
		})
	}

	review := &gh.PullRequestReviewRequest{
		Event:    gh.Ptr("COMMENT"),
		Comments: draftComments,
	}

	_, resp, err := c.gh.PullRequests.CreateReview(ctx, owner, repo, number, review)
	if err != nil {
		return fmt.Errorf("creating review for %s/%s#%d: %w", owner, repo, number, err)
	}

	logRateLimit(resp, "pulls/create-review")
	return nil
}
