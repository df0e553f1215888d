// Package application implements the diff-to-comment review pipeline:
// parsing the unified diff, filtering excluded paths, prompting the review
// model per hunk, and mapping its suggestions onto anchored comments.
package application

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/reviewloop/reviewloop/internal/domain/model"
	"github.com/reviewloop/reviewloop/internal/domain/port/driven"
)

// Options carries the run-scoped review configuration.
type Options struct {
	BotName         string
	Rules           string
	Persona         string
	ExcludePatterns []string
}

// ReviewService drives the full review pipeline for one trigger event. It
// depends only on port interfaces so tests can substitute fakes.
type ReviewService struct {
	host     driven.HostClient
	provider driven.ReviewProvider
	opts     Options
	logger   *slog.Logger
}

// NewReviewService creates a ReviewService with the required dependencies.
func NewReviewService(host driven.HostClient, provider driven.ReviewProvider, opts Options, logger *slog.Logger) *ReviewService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReviewService{
		host:     host,
		provider: provider,
		opts:     opts,
		logger:   logger,
	}
}

// Run executes one review: fetch context and diff, walk every reviewable
// hunk through the model, and submit the accumulated comments as a single
// comment-only review. Hunks are processed strictly sequentially; a model
// or parse failure on one hunk is logged and contributes zero comments
// without affecting its siblings. Nothing is submitted when the final
// filtered batch is empty.
func (s *ReviewService) Run(ctx context.Context, trigger model.Trigger) error {
	pr, err := s.host.FetchPullRequestContext(ctx, trigger.Owner, trigger.Repo, trigger.Number)
	if err != nil {
		return fmt.Errorf("fetching pull request context: %w", err)
	}

	diff, err := s.fetchDiff(ctx, trigger)
	if err != nil {
		return err
	}

	files, err := ParseDiff(diff)
	if err != nil {
		return fmt.Errorf("parsing diff: %w", err)
	}
	if len(files) == 0 {
		s.logger.Info("empty diff, nothing to review",
			"repo", trigger.Owner+"/"+trigger.Repo,
			"pr", trigger.Number,
		)
		return nil
	}

	files = ExcludeFiles(files, s.opts.ExcludePatterns)

	comments := s.analyze(ctx, files, pr)
	comments = FilterSubmittable(comments)
	if len(comments) == 0 {
		s.logger.Info("no comments to submit",
			"repo", trigger.Owner+"/"+trigger.Repo,
			"pr", trigger.Number,
		)
		return nil
	}

	if err := s.host.SubmitReview(ctx, trigger.Owner, trigger.Repo, trigger.Number, comments); err != nil {
		return fmt.Errorf("submitting review: %w", err)
	}

	s.logger.Info("review submitted",
		"repo", trigger.Owner+"/"+trigger.Repo,
		"pr", trigger.Number,
		"comments", len(comments),
	)
	return nil
}

// fetchDiff selects the diff source for the trigger: the whole PR diff on
// open, the base..head commit range on synchronize.
func (s *ReviewService) fetchDiff(ctx context.Context, trigger model.Trigger) (string, error) {
	switch trigger.Action {
	case model.TriggerOpened:
		diff, err := s.host.FetchFullDiff(ctx, trigger.Owner, trigger.Repo, trigger.Number)
		if err != nil {
			return "", fmt.Errorf("fetching full diff: %w", err)
		}
		return diff, nil
	case model.TriggerSynchronize:
		diff, err := s.host.FetchIncrementalDiff(ctx, trigger.Owner, trigger.Repo, trigger.BaseSHA, trigger.HeadSHA)
		if err != nil {
			return "", fmt.Errorf("fetching incremental diff: %w", err)
		}
		return diff, nil
	default:
		return "", fmt.Errorf("unsupported trigger action %q", trigger.Action)
	}
}

// analyze walks every reviewable hunk through the model and accumulates the
// mapped comments in (file, hunk) order.
func (s *ReviewService) analyze(ctx context.Context, files []model.File, pr model.PullRequestContext) []model.ReviewComment {
	promptOpts := PromptOptions{
		BotName: s.opts.BotName,
		Rules:   s.opts.Rules,
		Persona: s.opts.Persona,
	}

	var comments []model.ReviewComment
	for _, file := range files {
		if file.IsDeleted() || len(file.Hunks) == 0 {
			continue
		}
		for _, hunk := range file.Hunks {
			suggestions, ok := s.reviewHunk(ctx, file, hunk, pr, promptOpts)
			if !ok {
				continue
			}
			comments = append(comments, MapComments(file, suggestions)...)
		}
	}
	return comments
}

// reviewHunk runs one prompt/call/parse cycle. Both a failed model call and
// a malformed response degrade to zero suggestions for the hunk; neither
// aborts the run.
func (s *ReviewService) reviewHunk(ctx context.Context, file model.File, hunk model.Hunk, pr model.PullRequestContext, opts PromptOptions) ([]model.Suggestion, bool) {
	prompt := BuildPrompt(file, hunk, pr, opts)

	raw, err := s.provider.Review(ctx, prompt)
	if err != nil {
		s.logger.Warn("model call failed, skipping hunk",
			"path", file.Path,
			"hunk", hunk.Header,
			"error", err,
		)
		return nil, false
	}

	suggestions, err := ParseReviewResponse(raw)
	if err != nil {
		s.logger.Warn("unparseable model response, skipping hunk",
			"path", file.Path,
			"hunk", hunk.Header,
			"error", err,
		)
		return nil, false
	}
	return suggestions, true
}
