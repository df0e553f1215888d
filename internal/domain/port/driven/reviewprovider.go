package driven

import "context"

// ReviewProvider defines the driven port for the review model. Review sends
// one rendered prompt and returns the raw response text. Implementations
// must not retry: a failed call is reported as an error and the caller
// degrades to zero suggestions for that hunk.
type ReviewProvider interface {
	Review(ctx context.Context, prompt string) (string, error)
}
