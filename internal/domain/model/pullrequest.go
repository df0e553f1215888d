package model

// PullRequestContext carries the pull request metadata handed to the prompt
// builder. It is immutable for the duration of a run and sourced from the
// host before the pipeline starts.
type PullRequestContext struct {
	Owner       string
	Repo        string
	Number      int
	Title       string
	Description string
}
