package model

// TriggerAction classifies the pull request lifecycle event that started a run.
type TriggerAction string

const (
	// TriggerOpened reviews the full diff of a newly opened pull request.
	TriggerOpened TriggerAction = "opened"
	// TriggerSynchronize reviews only the incremental diff between the
	// previous and new head commit after a push to the PR branch.
	TriggerSynchronize TriggerAction = "synchronize"
	// TriggerUnsupported marks every other event; the run is a no-op.
	TriggerUnsupported TriggerAction = "unsupported"
)

// Trigger describes the event that invoked the reviewer. BaseSHA and HeadSHA
// are only set for synchronize events.
type Trigger struct {
	Owner   string
	Repo    string
	Number  int
	Action  TriggerAction
	BaseSHA string
	HeadSHA string
}
