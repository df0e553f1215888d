// Package action implements the driving adapter for GitHub Actions: it
// reads the workflow event payload and classifies it into a review trigger.
package action

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/reviewloop/reviewloop/internal/domain/model"
)

// eventPayload is the subset of the pull_request webhook payload the
// reviewer needs. Before/After are only present on synchronize events.
type eventPayload struct {
	Action     string `json:"action"`
	Number     int    `json:"number"`
	Before     string `json:"before"`
	After      string `json:"after"`
	Repository struct {
		Name  string `json:"name"`
		Owner struct {
			Login string `json:"login"`
		} `json:"owner"`
	} `json:"repository"`
}

// ParseEventFile reads the GitHub Actions event payload from path and
// classifies it. A missing or unreadable payload is fatal to the run; an
// event the reviewer does not handle yields a Trigger with
// model.TriggerUnsupported and is a graceful no-op for the caller.
func ParseEventFile(path string) (model.Trigger, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Trigger{}, fmt.Errorf("reading event payload: %w", err)
	}
	return parseEvent(data)
}

func parseEvent(data []byte) (model.Trigger, error) {
	var payload eventPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return model.Trigger{}, fmt.Errorf("decoding event payload: %w", err)
	}

	trigger := model.Trigger{
		Owner:  payload.Repository.Owner.Login,
		Repo:   payload.Repository.Name,
		Number: payload.Number,
	}

	switch payload.Action {
	case "opened":
		trigger.Action = model.TriggerOpened
	case "synchronize":
		trigger.Action = model.TriggerSynchronize
		trigger.BaseSHA = payload.Before
		trigger.HeadSHA = payload.After
	default:
		trigger.Action = model.TriggerUnsupported
	}

	return trigger, nil
}
