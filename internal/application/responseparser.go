package application

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/reviewloop/reviewloop/internal/domain/model"
)

// ErrMalformedResponse indicates the model reply did not contain a parseable
// review payload. Callers treat it the same as "zero suggestions": the hunk
// contributes no comments and the run continues.
var ErrMalformedResponse = errors.New("malformed model response")

// reviewPayload is the JSON shape the prompt instructs the model to produce.
// lineNumber is decoded as a raw message because models reply with either a
// JSON number or a quoted string; both are normalized to a string here and
// coerced to an integer later by the comment mapper.
type reviewPayload struct {
	Reviews []wireSuggestion `json:"reviews"`
}

type wireSuggestion struct {
	LineNumber    json.RawMessage `json:"lineNumber"`
	ReviewComment string          `json:"reviewComment"`
}

func (w wireSuggestion) toSuggestion() model.Suggestion {
	var lineNumber string
	if len(w.LineNumber) > 0 {
		if err := json.Unmarshal(w.LineNumber, &lineNumber); err != nil {
			// Not a JSON string; keep the raw token (e.g. a bare number).
			lineNumber = strings.TrimSpace(string(w.LineNumber))
		}
	}
	return model.Suggestion{
		LineNumber:    lineNumber,
		ReviewComment: w.ReviewComment,
	}
}

// ParseReviewResponse extracts the suggestion list from raw model output.
// Models occasionally wrap the JSON in conversational text, so the payload
// is taken as the substring between the first "{" and the last "}". Input
// without such a pair, or whose payload does not match the expected schema,
// fails with ErrMalformedResponse.
func ParseReviewResponse(raw string) ([]model.Suggestion, error) {
	first := strings.Index(raw, "{")
	last := strings.LastIndex(raw, "}")
	if first < 0 || last <= first {
		return nil, fmt.Errorf("%w: no JSON object found", ErrMalformedResponse)
	}

	var payload reviewPayload
	if err := json.Unmarshal([]byte(raw[first:last+1]), &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	suggestions := make([]model.Suggestion, 0, len(payload.Reviews))
	for _, w := range payload.Reviews {
		suggestions = append(suggestions, w.toSuggestion())
	}
	return suggestions, nil
}
