package openai

import "strings"

// jsonModePrefixes enumerates the model families known to support the strict
// JSON-object response format. Models outside this table get a free-form
// request and the response parser's extraction heuristic handles the rest.
var jsonModePrefixes = []string{
	"gpt-4o",
	"gpt-4-turbo",
	"gpt-4-1106",
	"gpt-4-0125",
	"gpt-3.5-turbo-1106",
	"gpt-3.5-turbo-0125",
}

// SupportsJSONMode reports whether the model can be asked for a guaranteed
// JSON object response. Pure classification over the prefix table above.
func SupportsJSONMode(model string) bool {
	for _, prefix := range jsonModePrefixes {
		if strings.HasPrefix(model, prefix) {
			return true
		}
	}
	return false
}
