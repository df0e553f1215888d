package model

// Suggestion is a single review item as returned by the model, before any
// validation. LineNumber is kept as the raw string the model produced; it is
// not guaranteed to be numeric or to fall inside the reviewed hunk.
type Suggestion struct {
	LineNumber    string
	ReviewComment string
}

// ReviewComment is a validated, line-anchored comment ready for submission.
// Only comments with a non-empty Path and a Line greater than zero ever
// leave the pipeline.
type ReviewComment struct {
	Path string
	Line int
	Body string
}
