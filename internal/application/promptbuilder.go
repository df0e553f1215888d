package application

import (
	"fmt"
	"strings"

	"github.com/reviewloop/reviewloop/internal/domain/model"
)

// PromptOptions configures the persona and scope of the generated review
// prompt. Rules, when set, narrows the review to those rules only. Persona
// is optional free-text instruction appended to the reviewer identity.
type PromptOptions struct {
	BotName string
	Rules   string
	Persona string
}

// BuildPrompt renders the review prompt for a single hunk. The output is
// deterministic for identical inputs. The instructions pin the model to a
// fixed JSON reply shape so the response parser has a stable contract.
func BuildPrompt(file model.File, hunk model.Hunk, pr model.PullRequestContext, opts PromptOptions) string {
	var b strings.Builder

	botName := opts.BotName
	if botName == "" {
		botName = "reviewer"
	}

	fmt.Fprintf(&b, "You are %s, an automated code review assistant.", botName)
	if opts.Persona != "" {
		b.WriteString(" ")
		b.WriteString(strings.TrimSpace(opts.Persona))
	}
	b.WriteString(" Your task is to review the pull request diff below. Instructions:\n\n")
	b.WriteString("- Respond ONLY with JSON in this exact shape: {\"reviews\": [{\"lineNumber\": <line_number>, \"reviewComment\": \"<review comment>\"}]}\n")
	b.WriteString("- Respond with {\"reviews\": []} when there is nothing that warrants a comment. Do not give positive comments or compliments.\n")
	b.WriteString("- Write each reviewComment in GitHub Markdown. When you propose a concrete code change, put it in a fenced ```suggestion block.\n")
	b.WriteString("- NEVER suggest adding comments to the code.\n")
	b.WriteString("- Do not flag code that is unchanged or already fixed in this diff.\n")
	b.WriteString("- Use the new-file line numbers shown at the start of each diff line.\n")
	if opts.Rules != "" {
		b.WriteString("- Review STRICTLY against the following rules and ignore any other style or design concerns:\n")
		b.WriteString(strings.TrimSpace(opts.Rules))
		b.WriteString("\n")
	}
	b.WriteString("- Use the pull request title and description only as context; review only the code in the diff.\n")

	fmt.Fprintf(&b, "\nReview the following diff in file %q.\n", file.Path)
	fmt.Fprintf(&b, "\nPull request title: %s\n", pr.Title)
	b.WriteString("Pull request description:\n\n---\n")
	b.WriteString(pr.Description)
	b.WriteString("\n---\n\nGit diff to review:\n\n```diff\n")
	b.WriteString(hunk.Header)
	b.WriteString("\n")
	for _, line := range hunk.Lines {
		fmt.Fprintf(&b, "%d %s\n", promptLineNumber(line), line.Content)
	}
	b.WriteString("```\n")

	return b.String()
}

// promptLineNumber picks the line number the model should anchor against:
// the new-file number for additions and context, the old-file number for
// deletions, since deletions have no new-side coordinate.
func promptLineNumber(line model.Line) int {
	if line.Kind == model.LineDeletion {
		return line.OldNumber
	}
	return line.NewNumber
}
