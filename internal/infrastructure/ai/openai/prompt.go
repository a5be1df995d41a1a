package openai

import "strings"

const systemInstruction = `You are an AI assistant summarizing GitHub pull requests.
You will be given the pull request diff and its commit messages. Analyze what
changed in the project and fill in every field of the pr_analysis result:

- title: one line summary
- summary: brief non-technical description
- changes: one entry per changed file, e.g. "changed main.go"
- impact: affected parts of the project
- action_required: what reviewers should do
- labels: kind labels (Bug, Feature, Docs, ...) plus a size label
  (Small Size, Medium Size or Large Size)`

func buildUserContent(diff string, commitMessages []string) string {
	var sb strings.Builder
	sb.WriteString("Here is the PR diff:\n")
	sb.WriteString(diff)
	sb.WriteString("\nHere are the commit messages:\n")
	for _, msg := range commitMessages {
		sb.WriteString("- " + msg + "\n")
	}
	return sb.String()
}
