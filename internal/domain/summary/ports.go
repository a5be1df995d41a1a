package summary

import "context"

// SourceClient talks to the code-hosting platform.
type SourceClient interface {
	FetchDiff(ctx context.Context, repo string, prNumber int) (string, error)
	FetchCommitMessages(ctx context.Context, repo string, prNumber int) ([]string, error)
	UpdateDescription(ctx context.Context, repo string, prNumber int, body string) error
	// AddLabels appends labels to the pull request. The platform does not
	// deduplicate against existing labels and neither do we.
	AddLabels(ctx context.Context, repo string, prNumber int, labels []string) error
}

// Summarizer turns a diff plus commit messages into a structured analysis.
type Summarizer interface {
	Summarize(ctx context.Context, diff string, commitMessages []string) (Analysis, error)
}
