package dto

import (
	"time"

	"prsummary/internal/domain/summary"
)

// PullRequestEvent mirrors the GitHub pull_request webhook payload,
// restricted to the fields this service consumes.
type PullRequestEvent struct {
	Action      string             `json:"action"`
	PullRequest PullRequestPayload `json:"pull_request"`
	Repository  RepositoryPayload  `json:"repository"`
}

type PullRequestPayload struct {
	ID                 int64         `json:"id"`
	Number             int           `json:"number"`
	DiffURL            string        `json:"diff_url"`
	CommitsURL         string        `json:"commits_url"`
	User               UserPayload   `json:"user"`
	RequestedReviewers []UserPayload `json:"requested_reviewers"`
	CreatedAt          time.Time     `json:"created_at"`
	UpdatedAt          time.Time     `json:"updated_at"`
	Merged             bool          `json:"merged"`
}

type RepositoryPayload struct {
	FullName string `json:"full_name"`
}

type UserPayload struct {
	Login string `json:"login"`
}

func (e PullRequestEvent) ToDomain() summary.Event {
	reviewers := make([]string, 0, len(e.PullRequest.RequestedReviewers))
	for _, r := range e.PullRequest.RequestedReviewers {
		reviewers = append(reviewers, r.Login)
	}

	return summary.Event{
		Action:     e.Action,
		Repo:       e.Repository.FullName,
		PRID:       e.PullRequest.ID,
		PRNumber:   e.PullRequest.Number,
		DiffURL:    e.PullRequest.DiffURL,
		CommitsURL: e.PullRequest.CommitsURL,
		Author:     e.PullRequest.User.Login,
		Reviewers:  reviewers,
		CreatedAt:  e.PullRequest.CreatedAt,
		UpdatedAt:  e.PullRequest.UpdatedAt,
		Merged:     e.PullRequest.Merged,
	}
}
