package dto

import (
	"time"

	"prsummary/internal/domain/summary"
)

type WebhookResponse struct {
	Status string `json:"status"`
}

type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error Error `json:"error"`
}

type Summary struct {
	PRID           string    `json:"pr_id"`
	Repo           string    `json:"repo"`
	PRNumber       int       `json:"pr_number"`
	Title          string    `json:"title"`
	Summary        string    `json:"summary"`
	Changes        []string  `json:"changes"`
	Impact         string    `json:"impact"`
	ActionRequired string    `json:"action_required"`
	Labels         []string  `json:"labels"`
	CommitMessages []string  `json:"commit_messages"`
	Author         string    `json:"author"`
	Reviewers      []string  `json:"reviewers"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func SummaryFromDomain(rec summary.Record) Summary {
	return Summary{
		PRID:           rec.PRID,
		Repo:           rec.Repo,
		PRNumber:       rec.PRNumber,
		Title:          rec.Title,
		Summary:        rec.Summary,
		Changes:        append([]string(nil), rec.Changes...),
		Impact:         rec.Impact,
		ActionRequired: rec.ActionRequired,
		Labels:         append([]string(nil), rec.Labels...),
		CommitMessages: append([]string(nil), rec.CommitMessages...),
		Author:         rec.Author,
		Reviewers:      append([]string(nil), rec.Reviewers...),
		Status:         string(rec.Status),
		CreatedAt:      rec.CreatedAt,
		UpdatedAt:      rec.UpdatedAt,
	}
}
