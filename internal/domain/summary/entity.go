package summary

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"prsummary/internal/domain"
)

type Status string

const (
	StatusOpened      Status = "opened"
	StatusSynchronize Status = "synchronize"
	StatusReopened    Status = "reopened"
	StatusMerged      Status = "merged"
)

const actionClosed = "closed"

// analyzableActions are the webhook actions that warrant a fresh AI summary.
var analyzableActions = map[string]struct{}{
	string(StatusOpened):      {},
	string(StatusSynchronize): {},
	string(StatusReopened):    {},
}

// Key identifies one persisted record: pr_id is "{platform id}-{number}",
// repo is the "owner/name" full name.
type Key struct {
	PRID string
	Repo string
}

// Event is one webhook delivery for a pull request.
type Event struct {
	Action     string
	Repo       string
	PRID       int64
	PRNumber   int
	DiffURL    string
	CommitsURL string
	Author     string
	Reviewers  []string
	CreatedAt  time.Time
	UpdatedAt  time.Time
	Merged     bool
}

func (e Event) Key() Key {
	return Key{
		PRID: fmt.Sprintf("%d-%d", e.PRID, e.PRNumber),
		Repo: e.Repo,
	}
}

func (e Event) Validate() error {
	if e.Action == "" || e.Repo == "" || e.PRNumber <= 0 {
		return &domain.DomainError{
			Code:       domain.ErrorCodeBadRequest,
			Message:    "action, repository full name and pull request number are required",
			HTTPStatus: http.StatusBadRequest,
		}
	}
	return nil
}

// Analysis is the structured output of the summarizer.
type Analysis struct {
	Title          string
	Summary        string
	Changes        []string
	Impact         string
	ActionRequired string
	Labels         []string
}

func (a Analysis) Validate() error {
	missing := func(field string) error {
		return &domain.DomainError{
			Code:       domain.ErrorCodeValidation,
			Message:    "summarizer response is missing " + field,
			HTTPStatus: http.StatusInternalServerError,
		}
	}
	switch {
	case a.Title == "":
		return missing("title")
	case a.Summary == "":
		return missing("summary")
	case len(a.Changes) == 0:
		return missing("changes")
	case a.Impact == "":
		return missing("impact")
	case a.ActionRequired == "":
		return missing("action_required")
	case a.Labels == nil:
		return missing("labels")
	}
	return nil
}

// Markdown renders the analysis as the pull request description body.
func (a Analysis) Markdown() string {
	var sb strings.Builder
	sb.WriteString("### " + a.Title + "\n\n")
	sb.WriteString("**Summary:** " + a.Summary + "\n\n")
	sb.WriteString("**Changes:**\n")
	for _, c := range a.Changes {
		sb.WriteString("- " + c + "\n")
	}
	sb.WriteString("\n**Impact:** " + a.Impact + "\n")
	sb.WriteString("**Action Required:** " + a.ActionRequired + "\n")
	return sb.String()
}

// Record is the persisted per-PR summary. Records are never deleted;
// later events for the same key overwrite it in full or in part.
type Record struct {
	PRID           string
	Repo           string
	PRNumber       int
	Title          string
	Summary        string
	Changes        []string
	Impact         string
	ActionRequired string
	Labels         []string
	CommitMessages []string
	Author         string
	Reviewers      []string
	Status         Status
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
