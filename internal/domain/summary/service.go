package summary

import (
	"context"
	"fmt"
	"time"

	"prsummary/internal/domain"
)

type Outcome string

const (
	OutcomeOK      Outcome = "ok"
	OutcomeIgnored Outcome = "ignored"
	OutcomeMerged  Outcome = "merged"
)

type Service interface {
	// Process classifies one webhook event and performs its side effects
	// synchronously. Exactly one outcome is produced per event.
	Process(ctx context.Context, ev Event) (Outcome, error)
	Get(ctx context.Context, key Key) (Record, error)
}

type service struct {
	uow        domain.UnitOfWork
	records    Repository
	source     SourceClient
	summarizer Summarizer
	events     domain.EventBus
	now        func() time.Time
}

func NewService(
	uow domain.UnitOfWork,
	records Repository,
	source SourceClient,
	summarizer Summarizer,
	events domain.EventBus,
	now func() time.Time,
) Service {
	if now == nil {
		now = time.Now
	}
	return &service{
		uow:        uow,
		records:    records,
		source:     source,
		summarizer: summarizer,
		events:     events,
		now:        now,
	}
}

func (s *service) Process(ctx context.Context, ev Event) (Outcome, error) {
	if err := ev.Validate(); err != nil {
		return "", err
	}

	// Both the partial and the full path persist the current commit history,
	// so the fetch happens before classification.
	commits, err := s.source.FetchCommitMessages(ctx, ev.Repo, ev.PRNumber)
	if err != nil {
		return "", fmt.Errorf("fetch commit messages for %s#%d: %w", ev.Repo, ev.PRNumber, err)
	}

	// A merge arrives as "closed", which is not analyzable; check it first so
	// the terminal status is not lost to the generic ignore branch.
	if ev.Action == actionClosed && ev.Merged {
		if err := s.markMerged(ctx, ev); err != nil {
			return "", err
		}
		return OutcomeMerged, nil
	}

	if _, ok := analyzableActions[ev.Action]; !ok {
		if err := s.recordActivity(ctx, ev, commits); err != nil {
			return "", err
		}
		return OutcomeIgnored, nil
	}

	if err := s.analyze(ctx, ev, commits); err != nil {
		return "", err
	}
	return OutcomeOK, nil
}

func (s *service) Get(ctx context.Context, key Key) (Record, error) {
	return s.records.GetByKey(ctx, key)
}

func (s *service) markMerged(ctx context.Context, ev Event) error {
	err := s.uow.WithinTx(ctx, func(ctx context.Context) error {
		return s.records.UpdateStatus(ctx, ev.Key(), StatusMerged, s.now().UTC())
	})
	if err != nil {
		return err
	}

	if s.events != nil {
		s.events.Publish(ctx, domain.Event{
			Type: "pr.merged",
			Payload: map[string]any{
				"pr_id": ev.Key().PRID,
				"repo":  ev.Repo,
			},
		})
	}
	return nil
}

func (s *service) recordActivity(ctx context.Context, ev Event, commits []string) error {
	err := s.uow.WithinTx(ctx, func(ctx context.Context) error {
		return s.records.UpdateActivity(ctx, ev.Key(), Status(ev.Action), ev.Reviewers, commits, s.now().UTC())
	})
	if err != nil {
		return err
	}

	if s.events != nil {
		s.events.Publish(ctx, domain.Event{
			Type: "pr.activity",
			Payload: map[string]any{
				"pr_id":  ev.Key().PRID,
				"repo":   ev.Repo,
				"action": ev.Action,
			},
		})
	}
	return nil
}

func (s *service) analyze(ctx context.Context, ev Event, commits []string) error {
	diff, err := s.source.FetchDiff(ctx, ev.Repo, ev.PRNumber)
	if err != nil {
		return fmt.Errorf("fetch diff for %s#%d: %w", ev.Repo, ev.PRNumber, err)
	}

	analysis, err := s.summarizer.Summarize(ctx, diff, commits)
	if err != nil {
		return fmt.Errorf("summarize %s#%d: %w", ev.Repo, ev.PRNumber, err)
	}

	if err := s.source.UpdateDescription(ctx, ev.Repo, ev.PRNumber, analysis.Markdown()); err != nil {
		return fmt.Errorf("update description for %s#%d: %w", ev.Repo, ev.PRNumber, err)
	}
	if err := s.source.AddLabels(ctx, ev.Repo, ev.PRNumber, analysis.Labels); err != nil {
		return fmt.Errorf("add labels for %s#%d: %w", ev.Repo, ev.PRNumber, err)
	}

	key := ev.Key()
	rec := Record{
		PRID:           key.PRID,
		Repo:           ev.Repo,
		PRNumber:       ev.PRNumber,
		Title:          analysis.Title,
		Summary:        analysis.Summary,
		Changes:        analysis.Changes,
		Impact:         analysis.Impact,
		ActionRequired: analysis.ActionRequired,
		Labels:         analysis.Labels,
		CommitMessages: commits,
		Author:         ev.Author,
		Reviewers:      ev.Reviewers,
		Status:         Status(ev.Action),
		// Platform-reported timestamps, not local ones.
		CreatedAt: ev.CreatedAt,
		UpdatedAt: ev.UpdatedAt,
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context) error {
		return s.records.Upsert(ctx, rec)
	})
	if err != nil {
		return err
	}

	if s.events != nil {
		s.events.Publish(ctx, domain.Event{
			Type: "pr.analyzed",
			Payload: map[string]any{
				"pr_id":  key.PRID,
				"repo":   ev.Repo,
				"action": ev.Action,
				"labels": analysis.Labels,
			},
		})
	}
	return nil
}
