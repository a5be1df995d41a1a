package pg

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"prsummary/internal/domain"
	"prsummary/internal/domain/summary"
)

type SummaryRepository struct {
	db *sql.DB
}

func NewSummaryRepository(db *sql.DB) *SummaryRepository {
	return &SummaryRepository{db: db}
}

func (r *SummaryRepository) Upsert(ctx context.Context, rec summary.Record) error {
	changes, err := marshalList(rec.Changes)
	if err != nil {
		return err
	}
	labels, err := marshalList(rec.Labels)
	if err != nil {
		return err
	}
	commits, err := marshalList(rec.CommitMessages)
	if err != nil {
		return err
	}
	reviewers, err := marshalList(rec.Reviewers)
	if err != nil {
		return err
	}

	_, err = exec(ctx, r.db,
		`INSERT INTO pr_summaries (
			pr_id, repo, pr_number, title, summary, changes, impact,
			action_required, labels, commit_messages, author, reviewers,
			status, created_at, updated_at
		 ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		 ON CONFLICT (pr_id, repo) DO UPDATE SET
			pr_number = EXCLUDED.pr_number,
			title = EXCLUDED.title,
			summary = EXCLUDED.summary,
			changes = EXCLUDED.changes,
			impact = EXCLUDED.impact,
			action_required = EXCLUDED.action_required,
			labels = EXCLUDED.labels,
			commit_messages = EXCLUDED.commit_messages,
			author = EXCLUDED.author,
			reviewers = EXCLUDED.reviewers,
			status = EXCLUDED.status,
			created_at = EXCLUDED.created_at,
			updated_at = EXCLUDED.updated_at`,
		rec.PRID, rec.Repo, rec.PRNumber, rec.Title, rec.Summary, changes,
		rec.Impact, rec.ActionRequired, labels, commits, rec.Author, reviewers,
		string(rec.Status), rec.CreatedAt, rec.UpdatedAt,
	)
	return err
}

func (r *SummaryRepository) UpdateStatus(ctx context.Context, key summary.Key, status summary.Status, updatedAt time.Time) error {
	res, err := exec(ctx, r.db,
		`UPDATE pr_summaries
		    SET status = $1,
		        updated_at = $2
		  WHERE pr_id = $3 AND repo = $4`,
		string(status), updatedAt, key.PRID, key.Repo,
	)
	if err != nil {
		return err
	}
	return requireUpdated(res)
}

func (r *SummaryRepository) UpdateActivity(ctx context.Context, key summary.Key, status summary.Status, reviewers, commitMessages []string, updatedAt time.Time) error {
	reviewersJSON, err := marshalList(reviewers)
	if err != nil {
		return err
	}
	commitsJSON, err := marshalList(commitMessages)
	if err != nil {
		return err
	}

	res, err := exec(ctx, r.db,
		`UPDATE pr_summaries
		    SET status = $1,
		        reviewers = $2,
		        commit_messages = $3,
		        updated_at = $4
		  WHERE pr_id = $5 AND repo = $6`,
		string(status), reviewersJSON, commitsJSON, updatedAt, key.PRID, key.Repo,
	)
	if err != nil {
		return err
	}
	return requireUpdated(res)
}

func (r *SummaryRepository) GetByKey(ctx context.Context, key summary.Key) (summary.Record, error) {
	var rec summary.Record
	var status string
	var changes, labels, commits, reviewers []byte

	err := queryRow(ctx, r.db,
		`SELECT pr_number, title, summary, changes, impact, action_required,
		        labels, commit_messages, author, reviewers, status,
		        created_at, updated_at
		   FROM pr_summaries
		  WHERE pr_id = $1 AND repo = $2`,
		key.PRID, key.Repo,
	).Scan(
		&rec.PRNumber, &rec.Title, &rec.Summary, &changes, &rec.Impact,
		&rec.ActionRequired, &labels, &commits, &rec.Author, &reviewers,
		&status, &rec.CreatedAt, &rec.UpdatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return summary.Record{}, notFoundErr()
	}
	if err != nil {
		return summary.Record{}, err
	}

	rec.PRID = key.PRID
	rec.Repo = key.Repo
	rec.Status = summary.Status(status)

	for _, col := range []struct {
		raw []byte
		dst *[]string
	}{
		{changes, &rec.Changes},
		{labels, &rec.Labels},
		{commits, &rec.CommitMessages},
		{reviewers, &rec.Reviewers},
	} {
		if err := json.Unmarshal(col.raw, col.dst); err != nil {
			return summary.Record{}, fmt.Errorf("decode list column: %w", err)
		}
	}

	return rec, nil
}

func requireUpdated(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return notFoundErr()
	}
	return nil
}

func notFoundErr() error {
	return &domain.DomainError{
		Code:       domain.ErrorCodeNotFound,
		Message:    "summary record not found",
		HTTPStatus: http.StatusNotFound,
	}
}

func marshalList(items []string) ([]byte, error) {
	if items == nil {
		items = []string{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("encode list column: %w", err)
	}
	return b, nil
}
