package gh

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/go-github/v80/github"
	"golang.org/x/oauth2"

	"prsummary/internal/domain/summary"
)

var _ summary.SourceClient = (*Client)(nil)

// PullRequestsService is the slice of go-github's PullRequests service we use.
type PullRequestsService interface {
	Edit(ctx context.Context, owner, repo string, number int, pr *github.PullRequest) (*github.PullRequest, *github.Response, error)
	ListCommits(ctx context.Context, owner, repo string, number int, opts *github.ListOptions) ([]*github.RepositoryCommit, *github.Response, error)
	GetRaw(ctx context.Context, owner, repo string, number int, opts github.RawOptions) (string, *github.Response, error)
}

type IssuesService interface {
	AddLabelsToIssue(ctx context.Context, owner, repo string, number int, labels []string) ([]*github.Label, *github.Response, error)
}

type Client struct {
	prService     PullRequestsService
	issuesService IssuesService
}

func NewClient(token string) *Client {
	var httpClient *http.Client
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		httpClient = oauth2.NewClient(context.Background(), ts)
	}

	client := github.NewClient(httpClient)
	return &Client{
		prService:     client.PullRequests,
		issuesService: client.Issues,
	}
}

func NewClientWithServices(prService PullRequestsService, issuesService IssuesService) *Client {
	return &Client{
		prService:     prService,
		issuesService: issuesService,
	}
}

func (c *Client) FetchDiff(ctx context.Context, repo string, prNumber int) (string, error) {
	owner, name, err := splitRepo(repo)
	if err != nil {
		return "", err
	}

	diff, _, err := c.prService.GetRaw(ctx, owner, name, prNumber, github.RawOptions{Type: github.Diff})
	if err != nil {
		return "", fmt.Errorf("get diff for %s#%d: %w", repo, prNumber, err)
	}
	return diff, nil
}

func (c *Client) FetchCommitMessages(ctx context.Context, repo string, prNumber int) ([]string, error) {
	owner, name, err := splitRepo(repo)
	if err != nil {
		return nil, err
	}

	opts := &github.ListOptions{PerPage: 100}
	var messages []string
	for {
		commits, resp, err := c.prService.ListCommits(ctx, owner, name, prNumber, opts)
		if err != nil {
			return nil, fmt.Errorf("list commits for %s#%d: %w", repo, prNumber, err)
		}

		for _, commit := range commits {
			messages = append(messages, commit.GetCommit().GetMessage())
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}
	return messages, nil
}

func (c *Client) UpdateDescription(ctx context.Context, repo string, prNumber int, body string) error {
	owner, name, err := splitRepo(repo)
	if err != nil {
		return err
	}

	_, _, err = c.prService.Edit(ctx, owner, name, prNumber, &github.PullRequest{
		Body: github.Ptr(body),
	})
	if err != nil {
		return fmt.Errorf("update description for %s#%d: %w", repo, prNumber, err)
	}
	return nil
}

func (c *Client) AddLabels(ctx context.Context, repo string, prNumber int, labels []string) error {
	if len(labels) == 0 {
		return nil
	}

	owner, name, err := splitRepo(repo)
	if err != nil {
		return err
	}

	_, _, err = c.issuesService.AddLabelsToIssue(ctx, owner, name, prNumber, labels)
	if err != nil {
		return fmt.Errorf("add labels to %s#%d: %w", repo, prNumber, err)
	}
	return nil
}

func splitRepo(full string) (owner, name string, err error) {
	parts := strings.SplitN(full, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid repository full name %q", full)
	}
	return parts[0], parts[1], nil
}
