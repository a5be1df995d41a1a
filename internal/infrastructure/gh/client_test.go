package gh

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-github/v80/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func commitWithMessage(msg string) *github.RepositoryCommit {
	return &github.RepositoryCommit{
		Commit: &github.Commit{Message: github.Ptr(msg)},
	}
}

func TestClient_FetchDiff(t *testing.T) {
	t.Run("should return raw diff", func(t *testing.T) {
		mockPR := &MockPRService{}
		client := NewClientWithServices(mockPR, &MockIssuesService{})

		mockPR.On("GetRaw", mock.Anything, "org", "repo", 5, github.RawOptions{Type: github.Diff}).
			Return("diff --git a/a.py b/a.py", &github.Response{}, nil)

		diff, err := client.FetchDiff(context.Background(), "org/repo", 5)

		require.NoError(t, err)
		assert.Equal(t, "diff --git a/a.py b/a.py", diff)
		mockPR.AssertExpectations(t)
	})

	t.Run("should fail on invalid repo name", func(t *testing.T) {
		client := NewClientWithServices(&MockPRService{}, &MockIssuesService{})

		_, err := client.FetchDiff(context.Background(), "not-a-full-name", 5)

		assert.Error(t, err)
	})

	t.Run("should propagate API errors", func(t *testing.T) {
		mockPR := &MockPRService{}
		client := NewClientWithServices(mockPR, &MockIssuesService{})

		mockPR.On("GetRaw", mock.Anything, "org", "repo", 5, mock.Anything).
			Return("", nil, errors.New("406 diff too large"))

		_, err := client.FetchDiff(context.Background(), "org/repo", 5)

		assert.ErrorContains(t, err, "406")
	})
}

func TestClient_FetchCommitMessages(t *testing.T) {
	t.Run("should return messages in platform order", func(t *testing.T) {
		mockPR := &MockPRService{}
		client := NewClientWithServices(mockPR, &MockIssuesService{})

		mockPR.On("ListCommits", mock.Anything, "org", "repo", 5, mock.Anything).
			Return([]*github.RepositoryCommit{
				commitWithMessage("first"),
				commitWithMessage("second"),
			}, &github.Response{}, nil)

		msgs, err := client.FetchCommitMessages(context.Background(), "org/repo", 5)

		require.NoError(t, err)
		assert.Equal(t, []string{"first", "second"}, msgs)
	})

	t.Run("should follow pagination", func(t *testing.T) {
		mockPR := &MockPRService{}
		client := NewClientWithServices(mockPR, &MockIssuesService{})

		mockPR.On("ListCommits", mock.Anything, "org", "repo", 5, mock.MatchedBy(func(opts *github.ListOptions) bool {
			return opts.Page == 0
		})).Return([]*github.RepositoryCommit{commitWithMessage("first")}, &github.Response{NextPage: 2}, nil).Once()

		mockPR.On("ListCommits", mock.Anything, "org", "repo", 5, mock.MatchedBy(func(opts *github.ListOptions) bool {
			return opts.Page == 2
		})).Return([]*github.RepositoryCommit{commitWithMessage("second")}, &github.Response{}, nil).Once()

		msgs, err := client.FetchCommitMessages(context.Background(), "org/repo", 5)

		require.NoError(t, err)
		assert.Equal(t, []string{"first", "second"}, msgs)
		mockPR.AssertExpectations(t)
	})
}

func TestClient_UpdateDescription(t *testing.T) {
	mockPR := &MockPRService{}
	client := NewClientWithServices(mockPR, &MockIssuesService{})

	mockPR.On("Edit", mock.Anything, "org", "repo", 5, mock.MatchedBy(func(pr *github.PullRequest) bool {
		return pr.GetBody() == "### Add X" && pr.Title == nil
	})).Return(&github.PullRequest{}, &github.Response{}, nil)

	err := client.UpdateDescription(context.Background(), "org/repo", 5, "### Add X")

	require.NoError(t, err)
	mockPR.AssertExpectations(t)
}

func TestClient_AddLabels(t *testing.T) {
	t.Run("should append labels", func(t *testing.T) {
		mockIssues := &MockIssuesService{}
		client := NewClientWithServices(&MockPRService{}, mockIssues)

		mockIssues.On("AddLabelsToIssue", mock.Anything, "org", "repo", 5, []string{"Feature", "Small Size"}).
			Return([]*github.Label{}, &github.Response{}, nil)

		err := client.AddLabels(context.Background(), "org/repo", 5, []string{"Feature", "Small Size"})

		require.NoError(t, err)
		mockIssues.AssertExpectations(t)
	})

	t.Run("should skip API call for empty label set", func(t *testing.T) {
		mockIssues := &MockIssuesService{}
		client := NewClientWithServices(&MockPRService{}, mockIssues)

		err := client.AddLabels(context.Background(), "org/repo", 5, nil)

		require.NoError(t, err)
		mockIssues.AssertNotCalled(t, "AddLabelsToIssue")
	})
}
