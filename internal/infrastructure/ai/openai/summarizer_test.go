package openai

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prsummary/internal/domain"
)

func TestParseAnalysis(t *testing.T) {
	t.Run("should decode a well formed response", func(t *testing.T) {
		content := `{
			"title": "Add X",
			"summary": "adds the X feature",
			"changes": ["changed a.py"],
			"impact": "core",
			"action_required": "review",
			"labels": ["Feature", "Small Size"]
		}`

		analysis, err := parseAnalysis(content)

		require.NoError(t, err)
		assert.Equal(t, "Add X", analysis.Title)
		assert.Equal(t, []string{"changed a.py"}, analysis.Changes)
		assert.Equal(t, []string{"Feature", "Small Size"}, analysis.Labels)
	})

	t.Run("should reject non-JSON output", func(t *testing.T) {
		_, err := parseAnalysis("Sure! Here is the summary you asked for...")

		var de *domain.DomainError
		require.ErrorAs(t, err, &de)
		assert.Equal(t, domain.ErrorCodeValidation, de.Code)
	})

	t.Run("should reject wrongly typed fields", func(t *testing.T) {
		_, err := parseAnalysis(`{"title": "Add X", "summary": 2, "changes": ["a"], "impact": "core", "action_required": "review", "labels": []}`)

		var de *domain.DomainError
		require.ErrorAs(t, err, &de)
		assert.Equal(t, domain.ErrorCodeValidation, de.Code)
	})

	t.Run("should reject incomplete output", func(t *testing.T) {
		_, err := parseAnalysis(`{"title": "Add X"}`)

		var de *domain.DomainError
		require.True(t, errors.As(err, &de))
		assert.Equal(t, domain.ErrorCodeValidation, de.Code)
	})
}

func TestAnalysisSchema(t *testing.T) {
	raw, err := json.Marshal(analysisSchema)
	require.NoError(t, err)

	var schema struct {
		Type                 string          `json:"type"`
		Required             []string        `json:"required"`
		Properties           map[string]any  `json:"properties"`
		AdditionalProperties json.RawMessage `json:"additionalProperties"`
	}
	require.NoError(t, json.Unmarshal(raw, &schema))

	assert.Equal(t, "object", schema.Type)
	assert.ElementsMatch(t,
		[]string{"title", "summary", "changes", "impact", "action_required", "labels"},
		schema.Required,
	)
	// Strict structured output requires a closed object.
	assert.Equal(t, "false", string(schema.AdditionalProperties))
}

func TestBuildUserContent(t *testing.T) {
	content := buildUserContent("diff --git a/a.py b/a.py", []string{"fix a", "fix b"})

	assert.Contains(t, content, "diff --git a/a.py b/a.py")
	assert.Contains(t, content, "- fix a\n- fix b\n")
}
