package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/invopop/jsonschema"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"prsummary/internal/domain"
	"prsummary/internal/domain/summary"
)

var _ summary.Summarizer = (*Summarizer)(nil)

// analysisPayload is the wire shape the model is constrained to return.
type analysisPayload struct {
	Title          string   `json:"title" jsonschema_description:"One line summary of the pull request"`
	Summary        string   `json:"summary" jsonschema_description:"Brief non-technical description of what changed"`
	Changes        []string `json:"changes" jsonschema_description:"Changed files, one entry per file"`
	Impact         string   `json:"impact" jsonschema_description:"Affected parts of the project"`
	ActionRequired string   `json:"action_required" jsonschema_description:"What reviewers should do"`
	Labels         []string `json:"labels" jsonschema_description:"Labels such as Bug, Feature, Docs plus a size label"`
}

// analysisSchema is reflected once; the shape is static.
var analysisSchema = func() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		ExpandedStruct: true,
		DoNotReference: true,
	}
	return reflector.Reflect(&analysisPayload{})
}()

type Summarizer struct {
	client openai.Client
	model  string
}

func NewSummarizer(apiKey, baseURL, model string) *Summarizer {
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}

	return &Summarizer{
		client: openai.NewClient(opts...),
		model:  model,
	}
}

func (s *Summarizer) Summarize(ctx context.Context, diff string, commitMessages []string) (summary.Analysis, error) {
	resp, err := s.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(s.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemInstruction),
			openai.UserMessage(buildUserContent(diff, commitMessages)),
		},
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONSchema: &openai.ResponseFormatJSONSchemaParam{
				JSONSchema: openai.ResponseFormatJSONSchemaJSONSchemaParam{
					Name:        "pr_analysis",
					Description: openai.String("Structured analysis of a pull request"),
					Schema:      analysisSchema,
					Strict:      openai.Bool(true),
				},
			},
		},
	})
	if err != nil {
		return summary.Analysis{}, fmt.Errorf("chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return summary.Analysis{}, &domain.DomainError{
			Code:       domain.ErrorCodeUpstream,
			Message:    "summarizer returned no content choices",
			HTTPStatus: http.StatusInternalServerError,
		}
	}

	return parseAnalysis(resp.Choices[0].Message.Content)
}

// parseAnalysis decodes the model output and enforces the analysis shape.
// Malformed output is a hard failure; there is no repair attempt here.
func parseAnalysis(content string) (summary.Analysis, error) {
	var payload analysisPayload
	if err := json.Unmarshal([]byte(content), &payload); err != nil {
		return summary.Analysis{}, &domain.DomainError{
			Code:       domain.ErrorCodeValidation,
			Message:    fmt.Sprintf("summarizer output is not valid analysis JSON: %v", err),
			HTTPStatus: http.StatusInternalServerError,
		}
	}

	analysis := summary.Analysis{
		Title:          payload.Title,
		Summary:        payload.Summary,
		Changes:        payload.Changes,
		Impact:         payload.Impact,
		ActionRequired: payload.ActionRequired,
		Labels:         payload.Labels,
	}
	if err := analysis.Validate(); err != nil {
		return summary.Analysis{}, err
	}
	return analysis, nil
}
