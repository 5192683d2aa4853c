package bedrock

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/aws/smithy-go"

	"theorem-converter/internal/domain"
)

// modelAPI is the minimal Bedrock runtime interface required by Client.
// *bedrockruntime.Client from aws-sdk-go-v2 satisfies this interface.
type modelAPI interface {
	InvokeModel(ctx context.Context, in *bedrockruntime.InvokeModelInput, optFns ...func(*bedrockruntime.Options)) (*bedrockruntime.InvokeModelOutput, error)
}

// llamaRequest is the native request body for Meta Llama models on Bedrock.
// All four fields are always sent.
type llamaRequest struct {
	Prompt      string  `json:"prompt"`
	MaxGenLen   int     `json:"max_gen_len"`
	Temperature float64 `json:"temperature"`
	TopP        float64 `json:"top_p"`
}

// llamaResponse is the native response body for Meta Llama models on Bedrock.
type llamaResponse struct {
	Generation           string `json:"generation"`
	PromptTokenCount     int    `json:"prompt_token_count"`
	GenerationTokenCount int    `json:"generation_token_count"`
	StopReason           string `json:"stop_reason"`
}

// APIError is a provider-reported failure, carrying the service error code
// and message so the user-facing layer can surface both.
type APIError struct {
	Code    string
	Message string
	Err     error
}

func (e *APIError) Error() string {
	return fmt.Sprintf("bedrock: %s: %s", e.Code, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// ErrorCode reports the provider error code, e.g. "ThrottlingException".
func (e *APIError) ErrorCode() string { return e.Code }

// ErrorMessage reports the provider error message.
func (e *APIError) ErrorMessage() string { return e.Message }

// Client invokes a single Meta Llama model on AWS Bedrock.
type Client struct {
	api     modelAPI
	modelID string
}

// New creates a Client for the given model ID.
func New(api modelAPI, modelID string) (*Client, error) {
	if api == nil {
		return nil, errors.New("bedrock: model api must not be nil")
	}
	modelID = strings.TrimSpace(modelID)
	if modelID == "" {
		return nil, errors.New("bedrock: model id must not be empty")
	}
	return &Client{api: api, modelID: modelID}, nil
}

// Generate sends one InvokeModel request with the given prompt and sampling
// parameters and returns the raw generation text. The text is returned
// untrimmed; interpreting empty output is the caller's concern. A failure
// reported by the service is returned as *APIError.
func (c *Client) Generate(ctx context.Context, prompt string, params domain.GenerationParams) (string, error) {
	body, err := json.Marshal(llamaRequest{
		Prompt:      prompt,
		MaxGenLen:   params.MaxGenLen,
		Temperature: params.Temperature,
		TopP:        params.TopP,
	})
	if err != nil {
		return "", fmt.Errorf("bedrock: marshal request: %w", err)
	}

	out, err := c.api.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(c.modelID),
		Body:        body,
		ContentType: aws.String("application/json"),
		Accept:      aws.String("application/json"),
	})
	if err != nil {
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) {
			return "", &APIError{Code: apiErr.ErrorCode(), Message: apiErr.ErrorMessage(), Err: err}
		}
		return "", fmt.Errorf("bedrock: invoke model: %w", err)
	}
	if out == nil || len(out.Body) == 0 {
		return "", errors.New("bedrock: empty response body")
	}

	var payload llamaResponse
	if err := json.Unmarshal(out.Body, &payload); err != nil {
		return "", fmt.Errorf("bedrock: decode response: %w", err)
	}

	slog.Debug("bedrock generation complete",
		"model", c.modelID,
		"prompt_tokens", payload.PromptTokenCount,
		"generation_tokens", payload.GenerationTokenCount,
		"stop_reason", payload.StopReason,
	)

	return payload.Generation, nil
}
