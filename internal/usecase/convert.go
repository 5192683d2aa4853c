package usecase

import (
	"context"
	"errors"
	"strings"

	"theorem-converter/internal/domain"
)

// Fixed generation parameters sent with every request. There is no
// per-request tuning surface.
const (
	maxGenLen   = 300
	temperature = 0.2
	topP        = 0.95
)

// FallbackStatement is returned as a successful output when the model
// produces no usable text. It is a sentinel, not an error.
const FallbackStatement = "Conversion failed."

// TextGenerator produces generated text for a prompt. One call, no retries;
// the Bedrock integration is the production implementation.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string, params domain.GenerationParams) (string, error)
}

// ProviderFault is reported by a generator when the remote provider itself
// rejected or failed the request, carrying its error code and message.
type ProviderFault interface {
	ErrorCode() string
	ErrorMessage() string
}

type ConvertService struct {
	generator TextGenerator
}

type ConvertInput struct {
	Statement string
}

type ConvertOutput struct {
	FormalStatement string
}

func NewConvertService(g TextGenerator) (*ConvertService, error) {
	if g == nil {
		return nil, errors.New("usecase: text generator must not be nil")
	}
	return &ConvertService{generator: g}, nil
}

// Convert turns one informal statement into one formal theorem candidate.
// Callers reject empty input before invoking this; the statement is embedded
// into the prompt exactly as given. Exactly one generator call is made per
// invocation.
func (s *ConvertService) Convert(ctx context.Context, in ConvertInput) (ConvertOutput, error) {
	prompt := BuildPrompt(in.Statement)

	text, err := s.generator.Generate(ctx, prompt, domain.GenerationParams{
		MaxGenLen:   maxGenLen,
		Temperature: temperature,
		TopP:        topP,
	})
	if err != nil {
		var fault ProviderFault
		if errors.As(err, &fault) {
			return ConvertOutput{}, newError(ErrorProvider, "provider_api_error", err)
		}
		return ConvertOutput{}, newError(ErrorInternal, "generation_error", err)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		text = FallbackStatement
	}
	return ConvertOutput{FormalStatement: text}, nil
}
