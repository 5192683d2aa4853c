package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"theorem-converter/internal/usecase"
)

// User-facing message wording kept stable for the page and its tests.
const (
	emptyInputMessage     = "Please enter a mathematical statement to convert."
	providerErrorFormat   = "AWS Bedrock API error: %s - %s"
	unexpectedErrorFormat = "An error occurred while calling the AWS Bedrock API: %s"
	headerRequestID       = "X-Request-Id"
	contentTypeJSON       = "application/json"
)

type converter interface {
	Convert(ctx context.Context, in usecase.ConvertInput) (usecase.ConvertOutput, error)
}

type convertRequest struct {
	Statement string `json:"statement"`
}

type convertResponse struct {
	FormalStatement string `json:"formalStatement"`
}

type examplesResponse struct {
	Examples []string `json:"examples"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func emptyInputResponse() (int, errorResponse) {
	return http.StatusBadRequest, errorResponse{
		Error:   string(usecase.ErrorInvalidInput),
		Message: emptyInputMessage,
	}
}

// mapError translates a conversion failure into a status code and body.
// Provider faults surface both the provider code and message; everything
// else follows the original unexpected-error wording.
func mapError(err error) (int, errorResponse) {
	var uerr *usecase.Error
	if errors.As(err, &uerr) && uerr.Code == usecase.ErrorProvider {
		var fault usecase.ProviderFault
		if errors.As(err, &fault) {
			return http.StatusBadGateway, errorResponse{
				Error:   string(usecase.ErrorProvider),
				Message: fmt.Sprintf(providerErrorFormat, fault.ErrorCode(), fault.ErrorMessage()),
			}
		}
	}

	cause := err
	if errors.As(err, &uerr) && uerr.Err != nil {
		cause = uerr.Err
	}
	return http.StatusInternalServerError, errorResponse{
		Error:   string(usecase.ErrorInternal),
		Message: fmt.Sprintf(unexpectedErrorFormat, cause.Error()),
	}
}
