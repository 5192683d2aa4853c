package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/google/uuid"

	"theorem-converter/internal/usecase"
)

// Response is the API-Gateway-shaped reply returned by the Lambda surface.
type Response struct {
	StatusCode int               `json:"statusCode"`
	Headers    map[string]string `json:"headers"`
	Body       string            `json:"body"`
}

// Handler serves the conversion API behind API Gateway.
type Handler struct {
	svc converter
}

func NewHandler(svc converter) (*Handler, error) {
	if svc == nil {
		return nil, errors.New("handler: converter must not be nil")
	}
	return &Handler{svc: svc}, nil
}

// Handle routes one API Gateway event. POST /convert runs a conversion,
// GET /examples serves the sample statements.
func (h *Handler) Handle(ctx context.Context, event events.APIGatewayProxyRequest) (Response, error) {
	requestID := eventRequestID(event)

	switch {
	case event.HTTPMethod == http.MethodPost && event.Path == "/convert":
		return h.convert(ctx, event, requestID), nil
	case event.HTTPMethod == http.MethodGet && event.Path == "/examples":
		return respond(http.StatusOK, examplesResponse{Examples: usecase.SampleStatements()}, requestID), nil
	default:
		return respond(http.StatusNotFound, errorResponse{Error: "NOT_FOUND", Message: "unknown route"}, requestID), nil
	}
}

func (h *Handler) convert(ctx context.Context, event events.APIGatewayProxyRequest, requestID string) Response {
	var req convertRequest
	if err := json.Unmarshal([]byte(event.Body), &req); err != nil {
		status, body := emptyInputResponse()
		return respond(status, body, requestID)
	}
	if strings.TrimSpace(req.Statement) == "" {
		status, body := emptyInputResponse()
		return respond(status, body, requestID)
	}

	out, err := h.svc.Convert(ctx, usecase.ConvertInput{Statement: req.Statement})
	if err != nil {
		slog.Error("conversion failed", "request_id", requestID, "err", err)
		status, body := mapError(err)
		return respond(status, body, requestID)
	}
	return respond(http.StatusOK, convertResponse{FormalStatement: out.FormalStatement}, requestID)
}

func respond(status int, body any, requestID string) Response {
	raw, err := json.Marshal(body)
	if err != nil {
		slog.Error("failed to marshal response body", "err", err)
		raw = []byte(`{"error":"INTERNAL_ERROR","message":"failed to encode response"}`)
		status = http.StatusInternalServerError
	}
	return Response{
		StatusCode: status,
		Headers: map[string]string{
			"Content-Type":  contentTypeJSON,
			headerRequestID: requestID,
		},
		Body: string(raw),
	}
}

// eventRequestID honors a caller-provided request ID header regardless of
// header casing, generating one otherwise.
func eventRequestID(event events.APIGatewayProxyRequest) string {
	for k, v := range event.Headers {
		if strings.EqualFold(k, headerRequestID) && strings.TrimSpace(v) != "" {
			return v
		}
	}
	return uuid.NewString()
}
