package handler

import (
	"embed"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"theorem-converter/internal/usecase"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

const statementPlaceholder = "e.g., The cardinality of the antidiagonal of n is n+1."

// HTTPHandler serves the page and the conversion API over HTTP.
type HTTPHandler struct {
	svc converter
}

func NewHTTPHandler(svc converter) (*HTTPHandler, error) {
	if svc == nil {
		return nil, errors.New("handler: converter must not be nil")
	}
	return &HTTPHandler{svc: svc}, nil
}

// Register wires the page template, request-ID middleware and routes onto
// the given engine.
func (h *HTTPHandler) Register(r *gin.Engine) error {
	tmpl, err := template.ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return err
	}
	r.SetHTMLTemplate(tmpl)
	r.Use(requestID())

	r.GET("/", h.Page)
	r.POST("/api/convert", h.Convert)
	r.GET("/api/examples", h.Examples)
	r.GET("/health", h.Health)
	return nil
}

func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(headerRequestID))
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(headerRequestID, id)
		c.Next()
	}
}

// GET /
func (h *HTTPHandler) Page(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html.tmpl", gin.H{
		"Placeholder": statementPlaceholder,
		"Examples":    usecase.SampleStatements(),
	})
}

// POST /api/convert
func (h *HTTPHandler) Convert(c *gin.Context) {
	var req convertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		status, body := emptyInputResponse()
		c.JSON(status, body)
		return
	}
	if strings.TrimSpace(req.Statement) == "" {
		status, body := emptyInputResponse()
		c.JSON(status, body)
		return
	}

	out, err := h.svc.Convert(c.Request.Context(), usecase.ConvertInput{Statement: req.Statement})
	if err != nil {
		slog.Error("conversion failed", "request_id", c.Writer.Header().Get(headerRequestID), "err", err)
		status, body := mapError(err)
		c.JSON(status, body)
		return
	}
	c.JSON(http.StatusOK, convertResponse{FormalStatement: out.FormalStatement})
}

// GET /api/examples
func (h *HTTPHandler) Examples(c *gin.Context) {
	c.JSON(http.StatusOK, examplesResponse{Examples: usecase.SampleStatements()})
}

// GET /health
func (h *HTTPHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
