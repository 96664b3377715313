package main

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/valyala/fasthttp"

	"github.com/baditaflorin/go_text_frequency/internal/adapters/report"
	"github.com/baditaflorin/go_text_frequency/internal/core/domain"
	"github.com/baditaflorin/go_text_frequency/internal/ports"
	"github.com/baditaflorin/go_text_frequency/pkg/frequency"
)

// AnalyzeRequest is the body of POST /analyze. Top defaults to 25.
type AnalyzeRequest struct {
	Text    string         `json:"text"`
	Options domain.Options `json:"options"`
	Top     int            `json:"top,omitempty"`
}

// AnalyzeResponse is a report document plus request metadata.
type AnalyzeResponse struct {
	report.Document
	Options        string `json:"options"`
	ProcessingTime string `json:"processing_time"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

type server struct {
	analyzer *frequency.Analyzer
	logger   ports.Logger
	timeout  time.Duration
}

func newServer(analyzer *frequency.Analyzer, logger ports.Logger, timeout time.Duration) *server {
	return &server{analyzer: analyzer, logger: logger, timeout: timeout}
}

// requestHandler is the main fasthttp request handler
func (s *server) requestHandler(ctx *fasthttp.RequestCtx) {
	startTime := time.Now()

	ctx.Response.Header.Set("Content-Type", "application/json")

	switch string(ctx.Path()) {
	case "/health":
		s.handleHealthCheck(ctx)
	case "/analyze":
		s.handleAnalyze(ctx)
	default:
		ctx.SetStatusCode(fasthttp.StatusNotFound)
		s.writeJSONError(ctx, "Not found")
	}

	s.logger.Info("Request processed",
		"method", string(ctx.Method()),
		"path", string(ctx.Path()),
		"status", ctx.Response.StatusCode(),
		"ip", ctx.RemoteIP().String(),
		"duration", time.Since(startTime),
	)
}

// handleHealthCheck responds to health check requests
func (s *server) handleHealthCheck(ctx *fasthttp.RequestCtx) {
	ctx.SetStatusCode(fasthttp.StatusOK)
	s.writeJSONResponse(ctx, map[string]interface{}{
		"status": "ok",
		"time":   time.Now().Format(time.RFC3339),
	})
}

// handleAnalyze runs one analysis over the request text
func (s *server) handleAnalyze(ctx *fasthttp.RequestCtx) {
	if !ctx.IsPost() {
		ctx.SetStatusCode(fasthttp.StatusMethodNotAllowed)
		s.writeJSONError(ctx, "Method not allowed")
		return
	}

	var req AnalyzeRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		ctx.SetStatusCode(fasthttp.StatusBadRequest)
		s.writeJSONError(ctx, "Invalid request: "+err.Error())
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		ctx.SetStatusCode(fasthttp.StatusBadRequest)
		s.writeJSONError(ctx, "Text is required")
		return
	}
	if req.Top == 0 {
		req.Top = s.analyzer.SliceSize()
	}

	c, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	start := time.Now()
	analysis, err := s.analyzer.AnalyzeTop(c, req.Text, req.Options, req.Top)
	if err != nil {
		if domain.KindOf(err) == domain.KindUsage {
			ctx.SetStatusCode(fasthttp.StatusBadRequest)
		} else {
			ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		}
		s.writeJSONError(ctx, err.Error())
		return
	}

	ctx.SetStatusCode(fasthttp.StatusOK)
	s.writeJSONResponse(ctx, AnalyzeResponse{
		Document:       report.NewDocument(analysis, true),
		Options:        req.Options.String(),
		ProcessingTime: time.Since(start).String(),
	})
}

// writeJSONResponse writes a JSON response to the context
func (s *server) writeJSONResponse(ctx *fasthttp.RequestCtx, data interface{}) {
	response, err := json.Marshal(data)
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		s.logger.Error("Error marshaling JSON response", "error", err)
		s.writeJSONError(ctx, "Internal server error")
		return
	}

	ctx.SetBody(response)
}

// writeJSONError writes a JSON error response to the context
func (s *server) writeJSONError(ctx *fasthttp.RequestCtx, message string) {
	response, err := json.Marshal(ErrorResponse{Error: message})
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		s.logger.Error("Error marshaling JSON error response", "error", err)
		ctx.SetBodyString(`{"error":"Internal server error"}`)
		return
	}

	ctx.SetBody(response)
}
