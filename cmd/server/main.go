package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"
	"unicode/utf8"

	"github.com/baditaflorin/l"
	"github.com/valyala/fasthttp"

	"github.com/baditaflorin/go_plagiarism"
	"github.com/baditaflorin/go_plagiarism/internal/adapters/logger"
	"github.com/baditaflorin/go_plagiarism/internal/adapters/source"
	"github.com/baditaflorin/go_plagiarism/internal/config"
	"github.com/baditaflorin/go_plagiarism/internal/core/stopwords"
	"github.com/baditaflorin/go_plagiarism/internal/ports"
)

// Default configuration
const (
	DefaultPort           = 8080
	DefaultReadTimeout    = 30 * time.Second
	DefaultWriteTimeout   = 30 * time.Second
	DefaultMaxRequestSize = 10 * 1024 * 1024 // 10MB
	DefaultConcurrency    = 0                // 0 means fasthttp's default
	DefaultMaxDocuments   = 100
	DefaultCompareTimeout = 60 * time.Second
)

// DefaultMaxDocumentChars bounds each normalized document. Edit distance fills
// a full (n+1)x(m+1) table, so memory grows with the square of this value.
const DefaultMaxDocumentChars = 4000

// Document is a single input document in a compare request.
type Document struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// CompareRequest represents a plagiarism comparison request
type CompareRequest struct {
	Documents         []Document `json:"documents"`
	Threshold         *float64   `json:"threshold,omitempty"`
	MinSequenceLength *int       `json:"min_sequence_length,omitempty"`
}

// CompareResponse represents a plagiarism comparison response
type CompareResponse struct {
	Findings       []plagiarism.Finding `json:"findings"`
	Pairs          int                  `json:"pairs"`
	Detected       int                  `json:"detected"`
	ProcessingTime string               `json:"processing_time,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// server holds the state shared by request handlers.
type server struct {
	cfg          *config.Config
	stop         stopwords.Set
	maxDocuments int
	maxDocChars  int
	logger       ports.Logger
}

func main() {
	// Parse command-line flags
	port := flag.Int("port", DefaultPort, "HTTP server port")
	readTimeout := flag.Duration("read-timeout", DefaultReadTimeout, "HTTP read timeout")
	writeTimeout := flag.Duration("write-timeout", DefaultWriteTimeout, "HTTP write timeout")
	maxRequestSize := flag.Int("max-request-size", DefaultMaxRequestSize, "Maximum request size in bytes")
	concurrency := flag.Int("concurrency", DefaultConcurrency, "Maximum number of concurrent requests (0 = fasthttp default)")
	maxDocuments := flag.Int("max-documents", DefaultMaxDocuments, "Maximum documents per compare request")
	maxDocChars := flag.Int("max-document-chars", DefaultMaxDocumentChars, "Maximum characters per normalized document (0 = unlimited)")
	configPath := flag.String("config", "", "Configuration file path (TOML)")
	logFile := flag.String("log-file", "", "Log file path (empty = stdout)")
	flag.Parse()

	// Set up logger
	lg, err := createLogger(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer lg.Close()

	cfg, _, err := config.Load(*configPath)
	if err != nil {
		lg.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	log := logger.FromExisting(lg)
	srv := &server{
		cfg:          cfg,
		stop:         source.NewLoader(log).LoadStopWords(cfg.StopWords.File, cfg.StopWords.Extra...),
		maxDocuments: *maxDocuments,
		maxDocChars:  *maxDocChars,
		logger:       log,
	}

	lg.Info("Starting plagiarism HTTP server",
		"port", *port,
		"read_timeout", *readTimeout,
		"write_timeout", *writeTimeout,
		"max_request_size", *maxRequestSize,
		"concurrency", *concurrency,
		"max_document_chars", *maxDocChars,
		"similarity_threshold", cfg.Detection.SimilarityThreshold,
		"min_sequence_length", cfg.Detection.MinSequenceLength,
		"stop_words", srv.stop.Len(),
	)

	// Create HTTP server with fasthttp
	httpServer := &fasthttp.Server{
		Handler:               srv.requestHandler,
		ReadTimeout:           *readTimeout,
		WriteTimeout:          *writeTimeout,
		MaxRequestBodySize:    *maxRequestSize,
		Concurrency:           *concurrency,
		TCPKeepalive:          true,
		TCPKeepalivePeriod:    3 * time.Minute,
		MaxIdleWorkerDuration: 10 * time.Second,
	}

	// Set up graceful shutdown
	idleConnsClosed := make(chan struct{})
	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
		<-sigint

		lg.Info("Shutting down server...")
		if err := httpServer.Shutdown(); err != nil {
			lg.Error("Error during server shutdown", "error", err)
		}
		close(idleConnsClosed)
	}()

	lg.Info("Server listening", "address", fmt.Sprintf(":%d", *port))
	if err := httpServer.ListenAndServe(fmt.Sprintf(":%d", *port)); err != nil {
		lg.Error("Server error", "error", err)
	}

	<-idleConnsClosed
	lg.Info("Server stopped")
}

// requestHandler is the main fasthttp request handler
func (s *server) requestHandler(ctx *fasthttp.RequestCtx) {
	startTime := time.Now()

	ctx.Response.Header.Set("Content-Type", "application/json")
	ctx.Response.Header.Set("Server", "PlagiarismServer")

	switch string(ctx.Path()) {
	case "/health":
		s.handleHealthCheck(ctx)
	case "/compare":
		s.handleCompare(ctx)
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

// handleCompare compares every pair of the posted documents
func (s *server) handleCompare(ctx *fasthttp.RequestCtx) {
	if !ctx.IsPost() {
		ctx.SetStatusCode(fasthttp.StatusMethodNotAllowed)
		s.writeJSONError(ctx, "Method not allowed")
		return
	}

	var req CompareRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		ctx.SetStatusCode(fasthttp.StatusBadRequest)
		s.writeJSONError(ctx, "Invalid request: "+err.Error())
		return
	}

	if len(req.Documents) < 2 {
		ctx.SetStatusCode(fasthttp.StatusBadRequest)
		s.writeJSONError(ctx, "At least two documents are required")
		return
	}
	if s.maxDocuments > 0 && len(req.Documents) > s.maxDocuments {
		ctx.SetStatusCode(fasthttp.StatusRequestEntityTooLarge)
		s.writeJSONError(ctx, fmt.Sprintf("At most %d documents are allowed", s.maxDocuments))
		return
	}

	threshold := s.cfg.Detection.SimilarityThreshold
	if req.Threshold != nil {
		threshold = *req.Threshold
	}
	minSequence := s.cfg.Detection.MinSequenceLength
	if req.MinSequenceLength != nil {
		minSequence = *req.MinSequenceLength
	}

	detector, err := plagiarism.New(
		plagiarism.WithThreshold(threshold),
		plagiarism.WithMinSequenceLength(minSequence),
		plagiarism.WithStopWords(s.stop),
		plagiarism.WithWorkers(s.cfg.Detection.Workers),
		plagiarism.WithPortsLogger(nopCloser{s.logger}),
	)
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusBadRequest)
		s.writeJSONError(ctx, "Invalid request: "+err.Error())
		return
	}

	inputs := make([]plagiarism.Input, len(req.Documents))
	for i, doc := range req.Documents {
		id := doc.ID
		if id == "" {
			id = fmt.Sprintf("%d", i)
		}
		inputs[i] = plagiarism.Input{ID: id, Text: doc.Text}

		if s.maxDocChars > 0 {
			if n := utf8.RuneCountInString(detector.Normalize(doc.Text)); n > s.maxDocChars {
				s.logger.Warn("Rejected oversized document", "id", id, "chars", n, "limit", s.maxDocChars)
				ctx.SetStatusCode(fasthttp.StatusRequestEntityTooLarge)
				s.writeJSONError(ctx, fmt.Sprintf("Document %s has %d characters after normalization, at most %d are allowed", id, n, s.maxDocChars))
				return
			}
		}
	}

	c, cancel := context.WithTimeout(context.Background(), DefaultCompareTimeout)
	defer cancel()

	start := time.Now()
	findings, err := detector.Detect(c, inputs)
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusServiceUnavailable)
		s.writeJSONError(ctx, "Comparison aborted: "+err.Error())
		return
	}

	detected := 0
	for _, f := range findings {
		if f.Detected {
			detected++
		}
	}

	ctx.SetStatusCode(fasthttp.StatusOK)
	s.writeJSONResponse(ctx, CompareResponse{
		Findings:       findings,
		Pairs:          len(findings),
		Detected:       detected,
		ProcessingTime: time.Since(start).String(),
	})
}

// nopCloser keeps per-request detectors from closing the shared logger.
type nopCloser struct {
	ports.Logger
}

func (nopCloser) Close() error { return nil }

// Helper functions

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

// createLogger creates and configures a logger
func createLogger(logFile string) (l.Logger, error) {
	factory := l.NewStandardFactory()

	var output io.Writer = os.Stdout
	if logFile != "" {
		file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		output = file
	}

	cfg := logger.DefaultConfig(output, true)
	cfg.MaxFileSize = 100 * 1024 * 1024 // 100MB
	lg, err := factory.CreateLogger(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	return lg, nil
}
