package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/baditaflorin/l"
	"github.com/spf13/pflag"
	"github.com/valyala/fasthttp"

	"github.com/baditaflorin/go_text_frequency/internal/adapters/logger"
	"github.com/baditaflorin/go_text_frequency/pkg/frequency"
)

// Default configuration
const (
	DefaultPort           = 8080
	DefaultReadTimeout    = 30 * time.Second
	DefaultWriteTimeout   = 30 * time.Second
	DefaultMaxRequestSize = 10 * 1024 * 1024 // 10MB
	DefaultConcurrency    = 0                // 0 means use GOMAXPROCS
	DefaultAnalyzeTimeout = 60 * time.Second
)

func main() {
	// Parse command-line flags
	port := pflag.Int("port", DefaultPort, "HTTP server port")
	readTimeout := pflag.Duration("read-timeout", DefaultReadTimeout, "HTTP read timeout")
	writeTimeout := pflag.Duration("write-timeout", DefaultWriteTimeout, "HTTP write timeout")
	maxRequestSize := pflag.Int("max-request-size", DefaultMaxRequestSize, "Maximum request size in bytes")
	concurrency := pflag.Int("concurrency", DefaultConcurrency, "Maximum number of concurrent requests (0 = GOMAXPROCS)")
	analyzeTimeout := pflag.Duration("analyze-timeout", DefaultAnalyzeTimeout, "Maximum time spent on one analysis")
	stemmer := pflag.String("stemmer", "porter", "Stemming algorithm (porter|snowball)")
	extraStopwords := pflag.StringSlice("extra-stopwords", nil, "Additional stopwords")
	warmUp := pflag.Bool("warm-up", true, "Load NLP models and dictionaries on startup")
	logFile := pflag.String("log-file", "", "Log file path (empty = stdout)")
	pflag.Parse()

	// Set up logger
	baseLogger, err := createLogger(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer baseLogger.Close()
	log := logger.FromExisting(baseLogger)

	log.Info("Starting text frequency HTTP server",
		"port", *port,
		"read_timeout", *readTimeout,
		"write_timeout", *writeTimeout,
		"max_request_size", *maxRequestSize,
		"concurrency", *concurrency,
	)

	analyzer, err := frequency.New(
		frequency.WithPortLogger(log),
		frequency.WithStemmer(*stemmer),
		frequency.WithExtraStopwords(*extraStopwords...),
		frequency.WithWarmUp(*warmUp),
	)
	if err != nil {
		log.Error("Failed to initialize analyzer", "error", err)
		os.Exit(1)
	}
	log.Info("Analyzer initialized successfully",
		"warm_up", *warmUp,
		"cpus", runtime.NumCPU(),
	)

	srv := newServer(analyzer, log, *analyzeTimeout)

	// Create HTTP server with fasthttp
	server := &fasthttp.Server{
		Handler:               srv.requestHandler,
		Name:                  "TextFrequencyServer",
		ReadTimeout:           *readTimeout,
		WriteTimeout:          *writeTimeout,
		MaxRequestBodySize:    *maxRequestSize,
		Concurrency:           *concurrency,
		DisableKeepalive:      false,
		TCPKeepalive:          true,
		TCPKeepalivePeriod:    3 * time.Minute,
		MaxConnsPerIP:         0, // unlimited
		MaxRequestsPerConn:    0, // unlimited
		MaxIdleWorkerDuration: 10 * time.Second,
	}

	// Set up graceful shutdown
	idleConnsClosed := make(chan struct{})
	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
		<-sigint

		log.Info("Shutting down server...")
		if err := server.Shutdown(); err != nil {
			log.Error("Error during server shutdown", "error", err)
		}
		close(idleConnsClosed)
	}()

	// Start server
	log.Info("Server listening", "address", fmt.Sprintf(":%d", *port))
	if err := server.ListenAndServe(fmt.Sprintf(":%d", *port)); err != nil {
		log.Error("Server error", "error", err)
	}

	<-idleConnsClosed
	log.Info("Server stopped")
}

// createLogger creates and configures a logger
func createLogger(logFile string) (l.Logger, error) {
	var output io.Writer = os.Stdout
	if logFile != "" {
		file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		output = file
	}

	logger, err := l.NewStandardFactory().CreateLogger(l.Config{
		Output:      output,
		JsonFormat:  true,
		AsyncWrite:  true,
		BufferSize:  1024 * 1024,       // 1MB
		MaxFileSize: 100 * 1024 * 1024, // 100MB
		MaxBackups:  5,
		AddSource:   true,
		Metrics:     true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	return logger, nil
}
