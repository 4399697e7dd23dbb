package executor

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"
)

// ErrReadBody is returned when the response arrived but its body could not be read
var ErrReadBody = errors.New("failed to read response body")

// DefaultTimeout is used when Options.Timeout is zero
const DefaultTimeout = 30 * time.Second

// Executor performs a request and returns the response body.
// Any body that was read successfully is returned without error, whatever the status code.
type Executor interface {
	Execute(ctx context.Context, method, url string) (string, error)
}

// Func adapts an ordinary function to the Executor interface
type Func func(ctx context.Context, method, url string) (string, error)

// Execute calls f(ctx, method, url)
func (f Func) Execute(ctx context.Context, method, url string) (string, error) {
	return f(ctx, method, url)
}

// Options configures the HTTP client used by HTTPExecutor
type Options struct {
	Timeout            time.Duration
	UserAgent          string
	InsecureSkipVerify bool
	CAFile             string // PEM bundle used to verify servers
}

// HTTPExecutor executes requests over net/http
type HTTPExecutor struct {
	client    *http.Client
	userAgent string
	logger    *slog.Logger
}

// New creates an HTTPExecutor
func New(opts Options, logger *slog.Logger) (*HTTPExecutor, error) {
	client, err := buildHTTPClient(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to configure HTTP client: %w", err)
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &HTTPExecutor{
		client:    client,
		userAgent: opts.UserAgent,
		logger:    logger,
	}, nil
}

// NormalizeMethod maps a method string onto the supported set.
// Unrecognized methods fall back to GET.
func NormalizeMethod(method string) string {
	switch method {
	case http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete:
		return method
	default:
		return http.MethodGet
	}
}

// Execute performs an HTTP request and returns the response body
func (e *HTTPExecutor) Execute(ctx context.Context, method, url string) (string, error) {
	startTime := time.Now()
	method = NormalizeMethod(method)

	httpReq, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	if e.userAgent != "" {
		httpReq.Header.Set("User-Agent", e.userAgent)
	}

	resp, err := e.client.Do(httpReq)
	if err != nil {
		e.logger.Warn("request failed",
			slog.String("method", method),
			slog.String("url", url),
			slog.Any("error", err),
		)
		return "", err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	duration := time.Since(startTime).Milliseconds()
	if err != nil {
		e.logger.Warn("failed to read response body",
			slog.String("method", method),
			slog.String("url", url),
			slog.Int("status", resp.StatusCode),
			slog.Any("error", err),
		)
		return "", fmt.Errorf("%w: %v", ErrReadBody, err)
	}

	e.logger.Info("request completed",
		slog.String("method", method),
		slog.String("url", url),
		slog.Int("status", resp.StatusCode),
		slog.String("duration", FormatDuration(duration)),
		slog.String("size", FormatSize(len(bodyBytes))),
	)

	return string(bodyBytes), nil
}

// buildHTTPClient creates an HTTP client with optional TLS configuration
func buildHTTPClient(opts Options) (*http.Client, error) {
	transport := http.DefaultTransport.(*http.Transport).Clone()

	if opts.InsecureSkipVerify || opts.CAFile != "" {
		tlsCfg := &tls.Config{
			InsecureSkipVerify: opts.InsecureSkipVerify,
		}

		if opts.CAFile != "" {
			caCert, err := os.ReadFile(opts.CAFile)
			if err != nil {
				return nil, fmt.Errorf("failed to read CA certificate: %w", err)
			}
			caCertPool := x509.NewCertPool()
			if !caCertPool.AppendCertsFromPEM(caCert) {
				return nil, fmt.Errorf("failed to parse CA certificate")
			}
			tlsCfg.RootCAs = caCertPool
		}

		transport.TLSClientConfig = tlsCfg
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}, nil
}

// FormatDuration formats duration in milliseconds to human-readable string
func FormatDuration(ms int64) string {
	if ms < 1000 {
		return fmt.Sprintf("%dms", ms)
	}
	seconds := float64(ms) / 1000.0
	return fmt.Sprintf("%.2fs", seconds)
}

// FormatSize formats byte size to human-readable string
func FormatSize(bytes int) string {
	if bytes < 1024 {
		return fmt.Sprintf("%dB", bytes)
	}
	if bytes < 1024*1024 {
		return fmt.Sprintf("%.2fKB", float64(bytes)/1024.0)
	}
	return fmt.Sprintf("%.2fMB", float64(bytes)/(1024.0*1024.0))
}
