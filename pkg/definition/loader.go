package definition

import (
	"context"
	"io/fs"
	"log/slog"
	"net/http"
	"time"
)

// Loader fetches definition documents from different sources (filesystem,
// fs.FS, HTTP). Implementations live under internal/definition but
// satisfy this contract.
type Loader interface {
	Load(ctx context.Context, src Source) (Document, error)
}

// LoaderOptions configures how a Loader resolves sources.
type LoaderOptions struct {
	// FileSystem enables loading from an abstract filesystem for fs
	// sources; nil disables them.
	FileSystem fs.FS

	// HTTPClient allows callers to inject custom HTTP behaviour
	// (timeouts, proxies). Nil means URL sources are disabled unless
	// AllowHTTPFallback is true.
	HTTPClient *http.Client

	// AllowHTTPFallback enables a default HTTP client when no client is
	// supplied. Keeping this explicit preserves offline-first behaviour.
	AllowHTTPFallback bool

	// RequestTimeout caps remote fetch durations.
	RequestTimeout time.Duration

	// Logger receives debug records about resolved sources. Nil discards
	// them.
	Logger *slog.Logger
}

// LoaderOption mutates LoaderOptions prior to construction.
type LoaderOption func(*LoaderOptions)

// WithFileSystem injects an fs.FS implementation for fs sources.
func WithFileSystem(files fs.FS) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.FileSystem = files
	}
}

// WithHTTPClient injects a custom HTTP client for remote definition
// documents.
func WithHTTPClient(client *http.Client) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.HTTPClient = client
	}
}

// WithHTTPFallback enables HTTP loading using a default client and
// assigns an optional timeout.
func WithHTTPFallback(timeout time.Duration) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.AllowHTTPFallback = true
		opts.RequestTimeout = timeout
	}
}

// WithLogger injects the logger used for loader diagnostics.
func WithLogger(logger *slog.Logger) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.Logger = logger
	}
}

// NewLoaderOptions applies a set of LoaderOption values and returns the
// resulting configuration.
func NewLoaderOptions(options ...LoaderOption) LoaderOptions {
	cfg := LoaderOptions{}
	for _, opt := range options {
		opt(&cfg)
	}
	return cfg
}

// Construction helpers live in the top-level formmodel package to prevent
// import cycles.
