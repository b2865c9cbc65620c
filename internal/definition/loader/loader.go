package loader

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	pkgdefinition "github.com/kaid/stupid-form-model/pkg/definition"
)

// Loader implements pkgdefinition.Loader by delegating to file, fs.FS, or
// HTTP strategies. Construction helpers live in the top-level formmodel
// package.
type Loader struct {
	fs        fs.FS
	http      *http.Client
	allowHTTP bool
	timeout   time.Duration
	log       *slog.Logger
}

// Ensure the implementation satisfies the public interface.
var _ pkgdefinition.Loader = (*Loader)(nil)

// New constructs a Loader from pre-resolved options.
func New(options pkgdefinition.LoaderOptions) pkgdefinition.Loader {
	timeout := options.RequestTimeout

	var httpClient *http.Client
	switch {
	case options.HTTPClient != nil:
		clone := *options.HTTPClient
		if timeout > 0 && clone.Timeout == 0 {
			clone.Timeout = timeout
		}
		httpClient = &clone
	case options.AllowHTTPFallback:
		httpClient = &http.Client{Timeout: timeout}
	}

	log := options.Logger
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	return &Loader{
		fs:        options.FileSystem,
		http:      httpClient,
		allowHTTP: httpClient != nil,
		timeout:   timeout,
		log:       log,
	}
}

// Load fetches a document from the provided source and wraps it in a Document.
func (l *Loader) Load(ctx context.Context, src pkgdefinition.Source) (pkgdefinition.Document, error) {
	if src == nil {
		return pkgdefinition.Document{}, errors.New("definition loader: source is nil")
	}

	var (
		data []byte
		err  error
	)

	switch src.Kind() {
	case pkgdefinition.SourceKindFile:
		data, err = loadFile(ctx, src.Location())
	case pkgdefinition.SourceKindFS:
		data, err = loadFromFS(ctx, l.fs, src.Location())
	case pkgdefinition.SourceKindURL:
		if !l.allowHTTP {
			return pkgdefinition.Document{}, errors.New("definition loader: http support disabled")
		}
		data, err = loadHTTP(ctx, l.http, src.Location(), l.timeout)
	default:
		err = errors.New("definition loader: unsupported source kind")
	}
	if err != nil {
		return pkgdefinition.Document{}, err
	}

	l.log.Debug("definition document loaded",
		slog.String("kind", string(src.Kind())),
		slog.String("location", src.Location()),
		slog.Int("bytes", len(data)),
	)

	return pkgdefinition.NewDocument(src, data)
}
