package treesum

import (
	"io"
	"log/slog"
	"path/filepath"
	"runtime"

	"github.com/quarive/treesum/internal/hashfile"
)

// config collects the settings shared by all operations.
type config struct {
	workers      int
	hashfilePath string
	logger       *slog.Logger
}

// Option configures an operation.
type Option func(*config)

// WithWorkers sets the number of hashing workers. Values < 1 use the
// available hardware concurrency.
func WithWorkers(n int) Option {
	return func(c *config) {
		c.workers = n
	}
}

// WithHashfilePath overrides where the hashfile document is written and
// read. The default is HashfileName in the process's current working
// directory, deliberately outside the hashed tree.
func WithHashfilePath(path string) Option {
	return func(c *config) {
		c.hashfilePath = path
	}
}

// WithLogger sets the logger for operation-level events. If not set,
// logging is disabled.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

func newConfig(opts []Option) config {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// log returns the logger, falling back to a discard logger if nil.
func (c *config) log() *slog.Logger {
	if c.logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return c.logger
}

// workerLimit resolves the effective worker count.
func (c *config) workerLimit() int {
	if c.workers > 0 {
		return c.workers
	}
	return runtime.GOMAXPROCS(0)
}

// documentPath resolves the effective hashfile location.
func (c *config) documentPath() string {
	if c.hashfilePath != "" {
		return c.hashfilePath
	}
	return filepath.Join(".", hashfile.Name)
}
