package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"winnow/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t   testing.TB
	cfg *config.Config
}

// NewConfig produces a config with repository defaults and applies any
// provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	cfgVal := config.Default()
	builder := &configBuilder{t: t, cfg: &cfgVal}
	for _, opt := range opts {
		opt(builder)
	}
	return builder.cfg
}

// WithSuffix overrides the output file suffix on the test config.
func WithSuffix(suffix string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Output.Suffix = suffix
	}
}

// WithExtraPhrases sets lexicon phrase extensions on the test config.
func WithExtraPhrases(phrases ...string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Lexicon.ExtraPhrases = phrases
	}
}

// WithExtraPrefixes sets lexicon prefix extensions on the test config.
func WithExtraPrefixes(prefixes ...string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Lexicon.ExtraPrefixes = prefixes
	}
}

// WithLogDir enables file logging under the given directory.
func WithLogDir(dir string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Logging.Dir = dir
	}
}

// WriteConfig marshals cfg to a TOML file under dir and returns its path.
func WriteConfig(t testing.TB, dir string, cfg *config.Config) string {
	t.Helper()

	data, err := toml.Marshal(cfg)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", dir, err)
	}
	path := filepath.Join(dir, "winnow.toml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config %s: %v", path, err)
	}
	return path
}
