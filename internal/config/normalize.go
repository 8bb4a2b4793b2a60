package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	c.normalizeOutput()
	c.normalizeLexicon()
	return c.normalizeLogging()
}

func (c *Config) normalizeOutput() {
	c.Output.Suffix = strings.TrimSpace(c.Output.Suffix)
	if c.Output.Suffix == "" {
		c.Output.Suffix = defaultOutputSuffix
	}
}

func (c *Config) normalizeLexicon() {
	c.Lexicon.ExtraPhrases = normalizePhraseList(c.Lexicon.ExtraPhrases)
	c.Lexicon.ExtraPrefixes = normalizePhraseList(c.Lexicon.ExtraPrefixes)
}

// normalizePhraseList trims, lowercases, and dedupes lexicon entries. The
// matcher compares lowercased text, so casing in the file is irrelevant.
func normalizePhraseList(entries []string) []string {
	if len(entries) == 0 {
		return nil
	}
	out := make([]string, 0, len(entries))
	seen := make(map[string]struct{}, len(entries))
	for _, entry := range entries {
		normalized := strings.ToLower(strings.TrimSpace(entry))
		if normalized == "" {
			continue
		}
		if _, exists := seen[normalized]; exists {
			continue
		}
		seen[normalized] = struct{}{}
		out = append(out, normalized)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	c.Logging.Dir = strings.TrimSpace(c.Logging.Dir)
	if c.Logging.Dir != "" {
		expanded, err := expandPath(c.Logging.Dir)
		if err != nil {
			return fmt.Errorf("logging.dir: %w", err)
		}
		c.Logging.Dir = expanded
	}
	return nil
}
