// Package config provides build configuration for the deckhand exporter.
//
// Configuration is read from deckhand.yaml at the documentation source root,
// with environment variables taking precedence over file values. The
// published location controls the ExternalUrl fields written into card and
// board records; the suffixes control how page links are formed.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileName is the name of the per-tree configuration file.
const FileName = "deckhand.yaml"

// EnvPublishedLocation overrides published_location when set.
const EnvPublishedLocation = "DECKHAND_PUBLISHED_LOCATION"

// Config holds the build configuration for one documentation tree.
type Config struct {
	// PublishedLocation is the base URL where the rendered documentation is
	// published. When empty, ExternalUrl fields in exported records are "".
	PublishedLocation string `yaml:"published_location"`

	// FileSuffix is the extension of rendered pages (without the dot).
	FileSuffix string `yaml:"file_suffix"`

	// LinkSuffix is the extension used when building links to published
	// pages. Defaults to FileSuffix.
	LinkSuffix string `yaml:"link_suffix"`

	// UseIndex controls whether a site index is assumed to exist at the
	// published root.
	UseIndex *bool `yaml:"use_index"`
}

// Load reads the configuration for a documentation tree rooted at sourceDir.
// A missing deckhand.yaml is not an error; defaults apply. Environment
// variables always win over file values.
func Load(sourceDir string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(filepath.Join(sourceDir, FileName))
	switch {
	case os.IsNotExist(err):
		// no config file, defaults only
	case err != nil:
		return nil, fmt.Errorf("reading %s: %w", FileName, err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", FileName, err)
		}
	}

	if loc := os.Getenv(EnvPublishedLocation); loc != "" {
		cfg.PublishedLocation = loc
	}

	cfg.applyDefaults()
	return cfg, nil
}

// applyDefaults fills zero values with their documented defaults.
func (c *Config) applyDefaults() {
	if c.FileSuffix == "" {
		c.FileSuffix = "html"
	}
	if c.LinkSuffix == "" {
		c.LinkSuffix = c.FileSuffix
	}
	if c.UseIndex == nil {
		t := true
		c.UseIndex = &t
	}
}

// DefaultOutDir returns the default export directory for a documentation
// tree. It lives under an underscore-prefixed directory so the scanner
// never picks up build output as source pages.
func DefaultOutDir(sourceDir string) string {
	return filepath.Join(sourceDir, "_build", "guru")
}

// ExternalURL joins the published location with a docname to form the URL
// of the published page. Returns "" when no published location is set.
func (c *Config) ExternalURL(docname string) string {
	if c.PublishedLocation == "" {
		return ""
	}
	base := strings.TrimSuffix(c.PublishedLocation, "/")
	return base + "/" + docname + "." + c.LinkSuffix
}
