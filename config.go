package main

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/rancher-sandbox/rancher-desktop/src/go/i18n-keycheck/locale"
)

// configNames are looked for in the working directory and its parents.
var configNames = []string{".i18n-keycheck.yaml", ".i18n-keycheck.yml", ".i18n-keycheck.toml"}

const envPrefix = "I18N_KEYCHECK_"

var defaultExtensions = []string{".js", ".jsx", ".mjs", ".cjs", ".ts", ".tsx", ".vue"}

// config is the per-run configuration. File values are overridden by
// I18N_KEYCHECK_* environment variables.
type config struct {
	Locales       []string              `yaml:"locales"       toml:"locales"       env:"LOCALES"        envSeparator:","`
	JSONBaseURIs  []locale.BaseLocation `yaml:"jsonBaseURIs"  toml:"jsonBaseURIs"  env:"JSON_BASE_URIS" envSeparator:","`
	Sources       []string              `yaml:"sources"       toml:"sources"       env:"SOURCES"        envSeparator:","`
	Extensions    []string              `yaml:"extensions"    toml:"extensions"    env:"EXTENSIONS"     envSeparator:","`
	Namespaces    []string              `yaml:"namespaces"    toml:"namespaces"    env:"NAMESPACES"     envSeparator:","`
	Methods       []string              `yaml:"methods"       toml:"methods"       env:"METHODS"        envSeparator:","`
	AnnotationTag string                `yaml:"annotationTag" toml:"annotationTag" env:"ANNOTATION_TAG"`
	LogLevel      string                `yaml:"logLevel"      toml:"logLevel"      env:"LOG_LEVEL"`
	Jobs          int                   `yaml:"jobs"          toml:"jobs"          env:"JOBS"`
	HTTPTimeout   time.Duration         `yaml:"httpTimeout"   toml:"httpTimeout"   env:"HTTP_TIMEOUT"`

	// dir is the directory relative paths are resolved against.
	dir string
}

// findConfig returns the first config file found by walking up from dir,
// or "" when there is none.
func findConfig(dir string) (string, error) {
	for {
		for _, name := range configNames {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				return path, nil
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// loadConfig reads path (or discovers a config file when path is empty),
// applies environment overrides and fills in defaults.
func loadConfig(path string) (*config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	if path == "" {
		if path, err = findConfig(cwd); err != nil {
			return nil, err
		}
	}

	cfg := &config{dir: cwd}
	if path != "" {
		if err := decodeConfigFile(path, cfg); err != nil {
			return nil, err
		}
		abs, err := filepath.Abs(path)
		if err != nil {
			return nil, err
		}
		cfg.dir = filepath.Dir(abs)
	}
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: envPrefix}); err != nil {
		return nil, fmt.Errorf("reading environment: %w", err)
	}

	if err := cfg.normalize(); err != nil {
		if path != "" {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return nil, fmt.Errorf("%w (no config file found; create %s or use --config)", err, configNames[0])
	}
	return cfg, nil
}

func decodeConfigFile(path string, cfg *config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if filepath.Ext(path) == ".toml" {
		if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(cfg); err != nil {
			return fmt.Errorf("parsing %s: %w", path, err)
		}
		return nil
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}

// normalize validates required fields, fills defaults and makes relative
// paths absolute.
func (c *config) normalize() error {
	if len(c.Locales) == 0 {
		return fmt.Errorf("locales must not be empty")
	}
	if len(c.JSONBaseURIs) == 0 {
		return fmt.Errorf("jsonBaseURIs must not be empty")
	}
	for i, loc := range c.JSONBaseURIs {
		if loc.BaseURI == "" {
			return fmt.Errorf("jsonBaseURIs[%d]: baseURI must not be empty", i)
		}
		if !locale.IsURI(loc.BaseURI) && !filepath.IsAbs(loc.BaseURI) {
			c.JSONBaseURIs[i].BaseURI = filepath.Join(c.dir, loc.BaseURI)
		}
	}
	if len(c.Sources) == 0 {
		c.Sources = []string{"."}
	}
	for i, src := range c.Sources {
		if !filepath.IsAbs(src) {
			c.Sources[i] = filepath.Join(c.dir, src)
		}
	}
	if len(c.Extensions) == 0 {
		c.Extensions = defaultExtensions
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.HTTPTimeout <= 0 {
		c.HTTPTimeout = 30 * time.Second
	}
	return nil
}

// warnUnknownLocales logs locales that are not BCP 47 tags. They are still
// used, since a locale is also just a file name.
func (c *config) warnUnknownLocales(log *slog.Logger) {
	for _, l := range c.Locales {
		if _, err := language.Parse(l); err != nil {
			log.Warn("locale is not a valid language tag", "locale", l, "error", err)
		}
	}
}
