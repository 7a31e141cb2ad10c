// Package config merges command-line flags, GMDOC_* environment variables
// and an optional .gmdoc.yml file into the settings for one run.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Defaults used when neither a flag, the environment nor the config file
// sets a value.
const (
	DefaultSpec     = "GmlSpec.xml"
	DefaultKeywords = "helpdocs_keywords.json"
	DefaultOutput   = "-"
	DefaultFormat   = "json"
	DefaultFile     = ".gmdoc.yml"
)

// Config holds the settings of a generate run.
type Config struct {
	SpecPath     string `validate:"required"`
	KeywordsPath string `validate:"required"`
	OutputPath   string `validate:"required"`
	Format       string `validate:"oneof=json yaml yml"`
	Sort         bool
	ConfigPath   string
}

// Set records which fields were given explicitly on the command line.
// Explicit fields are never overridden.
type Set struct {
	SpecPath     bool
	KeywordsPath bool
	OutputPath   bool
	Format       bool
	Sort         bool
}

type fileConfig struct {
	Gmdoc struct {
		Spec     string `yaml:"spec"`
		Keywords string `yaml:"keywords"`
		Output   string `yaml:"output"`
		Format   string `yaml:"format"`
		Sort     *bool  `yaml:"sort"`
	} `yaml:"gmdoc"`
}

var validate = validator.New()

// Default returns a Config with every field at its default.
func Default() Config {
	return Config{
		SpecPath:     DefaultSpec,
		KeywordsPath: DefaultKeywords,
		OutputPath:   DefaultOutput,
		Format:       DefaultFormat,
	}
}

// Resolve fills the fields of cfg not marked in explicit, first from the
// environment and then from the config file, and validates the result.
// A missing config file is only an error when ConfigPath was given.
func Resolve(cfg *Config, explicit Set) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}

	fromEnv, err := applyEnv(cfg, explicit)
	if err != nil {
		return err
	}

	if err := applyFile(cfg, explicit, fromEnv); err != nil {
		return err
	}

	cfg.Format = strings.ToLower(cfg.Format)
	if err := validate.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fe := verrs[0]
			return fmt.Errorf("invalid config: %s failed %q (value %q)", fe.Field(), fe.Tag(), fmt.Sprint(fe.Value()))
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// applyEnv returns the fields it set, which the config file may not override.
func applyEnv(cfg *Config, explicit Set) (Set, error) {
	var set Set
	if v, ok := lookupEnv("GMDOC_SPEC"); ok && !explicit.SpecPath {
		cfg.SpecPath, set.SpecPath = v, true
	}
	if v, ok := lookupEnv("GMDOC_KEYWORDS"); ok && !explicit.KeywordsPath {
		cfg.KeywordsPath, set.KeywordsPath = v, true
	}
	if v, ok := lookupEnv("GMDOC_OUTPUT"); ok && !explicit.OutputPath {
		cfg.OutputPath, set.OutputPath = v, true
	}
	if v, ok := lookupEnv("GMDOC_FORMAT"); ok && !explicit.Format {
		cfg.Format, set.Format = v, true
	}
	if v, ok := lookupEnv("GMDOC_SORT"); ok && !explicit.Sort {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return set, fmt.Errorf("invalid config: GMDOC_SORT=%q is not a boolean", v)
		}
		cfg.Sort, set.Sort = b, true
	}
	return set, nil
}

func applyFile(cfg *Config, explicit, fromEnv Set) error {
	path := cfg.ConfigPath
	required := path != ""
	if !required {
		path = DefaultFile
	}

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if !required && errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	if !(explicit.SpecPath || fromEnv.SpecPath) && fc.Gmdoc.Spec != "" {
		cfg.SpecPath = fc.Gmdoc.Spec
	}
	if !(explicit.KeywordsPath || fromEnv.KeywordsPath) && fc.Gmdoc.Keywords != "" {
		cfg.KeywordsPath = fc.Gmdoc.Keywords
	}
	if !(explicit.OutputPath || fromEnv.OutputPath) && fc.Gmdoc.Output != "" {
		cfg.OutputPath = fc.Gmdoc.Output
	}
	if !(explicit.Format || fromEnv.Format) && fc.Gmdoc.Format != "" {
		cfg.Format = fc.Gmdoc.Format
	}
	if !(explicit.Sort || fromEnv.Sort) && fc.Gmdoc.Sort != nil {
		cfg.Sort = *fc.Gmdoc.Sort
	}
	return nil
}

func lookupEnv(key string) (string, bool) {
	v := strings.TrimSpace(os.Getenv(key))
	return v, v != ""
}
