// Package config loads the YAML configuration of the solver.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	aoc "github.com/aestallon/advent-of-code-2023"
	"github.com/aestallon/advent-of-code-2023/internal/cubes"
	"github.com/aestallon/advent-of-code-2023/internal/source"
	"github.com/aestallon/advent-of-code-2023/pkg/logging"
)

const (
	EnvInputDir = "AOC_INPUT_DIR"
	EnvLogLevel = "AOC_LOG_LEVEL"

	SourceDir      = "dir"
	SourceBigQuery = "bigquery"
)

type Config struct {
	LogLevel    string  `yaml:"log_level" validate:"oneof=debug info warn error"`
	LogJSON     bool    `yaml:"log_json"`
	Concurrency int     `yaml:"concurrency" validate:"min=1,max=64"`
	Input       Input   `yaml:"input"`
	Puzzles     Puzzles `yaml:"puzzles"`
}

type Input struct {
	Source   string   `yaml:"source" validate:"oneof=dir bigquery"`
	Dir      string   `yaml:"dir"`
	Pattern  string   `yaml:"pattern"`
	BigQuery BigQuery `yaml:"bigquery"`
}

type BigQuery struct {
	Project  string `yaml:"project"`
	Table    string `yaml:"table"`
	Location string `yaml:"location"`
	Key      string `yaml:"key"`
}

type Puzzles struct {
	Cubes              Cubes    `yaml:"cubes"`
	ExpansionRates     [2]int64 `yaml:"expansion_rates" validate:"dive,min=1"`
	SpinCycles         int      `yaml:"spin_cycles" validate:"min=1"`
	UnfoldFactor       int      `yaml:"unfold_factor" validate:"min=1"`
	ContraptionWorkers int      `yaml:"contraption_workers" validate:"min=1,max=256"`
}

type Cubes struct {
	Red   int `yaml:"red" validate:"min=0"`
	Green int `yaml:"green" validate:"min=0"`
	Blue  int `yaml:"blue" validate:"min=0"`
}

func Default() Config {
	opts := aoc.DefaultOptions()
	return Config{
		LogLevel:    logging.LevelInfo.String(),
		Concurrency: 4,
		Input: Input{
			Source:  SourceDir,
			Dir:     "inputs",
			Pattern: source.DefaultPattern,
			BigQuery: BigQuery{
				Location: "US",
			},
		},
		Puzzles: Puzzles{
			Cubes:              Cubes{Red: opts.CubeBound.Red, Green: opts.CubeBound.Green, Blue: opts.CubeBound.Blue},
			ExpansionRates:     opts.ExpansionRates,
			SpinCycles:         opts.SpinCycles,
			UnfoldFactor:       opts.UnfoldFactor,
			ContraptionWorkers: min(runtime.GOMAXPROCS(0), 256),
		},
	}
}

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterStructValidation(validateInput, Input{})
}

func validateInput(sl validator.StructLevel) {
	in := sl.Current().Interface().(Input)
	switch in.Source {
	case SourceDir:
		if in.Dir == "" {
			sl.ReportError(in.Dir, "Dir", "dir", "required_for_dir", "")
		}
	case SourceBigQuery:
		if in.BigQuery.Project == "" {
			sl.ReportError(in.BigQuery.Project, "BigQuery.Project", "project", "required_for_bigquery", "")
		}
		if in.BigQuery.Table == "" {
			sl.ReportError(in.BigQuery.Table, "BigQuery.Table", "table", "required_for_bigquery", "")
		}
	}
}

func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Load reads the config at path over the defaults and applies environment
// overrides. An empty path yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read the config file: %w", err)
		}
		if err := decode(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}
	cfg.applyEnv()
	if level, err := logging.ParseLevel(cfg.LogLevel); err == nil {
		cfg.LogLevel = level.String()
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func decode(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func (c *Config) applyEnv() {
	if dir := os.Getenv(EnvInputDir); dir != "" {
		c.Input.Source = SourceDir
		c.Input.Dir = dir
	}
	if level := os.Getenv(EnvLogLevel); level != "" {
		c.LogLevel = level
	}
}

// WriteDefault creates a starter config at path. An existing file is left
// alone and reported as an error.
func WriteDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create the config directory: %w", err)
	}
	data, err := yaml.Marshal(Default())
	if err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func (c Config) ToOptions() aoc.Options {
	return aoc.Options{
		CubeBound:          cubes.Draw{Red: c.Puzzles.Cubes.Red, Green: c.Puzzles.Cubes.Green, Blue: c.Puzzles.Cubes.Blue},
		ExpansionRates:     c.Puzzles.ExpansionRates,
		SpinCycles:         c.Puzzles.SpinCycles,
		UnfoldFactor:       c.Puzzles.UnfoldFactor,
		ContraptionWorkers: c.Puzzles.ContraptionWorkers,
	}
}

func (c Config) Logging() logging.Config {
	level, err := logging.ParseLevel(c.LogLevel)
	if err != nil {
		level = logging.LevelInfo
	}
	return logging.Config{Level: level, JSON: c.LogJSON}
}

// Loader builds the input source selected by the config.
func (c Config) Loader() source.Loader {
	if c.Input.Source == SourceBigQuery {
		bq := c.Input.BigQuery
		return source.BigQuery{Project: bq.Project, Table: bq.Table, Location: bq.Location, Key: bq.Key}
	}
	return source.Dir{Root: c.Input.Dir, Pattern: c.Input.Pattern}
}
