// Package config loads service settings from the environment and
// conversion jobs from YAML job files.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/couchcryptid/pipe-catalog-etl/internal/xmlcat"
)

// Config holds the settings shared by every conversion run, populated
// from PIPEDB_* environment variables.
type Config struct {
	LogLevel  string
	LogFormat string

	// IDSeed is the counter start when no existing database provides one.
	IDSeed int

	// MaxInsulationThickness is the solver's upper search bound [m].
	MaxInsulationThickness float64

	// SheetName is the default worksheet read from each workbook; an
	// input entry may override it.
	SheetName string
}

// Load reads configuration from environment variables, applying defaults
// where unset.
func Load() (*Config, error) {
	idSeed, err := parseInt("PIPEDB_ID_SEED", xmlcat.DefaultIDSeed)
	if err != nil {
		return nil, err
	}

	maxThickness, err := parseFloat("PIPEDB_MAX_INSULATION_M", 1.0)
	if err != nil {
		return nil, err
	}
	if maxThickness <= 0 {
		return nil, errors.New("PIPEDB_MAX_INSULATION_M must be positive")
	}

	return &Config{
		LogLevel:               envOrDefault("LOG_LEVEL", "info"),
		LogFormat:              envOrDefault("LOG_FORMAT", "text"),
		IDSeed:                 idSeed,
		MaxInsulationThickness: maxThickness,
		SheetName:              envOrDefault("PIPEDB_SHEET", "Einzel- o Doppelrohr mit U-Wert"),
	}, nil
}

// Input describes one manufacturer workbook to convert.
type Input struct {
	Path   string `yaml:"path"`
	Output string `yaml:"output"` // standalone XML written for this workbook
	Sheet  string `yaml:"sheet"`  // empty = Config.SheetName

	// Manufacturer is the fallback when the workbook has no Hersteller
	// column or the cell is blank.
	Manufacturer string `yaml:"manufacturer"`

	// SolveInsulation enables the insulation-thickness solver for rows
	// that carry an insulation conductivity.
	SolveInsulation bool `yaml:"solve_insulation"`
}

// Job is one conversion run: a set of input workbooks plus the master
// database the results are merged into.
type Job struct {
	Database string  `yaml:"database"`        // existing master DB, may be absent
	Output   string  `yaml:"output_database"` // merged DB written here
	Inputs   []Input `yaml:"inputs"`
}

// LoadJob parses and validates a YAML job file.
func LoadJob(path string) (*Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read job file: %w", err)
	}

	var job Job
	if err := yaml.Unmarshal(data, &job); err != nil {
		return nil, fmt.Errorf("parse job file: %w", err)
	}

	if len(job.Inputs) == 0 {
		return nil, errors.New("job file lists no inputs")
	}
	for i, in := range job.Inputs {
		if in.Path == "" {
			return nil, fmt.Errorf("input %d: path is required", i)
		}
		if in.Output == "" {
			return nil, fmt.Errorf("input %d: output is required", i)
		}
	}
	if job.Database != "" && job.Output == "" {
		return nil, errors.New("output_database is required when database is set")
	}

	return &job, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseInt(key string, def int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return def, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}

func parseFloat(key string, def float64) (float64, error) {
	s := os.Getenv(key)
	if s == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}
