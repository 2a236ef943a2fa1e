package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 1100000, cfg.IDSeed)
	assert.Equal(t, 1.0, cfg.MaxInsulationThickness)
	assert.Equal(t, "Einzel- o Doppelrohr mit U-Wert", cfg.SheetName)
}

func TestLoad_CustomEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("PIPEDB_ID_SEED", "1100500")
	t.Setenv("PIPEDB_MAX_INSULATION_M", "0.5")
	t.Setenv("PIPEDB_SHEET", "Tabelle1")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 1100500, cfg.IDSeed)
	assert.Equal(t, 0.5, cfg.MaxInsulationThickness)
	assert.Equal(t, "Tabelle1", cfg.SheetName)
}

func TestLoad_InvalidValues(t *testing.T) {
	t.Run("bad id seed", func(t *testing.T) {
		t.Setenv("PIPEDB_ID_SEED", "abc")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("bad max thickness", func(t *testing.T) {
		t.Setenv("PIPEDB_MAX_INSULATION_M", "zero")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("non-positive max thickness", func(t *testing.T) {
		t.Setenv("PIPEDB_MAX_INSULATION_M", "-1")
		_, err := Load()
		assert.Error(t, err)
	})
}

func writeJobFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "job.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadJob(t *testing.T) {
	path := writeJobFile(t, `
database: data/db_pipes.xml
output_database: data/db_pipes_updated.xml
inputs:
  - path: data/logstor.xlsx
    output: data/u_wert_logstor.xml
    manufacturer: LOGSTOR
    solve_insulation: true
  - path: data/isoplus.xlsx
    output: data/u_wert_isoplus.xml
    sheet: Tabelle1
    manufacturer: Isoplus
`)

	job, err := LoadJob(path)
	require.NoError(t, err)

	assert.Equal(t, "data/db_pipes.xml", job.Database)
	assert.Equal(t, "data/db_pipes_updated.xml", job.Output)
	require.Len(t, job.Inputs, 2)
	assert.True(t, job.Inputs[0].SolveInsulation)
	assert.False(t, job.Inputs[1].SolveInsulation)
	assert.Equal(t, "Tabelle1", job.Inputs[1].Sheet)
	assert.Equal(t, "LOGSTOR", job.Inputs[0].Manufacturer)
}

func TestLoadJob_Validation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"no inputs", "database: db.xml\noutput_database: out.xml\ninputs: []\n"},
		{"missing path", "inputs:\n  - output: out.xml\n"},
		{"missing output", "inputs:\n  - path: in.xlsx\n"},
		{"database without output", "database: db.xml\ninputs:\n  - path: in.xlsx\n    output: out.xml\n"},
		{"invalid yaml", "inputs: ["},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadJob(writeJobFile(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestLoadJob_MissingFile(t *testing.T) {
	_, err := LoadJob(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
