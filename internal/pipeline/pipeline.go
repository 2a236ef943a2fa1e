// Package pipeline orchestrates catalog conversion runs: read workbook
// rows, transform them into NetworkPipe entries, write per-workbook XML,
// and merge everything into the master pipe database.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/couchcryptid/pipe-catalog-etl/internal/config"
	"github.com/couchcryptid/pipe-catalog-etl/internal/domain"
	"github.com/couchcryptid/pipe-catalog-etl/internal/observability"
	"github.com/couchcryptid/pipe-catalog-etl/internal/thermal"
	"github.com/couchcryptid/pipe-catalog-etl/internal/xmlcat"
)

// RowReader reads catalog rows from one workbook sheet.
type RowReader interface {
	Read(path, sheet string) ([]domain.CatalogRow, error)
}

// RowReaderFunc adapts a plain function to the RowReader interface.
type RowReaderFunc func(path, sheet string) ([]domain.CatalogRow, error)

func (f RowReaderFunc) Read(path, sheet string) ([]domain.CatalogRow, error) {
	return f(path, sheet)
}

// FileSummary reports the outcome of one workbook conversion.
type FileSummary struct {
	Path    string
	Output  string
	Rows    int
	Entries int
	Skipped int
}

// Summary reports the outcome of a whole conversion run.
type Summary struct {
	GeneratedAt time.Time
	Files       []FileSummary

	FirstID int // first ID assigned in this run
	LastID  int // last ID assigned in this run

	OriginalEntries int // entries in the master DB before the merge
	FinalEntries    int // entries in the merged DB, 0 when no merge ran
	Merged          bool
}

// TotalEntries is the number of entries produced across all workbooks.
func (s Summary) TotalEntries() int {
	n := 0
	for _, f := range s.Files {
		n += f.Entries
	}
	return n
}

// Pipeline converts a set of catalog workbooks into pipe database XML.
type Pipeline struct {
	reader  RowReader
	logger  *slog.Logger
	metrics *observability.Metrics
	clock   clockwork.Clock
}

// New creates a Pipeline. Pass a nil clock for real time.
func New(reader RowReader, logger *slog.Logger, metrics *observability.Metrics, clock clockwork.Clock) *Pipeline {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Pipeline{
		reader:  reader,
		logger:  logger,
		metrics: metrics,
		clock:   clock,
	}
}

// Run executes one conversion job. Per-row failures are logged, counted,
// and skipped; a failing workbook or a failing merge aborts the run.
func (p *Pipeline) Run(ctx context.Context, cfg *config.Config, job *config.Job) (*Summary, error) {
	idCounter := cfg.IDSeed
	if job.Database != "" {
		idCounter = xmlcat.LastID(job.Database, cfg.IDSeed)
	}
	p.logger.Info("starting conversion", "inputs", len(job.Inputs), "initial_id", idCounter)

	summary := &Summary{FirstID: idCounter + 1}
	var allChunks string

	for _, in := range job.Inputs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		chunk, fileSummary, err := p.convertFile(ctx, cfg, in, &idCounter)
		if err != nil {
			return nil, fmt.Errorf("convert %s: %w", in.Path, err)
		}
		summary.Files = append(summary.Files, fileSummary)
		allChunks += chunk
	}

	summary.LastID = idCounter
	summary.GeneratedAt = p.clock.Now()

	if job.Database != "" {
		if err := p.merge(job, allChunks, summary); err != nil {
			return nil, err
		}
	}

	return summary, nil
}

// convertFile converts one workbook and writes its standalone XML.
func (p *Pipeline) convertFile(ctx context.Context, cfg *config.Config, in config.Input, idCounter *int) (string, FileSummary, error) {
	start := p.clock.Now()

	sheet := in.Sheet
	if sheet == "" {
		sheet = cfg.SheetName
	}

	p.logger.Info("processing workbook", "path", in.Path, "sheet", sheet)

	rows, err := p.reader.Read(in.Path, sheet)
	if err != nil {
		return "", FileSummary{}, err
	}
	p.metrics.RowsRead.Add(float64(len(rows)))

	colors := domain.AssignColors(rows)

	var pipes []domain.NetworkPipe
	skipped := 0
	for i, row := range rows {
		if err := ctx.Err(); err != nil {
			return "", FileSummary{}, err
		}

		pipe := domain.BuildPipe(row, *idCounter+1, colors[i], in.Manufacturer)

		if in.SolveInsulation {
			if err := domain.SolveInsulation(&pipe, row, cfg.MaxInsulationThickness); err != nil {
				p.logger.Warn("row skipped", "error", err, "path", in.Path, "row", i, "product", row.Product)
				p.metrics.RowErrors.Inc()
				p.metrics.SolverOutcomes.WithLabelValues(solverOutcome(err)).Inc()
				skipped++
				continue
			}
			if row.UValue != nil && row.InsulationConductivity != nil {
				outcome := solverOutcomeOK(pipe)
				if outcome == "bare_wall" {
					p.logger.Info("no insulation needed, bare wall meets target",
						"path", in.Path, "product", row.Product)
				}
				p.metrics.SolverOutcomes.WithLabelValues(outcome).Inc()
			}
		}

		*idCounter++
		pipes = append(pipes, pipe)
	}
	p.metrics.PipesConverted.Add(float64(len(pipes)))

	chunk := xmlcat.WritePipes(pipes)
	if err := os.WriteFile(in.Output, []byte(xmlcat.WriteDocument(chunk)), 0o644); err != nil {
		return "", FileSummary{}, fmt.Errorf("write %s: %w", in.Output, err)
	}

	p.metrics.FileDuration.Observe(p.clock.Since(start).Seconds())
	p.logger.Info("workbook converted",
		"path", in.Path, "entries", len(pipes), "skipped", skipped, "output", in.Output)

	return chunk, FileSummary{
		Path:    in.Path,
		Output:  in.Output,
		Rows:    len(rows),
		Entries: len(pipes),
		Skipped: skipped,
	}, nil
}

// merge appends the new entries to the master database.
func (p *Pipeline) merge(job *config.Job, chunk string, summary *Summary) error {
	data, err := os.ReadFile(job.Database)
	if err != nil {
		return fmt.Errorf("read master database: %w", err)
	}
	summary.OriginalEntries = xmlcat.CountEntries(string(data))

	if err := xmlcat.Merge(job.Database, job.Output, chunk); err != nil {
		return err
	}

	merged, err := os.ReadFile(job.Output)
	if err != nil {
		return fmt.Errorf("reread merged database: %w", err)
	}
	summary.FinalEntries = xmlcat.CountEntries(string(merged))
	summary.Merged = true

	p.logger.Info("master database merged",
		"database", job.Database,
		"output", job.Output,
		"original_entries", summary.OriginalEntries,
		"final_entries", summary.FinalEntries)
	return nil
}

// solverOutcome maps a solver failure to its metrics label.
func solverOutcome(err error) string {
	switch {
	case errors.Is(err, thermal.ErrTargetUnattainable):
		return "unattainable"
	case errors.Is(err, thermal.ErrInvalidInput):
		return "invalid_input"
	case errors.Is(err, thermal.ErrNoBracketedRoot), errors.Is(err, thermal.ErrNonConvergence):
		return "numerical_error"
	default:
		// Non-solver failures, e.g. a row missing the geometry columns.
		return "other"
	}
}

// solverOutcomeOK distinguishes a solved thickness from the advisory
// "bare wall already sufficient" case, recognizable by the absence of
// the insulation parameter.
func solverOutcomeOK(pipe domain.NetworkPipe) string {
	for _, p := range pipe.Parameters {
		if p.Name == "ThicknessInsulation" {
			return "solved"
		}
	}
	return "bare_wall"
}
