// Command pipedb converts manufacturer pipe-catalog workbooks into the
// NetworkPipe XML database of the district-heating simulation tool.
//
// Usage:
//
//	pipedb -job job.yaml
//
// The job file lists the input workbooks, their standalone XML outputs,
// and optionally the master database to merge into. Service settings
// (log level, ID seed, solver bound, default sheet) come from PIPEDB_*
// and LOG_* environment variables.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/couchcryptid/pipe-catalog-etl/internal/config"
	"github.com/couchcryptid/pipe-catalog-etl/internal/observability"
	"github.com/couchcryptid/pipe-catalog-etl/internal/pipeline"
	"github.com/couchcryptid/pipe-catalog-etl/internal/xlsx"
)

func main() {
	jobPath := flag.String("job", "job.yaml", "path to the YAML job file")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg.LogLevel, cfg.LogFormat)

	job, err := config.LoadJob(*jobPath)
	if err != nil {
		logger.Error("failed to load job file", "path", *jobPath, "error", err)
		os.Exit(1)
	}

	metrics := observability.NewMetrics()
	p := pipeline.New(pipeline.RowReaderFunc(xlsx.Read), logger, metrics, nil)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	summary, err := p.Run(ctx, cfg, job)
	if err != nil {
		logger.Error("conversion failed", "error", err)
		os.Exit(1)
	}

	printSummary(summary)
}

func printSummary(s *pipeline.Summary) {
	fmt.Println("--- Processing Summary ---")
	for _, f := range s.Files {
		fmt.Printf("%s: %d entries (%d rows, %d skipped) -> %s\n",
			f.Path, f.Entries, f.Rows, f.Skipped, f.Output)
	}
	fmt.Printf("IDs assigned: %d..%d\n", s.FirstID, s.LastID)
	if s.Merged {
		fmt.Printf("master database: %d entries before, %d after\n",
			s.OriginalEntries, s.FinalEntries)
	}
	fmt.Printf("total entries added: %d\n", s.TotalEntries())
}
