package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/lewisallan/titan-jobs/gen/ent"
	"github.com/lewisallan/titan-jobs/internal/common"
	"github.com/lewisallan/titan-jobs/internal/importer"
	repo "github.com/lewisallan/titan-jobs/internal/repository"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		inmem     = flag.Bool("inmem", false, "use in-memory SQLite database (dry run)")
		file      = flag.String("file", "", "spreadsheet to import (required)")
		format    = flag.String("format", "", "source format: csv or xlsx (default: by extension)")
		aliases   = flag.String("aliases", "", "JSON file with column alias overrides")
		customers = flag.Bool("customers", false, "import the customer address book instead of jobs")
		preview   = flag.Bool("preview", false, "show columns and sample rows without persisting")
	)
	flag.Parse()

	if *file == "" {
		printError("Error: --file is required\n")
		os.Exit(1)
	}

	srcFormat := importer.FormatCSV
	switch strings.ToLower(*format) {
	case "csv":
	case "xlsx":
		srcFormat = importer.FormatXLSX
	case "":
		if strings.EqualFold(filepath.Ext(*file), ".xlsx") {
			srcFormat = importer.FormatXLSX
		}
	default:
		printError("Error: --format must be csv or xlsx\n")
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()
	cfg := common.LoadConfig()

	var (
		entc    *ent.Client
		cleanup func()
	)
	if *inmem {
		c, err := repo.OpenSQLite(ctx, logger)
		if err != nil {
			logger.Error("failed to open in-memory database", "error", err)
			os.Exit(1)
		}
		entc = c
		cleanup = func() { _ = c.Close() }
	} else {
		if cfg.Database.DSN == "" {
			printError("Error: DB_URL is required without --inmem\n")
			os.Exit(1)
		}
		c, pool, err := repo.Open(ctx, repo.Config{
			DSN:              cfg.Database.DSN,
			MaxConns:         cfg.Database.MaxConns,
			MinConns:         cfg.Database.MinConns,
			MaxConnLifetime:  cfg.Database.MaxConnLifetime,
			MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
			DialTimeout:      cfg.Database.DialTimeout,
			StatementTimeout: cfg.Database.StatementTimeout,
		}, logger)
		if err != nil {
			logger.Error("failed to open database", "error", err)
			os.Exit(1)
		}
		entc = c
		cleanup = func() { repo.Close(c, pool, logger) }
	}
	defer cleanup()

	resolver := importer.NewColumnResolver()
	if *aliases != "" {
		overrides, err := importer.LoadAliasOverrides(*aliases)
		if err != nil {
			logger.Error("failed to load alias overrides", "path", *aliases, "error", err)
			os.Exit(1)
		}
		resolver = resolver.WithOverrides(overrides)
	}

	jobsRepo := repo.NewJobRepository(entc, logger)
	customersRepo := repo.NewCustomerRepository(entc, logger)
	batchesRepo := repo.NewImportBatchRepository(entc, logger)
	svc := importer.NewService(
		importer.NewTransformer(resolver),
		jobsRepo, customersRepo, batchesRepo,
		cfg.Import.ChunkSize, logger,
	)

	f, err := os.Open(*file)
	if err != nil {
		logger.Error("failed to open source file", "path", *file, "error", err)
		os.Exit(1)
	}
	defer f.Close()

	if *preview {
		p, err := svc.PreviewSource(f, srcFormat)
		if err != nil {
			logger.Error("preview failed", "error", err)
			os.Exit(1)
		}
		fmt.Printf("columns: %s\n", strings.Join(p.Columns, ", "))
		fmt.Printf("rows: %d scanned, %d would be rejected\n", p.Scanned, p.Rejected)
		for _, j := range p.Sample {
			fmt.Printf("  %s | %s | price %s | balance %s | due %q | %s\n",
				j.Name, j.Address, j.Price, j.Balance, j.NextDue, j.Status)
		}
		return
	}

	source := filepath.Base(*file)
	if *customers {
		result, err := svc.ImportCustomers(ctx, source, f, srcFormat)
		if err != nil {
			logger.Error("customer import failed", "error", err)
			os.Exit(1)
		}
		fmt.Printf("customers: %d scanned, %d rejected, %d persisted\n",
			result.Scanned, result.Rejected, result.Persisted)
		return
	}

	result, err := svc.ImportJobs(ctx, source, f, srcFormat)
	if err != nil {
		logger.Error("job import failed", "persisted", resultPersisted(result), "error", err)
		os.Exit(1)
	}
	fmt.Printf("jobs: %d scanned, %d rejected, %d persisted\n",
		result.Scanned, result.Rejected, result.Persisted)
}

func resultPersisted(r *importer.Result) int {
	if r == nil {
		return 0
	}
	return r.Persisted
}
