package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"registro/internal/cli"
	"registro/internal/config"
	"registro/internal/core"
	"registro/internal/log"
	"registro/internal/services"
)

func main() {
	var (
		explicitDate = flag.String("date", "", "transaction date as YYYY-MM-DD (default: today)")
		batchMode    = flag.Bool("batch", false, "read one note per line from stdin")
		catalogPath  = flag.String("catalog", "", "catalog JSON file (overrides CATALOG_PATH)")
		outputFormat = flag.String("format", "", "output format, json or text (overrides OUTPUT_FORMAT)")
		fallbackName = flag.String("fallback", "", "catch-all category name (overrides FALLBACK_CATEGORY_NAME)")
	)
	flag.Parse()

	// Load .env file for local development (ignore errors in production)
	cli.LoadEnvFile()

	cfg := config.Load()
	if *catalogPath != "" {
		cfg.CatalogPath = *catalogPath
	}
	if *outputFormat != "" {
		cfg.OutputFormat = *outputFormat
	}
	if *fallbackName != "" {
		cfg.FallbackCategoryName = *fallbackName
	}

	logger := cli.SetupLogger(cfg.LogLevel)
	cli.ValidateConfig(logger, cfg)

	categories := cli.LoadCatalog(logger.WithComponent(log.ComponentCatalog), cfg.CatalogPath)
	logger.Debug("Catalog loaded",
		log.FieldCatalogPath, cfg.CatalogPath,
		log.FieldCategoryCount, len(categories))
	if cfg.FallbackCategoryName != "" {
		logger.Debug("Using custom fallback category", log.FieldFallbackName, cfg.FallbackCategoryName)
	}

	processor := services.NewProcessor(services.ProcessorConfig{
		FallbackName: cfg.FallbackCategoryName,
	})

	if *batchMode {
		if err := runBatch(logger, processor, categories, *explicitDate, cfg); err != nil {
			logger.Error("Batch processing failed", log.FieldError, err)
			os.Exit(1)
		}
		return
	}

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: registro [flags] <note>")
		fmt.Fprintln(os.Stderr, "       registro -batch [flags] < notes.txt")
		flag.PrintDefaults()
		os.Exit(2)
	}
	note := strings.Join(flag.Args(), " ")

	tx := processor.Process(note, *explicitDate, categories)
	logger.Debug("Processed note",
		log.FieldNote, tx.Note,
		log.FieldCategoryID, tx.CategoryID,
		log.FieldDate, tx.Date)

	if err := writeTransaction(os.Stdout, tx, cfg.OutputFormat); err != nil {
		logger.Error("Failed to write transaction", log.FieldError, err)
		os.Exit(1)
	}
}

// runBatch reads one note per line from stdin and writes one processed
// transaction per line to stdout, preserving input order.
func runBatch(logger *log.Logger, processor *services.Processor, categories []core.Category, explicitDate string, cfg *config.Config) error {
	notes, err := readNotes(os.Stdin)
	if err != nil {
		return fmt.Errorf("read notes: %w", err)
	}

	batchLogger := logger.WithComponent(log.ComponentBatch).With(log.FieldCount, len(notes))
	batchLogger.Info("Processing notes",
		log.FieldConcurrency, cfg.BatchConcurrency,
		log.FieldFormat, cfg.OutputFormat)

	out := bufio.NewWriter(os.Stdout)
	for _, tx := range processor.ProcessAll(notes, explicitDate, categories, cfg.BatchConcurrency) {
		if err := writeTransaction(out, tx, cfg.OutputFormat); err != nil {
			return err
		}
	}
	if err := out.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}

	batchLogger.Info("Batch complete")
	return nil
}

// readNotes collects input lines verbatim. Blank lines are kept: an empty
// note is a valid input that resolves to the fallback category.
func readNotes(r io.Reader) ([]string, error) {
	var notes []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		notes = append(notes, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return notes, nil
}

func writeTransaction(w io.Writer, tx core.ProcessedTransaction, format string) error {
	if format == "text" {
		_, err := fmt.Fprintf(w, "%s\t%d\t%s\n", tx.Date, tx.CategoryID, tx.Note)
		return err
	}
	data, err := tx.ToJSON()
	if err != nil {
		return fmt.Errorf("encode transaction: %w", err)
	}
	_, err = fmt.Fprintf(w, "%s\n", data)
	return err
}
