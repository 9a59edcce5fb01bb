// Package services provides orchestration over the core domain logic.
//
// This file implements transaction processing: a note is stamped with a
// date (explicit or current) and classified against a caller-supplied
// category set.
package services

import (
	"golang.org/x/sync/errgroup"

	"registro/internal/core"
)

// DateProvider supplies the current calendar date as YYYY-MM-DD.
// The production provider is core.CurrentDate; tests substitute fixed
// dates.
type DateProvider interface {
	CurrentDate() string
}

// DateProviderFunc adapts a plain function to the DateProvider interface.
type DateProviderFunc func() string

// CurrentDate calls f.
func (f DateProviderFunc) CurrentDate() string { return f() }

// ProcessorConfig holds configuration for the transaction processor
type ProcessorConfig struct {
	// Dates supplies the date for transactions without an explicit one
	// (default: core.CurrentDate)
	Dates DateProvider

	// FallbackName is the catch-all category name used by recognition
	// (default: core.DefaultFallbackName)
	FallbackName string
}

// DefaultProcessorConfig returns sensible defaults
func DefaultProcessorConfig() ProcessorConfig {
	return ProcessorConfig{
		Dates:        DateProviderFunc(core.CurrentDate),
		FallbackName: core.DefaultFallbackName,
	}
}

// Processor stamps transaction notes with a date and a recognized
// category. It keeps no state between calls and is safe for concurrent
// use.
type Processor struct {
	config ProcessorConfig
}

// NewProcessor creates a new processor. Zero-valued config fields fall
// back to the DefaultProcessorConfig values.
func NewProcessor(config ProcessorConfig) *Processor {
	defaults := DefaultProcessorConfig()
	if config.Dates == nil {
		config.Dates = defaults.Dates
	}
	if config.FallbackName == "" {
		config.FallbackName = defaults.FallbackName
	}
	return &Processor{config: config}
}

// Process resolves a single transaction. The explicit date is kept
// verbatim when non-empty, with no format validation; otherwise the date
// provider fills in the current date. The note is classified against the
// supplied categories and carried into the result unchanged. Process
// cannot fail.
func (p *Processor) Process(note, explicitDate string, categories []core.Category) core.ProcessedTransaction {
	date := explicitDate
	if date == "" {
		date = p.config.Dates.CurrentDate()
	}
	recognizer := core.NewRecognizerWithFallback(categories, p.config.FallbackName)
	return core.ProcessedTransaction{
		Date:       date,
		CategoryID: recognizer.RecognizeCategory(note),
		Note:       note,
	}
}

// ProcessAll processes many notes against the same explicit date and
// category set, preserving input order in the result. Work is spread over
// at most concurrency goroutines; values below 1 mean no limit.
func (p *Processor) ProcessAll(notes []string, explicitDate string, categories []core.Category, concurrency int) []core.ProcessedTransaction {
	results := make([]core.ProcessedTransaction, len(notes))
	var g errgroup.Group
	if concurrency > 0 {
		g.SetLimit(concurrency)
	}
	for i, note := range notes {
		g.Go(func() error {
			results[i] = p.Process(note, explicitDate, categories)
			return nil
		})
	}
	_ = g.Wait() // workers never return errors
	return results
}
