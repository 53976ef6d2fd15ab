package classify

import (
	"context"
	"log/slog"
	"sync"

	"github.com/northvac/taxon/internal/common"
	"github.com/northvac/taxon/internal/model"
)

// Classified pairs a product with its classification result.
type Classified struct {
	Product model.Product
	Result  model.Result
}

// Skipped is a product excluded before classification, with the reason.
type Skipped struct {
	Product model.Product
	Reason  string
}

// Config holds configuration options for the batch engine.
type Config struct {
	// Progress, when set, is called once per classified product. It may
	// be called from multiple goroutines.
	Progress           func()
	Language           model.Language
	Workers            int
	SkipPlaceholders   bool
	EnforceMinProducts bool
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Language:           model.LanguageEN,
		Workers:            4,
		SkipPlaceholders:   true,
		EnforceMinProducts: true,
	}
}

// Engine classifies whole batches: skip-filter, parallel per-product
// classification, then the demotion pass once every result is in.
type Engine struct {
	classifier *Classifier
	config     Config
}

// New creates a batch engine with the default configuration.
func New(rs *model.RuleSet) *Engine {
	return NewWithConfig(rs, DefaultConfig())
}

// NewWithConfig creates a batch engine with custom configuration.
func NewWithConfig(rs *model.RuleSet, config Config) *Engine {
	if config.Workers < 1 {
		config.Workers = 1
	}
	if config.Language == "" {
		config.Language = model.LanguageEN
	}
	return &Engine{
		classifier: NewClassifier(rs),
		config:     config,
	}
}

// Classifier exposes the per-product classifier for callers that need
// single-record evaluation.
func (e *Engine) Classifier() *Classifier {
	return e.classifier
}

// Run classifies the batch. Per-product classification is a pure
// function of (product, rule set) and runs across workers; the demotion
// pass only starts after every result is available.
func (e *Engine) Run(ctx context.Context, products []model.Product) ([]Classified, []Skipped, error) {
	if len(products) == 0 {
		return nil, nil, common.ErrNoProducts
	}

	kept := make([]model.Product, 0, len(products))
	var skipped []Skipped
	if e.config.SkipPlaceholders {
		for _, product := range products {
			if skip, reason := e.classifier.ShouldSkip(product); skip {
				skipped = append(skipped, Skipped{Product: product, Reason: reason})
				continue
			}
			kept = append(kept, product)
		}
	} else {
		kept = append(kept, products...)
	}

	slog.Info("Starting batch classification",
		"products", len(kept),
		"skipped", len(skipped),
		"workers", e.config.Workers,
		"language", e.config.Language)

	results := make([]model.Result, len(kept))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < e.config.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = e.classifier.Classify(kept[i], e.config.Language)
				if e.config.Progress != nil {
					e.config.Progress()
				}
			}
		}()
	}

	var canceled error
feed:
	for i := range kept {
		select {
		case jobs <- i:
		case <-ctx.Done():
			canceled = ctx.Err()
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	if canceled != nil {
		return nil, skipped, canceled
	}

	batch := make([]Classified, len(kept))
	for i := range kept {
		batch[i] = Classified{Product: kept[i], Result: results[i]}
	}

	if e.config.EnforceMinProducts {
		batch = Demote(e.classifier.rules, batch)
	}

	slog.Info("Batch classification complete",
		"classified", len(batch),
		"skipped", len(skipped))

	return batch, skipped, nil
}
