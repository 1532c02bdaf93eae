package main

import (
	"fmt"
	"slices"

	"github.com/cognicore/sumsent/pkg/sumsent/config"
	"github.com/cognicore/sumsent/pkg/sumsent/corpus"
	"github.com/cognicore/sumsent/pkg/sumsent/internalerr"
)

// loadConfig reads --config and keeps only the corpora whose year is in years.
func loadConfig(years []string) (*config.Config, error) {
	cfg, err := config.LoadConfig(rootFlags.config)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if len(years) == 0 {
		return cfg, nil
	}

	var kept []config.CorpusConfig
	for _, cc := range cfg.Corpora {
		if slices.Contains(years, cc.Year) {
			kept = append(kept, cc)
		}
	}
	if len(kept) == 0 {
		return nil, fmt.Errorf("%w: no configured corpus for years %v", internalerr.ErrInvalidConfig, years)
	}
	cfg.Corpora = kept
	return cfg, nil
}

func loadComponents(years []string) (*config.Components, *config.Config, error) {
	cfg, err := loadConfig(years)
	if err != nil {
		return nil, nil, err
	}
	comp, err := (&config.Loader{Config: cfg}).Load()
	if err != nil {
		return nil, nil, err
	}
	return comp, cfg, nil
}

func findCorpus(corpora []corpus.Corpus, year string) (corpus.Corpus, error) {
	for _, c := range corpora {
		if c.Year == year {
			return c, nil
		}
	}
	return corpus.Corpus{}, fmt.Errorf("corpus %s: %w", year, internalerr.ErrNotFound)
}
