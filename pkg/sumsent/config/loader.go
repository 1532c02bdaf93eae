package config

import (
	"fmt"

	"github.com/cognicore/sumsent/internal/logging"
	"github.com/cognicore/sumsent/pkg/sumsent/compare"
	"github.com/cognicore/sumsent/pkg/sumsent/corpus"
	"github.com/cognicore/sumsent/pkg/sumsent/ingest"
	"github.com/cognicore/sumsent/pkg/sumsent/lexicon"
	"github.com/cognicore/sumsent/pkg/sumsent/stats"
)

// Loader loads the lexicons and word lists a Config points at and constructs
// components
type Loader struct {
	Config *Config
}

// Components holds all loaded configuration components
type Components struct {
	Sentiment  *lexicon.Sentiment
	Emotions   *lexicon.EmotionWordSets
	Tokenizer  *ingest.Tokenizer
	Extractor  *ingest.Extractor
	Pipeline   *ingest.Pipeline
	Aggregator *stats.Aggregator
	Corpora    []corpus.Corpus

	SentimentFields []stats.Field
	EmotionFields   []stats.Field
	Parallel        int
}

// Load validates the config, reads every referenced file and returns
// initialized components. Lexicon failures are returned as
// *internalerr.LexiconLoadError.
func (l *Loader) Load() (*Components, error) {
	cfg := l.Config
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger := logging.New("config")
	comp := &Components{Parallel: cfg.Parallel}

	corpora, err := cfg.ResolveCorpora()
	if err != nil {
		return nil, err
	}
	comp.Corpora = corpora

	comp.Sentiment, err = lexicon.LoadSentimentFormat(cfg.Lexicon, cfg.LexiconKeys.Format())
	if err != nil {
		return nil, fmt.Errorf("load lexicon: %w", err)
	}
	lexStats := comp.Sentiment.Stats()
	logger.Info("lexicon loaded",
		"path", cfg.Lexicon,
		"words", lexStats.Words,
		"entries", lexStats.Entries,
		"ambiguous", lexStats.Ambiguous,
		"skipped", lexStats.Skipped)

	categories, err := cfg.EmotionCategories()
	if err != nil {
		return nil, err
	}
	comp.Emotions, err = lexicon.LoadAllEmotionWords(cfg.EmotionsDir, categories)
	if err != nil {
		return nil, fmt.Errorf("load emotion words: %w", err)
	}
	for _, e := range comp.Emotions.Order() {
		logger.Debug("emotion words loaded", "category", e.String(), "words", len(comp.Emotions.Words(e)))
	}

	// Load stoplist
	if cfg.Stoplist != "" {
		stoplist, err := LoadStoplist(cfg.Stoplist)
		if err != nil {
			return nil, fmt.Errorf("load stoplist: %w", err)
		}
		comp.Tokenizer = ingest.NewTokenizer(stoplist.Terms)
	} else {
		comp.Tokenizer = ingest.NewTokenizer([]string{})
	}
	for _, w := range cfg.Stopwords {
		comp.Tokenizer.AddStopword(w)
	}
	for _, w := range cfg.KeepWords {
		comp.Tokenizer.RemoveStopword(w)
	}
	comp.Tokenizer.SetStopwordLang(cfg.StopwordLang)
	comp.Tokenizer.SetDropNumeric(cfg.DropNumeric)

	seg, err := ingest.NewSegmenter()
	if err != nil {
		return nil, fmt.Errorf("load sentence segmenter: %w", err)
	}
	comp.Extractor = ingest.NewExtractor(seg)
	comp.Extractor.SetTextTag(cfg.TextTag)

	comp.Pipeline = ingest.NewPipeline(comp.Extractor, comp.Tokenizer)
	comp.Aggregator = stats.NewAggregator(comp.Emotions, comp.Sentiment)

	comp.SentimentFields, err = fieldsOrDefault(cfg.SentimentFields, compare.DefaultSentimentFields())
	if err != nil {
		return nil, fmt.Errorf("sentiment_fields: %w", err)
	}
	comp.EmotionFields, err = fieldsOrDefault(cfg.EmotionFields, compare.DefaultEmotionFields())
	if err != nil {
		return nil, fmt.Errorf("emotion_fields: %w", err)
	}

	return comp, nil
}

func fieldsOrDefault(names []string, def []stats.Field) ([]stats.Field, error) {
	if len(names) == 0 {
		return def, nil
	}
	return stats.ParseFields(names)
}
