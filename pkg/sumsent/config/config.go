package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/sumsent/pkg/sumsent/corpus"
	"github.com/cognicore/sumsent/pkg/sumsent/internalerr"
	"github.com/cognicore/sumsent/pkg/sumsent/lexicon"
	"github.com/cognicore/sumsent/pkg/sumsent/stats"
)

// Config is a comparison run configuration.
//
//	project_root: /data/duc
//	corpora:
//	  - year: "2001"
//	  - year: "2002"
//	    docs_dir: data/test/docs/docs
//	    sums_dir: extracts
//	lexicon: lexicons/subjclueslen1-HLTEMNLP05.tff
//	emotions_dir: lexicons/wn-affect
type Config struct {
	ProjectRoot string         `yaml:"project_root"`
	Corpora     []CorpusConfig `yaml:"corpora"`

	Lexicon     string       `yaml:"lexicon"`
	LexiconKeys *LexiconKeys `yaml:"lexicon_keys"`
	EmotionsDir string       `yaml:"emotions_dir"`
	Categories  []string     `yaml:"categories"`

	Stoplist     string   `yaml:"stoplist"`
	Stopwords    []string `yaml:"stopwords"`  // added to the stoplist
	KeepWords    []string `yaml:"keep_words"` // never dropped as stopwords
	StopwordLang string   `yaml:"stopword_lang"`
	DropNumeric  bool     `yaml:"drop_numeric"`
	TextTag      string   `yaml:"text_tag"`

	Parallel        int      `yaml:"parallel"`
	SentimentFields []string `yaml:"sentiment_fields"`
	EmotionFields   []string `yaml:"emotion_fields"`

	DB string `yaml:"db"`
}

// CorpusConfig selects one corpus release. Explicit doc_path/sum_path win
// over docs_dir/sums_dir, which win over the year's preset layout.
type CorpusConfig struct {
	Year    string `yaml:"year"`
	DocsDir string `yaml:"docs_dir"`
	SumsDir string `yaml:"sums_dir"`
	DocPath string `yaml:"doc_path"`
	SumPath string `yaml:"sum_path"`
}

// LexiconKeys overrides the clue file key names.
type LexiconKeys struct {
	Word     string `yaml:"word"`
	Strength string `yaml:"strength"`
	Polarity string `yaml:"polarity"`
}

// Format merges the overrides into the MPQA defaults.
func (k *LexiconKeys) Format() lexicon.Format {
	f := lexicon.DefaultFormat()
	if k == nil {
		return f
	}
	if k.Word != "" {
		f.WordKey = k.Word
	}
	if k.Strength != "" {
		f.StrengthKey = k.Strength
	}
	if k.Polarity != "" {
		f.PolarityKey = k.Polarity
	}
	return f
}

// LoadConfig reads a YAML config. Relative paths are resolved against the
// config file's directory.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	cfg.resolvePaths(filepath.Dir(path))
	return &cfg, nil
}

func (c *Config) resolvePaths(base string) {
	abs := func(p string) string {
		if p == "" || filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(base, p)
	}
	c.ProjectRoot = abs(c.ProjectRoot)
	c.Lexicon = abs(c.Lexicon)
	c.EmotionsDir = abs(c.EmotionsDir)
	c.Stoplist = abs(c.Stoplist)
	c.DB = abs(c.DB)
	for i := range c.Corpora {
		c.Corpora[i].DocPath = abs(c.Corpora[i].DocPath)
		c.Corpora[i].SumPath = abs(c.Corpora[i].SumPath)
	}
}

// Validate checks the config without touching the filesystem.
func (c *Config) Validate() error {
	if len(c.Corpora) == 0 {
		return invalid("no corpora configured")
	}
	for i, cc := range c.Corpora {
		if _, err := c.resolveCorpus(cc); err != nil {
			return fmt.Errorf("corpora[%d]: %w", i, err)
		}
	}
	if c.Lexicon == "" {
		return invalid("lexicon is required")
	}
	if c.EmotionsDir == "" {
		return invalid("emotions_dir is required")
	}
	if _, err := c.EmotionCategories(); err != nil {
		return err
	}
	if c.Parallel < 0 {
		return invalid("parallel must be >= 0, got %d", c.Parallel)
	}
	if _, err := stats.ParseFields(c.SentimentFields); err != nil {
		return fmt.Errorf("sentiment_fields: %w: %w", internalerr.ErrInvalidConfig, err)
	}
	if _, err := stats.ParseFields(c.EmotionFields); err != nil {
		return fmt.Errorf("emotion_fields: %w: %w", internalerr.ErrInvalidConfig, err)
	}
	return nil
}

// ResolveCorpora turns the corpus entries into navigable corpora.
func (c *Config) ResolveCorpora() ([]corpus.Corpus, error) {
	out := make([]corpus.Corpus, 0, len(c.Corpora))
	for i, cc := range c.Corpora {
		rc, err := c.resolveCorpus(cc)
		if err != nil {
			return nil, fmt.Errorf("corpora[%d]: %w", i, err)
		}
		out = append(out, rc)
	}
	return out, nil
}

func (c *Config) resolveCorpus(cc CorpusConfig) (corpus.Corpus, error) {
	if cc.Year == "" {
		return corpus.Corpus{}, invalid("year is required")
	}
	if cc.DocPath != "" || cc.SumPath != "" {
		if cc.DocPath == "" || cc.SumPath == "" {
			return corpus.Corpus{}, invalid("doc_path and sum_path must be set together")
		}
		return corpus.Corpus{Year: cc.Year, DocPath: cc.DocPath, SumPath: cc.SumPath}, nil
	}

	layout, _ := corpus.Preset(cc.Year)
	if cc.DocsDir != "" {
		layout.DocsDir = cc.DocsDir
	}
	if cc.SumsDir != "" {
		layout.SumsDir = cc.SumsDir
	}
	if layout.DocsDir == "" || layout.SumsDir == "" {
		return corpus.Corpus{}, invalid("no preset layout for year %s; set docs_dir and sums_dir", cc.Year)
	}
	if c.ProjectRoot == "" {
		return corpus.Corpus{}, invalid("project_root is required for year %s", cc.Year)
	}
	return corpus.Make(cc.Year, c.ProjectRoot, layout.DocsDir, layout.SumsDir), nil
}

// EmotionCategories parses Categories into the enabled categories, ordered
// as lexicon.Emotions() whatever order the config lists them in. Empty means
// all six.
func (c *Config) EmotionCategories() ([]lexicon.Emotion, error) {
	if len(c.Categories) == 0 {
		return lexicon.Emotions(), nil
	}
	seen := make(map[lexicon.Emotion]bool, len(c.Categories))
	for _, name := range c.Categories {
		e, err := lexicon.ParseEmotion(name)
		if err != nil {
			return nil, fmt.Errorf("categories: %w: %w", internalerr.ErrInvalidConfig, err)
		}
		if seen[e] {
			return nil, invalid("categories: %s listed twice", e)
		}
		seen[e] = true
	}
	out := make([]lexicon.Emotion, 0, len(seen))
	for _, e := range lexicon.Emotions() {
		if seen[e] {
			out = append(out, e)
		}
	}
	return out, nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", internalerr.ErrInvalidConfig, fmt.Sprintf(format, args...))
}

// Stoplist represents the stopword list configuration
type Stoplist struct {
	Terms []string `yaml:"terms"`
}

// LoadStoplist loads stopwords from a YAML file
func LoadStoplist(path string) (*Stoplist, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var sl Stoplist
	if err := yaml.Unmarshal(data, &sl); err != nil {
		return nil, err
	}

	return &sl, nil
}
