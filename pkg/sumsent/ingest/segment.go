package ingest

import (
	"strings"

	"gopkg.in/neurosnap/sentences.v1/english"
)

// Segmenter splits text into sentences with the English punkt model.
type Segmenter struct {
	split func(string) []string
}

// NewSegmenter loads the bundled English punkt training data.
func NewSegmenter() (*Segmenter, error) {
	tokenizer, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, err
	}

	return &Segmenter{split: func(text string) []string {
		var out []string
		for _, s := range tokenizer.Tokenize(text) {
			if sent := strings.TrimSpace(s.Text); sent != "" {
				out = append(out, sent)
			}
		}
		return out
	}}, nil
}

// Split returns the non-empty sentences of text.
func (s *Segmenter) Split(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	return s.split(text)
}
