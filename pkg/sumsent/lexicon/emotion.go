package lexicon

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/cognicore/sumsent/pkg/sumsent/internalerr"
)

// EmotionWordSets holds one word set per emotion category along with the
// categories enabled for classification. Enabled categories are always tried
// in the fixed Emotions() order.
type EmotionWordSets struct {
	order []Emotion
	sets  [NumEmotions]map[string]struct{}
}

// NewEmotionWordSets creates empty sets for the given categories. The
// argument selects categories only; duplicates are ignored and the result is
// ordered as Emotions(). A nil slice enables every category.
func NewEmotionWordSets(categories []Emotion) *EmotionWordSets {
	s := &EmotionWordSets{order: canonicalOrder(categories)}
	for i := range s.sets {
		s.sets[i] = make(map[string]struct{})
	}
	return s
}

func canonicalOrder(categories []Emotion) []Emotion {
	if categories == nil {
		return Emotions()
	}
	var enabled [NumEmotions]bool
	for _, e := range categories {
		if int(e) < NumEmotions {
			enabled[e] = true
		}
	}
	order := make([]Emotion, 0, len(categories))
	for _, e := range Emotions() {
		if enabled[e] {
			order = append(order, e)
		}
	}
	return order
}

// Add puts word into the category's set.
func (s *EmotionWordSets) Add(e Emotion, word string) {
	s.sets[e][word] = struct{}{}
}

// Set replaces the category's set.
func (s *EmotionWordSets) Set(e Emotion, words map[string]struct{}) {
	s.sets[e] = words
}

// Order returns the enabled categories in classification order.
func (s *EmotionWordSets) Order() []Emotion {
	return append([]Emotion(nil), s.order...)
}

// Contains reports whether word is in the category's set.
func (s *EmotionWordSets) Contains(e Emotion, word string) bool {
	_, ok := s.sets[e][word]
	return ok
}

// Classify returns the first category in order whose set holds word.
// A word listed under several categories is attributed to the earliest one.
func (s *EmotionWordSets) Classify(word string) (Emotion, bool) {
	for _, e := range s.order {
		if _, ok := s.sets[e][word]; ok {
			return e, true
		}
	}
	return 0, false
}

// EmotionsOf returns every category in order whose set holds word.
func (s *EmotionWordSets) EmotionsOf(word string) []Emotion {
	var out []Emotion
	for _, e := range s.order {
		if _, ok := s.sets[e][word]; ok {
			out = append(out, e)
		}
	}
	return out
}

// Words returns the category's words in sorted order.
func (s *EmotionWordSets) Words(e Emotion) []string {
	words := make([]string, 0, len(s.sets[e]))
	for w := range s.sets[e] {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

// Overlaps returns the words present in more than one category, sorted.
func (s *EmotionWordSets) Overlaps() []string {
	counts := make(map[string]int)
	for _, e := range s.order {
		for w := range s.sets[e] {
			counts[w]++
		}
	}
	var out []string
	for w, n := range counts {
		if n > 1 {
			out = append(out, w)
		}
	}
	sort.Strings(out)
	return out
}

// LoadEmotionWords reads the word list for one category.
func LoadEmotionWords(category Emotion, path string) (map[string]struct{}, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%s words: %w", category, &internalerr.LexiconLoadError{Path: path, Err: err})
	}
	defer f.Close()

	words, err := ReadEmotionWords(f)
	if err != nil {
		return nil, fmt.Errorf("%s words: %w", category, &internalerr.LexiconLoadError{Path: path, Err: err})
	}
	return words, nil
}

// ReadEmotionWords parses a whitespace-delimited word list.
// Synset ids such as "n#05588321" (second character '#') are skipped and
// underscores in multi-word entries become spaces.
func ReadEmotionWords(r io.Reader) (map[string]struct{}, error) {
	words := make(map[string]struct{})

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		tok := scanner.Text()
		if len(tok) > 1 && tok[1] == '#' {
			continue
		}
		words[strings.ReplaceAll(tok, "_", " ")] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return words, nil
}

// LoadAllEmotionWords loads <dir>/<category>.txt for each category, in order.
// A nil categories slice loads every category.
func LoadAllEmotionWords(dir string, categories []Emotion) (*EmotionWordSets, error) {
	sets := NewEmotionWordSets(categories)
	for _, e := range sets.order {
		words, err := LoadEmotionWords(e, filepath.Join(dir, e.String()+".txt"))
		if err != nil {
			return nil, err
		}
		sets.Set(e, words)
	}
	return sets, nil
}
