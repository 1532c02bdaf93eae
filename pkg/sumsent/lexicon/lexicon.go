package lexicon

import (
	"bufio"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/cognicore/sumsent/pkg/sumsent/internalerr"
)

// Format names the keys of a subjectivity clue line.
//
// The MPQA clue file looks like:
//
//	type=weaksubj len=1 word1=abandoned pos1=adj stemmed1=n priorpolarity=negative
type Format struct {
	WordKey     string
	StrengthKey string
	PolarityKey string
}

// DefaultFormat returns the MPQA subjectivity clue keys.
func DefaultFormat() Format {
	return Format{
		WordKey:     "word1",
		StrengthKey: "type",
		PolarityKey: "priorpolarity",
	}
}

// Sentiment maps words to their ordered (strength, polarity) readings.
// It is built once per run and read-only afterwards.
type Sentiment struct {
	// word -> readings in file order; a word with several lines is ambiguous
	entries map[string][]Entry
	skipped int
}

// NewSentiment creates an empty sentiment lexicon.
func NewSentiment() *Sentiment {
	return &Sentiment{entries: make(map[string][]Entry)}
}

// Add appends a reading for word. Words are stored lowercased.
func (l *Sentiment) Add(word string, e Entry) {
	word = strings.ToLower(word)
	l.entries[word] = append(l.entries[word], e)
}

// Lookup returns the readings for word, if any.
func (l *Sentiment) Lookup(word string) ([]Entry, bool) {
	entries, ok := l.entries[word]
	return entries, ok
}

// Has reports whether the word carries any sentiment reading.
func (l *Sentiment) Has(word string) bool {
	_, ok := l.entries[word]
	return ok
}

// Len returns the number of distinct words.
func (l *Sentiment) Len() int {
	return len(l.entries)
}

// Words returns all words in sorted order.
func (l *Sentiment) Words() []string {
	words := make([]string, 0, len(l.entries))
	for w := range l.entries {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

// Stats returns statistics about the lexicon contents.
func (l *Sentiment) Stats() SentimentStats {
	st := SentimentStats{Words: len(l.entries), Skipped: l.skipped}
	for _, entries := range l.entries {
		st.Entries += len(entries)
		if len(entries) > 1 {
			st.Ambiguous++
		}
	}
	return st
}

// SentimentStats holds statistics about lexicon contents.
type SentimentStats struct {
	Words     int // distinct words
	Entries   int // readings across all words
	Ambiguous int // words with more than one reading
	Skipped   int // lines without a usable word, strength, or polarity
}

// LoadSentiment loads a subjectivity clue file using DefaultFormat.
// Any failure to open or read the file is a *internalerr.LexiconLoadError.
func LoadSentiment(path string) (*Sentiment, error) {
	return LoadSentimentFormat(path, DefaultFormat())
}

// LoadSentimentFormat loads a clue file whose lines use the given keys.
func LoadSentimentFormat(path string, format Format) (*Sentiment, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &internalerr.LexiconLoadError{Path: path, Err: err}
	}
	defer f.Close()

	lex, err := ReadSentiment(f, format)
	if err != nil {
		return nil, &internalerr.LexiconLoadError{Path: path, Err: err}
	}
	return lex, nil
}

// ReadSentiment parses clue lines from r. Lines that lack a word or carry an
// unknown strength/polarity are counted as skipped, not reported.
func ReadSentiment(r io.Reader, format Format) (*Sentiment, error) {
	lex := NewSentiment()

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		data := ParseLine(line)
		word := data[format.WordKey]
		if word == "" {
			lex.skipped++
			continue
		}
		strength, err := ParseStrength(data[format.StrengthKey])
		if err != nil {
			lex.skipped++
			continue
		}
		polarity, err := ParsePolarity(data[format.PolarityKey])
		if err != nil {
			lex.skipped++
			continue
		}

		lex.Add(word, Entry{Strength: strength, Polarity: polarity})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return lex, nil
}

// ParseLine splits a clue line into its key=value pairs.
// Tokens that are not exactly one key and one value are skipped; the source
// data carries occasional stray strings.
func ParseLine(line string) map[string]string {
	data := make(map[string]string)
	for _, pair := range strings.Fields(line) {
		parts := strings.Split(pair, "=")
		if len(parts) != 2 {
			continue
		}
		data[parts[0]] = parts[1]
	}
	return data
}
