package ingest

import (
	"strings"
	"unicode"

	"github.com/bbalet/stopwords"
	"golang.org/x/text/unicode/norm"
)

// Tokenizer splits sentences into lowercased word tokens.
type Tokenizer struct {
	stopwords   map[string]struct{}
	keep        map[string]struct{} // never stopwords, even under stopLang
	stopLang    string // ISO 639-1 code for the bundled stop-word lists; "" disables
	dropNumeric bool
}

// NewTokenizer creates a tokenizer that drops the given stopwords.
// An empty list keeps every word, which is what word counts expect.
func NewTokenizer(stopwords []string) *Tokenizer {
	stops := make(map[string]struct{}, len(stopwords))
	for _, w := range stopwords {
		stops[strings.ToLower(w)] = struct{}{}
	}
	return &Tokenizer{stopwords: stops, keep: make(map[string]struct{})}
}

// SetStopwordLang enables the bundled stop-word list for a language code
// such as "en". An empty code disables it.
func (t *Tokenizer) SetStopwordLang(lang string) {
	t.stopLang = strings.ToLower(lang)
}

// SetDropNumeric controls whether pure-numeric tokens ("1988", "3-2") are dropped.
func (t *Tokenizer) SetDropNumeric(drop bool) {
	t.dropNumeric = drop
}

// Tokenize splits text into normalized tokens. Letters, digits, inner hyphens
// and inner apostrophes form words; everything else separates them.
// Punctuation never becomes a token and contractions stay whole ("didn't"),
// so counts run lower than a Penn Treebank tokenizer such as nltk's
// word_tokenize, which emits punctuation tokens and splits off "n't".
func (t *Tokenizer) Tokenize(text string) []string {
	var tokens []string
	var current strings.Builder

	for _, r := range norm.NFC.String(text) {
		if unicode.IsLetter(r) || unicode.IsNumber(r) || r == '-' || (r == '\'' && current.Len() > 0) {
			current.WriteRune(unicode.ToLower(r))
		} else {
			if current.Len() > 0 {
				if word := t.processToken(current.String()); word != "" {
					tokens = append(tokens, word)
				}
				current.Reset()
			}
		}
	}

	// Don't forget the last token
	if current.Len() > 0 {
		if word := t.processToken(current.String()); word != "" {
			tokens = append(tokens, word)
		}
	}

	return tokens
}

// Words tokenizes each sentence in order and flattens the result.
func (t *Tokenizer) Words(sentences []string) []string {
	var words []string
	for _, sent := range sentences {
		words = append(words, t.Tokenize(sent)...)
	}
	return words
}

func (t *Tokenizer) processToken(token string) string {
	word := cleanToken(token)
	if word == "" {
		return ""
	}
	if t.dropNumeric && isNumericOnly(word) {
		return ""
	}
	if t.isStopword(word) {
		return ""
	}
	return word
}

// cleanToken strips leading/trailing hyphens and apostrophes and collapses
// consecutive hyphens.
func cleanToken(token string) string {
	token = strings.Trim(token, "-'")
	for strings.Contains(token, "--") {
		token = strings.ReplaceAll(token, "--", "-")
	}
	return token
}

// isNumericOnly returns true if the token contains only digits and hyphens.
func isNumericOnly(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) && r != '-' {
			return false
		}
	}
	return true
}

func (t *Tokenizer) isStopword(word string) bool {
	if _, ok := t.keep[word]; ok {
		return false
	}
	if _, ok := t.stopwords[word]; ok {
		return true
	}
	if t.stopLang != "" {
		return strings.TrimSpace(stopwords.CleanString(word, t.stopLang, false)) == ""
	}
	return false
}

// AddStopword adds a word to the stopword list
func (t *Tokenizer) AddStopword(word string) {
	word = strings.ToLower(word)
	delete(t.keep, word)
	t.stopwords[word] = struct{}{}
}

// RemoveStopword removes a word from the stopword list. The word is also
// kept when the bundled language list would drop it.
func (t *Tokenizer) RemoveStopword(word string) {
	word = strings.ToLower(word)
	delete(t.stopwords, word)
	t.keep[word] = struct{}{}
}
