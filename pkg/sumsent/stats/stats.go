package stats

import (
	"sort"

	"github.com/cognicore/sumsent/pkg/sumsent/lexicon"
)

// SentimentCounts tallies lexicon hits for one collection.
type SentimentCounts struct {
	// Count is the number of distinct sentiment-bearing word types.
	Count    int
	Polarity [lexicon.NumPolarities]int
	Strength [lexicon.NumStrengths]int
	Joint    [lexicon.NumPolarities][lexicon.NumStrengths]int
}

// JointTotal sums every polarity×strength bucket.
func (c SentimentCounts) JointTotal() int {
	total := 0
	for _, row := range c.Joint {
		for _, n := range row {
			total += n
		}
	}
	return total
}

// EmotionCounts tallies emotion-category hits for one collection.
type EmotionCounts struct {
	Count     int
	ByEmotion [lexicon.NumEmotions]int
}

// DocStats aggregates one document or summary collection.
// It is filled by a single Compute pass and not modified afterwards.
type DocStats struct {
	WordCount int
	Sentiment SentimentCounts
	Emotion   EmotionCounts

	// Words that contributed to each tally, for inspection.
	SentimentWords map[string]struct{}
	EmotionWords   map[string]struct{}
}

// NewDocStats returns zeroed counters with empty contributor sets.
func NewDocStats() DocStats {
	return DocStats{
		SentimentWords: make(map[string]struct{}),
		EmotionWords:   make(map[string]struct{}),
	}
}

// SortedSentimentWords returns the sentiment contributors in sorted order.
func (s DocStats) SortedSentimentWords() []string {
	return sortedKeys(s.SentimentWords)
}

// SortedEmotionWords returns the emotion contributors in sorted order.
func (s DocStats) SortedEmotionWords() []string {
	return sortedKeys(s.EmotionWords)
}

func sortedKeys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Aggregator classifies words against the run's two lexicons.
// The lexicons are shared read-only, so one Aggregator serves every docset.
type Aggregator struct {
	emotions  *lexicon.EmotionWordSets
	sentiment *lexicon.Sentiment
}

// NewAggregator creates an aggregator over the given lexicons.
// A nil lexicon classifies nothing.
func NewAggregator(emotions *lexicon.EmotionWordSets, sentiment *lexicon.Sentiment) *Aggregator {
	if emotions == nil {
		emotions = lexicon.NewEmotionWordSets(nil)
	}
	if sentiment == nil {
		sentiment = lexicon.NewSentiment()
	}
	return &Aggregator{emotions: emotions, sentiment: sentiment}
}

// Compute aggregates words in one pass.
//
// Every word counts toward WordCount. A sentiment word type is counted the
// first time it appears: Count goes up by one and every (strength, polarity)
// reading of the word bumps its polarity, strength and joint buckets, so an
// ambiguous word fills several buckets. Emotion hits count per occurrence and
// go to the first matching category in the configured order.
func (a *Aggregator) Compute(words []string) DocStats {
	st := NewDocStats()

	for _, word := range words {
		st.WordCount++

		if entries, ok := a.sentiment.Lookup(word); ok {
			if _, seen := st.SentimentWords[word]; !seen {
				st.SentimentWords[word] = struct{}{}
				st.Sentiment.Count++
				for _, e := range entries {
					st.Sentiment.Polarity[e.Polarity]++
					st.Sentiment.Strength[e.Strength]++
					st.Sentiment.Joint[e.Polarity][e.Strength]++
				}
			}
		}

		if e, ok := a.emotions.Classify(word); ok {
			st.Emotion.Count++
			st.Emotion.ByEmotion[e]++
			st.EmotionWords[word] = struct{}{}
		}
	}

	return st
}

// Compute is a convenience for a one-off Aggregator.
func Compute(words []string, emotions *lexicon.EmotionWordSets, sentiment *lexicon.Sentiment) DocStats {
	return NewAggregator(emotions, sentiment).Compute(words)
}
