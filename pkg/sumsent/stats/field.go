package stats

import (
	"fmt"

	"github.com/cognicore/sumsent/pkg/sumsent/internalerr"
	"github.com/cognicore/sumsent/pkg/sumsent/lexicon"
)

// Field names one numeric counter of DocStats.
type Field struct {
	name string
	get  func(*DocStats) int
}

func (f Field) String() string { return f.name }

// Value reads the field from s.
func (f Field) Value(s DocStats) int {
	if f.get == nil {
		return 0
	}
	return f.get(&s)
}

var (
	WordCount      = Field{"word_count", func(s *DocStats) int { return s.WordCount }}
	SentimentCount = Field{"sentiment_count", func(s *DocStats) int { return s.Sentiment.Count }}
	EmotionCount   = Field{"emotion_count", func(s *DocStats) int { return s.Emotion.Count }}
)

var (
	allFields   []Field
	fieldByName map[string]Field
)

func init() {
	allFields = append(allFields, WordCount, SentimentCount)
	for _, p := range lexicon.Polarities() {
		allFields = append(allFields, PolarityField(p))
	}
	for _, st := range lexicon.Strengths() {
		allFields = append(allFields, StrengthField(st))
	}
	for _, p := range lexicon.Polarities() {
		for _, st := range lexicon.Strengths() {
			allFields = append(allFields, JointField(p, st))
		}
	}
	allFields = append(allFields, EmotionCount)
	for _, e := range lexicon.Emotions() {
		allFields = append(allFields, EmotionField(e))
	}

	fieldByName = make(map[string]Field, len(allFields))
	for _, f := range allFields {
		fieldByName[f.name] = f
	}
}

// PolarityField counts readings with polarity p, e.g. "negative_count".
func PolarityField(p lexicon.Polarity) Field {
	return Field{p.String() + "_count", func(s *DocStats) int { return s.Sentiment.Polarity[p] }}
}

// StrengthField counts readings with strength st, e.g. "weaksubj_count".
func StrengthField(st lexicon.Strength) Field {
	return Field{st.String() + "_count", func(s *DocStats) int { return s.Sentiment.Strength[st] }}
}

// JointField counts readings with both p and st, e.g. "negative_weaksubj_count".
func JointField(p lexicon.Polarity, st lexicon.Strength) Field {
	return Field{p.String() + "_" + st.String() + "_count", func(s *DocStats) int { return s.Sentiment.Joint[p][st] }}
}

// EmotionField counts hits for category e, e.g. "fear_count".
func EmotionField(e lexicon.Emotion) Field {
	return Field{e.String() + "_count", func(s *DocStats) int { return s.Emotion.ByEmotion[e] }}
}

// Fields returns every field in a stable order.
func Fields() []Field {
	return append([]Field(nil), allFields...)
}

// ParseField looks a field up by name.
func ParseField(name string) (Field, error) {
	f, ok := fieldByName[name]
	if !ok {
		return Field{}, fmt.Errorf("%w: unknown field %q", internalerr.ErrInvalidInput, name)
	}
	return f, nil
}

// ParseFields looks up each name in order.
func ParseFields(names []string) ([]Field, error) {
	out := make([]Field, 0, len(names))
	for _, n := range names {
		f, err := ParseField(n)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}

// Value reads a field of s; it mirrors Field.Value for call sites that hold
// the stats first.
func (s DocStats) Value(f Field) int {
	return f.Value(s)
}

// Ratio is the field's count per word, 0 for an empty collection.
func (s DocStats) Ratio(f Field) float64 {
	if s.WordCount == 0 {
		return 0
	}
	return float64(f.Value(s)) / float64(s.WordCount)
}
