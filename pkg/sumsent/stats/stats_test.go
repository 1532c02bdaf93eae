package stats

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/cognicore/sumsent/pkg/sumsent/internalerr"
	"github.com/cognicore/sumsent/pkg/sumsent/lexicon"
)

func scenarioLexicon() *lexicon.Sentiment {
	lex := lexicon.NewSentiment()
	lex.Add("lovely", lexicon.Entry{Strength: lexicon.StrongSubj, Polarity: lexicon.Positive})
	lex.Add("awful", lexicon.Entry{Strength: lexicon.WeakSubj, Polarity: lexicon.Negative})
	return lex
}

func TestComputeScenario(t *testing.T) {
	st := Compute([]string{"lovely", "awful", "awful", "neutral_word"}, nil, scenarioLexicon())

	checks := []struct {
		field Field
		want  int
	}{
		{WordCount, 4},
		{SentimentCount, 2},
		{PolarityField(lexicon.Positive), 1},
		{PolarityField(lexicon.Negative), 1},
		{StrengthField(lexicon.StrongSubj), 1},
		{StrengthField(lexicon.WeakSubj), 1},
		{JointField(lexicon.Positive, lexicon.StrongSubj), 1},
		{JointField(lexicon.Negative, lexicon.WeakSubj), 1},
		{JointField(lexicon.Negative, lexicon.StrongSubj), 0},
	}
	for _, c := range checks {
		if got := st.Value(c.field); got != c.want {
			t.Errorf("%s = %d, want %d", c.field, got, c.want)
		}
	}

	if diff := cmp.Diff([]string{"awful", "lovely"}, st.SortedSentimentWords()); diff != "" {
		t.Errorf("sentiment words (-want +got):\n%s", diff)
	}
}

func TestComputeUnknownWords(t *testing.T) {
	emotions := lexicon.NewEmotionWordSets(nil)
	emotions.Add(lexicon.Joy, "glee")

	st := Compute([]string{"table", "chair", "window"}, emotions, scenarioLexicon())

	if st.WordCount != 3 {
		t.Errorf("WordCount = %d, want 3", st.WordCount)
	}
	for _, f := range Fields() {
		if f.String() == WordCount.String() {
			continue
		}
		if got := st.Value(f); got != 0 {
			t.Errorf("%s = %d, want 0", f, got)
		}
	}
	if len(st.SentimentWords) != 0 || len(st.EmotionWords) != 0 {
		t.Error("contributor sets should be empty")
	}
}

func TestComputeEmotionFirstMatch(t *testing.T) {
	emotions := lexicon.NewEmotionWordSets(nil)
	emotions.Add(lexicon.Anger, "fury")
	emotions.Add(lexicon.Fear, "fury")
	emotions.Add(lexicon.Fear, "dread")

	st := Compute([]string{"fury", "dread", "fury"}, emotions, nil)

	if st.Emotion.Count != 3 {
		t.Errorf("emotion count = %d, want 3 (per occurrence)", st.Emotion.Count)
	}
	if got := st.Emotion.ByEmotion[lexicon.Anger]; got != 2 {
		t.Errorf("anger = %d, want 2: overlapping word goes to the first category", got)
	}
	if got := st.Emotion.ByEmotion[lexicon.Fear]; got != 1 {
		t.Errorf("fear = %d, want 1", got)
	}
	if diff := cmp.Diff([]string{"dread", "fury"}, st.SortedEmotionWords()); diff != "" {
		t.Errorf("emotion words (-want +got):\n%s", diff)
	}
}

func TestComputeAmbiguousWord(t *testing.T) {
	lex := lexicon.NewSentiment()
	lex.Add("mean", lexicon.Entry{Strength: lexicon.StrongSubj, Polarity: lexicon.Negative})
	lex.Add("mean", lexicon.Entry{Strength: lexicon.WeakSubj, Polarity: lexicon.Neutral})

	st := Compute([]string{"mean", "mean"}, nil, lex)

	if st.Sentiment.Count != 1 {
		t.Errorf("Count = %d, want 1 distinct type", st.Sentiment.Count)
	}
	if got := st.Sentiment.JointTotal(); got != 2 {
		t.Errorf("JointTotal = %d, want 2 (one per reading)", got)
	}
	if st.Sentiment.Joint[lexicon.Negative][lexicon.StrongSubj] != 1 || st.Sentiment.Joint[lexicon.Neutral][lexicon.WeakSubj] != 1 {
		t.Errorf("Joint = %v", st.Sentiment.Joint)
	}
}

func TestComputeInvariants(t *testing.T) {
	lex := lexicon.NewSentiment()
	lex.Add("grim", lexicon.Entry{Strength: lexicon.StrongSubj, Polarity: lexicon.Negative})
	lex.Add("hope", lexicon.Entry{Strength: lexicon.WeakSubj, Polarity: lexicon.Positive})
	lex.Add("odd", lexicon.Entry{Strength: lexicon.WeakSubj, Polarity: lexicon.Negative})
	lex.Add("odd", lexicon.Entry{Strength: lexicon.StrongSubj, Polarity: lexicon.Both})

	emotions := lexicon.NewEmotionWordSets(nil)
	emotions.Add(lexicon.Sadness, "grim")
	emotions.Add(lexicon.Joy, "hope")
	emotions.Add(lexicon.Surprise, "odd")
	emotions.Add(lexicon.Fear, "odd")

	words := []string{"grim", "hope", "the", "odd", "grim", "day", "hope", "odd"}
	st := Compute(words, emotions, lex)

	sum := 0
	for _, n := range st.Emotion.ByEmotion {
		sum += n
	}
	if sum != st.Emotion.Count {
		t.Errorf("sum of categories %d != emotion count %d", sum, st.Emotion.Count)
	}

	if st.Sentiment.JointTotal() > 2*st.WordCount {
		t.Errorf("joint total %d exceeds 2 x word count %d", st.Sentiment.JointTotal(), st.WordCount)
	}
	strengthTotal := st.Sentiment.Strength[lexicon.StrongSubj] + st.Sentiment.Strength[lexicon.WeakSubj]
	if strengthTotal != st.Sentiment.JointTotal() {
		t.Errorf("strength total %d != joint total %d", strengthTotal, st.Sentiment.JointTotal())
	}
}

func TestComputeOneStrengthBoundedByCount(t *testing.T) {
	lex := lexicon.NewSentiment()
	lex.Add("grim", lexicon.Entry{Strength: lexicon.StrongSubj, Polarity: lexicon.Negative})
	lex.Add("bliss", lexicon.Entry{Strength: lexicon.StrongSubj, Polarity: lexicon.Positive})
	lex.Add("meh", lexicon.Entry{Strength: lexicon.WeakSubj, Polarity: lexicon.Neutral})

	st := Compute([]string{"grim", "bliss", "meh", "grim"}, nil, lex)

	for _, s := range lexicon.Strengths() {
		sum := 0
		for _, p := range lexicon.Polarities() {
			sum += st.Sentiment.Joint[p][s]
		}
		if sum > st.Sentiment.Count {
			t.Errorf("%s polarity sum %d exceeds sentiment count %d", s, sum, st.Sentiment.Count)
		}
	}
}

func TestAggregatorReuse(t *testing.T) {
	agg := NewAggregator(nil, scenarioLexicon())

	first := agg.Compute([]string{"lovely"})
	second := agg.Compute([]string{"awful"})

	if first.Sentiment.Count != 1 || second.Sentiment.Count != 1 {
		t.Errorf("each Compute should start fresh: %d, %d", first.Sentiment.Count, second.Sentiment.Count)
	}
	if _, ok := second.SentimentWords["lovely"]; ok {
		t.Error("contributor sets must not leak across collections")
	}
}

func TestFields(t *testing.T) {
	fields := Fields()
	// word + sentiment + 4 polarities + 2 strengths + 8 joint + emotion + 6 categories
	if len(fields) != 23 {
		t.Errorf("len(Fields()) = %d, want 23", len(fields))
	}

	f, err := ParseField("negative_weaksubj_count")
	if err != nil {
		t.Fatal(err)
	}
	st := Compute([]string{"awful"}, nil, scenarioLexicon())
	if st.Value(f) != 1 {
		t.Errorf("negative_weaksubj_count = %d, want 1", st.Value(f))
	}

	if _, err := ParseField("polariy_count"); !errors.Is(err, internalerr.ErrInvalidInput) {
		t.Errorf("misspelled field should be rejected, got %v", err)
	}

	names := []string{"sentiment_count", "fear_count"}
	parsed, err := ParseFields(names)
	if err != nil {
		t.Fatal(err)
	}
	for i, f := range parsed {
		if f.String() != names[i] {
			t.Errorf("ParseFields[%d] = %s, want %s", i, f, names[i])
		}
	}
}

func TestRatio(t *testing.T) {
	st := Compute([]string{"lovely", "x", "y", "z"}, nil, scenarioLexicon())
	if got := st.Ratio(SentimentCount); got != 0.25 {
		t.Errorf("Ratio = %v, want 0.25", got)
	}
	if got := NewDocStats().Ratio(SentimentCount); got != 0 {
		t.Errorf("empty collection ratio = %v, want 0", got)
	}
}
