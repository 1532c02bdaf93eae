package lexicon

import (
	"fmt"
	"strings"

	"github.com/cognicore/sumsent/pkg/sumsent/internalerr"
)

// Strength is the subjectivity strength of a lexicon clue.
type Strength uint8

const (
	StrongSubj Strength = iota
	WeakSubj
)

// NumStrengths sizes arrays indexed by Strength.
const NumStrengths = 2

var strengthNames = [NumStrengths]string{"strongsubj", "weaksubj"}

func (s Strength) String() string {
	if int(s) < len(strengthNames) {
		return strengthNames[s]
	}
	return fmt.Sprintf("Strength(%d)", s)
}

// Strengths returns every strength in index order.
func Strengths() []Strength {
	return []Strength{StrongSubj, WeakSubj}
}

// ParseStrength accepts the lexicon's long tokens and the short MPQA aliases.
func ParseStrength(tok string) (Strength, error) {
	switch strings.ToLower(tok) {
	case "strongsubj", "strong":
		return StrongSubj, nil
	case "weaksubj", "weak":
		return WeakSubj, nil
	}
	return 0, fmt.Errorf("%w: strength %q", internalerr.ErrInvalidInput, tok)
}

// Polarity is the prior polarity of a lexicon clue.
type Polarity uint8

const (
	Positive Polarity = iota
	Negative
	Neutral
	Both
)

// NumPolarities sizes arrays indexed by Polarity.
const NumPolarities = 4

var polarityNames = [NumPolarities]string{"positive", "negative", "neutral", "both"}

func (p Polarity) String() string {
	if int(p) < len(polarityNames) {
		return polarityNames[p]
	}
	return fmt.Sprintf("Polarity(%d)", p)
}

// Polarities returns every polarity in index order.
func Polarities() []Polarity {
	return []Polarity{Positive, Negative, Neutral, Both}
}

// ParsePolarity accepts the lexicon's long tokens and the short MPQA aliases.
func ParsePolarity(tok string) (Polarity, error) {
	switch strings.ToLower(tok) {
	case "positive", "pos":
		return Positive, nil
	case "negative", "neg":
		return Negative, nil
	case "neutral", "neut":
		return Neutral, nil
	case "both":
		return Both, nil
	}
	return 0, fmt.Errorf("%w: polarity %q", internalerr.ErrInvalidInput, tok)
}

// Entry is one (strength, polarity) reading of a lexicon word.
type Entry struct {
	Strength Strength
	Polarity Polarity
}

func (e Entry) String() string {
	return e.Polarity.String() + "_" + e.Strength.String()
}

// Score is the signed clue value: weak clues weigh 1, strong clues 2, and
// anything that is not positive counts as negative.
func (e Entry) Score() int {
	v := 1
	if e.Strength == StrongSubj {
		v = 2
	}
	if e.Polarity != Positive {
		v = -v
	}
	return v
}

// Emotion is one of the fixed affect categories.
type Emotion uint8

const (
	Anger Emotion = iota
	Disgust
	Fear
	Joy
	Sadness
	Surprise
)

// NumEmotions sizes arrays indexed by Emotion.
const NumEmotions = 6

var emotionNames = [NumEmotions]string{"anger", "disgust", "fear", "joy", "sadness", "surprise"}

func (e Emotion) String() string {
	if int(e) < len(emotionNames) {
		return emotionNames[e]
	}
	return fmt.Sprintf("Emotion(%d)", e)
}

// Emotions returns the categories in their fixed classification order.
func Emotions() []Emotion {
	return []Emotion{Anger, Disgust, Fear, Joy, Sadness, Surprise}
}

// ParseEmotion maps a category name to its Emotion.
func ParseEmotion(name string) (Emotion, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range emotionNames {
		if n == name {
			return Emotion(i), nil
		}
	}
	return 0, fmt.Errorf("%w: emotion %q", internalerr.ErrInvalidInput, name)
}
