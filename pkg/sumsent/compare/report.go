package compare

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/cognicore/sumsent/pkg/sumsent/lexicon"
	"github.com/cognicore/sumsent/pkg/sumsent/stats"
)

// DefaultSentimentFields are the sentiment ratios reported by default.
func DefaultSentimentFields() []stats.Field {
	return []stats.Field{
		stats.SentimentCount,
		stats.PolarityField(lexicon.Negative),
		stats.JointField(lexicon.Negative, lexicon.WeakSubj),
		stats.JointField(lexicon.Negative, lexicon.StrongSubj),
		stats.PolarityField(lexicon.Positive),
		stats.JointField(lexicon.Positive, lexicon.WeakSubj),
		stats.JointField(lexicon.Positive, lexicon.StrongSubj),
	}
}

// DefaultEmotionFields are the emotion ratios reported by default.
func DefaultEmotionFields() []stats.Field {
	fields := []stats.Field{stats.EmotionCount}
	for _, e := range lexicon.Emotions() {
		fields = append(fields, stats.EmotionField(e))
	}
	return fields
}

// Summary describes the two ratio vectors of one field.
type Summary struct {
	Field     string  `json:"field"`
	N         int     `json:"n"`
	DocMean   float64 `json:"doc_mean"`
	DocStdDev float64 `json:"doc_stddev"`
	SumMean   float64 `json:"sum_mean"`
	SumStdDev float64 `json:"sum_stddev"`
	// MeanDiff is the mean of sums[i]-docs[i]; positive means summaries
	// over-represent the field.
	MeanDiff float64 `json:"mean_diff"`
}

// Summarize computes descriptive statistics for index-aligned ratio vectors.
func Summarize(field string, docs, sums []float64) Summary {
	s := Summary{Field: field, N: len(docs)}
	s.DocMean, s.DocStdDev = meanStdDev(docs)
	s.SumMean, s.SumStdDev = meanStdDev(sums)
	if len(docs) > 0 && len(docs) == len(sums) {
		diff := make([]float64, len(docs))
		floats.SubTo(diff, sums, docs)
		s.MeanDiff = stat.Mean(diff, nil)
	}
	return s
}

func meanStdDev(xs []float64) (mean, std float64) {
	switch len(xs) {
	case 0:
		return 0, 0
	case 1:
		return xs[0], 0
	}
	mean, std = stat.MeanStdDev(xs, nil)
	if math.IsNaN(std) {
		std = 0
	}
	return mean, std
}

// Row is one field's ratio vectors and their summary.
type Row struct {
	Field   string    `json:"field"`
	Docs    []float64 `json:"docs"`
	Sums    []float64 `json:"sums"`
	Summary Summary   `json:"summary"`
}

// Rows builds a Row per field.
func (v *Vectors) Rows(fields []stats.Field) []Row {
	rows := make([]Row, 0, len(fields))
	for _, f := range fields {
		docs, sums := v.Ratios(f)
		rows = append(rows, Row{
			Field:   f.String(),
			Docs:    docs,
			Sums:    sums,
			Summary: Summarize(f.String(), docs, sums),
		})
	}
	return rows
}

// RVector renders xs as an R vector literal, assigned to name when given:
//
//	docs_negative_count <- c(0.012, 0.02)
func RVector(name string, xs []float64) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.FormatFloat(x, 'g', -1, 64)
	}
	vec := "c(" + strings.Join(parts, ", ") + ")"
	if name == "" {
		return vec
	}
	return name + " <- " + vec
}

// WriteR writes docs_<field> and sums_<field> vectors for every row.
func WriteR(w io.Writer, rows []Row) error {
	for _, r := range rows {
		if _, err := fmt.Fprintln(w, RVector("docs_"+r.Field, r.Docs)); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, RVector("sums_"+r.Field, r.Sums)); err != nil {
			return err
		}
	}
	return nil
}
