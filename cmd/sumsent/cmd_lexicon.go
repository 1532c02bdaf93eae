package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var lexiconFlags struct {
	word string
}

var lexiconCmd = &cobra.Command{
	Use:   "lexicon",
	Short: "Summarize the loaded lexicons or look up one word",
	RunE:  runLexicon,
}

func init() {
	lexiconCmd.Flags().StringVar(&lexiconFlags.word, "word", "", "Show the sentiment readings and emotion categories of one word")
}

func runLexicon(cmd *cobra.Command, _ []string) error {
	comp, _, err := loadComponents(nil)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if lexiconFlags.word != "" {
		word := strings.ToLower(lexiconFlags.word)
		entries, ok := comp.Sentiment.Lookup(word)
		if !ok {
			fmt.Fprintf(out, "%s: not in sentiment lexicon\n", word)
		}
		for _, e := range entries {
			fmt.Fprintf(out, "%s: %s (score %+d)\n", word, e, e.Score())
		}
		emotions := comp.Emotions.EmotionsOf(word)
		if len(emotions) == 0 {
			fmt.Fprintf(out, "%s: no emotion category\n", word)
			return nil
		}
		names := make([]string, len(emotions))
		for i, e := range emotions {
			names[i] = e.String()
		}
		first, _ := comp.Emotions.Classify(word)
		fmt.Fprintf(out, "%s: emotions %s (counted as %s)\n", word, strings.Join(names, ", "), first)
		return nil
	}

	st := comp.Sentiment.Stats()
	fmt.Fprintf(out, "Sentiment words:  %d\n", st.Words)
	fmt.Fprintf(out, "Entries:          %d\n", st.Entries)
	fmt.Fprintf(out, "Ambiguous words:  %d\n", st.Ambiguous)
	fmt.Fprintf(out, "Skipped lines:    %d\n", st.Skipped)
	fmt.Fprintf(out, "Emotion words:\n")
	for _, e := range comp.Emotions.Order() {
		fmt.Fprintf(out, "  %-9s %d\n", e.String()+":", len(comp.Emotions.Words(e)))
	}
	overlaps := comp.Emotions.Overlaps()
	fmt.Fprintf(out, "Overlapping words: %d\n", len(overlaps))
	for _, w := range overlaps {
		first, _ := comp.Emotions.Classify(w)
		fmt.Fprintf(out, "  %s -> %s\n", w, first)
	}
	return nil
}
