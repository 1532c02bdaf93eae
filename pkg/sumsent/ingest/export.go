package ingest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ExportSentences writes <outDir>/<basename>.txt for every document, one
// sentence per line, for manual annotation. Documents that fail to parse
// produce an empty file. It returns the number of files written.
func ExportSentences(ex *Extractor, docs []string, kind Kind, outDir string) (int, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return 0, fmt.Errorf("create %s: %w", outDir, err)
	}

	written := 0
	for _, doc := range docs {
		sents := ex.ExtractSentences(doc, kind)

		var b strings.Builder
		for _, s := range sents {
			b.WriteString(s)
			b.WriteByte('\n')
		}

		out := filepath.Join(outDir, filepath.Base(doc)+".txt")
		if err := os.WriteFile(out, []byte(b.String()), 0o644); err != nil {
			return written, fmt.Errorf("write %s: %w", out, err)
		}
		written++
	}
	return written, nil
}
