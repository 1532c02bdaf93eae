package internalerr

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"testing"
)

func TestTypedErrorsMatchSentinels(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"corpus", &CorpusLayoutError{Path: "/duc", Reason: "missing"}, ErrCorpusLayout},
		{"lexicon", &LexiconLoadError{Path: "/lex.tff", Err: fs.ErrNotExist}, ErrLexiconLoad},
		{"document", &DocumentParseError{Path: "/d01/AP1", Reason: "no text"}, ErrDocumentParse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("run: %w", tt.err)
			if !errors.Is(wrapped, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false", wrapped, tt.sentinel)
			}
			if errors.Is(wrapped, ErrNotFound) {
				t.Errorf("%v should not match ErrNotFound", wrapped)
			}
		})
	}
}

func TestLexiconLoadErrorUnwrap(t *testing.T) {
	err := &LexiconLoadError{Path: "/missing", Err: fs.ErrNotExist}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Error("LexiconLoadError should unwrap to its cause")
	}
	if !strings.Contains(err.Error(), "/missing") {
		t.Errorf("error message should name the path, got %q", err.Error())
	}

	var target *LexiconLoadError
	if !errors.As(fmt.Errorf("wrap: %w", err), &target) {
		t.Fatal("errors.As should find *LexiconLoadError")
	}
	if target.Path != "/missing" {
		t.Errorf("Path = %q, want /missing", target.Path)
	}
}

func TestDocumentParseErrorMessage(t *testing.T) {
	err := &DocumentParseError{Path: "/x.html", Reason: "missing body"}
	if got := err.Error(); got != "parse /x.html: missing body" {
		t.Errorf("Error() = %q", got)
	}
}
