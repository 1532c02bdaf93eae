package internalerr

import (
	"errors"
	"fmt"
)

// Sentinel errors for common cases
var (
	ErrNotFound      = errors.New("not found")
	ErrInvalidInput  = errors.New("invalid input")
	ErrInvalidConfig = errors.New("invalid configuration")
	ErrCorpusLayout  = errors.New("corpus layout")
	ErrLexiconLoad   = errors.New("lexicon load")
	ErrDocumentParse = errors.New("document parse")
)

// CorpusLayoutError reports a missing or malformed corpus root. Fatal.
type CorpusLayoutError struct {
	Path   string
	Reason string
	Err    error
}

func (e *CorpusLayoutError) Error() string {
	msg := fmt.Sprintf("corpus layout %s: %s", e.Path, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *CorpusLayoutError) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrCorpusLayout) match.
func (e *CorpusLayoutError) Is(target error) bool { return target == ErrCorpusLayout }

// LexiconLoadError reports a missing or unreadable lexicon or word list. Fatal.
type LexiconLoadError struct {
	Path string
	Err  error
}

func (e *LexiconLoadError) Error() string {
	return fmt.Sprintf("load lexicon %s: %v", e.Path, e.Err)
}

func (e *LexiconLoadError) Unwrap() error { return e.Err }

func (e *LexiconLoadError) Is(target error) bool { return target == ErrLexiconLoad }

// DocumentParseError reports a single malformed document or summary file.
// Callers recover from it by treating the file as contributing no sentences.
type DocumentParseError struct {
	Path   string
	Reason string
	Err    error
}

func (e *DocumentParseError) Error() string {
	msg := fmt.Sprintf("parse %s: %s", e.Path, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *DocumentParseError) Unwrap() error { return e.Err }

func (e *DocumentParseError) Is(target error) bool { return target == ErrDocumentParse }
