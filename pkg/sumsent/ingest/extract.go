package ingest

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/net/html"

	"github.com/cognicore/sumsent/internal/logging"
	"github.com/cognicore/sumsent/pkg/sumsent/internalerr"
)

// DefaultTextTag is the element that wraps a source document's body.
const DefaultTextTag = "text"

// Kind says how a file's text is laid out.
type Kind int

const (
	// KindDocument files hold their body inside a single text element.
	KindDocument Kind = iota
	// KindSummary files are link-annotated extracts; the anchor labels are the text.
	KindSummary
)

func (k Kind) String() string {
	switch k {
	case KindDocument:
		return "document"
	case KindSummary:
		return "summary"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind maps "document"/"doc" and "summary"/"sum" to a Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(s) {
	case "document", "doc":
		return KindDocument, nil
	case "summary", "sum":
		return KindSummary, nil
	}
	return 0, fmt.Errorf("%w: kind %q", internalerr.ErrInvalidInput, s)
}

// Result is the outcome of extracting one file. A failed result carries a
// *internalerr.DocumentParseError and no sentences.
type Result struct {
	Path      string
	Kind      Kind
	Sentences []string
	Err       error
}

// Parsed reports whether extraction succeeded.
func (r Result) Parsed() bool { return r.Err == nil }

// Failed reports whether extraction failed.
func (r Result) Failed() bool { return r.Err != nil }

// Extractor turns document and summary files into sentences.
type Extractor struct {
	segmenter *Segmenter
	textTag   string
	logger    *slog.Logger
}

// NewExtractor creates an extractor that splits text with the given segmenter.
func NewExtractor(seg *Segmenter) *Extractor {
	return &Extractor{
		segmenter: seg,
		textTag:   DefaultTextTag,
		logger:    logging.New("extract"),
	}
}

// SetTextTag overrides the element holding document text.
func (e *Extractor) SetTextTag(tag string) {
	if tag != "" {
		e.textTag = strings.ToLower(tag)
	}
}

// Extract reads a file and returns its sentences. Parse failures are logged
// with the offending path and returned as a failed Result; they never panic
// or abort the caller.
func (e *Extractor) Extract(path string, kind Kind) Result {
	res := Result{Path: path, Kind: kind}

	data, err := os.ReadFile(path)
	if err != nil {
		return e.fail(res, "read failed", err)
	}

	var text string
	switch kind {
	case KindDocument:
		text, err = DocumentText(bytes.NewReader(data), e.textTag)
	case KindSummary:
		text, err = SummaryText(data)
	default:
		err = fmt.Errorf("unknown kind %v", kind)
	}
	if err != nil {
		return e.fail(res, "malformed "+kind.String(), err)
	}

	res.Sentences = e.segmenter.Split(text)
	return res
}

// ExtractSentences returns the file's sentences, or none if it cannot be parsed.
func (e *Extractor) ExtractSentences(path string, kind Kind) []string {
	return e.Extract(path, kind).Sentences
}

func (e *Extractor) fail(res Result, reason string, err error) Result {
	res.Err = &internalerr.DocumentParseError{Path: res.Path, Reason: reason, Err: err}
	res.Sentences = nil
	e.logger.Warn("trouble parsing file", "path", res.Path, "kind", res.Kind.String(), "error", err)
	return res
}

// DocumentText returns the whitespace-normalized text of the first element
// named tag. Only the element's direct children that resolve to a single
// string contribute.
func DocumentText(r io.Reader, tag string) (string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return "", err
	}

	node := findElement(doc, strings.ToLower(tag))
	if node == nil {
		return "", fmt.Errorf("no <%s> element", tag)
	}

	var parts []string
	for c := node.FirstChild; c != nil; c = c.NextSibling {
		if s, ok := nodeString(c); ok {
			parts = append(parts, s)
		}
	}
	return NormalizeWhitespace(strings.Join(parts, " ")), nil
}

// SummaryText joins the labels of every <a href> inside the summary's body.
// The file must declare a body.
func SummaryText(data []byte) (string, error) {
	if !bytes.Contains(bytes.ToLower(data), []byte("<body")) {
		return "", fmt.Errorf("no <body> element")
	}

	doc, err := html.Parse(bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	body := findElement(doc, "body")
	if body == nil {
		return "", fmt.Errorf("no <body> element")
	}

	var parts []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" && hasAttr(n, "href") {
			if s, ok := nodeString(n); ok {
				parts = append(parts, s)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(body)

	return strings.Join(parts, " "), nil
}

// NormalizeWhitespace collapses whitespace runs to single spaces and trims.
func NormalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func findElement(n *html.Node, name string) *html.Node {
	if n.Type == html.ElementNode && n.Data == name {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, name); found != nil {
			return found
		}
	}
	return nil
}

// nodeString resolves a node to a single string: a text node is its own
// string, and an element with exactly one child resolves to that child's string.
func nodeString(n *html.Node) (string, bool) {
	switch n.Type {
	case html.TextNode:
		return n.Data, true
	case html.ElementNode:
		if n.FirstChild != nil && n.FirstChild == n.LastChild {
			return nodeString(n.FirstChild)
		}
	}
	return "", false
}

func hasAttr(n *html.Node, key string) bool {
	for _, a := range n.Attr {
		if a.Key == key {
			return true
		}
	}
	return false
}
