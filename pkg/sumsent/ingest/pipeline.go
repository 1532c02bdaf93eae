package ingest

// Pipeline orchestrates the extraction flow:
// file → sentences → word tokens
type Pipeline struct {
	extractor *Extractor
	tokenizer *Tokenizer
}

// NewPipeline creates an extraction pipeline with the given components
func NewPipeline(extractor *Extractor, tokenizer *Tokenizer) *Pipeline {
	return &Pipeline{
		extractor: extractor,
		tokenizer: tokenizer,
	}
}

// Extractor returns the pipeline's extractor.
func (p *Pipeline) Extractor() *Extractor { return p.extractor }

// ParseCount records how many files of a collection were parsed or skipped.
type ParseCount struct {
	Parsed int `json:"parsed"`
	Failed int `json:"failed"`
	// FailedPaths lists skipped files in processing order.
	FailedPaths []string `json:"failed_paths,omitempty"`
}

// Total is the number of files attempted.
func (c ParseCount) Total() int { return c.Parsed + c.Failed }

// Record adds one extraction outcome.
func (c *ParseCount) Record(r Result) {
	if r.Failed() {
		c.Failed++
		c.FailedPaths = append(c.FailedPaths, r.Path)
		return
	}
	c.Parsed++
}

// FileWords returns the words of one file and the extraction result.
// A failed file contributes no words.
func (p *Pipeline) FileWords(path string, kind Kind) ([]string, Result) {
	res := p.extractor.Extract(path, kind)
	if res.Failed() {
		return nil, res
	}
	return p.tokenizer.Words(res.Sentences), res
}

// CollectionWords concatenates the words of every file in paths, in order.
// Files that fail to parse are skipped and counted; the rest still contribute.
func (p *Pipeline) CollectionWords(paths []string, kind Kind) ([]string, ParseCount) {
	var words []string
	var count ParseCount
	for _, path := range paths {
		w, res := p.FileWords(path, kind)
		count.Record(res)
		words = append(words, w...)
	}
	return words, count
}
