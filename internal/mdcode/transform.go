package mdcode

import (
	"bytes"
	"fmt"

	"github.com/ezerfernandes/mddoctest/internal/doctest"
)

// Transformer rewrites every located code/output pair of a document.
type Transformer struct {
	Locator  Locator
	Rewriter *Rewriter
}

// NewTransformer returns a [Transformer] using [NewLocator] and the Python
// prompt rules of [doctest.Python].
func NewTransformer() *Transformer {
	return &Transformer{
		Locator:  NewLocator(),
		Rewriter: &Rewriter{Converter: doctest.Python{}},
	}
}

// Transform returns the rewritten document and the number of converted
// blocks. Text outside the matched spans is copied unchanged.
func (t *Transformer) Transform(source []byte) ([]byte, int, error) {
	matches := t.Locator.Locate(source)

	edits := make([]Edit, 0, len(matches))

	for _, match := range matches {
		text, err := t.Rewriter.Rewrite(match.Code, match.Output)
		if err != nil {
			return nil, 0, fmt.Errorf("line %d: %w", lineAt(source, match.Start), err)
		}

		edits = append(edits, Edit{Start: match.Start, End: match.End, Text: text})
	}

	result, err := Apply(source, edits)
	if err != nil {
		return nil, 0, err
	}

	return result, len(matches), nil
}

// lineAt returns the 1-based line of offset in source.
func lineAt(source []byte, offset int) int {
	return bytes.Count(source[:min(offset, len(source))], []byte("\n")) + 1
}
