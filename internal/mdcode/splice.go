package mdcode

import (
	"errors"
	"fmt"
)

// Edit replaces the half-open byte span [Start, End) of a source with Text.
type Edit struct {
	Start int
	End   int
	Text  []byte
}

var (
	// ErrOverlappingEdits is returned by [Apply] when edits are unordered or overlap.
	ErrOverlappingEdits = errors.New("overlapping edits")
	// ErrEditOutOfRange is returned by [Apply] when an edit span is outside the source.
	ErrEditOutOfRange = errors.New("edit out of range")
)

// Apply returns a new buffer with edits applied to source. Edits must be
// ordered by Start and must not overlap; they are applied from the last to the
// first so every span keeps addressing the original source. source is not
// modified.
func Apply(source []byte, edits []Edit) ([]byte, error) {
	resSize := len(source)
	prev := 0

	for i, edit := range edits {
		if edit.Start < 0 || edit.End < edit.Start || edit.End > len(source) {
			return nil, fmt.Errorf("edit %d [%d,%d): %w", i, edit.Start, edit.End, ErrEditOutOfRange)
		}

		if edit.Start < prev {
			return nil, fmt.Errorf("edit %d [%d,%d): %w", i, edit.Start, edit.End, ErrOverlappingEdits)
		}

		prev = edit.End
		resSize += len(edit.Text) - (edit.End - edit.Start)
	}

	result := make([]byte, resSize)

	resIdx, srcIdx := resSize, len(source)

	for i := len(edits) - 1; i >= 0; i-- {
		edit := edits[i]

		resIdx -= srcIdx - edit.End
		copy(result[resIdx:], source[edit.End:srcIdx])

		resIdx -= len(edit.Text)
		copy(result[resIdx:], edit.Text)

		srcIdx = edit.Start
	}

	copy(result, source[:srcIdx])

	return result, nil
}
