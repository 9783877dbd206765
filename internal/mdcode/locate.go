package mdcode

import (
	"bytes"
	"regexp"
)

// Match is one fenced Python block followed by its indented output.
// Start and End form the half-open byte span of the whole match in the
// source it was located in.
type Match struct {
	Start  int
	End    int
	Code   []byte
	Output []byte
}

// Locator finds code/output pairs in a Markdown document.
type Locator interface {
	// Locate returns the non-overlapping matches in source, ordered by Start.
	Locate(source []byte) []Match
}

var reCodeWithOutput = regexp.MustCompile("```python\\n([^`]+)```\\n{2,5}    ([^`]+?)\\n{2,}")

type regexpLocator struct {
	re *regexp.Regexp
}

// NewLocator returns a [Locator] matching a "```python" fenced block, 1 to 4
// blank lines, then a block indented by four spaces and ended by a blank line.
// Neither the code nor the output may contain a backtick and the code must
// not be blank.
func NewLocator() Locator { //nolint:ireturn
	return &regexpLocator{re: reCodeWithOutput}
}

func (l *regexpLocator) Locate(source []byte) []Match {
	var matches []Match

	for _, loc := range l.re.FindAllSubmatchIndex(source, -1) {
		code := source[loc[2]:loc[3]]
		if len(bytes.TrimSpace(code)) == 0 {
			continue
		}

		matches = append(matches, Match{
			Start:  loc[0],
			End:    loc[1],
			Code:   code,
			Output: source[loc[4]:loc[5]],
		})
	}

	return matches
}
