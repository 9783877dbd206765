package mdcode

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/ezerfernandes/mddoctest/internal/doctest"
	"github.com/lithammer/dedent"
)

const (
	fenceOpen  = "```python\n"
	fenceClose = "\n```\n\n"
	indent     = "    "
)

// Rewriter turns a code/output pair into a single doctest-style fenced block.
type Rewriter struct {
	Converter doctest.Converter
}

// Rewrite returns the replacement text for a code capture and its output
// capture. Blank code lines are dropped; the output loses its indentation.
func (r *Rewriter) Rewrite(code, output []byte) ([]byte, error) {
	var lines []string

	for _, line := range strings.Split(strings.TrimSpace(string(code)), "\n") {
		if len(strings.TrimSpace(line)) != 0 {
			lines = append(lines, line)
		}
	}

	session, err := r.Converter.Convert(lines, nil)
	if err != nil {
		return nil, err
	}

	var buff bytes.Buffer

	buff.WriteString(fenceOpen)
	buff.WriteString(strings.Join(session, "\n"))
	buff.WriteString("\n")
	buff.WriteString(dedentOutput(indent + string(output)))
	buff.WriteString(fenceClose)

	return buff.Bytes(), nil
}

var reIndent = regexp.MustCompile(`(?m)^([ \t]*)[^ \t\n]`)

// dedentOutput removes the longest common leading whitespace of the lines of
// text. Indents mixing tabs and spaces share only their common prefix.
func dedentOutput(text string) string {
	text = dedent.Dedent(text)

	var margin string

	for i, sub := range reIndent.FindAllStringSubmatch(text, -1) {
		if i == 0 {
			margin = sub[1]
		} else {
			margin = commonPrefix(margin, sub[1])
		}
	}

	if len(margin) == 0 {
		return text
	}

	lines := strings.SplitAfter(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimPrefix(line, margin)
	}

	return strings.Join(lines, "")
}

func commonPrefix(a, b string) string {
	n := 0
	for n < len(a) && n < len(b) && a[n] == b[n] {
		n++
	}

	return a[:n]
}
