package doctest

import (
	"fmt"
	"regexp"
	"strings"
)

var reClause = regexp.MustCompile(`^(else|elif|except|finally)\b`)

// Python is a [Converter] following the prompt rules of the Python
// interactive interpreter. A line continues the current statement when it is
// indented, starts with a clause keyword, or follows a line that leaves
// brackets or a string open, ends with a backslash or a colon,
// or is a decorator. Any other line starts a new statement.
type Python struct{}

// Convert implements [Converter].
func (Python) Convert(lines, context []string) ([]string, error) {
	res := context

	var (
		prev lineState
		lex  lexer
	)

	for i, line := range lines {
		if len(strings.TrimSpace(line)) == 0 {
			return nil, fmt.Errorf("line %d: %w", i+1, ErrBlankLine)
		}

		prompt := PS1
		if i > 0 && continues(prev, line) {
			prompt = PS2
		}

		res = append(res, prompt+line)

		prev = lex.scan(line)
	}

	return res, nil
}

func continues(prev lineState, line string) bool {
	if prev.open() || prev.decorator {
		return true
	}

	if line[0] == ' ' || line[0] == '\t' {
		return true
	}

	return reClause.MatchString(line)
}

// lineState is the lexical state left behind by one line.
type lineState struct {
	depth     int
	quote     string
	last      byte
	decorator bool
}

func (s lineState) open() bool {
	return s.depth > 0 || len(s.quote) != 0 || s.last == '\\' || s.last == ':'
}

// lexer tracks bracket depth and open strings across lines.
type lexer struct {
	depth int
	quote string
}

func (l *lexer) scan(line string) lineState {
	state := lineState{
		decorator: l.depth == 0 && len(l.quote) == 0 && strings.HasPrefix(line, "@"),
	}

	for i := 0; i < len(line); {
		if len(l.quote) != 0 {
			i = l.skipOpen(line, i)
			if len(l.quote) == 0 {
				state.last = line[i-1]
			}

			continue
		}

		c := line[i]

		switch c {
		case '#':
			i = len(line)

			continue
		case '"', '\'':
			if triple := strings.Repeat(string(c), 3); strings.HasPrefix(line[i:], triple) {
				l.quote = triple
				i += len(triple)

				continue
			}

			end, open := skipShort(line, i)
			if open {
				l.quote = string(c)
			}

			i = end
			state.last = c

			continue
		case '(', '[', '{':
			l.depth++
		case ')', ']', '}':
			if l.depth > 0 {
				l.depth--
			}
		}

		if c != ' ' && c != '\t' && c != '\r' {
			state.last = c
		}

		i++
	}

	state.depth = l.depth
	state.quote = l.quote

	return state
}

// skipOpen advances through the body of a string left open by a previous
// line and returns the index just past its closing quote, or len(line). A
// single-quoted string stays open only while its lines end with a backslash.
func (l *lexer) skipOpen(line string, i int) int {
	for i < len(line) {
		switch {
		case line[i] == '\\':
			if i == len(line)-1 {
				return len(line)
			}

			i += 2
		case strings.HasPrefix(line[i:], l.quote):
			end := i + len(l.quote)
			l.quote = ""

			return end
		default:
			i++
		}
	}

	if len(l.quote) == 1 {
		l.quote = ""
	}

	return len(line)
}

// skipShort returns the index just past the single-quoted string starting at
// i. The bool reports whether the string continues on the next line because
// the line ends with a backslash inside it.
func skipShort(line string, i int) (int, bool) {
	quote := line[i]

	for i++; i < len(line); i++ {
		switch line[i] {
		case '\\':
			if i == len(line)-1 {
				return len(line), true
			}

			i++
		case quote:
			return i + 1, false
		}
	}

	return len(line), false
}
