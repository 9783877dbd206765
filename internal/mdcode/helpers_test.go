package mdcode_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

type fence struct {
	lang string
	code string
}

// fences parses source as Markdown and returns its fenced code blocks.
func fences(t *testing.T, source []byte) []fence {
	t.Helper()

	root := goldmark.DefaultParser().Parse(text.NewReader(source))

	var res []fence

	err := ast.Walk(root, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		fcb, ok := node.(*ast.FencedCodeBlock)
		if !ok || !entering {
			return ast.WalkContinue, nil
		}

		var buff bytes.Buffer

		lines := fcb.Lines()
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			buff.Write(seg.Value(source))
		}

		res = append(res, fence{lang: string(fcb.Language(source)), code: buff.String()})

		return ast.WalkSkipChildren, nil
	})
	require.NoError(t, err)

	return res
}

var errConvert = errors.New("convert failed")

type failingConverter struct{}

func (failingConverter) Convert(_, _ []string) ([]string, error) {
	return nil, errConvert
}
