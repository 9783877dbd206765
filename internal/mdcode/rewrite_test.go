package mdcode_test

import (
	"testing"

	"github.com/ezerfernandes/mddoctest/internal/doctest"
	"github.com/ezerfernandes/mddoctest/internal/mdcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRewrite(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		code   string
		output string
		want   string
	}{
		{
			name:   "statements",
			code:   "x = 1\ny = 2\nx + y\n",
			output: "3",
			want:   "```python\n>>> x = 1\n>>> y = 2\n>>> x + y\n3\n```\n\n",
		},
		{
			name:   "blank lines dropped",
			code:   "\n\n  x = 1\n\n   \ny\n\t\n",
			output: "1",
			want:   "```python\n>>> x = 1\n>>> y\n1\n```\n\n",
		},
		{
			name:   "block",
			code:   "for i in range(2):\n    print(i)\n",
			output: "0\n    1",
			want:   "```python\n>>> for i in range(2):\n...     print(i)\n0\n1\n```\n\n",
		},
		{
			name:   "output keeps relative indentation",
			code:   "d\n",
			output: "{'a': 1,\n      'b': 2}",
			want:   "```python\n>>> d\n{'a': 1,\n  'b': 2}\n```\n\n",
		},
		{
			name:   "mixed tab and space indentation",
			code:   "x\n",
			output: "  a\n  \tb",
			want:   "```python\n>>> x\n    a\n\tb\n```\n\n",
		},
		{
			name:   "no common indentation with tabs",
			code:   "x\n",
			output: "\ta\n\t\tb",
			want:   "```python\n>>> x\n    \ta\n\t\tb\n```\n\n",
		},
		{
			name:   "whitespace only output line",
			code:   "print('a\\n\\nb')\n",
			output: "a\n  \n    b",
			want:   "```python\n>>> print('a\\n\\nb')\na\n\nb\n```\n\n",
		},
	}

	rw := &mdcode.Rewriter{Converter: doctest.Python{}}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := rw.Rewrite([]byte(tt.code), []byte(tt.output))
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestRewriteConverterError(t *testing.T) {
	t.Parallel()

	rw := &mdcode.Rewriter{Converter: failingConverter{}}

	_, err := rw.Rewrite([]byte("x\n"), []byte("1"))
	require.ErrorIs(t, err, errConvert)
}
