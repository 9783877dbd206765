package cmd

import (
	"fmt"
	"io"
	"io/fs"

	"github.com/ezerfernandes/mddoctest/internal/mdcode"
	"github.com/rodaine/table"
)

const (
	mdPattern = "*.md"
	fileMode  = 0o644
)

type fileResult struct {
	name   string
	blocks int
}

func convertRun(fsys FS, transformer *mdcode.Transformer, out io.Writer) error {
	names, err := markdownFiles(fsys)
	if err != nil {
		return err
	}

	results := make([]fileResult, 0, len(names))

	for _, name := range names {
		blocks, err := convertFile(fsys, transformer, name)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}

		results = append(results, fileResult{name: name, blocks: blocks})
	}

	printSummary(out, results)

	return nil
}

// convertFile rewrites one file in place, even when no block was converted.
func convertFile(fsys FS, transformer *mdcode.Transformer, name string) (int, error) {
	src, err := fs.ReadFile(fsys, name)
	if err != nil {
		return 0, err
	}

	result, blocks, err := transformer.Transform(src)
	if err != nil {
		return 0, err
	}

	if err := fsys.WriteFile(name, result, fileMode); err != nil {
		return 0, err
	}

	return blocks, nil
}

func printSummary(out io.Writer, results []fileResult) {
	if len(results) == 0 {
		return
	}

	tbl := table.New("FILE", "BLOCKS").WithWriter(out)

	for _, res := range results {
		tbl.AddRow(res.name, res.blocks)
	}

	tbl.Print()
}
