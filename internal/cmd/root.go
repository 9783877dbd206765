package cmd

import (
	_ "embed"
	"io"
	"os"

	"github.com/ezerfernandes/mddoctest/internal/mdcode"
	"github.com/spf13/cobra"
)

//go:embed help/root.md
var rootHelp string

type options struct {
	fsys        FS
	transformer *mdcode.Transformer
}

// Execute runs the command line with args and exits the process with status 1
// if it fails.
func Execute(args []string, stdout, stderr io.Writer) {
	root := rootCmd(&options{fsys: DirFS("."), transformer: mdcode.NewTransformer()})

	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{ //nolint:exhaustruct
		Use:          "mddoctest",
		Short:        "Convert Python code blocks with output into doctest blocks",
		Long:         rootHelp,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return convertRun(opts.fsys, opts.transformer, cmd.OutOrStdout())
		},

		DisableAutoGenTag: true,
	}

	return cmd
}
