package main

import (
	"os"

	"github.com/spf13/cobra"

	"qhfkit/internal/convert"
	"qhfkit/pkg/types"
)

var (
	dumpFormat string
	dumpLatin1 bool
)

func init() {
	cmd := newDumpCmd()
	cmd.Flags().StringVarP(&dumpFormat, "format", "f", "json", "Output format (json, txt)")
	cmd.Flags().BoolVar(&dumpLatin1, "latin1", false, "Re-decode non-UTF-8 strings as ISO 8859-1")
	rootCmd.AddCommand(cmd)
}

func newDumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump <file.qhf>",
		Short: "Decode a QHF archive and print it to stdout",
		Long: `The dump command decodes one QHF archive and writes the rendered
history to stdout.

Example:
  qhfctl dump history.qhf
  qhfctl dump history.qhf -f txt
  qhfctl dump history.qhf -f json > history.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(args[0])
		},
	}
}

func runDump(path string) error {
	f, err := convert.ParseFormat(dumpFormat)
	if err != nil {
		return err
	}
	out, err := convert.Render(path, convert.Options{
		Format: f,
		Decode: types.DecodeOptions{Latin1Fallback: dumpLatin1},
	})
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(append(out, '\n'))
	return err
}
