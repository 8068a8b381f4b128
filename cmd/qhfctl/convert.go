package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"qhfkit/internal/convert"
	"qhfkit/pkg/types"
)

var (
	convertFormat string
	convertLatin1 bool
	convertJobs   int
)

func init() {
	cmd := newConvertCmd()
	cmd.Flags().StringVarP(&convertFormat, "format", "f", "json", "Output format (json, txt)")
	cmd.Flags().BoolVar(&convertLatin1, "latin1", false, "Re-decode non-UTF-8 strings as ISO 8859-1")
	cmd.Flags().IntVar(&convertJobs, "jobs", 0, "Max concurrent conversions in directory mode (0 = number of CPUs)")
	rootCmd.AddCommand(cmd)
}

func newConvertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert <input> [output]",
		Short: "Convert a QHF file or a directory of QHF files",
		Long: `The convert command exports QHF archives to JSON or plain text.
With a file input it writes one output file, or stdout when the output is
omitted. With a directory input it converts every *.qhf file inside;
files that fail to decode are reported and skipped without aborting the
rest of the run.

Example:
  qhfctl convert history.qhf history.json
  qhfctl convert history.qhf -f txt > history.txt
  qhfctl convert histories/ exported/ -f txt --jobs 4`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd.Context(), args)
		},
	}
}

func runConvert(ctx context.Context, args []string) error {
	f, err := convert.ParseFormat(convertFormat)
	if err != nil {
		return err
	}
	opts := convert.Options{
		Format: f,
		Decode: types.DecodeOptions{Latin1Fallback: convertLatin1},
		Jobs:   convertJobs,
		Logger: newLogger(),
	}

	inPath := args[0]
	info, err := os.Stat(inPath)
	if err != nil {
		return err
	}

	if info.IsDir() {
		outDir := "qhf_" + string(f) + "_output"
		if len(args) > 1 {
			outDir = args[1]
		}
		return runConvertDir(ctx, inPath, outDir, opts)
	}

	if len(args) > 1 {
		return convert.File(inPath, args[1], opts)
	}
	out, err := convert.Render(inPath, opts)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(append(out, '\n'))
	return err
}

func runConvertDir(ctx context.Context, inDir, outDir string, opts convert.Options) error {
	sum, err := convert.Dir(ctx, inDir, outDir, opts)
	if err != nil {
		return err
	}
	if jsonOut {
		if err := printJSON(map[string]interface{}{
			"input":     inDir,
			"output":    outDir,
			"format":    string(opts.Format),
			"found":     sum.Found,
			"converted": sum.Converted,
			"failed":    sum.Failed,
		}); err != nil {
			return err
		}
	} else {
		printInfo("Converted %d of %d files into %s\n", sum.Converted, sum.Found, outDir)
	}
	if sum.Failed > 0 {
		return fmt.Errorf("%d of %d files failed to convert", sum.Failed, sum.Found)
	}
	return nil
}
