package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"qhfkit/pkg/qhf"
	"qhfkit/pkg/types"
)

var infoLatin1 bool

func init() {
	cmd := newInfoCmd()
	cmd.Flags().BoolVar(&infoLatin1, "latin1", false, "Re-decode non-UTF-8 strings as ISO 8859-1")
	rootCmd.AddCommand(cmd)
}

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <file.qhf>",
		Short: "Show QHF header metadata",
		Long: `The info command decodes a QHF archive and prints its header fields
and message count. The declared size and count come straight from the file
header and are informational; QHF writers record them inaccurately.

Example:
  qhfctl info history.qhf
  qhfctl info history.qhf --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(args[0])
		},
	}
}

func runInfo(path string) error {
	hist, err := qhf.Open(path, types.DecodeOptions{Latin1Fallback: infoLatin1})
	if err != nil {
		return err
	}
	h := hist.Header

	if jsonOut {
		return printJSON(map[string]interface{}{
			"version":        h.Version,
			"uin":            h.UIN,
			"nickname":       h.Nickname,
			"messages":       len(hist.Messages),
			"declared_size":  h.DeclaredSize,
			"declared_count": h.DeclaredCount,
		})
	}

	fmt.Printf("Version:        %d\n", h.Version)
	fmt.Printf("UIN:            %s\n", h.UIN)
	fmt.Printf("Nickname:       %s\n", h.Nickname)
	fmt.Printf("Messages:       %d\n", len(hist.Messages))
	fmt.Printf("Declared size:  %d (informational)\n", h.DeclaredSize)
	fmt.Printf("Declared count: %d (informational)\n", h.DeclaredCount)
	return nil
}
