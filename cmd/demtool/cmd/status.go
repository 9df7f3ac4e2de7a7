package cmd

import (
	"fmt"

	"github.com/k0kubun/go-ansi"
	"github.com/roffe/godem/pkg/dem"
	"github.com/roffe/godem/pkg/report"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(statusCmd)
}

var statusCmd = &cobra.Command{
	Use:   "status <byte>...",
	Short: "decode one or more DTC status bytes",
	Long:  `Decodes hex status bytes (with or without 0x prefix) and prints the full per-bit analysis.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w := ansi.NewAnsiStdout()
		for i, arg := range args {
			s, err := dem.ParseStatusString(arg)
			if err != nil {
				return err
			}
			if i > 0 {
				fmt.Fprintln(w)
			}
			report.Analysis(w, s.Decode())
		}
		return nil
	},
}
