package cmd

import (
	"fmt"
	"strconv"

	"github.com/k0kubun/go-ansi"
	"github.com/roffe/godem/pkg/dem"
	"github.com/roffe/godem/pkg/report"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(bitsCmd)
}

var bitsCmd = &cobra.Command{
	Use:   "bits [bit]",
	Short: "show the status bit transition rules",
	Long:  `Without arguments prints the set/clear transition rules for all 8 status bits; with a bit number (0-7) prints the full detail for that bit.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w := ansi.NewAnsiStdout()
		if len(args) == 0 {
			report.Reference(w, dem.Bits())
			return nil
		}
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid bit number %q, expected 0-7", args[0])
		}
		def, err := dem.Lookup(n)
		if err != nil {
			return err
		}
		report.BitDetail(w, def)
		return nil
	},
}
