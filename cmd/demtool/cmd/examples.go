package cmd

import (
	"fmt"

	"github.com/k0kubun/go-ansi"
	"github.com/manifoldco/promptui"
	"github.com/roffe/godem/pkg/dem"
	"github.com/roffe/godem/pkg/report"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(examplesCmd)
}

// demo values with successively more bits set, purely illustrative
var exampleValues = []dem.Status{0x00, 0x01, 0x03, 0x07, 0x0F, 0xFF}

var examplesCmd = &cobra.Command{
	Use:   "examples",
	Short: "pick a demo status byte and decode it",
	RunE: func(cmd *cobra.Command, args []string) error {
		items := make([]string, len(exampleValues))
		for i, s := range exampleValues {
			items[i] = fmt.Sprintf("0x%02X  %s", uint8(s), s)
		}
		prompt := promptui.Select{
			Label:    "Example status byte",
			HideHelp: true,
			Items:    items,
		}
		i, _, err := prompt.Run()
		if err != nil {
			return fmt.Errorf("prompt failed %v", err)
		}
		report.Analysis(ansi.NewAnsiStdout(), exampleValues[i].Decode())
		return nil
	},
}
