package cmd

import (
	"context"
	"log"

	"github.com/fatih/color"
	"github.com/roffe/godem/pkg/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "demtool",
	Short:        "AUTOSAR Dem DTC status byte analyzer",
	Long:         `Decodes ISO 14229 / AUTOSAR Dem DTC status bytes into their eight status bits and explains when each bit is set and cleared.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString(flagConfig)
		c, err := config.Load(path)
		if err != nil {
			return err
		}
		cfg = c
		if noColor, _ := cmd.Flags().GetBool(flagNoColor); noColor || cfg.NoColor {
			color.NoColor = true
		}
		if debug, _ := cmd.Flags().GetBool(flagDebug); debug {
			cfg.LogLevel = "debug"
		}
		return nil
	},
}

var cfg = config.Default()

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute(ctx context.Context) {
	rootCmd.ExecuteContext(ctx)
}

const (
	flagConfig  = "config"
	flagDebug   = "debug"
	flagNoColor = "no-color"
)

func init() {
	log.SetFlags(log.Lshortfile | log.LstdFlags)

	pf := rootCmd.PersistentFlags()
	pf.StringP(flagConfig, "c", "demtool.yaml", "config file")
	pf.BoolP(flagDebug, "d", false, "debug mode")
	pf.Bool(flagNoColor, false, "disable colored output")
}
