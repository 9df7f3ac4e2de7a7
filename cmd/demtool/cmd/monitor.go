package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/jroimartin/gocui"
	"github.com/roffe/godem/cmd/demtool/pkg/ui"
	"github.com/roffe/godem/pkg/dem"
	"github.com/roffe/godem/pkg/report"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(monitorCmd)
}

var input = &ui.Input{
	Name:      "input",
	Title:     "Status byte (hex)",
	X:         0,
	Y:         0,
	W:         25,
	MaxLength: 4,
}

var history []string

var monitorCmd = &cobra.Command{
	Use:   "monitor",
	Short: "interactive status byte analyzer",
	Long:  `Opens an interactive analyzer: type a hex status byte, press Enter and read the per-bit breakdown. Previously analyzed values are kept in the history pane.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := gocui.NewGui(gocui.OutputNormal)
		if err != nil {
			return err
		}
		g.Cursor = true
		defer g.Close()

		// gocui views don't interpret ANSI sequences
		color.NoColor = true

		g.SetManagerFunc(layout)

		if err := initKeybindings(g); err != nil {
			return err
		}

		if err := g.MainLoop(); err != nil && err != gocui.ErrQuit {
			return err
		}
		return nil
	},
}

func layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()

	if err := input.Layout(g); err != nil {
		return err
	}
	if v, err := g.SetView("history", 0, 3, 25, maxY-8); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Autoscroll = true
		v.Title = "History"
	}
	if v, err := g.SetView("help", 0, maxY-7, 25, maxY-1); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Wrap = true
		v.Title = "Help"
		fmt.Fprintln(v, "<Enter> Analyze")
		fmt.Fprintln(v, "<Ctrl-R> Bit reference")
		fmt.Fprintln(v, "<Ctrl-L> Reset")
		fmt.Fprintln(v, "<Ctrl-C> Quit")
	}
	if v, err := g.SetView("report", 26, 0, maxX-1, maxY-1); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Wrap = true
		v.Autoscroll = false
		v.Title = "Analysis"
		fmt.Fprintln(v, "enter a status byte to analyze, eg. 6C or 0x6C")
	}
	if _, err := g.SetCurrentView("input"); err != nil {
		return err
	}
	return nil
}

func initKeybindings(g *gocui.Gui) error {
	if err := g.SetKeybinding("", gocui.KeyCtrlC, gocui.ModNone, quit); err != nil {
		return err
	}
	if err := g.SetKeybinding("input", gocui.KeyEnter, gocui.ModNone, analyze); err != nil {
		return err
	}
	if err := g.SetKeybinding("", gocui.KeyCtrlR, gocui.ModNone, showReference); err != nil {
		return err
	}
	if err := g.SetKeybinding("", gocui.KeyCtrlL, gocui.ModNone, reset); err != nil {
		return err
	}
	return nil
}

func quit(g *gocui.Gui, v *gocui.View) error {
	return gocui.ErrQuit
}

func analyze(g *gocui.Gui, v *gocui.View) error {
	raw := strings.TrimSpace(v.Buffer())
	v.Clear()
	if err := v.SetCursor(0, 0); err != nil {
		return err
	}

	rv, err := g.View("report")
	if err != nil {
		return err
	}
	rv.Clear()

	if raw == "" {
		fmt.Fprintln(rv, "enter a status byte to analyze, eg. 6C or 0x6C")
		return nil
	}

	s, perr := dem.ParseStatusString(raw)
	if perr != nil {
		fmt.Fprintln(rv, perr.Error())
		return nil
	}
	report.Analysis(rv, s.Decode())

	hv, err := g.View("history")
	if err != nil {
		return err
	}
	history = append(history, fmt.Sprintf("0x%02X  %s", uint8(s), s))
	if len(history) > cfg.MaxHistory {
		history = history[len(history)-cfg.MaxHistory:]
	}
	hv.Clear()
	for _, h := range history {
		fmt.Fprintln(hv, h)
	}
	return nil
}

func showReference(g *gocui.Gui, v *gocui.View) error {
	rv, err := g.View("report")
	if err != nil {
		return err
	}
	rv.Clear()
	report.Reference(rv, dem.Bits())
	return nil
}

func reset(g *gocui.Gui, v *gocui.View) error {
	rv, err := g.View("report")
	if err != nil {
		return err
	}
	rv.Clear()
	fmt.Fprintln(rv, "enter a status byte to analyze, eg. 6C or 0x6C")
	if cfg.AutoSave {
		return nil
	}
	history = nil
	hv, err := g.View("history")
	if err != nil {
		return err
	}
	hv.Clear()
	return nil
}
