// Package report renders decoded DTC status bytes for the terminal.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/roffe/godem/pkg/dem"
)

var (
	cyan    = color.New(color.FgCyan).SprintfFunc()
	magenta = color.New(color.FgHiMagenta).SprintfFunc()
	yellow  = color.New(color.FgYellow).SprintfFunc()
	red     = color.New(color.FgRed).SprintfFunc()
	green   = color.New(color.FgGreen).SprintfFunc()
	bold    = color.New(color.Bold).SprintfFunc()
)

const blockWidth = 14

// Header prints the HEX | DEC | BIN summary line for a status byte.
func Header(w io.Writer, d *dem.Decoded) {
	v := uint8(d.Status)
	fmt.Fprintf(w, "%s HEX: 0x%02X | DEC: %d | BIN: %s | SET: %s\n",
		bold("[DTC status]"), v, v, d.Status.Binary(), cyan("%s", d.Status.String()))
}

// Blocks prints one fixed-width box per bit, bit 7 first, red when set
// and green when clear.
func Blocks(w io.Writer, d *dem.Decoded) {
	var top, name, abbr, state, bottom strings.Builder
	for i := 7; i >= 0; i-- {
		e := d.Entries[i]
		top.WriteString("+" + strings.Repeat("-", blockWidth-2))
		bottom.WriteString("+" + strings.Repeat("-", blockWidth-2))
		name.WriteString(fmt.Sprintf("|%s", center(fmt.Sprintf("Bit %d", i), blockWidth-2)))
		abbr.WriteString(fmt.Sprintf("|%s", yellow("%s", center(e.Def.Abbr, blockWidth-2))))
		if e.Set {
			state.WriteString(fmt.Sprintf("|%s", red("%s", center("1", blockWidth-2))))
		} else {
			state.WriteString(fmt.Sprintf("|%s", green("%s", center("0", blockWidth-2))))
		}
	}
	fmt.Fprintln(w, top.String()+"+")
	fmt.Fprintln(w, name.String()+"|")
	fmt.Fprintln(w, abbr.String()+"|")
	fmt.Fprintln(w, state.String()+"|")
	fmt.Fprintln(w, bottom.String()+"+")
}

// Table prints the per-bit breakdown, high bit first, with the state
// description matching each bit's current value.
func Table(w io.Writer, d *dem.Decoded) {
	fmt.Fprintf(w, "%-4s %-36s %-7s %-5s %s\n", "Bit", "Name", "Abbr", "State", "Description")
	fmt.Fprintln(w, strings.Repeat("-", 110))
	for i := 7; i >= 0; i-- {
		e := d.Entries[i]
		state := green("CLR")
		desc := e.Def.DescClear
		if e.Set {
			state = red("SET")
			desc = e.Def.DescSet
		}
		// state is colored, pad around it so the escape codes don't skew the column
		fmt.Fprintf(w, "%-4d %-36s %-7s %s   %s\n", i, e.Def.Name, e.Def.Abbr, state, desc)
	}
}

// Details prints the background and transition conditions for every set
// bit, highest first. A fully clear byte gets a single notice instead.
func Details(w io.Writer, d *dem.Decoded) {
	set := d.SetBits()
	if len(set) == 0 {
		fmt.Fprintln(w, yellow("all status bits are clear"))
		return
	}
	for _, e := range set {
		rule(w, fmt.Sprintf("Bit %d - %s (%s)", e.Def.Bit, e.Def.Name, e.Def.Abbr))
		fmt.Fprintf(w, "%s %s\n", bold("Meaning:"), e.Def.Intro)
		fmt.Fprintf(w, "%s %s\n", bold("State:"), red("set")+" - "+e.Def.DescSet)
		fmt.Fprintln(w)
		fmt.Fprintln(w, e.Def.Detail)
		fmt.Fprintln(w)
		fmt.Fprintln(w, cyan("set when:"))
		for _, c := range e.Def.SetConditions {
			fmt.Fprintf(w, "  * %s\n", c)
		}
		fmt.Fprintln(w)
	}
}

// Analysis prints the full composite report: header, bit blocks, table
// and details for all set bits.
func Analysis(w io.Writer, d *dem.Decoded) {
	Header(w, d)
	fmt.Fprintln(w)
	Blocks(w, d)
	fmt.Fprintln(w)
	Table(w, d)
	fmt.Fprintln(w)
	Details(w, d)
}

// Reference prints the set/clear transition rules for all bits, lowest
// first, for use without a status value.
func Reference(w io.Writer, defs []dem.BitDefinition) {
	fmt.Fprintln(w, bold("DTC status bit transition rules (ISO 14229 / AUTOSAR Dem)"))
	fmt.Fprintln(w)
	for _, def := range defs {
		rule(w, fmt.Sprintf("Bit %d - %s (%s)", def.Bit, def.Name, def.Abbr))
		fmt.Fprintf(w, "%s %s\n", bold("Meaning:"), def.Intro)
		fmt.Fprintln(w, cyan("set when:"))
		for _, c := range def.SetConditions {
			fmt.Fprintf(w, "  * %s\n", c)
		}
		fmt.Fprintln(w, cyan("cleared when:"))
		for _, c := range def.ClearConditions {
			fmt.Fprintf(w, "  * %s\n", c)
		}
		fmt.Fprintln(w)
	}
}

// BitDetail prints everything known about a single bit, both states.
func BitDetail(w io.Writer, def dem.BitDefinition) {
	rule(w, fmt.Sprintf("Bit %d - %s (%s)", def.Bit, def.Name, def.Abbr))
	fmt.Fprintf(w, "%s %s\n", bold("Label:"), def.Label)
	fmt.Fprintf(w, "%s %s\n", bold("Meaning:"), def.Intro)
	fmt.Fprintf(w, "%s 0x%02X\n", bold("Mask:"), def.Mask())
	fmt.Fprintf(w, "%s %s\n", red("when set:"), def.DescSet)
	fmt.Fprintf(w, "%s %s\n", green("when clear:"), def.DescClear)
	fmt.Fprintln(w)
	fmt.Fprintln(w, def.Detail)
	fmt.Fprintln(w)
	fmt.Fprintln(w, cyan("set when:"))
	for _, c := range def.SetConditions {
		fmt.Fprintf(w, "  * %s\n", c)
	}
	fmt.Fprintln(w, cyan("cleared when:"))
	for _, c := range def.ClearConditions {
		fmt.Fprintf(w, "  * %s\n", c)
	}
}

func rule(w io.Writer, title string) {
	fmt.Fprintln(w, magenta("--- %s %s", title, strings.Repeat("-", max(0, 100-len(title)))))
}

func center(s string, width int) string {
	if len(s) >= width {
		return s[:width]
	}
	left := (width - len(s)) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-len(s)-left)
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
