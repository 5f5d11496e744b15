// SPDX-License-Identifier: MIT

// Package output provides CLI output formatting for vesselreport.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/katalvlaran/vesselmon/efficiency"
	"github.com/katalvlaran/vesselmon/regime"
)

// ColorMode represents color output mode
type ColorMode int

const (
	// ColorAuto enables colors based on environment (default)
	ColorAuto ColorMode = iota
	// ColorAlways forces colors on
	ColorAlways
	// ColorNever forces colors off
	ColorNever
)

// PrinterOptions configures the Printer
type PrinterOptions struct {
	ColorMode    ColorMode
	ConfigColors bool // .vesselreport.yaml output.colors value
	Out          io.Writer
	Err          io.Writer
}

// Printer handles formatted output to the terminal
type Printer struct {
	out       io.Writer
	err       io.Writer
	useColors bool
}

// ParseColorMode parses a string into a ColorMode
func ParseColorMode(s string) (ColorMode, error) {
	switch s {
	case "auto", "":
		return ColorAuto, nil
	case "always":
		return ColorAlways, nil
	case "never":
		return ColorNever, nil
	default:
		return ColorAuto, fmt.Errorf("invalid color mode %q: must be auto, always, or never", s)
	}
}

// ResolveColors determines whether to use colors based on mode and environment
func ResolveColors(mode ColorMode, configColors bool) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		if _, ok := os.LookupEnv("NO_COLOR"); ok {
			return false
		}
		if os.Getenv("TERM") == "dumb" {
			return false
		}
		return configColors
	}
}

// NewPrinterWithOptions creates a new printer with full options
func NewPrinterWithOptions(opts PrinterOptions) *Printer {
	p := &Printer{
		out:       opts.Out,
		err:       opts.Err,
		useColors: ResolveColors(opts.ColorMode, opts.ConfigColors),
	}
	if p.out == nil {
		p.out = os.Stdout
	}
	if p.err == nil {
		p.err = os.Stderr
	}

	return p
}

// Out returns the printer's standard output writer
func (p *Printer) Out() io.Writer { return p.out }

// Colors reports whether the printer emits ANSI colors
func (p *Printer) Colors() bool { return p.useColors }

func (p *Printer) colored(w io.Writer, attrs []color.Attribute, format string, args ...any) {
	if p.useColors {
		c := color.New(attrs...)
		c.EnableColor()
		_, _ = c.Fprintf(w, format, args...)
		return
	}
	_, _ = fmt.Fprintf(w, format, args...)
}

// Success prints a success message
func (p *Printer) Success(format string, args ...any) {
	if p.useColors {
		p.colored(p.out, []color.Attribute{color.FgGreen}, "✓ "+format+"\n", args...)
		return
	}
	fmt.Fprintf(p.out, "[OK] "+format+"\n", args...)
}

// Warning prints a warning message
func (p *Printer) Warning(format string, args ...any) {
	if p.useColors {
		p.colored(p.err, []color.Attribute{color.FgYellow}, "⚠ "+format+"\n", args...)
		return
	}
	fmt.Fprintf(p.err, "[WARN] "+format+"\n", args...)
}

// Error prints an error message
func (p *Printer) Error(format string, args ...any) {
	if p.useColors {
		p.colored(p.err, []color.Attribute{color.FgRed}, "✗ "+format+"\n", args...)
		return
	}
	fmt.Fprintf(p.err, "[ERROR] "+format+"\n", args...)
}

// Print prints a plain message
func (p *Printer) Print(format string, args ...any) {
	fmt.Fprintf(p.out, format+"\n", args...)
}

// Header prints a section header
func (p *Printer) Header(title string) {
	width := displayWidth(title)
	if p.useColors {
		p.colored(p.out, []color.Attribute{color.FgWhite, color.Bold}, "\n%s\n", title)
		p.colored(p.out, []color.Attribute{color.FgWhite}, "%s\n", repeatChar('─', width))
		return
	}
	fmt.Fprintf(p.out, "\n%s\n%s\n", title, repeatChar('-', width))
}

// Subheader prints a minor section title
func (p *Printer) Subheader(title string) {
	if p.useColors {
		p.colored(p.out, []color.Attribute{color.Bold}, "\n▌%s\n", title)
		return
	}
	fmt.Fprintf(p.out, "\n[%s]\n", title)
}

// RegimeBadge returns the regime label colored by severity
func (p *Printer) RegimeBadge(r regime.Regime) string {
	if !p.useColors {
		return r.Label()
	}
	var c *color.Color
	switch r {
	case regime.Economic:
		c = color.New(color.FgGreen)
	case regime.Normal:
		c = color.New(color.FgBlue)
	case regime.HighLoad:
		c = color.New(color.FgRed)
	default:
		c = color.New(color.FgWhite)
	}
	c.EnableColor()

	return c.Sprint(r.Label())
}

// TierBadge returns the efficiency tier label colored by grade
func (p *Printer) TierBadge(t efficiency.Tier) string {
	if !p.useColors {
		return t.Label()
	}
	var c *color.Color
	switch t {
	case efficiency.Excellent, efficiency.Good:
		c = color.New(color.FgGreen)
	case efficiency.Medium:
		c = color.New(color.FgYellow)
	default:
		c = color.New(color.FgRed)
	}
	c.EnableColor()

	return c.Sprint(t.Label())
}

// Dim returns dimmed text
func (p *Printer) Dim(text string) string {
	if p.useColors {
		c := color.New(color.Faint)
		c.EnableColor()
		return c.Sprint(text)
	}
	return text
}

func repeatChar(char rune, count int) string {
	result := make([]rune, count)
	for i := range result {
		result[i] = char
	}
	return string(result)
}

// displayWidth counts wide (CJK) runes as two columns
func displayWidth(s string) int {
	w := 0
	for _, r := range s {
		if r >= 0x1100 {
			w += 2
		} else {
			w++
		}
	}
	return w
}
