// Package render formats catalog output for the terminal.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/cory-johannsen/almanac/internal/character"
	"github.com/cory-johannsen/almanac/internal/command"
)

// Border is the decorative line above and below every framed block.
const Border = "•°•°•°•°•°•°•°•°•°•°•°•°•°•°•°•°•°•°•"

var (
	colorBorder  = color.New(color.FgMagenta)
	colorName    = color.New(color.FgCyan, color.Bold)
	colorNotice  = color.New(color.FgGreen)
	colorWarn    = color.New(color.FgYellow)
	colorFailure = color.New(color.FgRed)
	colorHeart   = color.New(color.FgHiRed)
	colorDim     = color.New(color.Faint)
)

// frame surrounds body lines with the border and a blank line on each side.
func frame(body ...string) string {
	var b strings.Builder
	border := colorBorder.Sprint(Border)
	b.WriteString(border)
	b.WriteString("\n \n")
	for _, line := range body {
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString(" \n")
	b.WriteString(border)
	b.WriteString("\n")
	return b.String()
}

// Framed renders a notice inside the border using the color for its outcome.
func Framed(message string, outcome command.Outcome) string {
	c := colorNotice
	switch outcome {
	case command.OutcomeUsage, command.OutcomeInvalid, command.OutcomeNotFound, command.OutcomeUnrecognized:
		c = colorWarn
	case command.OutcomeFailed:
		c = colorFailure
	}
	lines := strings.Split(message, "\n")
	for i, l := range lines {
		lines[i] = c.Sprint(l)
	}
	return frame(lines...)
}

// CharacterInfo renders one character's birthday, favourite gift and marriage line.
func CharacterInfo(c *character.Character) string {
	name := colorName.Sprint(c.Name)
	marriage := fmt.Sprintf("%s can NOT get married to the player! %s", name, colorDim.Sprint("💔"))
	if c.IsBachelor {
		marriage = fmt.Sprintf("%s can get married to the player! %s", name, colorHeart.Sprint("❤"))
	}
	return frame(
		fmt.Sprintf("%s's birthday: %s %d", name, c.BirthdaySeason, c.BirthdayDay),
		fmt.Sprintf("%s's favourite gift: %s", name, c.BestGift),
		marriage,
	)
}

// Printer writes rendered results to an output stream.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a Printer writing to out.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// Result writes every character in r followed by its framed message, if any.
//
// Postcondition: Returns the first write error, or nil.
func (p *Printer) Result(r command.Result) error {
	for _, c := range r.Characters {
		if _, err := io.WriteString(p.out, CharacterInfo(c)); err != nil {
			return err
		}
	}
	if r.Message == "" {
		return nil
	}
	_, err := io.WriteString(p.out, Framed(r.Message, r.Outcome))
	return err
}

// Line writes a single unframed line, used for prompts and hints.
func (p *Printer) Line(text string) error {
	_, err := fmt.Fprintln(p.out, text)
	return err
}
