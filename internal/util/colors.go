package util

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var colorsOptions = map[string]color.Attribute{
	"red":    color.FgHiRed,
	"yellow": color.FgYellow,
}

// DisableColor turns colouring off for the whole process. fatih/color already
// disables it when stdout is not a terminal.
func DisableColor() {
	color.NoColor = true
}

func ColorOutput(text string, colorOptions ...string) string {
	attributes := []color.Attribute{}
	for _, option := range colorOptions {
		if o, ok := colorsOptions[option]; ok {
			attributes = append(attributes, o)
		}
	}
	c := color.New(attributes...)
	return c.Sprint(text)
}

// Notice writes text as a single coloured line.
func Notice(w io.Writer, text string, colorOptions ...string) {
	fmt.Fprintln(w, ColorOutput(text, colorOptions...))
}
