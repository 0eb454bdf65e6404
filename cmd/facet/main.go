package main

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/gookit/color"
)

// Color functions used when printing information
var (
	colorCyan   = color.Cyan.Printf
	colorGreen  = color.LightGreen.Printf
	colorYellow = color.Yellow.Printf
	colorRed    = color.Red.Printf
)

var cli struct {
	Deal       dealCmd       `cmd:"" help:"Deal a deck of cards into hands, exercising the per-field helpers."`
	Primes     primesCmd     `cmd:"" help:"Print the first primes at or above 5."`
	Composites compositesCmd `cmd:"" help:"Print the first composite numbers."`
	Average    averageCmd    `cmd:"" help:"Average the given integers two ways."`
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("facet"),
		kong.Description("Walk the facet slice, field, and number helpers from the command line."),
		kong.UsageOnError(),
	)

	if err := ctx.Run(); err != nil {
		colorRed("facet: %v\n", err)
		os.Exit(1)
	}
}
