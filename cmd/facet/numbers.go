package main

import (
	"facet/numutil"
	"facet/sliceutil"
)

type primesCmd struct {
	Count int `help:"How many primes to generate." default:"10"`
}

func (c *primesCmd) Run() error {
	sliceutil.Print(numutil.GeneratePrimes(c.Count))
	return nil
}

type compositesCmd struct {
	Count int `help:"How many composite numbers to generate." default:"10"`
}

func (c *compositesCmd) Run() error {
	sliceutil.Print(numutil.GenerateComposites(c.Count))
	return nil
}

type averageCmd struct {
	Numbers []int `arg:"" help:"Integers to average."`
}

func (c *averageCmd) Run() error {
	// The two results differ on purpose: Average widens to float32 while
	// AverageType stays in the element type and truncates.
	colorGreen("average:           %v\n", numutil.Average(c.Numbers))
	colorGreen("truncated average: %d\n", numutil.AverageType(c.Numbers))
	return nil
}
