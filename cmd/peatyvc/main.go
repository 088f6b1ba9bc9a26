// Command peatyvc is a thin front-end over the solver package: parse
// flags, read a graph in one of two DIMACS-family dialects, solve, and
// write the cover.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/basiutekk/peatyvc/config"
	"github.com/basiutekk/peatyvc/format"
	"github.com/basiutekk/peatyvc/solver"
)

func main() {
	var (
		quiet            = flag.Bool("q", false, "quiet output")
		unweightedSort   = flag.Bool("u", false, "unweighted ordering (only applies to certain algorithms)")
		colouringVariant = flag.Int("c", 3, "colouring variant {0,2,3}")
		algorithmNum     = flag.Int("a", 0, "algorithm number (reserved; 5 enables parallelism)")
		maxSATLevel      = flag.Int("m", -1, "max unit-propagation clause size (-1 = unlimited)")
		numThreads       = flag.Int("t", 1, "thread count")
		fileFormat       = flag.String("f", "pace", "file format {pace,dimacs}")
	)
	flag.Parse()

	if err := run(os.Stdin, os.Stdout, *quiet, *unweightedSort, *colouringVariant, *algorithmNum, *maxSATLevel, *numThreads, *fileFormat); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(in io.Reader, out io.Writer, quiet, unweightedSort bool, colouringVariant, algorithmNum, maxSATLevel, numThreads int, fileFormatFlag string) error {
	log.SetFlags(0)
	log.SetOutput(os.Stderr)

	var dialect format.Format
	switch fileFormatFlag {
	case "dimacs", "DIMACS":
		dialect = format.Dimacs
	default:
		dialect = format.Pace
	}

	g, err := format.Read(in, dialect)
	if err != nil {
		return fmt.Errorf("input parse error: %w", err)
	}

	params := config.New(
		config.WithColouringVariant(colouringVariant),
		config.WithAlgorithmNum(algorithmNum),
		config.WithMaxSATLevel(maxSATLevel),
		config.WithNumThreads(numThreads),
		config.WithQuiet(quiet),
		config.WithUnweightedSort(unweightedSort),
	)

	result, err := solver.Solve(g, params)
	if err != nil {
		return fmt.Errorf("solve error: %w", err)
	}

	return format.WriteCover(out, g.N, result.Cover.VV)
}
