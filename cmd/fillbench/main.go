// Command fillbench times the software fills and both presentation paths on
// an off-screen buffer and prints an fbtest style score table.
package main

import (
	"flag"
	"fmt"
	"os"
)

func main() {
	var (
		width  = flag.Int("width", 800, "Buffer width.")
		height = flag.Int("height", 600, "Buffer height.")
		rounds = flag.Int("rounds", 20, "Repetitions per test.")
	)
	flag.Parse()

	b, err := newBench(*width, *height, *rounds)
	if err != nil {
		fatalf("fillbench: %v", err)
	}
	defer b.close()

	tests, cleanup, err := b.benchmarks()
	if err != nil {
		fatalf("fillbench: %v", err)
	}
	defer cleanup()

	fmt.Printf("%dx%d, %d rounds\n\n", *width, *height, b.rounds)
	results, total := runBenchmarks(tests)
	report(os.Stdout, results, total)
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}
