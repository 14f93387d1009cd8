// Command solve loads a puzzle JSON file, writes it back out
// (pretty-printed), builds the model, runs the search driver, and
// prints the filled grid to stdout. Cells without a committed value
// print as a dot, with a dump of their remaining candidates after the
// grid. Exit code is 0 on success, including "no solution found"; a
// usage, I/O, parse or model build error exits with status 1.
package main

import (
	"flag"
	"fmt"
	"os"

	"variantsudoku/internal/puzzlefile"
	"variantsudoku/internal/solver"
)

func main() {
	pretty := flag.Bool("pretty", true, "re-serialize the puzzle file with indentation")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: solve [-pretty=false] <puzzle.json>")
		os.Exit(1)
	}
	path := flag.Arg(0)

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "solve: %v\n", err)
		os.Exit(1)
	}

	specifier, err := puzzlefile.Parse(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "solve: %v\n", err)
		os.Exit(1)
	}

	rewritten, err := puzzlefile.Serialize(specifier, *pretty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "solve: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(path, rewritten, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "solve: %v\n", err)
		os.Exit(1)
	}

	m, err := specifier.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "solve: %v\n", err)
		os.Exit(1)
	}

	result := solver.Solve(m)
	if !result.Solved {
		fmt.Println("No solution found")
		return
	}
	fmt.Print(result.State.DebugString())
}
