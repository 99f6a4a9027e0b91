// forge-stub is the placeholder binary scaffolded into new projects.
// It takes no arguments (any given are ignored), prints the result of a
// no-op run, and exits 0.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/neuroforge/forge/internal/runner"
)

func printResult(w io.Writer) {
	fmt.Fprintf(w, "Result: %s\n", runner.Run())
}

func main() {
	printResult(os.Stdout)
}
