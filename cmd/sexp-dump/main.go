// Command sexp-dump prints the S-expression structure of a KiCad file.
// It is a debugging aid for the schematic parser: when a file fails to
// parse or a field ends up empty, dumping the raw tree shows what the
// generator actually wrote.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/chewxy/sexp"
)

var maxChars = flag.Int("width", 120, "truncate each expression to this many characters (0 = unlimited)")

func main() {
	flag.Parse()
	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: sexp-dump [-width N] <kicad_file>")
		os.Exit(1)
	}

	filename := flag.Arg(0)
	file, err := os.Open(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "sexp-dump: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	sexps, err := sexp.Parse(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "sexp-dump: parse %s: %v\n", filename, err)
		os.Exit(1)
	}

	fmt.Printf("%s: %d top-level expression(s)\n\n", filename, len(sexps))
	for i, s := range sexps {
		kind := "list"
		leaves := 0
		if s.IsLeaf() {
			kind = "leaf"
		} else {
			leaves = s.LeafCount()
		}
		fmt.Printf("[%d] %s, %d leaves\n", i, kind, leaves)
		fmt.Printf("    %s\n", truncate(fmt.Sprint(s), *maxChars))
	}
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
