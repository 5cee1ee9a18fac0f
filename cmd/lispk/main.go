// Command lispk runs the kernel as a standalone interpreter: a REPL by
// default, or one-shot file/expression evaluation via -f/-e, matching the
// teacher's cmd/golisp-core flag surface.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/leinonen/txr-kernel/internal/replcli"
)

func main() {
	filename := flag.String("f", "", "Execute a source file")
	evalStr := flag.String("e", "", "Evaluate an expression")
	help := flag.Bool("h", false, "Show help")
	flag.Parse()

	if *help {
		fmt.Println("lispk — a small tree-walking Lisp kernel")
		fmt.Println("Usage:")
		fmt.Println("  lispk           # start the REPL")
		fmt.Println("  lispk -f file   # execute a file")
		fmt.Println("  lispk -e expr   # evaluate an expression")
		fmt.Println("  lispk -h        # show this help")
		return
	}

	interp := replcli.New()

	if *evalStr != "" {
		result, err := interp.EvalString("<-e>", *evalStr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(result.String())
		return
	}

	if *filename != "" {
		if err := interp.LoadFile(*filename); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := replcli.Run(interp, true); err != nil {
		fmt.Fprintf(os.Stderr, "repl error: %v\n", err)
		os.Exit(1)
	}
}
