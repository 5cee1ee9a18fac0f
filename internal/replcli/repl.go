// Package replcli is the ambient front end that wraps the kernel in a
// runnable program: a colorized line-editing REPL (chzyer/readline plus
// fatih/color, matching the teacher's pkg/repl) and a file/string
// evaluation path for the CLI's -f and -e flags.
package replcli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/leinonen/txr-kernel/builtins"
	"github.com/leinonen/txr-kernel/kernel"
	"github.com/leinonen/txr-kernel/reader"
	"github.com/leinonen/txr-kernel/value"
)

// Interpreter bundles a fresh kernel with its builtins installed and its
// root environment, the one state bundle a program, a -e string, and every
// REPL line are evaluated against.
type Interpreter struct {
	K *kernel.Kernel
	E *kernel.Frame
}

// New builds an interpreter with the full native library installed.
func New() *Interpreter {
	k := kernel.New()
	builtins.Install(k)
	return &Interpreter{K: k, E: k.RootEnv()}
}

// EvalString reads and evaluates every form in source (read under the
// given file label for error messages), returning the value of the last
// one.
func (in *Interpreter) EvalString(file, source string) (value.Value, error) {
	forms, err := reader.ReadAll(file, source)
	if err != nil {
		return nil, err
	}
	var result value.Value = value.Nil{}
	for _, form := range forms {
		expanded, err := kernel.Expand(form)
		if err != nil {
			return nil, err
		}
		result, err = in.K.Eval(expanded, in.E, form)
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}

// LoadFile evaluates every form in the named file.
func (in *Interpreter) LoadFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	_, err = in.EvalString(path, string(content))
	return err
}

// Run starts an interactive read-eval-print loop on stdin, matching the
// teacher's REPLWithOptions: plain prompt, colored result, colored error.
func Run(in *Interpreter, enableColors bool) error {
	if !enableColors {
		color.NoColor = true
	}

	rl, err := readline.New("lispk> ")
	if err != nil {
		return fmt.Errorf("failed to start line editor: %w", err)
	}
	defer rl.Close()

	printWelcome()

	resultColor := color.New(color.FgGreen)
	errColor := color.New(color.FgRed)

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			break
		}

		result, evalErr := in.EvalString("<repl>", line)
		if evalErr != nil {
			fmt.Println(errColor.Sprintf("error: %v", evalErr))
			continue
		}
		fmt.Printf("=> %s\n", resultColor.Sprint(result.String()))
	}

	printGoodbye()
	return nil
}

func printWelcome() {
	fmt.Println("lispk — a small tree-walking Lisp kernel")
	fmt.Println("type an expression, or 'quit' to exit")
}

func printGoodbye() {
	fmt.Println("goodbye")
}
