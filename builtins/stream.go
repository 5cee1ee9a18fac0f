package builtins

import (
	"fmt"
	"os"
	"strings"

	"github.com/leinonen/txr-kernel/kernel"
	"github.com/leinonen/txr-kernel/kernelerr"
	"github.com/leinonen/txr-kernel/value"
)

var (
	stdinStream  = value.NewStream("stdin", os.Stdin, nil, nil)
	stdoutStream = value.NewStream("stdout", nil, os.Stdout, nil)
)

func asStream(v value.Value, opName string) (*value.Stream, error) {
	s, ok := v.(*value.Stream)
	if !ok {
		return nil, kernelerr.New(kernelerr.SyntaxError, "%s: %s is not a stream", opName, v.String())
	}
	return s, nil
}

// fmtArg renders a value the way format's ~a directive does: strings print
// without quotes, everything else uses its own String().
func fmtArg(v value.Value) string {
	if s, ok := v.(value.String); ok {
		return string(s)
	}
	return v.String()
}

func installStreamOps(k *kernel.Kernel) {
	defVariadic(k, "format", 1, func(_ value.Env, a []value.Value, rest value.Value) (value.Value, error) {
		tmpl, err := asString(a[0], "format")
		if err != nil {
			return nil, err
		}
		args := value.ListToSlice(rest)
		var b strings.Builder
		ai := 0
		for i := 0; i < len(tmpl); i++ {
			if tmpl[i] == '~' && i+1 < len(tmpl) {
				switch tmpl[i+1] {
				case 'a', 's':
					if ai < len(args) {
						b.WriteString(fmtArg(args[ai]))
						ai++
					}
					i++
					continue
				case '%':
					b.WriteByte('\n')
					i++
					continue
				case '~':
					b.WriteByte('~')
					i++
					continue
				}
			}
			b.WriteByte(tmpl[i])
		}
		fmt.Fprint(os.Stdout, b.String())
		return value.String(b.String()), nil
	})

	def(k, "print", 1, func(_ value.Env, a []value.Value, _ value.Value) (value.Value, error) {
		fmt.Fprint(os.Stdout, fmtArg(a[0]))
		return a[0], nil
	})

	def(k, "pprint", 1, func(_ value.Env, a []value.Value, _ value.Value) (value.Value, error) {
		fmt.Fprintln(os.Stdout, a[0].String())
		return a[0], nil
	})

	defVariadic(k, "get-line", 0, func(_ value.Env, _ []value.Value, rest value.Value) (value.Value, error) {
		s := stdinStream
		if c := value.Car(rest); value.Consp(rest) {
			st, err := asStream(c, "get-line")
			if err != nil {
				return nil, err
			}
			s = st
		}
		if s.Reader == nil {
			return value.Nil{}, nil
		}
		line, err := s.Reader.ReadString('\n')
		if line == "" && err != nil {
			return value.Nil{}, nil
		}
		return value.String(strings.TrimRight(line, "\n")), nil
	})

	defVariadic(k, "get-char", 0, func(_ value.Env, _ []value.Value, rest value.Value) (value.Value, error) {
		s := stdinStream
		if c := value.Car(rest); value.Consp(rest) {
			st, err := asStream(c, "get-char")
			if err != nil {
				return nil, err
			}
			s = st
		}
		if s.Reader == nil {
			return value.Nil{}, nil
		}
		r, _, err := s.Reader.ReadRune()
		if err != nil {
			return value.Nil{}, nil
		}
		return value.Character(r), nil
	})

	defVariadic(k, "get-byte", 0, func(_ value.Env, _ []value.Value, rest value.Value) (value.Value, error) {
		s := stdinStream
		if c := value.Car(rest); value.Consp(rest) {
			st, err := asStream(c, "get-byte")
			if err != nil {
				return nil, err
			}
			s = st
		}
		if s.Reader == nil {
			return value.Nil{}, nil
		}
		b, err := s.Reader.ReadByte()
		if err != nil {
			return value.Nil{}, nil
		}
		return value.NewInt(int64(b)), nil
	})

	defVariadic(k, "put-line", 1, func(_ value.Env, a []value.Value, rest value.Value) (value.Value, error) {
		text := fmtArg(a[0])
		s := streamOrDefault(rest, stdoutStream)
		if s.Writer == nil {
			return value.Nil{}, nil
		}
		s.Writer.WriteString(text)
		s.Writer.WriteByte('\n')
		s.Flush()
		return value.T, nil
	})

	defVariadic(k, "put-string", 1, func(_ value.Env, a []value.Value, rest value.Value) (value.Value, error) {
		text := fmtArg(a[0])
		s := streamOrDefault(rest, stdoutStream)
		if s.Writer == nil {
			return value.Nil{}, nil
		}
		s.Writer.WriteString(text)
		s.Flush()
		return value.T, nil
	})

	defVariadic(k, "put-char", 1, func(_ value.Env, a []value.Value, rest value.Value) (value.Value, error) {
		ch, ok := a[0].(value.Character)
		if !ok {
			return nil, kernelerr.New(kernelerr.SyntaxError, "put-char: %s is not a character", a[0].String())
		}
		s := streamOrDefault(rest, stdoutStream)
		if s.Writer == nil {
			return value.Nil{}, nil
		}
		s.Writer.WriteRune(rune(ch))
		s.Flush()
		return value.T, nil
	})

	def(k, "open-file", 2, func(_ value.Env, a []value.Value, _ value.Value) (value.Value, error) {
		path, err := asString(a[0], "open-file")
		if err != nil {
			return nil, err
		}
		mode, err := asString(a[1], "open-file")
		if err != nil {
			return nil, err
		}
		switch mode {
		case "r":
			f, err := os.Open(path)
			if err != nil {
				return value.Nil{}, nil
			}
			return value.NewStream(path, f, nil, f), nil
		case "w":
			f, err := os.Create(path)
			if err != nil {
				return value.Nil{}, nil
			}
			return value.NewStream(path, nil, f, f), nil
		case "a":
			f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
			if err != nil {
				return value.Nil{}, nil
			}
			return value.NewStream(path, nil, f, f), nil
		default:
			return nil, kernelerr.New(kernelerr.SyntaxError, "open-file: unknown mode %q", mode)
		}
	})

	def(k, "open-directory", 1, func(_ value.Env, a []value.Value, _ value.Value) (value.Value, error) {
		path, err := asString(a[0], "open-directory")
		if err != nil {
			return nil, err
		}
		entries, err := os.ReadDir(path)
		if err != nil {
			return value.Nil{}, nil
		}
		var names strings.Builder
		for _, e := range entries {
			names.WriteString(e.Name())
			names.WriteByte('\n')
		}
		return value.NewStream(path, strings.NewReader(names.String()), nil, nil), nil
	})

	def(k, "open-pipe", 2, func(_ value.Env, a []value.Value, _ value.Value) (value.Value, error) {
		cmdline, err := asString(a[0], "open-pipe")
		if err != nil {
			return nil, err
		}
		return nil, kernelerr.New(kernelerr.SyntaxError, "open-pipe: subprocess streams are not available (%q)", cmdline)
	})

	def(k, "flush-stream", 1, func(_ value.Env, a []value.Value, _ value.Value) (value.Value, error) {
		s, err := asStream(a[0], "flush-stream")
		if err != nil {
			return nil, err
		}
		s.Flush()
		return value.T, nil
	})

	def(k, "close-stream", 1, func(_ value.Env, a []value.Value, _ value.Value) (value.Value, error) {
		s, err := asStream(a[0], "close-stream")
		if err != nil {
			return nil, err
		}
		s.Close()
		return value.T, nil
	})
}

func streamOrDefault(rest value.Value, def *value.Stream) *value.Stream {
	if value.Consp(rest) {
		if s, ok := value.Car(rest).(*value.Stream); ok {
			return s
		}
	}
	return def
}
