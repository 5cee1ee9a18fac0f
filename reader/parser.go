package reader

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/leinonen/txr-kernel/value"
)

// ParseError reports a malformed program, carrying the source file and line
// so it prints the same "(file:line) message" shape as an evaluator error.
type ParseError struct {
	File    string
	Line    int
	Message string
}

func (e *ParseError) Error() string {
	file := e.File
	if file == "" {
		file = "-"
	}
	return fmt.Sprintf("(%s:%d) %s", file, e.Line, e.Message)
}

type parser struct {
	toks []token
	pos  int
	file string
}

// ReadAll parses source text into a slice of top-level forms.
func ReadAll(file, source string) ([]value.Value, error) {
	toks, err := newLexer(source).tokenize()
	if err != nil {
		return nil, &ParseError{File: file, Line: 0, Message: err.Error()}
	}
	p := &parser{toks: toks, file: file}
	var forms []value.Value
	for p.current().typ != tokEOF {
		form, err := p.parseForm()
		if err != nil {
			return nil, err
		}
		forms = append(forms, form)
	}
	return forms, nil
}

// ReadOne parses a single top-level form, returning (nil, false, nil) when
// the source holds only whitespace/comments. ok is false at end of input.
func ReadOne(file, source string) (value.Value, bool, error) {
	toks, err := newLexer(source).tokenize()
	if err != nil {
		return nil, false, &ParseError{File: file, Line: 0, Message: err.Error()}
	}
	p := &parser{toks: toks, file: file}
	if p.current().typ == tokEOF {
		return nil, false, nil
	}
	form, err := p.parseForm()
	if err != nil {
		return nil, false, err
	}
	return form, true, nil
}

func (p *parser) current() token { return p.toks[p.pos] }

func (p *parser) advance() token {
	t := p.toks[p.pos]
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

func (p *parser) errf(line int, format string, args ...any) error {
	return &ParseError{File: p.file, Line: line, Message: fmt.Sprintf(format, args...)}
}

func (p *parser) stamp(v value.Value, line int) value.Value {
	if sl, ok := v.(value.SourceLocated); ok {
		sl.SetPosition(value.Position{File: p.file, Line: line})
	}
	return v
}

func (p *parser) parseForm() (value.Value, error) {
	t := p.current()
	switch t.typ {
	case tokLeftParen:
		return p.parseList()
	case tokRightParen:
		return nil, p.errf(t.line, "unexpected )")
	case tokQuote:
		p.advance()
		inner, err := p.parseForm()
		if err != nil {
			return nil, err
		}
		return p.stamp(value.NewList(value.Intern("quote"), inner), t.line), nil
	case tokQuasiquote:
		p.advance()
		inner, err := p.parseForm()
		if err != nil {
			return nil, err
		}
		return p.stamp(value.NewList(value.Intern("quasiquote"), inner), t.line), nil
	case tokUnquote:
		p.advance()
		inner, err := p.parseForm()
		if err != nil {
			return nil, err
		}
		return p.stamp(value.NewList(value.Intern("unquote"), inner), t.line), nil
	case tokSplice:
		p.advance()
		inner, err := p.parseForm()
		if err != nil {
			return nil, err
		}
		return p.stamp(value.NewList(value.Intern("splice"), inner), t.line), nil
	case tokSymbol:
		p.advance()
		switch t.text {
		case "nil":
			return value.Nil{}, nil
		case "t":
			return value.T, nil
		}
		return p.stamp(value.Intern(t.text), t.line), nil
	case tokNumber:
		p.advance()
		return p.stamp(parseNumber(t.text), t.line), nil
	case tokString:
		p.advance()
		return value.String(t.text), nil
	case tokKeyword:
		p.advance()
		return value.InternKeyword(t.text), nil
	case tokChar:
		p.advance()
		r := []rune(t.text)
		if len(r) == 0 {
			return nil, p.errf(t.line, "empty character literal")
		}
		return value.Character(r[0]), nil
	case tokRegex:
		p.advance()
		re, err := value.NewRegex(t.text)
		if err != nil {
			return nil, p.errf(t.line, "bad regex literal /%s/: %v", t.text, err)
		}
		return re, nil
	default:
		return nil, p.errf(t.line, "unexpected end of input")
	}
}

func (p *parser) parseList() (value.Value, error) {
	openLine := p.current().line
	p.advance() // '('
	var elems []value.Value
	for {
		t := p.current()
		if t.typ == tokEOF {
			return nil, p.errf(openLine, "unterminated list")
		}
		if t.typ == tokRightParen {
			p.advance()
			break
		}
		if t.typ == tokSymbol && t.text == "." && len(elems) > 0 {
			p.advance()
			tail, err := p.parseForm()
			if err != nil {
				return nil, err
			}
			if p.current().typ != tokRightParen {
				return nil, p.errf(p.current().line, "malformed dotted list")
			}
			p.advance()
			result := tail
			for i := len(elems) - 1; i >= 0; i-- {
				result = p.stamp(value.NewCons(elems[i], result), openLine)
			}
			return result, nil
		}
		el, err := p.parseForm()
		if err != nil {
			return nil, err
		}
		elems = append(elems, el)
	}
	return p.stamp(value.NewList(elems...), openLine), nil
}

func parseNumber(text string) value.Value {
	if strings.Contains(text, ".") {
		f, _ := strconv.ParseFloat(text, 64)
		return value.NewFloat(f)
	}
	i, _ := strconv.ParseInt(text, 10, 64)
	return value.NewInt(i)
}
