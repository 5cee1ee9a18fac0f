package builtins

import (
	"github.com/leinonen/txr-kernel/kernel"
	"github.com/leinonen/txr-kernel/kernelerr"
	"github.com/leinonen/txr-kernel/value"
)

func asString(v value.Value, opName string) (string, error) {
	s, ok := v.(value.String)
	if !ok {
		return "", kernelerr.New(kernelerr.SyntaxError, "%s: %s is not a string", opName, v.String())
	}
	return string(s), nil
}

func asRegex(v value.Value, opName string) (*value.Regex, error) {
	r, ok := v.(*value.Regex)
	if !ok {
		return nil, kernelerr.New(kernelerr.SyntaxError, "%s: %s is not a regex", opName, v.String())
	}
	return r, nil
}

func installRegexOps(k *kernel.Kernel) {
	def(k, "match-regex", 2, func(_ value.Env, a []value.Value, _ value.Value) (value.Value, error) {
		s, err := asString(a[0], "match-regex")
		if err != nil {
			return nil, err
		}
		re, err := asRegex(a[1], "match-regex")
		if err != nil {
			return nil, err
		}
		m, err := re.Re.FindStringMatch(s)
		if err != nil {
			return nil, kernelerr.New(kernelerr.SyntaxError, "match-regex: %v", err)
		}
		if m == nil || m.Index != 0 {
			return value.Nil{}, nil
		}
		return value.NewInt(int64(m.Length)), nil
	})

	def(k, "search-regex", 2, func(_ value.Env, a []value.Value, _ value.Value) (value.Value, error) {
		s, err := asString(a[0], "search-regex")
		if err != nil {
			return nil, err
		}
		re, err := asRegex(a[1], "search-regex")
		if err != nil {
			return nil, err
		}
		m, err := re.Re.FindStringMatch(s)
		if err != nil {
			return nil, kernelerr.New(kernelerr.SyntaxError, "search-regex: %v", err)
		}
		if m == nil {
			return value.Nil{}, nil
		}
		return value.NewCons(value.NewInt(int64(m.Index)), value.NewInt(int64(m.Length))), nil
	})
}
