package value

import (
	"fmt"

	"github.com/dlclark/regexp2"
)

// Regex is a first-class compiled regular expression value. Per the
// evaluator's rule 3 (spec.md §4.2), a regex appearing in operator
// position self-evaluates rather than being looked up as a function.
type Regex struct {
	Source string
	Re     *regexp2.Regexp
}

func NewRegex(source string) (*Regex, error) {
	re, err := regexp2.Compile(source, regexp2.None)
	if err != nil {
		return nil, fmt.Errorf("bad regex %q: %w", source, err)
	}
	return &Regex{Source: source, Re: re}, nil
}

func (r *Regex) String() string { return "#/" + r.Source + "/" }
