package pattern

import (
	"errors"
	"fmt"
	"regexp"
	"sync"
)

// ErrBadPattern indicates the expression is not valid RE2 syntax.
var ErrBadPattern = errors.New("pattern: invalid expression")

// compiled caches *regexp.Regexp by source expression.
var compiled sync.Map

// compile returns the cached program for expr, compiling it on first use.
func compile(expr string) (*regexp.Regexp, error) {
	if re, ok := compiled.Load(expr); ok {
		return re.(*regexp.Regexp), nil
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrBadPattern, expr, err)
	}
	actual, _ := compiled.LoadOrStore(expr, re)
	return actual.(*regexp.Regexp), nil
}

// Match reports whether expr matches a prefix of s.
// Match("a", "cat") is false; Match("c", "cat") is true.
func Match(expr, s string) (bool, error) {
	re, err := compile(expr)
	if err != nil {
		return false, err
	}
	// Leftmost match: if any match starts at 0, this one does.
	loc := re.FindStringIndex(s)
	return loc != nil && loc[0] == 0, nil
}

// Search reports whether expr matches anywhere in s.
func Search(expr, s string) (bool, error) {
	re, err := compile(expr)
	if err != nil {
		return false, err
	}
	return re.MatchString(s), nil
}

// Split slices s into the substrings between every match of expr.
// Split("[ab]", "carbs") returns ["c" "r" "s"].
func Split(expr, s string) ([]string, error) {
	re, err := compile(expr)
	if err != nil {
		return nil, err
	}
	return re.Split(s, -1), nil
}

// Sub replaces every match of expr in s with repl. repl is literal:
// "$1" is not expanded.
func Sub(expr, repl, s string) (string, error) {
	re, err := compile(expr)
	if err != nil {
		return "", err
	}
	return re.ReplaceAllLiteralString(s, repl), nil
}
