// Package pattern wraps regular-expression matching behind four small
// string-in, result-out helpers.
//
//   - Match:  does expr match at the very start of s?
//   - Search: does expr match anywhere in s?
//   - Split:  slice s around every match of expr.
//   - Sub:    replace every match of expr with a literal string.
//
// Expressions use RE2 syntax. Compiled expressions are cached per
// expression string, so repeated calls with the same expr compile once.
//
// Errors:
//
//   - ErrBadPattern: expr failed to compile; the compiler's message is wrapped.
package pattern
