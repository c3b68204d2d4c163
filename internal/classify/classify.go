// Package classify decides whether a raw log line is an error line.
package classify

import (
	"fmt"
	"regexp"
	"strings"
)

// Matcher reports whether a line should be treated as an error.
type Matcher interface {
	Match(line string) bool
}

// MatcherFunc adapts a plain function to the Matcher interface.
type MatcherFunc func(line string) bool

// Match calls f.
func (f MatcherFunc) Match(line string) bool { return f(line) }

// Substring returns a case-insensitive substring matcher.
func Substring(pattern string) Matcher {
	lowered := strings.ToLower(pattern)
	return MatcherFunc(func(line string) bool {
		return strings.Contains(strings.ToLower(line), lowered)
	})
}

// Regexp compiles pattern as a case-insensitive regular expression and
// returns a matcher backed by it.
func Regexp(pattern string) (Matcher, error) {
	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		return nil, fmt.Errorf("compile matcher pattern: %w", err)
	}
	return MatcherFunc(re.MatchString), nil
}

// Default matches any line containing "error", ignoring case.
func Default() Matcher {
	return Substring("error")
}
