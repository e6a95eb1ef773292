package matcher

import (
	"fmt"
	"time"

	"github.com/dlclark/regexp2"
)

// Matcher tests whether a compiled pattern occurs anywhere in a string.
type Matcher interface {
	MatchString(s string) (bool, error)
}

// regexMatcher implements Matcher on top of the regexp2 engine.
type regexMatcher struct {
	re *regexp2.Regexp
}

// Compile compiles a pattern into a reusable Matcher.
func Compile(pattern string) (Matcher, error) {
	return CompileWithTimeout(pattern, 0)
}

// CompileWithTimeout compiles a pattern and caps each match attempt at the
// given timeout. A timeout of zero disables the cap.
func CompileWithTimeout(pattern string, timeout time.Duration) (Matcher, error) {
	re, err := regexp2.Compile(pattern, regexp2.None)
	if err != nil {
		return nil, fmt.Errorf("failed to compile pattern %q: %w", pattern, err)
	}

	if timeout > 0 {
		re.MatchTimeout = timeout
	}

	return &regexMatcher{re: re}, nil
}

// MatchString reports whether the pattern matches anywhere in s. The error
// is non-nil only if the engine's match timeout fires.
func (m *regexMatcher) MatchString(s string) (bool, error) {
	return m.re.MatchString(s)
}
