// Package testutil provides shared test doubles.
package testutil

// MockMatcher is a mock implementation of matcher.Matcher for testing
type MockMatcher struct {
	// MatchFunc decides the result for each call. If nil, every line matches.
	MatchFunc func(s string) (bool, error)

	// Calls records every string passed to MatchString, in order.
	Calls []string
}

// MatchString implements the Matcher interface
func (m *MockMatcher) MatchString(s string) (bool, error) {
	m.Calls = append(m.Calls, s)
	if m.MatchFunc != nil {
		return m.MatchFunc(s)
	}
	return true, nil
}

// FailingReader returns its data on the first read and then fails with Err.
type FailingReader struct {
	Data []byte
	Err  error

	served bool
}

// Read implements io.Reader
func (r *FailingReader) Read(p []byte) (int, error) {
	if !r.served {
		r.served = true
		n := copy(p, r.Data)
		return n, nil
	}
	return 0, r.Err
}

// FailingWriter succeeds for FailAfter writes and then fails with Err.
type FailingWriter struct {
	Err       error
	FailAfter int

	// Writes records every successful write.
	Writes []string

	calls int
}

// Write implements io.Writer
func (w *FailingWriter) Write(p []byte) (int, error) {
	w.calls++
	if w.calls > w.FailAfter {
		return 0, w.Err
	}
	w.Writes = append(w.Writes, string(p))
	return len(p), nil
}
