package fixedbuf

import (
	"strings"
	"testing"
)

type testWriter struct {
	message string
	t       testing.TB
}

func (w *testWriter) Write(b []byte) (int, error) {
	s := string(b)
	if !strings.Contains(s, w.message) {
		w.t.Error("expected log'", string(b), "' to contain", w.message)
	}

	return len(b), nil
}

func TestSetLogWriters(t *testing.T) {
	cases := []string{
		"a",
		"abcdefghijklmnopqrstuvwxyz",
		"aaaaaaaaaaaaaaaaaaaaaaaaaa",
	}

	for _, s := range cases {
		w := &testWriter{s, t}
		SetLogWriters(w)

		if len(logWriters) != 1 {
			t.Error("expected the length of logWriters to be 1")
		}

		logger.Info(s)
	}
}

func TestAddLogWriters(t *testing.T) {
	if len(logWriters) != 1 {
		t.Error("expected the length of logWriters to be 1")
	}

	AddLogWriter(&testWriter{"truncated", t})

	if len(logWriters) != 2 {
		t.Error("expected the length of logWriters to be 2")
	}
}

func TestTruncationLogging(t *testing.T) {
	SetLogWriters(&testWriter{"write truncated to complete encoded units", t})
	EnableLogging(true)
	defer EnableLogging(false)

	b, _ := New(4)
	n, err := b.WriteString("ab☃")
	if err != nil {
		t.Error(err)
		return
	}
	if n != 2 {
		t.Errorf("expected 2 bytes written, got %v", n)
	}
}
