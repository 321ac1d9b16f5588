package cli

import (
	"bufio"
	"fmt"
	"strings"
	"sync"
	"testing"
)

func readerFromLines(lines ...string) *bufio.Reader {
	if len(lines) == 0 || lines[len(lines)-1] != "" {
		lines = append(lines, "")
	}
	return bufio.NewReader(strings.NewReader(strings.Join(lines, "\n")))
}

type printed struct {
	mu    sync.Mutex
	lines []string
}

func (p *printed) all() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.lines...)
}

func (p *printed) text() string { return strings.Join(p.all(), "\n") }

// capturePrint redirects printlnFn for the duration of the test.
func capturePrint(t *testing.T) *printed {
	t.Helper()
	p := &printed{}
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		s := strings.TrimSuffix(fmt.Sprintln(a...), "\n")
		p.mu.Lock()
		p.lines = append(p.lines, s)
		p.mu.Unlock()
		return len(s), nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return p
}

func bufioReader(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}
