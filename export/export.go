// Package export hands the serialized path to whatever consumes it.
package export

import (
	"strconv"
	"sync"

	"github.com/milk9111/pathplanner/plan"
)

// Sink receives exported path text.
type Sink interface {
	Copy(text string) error
}

// Text renders a path for export. With quoted set the result is a quoted,
// escaped string literal ready to paste into robot code.
func Text(p *plan.Path, quoted bool) string {
	s := p.String()
	if quoted {
		return strconv.Quote(s)
	}
	return s
}

// Memory is a Sink that keeps the last copied text.
type Memory struct {
	mu     sync.Mutex
	last   string
	copies int
}

func (m *Memory) Copy(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.last = text
	m.copies++
	return nil
}

// Last returns the most recent text and how many copies were made.
func (m *Memory) Last() (string, int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.last, m.copies
}
