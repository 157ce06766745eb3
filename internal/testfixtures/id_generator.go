package testfixtures

import (
	"fmt"
	"sync"
)

// IDGenerator yields "prefix-1", "prefix-2", ... so tests can address the
// records a service created without capturing ids from responses. It
// stands in for the uuid source the binary wires.
type IDGenerator struct {
	mu     sync.Mutex
	prefix string
	next   uint64
}

// NewIDGenerator returns a generator for the given prefix, "id" when
// prefix is empty.
func NewIDGenerator(prefix string) *IDGenerator {
	if prefix == "" {
		prefix = "id"
	}
	return &IDGenerator{prefix: prefix}
}

// Next returns the next identifier in sequence, starting at prefix-1.
func (g *IDGenerator) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.next++
	return fmt.Sprintf("%s-%d", g.prefix, g.next)
}

// NextFunc adapts the generator to the id-func shape the services accept.
// A nil generator yields empty ids.
func (g *IDGenerator) NextFunc() func() string {
	if g == nil {
		return func() string { return "" }
	}
	return g.Next
}
