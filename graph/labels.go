package graph

import (
	"fmt"

	"github.com/google/uuid"
)

// Labels assigns dense integer IDs to arbitrary string node names, the way
// an external caller would build a Graph out of named entities without
// hand-managing the [0, N) numbering Graph and the radix heap require.
type Labels struct {
	ids   map[string]int
	names []string
}

// NewLabels creates an empty label registry.
func NewLabels() *Labels {
	return &Labels{ids: make(map[string]int)}
}

// IDFor returns name's dense integer ID, assigning the next free one the
// first time name is seen.
func (l *Labels) IDFor(name string) int {
	if id, ok := l.ids[name]; ok {
		return id
	}
	id := len(l.names)
	l.ids[name] = id
	l.names = append(l.names, name)
	return id
}

// NameFor returns the name registered for id. Returns an error if id was
// never assigned.
func (l *Labels) NameFor(id int) (string, error) {
	if id < 0 || id >= len(l.names) {
		return "", fmt.Errorf("graph: id %d was never assigned a name", id)
	}
	return l.names[id], nil
}

// Len returns the number of distinct names registered so far.
func (l *Labels) Len() int { return len(l.names) }

// RunID returns a fresh identifier for tagging one shortest-path run in
// logs, independent of any node naming.
func RunID() string {
	return uuid.New().String()
}
