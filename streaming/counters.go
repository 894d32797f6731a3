package streaming

import (
	"fmt"
	"io"
	"sort"
	"sync"
)

// Counters accumulates named task counters, grouped the way the
// framework groups them (group name, counter name). Counters are safe
// for use from the mapper and the output collector concurrently.
type Counters struct {
	mu     sync.Mutex
	groups map[string]map[string]int64
}

func NewCounters() *Counters {
	return &Counters{groups: make(map[string]map[string]int64)}
}

func (c *Counters) Increment(group, name string, amount int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	g, ok := c.groups[group]
	if !ok {
		g = make(map[string]int64)
		c.groups[group] = g
	}
	g[name] += amount
}

// Value returns the current value of a counter, or zero if it has never
// been incremented.
func (c *Counters) Value(group, name string) int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.groups[group][name]
}

// Report writes one reporter line per counter in the form the streaming
// framework scrapes from a task's stderr:
//
//	reporter:counter:<group>,<name>,<amount>
//
// Lines are sorted by group then name so reports are stable.
func (c *Counters) Report(w io.Writer) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	groups := make([]string, 0, len(c.groups))
	for g := range c.groups {
		groups = append(groups, g)
	}
	sort.Strings(groups)

	for _, g := range groups {
		names := make([]string, 0, len(c.groups[g]))
		for n := range c.groups[g] {
			names = append(names, n)
		}
		sort.Strings(names)
		for _, n := range names {
			if _, err := fmt.Fprintf(w, "reporter:counter:%s,%s,%d\n", g, n, c.groups[g][n]); err != nil {
				return fmt.Errorf("writing counter report: %v", err)
			}
		}
	}
	return nil
}
