package pipeline

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/appkit/core/handler"
)

// Entry is one named middleware in a pipeline.
type Entry[C handler.Context] struct {
	Name       string
	Middleware handler.Middleware[C]
}

// Pipeline is an ordered middleware chain. It is assembled once at
// container construction and must not change after the first request is
// served; the application container enforces that freeze.
type Pipeline[C handler.Context] struct {
	entries []Entry[C]
}

// Build assembles a pipeline from a catalog of named middleware.
//
// With an explicit order, entries appear exactly in that order; names
// missing from the catalog are skipped, each recorded as an
// "invalid middleware" warning. Blank names are ignored, and an order
// with no usable names counts as omitted: every catalog entry is
// included in unspecified order, so callers must not depend on the
// relative position of two entries selected this way.
func Build[C handler.Context](catalog map[string]handler.Middleware[C], order []string) (*Pipeline[C], []string) {
	p := &Pipeline[C]{}

	names := make([]string, 0, len(order))
	for _, name := range order {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}

	if len(names) == 0 {
		for name, m := range catalog {
			p.entries = append(p.entries, Entry[C]{Name: name, Middleware: m})
		}
		return p, nil
	}

	var warnings []string
	for _, name := range names {
		m, ok := catalog[name]
		if !ok {
			warnings = append(warnings, fmt.Sprintf("invalid middleware: %s", name))
			continue
		}
		p.entries = append(p.entries, Entry[C]{Name: name, Middleware: m})
	}
	return p, warnings
}

// Append adds a middleware to the end of the chain. Safe only before the
// first request is served.
func (p *Pipeline[C]) Append(name string, m handler.Middleware[C]) {
	p.entries = append(p.entries, Entry[C]{Name: name, Middleware: m})
}

// Names returns the entry names in chain order.
func (p *Pipeline[C]) Names() []string {
	names := make([]string, len(p.entries))
	for i, e := range p.entries {
		names[i] = e.Name
	}
	return names
}

// Len returns the number of entries in the chain.
func (p *Pipeline[C]) Len() int {
	return len(p.entries)
}

// Then closes the chain over a terminal handler: entry 0 wraps entry 1,
// and so on down to terminal. Each entry may short-circuit by returning
// its own response, or post-process the response coming back up.
func (p *Pipeline[C]) Then(terminal handler.HandlerFunc[C]) handler.HandlerFunc[C] {
	h := terminal
	for i := len(p.entries) - 1; i >= 0; i-- {
		h = p.entries[i].Middleware(h)
	}
	return h
}
