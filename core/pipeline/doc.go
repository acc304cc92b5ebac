// Package pipeline assembles the request responder: an ordered chain of
// named middleware closed over a terminal fallback router responder.
//
//	p, warns := pipeline.Build(catalog, []string{"abort", "date"})
//	respond := p.Then(pipeline.Fallback(routes))
//
// The chain is an onion, not a sequence of stages: entry 0 sees the
// request first and the response last, and any entry may short-circuit
// without the rest ever running.
package pipeline
