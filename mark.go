// Copyright (c) 2026 The Vela Authors
// SPDX-License-Identifier: MIT

package subs

// Mark is a per-pass monotonically increasing counter used to
// short-circuit revisits during graph traversal. Three values are
// reserved; MarkNone is the value every fresh Descriptor carries.
type Mark int32

const (
	MarkGetVarNames Mark = 0
	MarkOccurs      Mark = 1
	MarkNone        Mark = 2
)

// Next returns m+1. Starting from MarkNone, the marks it produces never
// coincide with the three reserved values.
func (m Mark) Next() Mark { return m + 1 }

// markGen hands out fresh marks for traversals that need their own
// pass-local "visited" sentinel instead of the three reserved values.
type markGen struct {
	next Mark
}

func newMarkGen() markGen {
	return markGen{next: MarkNone.Next()}
}

func (g *markGen) fresh() Mark {
	m := g.next
	g.next = g.next.Next()
	return m
}
