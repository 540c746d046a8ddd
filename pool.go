// Copyright (c) 2026 The Vela Authors
// SPDX-License-Identifier: MIT

package subs

import (
	"sync"
	"sync/atomic"
)

// touchedPool is a type-safe wrapper around sync.Pool, specialized
// for the scratch []Variable slice DeepCopyVarTo and CopyImportTo use
// to remember which source variables had their Copy field set during
// one call, so it can be cleared again once the copy is done.
//
// It efficiently reuses the backing array across calls and tracks
// statistics on allocations and active use for debugging and
// performance tuning.
type touchedPool struct {
	sync.Pool // embedded sync.Pool for *[]Variable

	// TODO: remove it once the code is stable.
	totalAllocated atomic.Int64 // total number of scratch slices ever allocated
	currentLive    atomic.Int64 // number of scratch slices currently checked out
}

func newTouchedPool() *touchedPool {
	p := &touchedPool{}
	p.New = func() any {
		p.totalAllocated.Add(1) // TODO: remove it once the code is stable.

		s := make([]Variable, 0, 64)
		return &s
	}
	return p
}

// Get retrieves a scratch slice from the pool, truncated to length 0.
func (p *touchedPool) Get() *[]Variable {
	p.currentLive.Add(1) // TODO: remove it once the code is stable.

	s := p.Pool.Get().(*[]Variable)
	*s = (*s)[:0]
	return s
}

// Put returns a scratch slice to the pool for potential reuse.
func (p *touchedPool) Put(s *[]Variable) {
	p.currentLive.Add(-1) // TODO: remove it once the code is stable.

	p.Pool.Put(s)
}

// Stats returns the number of currently checked-out scratch slices
// and the total number ever allocated by this pool.
//
// TODO: remove it once the code is stable.
func (p *touchedPool) Stats() (live int64, total int64) {
	return p.currentLive.Load(), p.totalAllocated.Load()
}

var scratchPool = newTouchedPool()

func getScratch() *[]Variable { return scratchPool.Get() }

func putScratch(s *[]Variable) { scratchPool.Put(s) }
