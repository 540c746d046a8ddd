// Copyright (c) 2026 The Vela Authors
// SPDX-License-Identifier: MIT

package subs

// unionFind is a union-find forest over dense Variable ids. Every id
// has a parent pointer; an id is a root exactly when it is its own
// parent, and only a root's slot in descs is authoritative — a
// non-root's slot is stale leftover from before it was unioned away.
//
// Every mutation, including path-compression writes performed by a
// plain lookup, is appended to an undo log. Snapshot/Rollback/Commit
// are the only way to discard suffixes of that log, which is what
// makes Rollback restore byte-identical state regardless of how many
// lookups ran in between.
type unionFind struct {
	parent []Variable
	descs  []Descriptor
	log    []ufLogEntry
}

type ufLogKind uint8

const (
	ufLogNewKey ufLogKind = iota
	ufLogParent
	ufLogDescriptor
)

type ufLogEntry struct {
	kind     ufLogKind
	idx      uint32
	prevVar  Variable
	prevDesc Descriptor
}

func newUnionFind() unionFind {
	return unionFind{}
}

func (u *unionFind) len() int { return len(u.parent) }

// fresh allocates a new root variable carrying desc.
func (u *unionFind) fresh(desc Descriptor) Variable {
	idx := uint32(len(u.parent))
	v := Variable(idx)
	u.parent = append(u.parent, v)
	u.descs = append(u.descs, desc)
	u.log = append(u.log, ufLogEntry{kind: ufLogNewKey, idx: idx})
	return v
}

// extendBy allocates n new flex-var roots in one call and returns
// their contiguous id range. Each id goes through fresh, so each gets
// its own log entry.
func (u *unionFind) extendBy(n int) Slice[Variable] {
	start := uint32(len(u.parent))
	for i := 0; i < n; i++ {
		u.fresh(flexVarDescriptor())
	}
	return NewSlice[Variable](start, uint16(n))
}

// getRootWithoutCompacting walks parent pointers to the root without
// writing anything back, for read-only callers (the occurs-check) that
// must not perturb the log.
func (u *unionFind) getRootWithoutCompacting(v Variable) Variable {
	for u.parent[v] != v {
		v = u.parent[v]
	}
	return v
}

// getRoot walks to the root and path-compresses every link visited
// along the way, logging each rewritten pointer so Rollback can undo
// the compaction exactly.
func (u *unionFind) getRoot(v Variable) Variable {
	root := u.getRootWithoutCompacting(v)
	for u.parent[v] != root {
		next := u.parent[v]
		u.log = append(u.log, ufLogEntry{kind: ufLogParent, idx: uint32(v), prevVar: u.parent[v]})
		u.parent[v] = root
		v = next
	}
	return root
}

// isRedirect reports whether v is not its own root, without
// compacting.
func (u *unionFind) isRedirect(v Variable) bool {
	return u.parent[v] != v
}

// get returns the Descriptor at v's root, compacting along the way.
func (u *unionFind) get(v Variable) Descriptor {
	return u.descs[u.getRoot(v)]
}

// set overwrites the Descriptor at v's root.
func (u *unionFind) set(v Variable, desc Descriptor) {
	root := u.getRoot(v)
	u.setAt(root, desc)
}

func (u *unionFind) setAt(root Variable, desc Descriptor) {
	u.log = append(u.log, ufLogEntry{kind: ufLogDescriptor, idx: uint32(root), prevDesc: u.descs[root]})
	u.descs[root] = desc
}

// modify applies f to the Descriptor at v's root in place.
func (u *unionFind) modify(v Variable, f func(*Descriptor)) {
	root := u.getRoot(v)
	next := u.descs[root]
	f(&next)
	u.setAt(root, next)
}

// equivalent reports whether l and r share a root.
func (u *unionFind) equivalent(l, r Variable) bool {
	return u.getRoot(l) == u.getRoot(r)
}

// union links l's root into r's root — right root wins, matching the
// convention the unifier already expects from unify(l, r) — and
// installs desc as the surviving root's Descriptor. Returns the
// surviving root. A no-op union (l and r already equivalent) still
// overwrites the shared root's Descriptor with desc.
func (u *unionFind) union(l, r Variable, desc Descriptor) Variable {
	rl := u.getRoot(l)
	rr := u.getRoot(r)
	if rl == rr {
		u.setAt(rr, desc)
		return rr
	}
	u.log = append(u.log, ufLogEntry{kind: ufLogParent, idx: uint32(rl), prevVar: u.parent[rl]})
	u.parent[rl] = rr
	u.setAt(rr, desc)
	return rr
}

// Snapshot is an opaque marker returned by Snapshot and consumed by
// Rollback or Commit.
type Snapshot struct {
	logLen int
	keyLen int
}

func (u *unionFind) snapshot() Snapshot {
	return Snapshot{logLen: len(u.log), keyLen: len(u.parent)}
}

// rollback undoes every mutation performed since s was taken,
// including variables allocated since s — the id range
// [s.keyLen, len(u.parent)) is discarded along with the log entries
// that describe it.
func (u *unionFind) rollback(s Snapshot) {
	for i := len(u.log) - 1; i >= s.logLen; i-- {
		e := u.log[i]
		switch e.kind {
		case ufLogParent:
			u.parent[e.idx] = e.prevVar
		case ufLogDescriptor:
			u.descs[e.idx] = e.prevDesc
		case ufLogNewKey:
			// handled by the truncation below
		}
	}
	u.log = u.log[:s.logLen]
	u.parent = u.parent[:s.keyLen]
	u.descs = u.descs[:s.keyLen]
}

// commit drops the undo log back to s without touching current state,
// so the mutations since s become permanent in O(1).
func (u *unionFind) commit(s Snapshot) {
	u.log = u.log[:s.logLen]
}
