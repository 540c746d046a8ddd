// Copyright (c) 2026 The Vela Authors
// SPDX-License-Identifier: MIT

// Package subs implements the type-variable substitution store for a
// Hindley-Milner style type inferencer.
//
// The Store is a union-find table over dense 32-bit Variable ids, each
// carrying a Descriptor (Content, Rank, Mark, Copy). Variable-length
// children — tag payloads, record fields, alias arguments — never live
// inline in a Descriptor; they are appended to one of five shared arenas
// and referenced back by a (start, length) Slice.
//
// A fixed prefix of reserved variables (the numeric tower, Bool, the
// empty record and empty tag union) is pre-seeded at construction and is
// never reassigned; see NumReservedVars.
//
// Store is not safe for concurrent use. It is synchronous: every method
// runs to completion before returning, and there are no internal locks.
package subs
