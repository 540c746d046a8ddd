// Copyright (c) 2026 The Vela Authors
// SPDX-License-Identifier: MIT

package subs

// Descriptor is the payload carried by the representative ("root") of
// a union-find class. Descriptors of non-root variables are never
// consulted directly; callers always go through the root.
type Descriptor struct {
	Content Content
	Rank    Rank
	Mark    Mark
	Copy    OptVariable
}

// flexVarDescriptor is the default descriptor handed to Fresh.
func flexVarDescriptor() Descriptor {
	return Descriptor{
		Content: FlexVarContent(NoName),
		Rank:    NoRank,
		Mark:    MarkNone,
		Copy:    NoVariable,
	}
}
