// Copyright (c) 2026 The Vela Authors
// SPDX-License-Identifier: MIT

package subs

import "testing"

func TestRestore_ResetsRankAndCopyThroughStructure(t *testing.T) {
	t.Parallel()
	st := NewStore()

	elem := st.FreshFlexVar()
	st.SetRank(elem, Rank(5))
	st.SetCopy(elem, st.FreshFlexVar())

	args := st.variables.extendNew([]Variable{elem})
	list := st.Fresh(Descriptor{
		Content: StructureContent(ApplyFlat(Symbol("List.List"), args)),
		Rank:    Rank(5),
		Mark:    MarkNone,
		Copy:    NoVariable,
	})

	st.Restore(list)

	if st.GetRank(list) != NoRank {
		t.Fatalf("GetRank(list) = %v, want NoRank", st.GetRank(list))
	}
	if st.GetRank(elem) != NoRank {
		t.Fatalf("GetRank(elem) = %v, want NoRank", st.GetRank(elem))
	}
	if st.GetCopy(elem) != NoVariable {
		t.Fatalf("GetCopy(elem) = %v, want NoVariable", st.GetCopy(elem))
	}
}

func TestVarContainsContent_FindsNestedKind(t *testing.T) {
	t.Parallel()
	st := NewStore()

	err := st.Fresh(Descriptor{Content: ErrorContent, Rank: NoRank, Mark: MarkNone, Copy: NoVariable})
	args := st.variables.extendNew([]Variable{err})
	outer := st.Fresh(structureDescriptor(ApplyFlat(Symbol("List.List"), args)))

	if !st.VarContainsContent(outer, ContentError) {
		t.Fatalf("VarContainsContent should find the nested Error content")
	}
	if st.VarContainsContent(outer, ContentRigidVar) {
		t.Fatalf("VarContainsContent found a ContentRigidVar that isn't there")
	}
}
