// Copyright (c) 2026 The Vela Authors
// SPDX-License-Identifier: MIT

package subs

import "testing"

func TestOccurs_DirectSelfReference(t *testing.T) {
	t.Parallel()
	st := NewStore()

	a := st.FreshFlexVar()
	args := st.variables.extendNew([]Variable{a})
	st.SetContent(a, StructureContent(ApplyFlat(SymNumNum, args)))

	err := st.Occurs(a)
	if err == nil {
		t.Fatalf("Occurs(a) = nil, want an OccursError for a directly self-referential structure")
	}
	if err.Culprit != a {
		t.Fatalf("Culprit = %s, want %s", err.Culprit, a)
	}
}

func TestOccurs_NoCycleThroughUnrelatedStructure(t *testing.T) {
	t.Parallel()
	st := NewStore()

	a := st.FreshFlexVar()
	args := st.variables.extendNew([]Variable{a})
	pair := st.FreshFlexVar()
	st.SetContent(pair, StructureContent(ApplyFlat(Symbol("Box.Box"), args)))

	if err := st.Occurs(pair); err != nil {
		t.Fatalf("Occurs(pair) = %+v, want nil: pair's element a does not cycle back to pair", err)
	}
}

func TestOccurs_StopsAtRecursionVar(t *testing.T) {
	t.Parallel()
	st := NewStore()

	tagUnionVar := st.FreshFlexVar()
	payload := st.variables.extendNew([]Variable{tagUnionVar})
	st.variableSlices.push(payload)
	tagNamesStart := uint32(st.tagNames.len())
	st.tagNames.push(GlobalTagName("Cons"))
	tags := UnionTags{tagNamesStart: tagNamesStart, variablesStart: uint32(st.variableSlices.len()) - 1, length: 1}
	st.SetContent(tagUnionVar, StructureContent(TagUnionFlat(tags, EmptyTagUnionVar)))

	recVar := st.MarkTagUnionRecursive(tagUnionVar)

	// After MarkTagUnionRecursive, the self-reference inside the tag
	// payload points at recVar, not at tagUnionVar itself, so walking
	// from tagUnionVar no longer finds tagUnionVar as an occurrence —
	// the cycle is now properly tied off through the recursion point.
	if err := st.Occurs(tagUnionVar); err != nil {
		t.Fatalf("Occurs(tagUnionVar) = %+v after MarkTagUnionRecursive, want nil", err)
	}
	if recVar == NullVar {
		t.Fatalf("MarkTagUnionRecursive returned the null variable")
	}
}

func TestOccursIncludingRecursionVars_ReportsCycleThroughRecursionPoint(t *testing.T) {
	t.Parallel()
	st := NewStore()

	tagUnionVar := st.FreshFlexVar()
	payload := st.variables.extendNew([]Variable{tagUnionVar})
	st.variableSlices.push(payload)
	tagNamesStart := uint32(st.tagNames.len())
	st.tagNames.push(GlobalTagName("Cons"))
	tags := UnionTags{tagNamesStart: tagNamesStart, variablesStart: uint32(st.variableSlices.len()) - 1, length: 1}
	st.SetContent(tagUnionVar, StructureContent(TagUnionFlat(tags, EmptyTagUnionVar)))
	st.MarkTagUnionRecursive(tagUnionVar)

	if err := st.Occurs(tagUnionVar); err != nil {
		t.Fatalf("Occurs(tagUnionVar) = %+v, want nil once tied off by a recursion point", err)
	}
	if err := st.OccursIncludingRecursionVars(tagUnionVar); err == nil {
		t.Fatalf("OccursIncludingRecursionVars(tagUnionVar) = nil, want a cycle reported through the recursion point")
	}
}
