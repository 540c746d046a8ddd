// Copyright (c) 2026 The Vela Authors
// SPDX-License-Identifier: MIT

package subs

import "testing"

// TestMarkTagUnionRecursive_RewritesSelfReferenceToRecursionVar builds
// [Cons a (List a), Nil] as a plain (non-recursive) tag union whose
// Cons payload refers back to the tag union's own variable, the way a
// parser would produce before knot-tying, then checks that marking it
// recursive replaces that self-reference with the new recursion
// variable and leaves the Nil tag untouched.
func TestMarkTagUnionRecursive_RewritesSelfReferenceToRecursionVar(t *testing.T) {
	t.Parallel()
	st := NewStore()

	listVar := st.FreshFlexVar()
	elem := st.FreshFlexVar()

	tags := InsertUnionTagsIntoSubs(st, []TagPayload{
		{Name: GlobalTagName("Cons"), Vars: []Variable{elem, listVar}},
		{Name: GlobalTagName("Nil"), Vars: nil},
	})
	st.SetContent(listVar, StructureContent(TagUnionFlat(tags, EmptyTagUnionVar)))

	recVar := st.MarkTagUnionRecursive(listVar)

	desc := st.Get(st.GetRoot(listVar))
	if desc.Content.Kind != ContentStructure || desc.Content.Flat.Kind != FlatRecursiveTagUnion {
		t.Fatalf("content kind/flat = %v/%v, want Structure/RecursiveTagUnion", desc.Content.Kind, desc.Content.Flat.Kind)
	}
	if desc.Content.Flat.RecVar != recVar {
		t.Fatalf("RecVar = %s, want %s", desc.Content.Flat.RecVar, recVar)
	}

	names := st.tagNames.slice(desc.Content.Flat.Tags.TagNames())
	payloads := st.variableSlices.slice(desc.Content.Flat.Tags.Variables())

	var consArgs, nilArgs []Variable
	for i, name := range names {
		switch name {
		case GlobalTagName("Cons"):
			consArgs = st.variables.slice(payloads[i])
		case GlobalTagName("Nil"):
			nilArgs = st.variables.slice(payloads[i])
		}
	}

	if len(consArgs) != 2 {
		t.Fatalf("Cons payload has %d args, want 2", len(consArgs))
	}
	if consArgs[0] != elem {
		t.Fatalf("Cons first arg = %s, want unchanged %s", consArgs[0], elem)
	}
	if consArgs[1] != recVar {
		t.Fatalf("Cons second arg = %s, want the recursion var %s", consArgs[1], recVar)
	}
	if len(nilArgs) != 0 {
		t.Fatalf("Nil payload has %d args, want 0", len(nilArgs))
	}

	if st.GetContent(recVar).Kind != ContentRecursionVar {
		t.Fatalf("recVar content kind = %v, want ContentRecursionVar", st.GetContent(recVar).Kind)
	}
}

func TestMarkTagUnionRecursive_PanicsOnNonTagUnion(t *testing.T) {
	t.Parallel()
	st := NewStore()

	defer func() {
		if recover() == nil {
			t.Fatalf("expected MarkTagUnionRecursive to panic on a non-tag-union variable")
		}
	}()
	st.MarkTagUnionRecursive(st.FreshFlexVar())
}
