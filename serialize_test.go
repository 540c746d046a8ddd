// Copyright (c) 2026 The Vela Authors
// SPDX-License-Identifier: MIT

package subs

import "testing"

func TestSerializeDeserialize_RoundTripsReservedPrefix(t *testing.T) {
	t.Parallel()
	st := NewStore()

	data := Serialize(st)
	got, err := Deserialize(data)
	if err != nil {
		t.Fatalf("Deserialize: %v", err)
	}

	if got.Len() != st.Len() {
		t.Fatalf("Len() = %d, want %d", got.Len(), st.Len())
	}

	for _, v := range []Variable{BoolVar, I8Var, I128Var, U64Var, NatVar, F32Var, F64Var, DecVar} {
		origDesc := st.Get(v)
		gotDesc := got.Get(v)
		if origDesc.Content.Kind != gotDesc.Content.Kind {
			t.Fatalf("%s content kind = %v, want %v", v, gotDesc.Content.Kind, origDesc.Content.Kind)
		}
		if origDesc.Content.AliasSymbol != gotDesc.Content.AliasSymbol {
			t.Fatalf("%s alias symbol = %q, want %q", v, gotDesc.Content.AliasSymbol, origDesc.Content.AliasSymbol)
		}
	}
}

func TestSerializeDeserialize_RoundTripsUserStructure(t *testing.T) {
	t.Parallel()
	st := NewStore()

	elem := st.FreshFlexVar()
	st.SetContent(elem, RigidVarContent(NoName))
	args := st.variables.extendNew([]Variable{elem})
	list := st.Fresh(Descriptor{
		Content: StructureContent(ApplyFlat(Symbol("List.List"), args)),
		Rank:    Toplevel,
		Mark:    MarkNone,
		Copy:    NoVariable,
	})

	data := Serialize(st)
	got, err := Deserialize(data)
	if err != nil {
		t.Fatalf("Deserialize: %v", err)
	}

	desc := got.Get(list)
	if desc.Rank != Toplevel {
		t.Fatalf("Rank = %v, want Toplevel", desc.Rank)
	}
	if desc.Content.Kind != ContentStructure || desc.Content.Flat.Kind != FlatApply {
		t.Fatalf("content = %+v, want Structure(Apply)", desc.Content)
	}
	if desc.Content.Flat.ApplySymbol != "List.List" {
		t.Fatalf("apply symbol = %q, want List.List", desc.Content.Flat.ApplySymbol)
	}

	gotElem := got.variables.slice(desc.Content.Flat.ApplyArgs)[0]
	if got.GetContent(gotElem).Kind != ContentRigidVar {
		t.Fatalf("element content = %v, want ContentRigidVar", got.GetContent(gotElem).Kind)
	}
}

func TestSerializeDeserialize_NonRootVariableRedirects(t *testing.T) {
	t.Parallel()
	st := NewStore()

	a := st.FreshFlexVar()
	b := st.FreshFlexVar()
	root := st.Union(a, b, flexVarDescriptor())

	data := Serialize(st)
	got, err := Deserialize(data)
	if err != nil {
		t.Fatalf("Deserialize: %v", err)
	}

	if !got.Equivalent(a, b) {
		t.Fatalf("a and b should still be equivalent after round-trip")
	}
	if got.GetRoot(a) != root && got.GetRoot(b) != root {
		t.Fatalf("neither a nor b round-tripped to the original surviving root %s", root)
	}
}

func TestDeserialize_RejectsWrongVersion(t *testing.T) {
	t.Parallel()
	st := NewStore()
	data := Serialize(st)

	// Corrupt the leading version tag.
	corrupt := append([]byte(nil), data...)
	corrupt[0] ^= 0xFF

	if _, err := Deserialize(corrupt); err == nil {
		t.Fatalf("Deserialize accepted a store with a corrupted version tag")
	}
}
