// Copyright (c) 2026 The Vela Authors
// SPDX-License-Identifier: MIT

package subs

import "testing"

func TestGetVarNames_AssignsDistinctLetters(t *testing.T) {
	t.Parallel()
	st := NewStore()

	a := st.FreshFlexVar()
	b := st.FreshFlexVar()
	args := st.variables.extendNew([]Variable{a, b})
	pair := st.Fresh(structureDescriptor(ApplyFlat(Symbol("Pair.Pair"), args)))

	names := st.GetVarNames(pair)
	if len(names) != 2 {
		t.Fatalf("got %d names, want 2", len(names))
	}
	if names[a] == names[b] {
		t.Fatalf("a and b were assigned the same name %q", names[a])
	}
}

func TestGetVarNames_StableAcrossRepeatedCalls(t *testing.T) {
	t.Parallel()
	st := NewStore()

	v := st.FreshFlexVar()
	first := st.GetVarNames(v)[v]
	second := st.GetVarNames(v)[v]

	if first != second {
		t.Fatalf("name changed across calls: %q then %q", first, second)
	}
}

func TestGetVarNames_SkipsAlreadyNamedRigidVar(t *testing.T) {
	t.Parallel()
	st := NewStore()

	named := st.FreshFlexVar()
	idx := NameIndex(st.fieldNames.push(Lowercase("q")))
	content := RigidVarContent(NoName)
	content.Name = idx
	st.SetContent(named, content)

	names := st.GetVarNames(named)
	if names[named] != Lowercase("q") {
		t.Fatalf("names[named] = %q, want %q (the pre-existing name)", names[named], "q")
	}
}

func TestLetterGenerator_WrapsToSuffixedNames(t *testing.T) {
	t.Parallel()
	gen := &letterGenerator{}
	for i := 0; i < 26; i++ {
		gen.next()
	}
	if got := gen.next(); got != Lowercase("a1") {
		t.Fatalf("27th generated name = %q, want %q", got, "a1")
	}
}
