// Copyright (c) 2026 The Vela Authors
// SPDX-License-Identifier: MIT

package subs

import "testing"

func TestNewStore_SeedsReservedPrefix(t *testing.T) {
	t.Parallel()
	st := NewStore()

	if got := st.Len(); got != int(NumReservedVars) {
		t.Fatalf("Len() after NewStore = %d, want %d", got, NumReservedVars)
	}
	if got := Variable(st.Len()); got != FirstUserSpaceVar {
		t.Fatalf("first user-space id = %s, want %s", got, FirstUserSpaceVar)
	}
}

func TestNewStore_BoolIsTwoTagUnion(t *testing.T) {
	t.Parallel()
	st := NewStore()

	desc := st.Get(BoolVar)
	if desc.Content.Kind != ContentAlias {
		t.Fatalf("BoolVar content kind = %v, want ContentAlias", desc.Content.Kind)
	}
	if desc.Content.AliasSymbol != SymBoolBool {
		t.Fatalf("BoolVar alias symbol = %q, want %q", desc.Content.AliasSymbol, SymBoolBool)
	}

	enumDesc := st.Get(desc.Content.AliasReal)
	if enumDesc.Content.Kind != ContentStructure || enumDesc.Content.Flat.Kind != FlatTagUnion {
		t.Fatalf("Bool's real type is not a plain tag union")
	}

	tags := enumDesc.Content.Flat.Tags
	if tags.Len() != 2 {
		t.Fatalf("Bool tag union has %d tags, want 2", tags.Len())
	}
	names := st.tagNames.slice(tags.TagNames())
	if string(names[0].Global) != "False" || string(names[1].Global) != "True" {
		t.Fatalf("Bool tags = %v, want [False True]", names)
	}
}

func TestNewStore_ResultTagNamesOccupyFirstTwoSlots(t *testing.T) {
	t.Parallel()
	st := NewStore()

	if got := st.tagNames.get(0); got.Global != "Err" {
		t.Fatalf("tagNames[0] = %v, want Err", got)
	}
	if got := st.tagNames.get(1); got.Global != "Ok" {
		t.Fatalf("tagNames[1] = %v, want Ok", got)
	}
}

func TestGetReserved_NumericTower(t *testing.T) {
	t.Parallel()

	cases := []struct {
		sym  Symbol
		want Variable
	}{
		{SymNumI8, I8Var},
		{SymNumI128, I128Var},
		{SymNumU64, U64Var},
		{SymNumNat, NatVar},
		{SymNumF32, F32Var},
		{SymNumDec, DecVar},
		{SymBoolBool, BoolVar},
	}
	for _, c := range cases {
		got, ok := GetReserved(c.sym)
		if !ok {
			t.Errorf("GetReserved(%q) not found", c.sym)
			continue
		}
		if got != c.want {
			t.Errorf("GetReserved(%q) = %s, want %s", c.sym, got, c.want)
		}
	}

	if _, ok := GetReserved("not.a.reserved.symbol"); ok {
		t.Fatalf("GetReserved should report ok=false for an unknown symbol")
	}
}

func TestNewStore_I8IsNumIntegerSigned8(t *testing.T) {
	t.Parallel()
	st := NewStore()

	i8 := st.Get(I8Var)
	if i8.Content.Kind != ContentAlias || i8.Content.AliasSymbol != SymNumI8 {
		t.Fatalf("I8Var is not the I8 alias")
	}

	numWrapper := st.Get(i8.Content.AliasReal)
	if numWrapper.Content.Kind != ContentAlias || numWrapper.Content.AliasSymbol != SymNumNum {
		t.Fatalf("I8's real type is not a Num wrapper")
	}

	integerWrapper := st.Get(numWrapper.Content.AliasReal)
	if integerWrapper.Content.Kind != ContentAlias || integerWrapper.Content.AliasSymbol != symNumInteger {
		t.Fatalf("I8's Num wrapper does not wrap an Integer")
	}

	marker := st.Get(integerWrapper.Content.AliasReal)
	if marker.Content.Kind != ContentStructure || marker.Content.Flat.Kind != FlatApply || marker.Content.Flat.ApplySymbol != symSigned8 {
		t.Fatalf("I8's Integer wrapper does not wrap Signed8")
	}
}
