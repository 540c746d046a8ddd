// Copyright (c) 2026 The Vela Authors
// SPDX-License-Identifier: MIT

package subs

import "testing"

func TestVarToErrorType_FlexVarGetsAName(t *testing.T) {
	t.Parallel()
	st := NewStore()

	v := st.FreshFlexVar()
	et := st.VarToErrorType(v, ErrorTypeContext{})

	if et.Kind != ErrFlexVar {
		t.Fatalf("Kind = %v, want ErrFlexVar", et.Kind)
	}
	if et.Name == "" {
		t.Fatalf("flex var projected with an empty name")
	}
}

func TestVarToErrorType_MergesExtensibleRecord(t *testing.T) {
	t.Parallel()
	st := NewStore()

	innerExt := st.FreshFlexVar()
	inner := InsertRecordFieldsIntoSubs(st, []RecordField{
		{Name: "y", Var: st.FreshFlexVar(), Kind: RecordRequired},
	})
	innerVar := st.Fresh(structureDescriptor(RecordFlat(inner, innerExt)))

	outer := InsertRecordFieldsIntoSubs(st, []RecordField{
		{Name: "x", Var: st.FreshFlexVar(), Kind: RecordRequired},
	})
	outerVar := st.Fresh(structureDescriptor(RecordFlat(outer, innerVar)))

	et := st.VarToErrorType(outerVar, ErrorTypeContext{})
	if et.Kind != ErrRecord {
		t.Fatalf("Kind = %v, want ErrRecord", et.Kind)
	}
	if len(et.Fields) != 2 {
		t.Fatalf("got %d fields, want 2 (merged through the extension)", len(et.Fields))
	}
	if et.Ext == nil || et.Ext.Kind != ErrFlexVar {
		t.Fatalf("Ext = %+v, want an open flex-var extension", et.Ext)
	}
}

func TestVarToErrorType_ClosedRecordHasNilExt(t *testing.T) {
	t.Parallel()
	st := NewStore()

	fields := InsertRecordFieldsIntoSubs(st, []RecordField{
		{Name: "x", Var: st.FreshFlexVar(), Kind: RecordRequired},
	})
	v := st.Fresh(structureDescriptor(RecordFlat(fields, EmptyRecordVar)))

	et := st.VarToErrorType(v, ErrorTypeContext{})
	if et.Ext != nil {
		t.Fatalf("Ext = %+v, want nil for a closed record", et.Ext)
	}
}

func TestVarToErrorType_RangedNumberListsCandidatesUnlessExpanded(t *testing.T) {
	t.Parallel()
	st := NewStore()

	rangeVars := st.variables.extendNew([]Variable{I8Var, I16Var})
	v := st.Fresh(structureDescriptor(FlatType{}))
	st.SetContent(v, RangedNumberContent(I8Var, rangeVars))

	et := st.VarToErrorType(v, ErrorTypeContext{ExpandRanges: false})
	if et.Kind != ErrRange {
		t.Fatalf("Kind = %v, want ErrRange", et.Kind)
	}
	if len(et.RangeCandidates) != 2 {
		t.Fatalf("got %d candidates, want 2", len(et.RangeCandidates))
	}

	expanded := st.VarToErrorType(v, ErrorTypeContext{ExpandRanges: true})
	if expanded.Kind != ErrAlias || expanded.Symbol != SymNumI8 {
		t.Fatalf("expanded Kind/Symbol = %v/%q, want ErrAlias/%q", expanded.Kind, expanded.Symbol, SymNumI8)
	}
}

func TestVarToErrorType_RecursiveTagUnionClosesCycle(t *testing.T) {
	t.Parallel()
	st := NewStore()

	tagUnionVar := st.FreshFlexVar()
	payload := st.variables.extendNew([]Variable{tagUnionVar})
	variablesStart := uint32(st.variableSlices.len())
	st.variableSlices.push(payload)
	tagNamesStart := uint32(st.tagNames.len())
	st.tagNames.push(GlobalTagName("Cons"))
	tags := UnionTags{tagNamesStart: tagNamesStart, variablesStart: variablesStart, length: 1}
	st.SetContent(tagUnionVar, StructureContent(TagUnionFlat(tags, EmptyTagUnionVar)))
	st.MarkTagUnionRecursive(tagUnionVar)

	et := st.VarToErrorType(tagUnionVar, ErrorTypeContext{})
	if et.Kind != ErrRecursiveTagUnion {
		t.Fatalf("Kind = %v, want ErrRecursiveTagUnion", et.Kind)
	}
	if len(et.Tags) != 1 || len(et.Tags[0].Args) != 1 {
		t.Fatalf("unexpected tags shape: %+v", et.Tags)
	}
	if et.Tags[0].Args[0].Kind != ErrFlexVar {
		t.Fatalf("self-reference inside the recursive tag = %v, want the recursion-point back-reference", et.Tags[0].Args[0].Kind)
	}
}
