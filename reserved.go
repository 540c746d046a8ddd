// Copyright (c) 2026 The Vela Authors
// SPDX-License-Identifier: MIT

package subs

// seedReservedVars pre-seeds the reserved variable prefix described in
// variable.go: Fresh is called exactly once per reserved constant, in
// the same order the const block declares them, so the ids Fresh hands
// back line up with NullVar, EmptyRecordVar, ... DecVar without any
// explicit index bookkeeping here.
func seedReservedVars(st *Store) {
	st.table.fresh(flexVarDescriptor()) // NullVar

	st.table.fresh(structureDescriptor(EmptyRecordFlat))   // EmptyRecordVar
	st.table.fresh(structureDescriptor(EmptyTagUnionFlat)) // EmptyTagUnionVar

	boolEnum := seedBoolEnum(st)
	st.table.fresh(structureDescriptor(TagUnionFlat(boolEnum, EmptyTagUnionVar))) // BoolEnumVar
	st.table.fresh(aliasDescriptor(SymBoolBool, AliasVariables{}, BoolEnumVar, AliasStructural)) // BoolVar

	signedSyms := []Symbol{symSigned8, symSigned16, symSigned32, symSigned64, symSigned128}
	unsignedSyms := []Symbol{symUnsigned8, symUnsigned16, symUnsigned32, symUnsigned64, symUnsigned128}

	for _, sym := range signedSyms {
		st.table.fresh(markerApplyDescriptor(st, sym))
	}
	for _, sym := range unsignedSyms {
		st.table.fresh(markerApplyDescriptor(st, sym))
	}
	st.table.fresh(markerApplyDescriptor(st, symNatural)) // NaturalVar

	for i := range signedSyms {
		st.table.fresh(integerWrapperDescriptor(st, Signed8Var+Variable(i)))
	}
	for i := range unsignedSyms {
		st.table.fresh(integerWrapperDescriptor(st, Unsigned8Var+Variable(i)))
	}
	st.table.fresh(integerWrapperDescriptor(st, NaturalVar)) // integerNaturalVar

	for i := range signedSyms {
		st.table.fresh(numWrapperDescriptor(st, integerSigned8Var+Variable(i)))
	}
	for i := range unsignedSyms {
		st.table.fresh(numWrapperDescriptor(st, integerUnsigned8Var+Variable(i)))
	}
	st.table.fresh(numWrapperDescriptor(st, integerNaturalVar)) // numIntegerNaturalVar

	signedUserSyms := []Symbol{SymNumI8, SymNumI16, SymNumI32, SymNumI64, SymNumI128}
	for i, sym := range signedUserSyms {
		st.table.fresh(aliasDescriptor(sym, AliasVariables{}, numIntegerSigned8Var+Variable(i), AliasStructural))
	}
	unsignedUserSyms := []Symbol{SymNumU8, SymNumU16, SymNumU32, SymNumU64, SymNumU128}
	for i, sym := range unsignedUserSyms {
		st.table.fresh(aliasDescriptor(sym, AliasVariables{}, numIntegerUnsigned8Var+Variable(i), AliasStructural))
	}
	st.table.fresh(aliasDescriptor(SymNumNat, AliasVariables{}, numIntegerNaturalVar, AliasStructural)) // NatVar

	st.table.fresh(markerApplyDescriptor(st, symBinary32)) // binary32Var
	st.table.fresh(markerApplyDescriptor(st, symBinary64)) // binary64Var
	st.table.fresh(markerApplyDescriptor(st, symDecimal))  // decimalVar

	st.table.fresh(floatWrapperDescriptor(st, binary32Var)) // floatBinary32Var
	st.table.fresh(floatWrapperDescriptor(st, binary64Var)) // floatBinary64Var
	st.table.fresh(floatWrapperDescriptor(st, decimalVar))  // floatDecimalVar

	st.table.fresh(numWrapperDescriptor(st, floatBinary32Var)) // numFloatBinary32Var
	st.table.fresh(numWrapperDescriptor(st, floatBinary64Var)) // numFloatBinary64Var
	st.table.fresh(numWrapperDescriptor(st, floatDecimalVar))  // numFloatDecimalVar

	st.table.fresh(aliasDescriptor(SymNumF32, AliasVariables{}, numFloatBinary32Var, AliasStructural)) // F32Var
	st.table.fresh(aliasDescriptor(SymNumF64, AliasVariables{}, numFloatBinary64Var, AliasStructural)) // F64Var

	st.table.fresh(aliasDescriptor(SymNumDec, AliasVariables{}, numFloatDecimalVar, AliasStructural)) // DecVar
}

func structureDescriptor(flat FlatType) Descriptor {
	return Descriptor{Content: StructureContent(flat), Rank: NoRank, Mark: MarkNone, Copy: NoVariable}
}

func aliasDescriptor(sym Symbol, vars AliasVariables, real Variable, kind AliasKind) Descriptor {
	return Descriptor{Content: AliasContent(sym, vars, real, kind), Rank: NoRank, Mark: MarkNone, Copy: NoVariable}
}

// markerApplyDescriptor builds the zero-argument Apply(sym) content
// used for the numeric tower's bottom-most marker types (Signed8,
// Unsigned64, Binary32, ...): nominal types with no runtime structure
// of their own, distinguished only by which symbol names them.
func markerApplyDescriptor(st *Store, sym Symbol) Descriptor {
	args := st.variables.extendNew(nil)
	return structureDescriptor(ApplyFlat(sym, args))
}

// integerWrapperDescriptor builds the opaque "Integer a" wrapper
// around one of the signed/unsigned/natural marker variables.
func integerWrapperDescriptor(st *Store, marker Variable) Descriptor {
	vars := InsertAliasVariablesIntoSubs(st, []Variable{marker}, nil)
	return aliasDescriptor(symNumInteger, vars, marker, AliasOpaque)
}

// floatWrapperDescriptor builds the opaque "FloatingPoint a" wrapper
// around one of the binary32/binary64/decimal marker variables.
func floatWrapperDescriptor(st *Store, marker Variable) Descriptor {
	vars := InsertAliasVariablesIntoSubs(st, []Variable{marker}, nil)
	return aliasDescriptor(symNumFloatingP, vars, marker, AliasOpaque)
}

// numWrapperDescriptor builds the opaque "Num a" wrapper around an
// Integer- or FloatingPoint-wrapped marker variable.
func numWrapperDescriptor(st *Store, wrapped Variable) Descriptor {
	vars := InsertAliasVariablesIntoSubs(st, []Variable{wrapped}, nil)
	return aliasDescriptor(SymNumNum, vars, wrapped, AliasOpaque)
}

// seedBoolEnum reserves tag-name arena slots 0 and 1 for the Result
// tag union's names ("Err", "Ok") before inserting Bool's own "False"/
// "True" tags at slots 2 and 3, satisfying the invariant that the
// Result names occupy the first two positions even though no reserved
// Variable names a Result type itself.
func seedBoolEnum(st *Store) UnionTags {
	for _, name := range ResultTagNames {
		st.tagNames.push(GlobalTagName(name))
	}

	tagNamesStart := uint32(st.tagNames.len())
	st.tagNames.push(GlobalTagName("False"))
	st.tagNames.push(GlobalTagName("True"))

	variablesStart := uint32(st.variableSlices.len())
	empty := st.variables.extendNew(nil)
	st.variableSlices.push(empty)
	st.variableSlices.push(empty)

	return UnionTags{tagNamesStart: tagNamesStart, variablesStart: variablesStart, length: 2}
}
