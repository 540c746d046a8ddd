// Copyright (c) 2026 The Vela Authors
// SPDX-License-Identifier: MIT

package subs

import "fmt"

// Deserialize decodes a byte slice produced by Serialize back into a
// Store. It returns an error instead of panicking on malformed input,
// recovering from the lower-level binReader panics that truncated or
// corrupt data triggers.
func Deserialize(data []byte) (st *Store, err error) {
	defer func() {
		if r := recover(); r != nil {
			st = nil
			err = fmt.Errorf("subs: deserialize: %v", r)
		}
	}()

	r := &binReader{buf: data}

	version := r.u64()
	if version != serializeVersion {
		return nil, fmt.Errorf("subs: serialized store has version %d, want %d", version, serializeVersion)
	}

	numVariables := int(r.u64())
	variablesLen := int(r.u64())
	variableSlicesLen := int(r.u64())
	tagNamesLen := int(r.u64())
	fieldNamesLen := int(r.u64())
	recordFieldsLen := int(r.u64())
	reservedVarsCount := r.u64()
	if reservedVarsCount != uint64(NumReservedVars) {
		return nil, fmt.Errorf("subs: serialized store reserves %d variables, this build expects %d", reservedVarsCount, NumReservedVars)
	}

	st = &Store{marks: newMarkGen()}

	st.variables.items = make([]Variable, variablesLen)
	for i := range st.variables.items {
		st.variables.items[i] = r.variable()
	}
	r.alignTo8()

	st.variableSlices.items = make([]Slice[Variable], variableSlicesLen)
	for i := range st.variableSlices.items {
		st.variableSlices.items[i] = readSlice[Variable](r)
	}
	r.alignTo8()

	st.tagNames.items = make([]TagName, tagNamesLen)
	for i := range st.tagNames.items {
		st.tagNames.items[i] = readTagName(r)
	}
	r.alignTo8()

	st.fieldNames.items = make([]Lowercase, fieldNamesLen)
	for i := range st.fieldNames.items {
		st.fieldNames.items[i] = Lowercase(r.str())
	}
	r.alignTo8()

	st.recordFields.items = make([]RecordFieldKind, recordFieldsLen)
	for i := range st.recordFields.items {
		st.recordFields.items[i] = RecordFieldKind(r.u8())
	}
	r.alignTo8()

	st.table.parent = make([]Variable, numVariables)
	st.table.descs = make([]Descriptor, numVariables)
	for i := 0; i < numVariables; i++ {
		tag := r.u8()
		if tag == 0 {
			st.table.parent[i] = Variable(i)
			st.table.descs[i] = readDescriptor(r)
		} else {
			st.table.parent[i] = r.variable()
		}
	}

	return st, nil
}

func readTagName(r *binReader) TagName {
	isClosure := r.u8() == 1
	if isClosure {
		return ClosureTagName(Symbol(r.str()))
	}
	return GlobalTagName(Uppercase(r.str()))
}

func readDescriptor(r *binReader) Descriptor {
	content := readContent(r)
	rank := Rank(r.u32())
	mark := Mark(r.i32())
	return Descriptor{Content: content, Rank: rank, Mark: mark, Copy: NoVariable}
}

func readContent(r *binReader) Content {
	kind := ContentKind(r.u8())
	switch kind {
	case ContentFlexVar:
		return FlexVarContent(NameIndex(r.u32()))
	case ContentRigidVar:
		return RigidVarContent(NameIndex(r.u32()))
	case ContentFlexAbleVar:
		name := NameIndex(r.u32())
		ability := Symbol(r.str())
		return FlexAbleVarContent(name, ability)
	case ContentRigidAbleVar:
		name := NameIndex(r.u32())
		ability := Symbol(r.str())
		return RigidAbleVarContent(name, ability)
	case ContentRecursionVar:
		structure := r.variable()
		name := NameIndex(r.u32())
		return RecursionVarContent(structure, name)
	case ContentStructure:
		return StructureContent(readFlatType(r))
	case ContentAlias:
		sym := Symbol(r.str())
		vars := readAliasVariables(r)
		real := r.variable()
		aliasKind := AliasKind(r.u8())
		return AliasContent(sym, vars, real, aliasKind)
	case ContentRangedNumber:
		rangedVar := r.variable()
		rangeVars := readSlice[Variable](r)
		return RangedNumberContent(rangedVar, rangeVars)
	case ContentError:
		return ErrorContent
	default:
		panic(fmt.Sprintf("subs: unknown content kind %d", kind))
	}
}

func readAliasVariables(r *binReader) AliasVariables {
	start := r.u32()
	allLen := r.u16()
	typeLen := r.u16()
	return AliasVariables{variablesStart: start, allVariablesLen: allLen, typeVariablesLen: typeLen}
}

func readUnionTags(r *binReader) UnionTags {
	tagNamesStart := r.u32()
	variablesStart := r.u32()
	length := r.u16()
	return UnionTags{tagNamesStart: tagNamesStart, variablesStart: variablesStart, length: length}
}

func readRecordFields(r *binReader) RecordFields {
	fieldNamesStart := r.u32()
	variablesStart := r.u32()
	fieldKindsStart := r.u32()
	length := r.u16()
	return RecordFields{fieldNamesStart: fieldNamesStart, variablesStart: variablesStart, fieldKindsStart: fieldKindsStart, length: length}
}

func readFlatType(r *binReader) FlatType {
	kind := FlatTypeKind(r.u8())
	switch kind {
	case FlatApply:
		sym := Symbol(r.str())
		args := readSlice[Variable](r)
		return ApplyFlat(sym, args)
	case FlatFunc:
		args := readSlice[Variable](r)
		lambdaSet := r.variable()
		result := r.variable()
		return FuncFlat(args, lambdaSet, result)
	case FlatRecord:
		fields := readRecordFields(r)
		ext := r.variable()
		return RecordFlat(fields, ext)
	case FlatTagUnion:
		tags := readUnionTags(r)
		ext := r.variable()
		return TagUnionFlat(tags, ext)
	case FlatRecursiveTagUnion:
		recVar := r.variable()
		tags := readUnionTags(r)
		ext := r.variable()
		return RecursiveTagUnionFlat(recVar, tags, ext)
	case FlatFunctionOrTagUnion:
		name := NameIndex(r.u32())
		sym := Symbol(r.str())
		ext := r.variable()
		return FunctionOrTagUnionFlat(name, sym, ext)
	case FlatErroneous:
		return ErroneousFlat(Problem{Message: r.str()})
	case FlatEmptyRecord:
		return EmptyRecordFlat
	case FlatEmptyTagUnion:
		return EmptyTagUnionFlat
	default:
		panic(fmt.Sprintf("subs: unknown flat type kind %d", kind))
	}
}

func (r *binReader) alignTo8() {
	for r.pos%8 != 0 {
		r.pos++
	}
}
