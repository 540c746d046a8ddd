// Copyright (c) 2026 The Vela Authors
// SPDX-License-Identifier: MIT

package subs

// serializeVersion guards against loading a Store dump written by an
// incompatible build of this package. Bump it whenever the on-disk
// layout changes in a way an old reader would silently misinterpret.
const serializeVersion uint64 = 1

// Serialize encodes st as a self-contained byte slice: a fixed header
// of section lengths, the five arenas in order, alignment-padded to
// an 8-byte boundary between sections, and finally one entry per
// variable — a full Descriptor for a root, or a one-field redirect
// sentinel naming its parent for anything else. Non-root Descriptors
// are never written; reconstructing them is pointless since only a
// root's Descriptor is ever authoritative.
func Serialize(st *Store) []byte {
	w := &binWriter{}

	w.u64(serializeVersion)
	w.u64(uint64(st.table.len()))
	w.u64(uint64(st.variables.len()))
	w.u64(uint64(st.variableSlices.len()))
	w.u64(uint64(st.tagNames.len()))
	w.u64(uint64(st.fieldNames.len()))
	w.u64(uint64(st.recordFields.len()))
	w.u64(uint64(NumReservedVars))

	for _, v := range st.variables.items {
		w.variable(v)
	}
	w.alignTo8()

	for _, s := range st.variableSlices.items {
		writeSlice[Variable](w, s)
	}
	w.alignTo8()

	for _, t := range st.tagNames.items {
		writeTagName(w, t)
	}
	w.alignTo8()

	for _, n := range st.fieldNames.items {
		w.str(string(n))
	}
	w.alignTo8()

	for _, k := range st.recordFields.items {
		w.u8(uint8(k))
	}
	w.alignTo8()

	for i := range st.table.parent {
		v := Variable(i)
		if st.table.parent[i] == v {
			w.u8(0)
			writeDescriptor(w, st.table.descs[i])
		} else {
			w.u8(1)
			w.variable(st.table.parent[i])
		}
	}

	return w.buf.Bytes()
}

func writeTagName(w *binWriter, t TagName) {
	if t.IsClosure {
		w.u8(1)
		w.str(string(t.Closure))
	} else {
		w.u8(0)
		w.str(string(t.Global))
	}
}

func writeDescriptor(w *binWriter, d Descriptor) {
	writeContent(w, d.Content)
	w.u32(uint32(d.Rank))
	w.i32(int32(d.Mark))
	// Copy is scratch space valid only mid-traversal; it is never
	// meaningful across a serialization boundary, so it is not
	// written and always reads back as NoVariable.
}

func writeContent(w *binWriter, c Content) {
	w.u8(uint8(c.Kind))
	switch c.Kind {
	case ContentFlexVar, ContentRigidVar:
		w.u32(uint32(c.Name))
	case ContentFlexAbleVar, ContentRigidAbleVar:
		w.u32(uint32(c.Name))
		w.str(string(c.Ability))
	case ContentRecursionVar:
		w.variable(c.RecursionStructure)
		w.u32(uint32(c.Name))
	case ContentStructure:
		writeFlatType(w, c.Flat)
	case ContentAlias:
		w.str(string(c.AliasSymbol))
		writeAliasVariables(w, c.AliasVars)
		w.variable(c.AliasReal)
		w.u8(uint8(c.AliasKind))
	case ContentRangedNumber:
		w.variable(c.RangedVar)
		writeSlice[Variable](w, c.RangeVars)
	case ContentError:
		// no payload
	}
}

func writeAliasVariables(w *binWriter, a AliasVariables) {
	w.u32(a.variablesStart)
	w.u16(a.allVariablesLen)
	w.u16(a.typeVariablesLen)
}

func writeUnionTags(w *binWriter, u UnionTags) {
	w.u32(u.tagNamesStart)
	w.u32(u.variablesStart)
	w.u16(u.length)
}

func writeRecordFields(w *binWriter, f RecordFields) {
	w.u32(f.fieldNamesStart)
	w.u32(f.variablesStart)
	w.u32(f.fieldKindsStart)
	w.u16(f.length)
}

func writeFlatType(w *binWriter, f FlatType) {
	w.u8(uint8(f.Kind))
	switch f.Kind {
	case FlatApply:
		w.str(string(f.ApplySymbol))
		writeSlice[Variable](w, f.ApplyArgs)
	case FlatFunc:
		writeSlice[Variable](w, f.FuncArgs)
		w.variable(f.FuncLambdaSet)
		w.variable(f.FuncResult)
	case FlatRecord:
		writeRecordFields(w, f.Fields)
		w.variable(f.Ext)
	case FlatTagUnion:
		writeUnionTags(w, f.Tags)
		w.variable(f.Ext)
	case FlatRecursiveTagUnion:
		w.variable(f.RecVar)
		writeUnionTags(w, f.Tags)
		w.variable(f.Ext)
	case FlatFunctionOrTagUnion:
		w.u32(uint32(f.FunOrTagName))
		w.str(string(f.FunOrTagSymbol))
		w.variable(f.Ext)
	case FlatErroneous:
		w.str(f.Problem.Message)
	case FlatEmptyRecord, FlatEmptyTagUnion:
		// no payload
	}
}

func (w *binWriter) alignTo8() {
	for w.buf.Len()%8 != 0 {
		w.buf.WriteByte(0)
	}
}
