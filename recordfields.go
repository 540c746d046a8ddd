// Copyright (c) 2026 The Vela Authors
// SPDX-License-Identifier: MIT

package subs

// RecordFieldKind distinguishes how a record field relates to the
// record's rows: Required fields must be present, Optional fields may
// be absent with a default, Demanded fields must be present and are
// additionally propagated to the record's extension during expansion.
type RecordFieldKind uint8

const (
	RecordRequired RecordFieldKind = iota
	RecordOptional
	RecordDemanded
)

// RecordFields addresses the fields of a record as three parallel
// runs of equal length, one per arena: names, field-type variables,
// and required/optional/demanded markers. Splitting the marker out of
// the variables arena (rather than tagging the Variable itself) keeps
// the variables arena homogeneous for every other caller that walks
// it as plain Variables.
type RecordFields struct {
	fieldNamesStart uint32
	variablesStart  uint32
	fieldKindsStart uint32
	length          uint16
}

func (r RecordFields) Names() Slice[Lowercase]       { return NewSlice[Lowercase](r.fieldNamesStart, r.length) }
func (r RecordFields) FieldVars() Slice[Variable]    { return NewSlice[Variable](r.variablesStart, r.length) }
func (r RecordFields) Kinds() Slice[RecordFieldKind] { return NewSlice[RecordFieldKind](r.fieldKindsStart, r.length) }
func (r RecordFields) Len() int                      { return int(r.length) }

// RecordField is one (name, type, required/optional/demanded) triple,
// the unit of work for InsertRecordFieldsIntoSubs.
type RecordField struct {
	Name Lowercase
	Var  Variable
	Kind RecordFieldKind
}

// InsertRecordFieldsIntoSubs appends fields to st's field-names,
// variables, and record-fields arenas. Callers are responsible for
// presenting fields already sorted by name.
func InsertRecordFieldsIntoSubs(st *Store, fields []RecordField) RecordFields {
	fieldNamesStart := uint32(st.fieldNames.len())
	variablesStart := uint32(st.variables.len())
	fieldKindsStart := uint32(st.recordFields.len())

	for _, f := range fields {
		st.fieldNames.push(f.Name)
		st.variables.push(f.Var)
		st.recordFields.push(f.Kind)
	}

	return RecordFields{
		fieldNamesStart: fieldNamesStart,
		variablesStart:  variablesStart,
		fieldKindsStart: fieldKindsStart,
		length:          uint16(len(fields)),
	}
}
