// Copyright (c) 2026 The Vela Authors
// SPDX-License-Identifier: MIT

package subs

// ErrorTypeKind discriminates the ErrorType tree the same way
// ContentKind and FlatTypeKind discriminate their own unions.
type ErrorTypeKind uint8

const (
	ErrFlexVar ErrorTypeKind = iota
	ErrRigidVar
	ErrType
	ErrFunction
	ErrRecord
	ErrTagUnion
	ErrRecursiveTagUnion
	ErrAlias
	ErrRange
	ErrError
)

// ErrorType is a plain, self-contained tree projected out of a Store
// for diagnostics: it carries no Variables, only the names and shapes
// a type-mismatch message needs to render. Exactly one set of fields
// is meaningful per Kind, the same convention Content and FlatType
// follow.
type ErrorType struct {
	Kind ErrorTypeKind

	// FlexVar, RigidVar, RecursiveTagUnion's recursion-point name
	Name Lowercase

	// Type, Alias
	Symbol Symbol
	Args   []ErrorType

	// Function
	FuncArgs   []ErrorType
	FuncResult *ErrorType

	// Record
	Fields []ErrorRecordField
	// Record, TagUnion, RecursiveTagUnion: nil means closed
	Ext *ErrorType

	// TagUnion, RecursiveTagUnion
	Tags []ErrorTagUnionTag

	// Alias
	AliasReal *ErrorType

	// Range
	RangeCandidates []Symbol
}

type ErrorRecordField struct {
	Name Lowercase
	Type ErrorType
}

type ErrorTagUnionTag struct {
	Name TagName
	Args []ErrorType
}

// ErrorTypeContext configures VarToErrorType's projection.
type ErrorTypeContext struct {
	// ExpandRanges, when true, projects a RangedNumber as whichever
	// concrete candidate type it is currently ranged over instead of
	// an ErrRange node listing every candidate — useful once type
	// inference has actually settled the range to one member and a
	// diagnostic wants to show that member directly.
	ExpandRanges bool
}

type errorTypeState struct {
	names         map[Variable]Lowercase
	ctx           ErrorTypeContext
	seenRecursive map[Variable]Lowercase
}

// VarToErrorType projects the type rooted at v into an ErrorType tree
// for use in a diagnostic message. It assigns display names to every
// unnamed variable it encounters via GetVarNames before walking, so
// two flex variables that are distinct in the Store never collide on
// the same rendered name.
func (st *Store) VarToErrorType(v Variable, ctx ErrorTypeContext) ErrorType {
	state := &errorTypeState{
		names:         st.GetVarNames(v),
		ctx:           ctx,
		seenRecursive: make(map[Variable]Lowercase),
	}
	return st.varToErrorTypeHelp(v, state)
}

func (st *Store) varToErrorTypeHelp(v Variable, state *errorTypeState) ErrorType {
	root := st.GetRoot(v)
	if name, ok := state.seenRecursive[root]; ok {
		return ErrorType{Kind: ErrFlexVar, Name: name}
	}

	desc := st.Get(root)
	switch desc.Content.Kind {
	case ContentFlexVar, ContentFlexAbleVar:
		return ErrorType{Kind: ErrFlexVar, Name: state.names[root]}
	case ContentRigidVar, ContentRigidAbleVar, ContentRecursionVar:
		return ErrorType{Kind: ErrRigidVar, Name: state.names[root]}
	case ContentError:
		return ErrorType{Kind: ErrError}
	case ContentStructure:
		return st.flatTypeToErrorType(root, desc.Content.Flat, state)
	case ContentAlias:
		args := make([]ErrorType, 0)
		for _, a := range st.variables.slice(desc.Content.AliasVars.TypeVariables()) {
			args = append(args, st.varToErrorTypeHelp(a, state))
		}
		real := st.varToErrorTypeHelp(desc.Content.AliasReal, state)
		return ErrorType{Kind: ErrAlias, Symbol: desc.Content.AliasSymbol, Args: args, AliasReal: &real}
	case ContentRangedNumber:
		if state.ctx.ExpandRanges {
			return st.varToErrorTypeHelp(desc.Content.RangedVar, state)
		}
		candidates := st.variables.slice(desc.Content.RangeVars)
		syms := make([]Symbol, len(candidates))
		for i, c := range candidates {
			syms[i] = st.symbolOf(c)
		}
		return ErrorType{Kind: ErrRange, RangeCandidates: syms}
	default:
		return ErrorType{Kind: ErrError}
	}
}

// symbolOf returns the best-effort name for a numeric-tower candidate
// variable, for rendering an ErrRange's candidate list.
func (st *Store) symbolOf(v Variable) Symbol {
	desc := st.Get(st.GetRoot(v))
	switch desc.Content.Kind {
	case ContentStructure:
		if desc.Content.Flat.Kind == FlatApply {
			return desc.Content.Flat.ApplySymbol
		}
	case ContentAlias:
		return desc.Content.AliasSymbol
	}
	return ""
}

func (st *Store) flatTypeToErrorType(root Variable, flat FlatType, state *errorTypeState) ErrorType {
	switch flat.Kind {
	case FlatApply:
		args := make([]ErrorType, 0)
		for _, a := range st.variables.slice(flat.ApplyArgs) {
			args = append(args, st.varToErrorTypeHelp(a, state))
		}
		return ErrorType{Kind: ErrType, Symbol: flat.ApplySymbol, Args: args}
	case FlatFunc:
		args := make([]ErrorType, 0)
		for _, a := range st.variables.slice(flat.FuncArgs) {
			args = append(args, st.varToErrorTypeHelp(a, state))
		}
		result := st.varToErrorTypeHelp(flat.FuncResult, state)
		return ErrorType{Kind: ErrFunction, FuncArgs: args, FuncResult: &result}
	case FlatRecord:
		fields, ext := st.gatherRecordFields(flat, state)
		return ErrorType{Kind: ErrRecord, Fields: fields, Ext: ext}
	case FlatEmptyRecord:
		return ErrorType{Kind: ErrRecord}
	case FlatTagUnion:
		tags, ext := st.gatherTags(flat, state)
		return ErrorType{Kind: ErrTagUnion, Tags: tags, Ext: ext}
	case FlatRecursiveTagUnion:
		recRoot := st.GetRoot(flat.RecVar)
		name := state.names[recRoot]
		state.seenRecursive[recRoot] = name
		tags, ext := st.gatherTags(flat, state)
		delete(state.seenRecursive, recRoot)
		return ErrorType{Kind: ErrRecursiveTagUnion, Name: name, Tags: tags, Ext: ext}
	case FlatFunctionOrTagUnion:
		ext := st.varToErrorTypeHelp(flat.Ext, state)
		tag := ErrorTagUnionTag{Name: GlobalTagName(Uppercase(flat.FunOrTagSymbol))}
		return ErrorType{Kind: ErrTagUnion, Tags: []ErrorTagUnionTag{tag}, Ext: &ext}
	case FlatEmptyTagUnion:
		return ErrorType{Kind: ErrTagUnion}
	default: // FlatErroneous
		return ErrorType{Kind: ErrError}
	}
}

// gatherRecordFields flattens a chain of extensible records into one
// field list plus a final extension, merging every FlatRecord reached
// by following Ext pointers until it bottoms out at FlatEmptyRecord
// (closed) or anything else (an open extension, itself projected).
func (st *Store) gatherRecordFields(flat FlatType, state *errorTypeState) ([]ErrorRecordField, *ErrorType) {
	var fields []ErrorRecordField
	appendFields := func(f FlatType) {
		names := st.fieldNames.slice(f.Fields.Names())
		vars := st.variables.slice(f.Fields.FieldVars())
		for i := range names {
			fields = append(fields, ErrorRecordField{Name: names[i], Type: st.varToErrorTypeHelp(vars[i], state)})
		}
	}
	appendFields(flat)

	ext := flat.Ext
	for {
		root := st.GetRoot(ext)
		d := st.Get(root)
		if d.Content.Kind == ContentStructure && d.Content.Flat.Kind == FlatRecord {
			appendFields(d.Content.Flat)
			ext = d.Content.Flat.Ext
			continue
		}
		if d.Content.Kind == ContentStructure && d.Content.Flat.Kind == FlatEmptyRecord {
			return fields, nil
		}
		e := st.varToErrorTypeHelp(root, state)
		return fields, &e
	}
}

// gatherTags is gatherRecordFields's tag-union counterpart: it merges
// every FlatTagUnion/FlatRecursiveTagUnion reached by following Ext
// pointers, stopping at FlatEmptyTagUnion (closed) or an open
// extension.
func (st *Store) gatherTags(flat FlatType, state *errorTypeState) ([]ErrorTagUnionTag, *ErrorType) {
	var tags []ErrorTagUnionTag
	appendTags := func(f FlatType) {
		names := st.tagNames.slice(f.Tags.TagNames())
		payloads := st.variableSlices.slice(f.Tags.Variables())
		for i, name := range names {
			args := make([]ErrorType, 0)
			for _, a := range st.variables.slice(payloads[i]) {
				args = append(args, st.varToErrorTypeHelp(a, state))
			}
			tags = append(tags, ErrorTagUnionTag{Name: name, Args: args})
		}
	}
	appendTags(flat)

	ext := flat.Ext
	for {
		root := st.GetRoot(ext)
		d := st.Get(root)
		if d.Content.Kind == ContentStructure && (d.Content.Flat.Kind == FlatTagUnion || d.Content.Flat.Kind == FlatRecursiveTagUnion) {
			appendTags(d.Content.Flat)
			ext = d.Content.Flat.Ext
			continue
		}
		if d.Content.Kind == ContentStructure && d.Content.Flat.Kind == FlatEmptyTagUnion {
			return tags, nil
		}
		e := st.varToErrorTypeHelp(root, state)
		return tags, &e
	}
}
