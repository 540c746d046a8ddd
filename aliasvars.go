// Copyright (c) 2026 The Vela Authors
// SPDX-License-Identifier: MIT

package subs

// AliasVariables addresses an alias's type arguments and lambda-set
// arguments as one contiguous run in the shared variables arena: type
// arguments first, lambda-set arguments after. Splitting the run by
// length rather than by two separate Slices keeps an aliased type to
// three fields instead of four.
type AliasVariables struct {
	variablesStart  uint32
	allVariablesLen uint16
	typeVariablesLen uint16
}

// AllVariables returns every argument, type variables followed by
// lambda-set variables.
func (a AliasVariables) AllVariables() Slice[Variable] {
	return NewSlice[Variable](a.variablesStart, a.allVariablesLen)
}

// TypeVariables returns the leading run of ordinary type arguments.
func (a AliasVariables) TypeVariables() Slice[Variable] {
	return NewSlice[Variable](a.variablesStart, a.typeVariablesLen)
}

// LambdaSetVariables returns the trailing run of lambda-set arguments.
func (a AliasVariables) LambdaSetVariables() Slice[Variable] {
	lambdaStart := a.variablesStart + uint32(a.typeVariablesLen)
	lambdaLen := a.allVariablesLen - a.typeVariablesLen
	return NewSlice[Variable](lambdaStart, lambdaLen)
}

// InsertAliasVariablesIntoSubs appends typeVars then lambdaSetVars to
// st's variables arena as a single run and returns the AliasVariables
// addressing it.
//
// The original Rust source asserts type_variables_len != 3 here as a
// debugging aid against a long-fixed aliasing bug; that assertion is
// not a real invariant of the data structure, so it is not carried
// over.
func InsertAliasVariablesIntoSubs(st *Store, typeVars, lambdaSetVars []Variable) AliasVariables {
	start := uint32(st.variables.len())
	all := make([]Variable, 0, len(typeVars)+len(lambdaSetVars))
	all = append(all, typeVars...)
	all = append(all, lambdaSetVars...)
	st.variables.extendNew(all)
	return AliasVariables{
		variablesStart:   start,
		allVariablesLen:  uint16(len(all)),
		typeVariablesLen: uint16(len(typeVars)),
	}
}
