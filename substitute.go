// Copyright (c) 2026 The Vela Authors
// SPDX-License-Identifier: MIT

package subs

// ExplicitSubstitute rewrites every occurrence of from into to,
// reachable from start, returning the (possibly rewritten) root of
// start. Unlike unification, this never merges classes. It mutates the
// Store in place: every visited structure gets its Content rewritten at
// its existing root, and any child run that changed is appended to the
// arenas as a fresh run rather than edited where it lies.
//
// The traversal carries its own visited set (keyed by Variable, not by
// Mark) because, unlike the Mark-based walks (GetVarNames,
// VarContainsContent), it must produce a value per node rather than a
// single boolean, so short-circuiting on a revisit has to return the
// previously computed replacement instead of just "already seen".
func (st *Store) ExplicitSubstitute(from, to, start Variable) Variable {
	visited := make(map[Variable]Variable)
	return st.substituteHelp(from, to, start, visited)
}

func (st *Store) substituteHelp(from, to, v Variable, visited map[Variable]Variable) Variable {
	root := st.GetRoot(v)
	if root == from {
		return to
	}
	if replaced, ok := visited[root]; ok {
		return replaced
	}

	desc := st.Get(root)
	// Seed the visited set with the identity before descending, so a
	// structure that (incorrectly) cycles back to itself through a
	// non-recursion-var path terminates instead of looping forever.
	visited[root] = root

	switch desc.Content.Kind {
	case ContentStructure:
		newFlat := st.substituteFlatType(from, to, desc.Content.Flat, visited)
		st.SetContent(root, StructureContent(newFlat))
	case ContentAlias:
		av := desc.Content.AliasVars
		args := st.variables.slice(av.AllVariables())
		changed := false
		newArgs := make([]Variable, len(args))
		for i, a := range args {
			newArgs[i] = st.substituteHelp(from, to, a, visited)
			if newArgs[i] != a {
				changed = true
			}
		}
		newReal := st.substituteHelp(from, to, desc.Content.AliasReal, visited)
		if changed || newReal != desc.Content.AliasReal {
			newVars := InsertAliasVariablesIntoSubs(st, newArgs[:av.typeVariablesLen], newArgs[av.typeVariablesLen:])
			st.SetContent(root, AliasContent(desc.Content.AliasSymbol, newVars, newReal, desc.Content.AliasKind))
		}
	case ContentRangedNumber:
		newVar := st.substituteHelp(from, to, desc.Content.RangedVar, visited)
		if newVar != desc.Content.RangedVar {
			st.SetContent(root, RangedNumberContent(newVar, desc.Content.RangeVars))
		}
	default:
		// FlexVar, RigidVar, FlexAbleVar, RigidAbleVar, RecursionVar,
		// Error carry no child variables to substitute into.
	}

	visited[root] = root
	return root
}

func (st *Store) substituteFlatType(from, to Variable, flat FlatType, visited map[Variable]Variable) FlatType {
	switch flat.Kind {
	case FlatApply:
		args := st.substituteVarSlice(from, to, flat.ApplyArgs, visited)
		return ApplyFlat(flat.ApplySymbol, args)
	case FlatFunc:
		args := st.substituteVarSlice(from, to, flat.FuncArgs, visited)
		lambdaSet := st.substituteHelp(from, to, flat.FuncLambdaSet, visited)
		result := st.substituteHelp(from, to, flat.FuncResult, visited)
		return FuncFlat(args, lambdaSet, result)
	case FlatRecord:
		fields := st.substituteRecordFields(from, to, flat.Fields, visited)
		ext := st.substituteHelp(from, to, flat.Ext, visited)
		return RecordFlat(fields, ext)
	case FlatTagUnion:
		tags := st.substituteUnionTags(from, to, flat.Tags, visited)
		ext := st.substituteHelp(from, to, flat.Ext, visited)
		return TagUnionFlat(tags, ext)
	case FlatRecursiveTagUnion:
		tags := st.substituteUnionTags(from, to, flat.Tags, visited)
		ext := st.substituteHelp(from, to, flat.Ext, visited)
		recVar := st.substituteHelp(from, to, flat.RecVar, visited)
		return RecursiveTagUnionFlat(recVar, tags, ext)
	case FlatFunctionOrTagUnion:
		ext := st.substituteHelp(from, to, flat.Ext, visited)
		return FunctionOrTagUnionFlat(flat.FunOrTagName, flat.FunOrTagSymbol, ext)
	default: // FlatErroneous, FlatEmptyRecord, FlatEmptyTagUnion
		return flat
	}
}

func (st *Store) substituteUnionTags(from, to Variable, tags UnionTags, visited map[Variable]Variable) UnionTags {
	names := st.tagNames.slice(tags.TagNames())
	payloads := st.variableSlices.slice(tags.Variables())
	changed := false
	out := make([]TagPayload, len(names))
	for i := range names {
		origPayload := st.variables.slice(payloads[i])
		newVars := make([]Variable, len(origPayload))
		for j, v := range origPayload {
			newVars[j] = st.substituteHelp(from, to, v, visited)
			if newVars[j] != v {
				changed = true
			}
		}
		out[i] = TagPayload{Name: names[i], Vars: newVars}
	}
	if !changed {
		return tags
	}
	return InsertUnionTagsIntoSubs(st, out)
}

func (st *Store) substituteRecordFields(from, to Variable, fields RecordFields, visited map[Variable]Variable) RecordFields {
	names := st.fieldNames.slice(fields.Names())
	vars := st.variables.slice(fields.FieldVars())
	kinds := st.recordFields.slice(fields.Kinds())
	changed := false
	out := make([]RecordField, len(names))
	for i := range names {
		newVar := st.substituteHelp(from, to, vars[i], visited)
		if newVar != vars[i] {
			changed = true
		}
		out[i] = RecordField{Name: names[i], Var: newVar, Kind: kinds[i]}
	}
	if !changed {
		return fields
	}
	return InsertRecordFieldsIntoSubs(st, out)
}

func (st *Store) substituteVarSlice(from, to Variable, s Slice[Variable], visited map[Variable]Variable) Slice[Variable] {
	orig := st.variables.slice(s)
	out := make([]Variable, len(orig))
	changed := false
	for i, v := range orig {
		out[i] = st.substituteHelp(from, to, v, visited)
		if out[i] != v {
			changed = true
		}
	}
	if !changed {
		return s
	}
	return st.variables.extendNew(out)
}
