// Copyright (c) 2026 The Vela Authors
// SPDX-License-Identifier: MIT

package subs

// OccursError reports that the occurs-check found v cycling back into
// its own structure with no recursion point tying the cycle off.
// Culprit is the variable where the cycle closes; Path lists the
// ancestor variables the walk passed back through on its way out, from
// the nearest ancestor outward, so the caller can poison every
// variable on the offending chain rather than just the innermost one.
type OccursError struct {
	Culprit Variable
	Path    []Variable
}

// Occurs walks the structure reachable from v and fails as soon as the
// walk revisits a variable already on its current ancestor chain — the
// classic occurs-check that keeps unification from building an
// infinite type. Recursion variables stop the walk: a RecursionVar is
// precisely the place a cyclic reference is allowed to close, so it is
// never itself counted as an occurrence and its own structure pointer
// is not descended into.
func (st *Store) Occurs(v Variable) *OccursError {
	return st.occurs(nil, v, false)
}

// OccursIncludingRecursionVars is Occurs, except a RecursiveTagUnion's
// own recursion variable is added to the ancestor chain alongside its
// structure's root, so a cycle that closes only through the recursion
// point is reported too — used by checks that must reject a cycle even
// when it is "properly" tied off, such as validating that a recursive
// alias does not alias itself with no progress.
func (st *Store) OccursIncludingRecursionVars(v Variable) *OccursError {
	return st.occurs(nil, v, true)
}

// occurs mirrors the ancestor-chain formulation directly: seen is the
// chain of roots already on the current path, and a hit against it
// reports the cycle rather than simply returning a bool. occursChild
// reconstructs the path as errors unwind: each enclosing call appends
// its own root so the final Path reads nearest-ancestor-first.
func (st *Store) occurs(seen []Variable, v Variable, includeRecursionVars bool) *OccursError {
	root := st.GetRootWithoutCompacting(v)
	for _, s := range seen {
		if s == root {
			return &OccursError{Culprit: root}
		}
	}

	desc := st.Get(root)
	switch desc.Content.Kind {
	case ContentFlexVar, ContentRigidVar, ContentFlexAbleVar, ContentRigidAbleVar, ContentRecursionVar, ContentError:
		return nil
	case ContentStructure:
		newSeen := append(append([]Variable{}, seen...), root)
		return st.occursInFlatType(newSeen, root, desc.Content.Flat, includeRecursionVars)
	case ContentAlias:
		newSeen := append(append([]Variable{}, seen...), root)
		for _, arg := range st.variables.slice(desc.Content.AliasVars.AllVariables()) {
			if err := st.occursChild(root, newSeen, arg, includeRecursionVars); err != nil {
				return err
			}
		}
		return nil
	case ContentRangedNumber:
		newSeen := append(append([]Variable{}, seen...), root)
		return st.occursChild(root, newSeen, desc.Content.RangedVar, includeRecursionVars)
	default:
		return nil
	}
}

// occursChild checks child and, on failure, appends parentRoot to the
// unwinding error's Path before propagating it.
func (st *Store) occursChild(parentRoot Variable, seen []Variable, child Variable, includeRecursionVars bool) *OccursError {
	if err := st.occurs(seen, child, includeRecursionVars); err != nil {
		err.Path = append(err.Path, parentRoot)
		return err
	}
	return nil
}

func (st *Store) occursInFlatType(seen []Variable, root Variable, flat FlatType, includeRecursionVars bool) *OccursError {
	switch flat.Kind {
	case FlatApply:
		for _, arg := range st.variables.slice(flat.ApplyArgs) {
			if err := st.occursChild(root, seen, arg, includeRecursionVars); err != nil {
				return err
			}
		}
		return nil
	case FlatFunc:
		if err := st.occursChild(root, seen, flat.FuncResult, includeRecursionVars); err != nil {
			return err
		}
		if err := st.occursChild(root, seen, flat.FuncLambdaSet, includeRecursionVars); err != nil {
			return err
		}
		for _, arg := range st.variables.slice(flat.FuncArgs) {
			if err := st.occursChild(root, seen, arg, includeRecursionVars); err != nil {
				return err
			}
		}
		return nil
	case FlatRecord:
		if err := st.occursChild(root, seen, flat.Ext, includeRecursionVars); err != nil {
			return err
		}
		for _, fv := range st.variables.slice(flat.Fields.FieldVars()) {
			if err := st.occursChild(root, seen, fv, includeRecursionVars); err != nil {
				return err
			}
		}
		return nil
	case FlatTagUnion:
		if err := st.occursInUnionTags(root, seen, flat.Tags, includeRecursionVars); err != nil {
			return err
		}
		return st.occursChild(root, seen, flat.Ext, includeRecursionVars)
	case FlatRecursiveTagUnion:
		if includeRecursionVars {
			seen = append(append([]Variable{}, seen...), st.GetRootWithoutCompacting(flat.RecVar))
		}
		if err := st.occursInUnionTags(root, seen, flat.Tags, includeRecursionVars); err != nil {
			return err
		}
		return st.occursChild(root, seen, flat.Ext, includeRecursionVars)
	case FlatFunctionOrTagUnion:
		return st.occursChild(root, seen, flat.Ext, includeRecursionVars)
	default: // FlatErroneous, FlatEmptyRecord, FlatEmptyTagUnion
		return nil
	}
}

func (st *Store) occursInUnionTags(root Variable, seen []Variable, tags UnionTags, includeRecursionVars bool) *OccursError {
	for _, payload := range st.variableSlices.slice(tags.Variables()) {
		for _, arg := range st.variables.slice(payload) {
			if err := st.occursChild(root, seen, arg, includeRecursionVars); err != nil {
				return err
			}
		}
	}
	return nil
}
