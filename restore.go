// Copyright (c) 2026 The Vela Authors
// SPDX-License-Identifier: MIT

package subs

// Restore walks the structure reachable from v and, for every
// distinct root it finds, resets Rank to NoRank and clears the Copy
// forwarding pointer — the bookkeeping a let-generalization pass
// performs on a binding's variables once it has finished with them,
// so the next pass sees them as pristine.
//
// Record and alias chains in practice nest far deeper than the Go
// goroutine stack comfortably recurses through, so unlike the other
// traversals in this package Restore is driven by an explicit work
// stack rather than by Go call recursion.
func (st *Store) Restore(v Variable) {
	mark := st.FreshMark()
	stack := []Variable{v}

	for len(stack) > 0 {
		n := len(stack) - 1
		cur := stack[n]
		stack = stack[:n]

		root := st.GetRoot(cur)
		desc := st.Get(root)
		if desc.Mark == mark {
			continue
		}

		st.Modify(root, func(d *Descriptor) {
			d.Rank = NoRank
			d.Mark = mark
			d.Copy = NoVariable
		})

		stack = st.pushChildren(stack, desc.Content)
	}
}

func (st *Store) pushChildren(stack []Variable, c Content) []Variable {
	switch c.Kind {
	case ContentStructure:
		return st.pushFlatTypeChildren(stack, c.Flat)
	case ContentAlias:
		stack = append(stack, st.variables.slice(c.AliasVars.AllVariables())...)
		return append(stack, c.AliasReal)
	case ContentRangedNumber:
		return append(stack, c.RangedVar)
	case ContentRecursionVar:
		return append(stack, c.RecursionStructure)
	default: // FlexVar, RigidVar, FlexAbleVar, RigidAbleVar, Error
		return stack
	}
}

func (st *Store) pushFlatTypeChildren(stack []Variable, flat FlatType) []Variable {
	switch flat.Kind {
	case FlatApply:
		return append(stack, st.variables.slice(flat.ApplyArgs)...)
	case FlatFunc:
		stack = append(stack, st.variables.slice(flat.FuncArgs)...)
		stack = append(stack, flat.FuncLambdaSet, flat.FuncResult)
		return stack
	case FlatRecord:
		stack = append(stack, st.variables.slice(flat.Fields.FieldVars())...)
		return append(stack, flat.Ext)
	case FlatTagUnion, FlatRecursiveTagUnion:
		for _, payload := range st.variableSlices.slice(flat.Tags.Variables()) {
			stack = append(stack, st.variables.slice(payload)...)
		}
		if flat.Kind == FlatRecursiveTagUnion {
			stack = append(stack, flat.RecVar)
		}
		return append(stack, flat.Ext)
	case FlatFunctionOrTagUnion:
		return append(stack, flat.Ext)
	default: // FlatErroneous, FlatEmptyRecord, FlatEmptyTagUnion
		return stack
	}
}

// VarContainsContent reports whether kind appears anywhere in the
// structure reachable from v, a coarser relative of Occurs used by
// callers that only care about shape (is there a tag union in here
// anywhere?) rather than a specific variable identity.
func (st *Store) VarContainsContent(v Variable, kind ContentKind) bool {
	mark := st.FreshMark()
	return st.varContainsContentHelp(v, kind, mark)
}

func (st *Store) varContainsContentHelp(v Variable, kind ContentKind, mark Mark) bool {
	root := st.GetRoot(v)
	desc := st.Get(root)
	if desc.Mark == mark {
		return false
	}
	st.SetMark(root, mark)

	if desc.Content.Kind == kind {
		return true
	}

	stack := st.pushChildren(nil, desc.Content)
	for _, child := range stack {
		if st.varContainsContentHelp(child, kind, mark) {
			return true
		}
	}
	return false
}
