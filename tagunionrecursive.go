// Copyright (c) 2026 The Vela Authors
// SPDX-License-Identifier: MIT

package subs

// MarkTagUnionRecursive turns the plain tag union rooted at
// tagUnionVar into a recursive one: it allocates a fresh recursion
// variable whose structure points back at tagUnionVar, rewrites every
// tag payload so that what used to be a self-reference to
// tagUnionVar now points at the recursion variable instead, and
// installs the rewritten tags as a FlatRecursiveTagUnion at
// tagUnionVar.
//
// tagUnionVar must currently hold a Structure(TagUnion) content —
// MarkTagUnionRecursive panics otherwise, since calling it on anything
// else is a caller bug, not a recoverable condition.
//
// The original tag-names and variable-slices arena entries the old
// UnionTags pointed at are left untouched; the rewritten payloads are
// appended fresh via InsertUnionTagsIntoSubs. Besides the Content at
// tagUnionVar's root, ExplicitSubstitute rewrites in place the Content
// of any payload structure that referred to tagUnionVar.
func (st *Store) MarkTagUnionRecursive(tagUnionVar Variable) Variable {
	root := st.GetRoot(tagUnionVar)
	desc := st.Get(root)
	if desc.Content.Kind != ContentStructure || desc.Content.Flat.Kind != FlatTagUnion {
		panic("subs: MarkTagUnionRecursive called on a non-tag-union variable")
	}
	flat := desc.Content.Flat

	recVar := st.Fresh(Descriptor{
		Content: RecursionVarContent(root, NoName),
		Rank:    desc.Rank,
		Mark:    MarkNone,
		Copy:    NoVariable,
	})

	names := st.tagNames.slice(flat.Tags.TagNames())
	payloads := st.variableSlices.slice(flat.Tags.Variables())
	rewritten := make([]TagPayload, len(names))
	for i, name := range names {
		orig := st.variables.slice(payloads[i])
		vars := make([]Variable, len(orig))
		for j, v := range orig {
			vars[j] = st.ExplicitSubstitute(root, recVar, v)
		}
		rewritten[i] = TagPayload{Name: name, Vars: vars}
	}
	newTags := InsertUnionTagsIntoSubs(st, rewritten)

	st.SetContent(root, StructureContent(RecursiveTagUnionFlat(recVar, newTags, flat.Ext)))
	return recVar
}
