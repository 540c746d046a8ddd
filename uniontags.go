// Copyright (c) 2026 The Vela Authors
// SPDX-License-Identifier: MIT

package subs

// UnionTags addresses the tags of a tag union as two parallel runs:
// one name per tag in the tag-names arena, and one payload Slice per
// tag in the variable-slices arena. The two runs share a start/length
// pair per run but are always the same length, so a single struct
// covers both without repeating the length field.
type UnionTags struct {
	tagNamesStart uint32
	variablesStart uint32
	length         uint16
}

// TagNames returns the per-tag names, in the order tags were inserted.
// Spec invariant 5 requires the builtin Result union's two reserved
// tags ("Err", "Ok") to occupy positions 0 and 1 of the shared arena;
// see reserved.go.
func (u UnionTags) TagNames() Slice[TagName] {
	return NewSlice[TagName](u.tagNamesStart, u.length)
}

// Variables returns the per-tag payload slices, positionally aligned
// with TagNames.
func (u UnionTags) Variables() Slice[Slice[Variable]] {
	return NewSlice[Slice[Variable]](u.variablesStart, u.length)
}

func (u UnionTags) Len() int { return int(u.length) }

// TagPayload is one (name, argument types) pair, the unit of work for
// InsertUnionTagsIntoSubs.
type TagPayload struct {
	Name TagName
	Vars []Variable
}

// InsertUnionTagsIntoSubs appends tags to st's tag-names and
// variable-slices arenas, inserting each tag's payload into the
// variables arena first. Callers are responsible for presenting tags
// already sorted by name — the Store never reorders them.
func InsertUnionTagsIntoSubs(st *Store, tags []TagPayload) UnionTags {
	tagNamesStart := uint32(st.tagNames.len())
	variablesStart := uint32(st.variableSlices.len())

	for _, tag := range tags {
		payload := st.variables.extendNew(tag.Vars)
		st.variableSlices.push(payload)
		st.tagNames.push(tag.Name)
	}

	return UnionTags{
		tagNamesStart:  tagNamesStart,
		variablesStart: variablesStart,
		length:         uint16(len(tags)),
	}
}
