// Copyright (c) 2026 The Vela Authors
// SPDX-License-Identifier: MIT

package subs

import "strconv"

// GetVarNames walks the structure reachable from root and assigns a
// human-readable Lowercase name to every unnamed flex, rigid, able, or
// recursion variable it finds, for a pretty-printer that wants stable
// names within one type ("a", "b", ... "a1", "b1", ... once the single
// letters run out). Each minted name skips every name recorded earlier
// in the walk; an already-named variable keeps its own name, even when
// it is reached after a minted name that equals it, and two
// already-named variables that share a name are not renamed. Every
// other Content kind is left untouched. The assigned names are
// recorded both in the returned map and, via addName, back onto the
// variable's own Descriptor so a second projection of the same
// variable reuses the same name.
func (st *Store) GetVarNames(root Variable) map[Variable]Lowercase {
	mark := st.FreshMark()
	taken := make(map[Lowercase]bool)
	gen := &letterGenerator{}
	result := make(map[Variable]Lowercase)
	st.getVarNamesHelp(root, mark, taken, gen, result)
	return result
}

func (st *Store) getVarNamesHelp(v Variable, mark Mark, taken map[Lowercase]bool, gen *letterGenerator, result map[Variable]Lowercase) {
	root := st.GetRoot(v)
	desc := st.Get(root)
	if desc.Mark == mark {
		return
	}
	st.SetMark(root, mark)

	switch desc.Content.Kind {
	case ContentFlexVar, ContentRigidVar, ContentFlexAbleVar, ContentRigidAbleVar, ContentRecursionVar:
		if !desc.Content.Name.isSome() {
			st.addName(root, desc.Content, taken, gen, result)
		} else {
			result[root] = st.fieldNames.get(Index[Lowercase](desc.Content.Name))
			taken[result[root]] = true
		}
	case ContentStructure:
		st.getVarNamesInFlatType(desc.Content.Flat, mark, taken, gen, result)
	case ContentAlias:
		for _, arg := range st.variables.slice(desc.Content.AliasVars.AllVariables()) {
			st.getVarNamesHelp(arg, mark, taken, gen, result)
		}
		st.getVarNamesHelp(desc.Content.AliasReal, mark, taken, gen, result)
	case ContentRangedNumber:
		st.getVarNamesHelp(desc.Content.RangedVar, mark, taken, gen, result)
	case ContentError:
		// no name to assign
	}
}

func (st *Store) getVarNamesInFlatType(flat FlatType, mark Mark, taken map[Lowercase]bool, gen *letterGenerator, result map[Variable]Lowercase) {
	switch flat.Kind {
	case FlatApply:
		for _, a := range st.variables.slice(flat.ApplyArgs) {
			st.getVarNamesHelp(a, mark, taken, gen, result)
		}
	case FlatFunc:
		for _, a := range st.variables.slice(flat.FuncArgs) {
			st.getVarNamesHelp(a, mark, taken, gen, result)
		}
		st.getVarNamesHelp(flat.FuncLambdaSet, mark, taken, gen, result)
		st.getVarNamesHelp(flat.FuncResult, mark, taken, gen, result)
	case FlatRecord:
		for _, fv := range st.variables.slice(flat.Fields.FieldVars()) {
			st.getVarNamesHelp(fv, mark, taken, gen, result)
		}
		st.getVarNamesHelp(flat.Ext, mark, taken, gen, result)
	case FlatTagUnion, FlatRecursiveTagUnion:
		for _, payload := range st.variableSlices.slice(flat.Tags.Variables()) {
			for _, a := range st.variables.slice(payload) {
				st.getVarNamesHelp(a, mark, taken, gen, result)
			}
		}
		if flat.Kind == FlatRecursiveTagUnion {
			st.getVarNamesHelp(flat.RecVar, mark, taken, gen, result)
		}
		st.getVarNamesHelp(flat.Ext, mark, taken, gen, result)
	case FlatFunctionOrTagUnion:
		st.getVarNamesHelp(flat.Ext, mark, taken, gen, result)
	}
}

// addName mints a fresh, collision-free name for root, writes it into
// the field-names arena, stamps the Descriptor's Name slot so future
// calls see it as already-named, and records it in result.
func (st *Store) addName(root Variable, content Content, taken map[Lowercase]bool, gen *letterGenerator, result map[Variable]Lowercase) {
	var name Lowercase
	for {
		name = gen.next()
		if !taken[name] {
			break
		}
	}
	taken[name] = true
	result[root] = name

	idx := NameIndex(st.fieldNames.push(name))
	newContent := content
	newContent.Name = idx
	st.SetContent(root, newContent)
}

// letterGenerator produces "a".."z", then "a1".."z1", "a2".."z2", ...,
// matching the original's scheme for turning an unbounded stream of
// unnamed variables into short, readable names.
type letterGenerator struct {
	n int
}

func (g *letterGenerator) next() Lowercase {
	letter := byte('a' + g.n%26)
	suffix := g.n / 26
	g.n++
	if suffix == 0 {
		return Lowercase([]byte{letter})
	}
	return Lowercase(string([]byte{letter}) + strconv.Itoa(suffix))
}
