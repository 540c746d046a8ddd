// Copyright (c) 2026 The Vela Authors
// SPDX-License-Identifier: MIT

package subs

import (
	"fmt"
	"io"
	"strings"
)

// Fprint writes a human-readable, indented tree of the type rooted at
// v to w, following every child variable it reaches. A variable
// reached more than once (a shared child, or a cycle) is printed once
// in full and every further occurrence is rendered as a back-reference
// instead of re-expanding the whole subtree. A RecursionVar is printed
// as a pointer to its structure and is not descended into.
func Fprint(w io.Writer, st *Store, v Variable) error {
	p := &printer{st: st, w: w, mark: st.FreshMark()}
	return p.printVar(v, 0)
}

type printer struct {
	st   *Store
	w    io.Writer
	mark Mark
	err  error
}

func (p *printer) line(depth int, format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, "%s%s\n", strings.Repeat("  ", depth), fmt.Sprintf(format, args...))
}

func (p *printer) printVar(v Variable, depth int) error {
	p.printVarHelp(v, depth)
	return p.err
}

func (p *printer) printVarHelp(v Variable, depth int) {
	root := p.st.GetRoot(v)
	desc := p.st.Get(root)
	if desc.Mark == p.mark {
		p.line(depth, "%s (seen above)", root)
		return
	}
	p.st.SetMark(root, p.mark)

	switch desc.Content.Kind {
	case ContentFlexVar:
		p.line(depth, "%s: flex", root)
	case ContentRigidVar:
		p.line(depth, "%s: rigid", root)
	case ContentFlexAbleVar:
		p.line(depth, "%s: flex has %s", root, desc.Content.Ability)
	case ContentRigidAbleVar:
		p.line(depth, "%s: rigid has %s", root, desc.Content.Ability)
	case ContentRecursionVar:
		p.line(depth, "%s: recursion point -> %s", root, desc.Content.RecursionStructure)
	case ContentError:
		p.line(depth, "%s: <error>", root)
	case ContentRangedNumber:
		p.line(depth, "%s: ranged number over %s", root, desc.Content.RangedVar)
	case ContentAlias:
		p.line(depth, "%s: alias %s", root, desc.Content.AliasSymbol)
		for _, a := range p.st.variables.slice(desc.Content.AliasVars.TypeVariables()) {
			p.printVarHelp(a, depth+1)
		}
		p.line(depth+1, "= real")
		p.printVarHelp(desc.Content.AliasReal, depth+2)
	case ContentStructure:
		p.printFlatType(desc.Content.Flat, root, depth)
	}
}

func (p *printer) printFlatType(flat FlatType, self Variable, depth int) {
	switch flat.Kind {
	case FlatApply:
		p.line(depth, "%s: %s", self, flat.ApplySymbol)
		for _, a := range p.st.variables.slice(flat.ApplyArgs) {
			p.printVarHelp(a, depth+1)
		}
	case FlatFunc:
		p.line(depth, "%s: function", self)
		for _, a := range p.st.variables.slice(flat.FuncArgs) {
			p.printVarHelp(a, depth+1)
		}
		p.line(depth+1, "-> result")
		p.printVarHelp(flat.FuncResult, depth+2)
	case FlatRecord:
		p.line(depth, "%s: record", self)
		names := p.st.fieldNames.slice(flat.Fields.Names())
		vars := p.st.variables.slice(flat.Fields.FieldVars())
		for i, name := range names {
			p.line(depth+1, "%s:", name)
			p.printVarHelp(vars[i], depth+2)
		}
		p.line(depth+1, "ext")
		p.printVarHelp(flat.Ext, depth+2)
	case FlatTagUnion, FlatRecursiveTagUnion:
		p.line(depth, "%s: tag union", self)
		if flat.Kind == FlatRecursiveTagUnion {
			p.line(depth+1, "recursion var %s", flat.RecVar)
		}
		names := p.st.tagNames.slice(flat.Tags.TagNames())
		payloads := p.st.variableSlices.slice(flat.Tags.Variables())
		for i, name := range names {
			tagLabel := string(name.Global)
			if name.IsClosure {
				tagLabel = string(name.Closure)
			}
			p.line(depth+1, "%s", tagLabel)
			for _, a := range p.st.variables.slice(payloads[i]) {
				p.printVarHelp(a, depth+2)
			}
		}
		p.line(depth+1, "ext")
		p.printVarHelp(flat.Ext, depth+2)
	case FlatFunctionOrTagUnion:
		p.line(depth, "%s: function-or-tag-union %s", self, flat.FunOrTagSymbol)
		p.printVarHelp(flat.Ext, depth+1)
	case FlatErroneous:
		p.line(depth, "%s: <erroneous: %s>", self, flat.Problem.Message)
	case FlatEmptyRecord:
		p.line(depth, "%s: {}", self)
	case FlatEmptyTagUnion:
		p.line(depth, "%s: []", self)
	}
}
