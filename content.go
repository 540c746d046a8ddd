// Copyright (c) 2026 The Vela Authors
// SPDX-License-Identifier: MIT

package subs

// ContentKind discriminates the Content tagged union. Kept to a single
// byte and ordered so the cheapest-to-check variants (the bound-free
// variables) come first, the same way the teacher's nodeType keeps its
// four node shapes to a byte (node.go's nullNode/fullNode/leafNode/
// intermediateNode).
type ContentKind uint8

const (
	ContentFlexVar ContentKind = iota
	ContentRigidVar
	ContentFlexAbleVar
	ContentRigidAbleVar
	ContentRecursionVar
	ContentStructure
	ContentAlias
	ContentRangedNumber
	ContentError
)

// Content is the type carried by a Descriptor. Exactly one set of
// fields is meaningful, selected by Kind; the zero value of every
// other field is ignored. This mirrors the Rust source's closed enum
// while staying representable with Go's lack of sum types — the same
// tradeoff the teacher makes for its nodeType-tagged node variants.
type Content struct {
	Kind ContentKind

	// FlexVar, RigidVar, FlexAbleVar, RigidAbleVar, RecursionVar
	Name NameIndex // NoName if unnamed
	// FlexAbleVar, RigidAbleVar
	Ability Symbol
	// RecursionVar
	RecursionStructure Variable

	// Structure
	Flat FlatType

	// Alias
	AliasSymbol Symbol
	AliasVars   AliasVariables
	AliasReal   Variable
	AliasKind   AliasKind

	// RangedNumber
	RangedVar Variable
	RangeVars Slice[Variable]
}

// AliasKind distinguishes a structural alias (transparent to
// unification) from an opaque one (nominal, hidden outside its
// defining module).
type AliasKind uint8

const (
	AliasStructural AliasKind = iota
	AliasOpaque
)

func FlexVarContent(name NameIndex) Content {
	return Content{Kind: ContentFlexVar, Name: name}
}

func RigidVarContent(name NameIndex) Content {
	return Content{Kind: ContentRigidVar, Name: name}
}

func FlexAbleVarContent(name NameIndex, ability Symbol) Content {
	return Content{Kind: ContentFlexAbleVar, Name: name, Ability: ability}
}

func RigidAbleVarContent(name NameIndex, ability Symbol) Content {
	return Content{Kind: ContentRigidAbleVar, Name: name, Ability: ability}
}

func RecursionVarContent(structure Variable, name NameIndex) Content {
	return Content{Kind: ContentRecursionVar, RecursionStructure: structure, Name: name}
}

func StructureContent(flat FlatType) Content {
	return Content{Kind: ContentStructure, Flat: flat}
}

func AliasContent(sym Symbol, vars AliasVariables, real Variable, kind AliasKind) Content {
	return Content{Kind: ContentAlias, AliasSymbol: sym, AliasVars: vars, AliasReal: real, AliasKind: kind}
}

func RangedNumberContent(typeVar Variable, rangeVars Slice[Variable]) Content {
	return Content{Kind: ContentRangedNumber, RangedVar: typeVar, RangeVars: rangeVars}
}

// ErrorContent is the absorbing poisoned value: it propagates through
// unification and projection without raising anything further.
var ErrorContent = Content{Kind: ContentError}

// IsNumber reports whether c is the builtin Apply(Num.Num, _) shape,
// mirroring Content::is_number in the original.
func (c Content) IsNumber() bool {
	return c.Kind == ContentStructure && c.Flat.Kind == FlatApply && c.Flat.ApplySymbol == SymNumNum
}
