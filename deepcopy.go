// Copyright (c) 2026 The Vela Authors
// SPDX-License-Identifier: MIT

package subs

// DeepCopyVarTo instantiates the type rooted at v into dst at rank,
// for generalization's "use a let-bound polytype at a fresh call
// site": every reachable variable gets a fresh id in dst, and every
// rigid variable is relaxed into an ordinary flex variable so it can
// unify freely at the use site. dst may be st itself.
func (st *Store) DeepCopyVarTo(dst *Store, v Variable, rank Rank) Variable {
	touched := getScratch()
	defer putScratch(touched)

	result := deepCopyHelp(st, dst, v, rank, true, touched, nil)

	for _, t := range *touched {
		st.SetCopy(t, NoVariable)
	}
	return result
}

// RigidTranslation records that a rigid (or able-bound rigid) variable
// Source in the import's source Store was copied to Copy in the
// destination Store, so a caller that needs to connect the two spaces
// (for example to check an exposed alias's type variables line up
// with its definition) doesn't have to re-walk both structures.
type RigidTranslation struct {
	Source Variable
	Copy   Variable
}

// CopiedImport is the result of importing a variable from one Store
// into another. Variable is the copy's root in the destination Store.
//
// Copying a variable's Content across Stores is not the same as fully
// registering it the way type_to_var-style construction would: a
// caller that drives unification against the destination Store (at
// some rank, in some rank-pool-keyed solver) still needs to know which
// freshly allocated variables must be added to that rank's pool.
// Flex, Rigid, FlexAble, and RigidAble list every variable of that
// category allocated during the copy, for introducing them at the
// right rank in a Let-style generalization constraint; Registered
// lists every allocated variable whose Content would itself have been
// registered by an ordinary type-to-variable construction (everything
// except flex/rigid/able-flex/able-rigid vars and the pre-seeded EmptyRecord/
// EmptyTagUnion structures, which share the reserved variables instead
// of getting their own); Translations maps each copied rigid (and
// able-bound rigid) variable back to its source, for call sites that
// need to connect the two spaces after the fact.
type CopiedImport struct {
	Source Variable
	Copy   Variable

	Flex      []Variable
	Rigid     []Variable
	FlexAble  []Variable
	RigidAble []Variable

	Translations []RigidTranslation
	Registered   []Variable
}

// CopyImportTo imports the type rooted at v from st into dst at rank,
// for pulling an exposed type out of another module's Store. Unlike
// DeepCopyVarTo, rigid variables stay rigid — importing a type must
// not erase the distinction between a module's own type parameters
// and the flexible variables a caller is free to unify away — and an
// Erroneous structure is relaxed into a fresh flex variable rather
// than carried across, since a type error belongs to the module that
// produced it and is reported there, not re-reported at every import
// site.
func (st *Store) CopyImportTo(dst *Store, v Variable, rank Rank) CopiedImport {
	touched := getScratch()
	defer putScratch(touched)

	env := &copyImportEnv{}
	result := deepCopyHelp(st, dst, v, rank, false, touched, env)

	for _, t := range *touched {
		st.SetCopy(t, NoVariable)
	}
	return CopiedImport{
		Source: v,
		Copy:   result,

		Flex:      env.flex,
		Rigid:     env.rigid,
		FlexAble:  env.flexAble,
		RigidAble: env.rigidAble,

		Translations: env.translations,
		Registered:   env.registered,
	}
}

// copyImportEnv accumulates CopyImportTo's bookkeeping lists as the
// copy walk proceeds. It is nil for a plain DeepCopyVarTo, which has
// no caller-visible rank-pool to register into.
type copyImportEnv struct {
	flex, rigid, flexAble, rigidAble []Variable
	translations                     []RigidTranslation
	registered                       []Variable
}

// isRegisteredContent reports whether a type-to-variable construction
// would register content's variable in the current rank pool. Flex,
// rigid, and able-bound flex/rigid variables are skipped because they
// are registered separately (as Flex/Rigid/FlexAble/RigidAble), and so
// are the pre-seeded EmptyRecord/EmptyTagUnion structures, which reuse
// the reserved EmptyRecordVar/EmptyTagUnionVar instead of allocating
// their own pool slot.
func isRegisteredContent(c Content) bool {
	switch c.Kind {
	case ContentFlexVar, ContentRigidVar, ContentFlexAbleVar, ContentRigidAbleVar:
		return false
	case ContentStructure:
		return c.Flat.Kind != FlatEmptyRecord && c.Flat.Kind != FlatEmptyTagUnion
	default:
		return true
	}
}

// deepCopyHelp is shared by DeepCopyVarTo and CopyImportTo. The Copy
// field on each source Descriptor doubles as both the cycle guard and
// the memo table: a variable is allocated in dst and recorded in the
// source's Copy field *before* its children are visited, so a
// recursive or shared structure never gets copied twice and never
// loops forever on a genuine cycle (closed through a RecursionVar).
//
// env is non-nil only for CopyImportTo, and is populated here from the
// source Descriptor's own content kind — categorization always reads
// the source, never the (possibly rigid-relaxed) copy.
func deepCopyHelp(src, dst *Store, v Variable, rank Rank, instantiateRigid bool, touched *[]Variable, env *copyImportEnv) Variable {
	root := src.GetRoot(v)
	desc := src.Get(root)
	if desc.Copy != NoVariable {
		return desc.Copy
	}

	newVar := dst.Fresh(flexVarDescriptor())
	src.SetCopy(root, newVar)
	*touched = append(*touched, root)

	if env != nil && isRegisteredContent(desc.Content) {
		env.registered = append(env.registered, newVar)
	}

	newContent := deepCopyContent(src, dst, desc.Content, rank, instantiateRigid, touched, env)
	dst.SetContent(newVar, newContent)
	dst.SetRank(newVar, rank)

	if env != nil {
		switch desc.Content.Kind {
		case ContentFlexVar:
			env.flex = append(env.flex, newVar)
		case ContentFlexAbleVar:
			env.flexAble = append(env.flexAble, newVar)
		case ContentRigidVar:
			env.rigid = append(env.rigid, newVar)
			env.translations = append(env.translations, RigidTranslation{Source: root, Copy: newVar})
		case ContentRigidAbleVar:
			env.rigidAble = append(env.rigidAble, newVar)
			env.translations = append(env.translations, RigidTranslation{Source: root, Copy: newVar})
		}
	}

	return newVar
}

func copyNameIndex(src, dst *Store, idx NameIndex) NameIndex {
	if !idx.isSome() {
		return NoName
	}
	name := src.fieldNames.get(Index[Lowercase](idx))
	return NameIndex(dst.fieldNames.push(name))
}

func deepCopyContent(src, dst *Store, c Content, rank Rank, instantiateRigid bool, touched *[]Variable, env *copyImportEnv) Content {
	switch c.Kind {
	case ContentFlexVar:
		return FlexVarContent(copyNameIndex(src, dst, c.Name))
	case ContentFlexAbleVar:
		return FlexAbleVarContent(copyNameIndex(src, dst, c.Name), c.Ability)
	case ContentRigidVar:
		if instantiateRigid {
			return FlexVarContent(copyNameIndex(src, dst, c.Name))
		}
		return RigidVarContent(copyNameIndex(src, dst, c.Name))
	case ContentRigidAbleVar:
		if instantiateRigid {
			return FlexAbleVarContent(copyNameIndex(src, dst, c.Name), c.Ability)
		}
		return RigidAbleVarContent(copyNameIndex(src, dst, c.Name), c.Ability)
	case ContentRecursionVar:
		structure := deepCopyHelp(src, dst, c.RecursionStructure, rank, instantiateRigid, touched, env)
		return RecursionVarContent(structure, copyNameIndex(src, dst, c.Name))
	case ContentStructure:
		if c.Flat.Kind == FlatErroneous && env != nil {
			// Errors don't cross module boundaries: each is reported
			// once, locally, by the module that produced it.
			return FlexVarContent(NoName)
		}
		return StructureContent(deepCopyFlatType(src, dst, c.Flat, rank, instantiateRigid, touched, env))
	case ContentAlias:
		args := src.variables.slice(c.AliasVars.AllVariables())
		typeLen := int(c.AliasVars.typeVariablesLen)
		newArgs := make([]Variable, len(args))
		for i, a := range args {
			newArgs[i] = deepCopyHelp(src, dst, a, rank, instantiateRigid, touched, env)
		}
		newReal := deepCopyHelp(src, dst, c.AliasReal, rank, instantiateRigid, touched, env)
		newVars := InsertAliasVariablesIntoSubs(dst, newArgs[:typeLen], newArgs[typeLen:])
		return AliasContent(c.AliasSymbol, newVars, newReal, c.AliasKind)
	case ContentRangedNumber:
		newRanged := deepCopyHelp(src, dst, c.RangedVar, rank, instantiateRigid, touched, env)
		orig := src.variables.slice(c.RangeVars)
		newRange := make([]Variable, len(orig))
		for i, rv := range orig {
			newRange[i] = deepCopyHelp(src, dst, rv, rank, instantiateRigid, touched, env)
		}
		return RangedNumberContent(newRanged, dst.variables.extendNew(newRange))
	default: // ContentError
		return ErrorContent
	}
}

func deepCopyFlatType(src, dst *Store, flat FlatType, rank Rank, instantiateRigid bool, touched *[]Variable, env *copyImportEnv) FlatType {
	copyVars := func(s Slice[Variable]) Slice[Variable] {
		orig := src.variables.slice(s)
		out := make([]Variable, len(orig))
		for i, v := range orig {
			out[i] = deepCopyHelp(src, dst, v, rank, instantiateRigid, touched, env)
		}
		return dst.variables.extendNew(out)
	}

	switch flat.Kind {
	case FlatApply:
		return ApplyFlat(flat.ApplySymbol, copyVars(flat.ApplyArgs))
	case FlatFunc:
		args := copyVars(flat.FuncArgs)
		lambdaSet := deepCopyHelp(src, dst, flat.FuncLambdaSet, rank, instantiateRigid, touched, env)
		result := deepCopyHelp(src, dst, flat.FuncResult, rank, instantiateRigid, touched, env)
		return FuncFlat(args, lambdaSet, result)
	case FlatRecord:
		names := src.fieldNames.slice(flat.Fields.Names())
		vars := src.variables.slice(flat.Fields.FieldVars())
		kinds := src.recordFields.slice(flat.Fields.Kinds())
		out := make([]RecordField, len(names))
		for i := range names {
			out[i] = RecordField{
				Name: names[i],
				Var:  deepCopyHelp(src, dst, vars[i], rank, instantiateRigid, touched, env),
				Kind: kinds[i],
			}
		}
		fields := InsertRecordFieldsIntoSubs(dst, out)
		ext := deepCopyHelp(src, dst, flat.Ext, rank, instantiateRigid, touched, env)
		return RecordFlat(fields, ext)
	case FlatTagUnion, FlatRecursiveTagUnion:
		tags := deepCopyUnionTags(src, dst, flat.Tags, rank, instantiateRigid, touched, env)
		ext := deepCopyHelp(src, dst, flat.Ext, rank, instantiateRigid, touched, env)
		if flat.Kind == FlatRecursiveTagUnion {
			recVar := deepCopyHelp(src, dst, flat.RecVar, rank, instantiateRigid, touched, env)
			return RecursiveTagUnionFlat(recVar, tags, ext)
		}
		return TagUnionFlat(tags, ext)
	case FlatFunctionOrTagUnion:
		ext := deepCopyHelp(src, dst, flat.Ext, rank, instantiateRigid, touched, env)
		return FunctionOrTagUnionFlat(flat.FunOrTagName, flat.FunOrTagSymbol, ext)
	case FlatErroneous:
		return ErroneousFlat(flat.Problem)
	case FlatEmptyRecord:
		return EmptyRecordFlat
	default: // FlatEmptyTagUnion
		return EmptyTagUnionFlat
	}
}

func deepCopyUnionTags(src, dst *Store, tags UnionTags, rank Rank, instantiateRigid bool, touched *[]Variable, env *copyImportEnv) UnionTags {
	names := src.tagNames.slice(tags.TagNames())
	payloads := src.variableSlices.slice(tags.Variables())
	out := make([]TagPayload, len(names))
	for i, name := range names {
		orig := src.variables.slice(payloads[i])
		vars := make([]Variable, len(orig))
		for j, v := range orig {
			vars[j] = deepCopyHelp(src, dst, v, rank, instantiateRigid, touched, env)
		}
		out[i] = TagPayload{Name: name, Vars: vars}
	}
	return InsertUnionTagsIntoSubs(dst, out)
}
