// Copyright (c) 2026 The Vela Authors
// SPDX-License-Identifier: MIT

package subs

import "math"

// Symbol is a comparable handle for a name resolved by the (external)
// symbol interner — module-qualified identifiers, ability names, and
// the handful of well-known built-in symbols (NumI8, NumNum, BoolBool,
// ...) the reserved-variable initializer needs to name its aliases.
// The real interner lives outside this package; a plain comparable
// string is enough for every operation the Store performs on a Symbol.
type Symbol string

// Well-known symbols named by the numeric tower and Bool. A real
// interner would hand these out as pre-registered ids; here they are
// just distinguished string values.
const (
	SymNumI8    Symbol = "Num.I8"
	SymNumI16   Symbol = "Num.I16"
	SymNumI32   Symbol = "Num.I32"
	SymNumI64   Symbol = "Num.I64"
	SymNumI128  Symbol = "Num.I128"
	SymNumU8    Symbol = "Num.U8"
	SymNumU16   Symbol = "Num.U16"
	SymNumU32   Symbol = "Num.U32"
	SymNumU64   Symbol = "Num.U64"
	SymNumU128  Symbol = "Num.U128"
	SymNumNat   Symbol = "Num.Nat"
	SymNumF32   Symbol = "Num.F32"
	SymNumF64   Symbol = "Num.F64"
	SymNumDec   Symbol = "Num.Dec"
	SymNumNum   Symbol = "Num.Num"
	SymBoolBool Symbol = "Bool.Bool"

	symSigned8      Symbol = "Num.Signed8"
	symSigned16     Symbol = "Num.Signed16"
	symSigned32     Symbol = "Num.Signed32"
	symSigned64     Symbol = "Num.Signed64"
	symSigned128    Symbol = "Num.Signed128"
	symUnsigned8    Symbol = "Num.Unsigned8"
	symUnsigned16   Symbol = "Num.Unsigned16"
	symUnsigned32   Symbol = "Num.Unsigned32"
	symUnsigned64   Symbol = "Num.Unsigned64"
	symUnsigned128  Symbol = "Num.Unsigned128"
	symNatural      Symbol = "Num.Natural"
	symBinary32     Symbol = "Num.Binary32"
	symBinary64     Symbol = "Num.Binary64"
	symDecimal      Symbol = "Num.Decimal"
	symNumInteger   Symbol = "Num.Integer"
	symNumFloatingP Symbol = "Num.FloatingPoint"
)

// GetReserved maps a well-known Symbol to its pre-seeded Variable, for
// collaborators (the constraint generator, the ability resolver) that
// only know a type by name. Reports ok=false for any symbol that is
// not one of the reserved aliases.
func GetReserved(sym Symbol) (Variable, bool) {
	switch sym {
	case SymNumI8:
		return I8Var, true
	case SymNumI16:
		return I16Var, true
	case SymNumI32:
		return I32Var, true
	case SymNumI64:
		return I64Var, true
	case SymNumI128:
		return I128Var, true
	case SymNumU8:
		return U8Var, true
	case SymNumU16:
		return U16Var, true
	case SymNumU32:
		return U32Var, true
	case SymNumU64:
		return U64Var, true
	case SymNumU128:
		return U128Var, true
	case SymNumNat:
		return NatVar, true
	case SymNumF32:
		return F32Var, true
	case SymNumF64:
		return F64Var, true
	case SymNumDec:
		return DecVar, true
	case SymBoolBool:
		return BoolVar, true
	default:
		return NullVar, false
	}
}

// Lowercase is a field or variable name; Uppercase is a tag head.
// Both are heap strings, as the teacher's Lowercase/TagName are.
type Lowercase string
type Uppercase string

// NameIndex references a Lowercase stored in the field-names arena.
// It doubles as the "opt_name" slot on flex/rigid/recursion variables.
type NameIndex uint32

// NoName is the absent value of a NameIndex.
const NoName NameIndex = math.MaxUint32

func (n NameIndex) isSome() bool { return n != NoName }

// TagName is either a source-level tag head ("Ok", "Cons", ...) or a
// closure tag identified by a Symbol — the two ways a UnionTags entry
// can be named.
type TagName struct {
	IsClosure bool
	Global    Uppercase
	Closure   Symbol
}

func GlobalTagName(name Uppercase) TagName { return TagName{Global: name} }
func ClosureTagName(sym Symbol) TagName    { return TagName{IsClosure: true, Closure: sym} }

// ResultTagNames are the two arms of the builtin Result tag union, at
// fixed positions 0 ("Err") and 1 ("Ok") as spec invariant 5 requires.
var ResultTagNames = [2]Uppercase{"Err", "Ok"}
