package korowa

import (
	"sort"
	"strconv"
)

// token is a single lexed token. text is the source spelling, or the spelling
// of a token the lexer implied, e.g. the "*" in "2x".
type token struct {
	kind tokenKind
	text string
}

func (t token) String() string {
	return t.kind.String() + ":" + t.text
}

type tokenKind uint8

const (
	// tokenUnknown is a character the lexer does not recognize. The parser
	// rejects any expression containing one.
	tokenUnknown tokenKind = iota

	tokenLeftPars  // ( or {
	tokenRightPars // ) or }
	tokenComma
	tokenLeftArrPars  // [
	tokenRightArrPars // ]

	tokenNumber
	tokenVariable

	// Postfix unary operators.
	tokenFact
	tokenPlaceholder1
	tokenPlaceholder2

	// Binary operators.
	tokenAdd
	tokenSub
	tokenDiv
	tokenMul
	tokenMod
	tokenPow
	tokenEquals

	// Functions of one argument.
	tokenSqrt
	tokenCbrt
	tokenFactorial
	tokenAbs
	tokenLn
	tokenLg
	tokenExp
	tokenCeil
	tokenFloor
	tokenRound
	tokenTrunc
	tokenSinc
	tokenSin
	tokenCos
	tokenTan
	tokenCtan
	tokenSinh
	tokenCosh
	tokenTanh
	tokenCtanh
	tokenAsin
	tokenAcos
	tokenAtan
	tokenActan
	tokenAsinh
	tokenAcosh
	tokenAtanh
	tokenActanh

	// Functions of two arguments.
	tokenMin
	tokenMax
	tokenGcd
	tokenLcm
	tokenLog

	tokenE
	tokenPi
	tokenTau
	tokenPhi

	tokenRnd
	tokenPrime
	tokenTime
	tokenPlaceholderGen3

	numTokenKinds
)

// class is the syntactic category of a token kind.
type class uint8

const (
	classNone class = iota
	classPunct
	classLiteral
	classUnaryOp
	classBinaryOp
	classUnaryFn
	classBinaryFn
	classConst
	classGen
)

// kindInfo holds the fixed properties of a token kind. Classification never
// depends on the order of the tokenKind constants.
type kindInfo struct {
	// name is the debugging name of the kind.
	name string
	// word is the identifier that lexes to the kind, if any.
	word  string
	class class
	// prec is the binding strength used by the parser. Higher binds tighter.
	prec int8
}

var kinds = [numTokenKinds]kindInfo{
	tokenUnknown: {name: "Unknown"},

	tokenLeftPars:     {name: "LeftPars", class: classPunct, prec: 0},
	tokenRightPars:    {name: "RightPars", class: classPunct, prec: 0},
	tokenComma:        {name: "Comma", class: classPunct, prec: 4},
	tokenLeftArrPars:  {name: "LeftArrPars", class: classPunct, prec: 0},
	tokenRightArrPars: {name: "RightArrPars", class: classPunct, prec: 0},

	tokenNumber:   {name: "Number", class: classLiteral, prec: 4},
	tokenVariable: {name: "Variable", class: classLiteral, prec: 4},

	tokenFact:         {name: "Fact", class: classUnaryOp, prec: 4},
	tokenPlaceholder1: {name: "Placeholder1", class: classUnaryOp, prec: 4},
	tokenPlaceholder2: {name: "Placeholder2", class: classUnaryOp, prec: 4},

	tokenAdd:    {name: "Add", class: classBinaryOp, prec: 1},
	tokenSub:    {name: "Sub", class: classBinaryOp, prec: 1},
	tokenDiv:    {name: "Div", class: classBinaryOp, prec: 2},
	tokenMul:    {name: "Mul", class: classBinaryOp, prec: 2},
	tokenMod:    {name: "Mod", class: classBinaryOp, prec: 2},
	tokenPow:    {name: "Pow", class: classBinaryOp, prec: 3},
	tokenEquals: {name: "Equals", class: classBinaryOp, prec: 0},

	tokenSqrt:      {name: "Sqrt", word: "sqrt", class: classUnaryFn, prec: 4},
	tokenCbrt:      {name: "Cbrt", word: "cbrt", class: classUnaryFn, prec: 4},
	tokenFactorial: {name: "Factorial", word: "fact", class: classUnaryFn, prec: 4},
	tokenAbs:       {name: "Abs", word: "abs", class: classUnaryFn, prec: 4},
	tokenLn:        {name: "Ln", word: "ln", class: classUnaryFn, prec: 4},
	tokenLg:        {name: "Lg", word: "lg", class: classUnaryFn, prec: 4},
	tokenExp:       {name: "Exp", word: "exp", class: classUnaryFn, prec: 4},
	tokenCeil:      {name: "Ceil", word: "ceil", class: classUnaryFn, prec: 4},
	tokenFloor:     {name: "Floor", word: "floor", class: classUnaryFn, prec: 4},
	tokenRound:     {name: "Round", word: "round", class: classUnaryFn, prec: 4},
	tokenTrunc:     {name: "Trunc", word: "trunc", class: classUnaryFn, prec: 4},
	tokenSinc:      {name: "Sinc", word: "sinc", class: classUnaryFn, prec: 4},
	tokenSin:       {name: "Sin", word: "sin", class: classUnaryFn, prec: 4},
	tokenCos:       {name: "Cos", word: "cos", class: classUnaryFn, prec: 4},
	tokenTan:       {name: "Tan", word: "tan", class: classUnaryFn, prec: 4},
	tokenCtan:      {name: "Ctan", word: "ctan", class: classUnaryFn, prec: 4},
	tokenSinh:      {name: "Sinh", word: "sinh", class: classUnaryFn, prec: 4},
	tokenCosh:      {name: "Cosh", word: "cosh", class: classUnaryFn, prec: 4},
	tokenTanh:      {name: "Tanh", word: "tanh", class: classUnaryFn, prec: 4},
	tokenCtanh:     {name: "Ctanh", word: "ctanh", class: classUnaryFn, prec: 4},
	tokenAsin:      {name: "Asin", word: "asin", class: classUnaryFn, prec: 4},
	tokenAcos:      {name: "Acos", word: "acos", class: classUnaryFn, prec: 4},
	tokenAtan:      {name: "Atan", word: "atan", class: classUnaryFn, prec: 4},
	tokenActan:     {name: "Actan", word: "actan", class: classUnaryFn, prec: 4},
	tokenAsinh:     {name: "Asinh", word: "asinh", class: classUnaryFn, prec: 4},
	tokenAcosh:     {name: "Acosh", word: "acosh", class: classUnaryFn, prec: 4},
	tokenAtanh:     {name: "Atanh", word: "atanh", class: classUnaryFn, prec: 4},
	tokenActanh:    {name: "Actanh", word: "actanh", class: classUnaryFn, prec: 4},

	tokenMin: {name: "Min", word: "min", class: classBinaryFn, prec: 4},
	tokenMax: {name: "Max", word: "max", class: classBinaryFn, prec: 4},
	tokenGcd: {name: "Gcd", word: "gcd", class: classBinaryFn, prec: 4},
	tokenLcm: {name: "Lcm", word: "lcm", class: classBinaryFn, prec: 4},
	tokenLog: {name: "Log", word: "log", class: classBinaryFn, prec: 4},

	tokenE:   {name: "E", word: "e", class: classConst, prec: 4},
	tokenPi:  {name: "Pi", word: "pi", class: classConst, prec: 4},
	tokenTau: {name: "Tau", word: "tau", class: classConst, prec: 4},
	tokenPhi: {name: "Phi", word: "phi", class: classConst, prec: 4},

	tokenRnd: {name: "Rnd", word: "rnd", class: classGen, prec: 4},
	// Prime has no spelling yet; it is reserved for a prime generator.
	tokenPrime:           {name: "Prime", class: classGen, prec: 4},
	tokenTime:            {name: "Time", word: "time", class: classGen, prec: 4},
	tokenPlaceholderGen3: {name: "PlaceholderGen3", class: classGen, prec: 4},
}

// words maps identifiers to the function, constant, and generator kinds they
// name.
var words = func() map[string]tokenKind {
	m := make(map[string]tokenKind)
	for k, v := range kinds {
		if v.word != "" {
			m[v.word] = tokenKind(k)
		}
	}
	return m
}()

func (k tokenKind) String() string {
	if k < numTokenKinds {
		return kinds[k].name
	}
	return "tokenKind(" + strconv.Itoa(int(k)) + ")"
}

func (k tokenKind) class() class {
	if k < numTokenKinds {
		return kinds[k].class
	}
	return classNone
}

// precedence returns the binding strength of k. Parentheses bind loosest and
// functions tightest.
func (k tokenKind) precedence() int8 {
	if k < numTokenKinds {
		return kinds[k].prec
	}
	return 4
}

func (k tokenKind) isUnaryOp() bool   { return k.class() == classUnaryOp }
func (k tokenKind) isBinaryOp() bool  { return k.class() == classBinaryOp }
func (k tokenKind) isUnaryFn() bool   { return k.class() == classUnaryFn }
func (k tokenKind) isBinaryFn() bool  { return k.class() == classBinaryFn }
func (k tokenKind) isFunction() bool  { return k.isUnaryFn() || k.isBinaryFn() }
func (k tokenKind) isConstant() bool  { return k.class() == classConst }
func (k tokenKind) isGenerator() bool { return k.class() == classGen }

// isOpen reports whether k opens a bracketed group.
func (k tokenKind) isOpen() bool {
	return k == tokenLeftPars || k == tokenLeftArrPars
}

// endsValue reports whether a token of kind k can be the last token of an
// operand. A minus after such a token is a subtraction, and a term after it
// is an implied multiplication.
func (k tokenKind) endsValue() bool {
	switch {
	case k == tokenNumber, k == tokenVariable, k == tokenRightPars, k == tokenRightArrPars:
		return true
	case k.isConstant(), k.isGenerator(), k.isUnaryOp():
		return true
	}
	return false
}

// lookup finds the kind that an identifier names. ok is false for plain
// variable names.
func lookup(word string) (k tokenKind, ok bool) {
	k, ok = words[word]
	return k, ok
}

// Vocabulary returns the sorted names of all functions, constants, and
// generators the lexer recognizes.
func Vocabulary() []string {
	v := make([]string, 0, len(words))
	for w := range words {
		v = append(v, w)
	}
	sort.Strings(v)
	return v
}
