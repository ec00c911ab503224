package korowa

import (
	"unicode"
)

// punct maps the runes which are tokens by themselves to their kinds.
var punct = map[rune]tokenKind{
	'+': tokenAdd,
	'-': tokenSub,
	'/': tokenDiv,
	'÷': tokenDiv,
	'*': tokenMul,
	'×': tokenMul,
	'%': tokenMod,
	'!': tokenFact,
	'^': tokenPow,
	'(': tokenLeftPars,
	')': tokenRightPars,
	'{': tokenLeftPars,
	'}': tokenRightPars,
	'[': tokenLeftArrPars,
	']': tokenRightArrPars,
	',': tokenComma,
	'=': tokenEquals,
}

type lexState uint8

const (
	// stateBegin is the state before any token.
	stateBegin lexState = iota
	// stateRead follows whitespace.
	stateRead
	stateNumber
	stateFraction
	stateVariable
	stateOperator
	// stateUnaryOperator follows a sign that was absorbed as unary.
	stateUnaryOperator
	// stateFunction is inside an identifier which currently names a function.
	stateFunction
)

// lexer turns a string into tokens one rune at a time. The token being
// scanned is always the last element of toks, so extending a token or
// reclassifying it modifies toks in place.
type lexer struct {
	state lexState
	toks  []token
	// prev is the previously scanned rune, or 0 at the start.
	prev rune
}

// tokenize lexes an expression. It never fails: characters it doesn't
// understand become tokenUnknown tokens, which the parser rejects.
func tokenize(expr string) []token {
	l := lexer{toks: make([]token, 0, len(expr))}
	for _, r := range expr {
		l.step(r)
		l.prev = r
	}
	return l.toks
}

// step scans one rune.
func (l *lexer) step(r rune) {
	switch {
	case unicode.IsSpace(r):
		if l.state != stateBegin {
			l.state = stateRead
		}
	case l.state == stateNumber, l.state == stateFraction:
		l.number(r)
	case l.state == stateVariable, l.state == stateFunction:
		l.ident(r)
	default:
		l.start(r)
	}
}

// number continues a numeric literal.
func (l *lexer) number(r rune) {
	switch {
	case isDigit(r):
		l.extend(r)
	case r == '\'':
		// Digit group separator, e.g. 1'000'000.
	case r == '.':
		// A second point stays in the literal. The parser reports it as a
		// malformed number.
		l.extend(r)
		l.state = stateFraction
	default:
		l.start(r)
	}
}

// ident continues an identifier.
func (l *lexer) ident(r rune) {
	if isLetter(r) || isDigit(r) {
		l.extend(r)
		l.classify()
		return
	}
	l.start(r)
}

// start begins a new token with r.
func (l *lexer) start(r rune) {
	switch {
	case isDigit(r):
		l.implyMul()
		l.push(tokenNumber, string(r))
		l.state = stateNumber
	case r == '.':
		l.implyMul()
		l.push(tokenNumber, ".")
		l.state = stateFraction
	case isLetter(r):
		l.implyMul()
		l.push(tokenVariable, string(r))
		l.classify()
	default:
		l.operator(r)
	}
}

// operator scans a punctuation rune.
func (l *lexer) operator(r rune) {
	k, ok := punct[r]
	if !ok {
		l.push(tokenUnknown, string(r))
		l.state = stateOperator
		return
	}
	switch k {
	case tokenLeftPars, tokenLeftArrPars:
		l.implyMul()
	case tokenMul:
		// ** is exponentiation.
		if last := l.last(); l.prev == '*' && last != nil && last.kind == tokenMul {
			last.kind = tokenPow
			last.text = "**"
			l.state = stateOperator
			return
		}
	case tokenSub:
		if !l.afterValue() {
			l.push(tokenNumber, "-1")
			l.push(tokenMul, "*")
			l.state = stateUnaryOperator
			return
		}
	case tokenAdd:
		if !l.afterValue() {
			l.state = stateUnaryOperator
			return
		}
	}
	l.push(k, string(r))
	l.state = stateOperator
}

// classify sets the kind of the identifier being scanned according to its
// current text, and moves to the state for that kind.
func (l *lexer) classify() {
	last := l.last()
	k, ok := lookup(last.text)
	switch {
	case ok && k.isFunction():
		last.kind = k
		l.state = stateFunction
	case ok:
		last.kind = k
		l.state = stateVariable
	default:
		last.kind = tokenVariable
		l.state = stateVariable
	}
}

// implyMul inserts a multiplication if the previous token ends an operand.
// It is called when a new operand is about to start.
func (l *lexer) implyMul() {
	if l.afterValue() {
		l.push(tokenMul, "*")
	}
}

// afterValue reports whether the last token ends an operand.
func (l *lexer) afterValue() bool {
	last := l.last()
	return last != nil && last.kind.endsValue()
}

func (l *lexer) push(k tokenKind, text string) {
	l.toks = append(l.toks, token{kind: k, text: text})
}

// last returns the token being scanned, or nil if there are no tokens yet.
func (l *lexer) last() *token {
	if len(l.toks) == 0 {
		return nil
	}
	return &l.toks[len(l.toks)-1]
}

func (l *lexer) extend(r rune) {
	last := l.last()
	last.text += string(r)
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func isLetter(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}
