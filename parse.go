package korowa

import (
	"errors"
	"strconv"
	"strings"
)

// parse reorders a token sequence into postfix order using the shunting-yard
// algorithm. Error positions are indices into toks.
//
// All binary operators are left-associative, including ^: an operator on the
// stack is popped whenever it binds at least as tightly as the incoming one.
func parse(toks []token) ([]token, error) {
	if err := check(toks); err != nil {
		return nil, err
	}
	out := make([]token, 0, len(toks))
	var ops []token
	top := func() tokenKind {
		return ops[len(ops)-1].kind
	}
	pop := func() {
		out = append(out, ops[len(ops)-1])
		ops = ops[:len(ops)-1]
	}
	for i, tok := range toks {
		k := tok.kind
		switch {
		case k == tokenNumber, k == tokenVariable, k.isConstant(), k.isGenerator():
			out = append(out, tok)
		case k.isUnaryOp():
			// Postfix operators apply to whatever is already in the output.
			out = append(out, tok)
		case k.isFunction(), k.isOpen():
			ops = append(ops, tok)
		case k.isBinaryOp():
			for len(ops) > 0 && !top().isOpen() && top().precedence() >= k.precedence() {
				pop()
			}
			ops = append(ops, tok)
		case k == tokenComma:
			for len(ops) > 0 && !top().isOpen() {
				pop()
			}
			if len(ops) == 0 {
				return nil, misplacedSeparator(i)
			}
		case k == tokenRightPars, k == tokenRightArrPars:
			open := tokenLeftPars
			if k == tokenRightArrPars {
				open = tokenLeftArrPars
			}
			for len(ops) > 0 && !top().isOpen() {
				pop()
			}
			if len(ops) == 0 || top() != open {
				return nil, mismatchedParens(i)
			}
			ops = ops[:len(ops)-1]
			if len(ops) > 0 && top().isFunction() {
				pop()
			}
		default:
			panic("korowa: unexpected token " + tok.String())
		}
	}
	for len(ops) > 0 {
		if top().isOpen() {
			return nil, mismatchedParens(len(toks))
		}
		pop()
	}
	return out, nil
}

// check rejects token sequences containing unknown symbols or malformed
// numbers before parsing starts.
func check(toks []token) error {
	for i, tok := range toks {
		switch tok.kind {
		case tokenUnknown:
			return unknownSymbol(tok.text, i)
		case tokenNumber:
			if _, err := parseNumber(tok.text); err != nil {
				return malformedNumber(tok.text, i)
			}
		}
	}
	return nil
}

// parseNumber parses the text of a number token. Literals too large for a
// float64 become infinities.
func parseNumber(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil && errors.Is(err, strconv.ErrRange) {
		return v, nil
	}
	return v, err
}

// compile tokenizes and parses an expression.
func compile(expr string) ([]token, error) {
	return parse(tokenize(expr))
}

// RPN returns the postfix form of an expression as space-separated tokens,
// e.g. "2 3 4 * +" for "2+3*4".
func RPN(expr string) (string, error) {
	q, err := compile(expr)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for i, tok := range q {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(tok.text)
	}
	return b.String(), nil
}
