package korowa

import (
	"errors"
	"strconv"
	"strings"
)

// ErrorKind classifies a SyntaxError.
type ErrorKind uint8

const (
	// Undefined is the kind of an error without a classification. KindOf
	// also reports it for nil errors.
	Undefined ErrorKind = iota
	// Evaluation errors occur while running a parsed expression: operands
	// missing for an operator, values left over, or a bad assignment.
	Evaluation
	// Converting errors are invalid digits in a base conversion.
	Converting
	// UnknownToken errors name a symbol or variable that has no meaning.
	UnknownToken
	// Parsing errors are structural: mismatched brackets, misplaced commas,
	// malformed numbers, or input that is not a conversion.
	Parsing
)

func (k ErrorKind) String() string {
	switch k {
	case Undefined:
		return "undefined"
	case Evaluation:
		return "evaluation"
	case Converting:
		return "converting"
	case UnknownToken:
		return "unknown token"
	case Parsing:
		return "parsing"
	default:
		return "ErrorKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// SyntaxError is the error type returned by every stage of evaluation and by
// Convert. It implements InputError.
type SyntaxError struct {
	// Kind is the class of the error.
	Kind ErrorKind
	// Message describes the error, including its position if it has one.
	Message string
	// Params holds the offending token text where there is one, e.g. the
	// name of an unbound variable.
	Params []string
	// Index is the 0-based index of the offending token in the token
	// sequence, or -1 if the error has no position.
	Index int
}

func (err *SyntaxError) Error() string {
	return err.Message
}

// Pos returns the index of the offending token, or -1.
func (err *SyntaxError) Pos() int {
	return err.Index
}

// InputError is an error with position information.
type InputError interface {
	error
	// Pos returns the 0-based index of the token that caused the error, or
	// -1 if the error is not tied to a token.
	Pos() int
}

var _ InputError = (*SyntaxError)(nil)

// KindOf returns the kind of err if it is or wraps a *SyntaxError, and
// Undefined otherwise.
func KindOf(err error) ErrorKind {
	var e *SyntaxError
	if errors.As(err, &e) {
		return e.Kind
	}
	return Undefined
}

// errpos appends a token position to an error message.
func errpos(msg string, pos int) string {
	return msg + " (:" + strconv.Itoa(pos) + ")"
}

func unknownSymbol(sym string, pos int) error {
	return &SyntaxError{
		Kind:    UnknownToken,
		Message: errpos("Unknown symbol: ["+sym+"]", pos),
		Params:  []string{sym},
		Index:   pos,
	}
}

func malformedNumber(text string, pos int) error {
	return &SyntaxError{
		Kind:    Parsing,
		Message: errpos("Malformed number: ["+text+"]", pos),
		Params:  []string{text},
		Index:   pos,
	}
}

func mismatchedParens(pos int) error {
	return &SyntaxError{Kind: Parsing, Message: errpos("Mismatched parenthesis", pos), Index: pos}
}

func misplacedSeparator(pos int) error {
	return &SyntaxError{
		Kind:    Parsing,
		Message: errpos("Mismatched parenthesis or function argument separators (,)", pos),
		Index:   pos,
	}
}

func emptyExpression() error {
	return &SyntaxError{Kind: Evaluation, Message: "Empty expression", Index: -1}
}

func stackUnderflow() error {
	return &SyntaxError{Kind: Evaluation, Message: "Evaluation error", Index: -1}
}

func redundantValues(stack []float64) error {
	v := make([]string, len(stack))
	for i, x := range stack {
		v[i] = strconv.FormatFloat(x, 'g', -1, 64)
	}
	return &SyntaxError{
		Kind:    Evaluation,
		Message: "Redundant values: " + strings.Join(v, ", "),
		Index:   -1,
	}
}

func badAssignment() error {
	return &SyntaxError{
		Kind:    Evaluation,
		Message: `Inappropriate use of = operator: trying to assign to ""`,
		Index:   -1,
	}
}

func unknownVariable(name string) error {
	return &SyntaxError{
		Kind:    UnknownToken,
		Message: "Unknown variable: [" + name + "]",
		Params:  []string{name},
		Index:   -1,
	}
}

func variablesDisabled(name string) error {
	return &SyntaxError{
		Kind:    UnknownToken,
		Message: "Unknown variable (variables may be disabled): [" + name + "]",
		Params:  []string{name},
		Index:   -1,
	}
}
