package korowa

import (
	"math"
)

// Vars is a table of variables. Evaluation reads it, and writes exactly one
// entry when the expression is an assignment.
type Vars map[string]float64

// evaluator runs postfix queues on a value stack. vars is nil when variables
// are disabled. An evaluator is not safe to use concurrently.
type evaluator struct {
	stack []float64
	vars  Vars
}

func (ev *evaluator) push(v float64) {
	ev.stack = append(ev.stack, v)
}

// pop removes the top of the stack. It fails if the stack is empty, meaning
// an operator is missing operands.
func (ev *evaluator) pop() (float64, error) {
	if len(ev.stack) == 0 {
		return math.NaN(), stackUnderflow()
	}
	v := ev.stack[len(ev.stack)-1]
	ev.stack = ev.stack[:len(ev.stack)-1]
	return v, nil
}

// run evaluates a postfix queue.
//
// If variables are enabled and the queue has the form "name ... =", the
// leading name is the target of an assignment rather than an operand.
func (ev *evaluator) run(q []token) (float64, error) {
	if len(q) == 0 {
		return math.NaN(), emptyExpression()
	}
	var target string
	if ev.vars != nil && q[0].kind == tokenVariable && q[len(q)-1].kind == tokenEquals {
		target = q[0].text
		q = q[1:]
	}
	for _, tok := range q {
		k := tok.kind
		switch {
		case k == tokenEquals:
			if len(ev.stack) > 1 {
				return math.NaN(), redundantValues(ev.stack)
			}
			if target == "" {
				return math.NaN(), badAssignment()
			}
			v, err := ev.pop()
			if err != nil {
				return v, err
			}
			ev.vars[target] = v
			return v, nil
		case k.isBinaryOp(), k.isBinaryFn():
			b, err := ev.pop()
			if err != nil {
				return b, err
			}
			a, err := ev.pop()
			if err != nil {
				return a, err
			}
			ev.push(binary(k, a, b))
		case k.isUnaryOp(), k.isUnaryFn():
			a, err := ev.pop()
			if err != nil {
				return a, err
			}
			ev.push(unary(k, a))
		case k.isConstant():
			ev.push(constant(k))
		case k.isGenerator():
			ev.push(generate(k))
		case k == tokenNumber:
			v, err := parseNumber(tok.text)
			if err != nil {
				return math.NaN(), malformedNumber(tok.text, -1)
			}
			ev.push(v)
		case k == tokenVariable:
			if ev.vars == nil {
				return math.NaN(), variablesDisabled(tok.text)
			}
			v, ok := ev.vars[tok.text]
			if !ok {
				return math.NaN(), unknownVariable(tok.text)
			}
			ev.push(v)
		default:
			panic("korowa: invalid postfix token " + tok.String())
		}
	}
	if len(ev.stack) > 1 {
		return math.NaN(), redundantValues(ev.stack)
	}
	return ev.pop()
}

// Eval evaluates an expression with variables. Names in the expression are
// looked up in vars, and "name = expr" stores the value of expr in vars and
// returns it. A nil vars behaves as an empty table, and assignments to it are
// discarded.
//
// On failure the result is NaN and the error is a *SyntaxError.
func Eval(expr string, vars Vars) (float64, error) {
	if vars == nil {
		vars = Vars{}
	}
	q, err := compile(expr)
	if err != nil {
		return math.NaN(), err
	}
	ev := evaluator{vars: vars}
	return ev.run(q)
}

// EvalStateless evaluates an expression with variables disabled. Any
// variable name is an UnknownToken error, and assignment is an Evaluation
// error.
func EvalStateless(expr string) (float64, error) {
	q, err := compile(expr)
	if err != nil {
		return math.NaN(), err
	}
	var ev evaluator
	return ev.run(q)
}

// EvalSilent evaluates an expression with variables disabled and returns NaN
// on any failure.
func EvalSilent(expr string) float64 {
	v, err := EvalStateless(expr)
	if err != nil {
		return math.NaN()
	}
	return v
}
