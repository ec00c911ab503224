package korowa_test

import (
	"errors"
	"math"
	"math/rand"
	"strconv"
	"strings"
	"testing"

	"github.com/korowa-calc/korowa"
)

// near reports whether a and b agree to about 12 significant digits.
func near(a, b float64) bool {
	if a == b {
		return true
	}
	return math.Abs(a-b) <= 1e-12*math.Max(math.Abs(a), math.Abs(b))
}

func TestEval(t *testing.T) {
	cases := []struct {
		name string
		src  string
		r    float64
	}{
		{"num", "42", 42},
		{"groups", "1'000 + 1", 1001},
		{"frac", ".5 * 4", 2},
		{"add", "2+2", 4},
		{"prec", "2+3*4", 14},
		{"pow", "2*3^2", 18},
		{"pow-left", "2^3^2", 64},
		{"starstar", "2**3", 8},
		{"sub-left", "10-4-3", 3},
		{"div-left", "100/10/5", 2},
		{"alt-ops", "6÷3×2", 4},
		{"mod", "10 % 4", 2},
		{"mod-neg", "-7 % 3", -1},
		{"neg", "-5", -5},
		{"neg-neg", "3 - -5", 8},
		{"neg-pow", "-2^2", -4},
		{"pow-neg", "2^-3", 1.5},
		{"func-neg", "sin -2", math.Sin(-1) * 2},
		{"plus", "+5", 5},
		{"parens", "(2+3)*4", 20},
		{"brackets", "[1+2]*{3}", 9},
		{"implied", "2(3+4)", 14},
		{"implied-spaces", "2 + 3 4", 14},
		{"implied-parens", "(1+1)(2+2)", 8},
		{"fact", "5!", 120},
		{"fact-zero", "0!", 1},
		{"fact-func", "fact(3)", 6},
		{"fact-half", "(0.5)!", math.Sqrt(math.Pi) / 2},
		{"sqrt", "sqrt(16)", 4},
		{"sqrt-bare", "sqrt 16", 4},
		{"cbrt", "cbrt 27", 3},
		{"abs", "abs(-3)", 3},
		{"ln", "ln(e)", 1},
		{"lg", "lg 1000", 3},
		{"exp", "exp(0)", 1},
		{"ceil", "ceil 1.2", 2},
		{"floor", "floor(-1.2)", -2},
		{"round", "round 2.5", 3},
		{"trunc", "trunc(-2.7)", -2},
		{"sinc-zero", "sinc 0", 1},
		{"sin", "sin(pi/2)", 1},
		{"cos", "cos 0", 1},
		{"ctan", "ctan(pi/4)", 1},
		{"asin", "asin 1", math.Pi / 2},
		{"tanh", "tanh 0", 0},
		{"min", "min(3, 1)", 1},
		{"max", "max(3, 1)", 3},
		{"gcd", "gcd(12, 18)", 6},
		{"gcd-trunc", "gcd(12.7, 18.2)", 6},
		{"lcm", "lcm(4, 6)", 12},
		{"log", "log(2, 8)", 3},
		{"nested", "min(1, max(2, 3))", 1},
		{"pi", "pi", math.Pi},
		{"e", "e", math.E},
		{"tau", "tau", 2 * math.Pi},
		{"phi", "phi", math.Phi},
		{"const-implied", "2pi", 2 * math.Pi},
		{"const-spaced", "2 pi", 2 * math.Pi},
		{"div-zero", "1/0", math.Inf(1)},
		{"big", "1" + strings.Repeat("0", 400), math.Inf(1)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := korowa.Eval(c.src, nil)
			if err != nil {
				t.Fatalf("%q failed to evaluate: %v", c.src, err)
			}
			if !near(r, c.r) {
				t.Errorf("wrong result from %q: want %g, got %g", c.src, c.r, r)
			}
			s, err := korowa.EvalStateless(c.src)
			if err != nil {
				t.Fatalf("%q failed to evaluate statelessly: %v", c.src, err)
			}
			if !near(s, r) && !math.IsNaN(r) {
				t.Errorf("different results: Eval returned %g, EvalStateless returned %g", r, s)
			}
			if q := korowa.EvalSilent(c.src); !near(q, r) {
				t.Errorf("different results: Eval returned %g, EvalSilent returned %g", r, q)
			}
		})
	}
}

func TestEvalNaN(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"sqrt-neg", "sqrt(-1)"},
		{"fact-neg", "(-1)!"},
		{"fact-neg-func", "fact(-3)"},
		{"ln-neg", "ln(-1)"},
		{"zero-div-zero", "0/0"},
		{"gcd-inf", "gcd(1/0, 2)"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := korowa.EvalStateless(c.src)
			if err != nil {
				t.Errorf("%q gave an error: %v", c.src, err)
			}
			if !math.IsNaN(r) {
				t.Errorf("%q gave %g, want NaN", c.src, r)
			}
		})
	}
}

func TestEvalErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		kind korowa.ErrorKind
		msg  string
	}{
		{"empty", "", korowa.Evaluation, "Empty expression"},
		{"blank", "   ", korowa.Evaluation, "Empty expression"},
		{"sign", "+", korowa.Evaluation, "Empty expression"},
		{"operator", "*", korowa.Evaluation, "Evaluation error"},
		{"operand", "2+", korowa.Evaluation, "Evaluation error"},
		{"call-short", "max(1)", korowa.Evaluation, "Evaluation error"},
		{"call-long", "min(1, 2, 3)", korowa.Evaluation, "Redundant values: 1, 2"},
		{"assign-nothing", "= 5", korowa.Evaluation, `Inappropriate use of = operator: trying to assign to ""`},
		{"assign-number", "2 = 5", korowa.Evaluation, "Redundant values"},
		{"parens", "(2+3", korowa.Parsing, "Mismatched parenthesis (:4)"},
		{"symbol", "2 + $", korowa.UnknownToken, "Unknown symbol: [$] (:2)"},
		{"number", "1.2.3", korowa.Parsing, "Malformed number: [1.2.3] (:0)"},
		{"variable", "2 + qq", korowa.UnknownToken, "Unknown variable: [qq]"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			vars := korowa.Vars{}
			r, err := korowa.Eval(c.src, vars)
			if !math.IsNaN(r) {
				t.Errorf("evaluating %q gave non-NaN result %g", c.src, r)
			}
			if err == nil {
				t.Fatalf("evaluating %q gave no error", c.src)
			}
			if k := korowa.KindOf(err); k != c.kind {
				t.Errorf("wrong kind from %q: want %v, got %v", c.src, c.kind, k)
			}
			if msg := err.Error(); !strings.Contains(msg, c.msg) {
				t.Errorf("error message %q doesn't mention %q", msg, c.msg)
			}
			if len(vars) != 0 {
				t.Errorf("evaluating %q changed variables to %v", c.src, vars)
			}
			if q := korowa.EvalSilent(c.src); !math.IsNaN(q) {
				t.Errorf("EvalSilent(%q) gave %g, want NaN", c.src, q)
			}
		})
	}
}

func TestEvalVars(t *testing.T) {
	vars := korowa.Vars{}
	steps := []struct {
		src string
		r   float64
	}{
		{"x = 10", 10},
		{"x * 2", 20},
		{"2x", 20},
		{"y = 2+3", 5},
		{"x y", 50},
		{"x = x + 1", 11},
		{"long_name1 = -x", -11},
		{"long_name1 + x", 0},
	}
	for _, s := range steps {
		r, err := korowa.Eval(s.src, vars)
		if err != nil {
			t.Fatalf("%q failed to evaluate: %v", s.src, err)
		}
		if r != s.r {
			t.Errorf("wrong result from %q: want %g, got %g", s.src, s.r, r)
		}
	}
	want := korowa.Vars{"x": 11, "y": 5, "long_name1": -11}
	if len(vars) != len(want) {
		t.Errorf("wrong variables: want %v, got %v", want, vars)
	}
	for k, v := range want {
		if vars[k] != v {
			t.Errorf("%s should be %g but is %g", k, v, vars[k])
		}
	}
}

func TestEvalUnknownVariable(t *testing.T) {
	vars := korowa.Vars{"x": 1}
	_, err := korowa.Eval("x + y", vars)
	var e *korowa.SyntaxError
	if !errors.As(err, &e) {
		t.Fatalf("want *SyntaxError, got %T", err)
	}
	if e.Kind != korowa.UnknownToken {
		t.Errorf("wrong kind: want %v, got %v", korowa.UnknownToken, e.Kind)
	}
	if len(e.Params) != 1 || e.Params[0] != "y" {
		t.Errorf("wrong params: want [y], got %q", e.Params)
	}
	if e.Pos() != -1 {
		t.Errorf("unknown variable has position %d", e.Pos())
	}
	if len(vars) != 1 || vars["x"] != 1 {
		t.Errorf("variables changed to %v", vars)
	}
}

func TestEvalStatelessVariables(t *testing.T) {
	for _, src := range []string{"x", "x = 1", "2x + 1"} {
		t.Run(src, func(t *testing.T) {
			_, err := korowa.EvalStateless(src)
			if k := korowa.KindOf(err); k != korowa.UnknownToken {
				t.Errorf("wrong kind from %q: want %v, got %v", src, korowa.UnknownToken, k)
			}
			if err != nil && !strings.Contains(err.Error(), "variables may be disabled") {
				t.Errorf("%q doesn't mention disabled variables", err.Error())
			}
		})
	}
}

func TestEvalNilVars(t *testing.T) {
	r, err := korowa.Eval("x = 3", nil)
	if err != nil || r != 3 {
		t.Errorf("assignment with nil vars gave %g, %v", r, err)
	}
	if _, err := korowa.Eval("x", nil); korowa.KindOf(err) != korowa.UnknownToken {
		t.Errorf("nil vars kept an assignment: %v", err)
	}
}

func TestEvalIdempotent(t *testing.T) {
	const src = "2^10 + sin(1) - max(3, lg 100)!"
	a, err := korowa.EvalStateless(src)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 5; i++ {
		if b := korowa.EvalSilent(src); b != a {
			t.Fatalf("iter %d gave %g, first gave %g", i, b, a)
		}
	}
}

func TestEvalGenerators(t *testing.T) {
	for i := 0; i < 100; i++ {
		r := korowa.EvalSilent("rnd")
		if r < 0 || r >= 1 {
			t.Fatalf("rnd gave %g", r)
		}
	}
	if r := korowa.EvalSilent("time"); r < 1e9 {
		t.Errorf("time gave %g", r)
	}
}

func TestEvalRndIndependent(t *testing.T) {
	for i := 0; i < 100; i++ {
		if korowa.EvalSilent("rnd - rnd") != 0 {
			return
		}
	}
	t.Error("rnd - rnd was 0 in 100 draws")
}

func TestEvalLiterals(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	vals := []float64{0, 1, 0.1, 1e22, math.MaxFloat64, math.SmallestNonzeroFloat64}
	for i := 0; i < 500; i++ {
		v := r.Float64() * math.Pow(10, float64(r.Intn(61)-30))
		if r.Intn(2) == 0 {
			v = -v
		}
		vals = append(vals, v)
	}
	for _, v := range vals {
		src := strconv.FormatFloat(v, 'f', -1, 64)
		if got := korowa.EvalSilent(src); got != v {
			t.Errorf("%s evaluated to %v", src, got)
		}
	}
}

func TestKindOf(t *testing.T) {
	if k := korowa.KindOf(nil); k != korowa.Undefined {
		t.Errorf("nil error has kind %v", k)
	}
	if k := korowa.KindOf(errors.New("x")); k != korowa.Undefined {
		t.Errorf("plain error has kind %v", k)
	}
	_, err := korowa.EvalStateless("(")
	if k := korowa.KindOf(err); k != korowa.Parsing {
		t.Errorf("mismatched bracket has kind %v", k)
	}
	var ie korowa.InputError
	if !errors.As(err, &ie) || ie.Pos() != 1 {
		t.Errorf("mismatched bracket is not an InputError at 1: %#v", err)
	}
}

func BenchmarkEval(b *testing.B) {
	vars := korowa.Vars{"x": 2, "y": 3, "z": 4}
	b.Run("nums", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			korowa.EvalStateless("2+3+4")
		}
	})
	b.Run("vars", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			korowa.Eval("x+y+z", vars)
		}
	})
	b.Run("calls", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			korowa.EvalStateless("max(sin 1, min(cos 2, lg 100))!")
		}
	})
}
