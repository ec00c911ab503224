package korowa

import (
	"math"
	"math/big"
	"math/rand"
	"sync"
	"time"

	"github.com/zephyrtronium/bigfloat"
)

var unaryFuncs = map[tokenKind]func(float64) float64{
	tokenFact:      factorial,
	tokenFactorial: factorial,
	tokenSqrt:      math.Sqrt,
	tokenCbrt:      math.Cbrt,
	tokenAbs:       math.Abs,
	tokenLn:        math.Log,
	tokenLg:        math.Log10,
	tokenExp:       math.Exp,
	tokenCeil:      math.Ceil,
	tokenFloor:     math.Floor,
	tokenRound:     math.Round,
	tokenTrunc:     math.Trunc,
	tokenSinc:      sinc,

	tokenSin:   math.Sin,
	tokenCos:   math.Cos,
	tokenTan:   math.Tan,
	tokenCtan:  cofunc(math.Tan),
	tokenSinh:  math.Sinh,
	tokenCosh:  math.Cosh,
	tokenTanh:  math.Tanh,
	tokenCtanh: cofunc(math.Tanh),

	tokenAsin:   math.Asin,
	tokenAcos:   math.Acos,
	tokenAtan:   math.Atan,
	tokenActan:  cofunc(math.Atan),
	tokenAsinh:  math.Asinh,
	tokenAcosh:  math.Acosh,
	tokenAtanh:  math.Atanh,
	tokenActanh: cofunc(math.Atanh),
}

var binaryFuncs = map[tokenKind]func(a, b float64) float64{
	tokenAdd: func(a, b float64) float64 { return a + b },
	tokenSub: func(a, b float64) float64 { return a - b },
	tokenMul: func(a, b float64) float64 { return a * b },
	tokenDiv: func(a, b float64) float64 { return a / b },
	tokenMod: math.Mod,
	tokenPow: math.Pow,

	tokenMin: math.Min,
	tokenMax: math.Max,
	tokenGcd: gcd,
	tokenLcm: lcm,
	// log(a, b) is the logarithm of b to base a.
	tokenLog: func(a, b float64) float64 { return math.Log(b) / math.Log(a) },
}

// unary applies a unary operator or function. Kinds without an
// implementation give NaN.
func unary(k tokenKind, a float64) float64 {
	f := unaryFuncs[k]
	if f == nil {
		return math.NaN()
	}
	return f(a)
}

// binary applies a binary operator or function to a and b, where b was the
// top of the stack.
func binary(k tokenKind, a, b float64) float64 {
	f := binaryFuncs[k]
	if f == nil {
		return math.NaN()
	}
	return f(a, b)
}

// factorial extends n! to reals as Γ(n+1). It is NaN at the poles, i.e. for
// negative integers.
func factorial(a float64) float64 {
	if a < 0 && a == math.Trunc(a) {
		return math.NaN()
	}
	return math.Gamma(a + 1)
}

// sinc is the unnormalized sinc function, sin(x)/x with sinc(0) = 1.
func sinc(a float64) float64 {
	if a == 0 {
		return 1
	}
	return math.Sin(a) / a
}

// cofunc returns x -> f(π/2 - x).
func cofunc(f func(float64) float64) func(float64) float64 {
	return func(a float64) float64 {
		return f(math.Pi/2 - a)
	}
}

// toInt truncates a to an integer. ok is false if a has no int64 value.
func toInt(a float64) (n int64, ok bool) {
	if math.IsNaN(a) || math.Abs(a) >= 1<<63 {
		return 0, false
	}
	return int64(a), true
}

func gcd(a, b float64) float64 {
	x, ok := toInt(a)
	y, ok2 := toInt(b)
	if !ok || !ok2 {
		return math.NaN()
	}
	return float64(igcd(x, y))
}

func lcm(a, b float64) float64 {
	x, ok := toInt(a)
	y, ok2 := toInt(b)
	if !ok || !ok2 {
		return math.NaN()
	}
	if x == 0 || y == 0 {
		return 0
	}
	g := igcd(x, y)
	return math.Abs(float64(x/g) * float64(y))
}

func igcd(x, y int64) int64 {
	for y != 0 {
		x, y = y, x%y
	}
	if x < 0 {
		return -x
	}
	return x
}

// constPrec is the precision in bits at which constants are computed before
// rounding to float64.
const constPrec = 128

// constants holds the values of the constant kinds. Each is the float64
// nearest its true value, the same as the math package's constants.
var constants = func() map[tokenKind]float64 {
	newf := func() *big.Float { return new(big.Float).SetPrec(constPrec) }
	one := newf().SetInt64(1)
	two := newf().SetInt64(2)

	pi := bigfloat.Pi(newf())
	e := bigfloat.Exp(newf(), one)
	tau := newf().Mul(pi, two)
	phi := newf().Sqrt(newf().SetInt64(5))
	phi.Add(phi, one).Quo(phi, two)

	m := make(map[tokenKind]float64, 4)
	for k, v := range map[tokenKind]*big.Float{tokenPi: pi, tokenE: e, tokenTau: tau, tokenPhi: phi} {
		m[k], _ = v.Float64()
	}
	return m
}()

func constant(k tokenKind) float64 {
	v, ok := constants[k]
	if !ok {
		return math.NaN()
	}
	return v
}

// now is the clock used by the time generator.
var now = time.Now

var (
	rngMu sync.Mutex
	rng   = rand.New(rand.NewSource(time.Now().UnixNano()))
)

func random() float64 {
	rngMu.Lock()
	defer rngMu.Unlock()
	return rng.Float64()
}

var generators = map[tokenKind]func() float64{
	tokenRnd: random,
	// time is seconds since the Unix epoch.
	tokenTime: func() float64 { return float64(now().Unix()) },
}

// generate produces a fresh value for a generator kind. Generators without
// an implementation give NaN.
func generate(k tokenKind) float64 {
	g := generators[k]
	if g == nil {
		return math.NaN()
	}
	return g()
}
