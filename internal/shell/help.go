package shell

import (
	"fmt"
	"strings"

	"github.com/korowa-calc/korowa"
)

const welcomeBanner = `
    ┌──────────────────────────┐
    │   Welcome to korowa      │
    └──────────────────────────┘
`

const exitBanner = `
    ┌──────────────────────────┐
    │   Thanks for using       │
    │   korowa. Have a nice    │
    │   day!                   │
    └──────────────────────────┘
`

// clearScreen moves the cursor home and erases the display.
const clearScreen = "\x1b[H\x1b[2J"

// commands are the words the shell handles itself.
var commands = []string{
	"exit", "help", "cls", "clear",
	"vars", "variables", "cl vars", "clear variables", "rm",
	"enable log", "disable log",
}

var bases = []string{"bin", "oct", "dec", "hex"}

func (s *Shell) help() {
	var b strings.Builder
	h := func(title string) {
		fmt.Fprintf(&b, "\n    %s\n", s.color.Yellow(title))
	}
	h("Operators:")
	b.WriteString("        +, -, /, *, % (modulus), ^ or ** (power), ! (factorial)\n")
	b.WriteString("        2x, 2(x+1), 2 pi multiply implicitly\n")
	h("Functions:")
	b.WriteString(`        unary:  sqrt, cbrt, ln, lg, exp,
                sin,   cos,   tan,   ctan,
                asin,  acos,  atan,  actan,
                sinh,  cosh,  tanh,  ctanh,
                asinh, acosh, atanh, actanh,
                sinc, fact, abs, ceil, floor, round, trunc
        binary: log(base, number), min, max, gcd, lcm
`)
	h("Constants:")
	for _, c := range []string{"pi", "tau", "e", "phi"} {
		fmt.Fprintf(&b, "        %-4s %.16f\n", c+":", korowa.EvalSilent(c))
	}
	h("Generators:")
	b.WriteString("        rnd:  random number in [0, 1)\n")
	b.WriteString("        time: seconds since the Unix epoch\n")
	h("Example:")
	b.WriteString("        sin(max(10 ** 2 - 4, 56) * -1) * (9! * 0.001) % 255\n")
	if s.opts.EnableConverters {
		h("Converters:")
		b.WriteString("        [bin|oct|dec|hex][: ][bin|oct|dec|hex] number\n")
		b.WriteString("        dec:bin 342       = 101010110\n")
		b.WriteString("        hex:dec 156       = 342\n")
		b.WriteString("        bin:oct 101010110 = 526\n")
	}
	if s.opts.EnableVariables {
		h("Variables:")
		b.WriteString("        x = 9! * 0.001     assign\n")
		b.WriteString("        x = x * 42         reassign\n")
		b.WriteString("        vars               list variables\n")
		b.WriteString("        cl vars            clear variables\n")
		b.WriteString("        rm name            remove a variable\n")
	}
	h("Commands:")
	b.WriteString("        cls or clear, help, exit, enable log, disable log\n\n")
	fmt.Fprint(s.out, b.String())
}
