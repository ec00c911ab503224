// Package korowa implements a double-precision calculator for interactive use.
//
// An expression goes through three stages. The lexer turns text into tokens,
// inserting the multiplications that juxtaposition implies: "2x", "2(x+1)",
// "(a)(b)" and "2 pi" are all products. The parser reorders the tokens into
// postfix form with the shunting-yard algorithm. The evaluator runs the
// postfix queue on a value stack against a table of variables.
//
// A statement of the form "name = expr" assigns to the table and yields the
// assigned value. All operators, including ^, group to the left, so 2^3^2 is
// 64. Errors are reported as *SyntaxError values carrying the kind of
// failure, a message, and the offending token where there is one.
package korowa
