package token

import (
	"strconv"
)

// Token is the set of lexical tokens carried by AST nodes. The engine only
// materializes the operators and keywords that decorated declarations and
// their lowered forms can contain.
type Token int

const (
	Undetermined Token = iota

	Illegal

	Plus  // +
	Minus // -

	LogicalAnd // &&
	LogicalOr  // ||

	Equal       // ==
	StrictEqual // ===
	Assign      // =
	Not         // !

	Typeof
	Var
	Let
	Const
	In
	Of
)

var token2string = [...]string{
	Undetermined: "UNDETERMINED",
	Illegal:      "ILLEGAL",

	Plus:  "+",
	Minus: "-",

	LogicalAnd: "&&",
	LogicalOr:  "||",

	Equal:       "==",
	StrictEqual: "===",
	Assign:      "=",
	Not:         "!",

	Typeof: "typeof",
	Var:    "var",
	Let:    "let",
	Const:  "const",
	In:     "in",
	Of:     "of",
}

// String returns the string corresponding to the token.
func (t Token) String() string {
	if t >= 0 && t < Token(len(token2string)) {
		return token2string[t]
	}
	return "token(" + strconv.Itoa(int(t)) + ")"
}

// Precedence returns the binding power of a binary operator token.
func (t Token) Precedence() int {
	switch t {
	case LogicalOr:
		return 1
	case LogicalAnd:
		return 2
	case Equal, StrictEqual:
		return 6
	case In:
		return 7
	case Plus, Minus:
		return 9
	}
	return 0
}
