package scicalc

import "strings"

// Expr = num | const | Call | Add | Sub | Mul | Div | Pow | '(' Expr ')' | Sign
// Call = funcname '(' Expr { ',' Expr } ')' | funcname Expr
// Sign = ('+' | '-') Expr, only at the start of the input or after '(' or ','
// Add = Expr '+' Expr
// Sub = Expr '-' Expr
// Mul = Expr '*' Expr
// Div = Expr '/' Expr
// Pow = Expr '^' Expr

// Postfix is a sequence of tokens in postfix order, ready for EvalPostfix.
type Postfix []Token

// String formats the postfix sequence as space-separated tokens.
func (p Postfix) String() string {
	var b strings.Builder
	for i, tok := range p {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(tok.Text)
	}
	return b.String()
}

// ToPostfix converts an infix expression to postfix order. The result contains
// only TokenNum, TokenIdent, and TokenOp tokens. Names that are not constants
// are placed as functions regardless of whether such a function exists;
// EvalPostfix reports unknown functions.
//
// A + or - at the start of the expression or just after an open parenthesis
// or comma applies to an implicit 0, so "-2^2" is "0 2 2 ^ -".
func ToPostfix(src string) (Postfix, error) {
	toks, err := Tokenize(src)
	if err != nil {
		return nil, err
	}
	return shunt(toks)
}

// shunt reorders tokens into postfix order with the shunting-yard algorithm.
func shunt(toks []Token) (Postfix, error) {
	out := make(Postfix, 0, len(toks))
	// stack holds operators, open parentheses, and function names.
	var stack []Token
	prev := tokenNone
	for _, tok := range toks {
		switch tok.Kind {
		case TokenNum:
			out = append(out, tok)
		case TokenIdent:
			if _, ok := constant(tok.Text); ok {
				out = append(out, tok)
			} else {
				stack = append(stack, tok)
			}
		case TokenSep:
			for len(stack) > 0 && stack[len(stack)-1].Kind != TokenOpen {
				out = append(out, stack[len(stack)-1])
				stack = stack[:len(stack)-1]
			}
			if len(stack) == 0 {
				return nil, &SeparatorError{Col: tok.Pos, Sep: tok.Text}
			}
		case TokenOpen:
			stack = append(stack, tok)
		case TokenClose:
			for len(stack) > 0 && stack[len(stack)-1].Kind != TokenOpen {
				out = append(out, stack[len(stack)-1])
				stack = stack[:len(stack)-1]
			}
			if len(stack) == 0 {
				return nil, &BracketError{Col: tok.Pos, Right: tok.Text}
			}
			stack = stack[:len(stack)-1]
			// Constants never reach the stack, so a name here is the function
			// applied to the group just closed.
			if len(stack) > 0 && stack[len(stack)-1].Kind == TokenIdent {
				out = append(out, stack[len(stack)-1])
				stack = stack[:len(stack)-1]
			}
		case TokenOp:
			if leadsGroup(prev) && (tok.Text == "+" || tok.Text == "-") {
				out = append(out, Token{Kind: TokenNum, Text: "0", Pos: tok.Pos})
			}
			o1 := binop(tok.Text)
			for len(stack) > 0 && stack[len(stack)-1].Kind == TokenOp {
				if !o1.yields(binop(stack[len(stack)-1].Text)) {
					break
				}
				out = append(out, stack[len(stack)-1])
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, tok)
		default:
			panic("scicalc: unknown token: " + tok.String())
		}
		prev = tok.Kind
	}
	for len(stack) > 0 {
		tok := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if tok.Kind == TokenOpen {
			return nil, &BracketError{Col: tok.Pos, Left: tok.Text}
		}
		out = append(out, tok)
	}
	return out, nil
}

// leadsGroup returns whether a token of kind k, or the start of input if k is
// tokenNone, leaves the parser at the beginning of a parenthesized group or
// argument.
func leadsGroup(k TokenKind) bool {
	return k == tokenNone || k == TokenOpen || k == TokenSep
}

type operator struct {
	// prec is the precedence value. Higher is more binding.
	prec int8
	// right indicates right-associativity.
	right bool
}

// yields returns whether an operator already on the stack must be moved to the
// output before p is pushed.
func (p operator) yields(top operator) bool {
	if p.right {
		return p.prec < top.prec
	}
	return p.prec <= top.prec
}

// binop gets the operator for a token string. Panics if there is no such
// operator; the lexer only produces operator tokens from Operators.
func binop(text string) operator {
	switch text {
	case "+", "-":
		return operator{2, false}
	case "*", "/":
		return operator{3, false}
	case "^":
		return operator{4, true}
	default:
		panic("scicalc: unknown operator " + text)
	}
}
