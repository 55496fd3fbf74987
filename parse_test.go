package scicalc

import (
	"errors"
	"strings"
	"testing"
)

func TestOpPrecsExist(t *testing.T) {
	for _, r := range Operators {
		// binop panics if the operator doesn't exist.
		binop(string(r))
		if binops[string(r)] == nil {
			t.Errorf("no primitive for %c", r)
		}
	}
}

func TestOpPrecOrder(t *testing.T) {
	add, sub, mul, div, pow := binop("+"), binop("-"), binop("*"), binop("/"), binop("^")
	if add != sub || mul != div {
		t.Errorf("operators of a group differ: +%v -%v *%v /%v", add, sub, mul, div)
	}
	if !(add.prec < mul.prec && mul.prec < pow.prec) {
		t.Errorf("wrong precedence order: + %d, * %d, ^ %d", add.prec, mul.prec, pow.prec)
	}
	for _, op := range []string{"+", "-", "*", "/"} {
		if binop(op).right {
			t.Errorf("%s is right-associative", op)
		}
	}
	if !pow.right {
		t.Error("^ is left-associative")
	}
}

func TestFuncsDisjointFromConstants(t *testing.T) {
	for name := range constants {
		if _, ok := globalfuncs[name]; ok {
			t.Errorf("%q is both a function and a constant", name)
		}
	}
}

func TestPostfix(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{"num", "1", "1"},
		{"paren", "((1))", "1"},
		{"const", "pi", "pi"},
		{"const-case", "PI * E", "PI E *"},
		{"add", "1+2", "1 2 +"},
		{"sub4", "1-2-3-4", "1 2 - 3 - 4 -"},
		{"div4", "1/2/3/4", "1 2 / 3 / 4 /"},
		{"pow4", "1^2^3^4", "1 2 3 4 ^ ^ ^"},
		{"asc", "1+2*3^4", "1 2 3 4 ^ * +"},
		{"desc", "1^2*3+4", "1 2 ^ 3 * 4 +"},
		{"mixed", "2 + 3 * 4 - 5", "2 3 4 * + 5 -"},
		{"grouped", "(2 + 3) * (4 - 1) / 5 + 2^3", "2 3 + 4 1 - * 5 / 2 3 ^ +"},
		{"classic", "3 + 4 * 2 / ( 1 - 5 ) ^ 2 ^ 3", "3 4 2 * 1 5 - 2 3 ^ ^ / +"},
		{"call", "sin(30)", "30 sin"},
		{"call-expr", "sqrt(1+2)*3", "1 2 + sqrt 3 *"},
		{"call-nested", "ln(exp(2))", "2 exp ln"},
		{"call-args", "f(1, 2+3)", "1 2 3 + f"},
		{"call-bare", "sin 30", "30 sin"},
		{"unknown", "foo(1)", "1 foo"},
		{"neg", "-1", "0 1 -"},
		{"plus", "+1", "0 1 +"},
		{"negpow", "-2^2", "0 2 2 ^ -"},
		{"paren-neg", "2*(-3)", "2 0 3 - *"},
		{"arg-neg", "f(1,-2)", "1 0 2 - f"},
		{"call-neg", "sin(-30)", "0 30 - sin"},
		{"op-neg", "2*-3", "2 * 3 -"},
		{"leading-mul", "*5", "5 *"},
		{"trailing-mul", "5*", "5 *"},
		{"empty", "", ""},
		{"empty-paren", "()", ""},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p, err := ToPostfix(c.src)
			if err != nil {
				t.Fatalf("failed to parse %q: %v", c.src, err)
			}
			if got := p.String(); got != c.want {
				t.Errorf("wrong postfix for %q:\n\twant %q\n\tgot  %q", c.src, c.want, got)
			}
			for _, tok := range p {
				switch tok.Kind {
				case TokenNum, TokenIdent, TokenOp: // do nothing
				default:
					t.Errorf("postfix of %q contains %v", c.src, tok)
				}
			}
		})
	}
}

func TestPostfixImplicitZero(t *testing.T) {
	p, err := ToPostfix("(-7)")
	if err != nil {
		t.Fatal(err)
	}
	want := Postfix{
		{Kind: TokenNum, Text: "0", Pos: 2},
		{Kind: TokenNum, Text: "7", Num: 7, Pos: 3},
		{Kind: TokenOp, Text: "-", Pos: 2},
	}
	if len(p) != len(want) {
		t.Fatalf("want %v, got %v", want, p)
	}
	for i := range want {
		if p[i] != want[i] {
			t.Errorf("token %d: want %v, got %v", i, want[i], p[i])
		}
	}
}

func TestPostfixErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		cat  error
		col  int
	}{
		{"lex", "1 $ 2", ErrLex, 3},
		{"open", "(2 + 3", ErrSyntax, 1},
		{"open-inner", "((2) + 3", ErrSyntax, 1},
		{"close", "2 + 3)", ErrSyntax, 6},
		{"close-first", ")(", ErrSyntax, 1},
		{"call-open", "sin(30", ErrSyntax, 4},
		{"sep", "1, 2", ErrSyntax, 2},
		{"sep-after-group", "(1), 2", ErrSyntax, 4},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p, err := ToPostfix(c.src)
			if err == nil {
				t.Fatalf("%q parsed as %v", c.src, p)
			}
			if p != nil {
				t.Errorf("%q gave partial result %v", c.src, p)
			}
			if !errors.Is(err, c.cat) {
				t.Errorf("%q gave %v, not %v", c.src, err, c.cat)
			}
			var ie InputError
			if !errors.As(err, &ie) {
				t.Fatalf("%#v is not an InputError", err)
			}
			if ie.Pos() != c.col {
				t.Errorf("%q gave error at %d, want %d", c.src, ie.Pos(), c.col)
			}
		})
	}
}

func TestBracketErrorMessages(t *testing.T) {
	_, err := ToPostfix("(1")
	if err == nil || !strings.Contains(err.Error(), "no close bracket") {
		t.Errorf("open bracket error is %v", err)
	}
	_, err = ToPostfix("1)")
	if err == nil || !strings.Contains(err.Error(), "no open bracket") {
		t.Errorf("close bracket error is %v", err)
	}
}

func BenchmarkToPostfix(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		ToPostfix("3 + 4 * 2 / ( 1 - 5 ) ^ 2 ^ 3 + sin(30) * ln(e)")
	}
}
