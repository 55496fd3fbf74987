package scicalc

import "strconv"

// EvalPostfix evaluates a postfix sequence and returns the result. degrees
// selects whether sin, cos, and tan take their arguments in degrees or
// radians.
//
// Numbers and constants push their values. Operators pop their right operand,
// then their left, and push the result. Any other token names a function of
// one argument. Exactly one value must remain at the end. An operator symbol
// outside Operators is reported as an *UnknownFunctionError.
func EvalPostfix(p Postfix, degrees bool) (float64, error) {
	stack := make([]float64, 0, len(p))
	for _, tok := range p {
		switch tok.Kind {
		case TokenNum:
			stack = append(stack, tok.Num)
		case TokenOp:
			if len(stack) < 2 {
				return 0, &ArityError{Col: tok.Pos, Op: tok.Text, Want: 2, Have: len(stack)}
			}
			f := binops[tok.Text]
			if f == nil {
				return 0, &UnknownFunctionError{Col: tok.Pos, Name: tok.Text}
			}
			r := stack[len(stack)-1]
			l := stack[len(stack)-2]
			stack = stack[:len(stack)-2]
			v, err := f(l, r)
			if err != nil {
				return 0, at(err, tok.Pos)
			}
			stack = append(stack, v)
		default:
			if tok.Kind == TokenIdent {
				if v, ok := constant(tok.Text); ok {
					stack = append(stack, v)
					continue
				}
			}
			if len(stack) < 1 {
				return 0, &ArityError{Col: tok.Pos, Op: tok.Text, Want: 1}
			}
			f, ok := function(tok.Text)
			if !ok {
				return 0, &UnknownFunctionError{Col: tok.Pos, Name: tok.Text}
			}
			v, err := f(stack[len(stack)-1], degrees)
			if err != nil {
				return 0, at(err, tok.Pos)
			}
			stack[len(stack)-1] = v
		}
	}
	if len(stack) != 1 {
		return 0, &ArityError{Have: len(stack)}
	}
	return stack[0], nil
}

// at sets the position of a domain error.
func at(err error, col int) error {
	if d, ok := err.(*DomainError); ok {
		d.Col = col
	}
	return err
}

// Evaluate converts an expression to postfix order and evaluates it.
func Evaluate(src string, degrees bool) (float64, error) {
	p, err := ToPostfix(src)
	if err != nil {
		return 0, err
	}
	return EvalPostfix(p, degrees)
}

// ArityError is an error indicating an operator or function without enough
// operands, or an expression which leaves other than one value. It implements
// InputError.
type ArityError struct {
	// Col is the position of the operator or function, or 0 if the error is
	// about the expression as a whole.
	Col int
	// Op is the operator or function name, or the empty string if the error
	// is about the expression as a whole.
	Op string
	// Want is the number of operands Op requires.
	Want int
	// Have is the number of values that were available. If Op is empty, it is
	// the number of values the expression left.
	Have int
}

func (err *ArityError) Error() string {
	switch {
	case err.Op != "":
		return errpos(err.Col, strconv.Quote(err.Op)+" needs "+strconv.Itoa(err.Want)+" operands but has "+strconv.Itoa(err.Have))
	case err.Have == 0:
		return errpos(err.Col, "no expression")
	default:
		return errpos(err.Col, "expression leaves "+strconv.Itoa(err.Have)+" values")
	}
}

func (err *ArityError) Pos() int {
	return err.Col
}

// Is makes an ArityError match ErrArity.
func (err *ArityError) Is(target error) bool {
	return target == ErrArity
}

// UnknownFunctionError is an error indicating a call to a name which is not a
// function. It implements InputError.
type UnknownFunctionError struct {
	// Col is the position of the name.
	Col int
	// Name is the name as written in the expression.
	Name string
}

func (err *UnknownFunctionError) Error() string {
	return errpos(err.Col, "unknown function "+strconv.Quote(err.Name))
}

func (err *UnknownFunctionError) Pos() int {
	return err.Col
}

// Is makes an UnknownFunctionError match ErrUnknownFunction.
func (err *UnknownFunctionError) Is(target error) bool {
	return target == ErrUnknownFunction
}
