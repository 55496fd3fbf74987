package scicalc

import (
	"errors"
	"strconv"
)

// Error categories. Every error returned for invalid input matches exactly one
// of these with errors.Is.
var (
	// ErrLex is the category of invalid characters in the input.
	ErrLex = errors.New("lexical error")
	// ErrSyntax is the category of misplaced separators and unbalanced
	// parentheses.
	ErrSyntax = errors.New("syntax error")
	// ErrArity is the category of operators and functions without enough
	// operands, and of expressions that do not reduce to a single value.
	ErrArity = errors.New("malformed expression")
	// ErrUnknownFunction is the category of names which are neither functions
	// nor constants.
	ErrUnknownFunction = errors.New("unknown function")
	// ErrDomain is the category of arguments outside the domain of an
	// operation, e.g. division by zero.
	ErrDomain = errors.New("domain error")
)

// BracketError is an error indicating mismatched parentheses in the input. It
// implements InputError.
type BracketError struct {
	// Col is the position of the unmatched parenthesis.
	Col int
	// Left is the open parenthesis with no match, if any.
	Left string
	// Right is the close parenthesis with no match, if any.
	Right string
}

func (err *BracketError) Error() string {
	if err.Left == "" {
		return errpos(err.Col, "close bracket "+err.Right+" with no open bracket")
	}
	return errpos(err.Col, "open bracket "+err.Left+" with no close bracket")
}

func (err *BracketError) Pos() int {
	return err.Col
}

// Is makes a BracketError match ErrSyntax.
func (err *BracketError) Is(target error) bool {
	return target == ErrSyntax
}

// SeparatorError is an error indicating a comma outside of any parentheses. It
// implements InputError.
type SeparatorError struct {
	// Col is the position of the separator.
	Col int
	// Sep is the separator.
	Sep string
}

func (err *SeparatorError) Error() string {
	return errpos(err.Col, "invalid occurrence of separator "+strconv.Quote(err.Sep))
}

func (err *SeparatorError) Pos() int {
	return err.Col
}

// Is makes a SeparatorError match ErrSyntax.
func (err *SeparatorError) Is(target error) bool {
	return target == ErrSyntax
}

// errpos is a shortcut to create an error message with a position. Positions
// less than 1 are omitted.
func errpos(pos int, msg string) string {
	if pos < 1 {
		return msg
	}
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the column of the token that caused the error, or 0 if the
	// error does not belong to a single token.
	Pos() int
}

var (
	_ InputError = (*LexError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*SeparatorError)(nil)
	_ InputError = (*ArityError)(nil)
	_ InputError = (*UnknownFunctionError)(nil)
	_ InputError = (*DomainError)(nil)
)
