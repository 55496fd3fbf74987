package scicalc

import (
	"errors"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Token is a lexical unit of an expression.
type Token struct {
	// Kind is the token's kind. It decides which other fields are meaningful.
	Kind TokenKind
	// Text is the source text of the token. For operators and punctuation, it
	// is the single character of the token.
	Text string
	// Num is the value of a TokenNum.
	Num float64
	// Pos is the 1-based column in runes at which the token starts.
	Pos int
}

func (t Token) String() string {
	return t.Kind.String() + ":" + t.Text + "@" + strconv.Itoa(t.Pos)
}

// TokenKind is the kind of a Token.
type TokenKind int

const (
	tokenNone TokenKind = iota
	// tokenEOF indicates the end of the input. It never appears in the result
	// of Tokenize.
	tokenEOF
	// TokenNum is a number literal.
	TokenNum
	// TokenIdent is a function or constant name.
	TokenIdent
	// TokenOp is a binary operator.
	TokenOp
	// TokenOpen is an open parenthesis.
	TokenOpen
	// TokenClose is a close parenthesis.
	TokenClose
	// TokenSep is a function argument separator, i.e. a comma.
	TokenSep
)

func (k TokenKind) String() string {
	switch k {
	case tokenNone:
		return "None"
	case tokenEOF:
		return "EOF"
	case TokenNum:
		return "Num"
	case TokenIdent:
		return "Ident"
	case TokenOp:
		return "Op"
	case TokenOpen:
		return "Open"
	case TokenClose:
		return "Close"
	case TokenSep:
		return "Sep"
	default:
		return "TokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Operators contains the runes which are considered to be operators.
const Operators = "^+-*/"

type lexer struct {
	src string
	// off is the byte offset of the next rune to scan.
	off int
	// col is the 1-based rune column of src[off].
	col int
}

func lex(src string) *lexer {
	return &lexer{src: src, col: 1}
}

// peek returns the byte k bytes past the current offset, or 0 if that is past
// the end of the input.
func (l *lexer) peek(k int) byte {
	if l.off+k >= len(l.src) {
		return 0
	}
	return l.src[l.off+k]
}

// advance moves past one rune of sz bytes.
func (l *lexer) advance(sz int) {
	l.off += sz
	l.col++
}

// next scans the next token from the input. After the last token, the result
// is an EOF token, and every later call returns the same.
func (l *lexer) next() (Token, error) {
	for l.off < len(l.src) {
		r, sz := utf8.DecodeRuneInString(l.src[l.off:])
		tok := Token{Pos: l.col}
		switch {
		case unicode.IsSpace(r):
			l.advance(sz)
			continue
		case isDigit(r):
			tok.Text = l.scanNum()
			v, err := strconv.ParseFloat(tok.Text, 64)
			// Literals too large for float64 are infinite. Nothing else can
			// fail after scanNum.
			if err != nil && !errors.Is(err, strconv.ErrRange) {
				panic("scicalc: invalid number " + strconv.Quote(tok.Text) + ": " + err.Error())
			}
			tok.Kind = TokenNum
			tok.Num = v
			return tok, nil
		case r == '_', isLetter(r):
			tok.Text = l.scanIdent()
			tok.Kind = TokenIdent
			return tok, nil
		case r == '(':
			tok.Kind = TokenOpen
		case r == ')':
			tok.Kind = TokenClose
		case r == ',':
			tok.Kind = TokenSep
		case strings.ContainsRune(Operators, r):
			tok.Kind = TokenOp
		default:
			return tok, l.error()
		}
		tok.Text = l.src[l.off : l.off+sz]
		l.advance(sz)
		return tok, nil
	}
	return Token{Kind: tokenEOF, Pos: l.col}, nil
}

// scanNum scans a decimal number with an optional fractional part. A dot not
// followed by a digit is not part of the number.
func (l *lexer) scanNum() string {
	start := l.off
	l.digits()
	if l.peek(0) == '.' && isDigit(rune(l.peek(1))) {
		l.advance(1)
		l.digits()
	}
	return l.src[start:l.off]
}

func (l *lexer) digits() {
	for isDigit(rune(l.peek(0))) {
		l.advance(1)
	}
}

func (l *lexer) scanIdent() string {
	start := l.off
	// next checked the first rune before calling scanIdent.
	l.advance(1)
	for {
		r := rune(l.peek(0))
		if r != '_' && !isLetter(r) && !isDigit(r) {
			return l.src[start:l.off]
		}
		l.advance(1)
	}
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func isLetter(r rune) bool {
	return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z'
}

func (l *lexer) error() error {
	return &LexError{
		Text: l.src[l.off:],
		Col:  l.col,
	}
}

// Tokenize splits an expression into tokens. If the expression contains
// anything that is not a number, name, operator, parenthesis, comma, or
// whitespace, the error is a *LexError.
func Tokenize(src string) ([]Token, error) {
	scan := lex(src)
	var toks []Token
	for {
		tok, err := scan.next()
		if err != nil {
			return nil, err
		}
		if tok.Kind == tokenEOF {
			return toks, nil
		}
		toks = append(toks, tok)
	}
}

// LexError indicates an invalid token. It implements InputError.
type LexError struct {
	// Text is the remainder of the input starting at the invalid rune.
	Text string
	// Col is the column of the invalid rune.
	Col int
}

func (err *LexError) Error() string {
	return "invalid token at column " + strconv.Itoa(err.Col) + " near " + strconv.Quote(err.Text)
}

func (err *LexError) Pos() int {
	return err.Col
}

// Is makes a LexError match ErrLex.
func (err *LexError) Is(target error) bool {
	return target == ErrLex
}
