// Copyright 2026 Simon Palmer <spalmer.dev@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package lit parses constant literals.
//
// Two forms are accepted: a plain binary string over {0,1}, whose width is
// its length, and a Verilog-style sized literal
//
//	<width>'<base><digits>
//
// with base one of b, o, h, d (unsigned) or B, O, H, D (signed). Unsigned
// literals are zero-extended to the declared width, signed literals are
// sign-extended from the most significant bit of the literal's natural
// width (1 bit per binary digit, 3 per octal digit, 4 per hex digit, and
// the minimal width of the value for decimal). Digits may be separated
// with underscores.
//
package lit

import (
	"math/big"
	"strings"
	"unicode"

	"github.com/pkg/errors"

	"github.com/spalmer/comb/internal/lex"
)

// Tokens emitted by the literal lexer.
const (
	EOF lex.Type = lex.EOF
	Raw lex.Type = iota
	Int
	Quote
	Base
	Digits
)

// A Literal is a parsed constant: a bit pattern of exactly Width bits,
// MSB first.
type Literal struct {
	Width int
	Bits  string
}

// Parse parses a constant literal in either accepted form.
//
func Parse(s string) (Literal, error) {
	if strings.ContainsRune(s, '\'') {
		return parseVerilog(s)
	}
	return parseBinary(s)
}

func parseBinary(s string) (Literal, error) {
	if s == "" {
		return Literal{}, errors.New("empty constant")
	}
	for i, r := range s {
		if r != '0' && r != '1' {
			return Literal{}, parseError(s, lex.Pos(i), "binary constant must contain only 0 and 1")
		}
	}
	return Literal{Width: len(s), Bits: s}, nil
}

func lexInit(l *lex.Lexer) lex.StateFn {
	r := l.Next()
	switch {
	case r == lex.EOFRune:
		return lexEOF
	case r == '\'':
		l.Emit(Quote, "'")
	case '0' <= r && r <= '9':
		return lexNumber
	default:
		l.Emit(Raw, r)
		return lexEOF
	}
	return nil
}

func lexNumber(l *lex.Lexer) lex.StateFn {
	i := int(l.Current() - '0')
	r := l.Next()
	for '0' <= r && r <= '9' {
		i = i*10 + int(r-'0')
		r = l.Next()
	}
	l.Backup()
	l.Emit(Int, i)
	return nil
}

// lexBase lexes the base letter and the digit run that follows it. It is
// entered explicitly by the parser once the quote has been seen, since
// base letters and digits overlap (d, b, ...).
func lexBase(l *lex.Lexer) lex.StateFn {
	r := l.Next()
	if r == lex.EOFRune {
		return lexEOF
	}
	if !unicode.IsLetter(r) {
		l.Emit(Raw, r)
		return lexEOF
	}
	l.Emit(Base, r)
	return lexDigits
}

func lexDigits(l *lex.Lexer) lex.StateFn {
	var buf strings.Builder
	r := l.Next()
	for r != lex.EOFRune && (unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_') {
		if r != '_' {
			buf.WriteRune(r)
		}
		r = l.Next()
	}
	l.Backup()
	l.Emit(Digits, buf.String())
	return nil
}

func lexEOF(l *lex.Lexer) lex.StateFn {
	l.Emit(lex.EOF, "end of input")
	return lexEOF
}

func parseVerilog(s string) (Literal, error) {
	l := lex.New(strings.NewReader(s), lexInit)

	i := l.Lex()
	if i.Type != Int {
		return Literal{}, parseError(s, i.Pos, "expected width")
	}
	width := i.Value.(int)
	if width < 1 {
		return Literal{}, parseError(s, i.Pos, "width must be at least 1")
	}
	i = l.Lex()
	if i.Type != Quote {
		return Literal{}, parseError(s, i.Pos, "expected ' after width")
	}
	// base letter and digits share an alphabet; steer the lexer by hand.
	if st := lexBase(l); st != nil {
		st(l)
	}
	i = l.Lex()
	if i.Type != Base {
		return Literal{}, parseError(s, i.Pos, "expected base specifier")
	}
	base := i.Value.(rune)
	i = l.Lex()
	if i.Type != Digits {
		return Literal{}, parseError(s, i.Pos, "expected digits")
	}
	digits := i.Value.(string)
	if digits == "" {
		return Literal{}, parseError(s, i.Pos, "expected digits")
	}
	if i = l.Lex(); i.Type != EOF {
		return Literal{}, parseError(s, i.Pos, "trailing garbage after constant")
	}
	return build(s, width, base, digits)
}

// bitsPerDigit maps a base letter to the number of bits one digit
// contributes to the literal's natural width. Decimal is 0: its natural
// width is the minimal width of the value.
var bitsPerDigit = map[rune]int{'b': 1, 'o': 3, 'h': 4, 'd': 0}

func build(s string, width int, base rune, digits string) (Literal, error) {
	signed := unicode.IsUpper(base)
	bpd, ok := bitsPerDigit[unicode.ToLower(base)]
	if !ok {
		return Literal{}, errors.Errorf("in %q: unknown base %q", s, base)
	}
	radix := map[rune]int{'b': 2, 'o': 8, 'h': 16, 'd': 10}[unicode.ToLower(base)]
	v, ok2 := new(big.Int).SetString(digits, radix)
	if !ok2 || v.Sign() < 0 {
		return Literal{}, errors.Errorf("in %q: bad digits %q for base %q", s, digits, base)
	}
	natural := len(digits) * bpd
	if bpd == 0 {
		natural = v.BitLen()
		if natural == 0 {
			natural = 1
		}
	}
	return Literal{Width: width, Bits: render(v, natural, width, signed)}, nil
}

// render lays out value v, of natural width, as a width-bit binary
// string. Signed values replicate the natural MSB on extension; all
// values keep their low bits on truncation.
func render(v *big.Int, natural, width int, signed bool) string {
	sign := byte('0')
	if signed && v.Bit(natural-1) == 1 {
		sign = '1'
	}
	b := make([]byte, width)
	for i := 0; i < width; i++ {
		switch {
		case i < natural:
			b[width-1-i] = '0' + byte(v.Bit(i))
		default:
			b[width-1-i] = sign
		}
	}
	return string(b)
}

func parseError(in string, pos lex.Pos, msg string) error {
	return errors.Errorf("in %q at pos %d: %s", in, pos+1, msg)
}
