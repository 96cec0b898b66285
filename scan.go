package mulscan

import (
	"io"
)

const (
	eof      = -1
	zero     = '0'
	nine     = '9'
	lparen   = '('
	rparen   = ')'
	comma    = ','
	letterD  = 'd'
	letterM  = 'm'
	maxDigit = 3
)

// Scanner yields the do(), don't() and mul(X,Y) tokens found in its input
// and silently skips everything else.
//
// Bytes are pulled one at a time. When a byte breaks a literal and could
// itself open a token, it is kept in a one-slot pushback buffer that the
// next read consults first.
type Scanner struct {
	input []byte
	next  int

	back rune
	held bool
}

func Scan(r io.Reader) (*Scanner, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return NewScanner(buf), nil
}

func NewScanner(input []byte) *Scanner {
	return &Scanner{
		input: input,
	}
}

func (s *Scanner) Scan() Token {
	for {
		c := s.read()
		if c == eof {
			return Token{
				Type:   Eof,
				Offset: len(s.input),
			}
		}
		var (
			tok Token
			ok  bool
		)
		switch offset := s.next - 1; c {
		case letterD:
			tok, ok = s.scanToggle(offset)
		case letterM:
			tok, ok = s.scanMul(offset)
		default:
		}
		if ok {
			return tok
		}
	}
}

func (s *Scanner) scanToggle(offset int) (Token, bool) {
	tok := Token{Offset: offset}
	if !s.accept("o") {
		return tok, false
	}
	switch c := s.read(); c {
	case 'n':
		if !s.accept("'t()") {
			return tok, false
		}
		tok.Type = Dont
	case lparen:
		if !s.accept(")") {
			return tok, false
		}
		tok.Type = Do
	default:
		s.unread(c)
		return tok, false
	}
	return tok, true
}

func (s *Scanner) scanMul(offset int) (Token, bool) {
	tok := Token{
		Type:   Mul,
		Offset: offset,
	}
	if !s.accept("ul(") {
		return tok, false
	}
	var ok bool
	if tok.Left, ok = s.scanNumber(comma); !ok {
		return tok, false
	}
	if tok.Right, ok = s.scanNumber(rparen); !ok {
		return tok, false
	}
	return tok, true
}

func (s *Scanner) scanNumber(delim rune) (int, bool) {
	c := s.read()
	if !isNonZero(c) {
		s.unread(c)
		return 0, false
	}
	var n int
	for i := 0; i < maxDigit && isDigit(c); i++ {
		n = n*10 + int(c-zero)
		c = s.read()
	}
	if c != delim {
		s.unread(c)
		return 0, false
	}
	return n, true
}

func (s *Scanner) accept(str string) bool {
	for i := 0; i < len(str); i++ {
		if c := s.read(); c != rune(str[i]) {
			s.unread(c)
			return false
		}
	}
	return true
}

func (s *Scanner) read() rune {
	if s.held {
		s.held = false
		return s.back
	}
	if s.next >= len(s.input) {
		return eof
	}
	c := s.input[s.next]
	s.next++
	return rune(c)
}

// unread only keeps bytes that may start a new token: any other byte
// could not change the outcome of the next step.
func (s *Scanner) unread(c rune) {
	if !isStart(c) {
		return
	}
	s.back, s.held = c, true
}

// Tokens returns every token of input in order, without the final Eof.
func Tokens(input []byte) []Token {
	var (
		list []Token
		scan = NewScanner(input)
	)
	for tok := scan.Scan(); !tok.IsEOF(); tok = scan.Scan() {
		list = append(list, tok)
	}
	return list
}

// Iter sums the products of the tokens yielded by a Scanner.
func Iter(input []byte, toggle bool) uint64 {
	var (
		scan    = NewScanner(input)
		enabled = true
		total   uint64
	)
	for tok := scan.Scan(); !tok.IsEOF(); tok = scan.Scan() {
		switch {
		case tok.IsToggle():
			if toggle {
				enabled = tok.Type == Do
			}
		case enabled:
			total += tok.Product()
		default:
		}
	}
	return total
}

func isStart(c rune) bool {
	return c == letterD || c == letterM
}

func isDigit(c rune) bool {
	return c >= zero && c <= nine
}

func isNonZero(c rune) bool {
	return c > zero && c <= nine
}
