package mulscan

import (
	"fmt"
)

const (
	litDo   = "do()"
	litDont = "don't()"
	litMul  = "mul("
)

const (
	Eof rune = -(iota + 1)
	Do
	Dont
	Mul
)

type Token struct {
	Type   rune
	Left   int
	Right  int
	Offset int
}

func (t Token) String() string {
	switch t.Type {
	case Eof:
		return "<eof>"
	case Do:
		return "<do>"
	case Dont:
		return "<dont>"
	case Mul:
		return fmt.Sprintf("mul(%d,%d)", t.Left, t.Right)
	default:
		return "<unknown>"
	}
}

func (t Token) Product() uint64 {
	if !t.IsMul() {
		return 0
	}
	return uint64(t.Left) * uint64(t.Right)
}

func (t Token) IsEOF() bool {
	return t.Type == Eof
}

func (t Token) IsMul() bool {
	return t.Type == Mul
}

func (t Token) IsToggle() bool {
	return t.Type == Do || t.Type == Dont
}
