package mulscan

import (
	"bytes"
)

var (
	bytesDo   = []byte(litDo)
	bytesDont = []byte(litDont)
	bytesMul  = []byte(litMul)
)

// marks holds the offset of the next occurrence of each literal at or after
// the cursor. A literal without further occurrence is marked at the end of
// the input; -1 means not searched yet.
type marks struct {
	mul  int
	do   int
	dont int
}

type finder struct {
	input []byte
	pos   int
	marks

	// called each time the marks are consulted.
	observe func(int, marks)
}

// Find jumps from one literal occurrence to the next with substring search
// instead of visiting every byte. Each mark moves forward only: it is
// searched again, from the cursor, once the cursor has gone past it.
func Find(input []byte, toggle bool) uint64 {
	f := finder{
		input: input,
		marks: marks{
			mul:  -1,
			do:   -1,
			dont: -1,
		},
	}
	return f.sum(toggle)
}

func (f *finder) sum(toggle bool) uint64 {
	var (
		total uint64
		size  = len(f.input)
	)
	for {
		f.refresh(toggle)
		if toggle && f.dont < f.mul {
			f.pos = f.dont + len(litDont)
			f.refresh(toggle)
			if f.do >= size {
				break
			}
			f.pos = f.do + len(litDo)
			continue
		}
		if f.mul >= size {
			break
		}
		f.pos = f.mul + len(litMul)
		if x, y, n := operands(f.input[f.pos:]); n > 0 {
			total += x * y
			f.pos += n
		}
	}
	return total
}

func (f *finder) refresh(toggle bool) {
	if f.mul < f.pos {
		f.mul = f.index(bytesMul)
	}
	if toggle {
		if f.do < f.pos {
			f.do = f.index(bytesDo)
		}
		if f.dont < f.pos {
			f.dont = f.index(bytesDont)
		}
	}
	if f.observe != nil {
		f.observe(f.pos, f.marks)
	}
}

func (f *finder) index(lit []byte) int {
	if f.pos >= len(f.input) {
		return len(f.input)
	}
	x := bytes.Index(f.input[f.pos:], lit)
	if x < 0 {
		return len(f.input)
	}
	return f.pos + x
}

// operands parses "X,Y)" at the start of rest, looking for each delimiter
// in the few bytes an operand can span. It returns the count of bytes
// consumed, 0 if rest does not start with valid operands.
func operands(rest []byte) (uint64, uint64, int) {
	j := bytes.IndexByte(window(rest), comma)
	if j < 0 {
		return 0, 0, 0
	}
	x, ok := operand(rest[:j])
	if !ok {
		return 0, 0, 0
	}
	rest = rest[j+1:]
	k := bytes.IndexByte(window(rest), rparen)
	if k < 0 {
		return 0, 0, 0
	}
	y, ok := operand(rest[:k])
	if !ok {
		return 0, 0, 0
	}
	return x, y, j + k + 2
}

func window(b []byte) []byte {
	if n := maxDigit + 1; len(b) > n {
		return b[:n]
	}
	return b
}

func operand(b []byte) (uint64, bool) {
	if len(b) == 0 || len(b) > maxDigit || b[0] == zero {
		return 0, false
	}
	var x uint64
	for _, c := range b {
		if !isDigit(rune(c)) {
			return 0, false
		}
		x = x*10 + uint64(c-zero)
	}
	return x, true
}
