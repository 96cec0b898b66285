package mulscan

// ByChar walks input with an explicit index. Every byte is consumed before
// being compared; when the delimiter after an operand does not match, the
// index steps back by one so that the offending byte is examined again as a
// possible token start.
func ByChar(input []byte, toggle bool) uint64 {
	var (
		total   uint64
		enabled = true
		size    = len(input)
	)
	for i := 0; i < size; {
		c := input[i]
		i++
		switch c {
		case letterD:
			if !toggle {
				continue
			}
			switch {
			case literalAt(input, i, litDo[1:]):
				enabled = true
				i += len(litDo) - 1
			case literalAt(input, i, litDont[1:]):
				enabled = false
				i += len(litDont) - 1
			default:
			}
		case letterM:
			if !enabled || !literalAt(input, i, litMul[1:]) {
				continue
			}
			i += len(litMul) - 1

			x, n := numberAt(input, i)
			if n == 0 {
				continue
			}
			i += n
			if i >= size {
				continue
			}
			c = input[i]
			i++
			if c != comma {
				i--
				continue
			}

			y, n := numberAt(input, i)
			if n == 0 {
				continue
			}
			i += n
			if i >= size {
				continue
			}
			c = input[i]
			i++
			if c != rparen {
				i--
				continue
			}
			total += x * y
		default:
		}
	}
	return total
}

// Sum is the reference entry point: it uses the ByChar strategy.
func Sum(input []byte, toggle bool) uint64 {
	return ByChar(input, toggle)
}

func literalAt(input []byte, i int, lit string) bool {
	if len(input)-i < len(lit) {
		return false
	}
	for j := 0; j < len(lit); j++ {
		if input[i+j] != lit[j] {
			return false
		}
	}
	return true
}

// numberAt reads at most three digits starting at i, the first one not
// being zero. It returns the value and the count of digits read, 0 when no
// operand starts at i.
func numberAt(input []byte, i int) (uint64, int) {
	if i >= len(input) || !isNonZero(rune(input[i])) {
		return 0, 0
	}
	var (
		x uint64
		n int
	)
	for n < maxDigit && i+n < len(input) && isDigit(rune(input[i+n])) {
		x = x*10 + uint64(input[i+n]-zero)
		n++
	}
	return x, n
}
