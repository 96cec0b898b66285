package mulscan

import (
	"regexp"
)

const operandPattern = `([1-9][0-9]{0,2})`

var (
	mulPattern    = regexp.MustCompile(`mul\(` + operandPattern + `,` + operandPattern + `\)`)
	togglePattern = regexp.MustCompile(`(do\(\))|(don't\(\))|` + mulPattern.String())
)

// Regexp iterates over the non overlapping matches of a single alternation.
// Without toggle, only mul(X,Y) is looked for.
func Regexp(input []byte, toggle bool) uint64 {
	if !toggle {
		var total uint64
		for _, m := range mulPattern.FindAllSubmatch(input, -1) {
			total += number(m[1]) * number(m[2])
		}
		return total
	}
	var (
		total   uint64
		enabled = true
	)
	for _, m := range togglePattern.FindAllSubmatch(input, -1) {
		switch {
		case m[1] != nil:
			enabled = true
		case m[2] != nil:
			enabled = false
		case enabled:
			total += number(m[3]) * number(m[4])
		default:
		}
	}
	return total
}

func number(b []byte) uint64 {
	var x uint64
	for _, c := range b {
		x = x*10 + uint64(c-zero)
	}
	return x
}
