// file: internals/helpers/rounding_test.go
package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound2(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{1.234, 1.23},
		{0.125, 0.13}, // round half away from zero
		{-0.125, -0.13},
		{43.2, 43.2},
		{111.11111, 111.11},
		{66.666666, 66.67},
	}
	for _, tc := range cases {
		assert.InDelta(t, tc.want, Round2(tc.in), 1e-9, "Round2(%v)", tc.in)
	}
}
