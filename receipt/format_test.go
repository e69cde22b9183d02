package receipt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatThousands(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{1, "1"},
		{999, "999"},
		{1000, "1,000"},
		{34800, "34,800"},
		{100000, "100,000"},
		{1000000, "1,000,000"},
		{1234567890123, "1,234,567,890,123"},
		{-1, "-1"},
		{-999, "-999"},
		{-1234567, "-1,234,567"},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, FormatThousands(c.in), "input %d", c.in)
	}
}
