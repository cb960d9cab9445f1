package stringx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCapitalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"javascript is fun", "Javascript is fun"},
		{"", ""},
		{"a", "A"},
		{"Already", "Already"},
		{"hELLO", "HELLO"},
		{"1abc", "1abc"},
		{" leading space", " leading space"},
		{"éclair", "Éclair"},
		{"ßtraße", "SStraße"},
		{"ǆungla", "Ǆungla"},
		{"\xffbad", "\xffbad"},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, Capitalize(c.in), "input %q", c.in)
	}
}

func TestIsPalindrome(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"A man, a plan, a canal, Panama", true},
		{"hello", false},
		{"", true},
		{"!!!", true},
		{"Racecar", true},
		{"No 'x' in Nixon", true},
		{"12321", true},
		{"12345", false},
		{"Was it a car or a cat I saw?", true},
		{"ab", false},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, IsPalindrome(c.in), "input %q", c.in)
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "amanaplanacanalpanama", normalize("A man, a plan, a canal, Panama"))
	assert.Equal(t, "caf", normalize("Café"))
}
