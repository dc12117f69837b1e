package parsers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const sampleLine = `1.196.116.32 -  - [29/Jun/2017:03:50:22 +0300] "GET /api/v2/banner/25019354 HTTP/1.1" 200 927 "-" "Lynx/2.8.8dev.9 libwww-FM/2.14 SSL-MM/1.4.1 GNUTLS/2.10.5" "-" "1498697422-2190034393-4708-9752759" "dc7161be3" 0.390`

func TestTokenize_NginxUIShortLine(t *testing.T) {
	t.Parallel()

	tokens := Tokenize(sampleLine)

	expected := []string{
		"1.196.116.32",
		"-",
		"-",
		"29/Jun/2017:03:50:22 +0300",
		"GET /api/v2/banner/25019354 HTTP/1.1",
		"200",
		"927",
		"-",
		"Lynx/2.8.8dev.9 libwww-FM/2.14 SSL-MM/1.4.1 GNUTLS/2.10.5",
		"-",
		"1498697422-2190034393-4708-9752759",
		"dc7161be3",
		"0.390",
	}
	assert.Equal(t, expected, tokens)
}

func TestTokenize_Shapes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		line     string
		expected []string
	}{
		{
			name:     "empty line",
			line:     "",
			expected: []string{},
		},
		{
			name:     "whitespace only",
			line:     " \t  \n",
			expected: []string{},
		},
		{
			name:     "empty quoted field",
			line:     `a "" b`,
			expected: []string{"a", "", "b"},
		},
		{
			name:     "bracket with spaces",
			line:     `[x y z] tail`,
			expected: []string{"x y z", "tail"},
		},
		{
			name:     "unterminated quote falls back to bare tokens",
			line:     `"GET /a`,
			expected: []string{`"GET`, "/a"},
		},
		{
			name:     "adjacent quoted fields",
			line:     `"a b""c d"`,
			expected: []string{"a b", "c d"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, Tokenize(tt.line))
		})
	}
}

func TestTokenize_ContentRoundTrip(t *testing.T) {
	t.Parallel()

	lines := []string{
		sampleLine,
		`1.2.3.4 - - [10/Jan/2024:10:00:00 +0000] "GET /a HTTP/1.1" 200 100 "-" "-" "-" "-" "-" 0.5`,
	}

	strip := func(s string) string {
		return strings.Map(func(r rune) rune {
			switch r {
			case ' ', '\t', '"', '[', ']':
				return -1
			}
			return r
		}, s)
	}

	for _, line := range lines {
		tokens := Tokenize(line)
		assert.Equal(t, strip(line), strip(strings.Join(tokens, "")))
	}
}
