package textmatch

import (
	"reflect"
	"testing"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"lowercases", "Pashmina Shawl", "pashmina shawl"},
		{"trims", "  wool carpet  ", "wool carpet"},
		{"collapses whitespace", "wool \t  carpet\n rug", "wool carpet rug"},
		{"empty", "", ""},
		{"whitespace only", " \t\n ", ""},
		{"punctuation survives", "hand-made! shawl", "hand-made! shawl"},
		{"devanagari", "  पश्मिना  सल  ", "पश्मिना सल"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Normalize(tc.in); got != tc.want {
				t.Errorf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestTokenize(t *testing.T) {
	got := Tokenize("  Wool  CARPET rug ")
	want := []string{"wool", "carpet", "rug"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize = %v, want %v", got, want)
	}

	if got := Tokenize("   "); got != nil {
		t.Errorf("Tokenize(whitespace) = %v, want nil", got)
	}
}
