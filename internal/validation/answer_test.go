package validation

import "testing"

func TestNormalizeAnswer(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"The Beatles", "beatles"},
		{"  An   Apple! ", "apple"},
		{"Mona Lisa", "mona lisa"},
		{"Scarab", "scarab"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := NormalizeAnswer(tt.in); got != tt.want {
			t.Fatalf("NormalizeAnswer(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestIsSimilarAnswer(t *testing.T) {
	tests := []struct {
		guess, answer string
		want          bool
	}{
		{"beatles", "The Beatles", true},
		{"Muhammad Ali", "muhammad ali", true},
		{"Ali", "Muhammad Ali", true},
		{"Tom Cruise", "Tom Cruse", true},
		{"Escher", "Picasso", false},
		{"e", "Edison", false},
		{"the", "Brazil", false},
		{"", "", true},
	}
	for _, tt := range tests {
		if got := IsSimilarAnswer(tt.guess, tt.answer); got != tt.want {
			t.Fatalf("IsSimilarAnswer(%q, %q) = %v, want %v", tt.guess, tt.answer, got, tt.want)
		}
	}
}

func TestLevenshteinDistance(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "abc", 3},
		{"kitten", "sitting", 3},
		{"flaw", "lawn", 2},
		{"same", "same", 0},
	}
	for _, tt := range tests {
		if got := levenshteinDistance([]rune(tt.a), []rune(tt.b)); got != tt.want {
			t.Fatalf("levenshteinDistance(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}
