package textmatch

import (
	"math"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercase and trim", "  Ball ", "ball"},
		{"collapse whitespace", "the \t cat\n  sat", "the cat sat"},
		{"fold single quotes", "l’homme l‘eau l´ami", "l'homme l'eau l'ami"},
		{"fold double quotes", "“hola” «salut»", `"hola" "salut"`},
		{"fold dashes", "a–b—c", "a-b-c"},
		{"keep diacritics", "Café Über", "café über"},
		{"compose decomposed accents", "cafe\u0301", "caf\u00e9"},
		{"empty", "   ", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Normalize(tc.input); got != tc.want {
				t.Errorf("Normalize(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestNormalizeTokens_StripsPunctuation(t *testing.T) {
	got := NormalizeTokens("Hello, world! ¿Qué tal?")
	if got != "hello world qué tal" {
		t.Errorf("NormalizeTokens() = %q", got)
	}
}

func TestTokens(t *testing.T) {
	got := Tokens("The cat, sat.")
	want := []string{"the", "cat", "sat"}
	if len(got) != len(want) {
		t.Fatalf("Tokens() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Tokens()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestDistance(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "", 3},
		{"kitten", "sitting", 3},
		{"sat", "sit", 1},
		{"café", "cafe", 1},
	}
	for _, tc := range tests {
		if got := Distance(tc.a, tc.b); got != tc.want {
			t.Errorf("Distance(%q, %q) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestSimilarity_Identity(t *testing.T) {
	for _, s := range []string{"", "a", "ball", "the cat sat", "über"} {
		if got := Similarity(s, s); got != 1.0 {
			t.Errorf("Similarity(%q, %q) = %f, want 1", s, s, got)
		}
	}
}

func TestSimilarity_AgainstEmpty(t *testing.T) {
	for _, s := range []string{"a", "ball", "über"} {
		if got := Similarity(s, ""); got != 0 {
			t.Errorf("Similarity(%q, \"\") = %f, want 0", s, got)
		}
	}
}

func TestSimilarity_Symmetric(t *testing.T) {
	pairs := [][2]string{
		{"house", "ball"},
		{"sat", "sit"},
		{"kitten", "sitting"},
		{"", "x"},
		{"gato", "gatos"},
	}
	for _, p := range pairs {
		ab := Similarity(p[0], p[1])
		ba := Similarity(p[1], p[0])
		if ab != ba {
			t.Errorf("Similarity(%q, %q) = %f but reversed = %f", p[0], p[1], ab, ba)
		}
	}
}

func TestSimilarity_Value(t *testing.T) {
	got := Similarity("sat", "sit")
	want := 1.0 - 1.0/3.0
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("Similarity(sat, sit) = %f, want %f", got, want)
	}
}
