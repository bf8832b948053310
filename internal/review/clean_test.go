package review

import (
	"strings"
	"testing"
)

func TestCleanOne(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"collapse whitespace", "great   food\n\nand\tservice", "great food and service"},
		{"smart quotes", "“best” ramen, chef’s special", `"best" ramen, chef's special`},
		{"strip emoji", "amazing sushi \U0001F363\U0001F525", "amazing sushi"},
		{"strip control chars", "good\x00food\x07here", "goodfoodhere"},
		{"empty after cleaning", " \t\n ", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CleanOne(tc.in); got != tc.want {
				t.Fatalf("CleanOne(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestCleanOne_TruncatesLongReviews(t *testing.T) {
	in := strings.Repeat("a", 1500)
	got := CleanOne(in)
	if len(got) != 1000 {
		t.Fatalf("len = %d, want 1000", len(got))
	}
	if !strings.HasSuffix(got, "...") {
		t.Fatalf("truncated review should end with ellipsis, got %q", got[990:])
	}
}

func TestClean_DropsEmptiesKeepsOrder(t *testing.T) {
	in := []string{"first", "   ", "second", "", "third"}
	got := Clean(in)
	want := []string{"first", "second", "third"}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
