package analysis

import "testing"

func TestRank_TiesKeepDiscoveryOrder(t *testing.T) {
	in := []Entity{
		{Name: "first", MentionCount: 2},
		{Name: "second", MentionCount: 5},
		{Name: "third", MentionCount: 2},
		{Name: "fourth", MentionCount: 2},
	}
	got := Rank(in, 0)
	wantOrder := []string{"second", "first", "third", "fourth"}
	for i, name := range wantOrder {
		if got[i].Name != name {
			t.Fatalf("rank[%d] = %q, want %q (stable ties)", i, got[i].Name, name)
		}
	}
}

func TestRank_TruncatesToHighestCounts(t *testing.T) {
	in := []Entity{
		{Name: "a", MentionCount: 1},
		{Name: "b", MentionCount: 9},
		{Name: "c", MentionCount: 4},
		{Name: "d", MentionCount: 7},
	}
	got := Rank(in, 2)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Name != "b" || got[1].Name != "d" {
		t.Fatalf("top2 = %q, %q; want b, d", got[0].Name, got[1].Name)
	}
}

func TestRank_MaxLargerThanInput(t *testing.T) {
	got := Rank([]Entity{{Name: "only", MentionCount: 1}}, 50)
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
}

func TestRank_DoesNotMutateInput(t *testing.T) {
	in := []Entity{
		{Name: "low", MentionCount: 1},
		{Name: "high", MentionCount: 3},
	}
	_ = Rank(in, 1)
	if in[0].Name != "low" {
		t.Fatalf("input mutated: %+v", in)
	}
}
