package review

import "testing"

func TestIndex_PutGet(t *testing.T) {
	ix, err := NewIndex(4)
	if err != nil {
		t.Fatal(err)
	}
	ix.Put("Miku", []string{"great sushi", "slow service"})
	ix.Put("Nonna", []string{"best carbonara"})

	got, ok := ix.Get("Miku")
	if !ok || len(got) != 2 {
		t.Fatalf("Get(Miku) = %v, %v", got, ok)
	}
	if _, ok := ix.Get("Unknown"); ok {
		t.Fatal("Get(Unknown) should miss")
	}
	if ix.Len() != 2 {
		t.Fatalf("Len = %d, want 2", ix.Len())
	}
}

func TestIndex_GetReturnsCopy(t *testing.T) {
	ix, err := NewIndex(4)
	if err != nil {
		t.Fatal(err)
	}
	ix.Put("Miku", []string{"original"})
	got, _ := ix.Get("Miku")
	got[0] = "mutated"
	again, _ := ix.Get("Miku")
	if again[0] != "original" {
		t.Fatalf("stored reviews were mutated through a caller slice")
	}
}

func TestIndex_EvictsOldest(t *testing.T) {
	ix, err := NewIndex(2)
	if err != nil {
		t.Fatal(err)
	}
	ix.Put("a", []string{"r"})
	ix.Put("b", []string{"r"})
	ix.Put("c", []string{"r"})
	if _, ok := ix.Get("a"); ok {
		t.Fatal("oldest entry should have been evicted")
	}
	if ix.Len() != 2 {
		t.Fatalf("Len = %d, want 2", ix.Len())
	}
}
