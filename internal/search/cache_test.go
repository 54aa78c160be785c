package search

import "testing"

func TestCacheGetSet(t *testing.T) {
	c := NewCache(10)

	if got := c.Get("missing"); got != nil {
		t.Errorf("Get on empty cache = %v, want nil", got)
	}

	results := []Result{
		{Index: 0, Text: "foo/bar", Score: 1.5, Positions: []int{0, 4}},
		{Index: 2, Text: "baz", Score: 0.5},
	}
	c.Set("fb", results)

	got := c.Get("fb")
	if len(got) != 2 {
		t.Fatalf("got %d results, want 2", len(got))
	}
	if got[0].Text != "foo/bar" || got[1].Text != "baz" {
		t.Errorf("cached results corrupted: %v", got)
	}
	if c.Len() != 1 {
		t.Errorf("Len = %d, want 1", c.Len())
	}
}

func TestCacheCopySemantics(t *testing.T) {
	c := NewCache(10)

	original := []Result{{Index: 0, Text: "one", Score: 1, Positions: []int{0}}}
	c.Set("q", original)

	// Mutations on either side must not reach the cached copy.
	original[0].Text = "mutated"
	first := c.Get("q")
	first[0].Positions[0] = 99

	second := c.Get("q")
	if second[0].Text != "one" {
		t.Errorf("cached text = %q, want one", second[0].Text)
	}
	if second[0].Positions[0] != 0 {
		t.Errorf("cached positions = %v, want [0]", second[0].Positions)
	}
}

func TestCacheEviction(t *testing.T) {
	c := NewCache(2)

	c.Set("a", []Result{{Text: "a"}})
	c.Set("b", []Result{{Text: "b"}})

	// Touch "a" so "b" becomes the eviction candidate.
	c.Get("a")
	c.Set("c", []Result{{Text: "c"}})

	if got := c.Get("b"); got != nil {
		t.Errorf("expected b evicted, got %v", got)
	}
	if got := c.Get("a"); got == nil {
		t.Error("expected a retained")
	}
	if got := c.Get("c"); got == nil {
		t.Error("expected c retained")
	}
}

func TestCacheUpdateExisting(t *testing.T) {
	c := NewCache(2)

	c.Set("q", []Result{{Text: "old"}})
	c.Set("q", []Result{{Text: "new"}})

	if c.Len() != 1 {
		t.Errorf("Len = %d, want 1", c.Len())
	}
	if got := c.Get("q"); len(got) != 1 || got[0].Text != "new" {
		t.Errorf("Get = %v, want updated entry", got)
	}
}

func TestCacheClear(t *testing.T) {
	c := NewCache(5)
	c.Set("a", []Result{{Text: "a"}})
	c.Set("b", []Result{{Text: "b"}})

	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len after Clear = %d, want 0", c.Len())
	}
	if got := c.Get("a"); got != nil {
		t.Errorf("Get after Clear = %v, want nil", got)
	}
}
