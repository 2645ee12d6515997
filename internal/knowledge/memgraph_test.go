package knowledge

import (
	"sync"
	"testing"
)

func TestInternCaseInsensitive(t *testing.T) {
	g := NewMemoryGraph()

	a := g.Intern("Moscow")
	b := g.Intern("moscow")
	c := g.Intern("MOSCOW")

	if a != b || b != c {
		t.Errorf("case variants must intern to one id: %d %d %d", a, b, c)
	}

	label, ok := g.Get(a)
	if !ok || label != "Moscow" {
		t.Errorf("first-seen casing should be preserved, got %q", label)
	}
}

func TestLookupMissing(t *testing.T) {
	g := NewMemoryGraph()
	if _, ok := g.Lookup("nothing"); ok {
		t.Error("lookup of unknown label must fail")
	}
	if _, ok := g.Get(999); ok {
		t.Error("get of unknown id must fail")
	}
}

func TestAssertAndWalk(t *testing.T) {
	g := NewMemoryGraph()

	g.Assert("socrates", "is-a", "philosopher")
	g.Assert("socrates", "lives-in", "athens")
	g.Assert("plato", "is-a", "philosopher")

	socrates, _ := g.Lookup("socrates")
	philosopher, _ := g.Lookup("philosopher")

	from := g.TriplesFrom(socrates)
	if len(from) != 2 {
		t.Fatalf("expected 2 triples from socrates, got %d", len(from))
	}

	to := g.TriplesTo(philosopher)
	if len(to) != 2 {
		t.Fatalf("expected 2 triples into philosopher, got %d", len(to))
	}

	if len(g.All()) != 3 {
		t.Errorf("expected 3 triples total, got %d", len(g.All()))
	}
}

func TestIDsStayOutOfDerivedSpace(t *testing.T) {
	g := NewMemoryGraph()
	for i := 0; i < 100; i++ {
		id := g.Intern(string(rune('a' + i%26)))
		if id.IsDerived() {
			t.Fatalf("graph allocated id %d in the derived space", id)
		}
	}
}

func TestConcurrentIntern(t *testing.T) {
	g := NewMemoryGraph()

	var wg sync.WaitGroup
	ids := make([]SymbolID, 50)
	for i := range ids {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			ids[n] = g.Intern("shared")
		}(i)
	}
	wg.Wait()

	for _, id := range ids {
		if id != ids[0] {
			t.Fatal("concurrent interning of one label must agree on the id")
		}
	}
}
