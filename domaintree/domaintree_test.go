package domaintree

import (
	"testing"

	"github.com/joshuafuller/dnswire/name"
)

func mustParse(t *testing.T, s string) name.Name {
	t.Helper()
	n, err := name.Parse(s)
	if err != nil {
		t.Fatalf("name.Parse(%q): %v", s, err)
	}
	return n
}

func sampleNames() []struct {
	name  string
	value int
} {
	names := []string{
		"c", "b", "a",
		"x.d.e.f", "z.d.e.f",
		"g.h", "i.g.h",
		"o.w.y.d.e.f", "j.z.d.e.f", "p.w.y.d.e.f", "q.w.y.d.e.f",
	}
	out := make([]struct {
		name  string
		value int
	}, len(names))
	for i, n := range names {
		out[i] = struct {
			name  string
			value int
		}{n, i}
	}
	return out
}

func buildSampleTree(t *testing.T) *Tree[int] {
	t.Helper()
	tree := New[int]()
	for _, nv := range sampleNames() {
		tree.Insert(mustParse(t, nv.name), nv.value)
	}
	return tree
}

func TestInsertCreatesNonTerminals(t *testing.T) {
	tree := buildSampleTree(t)
	if tree.Len() != 14 {
		t.Fatalf("Len() = %d, want 14", tree.Len())
	}
}

func TestFindExactMatchReturnsStoredValue(t *testing.T) {
	tree := buildSampleTree(t)
	for _, nv := range sampleNames() {
		result := tree.Find(mustParse(t, nv.name))
		if result.Flag != ExactMatch {
			t.Fatalf("Find(%q).Flag = %v, want ExactMatch", nv.name, result.Flag)
		}
		got, ok := result.Value()
		if !ok || got != nv.value {
			t.Fatalf("Find(%q).Value() = (%d, %v), want (%d, true)", nv.name, got, ok, nv.value)
		}
	}
}

func TestFindNonTerminalHasNoValue(t *testing.T) {
	tree := buildSampleTree(t)
	for _, n := range []string{"d.e.f", "w.y.d.e.f"} {
		result := tree.Find(mustParse(t, n))
		if result.Flag != ExactMatch {
			t.Fatalf("Find(%q).Flag = %v, want ExactMatch", n, result.Flag)
		}
		if _, ok := result.Value(); ok {
			t.Fatalf("Find(%q).Value() reported a value, want none", n)
		}
	}
}

func TestFindPartialAndNotFound(t *testing.T) {
	tree := buildSampleTree(t)

	result := tree.Find(mustParse(t, "m.x.d.e.f"))
	if result.Flag != PartialMatch {
		t.Fatalf("Find(m.x.d.e.f).Flag = %v, want PartialMatch", result.Flag)
	}

	result = tree.Find(mustParse(t, "nowhere"))
	if result.Flag != NotFound {
		t.Fatalf("Find(nowhere).Flag = %v, want NotFound", result.Flag)
	}
}

func TestRemoveEveryInsertedNameEmptiesTree(t *testing.T) {
	tree := buildSampleTree(t)
	for _, nv := range sampleNames() {
		got, ok := tree.Remove(mustParse(t, nv.name))
		if !ok || got != nv.value {
			t.Fatalf("Remove(%q) = (%d, %v), want (%d, true)", nv.name, got, ok, nv.value)
		}
	}
	if tree.Len() != 0 {
		t.Fatalf("Len() after removing every name = %d, want 0", tree.Len())
	}
}

func TestRemoveNonTerminalKeepsStructuralNode(t *testing.T) {
	tree := buildSampleTree(t)

	// "x.d.e.f" and "z.d.e.f" both live under the non-terminal "d.e.f";
	// removing one real name must not remove the shared ancestor.
	if _, ok := tree.Remove(mustParse(t, "x.d.e.f")); !ok {
		t.Fatal("Remove(x.d.e.f) reported no value")
	}

	result := tree.Find(mustParse(t, "d.e.f"))
	if result.Flag != ExactMatch {
		t.Fatalf("Find(d.e.f) after sibling removal = %v, want ExactMatch", result.Flag)
	}
	if _, ok := result.Value(); ok {
		t.Fatal("Find(d.e.f) reported a value, want none")
	}

	result = tree.Find(mustParse(t, "z.d.e.f"))
	if result.Flag != ExactMatch {
		t.Fatalf("Find(z.d.e.f) after sibling removal = %v, want ExactMatch", result.Flag)
	}
}

func TestInsertOverwritesExistingValue(t *testing.T) {
	tree := New[int]()
	tree.Insert(mustParse(t, "example.com"), 1)
	ref, old, hadOld := tree.Insert(mustParse(t, "example.com"), 2)
	if !hadOld || old != 1 {
		t.Fatalf("Insert overwrite = (old %d, hadOld %v), want (1, true)", old, hadOld)
	}
	v, ok := tree.Value(ref)
	if !ok || v != 2 {
		t.Fatalf("Value() after overwrite = (%d, %v), want (2, true)", v, ok)
	}
	if tree.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", tree.Len())
	}
}

func TestCallbackFiresDuringSubdomainDescent(t *testing.T) {
	tree := New[int]()
	for _, n := range []string{"a", "b", "c", "d"} {
		tree.Insert(mustParse(t, n), 10)
	}
	eRef, _, _ := tree.Insert(mustParse(t, "e"), 20)
	tree.SetCallback(eRef, true)
	tree.Insert(mustParse(t, "b.e"), 30)

	var sum int
	seen := 0
	callback := func(n NodeRef, absolute name.Name, param *int) bool {
		seen++
		if absolute.String() != "e." {
			t.Fatalf("callback absolute name = %q, want %q", absolute.String(), "e.")
		}
		v, _ := tree.Value(n)
		*param += v
		return false
	}

	chain := NewNodeChain(tree)
	result := FindNodeExt[int, int](tree, mustParse(t, "b.e"), chain, callback, &sum)
	if result.Flag != ExactMatch {
		t.Fatalf("FindNodeExt(b.e).Flag = %v, want ExactMatch", result.Flag)
	}
	if v, ok := result.Value(); !ok || v != 30 {
		t.Fatalf("FindNodeExt(b.e).Value() = (%d, %v), want (30, true)", v, ok)
	}
	if seen != 1 || sum != 20 {
		t.Fatalf("callback invocations = %d, sum = %d, want (1, 20)", seen, sum)
	}
}

func TestCallbackStoppingTraversalReturnsPartialMatch(t *testing.T) {
	tree := New[int]()
	eRef, _, _ := tree.Insert(mustParse(t, "e"), 20)
	tree.SetCallback(eRef, true)
	tree.Insert(mustParse(t, "b.e"), 30)

	callback := func(n NodeRef, _ name.Name, param *int) bool {
		v, _ := tree.Value(n)
		*param += v
		return true
	}

	var sum int
	chain := NewNodeChain(tree)
	result := FindNodeExt[int, int](tree, mustParse(t, "b.e"), chain, callback, &sum)
	if result.Flag != PartialMatch {
		t.Fatalf("FindNodeExt(b.e).Flag = %v, want PartialMatch", result.Flag)
	}
	if sum != 20 {
		t.Fatalf("sum = %d, want 20", sum)
	}
}

func TestClearEmptiesTree(t *testing.T) {
	tree := buildSampleTree(t)
	tree.Clear()
	if tree.Len() != 0 {
		t.Fatalf("Len() after Clear() = %d, want 0", tree.Len())
	}
	result := tree.Find(mustParse(t, "c"))
	if result.Flag != NotFound {
		t.Fatalf("Find(c) after Clear().Flag = %v, want NotFound", result.Flag)
	}
}
