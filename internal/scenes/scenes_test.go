package scenes

import (
	"testing"

	"github.com/phanxgames/grove/desc"
)

func TestNamesSorted(t *testing.T) {
	names := Names()
	want := []string{"pulse", "shared", "showcase"}
	if len(names) != len(want) {
		t.Fatalf("Names = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("Names[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestLookup(t *testing.T) {
	for _, name := range Names() {
		f, ok := Lookup(name)
		if !ok || f == nil {
			t.Fatalf("Lookup(%q) failed", name)
		}
		if f() == nil {
			t.Errorf("%s returned nil", name)
		}
	}
	if _, ok := Lookup("missing"); ok {
		t.Error("Lookup(missing) should fail")
	}
}

func TestScenesAreFresh(t *testing.T) {
	for _, name := range Names() {
		f, _ := Lookup(name)
		if f() == f() {
			t.Errorf("%s returned the same graph twice", name)
		}
	}
}

func TestSharedBrush(t *testing.T) {
	g := desc.Inspect(Shared())
	shared := g.Shared()
	if len(shared) != 1 || shared[0].Kind() != desc.KindColorBrush {
		t.Fatalf("Shared = %v, want one color brush", shared)
	}
}

func TestShowcaseCoversEveryKind(t *testing.T) {
	g := desc.Inspect(Showcase())
	for _, k := range desc.AllKinds() {
		if g.ByKind[k] == 0 {
			t.Errorf("showcase has no %s", k)
		}
	}
}
