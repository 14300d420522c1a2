package icons

import (
	"strings"
	"testing"
)

func TestCatalogEntriesAreComplete(t *testing.T) {
	if len(catalog) == 0 {
		t.Fatal("expected catalog to include icon definitions")
	}

	seen := make(map[ID]struct{})
	for _, def := range catalog {
		if def.ID == "" {
			t.Errorf("unexpected empty icon id in catalog")
		}
		if _, ok := seen[def.ID]; ok {
			t.Errorf("duplicate icon id in catalog: %s", def.ID)
		}
		seen[def.ID] = struct{}{}
		if strings.TrimSpace(def.Name) == "" {
			t.Errorf("icon %s missing name", def.ID)
		}
		if len(def.Paths) == 0 {
			t.Errorf("icon %s has no paths", def.ID)
		}
		if got, ok := Lookup(def.ID); !ok || got.ID != def.ID {
			t.Errorf("Lookup(%s) = %+v, %v", def.ID, got, ok)
		}
	}
}

func TestLookup(t *testing.T) {
	if def, ok := Lookup(" eye "); !ok || def.ID != Eye {
		t.Fatalf("Lookup(eye) = %+v, %v", def, ok)
	}
	if _, ok := Lookup("gavel"); ok {
		t.Fatal("expected unknown icon to be missing")
	}
}
