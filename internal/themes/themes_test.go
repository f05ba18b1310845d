package themes

import (
	"testing"
)

func TestLookupKnownKeys(t *testing.T) {
	for _, key := range Keys() {
		def := Lookup(key)

		if def.Key != key {
			t.Errorf("Lookup(%q) returned definition for %q", key, def.Key)
		}

		if def.Description == "" {
			t.Errorf("definition %q has empty description", key)
		}

		if def.LightColor == "" || def.DarkColor == "" {
			t.Errorf("definition %q is missing a primary color", key)
		}

		if len(def.LightDots) != 5 || len(def.DarkDots) != 5 {
			t.Errorf("definition %q should have 5 dots per mode, got %d light / %d dark",
				key, len(def.LightDots), len(def.DarkDots))
		}
	}
}

func TestLookupUnknownKeyFallsBackToDefault(t *testing.T) {
	tests := []string{"", "arbor_day", "future_upstream_theme", "HALLOWEEN"}

	for _, key := range tests {
		def := Lookup(key)
		if def.Key != DefaultKey {
			t.Errorf("Lookup(%q) = %q, want default entry", key, def.Key)
		}
	}
}

func TestHas(t *testing.T) {
	if !Has("halloween") {
		t.Error("Has(halloween) = false, want true")
	}

	if Has("arbor_day") {
		t.Error("Has(arbor_day) = true, want false")
	}
}

func TestDefaultIsNotAHoliday(t *testing.T) {
	def := Default()

	if def.Key != DefaultKey {
		t.Errorf("Default().Key = %q, want %q", def.Key, DefaultKey)
	}
}

func TestAllOrderedByKey(t *testing.T) {
	defs := All()
	keys := Keys()

	if len(defs) != len(keys) {
		t.Fatalf("All() returned %d definitions, Keys() returned %d", len(defs), len(keys))
	}

	for i, def := range defs {
		if def.Key != keys[i] {
			t.Errorf("All()[%d].Key = %q, want %q", i, def.Key, keys[i])
		}
	}
}

func TestSortByLuminance(t *testing.T) {
	colors := []string{"#ffffff", "#000000", "#fb8500"}

	sorted := SortByLuminance(colors)

	if sorted[0] != "#000000" || sorted[2] != "#ffffff" {
		t.Errorf("SortByLuminance(%v) = %v, want black first and white last", colors, sorted)
	}

	// Input must not be mutated.
	if colors[0] != "#ffffff" {
		t.Error("SortByLuminance mutated its input")
	}
}

func TestSortByLuminanceUnparseableFirst(t *testing.T) {
	sorted := SortByLuminance([]string{"#222222", "bogus"})

	if sorted[0] != "bogus" {
		t.Errorf("unparseable color should sort first, got %v", sorted)
	}
}
