package tripaint

import "testing"

func TestDefaultPalette(t *testing.T) {
	if len(DefaultPalette) != 45 {
		t.Fatalf("palette has %d colors, want 45", len(DefaultPalette))
	}
	seen := make(map[[3]uint8]int, len(DefaultPalette))
	for i, c := range DefaultPalette {
		if c.A != 255 {
			t.Errorf("color %d alpha = %d, want 255", i, c.A)
		}
		key := [3]uint8{c.R, c.G, c.B}
		if j, dup := seen[key]; dup {
			t.Errorf("color %d duplicates color %d", i, j)
		}
		seen[key] = i
	}
}
