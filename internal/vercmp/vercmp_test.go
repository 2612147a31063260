package vercmp

import "testing"

func TestCompare(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"1.0.0", "1.0.0", 0},
		{"1.0.0", "1.0.1", -1},
		{"1.0.1", "1.0.0", 1},
		{"1.0.0", "0.9.9", 1},
		{"0.9.9", "1.0.0", -1},

		// epoch
		{"1:1.0.0", "2.0.0", 1},
		{"2.0.0", "1:1.0.0", -1},
		{"1:1.0.0", "1:1.0.0", 0},

		// pkgrel
		{"1.0.0-1", "1.0.0-2", -1},
		{"1.0.0-2", "1.0.0-1", 1},
		{"1.0.0-1", "1.0.0", 0}, // missing release on one side: ignored
		{"1.0.0", "1.0.0-1", 0},

		// alpha vs numeric runs
		{"1.0a", "1.0", -1},
		{"1.0", "1.0a", 1},
		{"1.0a", "1.0b", -1},
		{"1.11", "1.9", 1},
		{"1.9", "1.11", -1},

		// tilde sorts below everything, including empty string
		{"1.0~beta1", "1.0", -1},
		{"1.0", "1.0~beta1", 1},
		{"1.0~beta1", "1.0~beta2", -1},
		{"1.0~~", "1.0~", -1},
		{"1.0~", "1.0", -1},

		// leading zero insensitivity in numeric runs
		{"1.01", "1.1", 0},
		{"1.001", "1.1", 0},

		// version scenarios from the worked corpus
		{"10.1", "10.0", 1},
		{"6.0.0", "6.0.0", 0},
		{"0", "1", -1},
	}

	for _, tt := range tests {
		if got := Compare(tt.a, tt.b); got != tt.want {
			t.Errorf("Compare(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
		// anti-symmetry
		if got := Compare(tt.b, tt.a); got != -tt.want {
			t.Errorf("Compare(%q, %q) = %d, want %d (anti-symmetric to above)", tt.b, tt.a, got, -tt.want)
		}
	}
}

func TestCompareReflexive(t *testing.T) {
	versions := []string{"1.0.0", "1:2.3.4-5", "1.0~beta1", "", "0", "abc123"}
	for _, v := range versions {
		if got := Compare(v, v); got != 0 {
			t.Errorf("Compare(%q, %q) = %d, want 0", v, v, got)
		}
	}
}

func TestCompareTransitive(t *testing.T) {
	a, b, c := "1.0.0", "1.5.0", "2.0.0"
	if Compare(a, b) >= 0 {
		t.Fatalf("expected %q < %q", a, b)
	}
	if Compare(b, c) >= 0 {
		t.Fatalf("expected %q < %q", b, c)
	}
	if Compare(a, c) >= 0 {
		t.Fatalf("expected %q < %q (transitivity)", a, c)
	}
}
