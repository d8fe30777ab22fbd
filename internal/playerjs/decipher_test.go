package playerjs

import (
	"os"
	"path/filepath"
	"testing"
)

func loadFixture(t *testing.T, name string) string {
	t.Helper()
	p := filepath.Join("testdata", name)
	b, err := os.ReadFile(p)
	if err != nil {
		t.Fatalf("failed to read fixture %s: %v", p, err)
	}
	return string(b)
}

func TestDecipherSignature_WithFixture(t *testing.T) {
	d := NewDecipherer(loadFixture(t, "synthetic_basejs_fixture.js"))
	got, err := d.DecipherSignature("abcdef")
	if err != nil {
		t.Fatalf("DecipherSignature() error = %v", err)
	}
	// reverse -> splice(0,1) -> swap(2)
	if got != "cdeba" {
		t.Fatalf("DecipherSignature() = %q, want %q", got, "cdeba")
	}
}

func TestDecipherN_WithFixture(t *testing.T) {
	d := NewDecipherer(loadFixture(t, "synthetic_basejs_fixture.js"))
	got, err := d.DecipherN("12345")
	if err != nil {
		t.Fatalf("DecipherN() error = %v", err)
	}
	if got != "2345" {
		t.Fatalf("DecipherN() = %q, want %q", got, "2345")
	}
}

func TestDecipherSignature_UnparsablePlayer(t *testing.T) {
	d := NewDecipherer("var nothing=1;")
	if _, err := d.DecipherSignature("abcdef"); err == nil {
		t.Fatal("DecipherSignature() error = nil, want parse failure")
	}
}
