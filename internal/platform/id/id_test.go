package id

import (
	"strings"
	"testing"
)

func TestNewIDIsLowercaseBase32UUID(t *testing.T) {
	value, err := NewID()
	if err != nil {
		t.Fatalf("NewID() error = %v", err)
	}
	if len(value) != 26 {
		t.Fatalf("len(NewID()) = %d, want 26", len(value))
	}
	for _, r := range value {
		if (r < 'a' || r > 'z') && (r < '2' || r > '7') {
			t.Fatalf("unexpected character %q in %q", r, value)
		}
	}

	raw, err := encoding.DecodeString(strings.ToUpper(value))
	if err != nil {
		t.Fatalf("decode %q: %v", value, err)
	}
	if len(raw) != 16 {
		t.Fatalf("decoded bytes = %d, want 16", len(raw))
	}
	if version := raw[6] >> 4; version != 4 {
		t.Fatalf("version = %d, want 4", version)
	}
	if variant := raw[8] & 0xC0; variant != 0x80 {
		t.Fatalf("variant = 0x%X, want 0x80", variant)
	}
}

func TestNewIDDoesNotRepeat(t *testing.T) {
	seen := make(map[string]struct{}, 256)
	for range 256 {
		value, err := NewID()
		if err != nil {
			t.Fatalf("NewID() error = %v", err)
		}
		if _, ok := seen[value]; ok {
			t.Fatalf("duplicate id %q", value)
		}
		seen[value] = struct{}{}
	}
}
