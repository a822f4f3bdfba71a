package domain_test

import (
	"testing"

	"go.trai.ch/stanza/internal/core/domain"
)

func TestInternedString_Roundtrip(t *testing.T) {
	s := domain.NewInternedString("PackageA")
	if s.String() != "PackageA" {
		t.Errorf("String() = %q, want %q", s.String(), "PackageA")
	}
	if s.IsZero() {
		t.Error("non-empty interned string should not be zero")
	}

	var zero domain.InternedString
	if !zero.IsZero() {
		t.Error("zero value should report IsZero")
	}
}

func TestNewCanonicalString_CaseInsensitive(t *testing.T) {
	a := domain.NewCanonicalString("Newtonsoft.Json")
	b := domain.NewCanonicalString("NEWTONSOFT.JSON")
	if a != b {
		t.Error("canonical strings differing only in case should be identical")
	}
	if a.String() != "newtonsoft.json" {
		t.Errorf("String() = %q, want lowercase form", a.String())
	}
}

func TestInternedString_EqualHandlesShareStorage(t *testing.T) {
	a := domain.NewInternedString("same")
	b := domain.NewInternedString("same")
	if a != b {
		t.Error("equal strings should intern to the same handle")
	}
}
