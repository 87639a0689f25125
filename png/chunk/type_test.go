package chunk_test

import (
	"errors"
	"testing"

	"pngstash.org/pngstash/png/chunk"
)

func TestTypeFromBytes(t *testing.T) {
	typ, err := chunk.NewType([4]byte{82, 117, 83, 116})
	if err != nil {
		t.Fatalf("NewType: %v", err)
	}
	if g, e := typ.Bytes(), [4]byte{'R', 'u', 'S', 't'}; g != e {
		t.Errorf("bad type bytes: %q != %q", g[:], e[:])
	}
}

func TestTypeFromString(t *testing.T) {
	typ, err := chunk.TypeFromString("RuSt")
	if err != nil {
		t.Fatalf("TypeFromString: %v", err)
	}
	fromBytes, err := chunk.NewType([4]byte{82, 117, 83, 116})
	if err != nil {
		t.Fatalf("NewType: %v", err)
	}
	if typ != fromBytes {
		t.Errorf("types not equal: %v != %v", typ, fromBytes)
	}
}

func TestTypeString(t *testing.T) {
	typ, err := chunk.TypeFromString("RuSt")
	if err != nil {
		t.Fatalf("TypeFromString: %v", err)
	}
	if g, e := typ.String(), "RuSt"; g != e {
		t.Errorf("bad rendering: %q != %q", g, e)
	}
}

func TestTypeCaseBits(t *testing.T) {
	for _, tt := range []struct {
		name     string
		critical bool
		public   bool
		reserved bool
		safe     bool
	}{
		{name: "RuSt", critical: true, public: false, reserved: true, safe: true},
		{name: "ruSt", critical: false, public: false, reserved: true, safe: true},
		{name: "RUSt", critical: true, public: true, reserved: true, safe: true},
		{name: "RuST", critical: true, public: false, reserved: true, safe: false},
		{name: "Rust", critical: true, public: false, reserved: false, safe: true},
	} {
		typ, err := chunk.TypeFromString(tt.name)
		if err != nil {
			t.Fatalf("TypeFromString %q: %v", tt.name, err)
		}
		if g, e := typ.IsCritical(), tt.critical; g != e {
			t.Errorf("%q IsCritical: %v != %v", tt.name, g, e)
		}
		if g, e := typ.IsPublic(), tt.public; g != e {
			t.Errorf("%q IsPublic: %v != %v", tt.name, g, e)
		}
		if g, e := typ.IsReservedBitValid(), tt.reserved; g != e {
			t.Errorf("%q IsReservedBitValid: %v != %v", tt.name, g, e)
		}
		if g, e := typ.IsSafeToCopy(), tt.safe; g != e {
			t.Errorf("%q IsSafeToCopy: %v != %v", tt.name, g, e)
		}
	}
}

func TestTypeValidity(t *testing.T) {
	typ, err := chunk.TypeFromString("RuSt")
	if err != nil {
		t.Fatalf("TypeFromString: %v", err)
	}
	if !typ.IsValid() {
		t.Errorf("expected %v to be valid", typ)
	}

	// Lowercase reserved bit: constructible, but not valid.
	typ, err = chunk.TypeFromString("Rust")
	if err != nil {
		t.Fatalf("TypeFromString: %v", err)
	}
	if typ.IsValid() {
		t.Errorf("expected %v to be invalid", typ)
	}
}

func TestTypeNotAlphabetic(t *testing.T) {
	_, err := chunk.TypeFromString("Ru1t")
	var invalid chunk.InvalidTypeError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidTypeError, got %v", err)
	}
	if g, e := invalid.Error(), `invalid chunk type: "Ru1t"`; g != e {
		t.Errorf("bad error message: %q != %q", g, e)
	}

	_, err = chunk.NewType([4]byte{'R', 'u', ' ', 't'})
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidTypeError, got %v", err)
	}
}

func TestTypeBadSize(t *testing.T) {
	for _, s := range []string{"", "Ru", "RuS", "RuSty"} {
		_, err := chunk.TypeFromString(s)
		var bad chunk.BadTypeSizeError
		if !errors.As(err, &bad) {
			t.Fatalf("%q: expected BadTypeSizeError, got %v", s, err)
		}
		if g, e := string(bad.Code), s; g != e {
			t.Errorf("error holds wrong code: %q != %q", g, e)
		}
	}
}
