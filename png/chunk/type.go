package chunk

// Size of a chunk type code in bytes.
const TypeSize = 4

// A Type identifies the purpose of a chunk. It is exactly four ASCII
// letters; the case of each letter carries the ancillary-bit metadata
// defined by the PNG specification. Types are immutable and can be
// compared with ==.
type Type struct {
	code [TypeSize]byte
}

func isAlphabetic(c byte) bool {
	return 'A' <= c && c <= 'Z' || 'a' <= c && c <= 'z'
}

func isUpper(c byte) bool {
	return 'A' <= c && c <= 'Z'
}

// NewType makes a Type from the given four bytes.
//
// Returns InvalidTypeError if any byte is not an ASCII letter.
func NewType(code [TypeSize]byte) (Type, error) {
	for _, c := range code {
		if !isAlphabetic(c) {
			return Type{}, InvalidTypeError{Code: code[:]}
		}
	}
	return Type{code: code}, nil
}

// TypeFromString makes a Type from a text value.
//
// Returns BadTypeSizeError if the text is not exactly four bytes
// long, and InvalidTypeError if any byte is not an ASCII letter.
func TypeFromString(s string) (Type, error) {
	if len(s) != TypeSize {
		return Type{}, BadTypeSizeError{Code: []byte(s)}
	}
	var code [TypeSize]byte
	copy(code[:], s)
	return NewType(code)
}

// Bytes returns a copy of the byte content of the type code.
func (t Type) Bytes() [TypeSize]byte {
	return t.code
}

// IsCritical reports whether a chunk of this type is required for
// correct display of the image, as opposed to ancillary.
func (t Type) IsCritical() bool {
	return isUpper(t.code[0])
}

// IsPublic reports whether the type is in the public, registered
// namespace, as opposed to application private.
func (t Type) IsPublic() bool {
	return isUpper(t.code[1])
}

// IsReservedBitValid reports whether the reserved bit conforms to the
// current PNG specification.
func (t Type) IsReservedBitValid() bool {
	return isUpper(t.code[2])
}

// IsSafeToCopy reports whether editors that do not recognize the type
// may copy the chunk to a modified image.
func (t Type) IsSafeToCopy() bool {
	return !isUpper(t.code[3])
}

// IsValid reports whether the type conforms to the reserved bit
// convention. A Type can be constructed successfully and still be
// invalid in this sense; construction checks only that the bytes are
// letters.
func (t Type) IsValid() bool {
	return t.IsReservedBitValid()
}

// String returns the type code as text. The alphabetic constraint
// enforced at construction means the bytes are always valid UTF-8.
func (t Type) String() string {
	return string(t.code[:])
}
