package chunk

import (
	"fmt"
)

// InvalidTypeError is the type of error returned when chunk type
// bytes are not all ASCII letters.
type InvalidTypeError struct {
	Code []byte
}

var _ = error(InvalidTypeError{})

func (e InvalidTypeError) Error() string {
	return fmt.Sprintf("invalid chunk type: %q", e.Code)
}

// BadTypeSizeError is the type of error returned when text given for
// a chunk type code is not exactly TypeSize bytes long.
type BadTypeSizeError struct {
	Code []byte
}

var _ = error(BadTypeSizeError{})

func (e BadTypeSizeError) Error() string {
	return fmt.Sprintf("chunk type is bad length %d: %q", len(e.Code), e.Code)
}

// TruncatedError is the type of error returned when a buffer is too
// short to contain the structure it declares.
type TruncatedError struct {
	Need int
	Have int
}

var _ = error(TruncatedError{})

func (e TruncatedError) Error() string {
	return fmt.Sprintf("chunk truncated: need %d bytes, have %d", e.Need, e.Have)
}

// CRCError is the type of error returned when the checksum stored in
// a chunk does not match the checksum recomputed from its content.
type CRCError struct {
	Stored   uint32
	Computed uint32
}

var _ = error(CRCError{})

func (e CRCError) Error() string {
	return fmt.Sprintf("invalid crc: stored %d, computed %d", e.Stored, e.Computed)
}

// NotTextError is the type of error returned when chunk data is
// requested as text but is not valid UTF-8.
type NotTextError struct{}

var _ = error(NotTextError{})

func (NotTextError) Error() string {
	return "chunk data is not valid UTF-8"
}
