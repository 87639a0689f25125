package png

import (
	"fmt"

	"pngstash.org/pngstash/png/chunk"
)

// BadSignatureError is the type of error returned when a buffer does
// not begin with the PNG signature.
type BadSignatureError struct {
	Header []byte
}

var _ = error(BadSignatureError{})

func (e BadSignatureError) Error() string {
	return fmt.Sprintf("invalid header: %x", e.Header)
}

// NotFoundError is the type of error returned when no chunk of the
// requested type exists in the image.
type NotFoundError struct {
	Type chunk.Type
}

var _ = error(NotFoundError{})

func (e NotFoundError) Error() string {
	return fmt.Sprintf("no such chunk: %v", e.Type)
}
