// Package png models a PNG image as what it is on disk: a fixed
// signature followed by an ordered sequence of chunks.
//
// The model is deliberately structural. It validates byte-level chunk
// integrity but enforces none of the PNG ordering conventions, so
// callers can build images the standard would frown on; that
// permissiveness is what makes appending arbitrary chunks possible.
package png

import (
	"bytes"

	"pngstash.org/pngstash/png/chunk"
)

// signature is the fixed magic sequence that opens every PNG file.
const signature = "\x89PNG\r\n\x1a\n"

// SignatureSize is the length of the PNG signature in bytes.
const SignatureSize = len(signature)

// Signature returns a copy of the fixed 8-byte PNG signature.
func Signature() []byte {
	return []byte(signature)
}

// Image is an ordered sequence of chunks. It owns its chunks
// exclusively; chunk order is significant and is preserved by every
// operation.
type Image struct {
	chunks []*chunk.Chunk
}

// New makes an empty Image holding no chunks.
func New() *Image {
	return &Image{}
}

// FromChunks makes an Image holding the given chunks, in order.
// The Image takes ownership of the slice.
func FromChunks(chunks []*chunk.Chunk) *Image {
	return &Image{chunks: chunks}
}

// Decode parses a complete PNG byte buffer.
//
// The buffer must begin with the PNG signature and the rest of it
// must be exactly a sequence of chunks, with no trailing or leading
// garbage between them. The first chunk that fails to decode aborts
// the whole parse.
//
// Returns BadSignatureError if the signature is wrong; chunk decode
// errors propagate as is.
func Decode(buf []byte) (*Image, error) {
	if len(buf) < SignatureSize || !bytes.Equal(buf[:SignatureSize], []byte(signature)) {
		head := buf
		if len(head) > SignatureSize {
			head = head[:SignatureSize]
		}
		return nil, BadSignatureError{Header: head}
	}

	img := New()
	for off := SignatureSize; off < len(buf); {
		c, err := chunk.Decode(buf[off:])
		if err != nil {
			return nil, err
		}
		img.chunks = append(img.chunks, c)
		off += chunk.Overhead + int(c.Length())
	}
	return img, nil
}

// Chunks returns the chunks of the image in file order.
//
// The returned slice is the image's own storage; it is only valid
// until the next mutation and must not be modified.
func (img *Image) Chunks() []*chunk.Chunk {
	return img.chunks
}

// ChunkByType returns the first chunk whose type code renders as
// name, or nil if there is none.
func (img *Image) ChunkByType(name string) *chunk.Chunk {
	for _, c := range img.chunks {
		if c.Type().String() == name {
			return c
		}
	}
	return nil
}

// AppendChunk adds a chunk to the end of the image.
//
// No structural rules are enforced; in particular nothing stops the
// caller from appending after an IEND chunk, which is exactly where
// viewers ignore extra data.
func (img *Image) AppendChunk(c *chunk.Chunk) {
	img.chunks = append(img.chunks, c)
}

// RemoveChunk removes the first chunk of the named type, preserving
// the order of the rest, and returns the removed chunk.
//
// The name must parse as a chunk type code; those errors propagate.
// Returns NotFoundError if the image holds no chunk of that type.
func (img *Image) RemoveChunk(name string) (*chunk.Chunk, error) {
	typ, err := chunk.TypeFromString(name)
	if err != nil {
		return nil, err
	}
	for i, c := range img.chunks {
		if c.Type() == typ {
			img.chunks = append(img.chunks[:i], img.chunks[i+1:]...)
			return c, nil
		}
	}
	return nil, NotFoundError{Type: typ}
}

// AsBytes serializes the image: the signature followed by every chunk
// in order. Absent mutation, this is the exact inverse of Decode.
func (img *Image) AsBytes() []byte {
	var buf bytes.Buffer
	buf.WriteString(signature)
	for _, c := range img.chunks {
		buf.Write(c.AsBytes())
	}
	return buf.Bytes()
}
