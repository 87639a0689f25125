// Package chunk implements the binary record format PNG images are
// built from: a length-prefixed, CRC-checked payload tagged with a
// four-letter type code.
package chunk

import (
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"unicode/utf8"
)

// Overhead is the serialized size of a chunk with an empty payload:
// four bytes of length, four of type code, four of checksum.
const Overhead = 12

// Chunk is a single record in a PNG image. The payload is opaque at
// this layer; the checksum covers the type code and the payload.
//
// A Chunk is immutable once constructed, and its Data is considered
// read-only and must not be modified.
type Chunk struct {
	typ  Type
	data []byte
	crc  uint32
}

func checksum(typ Type, data []byte) uint32 {
	code := typ.Bytes()
	crc := crc32.Update(0, crc32.IEEETable, code[:])
	return crc32.Update(crc, crc32.IEEETable, data)
}

// New makes a Chunk carrying the given payload. The checksum is
// computed here, so the result is consistent by construction.
//
// New takes ownership of data; the caller must not modify it
// afterwards.
func New(typ Type, data []byte) *Chunk {
	return &Chunk{
		typ:  typ,
		data: data,
		crc:  checksum(typ, data),
	}
}

// Decode extracts a Chunk from the beginning of buf.
//
// The buffer must hold a complete record: at least Overhead bytes,
// and at least as many payload bytes as the length field declares.
// Bytes past the end of the record are ignored.
//
// Returns TruncatedError if the buffer is too short, InvalidTypeError
// if the type bytes are not letters, and CRCError if the stored
// checksum does not match the recomputed one. The payload is copied
// out of buf, so the Chunk stays valid after the caller reuses the
// buffer.
func Decode(buf []byte) (*Chunk, error) {
	if len(buf) < Overhead {
		return nil, TruncatedError{Need: Overhead, Have: len(buf)}
	}

	length := binary.BigEndian.Uint32(buf[0:4])

	var code [TypeSize]byte
	copy(code[:], buf[4:8])
	typ, err := NewType(code)
	if err != nil {
		return nil, err
	}

	if uint64(len(buf)) < Overhead+uint64(length) {
		return nil, TruncatedError{
			Need: Overhead + int(length),
			Have: len(buf),
		}
	}
	data := make([]byte, length)
	copy(data, buf[8:8+length])
	stored := binary.BigEndian.Uint32(buf[8+length : 12+length])

	if computed := checksum(typ, data); stored != computed {
		return nil, CRCError{Stored: stored, Computed: computed}
	}

	return &Chunk{
		typ:  typ,
		data: data,
		crc:  stored,
	}, nil
}

// Length returns the byte count of the payload.
func (c *Chunk) Length() uint32 {
	return uint32(len(c.data))
}

// Type returns the type code of the chunk.
func (c *Chunk) Type() Type {
	return c.typ
}

// Data returns the payload of the chunk.
//
// The returned slice is the chunk's own storage and must not be
// modified.
func (c *Chunk) Data() []byte {
	return c.data
}

// CRC returns the checksum of the chunk, covering the type code and
// the payload.
func (c *Chunk) CRC() uint32 {
	return c.crc
}

// DataAsString interprets the payload as text.
//
// Returns NotTextError if the payload is not valid UTF-8.
func (c *Chunk) DataAsString() (string, error) {
	if !utf8.Valid(c.data) {
		return "", NotTextError{}
	}
	return string(c.data), nil
}

// AsBytes serializes the chunk to its wire format: big-endian length,
// type code, payload, big-endian checksum. The result is the exact
// inverse of Decode.
func (c *Chunk) AsBytes() []byte {
	buf := make([]byte, Overhead+len(c.data))
	binary.BigEndian.PutUint32(buf[0:4], c.Length())
	code := c.typ.Bytes()
	copy(buf[4:8], code[:])
	copy(buf[8:], c.data)
	binary.BigEndian.PutUint32(buf[8+len(c.data):], c.crc)
	return buf
}

// String returns a multi-line diagnostic summary of the chunk. The
// payload itself is not included; use Data or DataAsString for that.
func (c *Chunk) String() string {
	return fmt.Sprintf("Chunk{\n\tLength: %d\n\tType: %v\n\tData: %d bytes\n\tCrc: %d\n}",
		c.Length(), c.typ, len(c.data), c.crc)
}
