package fixedbuf

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/nodedocs/fixedbuf/codec"
)

// Buffer is a fixed-length, mutable container of bytes that supports reading
// and writing anywhere within its range
//
// a Buffer created by New, From, FromBytes or FromString owns its storage. A
// Buffer returned by Slice is a view: it aliases a sub-range of another
// Buffer's storage, so writes through either are visible through both. The
// length of any Buffer never changes for its lifetime, growing means
// allocating a new one and copying.
type Buffer struct {
	data []byte
}

// New creates a Buffer of the specified size with zero-filled contents.
// A negative size is an out of range error.
func New(size int) (*Buffer, error) {
	if size < 0 {
		return nil, rangeErrorf("size %d", size)
	}

	return &Buffer{data: make([]byte, size)}, nil
}

// From creates a Buffer holding the passed values, each truncated to its low
// 8 bits
func From(values []int) *Buffer {
	data := make([]byte, len(values))
	for i, v := range values {
		data[i] = byte(v)
	}

	return &Buffer{data: data}
}

// FromBytes creates a Buffer holding a copy of the passed slice
func FromBytes(b []byte) *Buffer {
	data := make([]byte, len(b))
	copy(data, b)

	return &Buffer{data: data}
}

// FromString creates a Buffer holding the encoding of s under e. Its length
// always equals ByteLength(s, e).
func FromString(s string, e codec.Encoding) (*Buffer, error) {
	data, err := codec.Encode(s, e)
	if err != nil {
		return nil, err
	}

	return &Buffer{data: data}, nil
}

// IsBuffer returns true iff the passed value is a *Buffer, views included
func IsBuffer(v interface{}) bool {
	_, ok := v.(*Buffer)
	return ok
}

// ByteLength computes the number of bytes s occupies under e without
// allocating a Buffer. It equals FromString(s, e).Len() for every input on
// which FromString succeeds, and fails on exactly the inputs FromString
// fails on.
func ByteLength(s string, e codec.Encoding) (int, error) {
	return codec.ByteLength(s, e)
}

// Len returns the fixed size of the Buffer
func (b *Buffer) Len() int { return len(b.data) }

// Bytes returns the internal byte array of the Buffer
func (b *Buffer) Bytes() []byte { return b.data }

// Get returns the byte at index i
func (b *Buffer) Get(i int) (byte, error) {
	if i < 0 || i >= len(b.data) {
		return 0, rangeErrorf("index %d with length %d", i, len(b.data))
	}

	return b.data[i], nil
}

// Set stores v at index i, truncated to its low 8 bits
func (b *Buffer) Set(i, v int) error {
	if i < 0 || i >= len(b.data) {
		return rangeErrorf("index %d with length %d", i, len(b.data))
	}

	b.data[i] = byte(v)
	return nil
}

// Write encodes s under e and writes the bytes starting at offset, returning
// the number of bytes written. It never writes past the end of the Buffer:
// when the encoded text exceeds the remaining space only as many complete
// encoded units as fit are written, a multi byte character is never split.
// An offset that is negative or exceeds Len is an out of range error.
func (b *Buffer) Write(s string, offset int, e codec.Encoding) (int, error) {
	if offset < 0 || offset > len(b.data) {
		return 0, rangeErrorf("offset %d with length %d", offset, len(b.data))
	}

	encoded, err := codec.Encode(s, e)
	if err != nil {
		return 0, err
	}

	n := codec.CompleteUnits(e, encoded, len(b.data)-offset)
	copy(b.data[offset:], encoded[:n])

	if n < len(encoded) && logging {
		logger.Info("write truncated to complete encoded units",
			zap.String("encoding", e.String()),
			zap.Int("encoded", len(encoded)),
			zap.Int("written", n),
		)
	}

	return n, nil
}

// WriteString writes s as UTF-8 at the start of the Buffer
func (b *Buffer) WriteString(s string) (int, error) {
	return b.Write(s, 0, codec.UTF8)
}

// ToString decodes the byte range [start, end) under e. A range boundary
// that splits a multi byte sequence yields replacement runes rather than an
// error; the bounds themselves are strict.
func (b *Buffer) ToString(e codec.Encoding, start, end int) (string, error) {
	if start < 0 || end > len(b.data) || start > end {
		return "", rangeErrorf("range [%d, %d) with length %d", start, end, len(b.data))
	}

	return codec.Decode(b.data[start:end], e)
}

// String returns the whole Buffer decoded as UTF-8
func (b *Buffer) String() string {
	s, err := codec.Decode(b.data, codec.UTF8)
	if err != nil {
		return ""
	}

	return s
}

// Slice returns a view over [start, end) of the Buffer's storage, aliasing
// it rather than copying: mutating the view mutates the Buffer and vice
// versa. Out of range bounds are clamped, and start >= end yields a zero
// length view; Slice is the one operation that clamps instead of failing.
func (b *Buffer) Slice(start, end int) *Buffer {
	if start < 0 {
		start = 0
	}
	if start > len(b.data) {
		start = len(b.data)
	}
	if end > len(b.data) {
		end = len(b.data)
	}
	if end < start {
		end = start
	}

	return &Buffer{data: b.data[start:end:end]}
}

// Copy copies the byte range [sourceStart, sourceEnd) of the Buffer into
// target beginning at targetStart, by value, returning the number of bytes
// copied. Only as many bytes as fit in target are copied. sourceEnd is
// capped at the source length. Source and target may overlap in storage, the
// result is as if the source range were captured before any byte of target
// is written.
func (b *Buffer) Copy(target *Buffer, targetStart, sourceStart, sourceEnd int) (int, error) {
	if targetStart < 0 || targetStart > len(target.data) {
		return 0, rangeErrorf("target start %d with length %d", targetStart, len(target.data))
	}
	if sourceStart < 0 || sourceStart > len(b.data) {
		return 0, rangeErrorf("source start %d with length %d", sourceStart, len(b.data))
	}
	if sourceEnd < sourceStart {
		return 0, rangeErrorf("source range [%d, %d)", sourceStart, sourceEnd)
	}
	if sourceEnd > len(b.data) {
		sourceEnd = len(b.data)
	}

	n := sourceEnd - sourceStart
	if room := len(target.data) - targetStart; n > room {
		n = room
	}

	// copy has memmove semantics, so overlapping source and target ranges
	// within one storage behave as capture then paste
	copy(target.data[targetStart:targetStart+n], b.data[sourceStart:sourceStart+n])

	return n, nil
}

// Fill sets every byte in [start, end) to v truncated to its low 8 bits
func (b *Buffer) Fill(v, start, end int) error {
	if start < 0 || end > len(b.data) || start > end {
		return rangeErrorf("range [%d, %d) with length %d", start, end, len(b.data))
	}

	c := byte(v)
	for i := start; i < end; i++ {
		b.data[i] = c
	}

	return nil
}

// Equal reports whether the two Buffers hold the same bytes
func (b *Buffer) Equal(other *Buffer) bool {
	return bytes.Equal(b.data, other.data)
}

// Concat creates a new owning Buffer holding the concatenated contents of
// the passed Buffers
func Concat(list ...*Buffer) *Buffer {
	total := 0
	for _, b := range list {
		total += len(b.data)
	}

	data := make([]byte, 0, total)
	for _, b := range list {
		data = append(data, b.data...)
	}

	return &Buffer{data: data}
}

// bufferJSON is the interchange shape for Buffer values
type bufferJSON struct {
	Type string `json:"type"`
	Data []int  `json:"data"`
}

// MarshalJSON encodes the Buffer as {"type":"Buffer","data":[...]}
func (b *Buffer) MarshalJSON() ([]byte, error) {
	data := make([]int, len(b.data))
	for i, c := range b.data {
		data[i] = int(c)
	}

	return json.Marshal(bufferJSON{Type: "Buffer", Data: data})
}

// UnmarshalJSON replaces the Buffer's storage with the decoded contents, so
// it is only valid on a Buffer no view depends on
func (b *Buffer) UnmarshalJSON(raw []byte) error {
	var v bufferJSON
	if err := json.Unmarshal(raw, &v); err != nil {
		return err
	}
	if v.Type != "Buffer" {
		return errors.Errorf("cannot unmarshal a %q value into a Buffer", v.Type)
	}

	b.data = make([]byte, len(v.Data))
	for i, c := range v.Data {
		b.data[i] = byte(c)
	}

	return nil
}
