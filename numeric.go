package fixedbuf

import (
	"encoding/binary"
	"math"
)

// fixed-width accessors, addressed by offset rather than a cursor so that
// independent readers and writers of one Buffer do not have to coordinate a
// position

func (b *Buffer) checkWidth(offset, width int) error {
	if offset < 0 || offset+width > len(b.data) {
		return rangeErrorf("%d bytes at offset %d with length %d", width, offset, len(b.data))
	}

	return nil
}

// ReadUint8 reads the byte at offset
func (b *Buffer) ReadUint8(offset int) (uint8, error) {
	if err := b.checkWidth(offset, 1); err != nil {
		return 0, err
	}
	return b.data[offset], nil
}

// WriteUint8 writes val at offset
func (b *Buffer) WriteUint8(val uint8, offset int) error {
	if err := b.checkWidth(offset, 1); err != nil {
		return err
	}
	b.data[offset] = val
	return nil
}

// ReadUint16LE reads a little-endian uint16 at offset
func (b *Buffer) ReadUint16LE(offset int) (uint16, error) {
	if err := b.checkWidth(offset, 2); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b.data[offset:]), nil
}

// ReadUint16BE reads a big-endian uint16 at offset
func (b *Buffer) ReadUint16BE(offset int) (uint16, error) {
	if err := b.checkWidth(offset, 2); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b.data[offset:]), nil
}

// WriteUint16LE writes val as a little-endian uint16 at offset
func (b *Buffer) WriteUint16LE(val uint16, offset int) error {
	if err := b.checkWidth(offset, 2); err != nil {
		return err
	}
	binary.LittleEndian.PutUint16(b.data[offset:], val)
	return nil
}

// WriteUint16BE writes val as a big-endian uint16 at offset
func (b *Buffer) WriteUint16BE(val uint16, offset int) error {
	if err := b.checkWidth(offset, 2); err != nil {
		return err
	}
	binary.BigEndian.PutUint16(b.data[offset:], val)
	return nil
}

// ReadUint32LE reads a little-endian uint32 at offset
func (b *Buffer) ReadUint32LE(offset int) (uint32, error) {
	if err := b.checkWidth(offset, 4); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b.data[offset:]), nil
}

// ReadUint32BE reads a big-endian uint32 at offset
func (b *Buffer) ReadUint32BE(offset int) (uint32, error) {
	if err := b.checkWidth(offset, 4); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b.data[offset:]), nil
}

// WriteUint32LE writes val as a little-endian uint32 at offset
func (b *Buffer) WriteUint32LE(val uint32, offset int) error {
	if err := b.checkWidth(offset, 4); err != nil {
		return err
	}
	binary.LittleEndian.PutUint32(b.data[offset:], val)
	return nil
}

// WriteUint32BE writes val as a big-endian uint32 at offset
func (b *Buffer) WriteUint32BE(val uint32, offset int) error {
	if err := b.checkWidth(offset, 4); err != nil {
		return err
	}
	binary.BigEndian.PutUint32(b.data[offset:], val)
	return nil
}

// ReadUint64LE reads a little-endian uint64 at offset
func (b *Buffer) ReadUint64LE(offset int) (uint64, error) {
	if err := b.checkWidth(offset, 8); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b.data[offset:]), nil
}

// ReadUint64BE reads a big-endian uint64 at offset
func (b *Buffer) ReadUint64BE(offset int) (uint64, error) {
	if err := b.checkWidth(offset, 8); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(b.data[offset:]), nil
}

// WriteUint64LE writes val as a little-endian uint64 at offset
func (b *Buffer) WriteUint64LE(val uint64, offset int) error {
	if err := b.checkWidth(offset, 8); err != nil {
		return err
	}
	binary.LittleEndian.PutUint64(b.data[offset:], val)
	return nil
}

// WriteUint64BE writes val as a big-endian uint64 at offset
func (b *Buffer) WriteUint64BE(val uint64, offset int) error {
	if err := b.checkWidth(offset, 8); err != nil {
		return err
	}
	binary.BigEndian.PutUint64(b.data[offset:], val)
	return nil
}

// ReadFloat64LE reads a little-endian float64 at offset
func (b *Buffer) ReadFloat64LE(offset int) (float64, error) {
	bits, err := b.ReadUint64LE(offset)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(bits), nil
}

// ReadFloat64BE reads a big-endian float64 at offset
func (b *Buffer) ReadFloat64BE(offset int) (float64, error) {
	bits, err := b.ReadUint64BE(offset)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(bits), nil
}

// WriteFloat64LE writes val as a little-endian float64 at offset
func (b *Buffer) WriteFloat64LE(val float64, offset int) error {
	return b.WriteUint64LE(math.Float64bits(val), offset)
}

// WriteFloat64BE writes val as a big-endian float64 at offset
func (b *Buffer) WriteFloat64BE(val float64, offset int) error {
	return b.WriteUint64BE(math.Float64bits(val), offset)
}
