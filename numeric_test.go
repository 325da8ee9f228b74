package fixedbuf

import (
	"math"
	"testing"

	"github.com/pkg/errors"
)

func TestWriteUint32LE(t *testing.T) {
	cases := []uint32{0, 10, 100, 200, 1000, 10000, 10000000, 1000000000, 2147483647, 4294967295}

	for _, val := range cases {
		b, _ := New(4)

		err := b.WriteUint32LE(val, 0)
		if err != nil {
			t.Error(err)
			return
		}

		e := []byte{
			byte(val & 0xFF),
			byte((val >> 8) & 0xFF),
			byte((val >> 16) & 0xFF),
			byte(val >> 24),
		}

		for i := 0; i < 4; i++ {
			if b.data[i] != e[i] {
				t.Errorf("pos: %v, expected: %v, got %v", i, e[i], b.data[i])
			}
		}

		back, err := b.ReadUint32LE(0)
		if err != nil {
			t.Error(err)
			return
		}
		if back != val {
			t.Errorf("expected to read back %v, got %v", val, back)
		}
	}
}

func TestWriteUint32BE(t *testing.T) {
	cases := []uint32{0, 10, 1000, 10000000, 4294967295}

	for _, val := range cases {
		b, _ := New(4)

		err := b.WriteUint32BE(val, 0)
		if err != nil {
			t.Error(err)
			return
		}

		e := []byte{
			byte(val >> 24),
			byte((val >> 16) & 0xFF),
			byte((val >> 8) & 0xFF),
			byte(val & 0xFF),
		}

		for i := 0; i < 4; i++ {
			if b.data[i] != e[i] {
				t.Errorf("pos: %v, expected: %v, got %v", i, e[i], b.data[i])
			}
		}
	}
}

func TestWriteUint64LE(t *testing.T) {
	cases := []uint64{0, 10, 100, 200, 1000, 10000, 10000000, 1000000000, 2147483647,
		4294967295, 10000000000000, 100000000000000000, 9223372036854775807, 18446744073709551615}

	for _, val := range cases {
		b, _ := New(8)

		err := b.WriteUint64LE(val, 0)
		if err != nil {
			t.Error(err)
			return
		}

		e := []byte{
			byte(val & 0xFF),
			byte((val >> 8) & 0xFF),
			byte((val >> 16) & 0xFF),
			byte((val >> 24) & 0xFF),
			byte((val >> 32) & 0xFF),
			byte((val >> 40) & 0xFF),
			byte((val >> 48) & 0xFF),
			byte(val >> 56),
		}

		for i := 0; i < 8; i++ {
			if b.data[i] != e[i] {
				t.Errorf("pos: %v, expected: %v, got %v", i, e[i], b.data[i])
			}
		}
	}
}

func TestWriteUint16(t *testing.T) {
	b, _ := New(4)

	if err := b.WriteUint16LE(0x1234, 0); err != nil {
		t.Error(err)
		return
	}
	if err := b.WriteUint16BE(0x1234, 2); err != nil {
		t.Error(err)
		return
	}

	e := []byte{0x34, 0x12, 0x12, 0x34}
	for i := range e {
		if b.data[i] != e[i] {
			t.Errorf("pos: %v, expected: %v, got %v", i, e[i], b.data[i])
		}
	}
}

func TestWriteUint8(t *testing.T) {
	b, _ := New(2)

	if err := b.WriteUint8(0xAB, 1); err != nil {
		t.Error(err)
		return
	}

	v, err := b.ReadUint8(1)
	if err != nil {
		t.Error(err)
		return
	}
	if v != 0xAB {
		t.Errorf("expected 0xAB, got %v", v)
	}
}

func TestWriteFloat64(t *testing.T) {
	cases := []float64{0, 1.5, -2.25, math.Pi, math.MaxFloat64}

	for _, val := range cases {
		b, _ := New(16)

		if err := b.WriteFloat64LE(val, 0); err != nil {
			t.Error(err)
			return
		}
		if err := b.WriteFloat64BE(val, 8); err != nil {
			t.Error(err)
			return
		}

		le, err := b.ReadFloat64LE(0)
		if err != nil {
			t.Error(err)
			return
		}
		be, err := b.ReadFloat64BE(8)
		if err != nil {
			t.Error(err)
			return
		}

		if le != val || be != val {
			t.Errorf("expected to read back %v, got %v and %v", val, le, be)
		}
	}
}

func TestNumericBounds(t *testing.T) {
	b, _ := New(4)

	// a value guaranteed to overflow the remaining space
	if err := b.WriteUint32LE(10, 2); errors.Cause(err) != ErrOutOfRange {
		t.Error("expected an out of range error for a write past the end, got", err)
	}
	if err := b.WriteUint64BE(10, 0); errors.Cause(err) != ErrOutOfRange {
		t.Error("expected an out of range error for a value wider than the buffer, got", err)
	}
	if _, err := b.ReadUint16LE(-1); errors.Cause(err) != ErrOutOfRange {
		t.Error("expected an out of range error for a negative offset, got", err)
	}
	if _, err := b.ReadUint16LE(3); errors.Cause(err) != ErrOutOfRange {
		t.Error("expected an out of range error for a read past the end, got", err)
	}

	// a failed write must leave the buffer untouched
	for i := 0; i < 4; i++ {
		if b.data[i] != 0 {
			t.Errorf("pos: %v, expected the buffer to stay zero-filled after failed writes, got %v", i, b.data[i])
		}
	}
}
