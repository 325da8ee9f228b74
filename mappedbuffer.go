package fixedbuf

import (
	mmap "github.com/edsrzf/mmap-go"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// MappedBuffer is a Buffer whose storage lives in an anonymous memory
// mapping instead of the Go heap, for large buffers that should be handed
// back to the OS as soon as they are done with rather than waiting on the
// collector
type MappedBuffer struct {
	*Buffer
	mapping mmap.MMap
	size    int
}

// NewMapped creates a MappedBuffer of the specified size. Contents are
// zero-filled, as with New. The mapping is not backed by any file. A zero
// size yields an empty buffer with no mapping behind it, since the OS does
// not hand out zero length mappings.
func NewMapped(size int) (*MappedBuffer, error) {
	if size < 0 {
		return nil, rangeErrorf("size %d", size)
	}

	if size == 0 {
		return &MappedBuffer{Buffer: &Buffer{data: []byte{}}}, nil
	}

	m, err := mmap.MapRegion(nil, size, mmap.RDWR, mmap.ANON, 0)
	if err != nil {
		if logging {
			logger.Error("could not create anonymous mapping",
				zap.Int("size", size),
				zap.Error(err),
			)
		}
		return nil, errors.Wrapf(err, "could not map %d bytes", size)
	}

	return &MappedBuffer{
		Buffer:  &Buffer{data: m},
		mapping: m,
		size:    size,
	}, nil
}

// Unmap releases the mapping. The MappedBuffer, and any view sliced from
// it, must not be used afterwards.
func (b *MappedBuffer) Unmap() error {
	if b.mapping != nil {
		if err := b.mapping.Unmap(); err != nil {
			return err
		}
	}

	b.Buffer.data = nil
	b.mapping = nil

	return nil
}
