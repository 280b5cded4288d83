package chunk

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/klauspost/compress/snappy"
)

var (
	// ErrChecksumMismatch is returned by DecodeChunk when the stored checksum
	// of a chunk payload does not match its content, indicating corruption.
	ErrChecksumMismatch = errors.New("chunk payload checksum mismatch")
	// ErrMalformedChunk is returned by DecodeChunk when a chunk payload is
	// structurally invalid.
	ErrMalformedChunk = errors.New("malformed chunk payload")
)

// Encode encodes the chunk to an opaque binary payload suitable for storage.
// The payload is snappy compressed and prefixed with an xxhash checksum of the
// compressed data.
func (c *Chunk) Encode() []byte {
	raw := make([]byte, 0, 6+4*len(c.palette)+2*len(c.blocks))
	raw = binary.LittleEndian.AppendUint32(raw, c.air)
	raw = binary.LittleEndian.AppendUint16(raw, uint16(len(c.palette)))
	for _, rid := range c.palette {
		raw = binary.LittleEndian.AppendUint32(raw, rid)
	}
	for _, i := range c.blocks {
		raw = binary.LittleEndian.AppendUint16(raw, i)
	}
	compressed := snappy.Encode(nil, raw)

	payload := make([]byte, 8, 8+len(compressed))
	binary.LittleEndian.PutUint64(payload, xxhash.Sum64(compressed))
	return append(payload, compressed...)
}

// DecodeChunk decodes a chunk from a payload produced by Encode. It returns
// ErrChecksumMismatch if the payload was corrupted after encoding and
// ErrMalformedChunk if it cannot be interpreted.
func DecodeChunk(payload []byte) (*Chunk, error) {
	if len(payload) < 8 {
		return nil, fmt.Errorf("decode chunk: %w: payload of %v bytes", ErrMalformedChunk, len(payload))
	}
	sum, compressed := binary.LittleEndian.Uint64(payload[:8]), payload[8:]
	if xxhash.Sum64(compressed) != sum {
		return nil, fmt.Errorf("decode chunk: %w", ErrChecksumMismatch)
	}
	raw, err := snappy.Decode(nil, compressed)
	if err != nil {
		return nil, fmt.Errorf("decode chunk: %w: %v", ErrMalformedChunk, err)
	}
	if len(raw) < 6 {
		return nil, fmt.Errorf("decode chunk: %w: truncated header", ErrMalformedChunk)
	}
	air := binary.LittleEndian.Uint32(raw[:4])
	paletteLen := int(binary.LittleEndian.Uint16(raw[4:6]))
	raw = raw[6:]
	if paletteLen == 0 || len(raw) != 4*paletteLen+2*Width*Width*Height {
		return nil, fmt.Errorf("decode chunk: %w: unexpected body size", ErrMalformedChunk)
	}

	c := New(air)
	c.palette = make([]uint32, paletteLen)
	for i := range c.palette {
		c.palette[i] = binary.LittleEndian.Uint32(raw[4*i:])
		c.lookup.Put(int64(c.palette[i]), int64(i))
	}
	raw = raw[4*paletteLen:]
	for i := range c.blocks {
		idx := binary.LittleEndian.Uint16(raw[2*i:])
		if int(idx) >= paletteLen {
			return nil, fmt.Errorf("decode chunk: %w: palette index out of range", ErrMalformedChunk)
		}
		c.blocks[i] = idx
	}
	return c, nil
}
