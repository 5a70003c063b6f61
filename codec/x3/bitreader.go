/*
NAME
  bitreader.go

DESCRIPTION
  BitReader reads individual bits MSB-first from a byte slice, including
  the unary zero-counting primitive the Rice decoder needs.

AUTHOR
  Saxon Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package x3

import (
	"bytes"

	"github.com/icza/bitio"
)

// BitReader reads bits MSB-first from an in-memory byte slice. Plain
// n-bit reads are delegated to bitio.Reader; CountZeroBits implements the
// unary Rice-prefix primitive bitio has no equivalent for.
type BitReader struct {
	r   *bitio.Reader
	one bool // a one bit found by CountZeroBits and not yet consumed
}

// NewBitReader returns a BitReader over b.
func NewBitReader(b []byte) *BitReader {
	return &BitReader{r: bitio.NewReader(bytes.NewReader(b))}
}

// ReadNBits reads the next numBits bits as an unsigned value, numBits in
// [0, 32].
func (r *BitReader) ReadNBits(numBits int) (uint32, error) {
	if numBits == 0 {
		return 0, nil
	}
	var hi uint32
	if r.one {
		r.one = false
		hi = 1
		numBits--
		if numBits == 0 {
			return 1, nil
		}
	}
	v, err := r.r.ReadBits(uint8(numBits))
	if err != nil {
		return 0, err
	}
	return hi<<uint(numBits) | uint32(v), nil
}

// CountZeroBits counts consecutive zero bits until (and not including) the
// next one bit, returning io.EOF if the data runs out before a one bit is
// found. The one bit is not consumed: the next ReadNBits call returns it as
// its first bit. This is the unary prefix used by every Rice-coded sample.
func (r *BitReader) CountZeroBits() (int, error) {
	if r.one {
		return 0, nil
	}
	n := 0
	for {
		b, err := r.r.ReadBits(1)
		if err != nil {
			return n, err
		}
		if b != 0 {
			r.one = true
			return n, nil
		}
		n++
	}
}
