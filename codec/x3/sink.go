/*
NAME
  sink.go

DESCRIPTION
  FixedSink is a fixed-capacity io.Writer over a caller-supplied byte
  slice, for embedding contexts (fixed recording buffers, ring buffers)
  that cannot afford the allocation a growing io.Writer like
  bytes.Buffer would make on every frame.

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

// FixedSink is an io.Writer over a pre-allocated byte slice that never
// grows. Write fails with ErrByteSinkInsufficientMemory rather than
// reallocating once the slice is exhausted.
type FixedSink struct {
	buf []byte
	n   int
}

// NewFixedSink returns a FixedSink backed by buf, writing from its start.
func NewFixedSink(buf []byte) *FixedSink {
	return &FixedSink{buf: buf}
}

// Write copies p into the sink, failing if p does not fit in the
// remaining capacity.
func (s *FixedSink) Write(p []byte) (int, error) {
	if len(p) > len(s.buf)-s.n {
		return 0, ErrByteSinkInsufficientMemory
	}
	copy(s.buf[s.n:], p)
	s.n += len(p)
	return len(p), nil
}

// Bytes returns the portion of the backing slice written so far.
func (s *FixedSink) Bytes() []byte { return s.buf[:s.n] }

// Len returns the number of bytes written so far.
func (s *FixedSink) Len() int { return s.n }
