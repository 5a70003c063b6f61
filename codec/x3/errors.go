/*
NAME
  errors.go

DESCRIPTION
  Sentinel errors for the x3 codec.

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

import "github.com/pkg/errors"

// Parameter and encoding errors.
var (
	// ErrInvalidEncodingThresh is returned when a threshold exceeds the
	// offset of its associated Rice code.
	ErrInvalidEncodingThresh = errors.New("x3: threshold exceeds rice code offset")

	// ErrMoreThanOneChannel is returned where a single-channel operation
	// is given more than one channel of audio.
	ErrMoreThanOneChannel = errors.New("x3: more than one channel given")

	// ErrMismatchedChannelLengths is returned when a multi-channel
	// StreamEncoder call supplies an uneven number of samples per channel.
	ErrMismatchedChannelLengths = errors.New("x3: mismatched channel lengths")

	// ErrOutOfBoundsInverse is returned when a decoded Rice index falls
	// outside the bounds of the inverse code table.
	ErrOutOfBoundsInverse = errors.New("x3: rice index out of bounds of inverse table")
)

// Frame header errors.
var (
	// ErrFrameHeaderInvalidKey is returned when a frame header does not
	// begin with the "x3" key.
	ErrFrameHeaderInvalidKey = errors.New("x3: frame header missing 'x3' key")

	// ErrFrameHeaderInvalidHeaderCRC is returned when a frame header's CRC
	// does not match its content.
	ErrFrameHeaderInvalidHeaderCRC = errors.New("x3: frame header CRC mismatch")

	// ErrFrameHeaderInvalidPayloadCRC is returned when a frame payload's
	// CRC does not match its content.
	ErrFrameHeaderInvalidPayloadCRC = errors.New("x3: frame payload CRC mismatch")

	// ErrFrameHeaderInvalidPayloadLen is returned when a frame header's
	// payload length reaches beyond the available data.
	ErrFrameHeaderInvalidPayloadLen = errors.New("x3: frame header payload length invalid")

	// ErrFrameLength is returned when a frame's payload length exceeds the
	// sanity bound for a single frame.
	ErrFrameLength = errors.New("x3: frame length too long")
)

// Decoding errors.
var (
	// ErrFrameDecodeInvalidFType is returned when a block header carries
	// an ftype value this decoder does not recognise.
	ErrFrameDecodeInvalidFType = errors.New("x3: invalid block ftype")

	// ErrFrameDecodeInvalidBPF is returned when a BFP/pass-through block
	// header specifies a bit width of 5 or fewer bits.
	ErrFrameDecodeInvalidBPF = errors.New("x3: invalid BFP bit width")

	// ErrFrameDecodeUnexpectedEnd is returned when fewer bytes remain than
	// a frame header or its declared payload requires.
	ErrFrameDecodeUnexpectedEnd = errors.New("x3: unexpected end of data decoding frame")
)

// Archive errors.
var (
	// ErrArchiveHeaderInvalidKey is returned when an archive does not
	// begin with the X3ARCHIV magic.
	ErrArchiveHeaderInvalidKey = errors.New("x3a: invalid archive key")

	// ErrArchiveHeaderInvalid is returned when the archive's XML metadata
	// preamble is malformed.
	ErrArchiveHeaderInvalid = errors.New("x3a: invalid archive header")

	// ErrArchiveHeaderInvalidRiceCode is returned when the archive's XML
	// metadata names an unrecognised Rice code.
	ErrArchiveHeaderInvalidRiceCode = errors.New("x3a: invalid rice code in archive header")
)

// ErrByteSinkInsufficientMemory is returned when a fixed-size byte sink
// cannot hold the bytes it is asked to write.
var ErrByteSinkInsufficientMemory = errors.New("x3: insufficient memory in byte sink")
