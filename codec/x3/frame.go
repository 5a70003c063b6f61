/*
NAME
  frame.go

DESCRIPTION
  Frame-level encode/decode: the 20-byte CRC-protected header, and the
  "x3" key resynchronisation scan used to recover from corrupted frames.

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
	"encoding/binary"
	"io"
)

// Frame header layout. The header is 20 bytes: a 2-byte "x3" key, a
// 1-byte source id, a 1-byte channel count, a 2-byte sample count, a
// 2-byte payload length, an 8-byte time field, a 2-byte header CRC and a
// 2-byte payload CRC.
const (
	frameHeaderLength = 20
	frameKey          = uint16(0x7833) // "x3"

	pKey          = 0
	pSourceID     = 2
	pChannels     = 3
	pSamples      = 4
	pPayloadSize  = 6
	pTime         = 8
	pHeaderCRC    = 16
	pPayloadCRC   = 18
)

// MaxFrameLength is the largest payload length a frame header may declare.
// A payload length at or beyond this bound is rejected as corrupt, per the
// protocol's reserved high range of the 16-bit payload length field.
const MaxFrameLength = 0x7fe0

// FrameHeaderLength is the exported form of frameHeaderLength, for
// callers outside the package that need to size buffers around a frame
// header (the archive container, notably).
const FrameHeaderLength = frameHeaderLength

// FrameHeader is the parsed form of a decoded frame header.
type FrameHeader struct {
	SourceID   byte
	Channels   byte
	Samples    uint16
	PayloadLen int
	PayloadCRC uint16
}

// writeFrameHeader builds the 20-byte frame header for a frame whose
// payload (of payloadLen bytes, with payloadCRC already computed) follows
// immediately in the stream.
func writeFrameHeader(numSamples int, sourceID, channels byte, payloadLen int, payloadCRC uint16) []byte {
	h := make([]byte, frameHeaderLength)
	binary.BigEndian.PutUint16(h[pKey:], frameKey)
	h[pSourceID] = sourceID
	h[pChannels] = channels
	binary.BigEndian.PutUint16(h[pSamples:], uint16(numSamples))
	binary.BigEndian.PutUint16(h[pPayloadSize:], uint16(payloadLen))
	// <Time>: left zero; stamping is a caller/container concern.
	headerCRC := crc16(h[:pHeaderCRC])
	binary.BigEndian.PutUint16(h[pHeaderCRC:], headerCRC)
	binary.BigEndian.PutUint16(h[pPayloadCRC:], payloadCRC)
	return h
}

// encodeFrame encodes one frame's worth of samples (up to
// params.BlockLen*params.BlocksPerFrame) into a self-contained, headered
// byte slice.
func encodeFrame(wav []int16, params Parameters, stats *Stats) []byte {
	bw := NewBitWriter(frameHeaderLength + 2*len(wav))
	bw.Bookmark()
	if err := bw.IncCounterNBytes(frameHeaderLength); err != nil {
		panic(err) // bw is freshly bookmarked and byte aligned; can't happen.
	}

	// <Audio State>: the first sample, written raw.
	bw.WriteBits(uint32(uint16(wav[0])), WavBitSize)

	wavDiff := diff(wav[0], wav[1:])

	rest := wav[1:]
	for off := 0; off < len(rest); off += params.BlockLen {
		end := off + params.BlockLen
		if end > len(rest) {
			end = len(rest)
		}
		before := bw.Len()
		ftype := encodeBlock(bw, rest[off:end], wavDiff[off:end], params)
		if stats != nil {
			n := end - off
			stats.add(ftype, n)
			stats.addBitWidth(8 * float64(bw.Len()-before) / float64(n))
		}
	}

	bw.WordAlign()

	payload := bw.BookmarkFrom()[frameHeaderLength:]
	payloadCRC := crc16(payload)
	header := writeFrameHeader(len(wav), 1, 1, len(payload), payloadCRC)
	bw.BookmarkWrite(header)

	return bw.Bytes()
}

// readFrameHeader parses and CRC-validates the frame header at the start
// of b, which must be at least frameHeaderLength bytes long.
func readFrameHeader(b []byte) (FrameHeader, error) {
	if len(b) < frameHeaderLength {
		return FrameHeader{}, ErrFrameDecodeUnexpectedEnd
	}

	headerCRC := crc16(b[:pHeaderCRC])
	expectedHeaderCRC := binary.BigEndian.Uint16(b[pHeaderCRC:])
	if expectedHeaderCRC != headerCRC {
		return FrameHeader{}, ErrFrameHeaderInvalidHeaderCRC
	}

	key := binary.BigEndian.Uint16(b[pKey:])
	if key != frameKey {
		return FrameHeader{}, ErrFrameHeaderInvalidKey
	}

	channels := b[pChannels]
	if channels > 1 {
		return FrameHeader{}, ErrMoreThanOneChannel
	}

	samples := binary.BigEndian.Uint16(b[pSamples:])
	payloadLen := int(binary.BigEndian.Uint16(b[pPayloadSize:]))
	if payloadLen >= MaxFrameLength {
		return FrameHeader{}, ErrFrameLength
	}

	payloadCRC := binary.BigEndian.Uint16(b[pPayloadCRC:])

	return FrameHeader{
		SourceID:   b[pSourceID],
		Channels:   channels,
		Samples:    samples,
		PayloadLen: payloadLen,
		PayloadCRC: payloadCRC,
	}, nil
}

// decodeFrame decodes one frame given its header and immediately-following
// payload bytes, writing samples into wavBuf (which must be at least
// hdr.Samples long) and returning the number of samples written.
func decodeFrame(hdr FrameHeader, payload []byte, wavBuf []int16, params Parameters) (int, error) {
	if len(payload) < hdr.PayloadLen {
		return 0, ErrFrameHeaderInvalidPayloadLen
	}
	if crc16(payload[:hdr.PayloadLen]) != hdr.PayloadCRC {
		return 0, ErrFrameHeaderInvalidPayloadCRC
	}

	lastWav := int16(binary.BigEndian.Uint16(payload))
	wavBuf[0] = lastWav
	pWav := 1

	br := NewBitReader(payload[2:hdr.PayloadLen])
	remaining := int(hdr.Samples) - 1
	for remaining > 0 {
		blockLen := params.BlockLen
		if remaining < blockLen {
			blockLen = remaining
		}
		if err := decodeBlock(br, wavBuf[pWav:pWav+blockLen], &lastWav, params); err != nil {
			return pWav, err
		}
		remaining -= blockLen
		pWav += blockLen
	}

	return pWav, nil
}

// EncodeMetadataFrame wraps payload (typically XML archive metadata) in a
// headered, CRC-protected frame with no sample content, for use as the
// archive container's single metadata pseudo-frame.
func EncodeMetadataFrame(payload []byte) []byte {
	header := writeFrameHeader(0, 0, 0, len(payload), crc16(payload))
	return append(header, payload...)
}

// DecodeMetadataFrame reads and validates a metadata pseudo-frame written
// by EncodeMetadataFrame, returning its payload.
func DecodeMetadataFrame(r io.Reader) ([]byte, error) {
	h := make([]byte, frameHeaderLength)
	if _, err := io.ReadFull(r, h); err != nil {
		return nil, err
	}
	hdr, err := readFrameHeader(h)
	if err != nil {
		return nil, err
	}
	payload := make([]byte, hdr.PayloadLen)
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, ErrFrameDecodeUnexpectedEnd
	}
	if crc16(payload) != hdr.PayloadCRC {
		return nil, ErrFrameHeaderInvalidPayloadCRC
	}
	return payload, nil
}

// findFrameKey scans b for the next occurrence of the "x3" key, returning
// its byte offset, or -1 if the key does not occur in b. It is used to
// resynchronise a frame stream after a corrupted frame is detected.
func findFrameKey(b []byte) int {
	for i := 0; i+1 < len(b); i++ {
		if b[i] == 'x' && b[i+1] == '3' {
			return i
		}
	}
	return -1
}

// DecodeBuffer decodes every frame in b (a fully in-memory .bin stream: a
// bare concatenation of x3 frames with no archive magic or metadata),
// resynchronising on "x3" keys whenever a corrupted header or payload is
// encountered. It returns the concatenated decoded samples and the number
// of bytes of b that were skipped while resynchronising.
func DecodeBuffer(b []byte, params Parameters) ([]int16, int, error) {
	var out []int16
	skipped := 0

	for len(b) > 0 {
		if len(b) < frameHeaderLength {
			break
		}

		hdr, err := readFrameHeader(b)
		if err == nil {
			total := frameHeaderLength + hdr.PayloadLen
			if total > len(b) {
				return out, skipped, ErrFrameDecodeUnexpectedEnd
			}

			wav := make([]int16, hdr.Samples)
			var n int
			n, err = decodeFrame(hdr, b[frameHeaderLength:total], wav, params)
			if err == nil {
				out = append(out, wav[:n]...)
				b = b[total:]
				continue
			}
		}

		// Any failure other than running out of data means a corrupted
		// header or payload: advance one byte and scan forward for the
		// next "x3" key rather than abandoning the rest of the stream.
		if err == ErrFrameDecodeUnexpectedEnd {
			return out, skipped, err
		}

		k := findFrameKey(b[1:])
		if k < 0 {
			break
		}
		skipped += k + 1
		b = b[k+1:]
		Log.Debug("x3 resync: skipped bytes searching for frame key", "skipped", skipped, "error", err.Error())
	}

	return out, skipped, nil
}
