/*
NAME
  stream.go

DESCRIPTION
  StreamEncoder and StreamDecoder process continuous sample/byte streams
  one frame at a time, so that a caller never needs the whole recording
  in memory at once.

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
	"bufio"
	"io"

	"github.com/ausocean/utils/logging"

	"github.com/ausocean/x3/internal/xlog"
)

// StreamEncoderOption configures a StreamEncoder at construction time.
type StreamEncoderOption func(*StreamEncoder)

// WithSourceID sets the source id written into every frame header. The
// default is 1.
func WithSourceID(id byte) StreamEncoderOption {
	return func(e *StreamEncoder) { e.sourceID = id }
}

// StreamEncoder accepts interleaved samples across any number of Write
// calls and emits complete, headered frames to dst as soon as a frame's
// worth of blocks (params.BlocksPerFrame) has been collected, or when
// Close flushes a final partial frame.
type StreamEncoder struct {
	dst      io.Writer
	log      logging.Logger
	params   Parameters
	channels int
	sourceID byte

	filterState    []int16
	collected      [][]int16 // per channel, up to params.BlockLen samples
	nextCh         int
	collectedCount int
	blockCount     int
	frameSamples   int

	bw *BitWriter // non-nil while a frame is in progress

	Stats Stats
}

// NewStreamEncoder returns a StreamEncoder writing channels-interleaved
// frames to dst. If log is nil, it falls back to xlog's default rotated
// file logger rather than encoding silently.
func NewStreamEncoder(dst io.Writer, channels int, params Parameters, log logging.Logger, options ...StreamEncoderOption) *StreamEncoder {
	if log == nil {
		log = xlog.New(xlog.DefaultPath, nil)
	}

	collected := make([][]int16, channels)
	for i := range collected {
		collected[i] = make([]int16, params.BlockLen)
	}
	e := &StreamEncoder{
		dst:         dst,
		log:         log,
		params:      params,
		channels:    channels,
		sourceID:    1,
		filterState: make([]int16, channels),
		collected:   collected,
	}
	for _, o := range options {
		o(e)
	}
	return e
}

// Write accepts channel-interleaved samples (ch0, ch1, ..., ch0, ch1, ...)
// and encodes complete blocks and frames as they become available.
// Samples left over at the end of w are buffered until the next Write or
// Close.
func (e *StreamEncoder) Write(w []int16) error {
	i := 0
	for i < len(w) {
		if e.bw == nil {
			for e.nextCh < e.channels {
				if i >= len(w) {
					return nil
				}
				e.filterState[e.nextCh] = w[i]
				i++
				e.nextCh++
			}
			e.nextCh = 0
			e.startFrame()
		}

		for e.collectedCount != e.params.BlockLen {
			if i >= len(w) {
				return nil
			}
			e.collected[e.nextCh][e.collectedCount] = w[i]
			i++
			e.nextCh++
			if e.nextCh == e.channels {
				e.nextCh = 0
				e.collectedCount++
			}
		}

		if err := e.encodeBlock(); err != nil {
			return err
		}
		e.blockCount++
		if e.blockCount == e.params.BlocksPerFrame {
			if err := e.completeFrame(); err != nil {
				return err
			}
		}
	}
	return nil
}

// startFrame reserves header space and writes the per-channel audio
// state that opens every frame.
func (e *StreamEncoder) startFrame() {
	e.bw = NewBitWriter(frameHeaderLength + 2*e.channels*e.params.BlockLen*e.params.BlocksPerFrame)
	e.bw.Bookmark()
	if err := e.bw.IncCounterNBytes(frameHeaderLength); err != nil {
		panic(err) // freshly bookmarked and byte aligned; can't happen.
	}
	for _, fs := range e.filterState {
		e.bw.WriteBits(uint32(uint16(fs)), WavBitSize)
	}
}

// encodeBlock packs the collected per-channel block and resets the
// collection buffer.
func (e *StreamEncoder) encodeBlock() error {
	if e.nextCh != 0 {
		return ErrMismatchedChannelLengths
	}
	if e.bw == nil {
		return nil
	}
	if e.collectedCount == 0 {
		return nil
	}

	for c := 0; c < e.channels; c++ {
		block := e.collected[c][:e.collectedCount]
		wavDiff := diff(e.filterState[c], block)
		e.filterState[c] = block[len(block)-1]
		before := e.bw.Len()
		ftype := encodeBlock(e.bw, block, wavDiff, e.params)
		e.Stats.add(ftype, e.collectedCount)
		e.Stats.addBitWidth(8 * float64(e.bw.Len()-before) / float64(e.collectedCount))
	}

	e.frameSamples += e.collectedCount
	e.collectedCount = 0
	return nil
}

// completeFrame finalises the in-progress frame's header and flushes the
// whole frame to dst.
func (e *StreamEncoder) completeFrame() error {
	if e.bw == nil {
		return nil
	}

	e.bw.WordAlign()
	payload := e.bw.BookmarkFrom()[frameHeaderLength:]
	payloadCRC := crc16(payload)
	header := writeFrameHeader(e.frameSamples+1, e.sourceID, byte(e.channels), len(payload), payloadCRC)
	e.bw.BookmarkWrite(header)

	if _, err := e.dst.Write(e.bw.Bytes()); err != nil {
		return err
	}
	if e.log != nil {
		e.log.Debug("wrote x3 frame", "samples", e.frameSamples+1, "bytes", e.bw.Len())
	}

	e.bw = nil
	e.nextCh = 0
	e.blockCount = 0
	e.frameSamples = 0
	return nil
}

// Close flushes any partially collected block and frame, and must be
// called once no more samples will be written.
func (e *StreamEncoder) Close() error {
	if err := e.encodeBlock(); err != nil {
		return err
	}
	return e.completeFrame()
}

// StreamDecoder reads frames one at a time from src, resynchronising on
// the "x3" key whenever a corrupted header is encountered.
type StreamDecoder struct {
	src    *bufio.Reader
	params Parameters
	log    logging.Logger

	// ResyncCount is the number of bytes discarded while searching for a
	// valid frame header, plus one for each frame whose header was valid
	// but whose payload failed to decode. It is not a count of frames
	// skipped.
	ResyncCount int
}

// NewStreamDecoder returns a StreamDecoder reading from src. If log is
// nil, it falls back to xlog's default rotated file logger rather than
// decoding silently.
func NewStreamDecoder(src io.Reader, params Parameters, log logging.Logger) *StreamDecoder {
	if log == nil {
		log = xlog.New(xlog.DefaultPath, nil)
	}
	return &StreamDecoder{src: bufio.NewReaderSize(src, 4096), params: params, log: log}
}

// nextHeader returns the next valid frame header in the stream,
// discarding and counting any leading bytes that do not begin one.
func (d *StreamDecoder) nextHeader() (FrameHeader, error) {
	for {
		peek, err := d.src.Peek(frameHeaderLength)
		if err != nil {
			if len(peek) == 0 {
				return FrameHeader{}, io.EOF
			}
			return FrameHeader{}, io.ErrUnexpectedEOF
		}

		hdr, herr := readFrameHeader(peek)
		if herr == nil {
			d.src.Discard(frameHeaderLength)
			return hdr, nil
		}

		if _, err := d.src.Discard(1); err != nil {
			return FrameHeader{}, io.EOF
		}
		d.ResyncCount++
		Log.Debug("x3 resync: discarded byte searching for frame key", "resyncs", d.ResyncCount)
	}
}

// ReadFrame reads and decodes the next frame, returning its header and
// decoded samples. It returns io.EOF once the stream is exhausted. A
// corrupted payload (any failure other than running out of data) does not
// abandon the stream: it counts as a resync and the next frame is sought
// in its place, mirroring nextHeader's header-level resync.
func (d *StreamDecoder) ReadFrame() (FrameHeader, []int16, error) {
	for {
		hdr, err := d.nextHeader()
		if err != nil {
			return FrameHeader{}, nil, err
		}

		payload := make([]byte, hdr.PayloadLen)
		if _, err := io.ReadFull(d.src, payload); err != nil {
			return hdr, nil, ErrFrameDecodeUnexpectedEnd
		}

		wav := make([]int16, hdr.Samples)
		n, err := decodeFrame(hdr, payload, wav, d.params)
		if err == nil {
			return hdr, wav[:n], nil
		}

		if d.log != nil {
			d.log.Warning("x3 frame decode failed", "error", err.Error())
		}
		if err == ErrFrameDecodeUnexpectedEnd {
			return hdr, wav[:n], err
		}

		d.ResyncCount++
		Log.Debug("x3 resync: frame payload decode failed, resynchronising", "resyncs", d.ResyncCount)
	}
}
