/*
NAME
  x3a.go

DESCRIPTION
  x3a reads and writes the X3 Archive container format: an "X3ARCHIV"
  magic, an XML metadata pseudo-frame describing the recording's sample
  rate and codec parameters, followed by a sequence of x3 frames. The
  headerless variant (.bin: a bare sequence of x3 frames with no magic or
  metadata) is not handled here; it is read with codec/x3's StreamDecoder
  or DecodeBuffer directly.

AUTHOR
  Saxon Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package x3a

import (
	"bufio"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ausocean/utils/logging"

	"github.com/ausocean/x3/codec/x3"
)

// Magic is the 8-byte key that opens an X3 Archive.
const Magic = "X3ARCHIV"

// Archive errors are sentinels owned by codec/x3 (ErrArchiveHeaderInvalidKey,
// ErrArchiveHeaderInvalid, ErrArchiveHeaderInvalidRiceCode), since that
// package's error taxonomy is the single source of truth for every x3 and
// x3a failure mode; this package returns them rather than package-local
// duplicates (an XML parse error is wrapped around ErrArchiveHeaderInvalid
// with %w, so errors.Is still matches it).

// header is the XML metadata pseudo-frame payload. Field names are fixed
// by the format and are not Go-idiomatic; they are deliberately kept
// verbatim so the format is self-documenting on the wire.
type header struct {
	XMLName xml.Name `xml:"Header"`
	FS      uint32   `xml:"FS"`
	BLKLEN  int      `xml:"BLKLEN"`
	CODES   string   `xml:"CODES"`
	T       string   `xml:"T"`
}

// riceCodeNames maps a rice code table index to its archive XML token.
var riceCodeNames = [4]string{"RICE0", "RICE1", "RICE2", "RICE3"}

func formatCodes(codes [3]int) string {
	names := make([]string, len(codes))
	for i, c := range codes {
		names[i] = riceCodeNames[c]
	}
	return strings.Join(names, ",")
}

// parseCodes parses a comma-separated CODES string. A "BFP" entry is
// accepted but ignored, matching the reference decoder's metadata parser:
// block-floating-point is selected automatically per block and is never a
// configured code family.
func parseCodes(s string) ([3]int, error) {
	var codes [3]int
	i := 0
	for _, word := range strings.Split(s, ",") {
		switch word {
		case "RICE0":
			setCode(&codes, &i, 0)
		case "RICE1":
			setCode(&codes, &i, 1)
		case "RICE2":
			setCode(&codes, &i, 2)
		case "RICE3":
			setCode(&codes, &i, 3)
		case "BFP":
			// no-op: BFP is not a selectable code family.
		default:
			return codes, x3.ErrArchiveHeaderInvalidRiceCode
		}
	}
	return codes, nil
}

func setCode(codes *[3]int, i *int, v int) {
	if *i < len(codes) {
		codes[*i] = v
	}
	*i++
}

func formatThresholds(t [3]int) string {
	return fmt.Sprintf("%d,%d,%d", t[0], t[1], t[2])
}

func parseThresholds(s string) ([3]int, error) {
	var th [3]int
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return th, x3.ErrArchiveHeaderInvalid
	}
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return th, x3.ErrArchiveHeaderInvalid
		}
		th[i] = n
	}
	return th, nil
}

// Writer writes an X3 Archive: the magic, an XML metadata pseudo-frame,
// and then x3 frames written via its embedded StreamEncoder.
type Writer struct {
	*x3.StreamEncoder
	dst io.Writer
}

// NewWriter writes the archive magic and metadata pseudo-frame to dst for
// a single-channel recording at sampleRate using params, and returns a
// Writer ready to accept samples via Write.
func NewWriter(dst io.Writer, sampleRate uint32, params x3.Parameters, log logging.Logger) (*Writer, error) {
	if _, err := io.WriteString(dst, Magic); err != nil {
		return nil, err
	}

	hdr := header{
		FS:     sampleRate,
		BLKLEN: params.BlockLen,
		CODES:  formatCodes(params.Codes),
		T:      formatThresholds(params.Thresholds),
	}
	payload, err := xml.Marshal(hdr)
	if err != nil {
		return nil, err
	}
	if len(payload)%2 != 0 {
		// Pad to an even length so the pseudo-frame, like every data frame,
		// ends on a 16-bit boundary; xml.Unmarshal ignores the trailing
		// byte on read since it stops at the root element's closing tag.
		payload = append(payload, 0)
	}
	if _, err := dst.Write(x3.EncodeMetadataFrame(payload)); err != nil {
		return nil, err
	}

	return &Writer{
		StreamEncoder: x3.NewStreamEncoder(dst, 1, params, log),
		dst:           dst,
	}, nil
}

// Reader reads an X3 Archive's magic and metadata, and exposes the
// recording's sample rate, codec parameters and an x3.StreamDecoder
// positioned at the first data frame.
type Reader struct {
	SampleRate uint32
	Params     x3.Parameters

	*x3.StreamDecoder
}

// NewReader parses the archive magic and metadata pseudo-frame from src
// and returns a Reader ready to read data frames via ReadFrame.
func NewReader(src io.Reader, log logging.Logger) (*Reader, error) {
	br := bufio.NewReaderSize(src, 4096)

	magic := make([]byte, len(Magic))
	if _, err := io.ReadFull(br, magic); err != nil {
		return nil, err
	}
	if string(magic) != Magic {
		return nil, x3.ErrArchiveHeaderInvalidKey
	}

	payload, err := x3.DecodeMetadataFrame(br)
	if err != nil {
		return nil, err
	}

	var hdr header
	if err := xml.Unmarshal(payload, &hdr); err != nil {
		return nil, fmt.Errorf("%w: %v", x3.ErrArchiveHeaderInvalid, err)
	}

	codes, err := parseCodes(hdr.CODES)
	if err != nil {
		return nil, err
	}
	thresholds, err := parseThresholds(hdr.T)
	if err != nil {
		return nil, err
	}
	params, err := x3.NewParameters(hdr.BLKLEN, x3.DefaultBlocksPerFrame, codes, thresholds)
	if err != nil {
		return nil, err
	}

	return &Reader{
		SampleRate:    hdr.FS,
		Params:        params,
		StreamDecoder: x3.NewStreamDecoder(br, params, log),
	}, nil
}
