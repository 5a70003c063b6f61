/*
NAME
  block.go

DESCRIPTION
  Block-level encode/decode: Rice coding, block-floating-point (BFP) and
  16-bit pass-through, selected by the maximum absolute first-order
  difference within the block.

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

// bfpHdrLen is the number of bits in a BFP/pass-through block header,
// encoding (bits-per-sample - 1).
const bfpHdrLen = 6

// Block type indices, used to index Stats' histogram.
const (
	blockTypeRice0 = iota
	blockTypeRice1
	blockTypeRice2
	blockTypeRice3
	blockTypeBFP
	blockTypePassThrough
)

// countBits returns the number of bits required to represent n.
func countBits(n uint32) int {
	bits := 0
	for n != 0 {
		bits++
		n >>= 1
	}
	return bits
}

// diff computes the first-order difference of wav, given the last sample
// of the previous block (or the initial audio state for the first block).
func diff(last int16, wav []int16) []int32 {
	out := make([]int32, len(wav))
	prev := int32(last)
	for i, w := range wav {
		out[i] = int32(w) - prev
		prev = int32(w)
	}
	return out
}

// encodeBlock encodes one block of samples into bw, choosing between Rice
// coding, BFP or pass-through based on the block's maximum absolute
// difference, and returns the block type index for statistics. wav and
// wavDiff must be the same length.
func encodeBlock(bw *BitWriter, wav []int16, wavDiff []int32, params Parameters) int {
	maxAbs := int32(0)
	for _, d := range wavDiff {
		a := d
		if a < 0 {
			a = -a
		}
		if a > maxAbs {
			maxAbs = a
		}
	}

	if maxAbs <= int32(params.Thresholds[2]) {
		return encodeRiceBlock(bw, wavDiff, params, maxAbs)
	}

	numBits := countBits(uint32(maxAbs))
	if numBits >= 15 {
		return encodeLiteral(bw, wav)
	}
	if numBits < 5 {
		// decodeBPFBlock rejects widths of 5 bits or fewer, so a narrow
		// block (possible when Thresholds[2] is below 15) is widened.
		numBits = 5
	}
	return encodeBFPBlock(bw, wavDiff, numBits)
}

// encodeRiceBlock packs wavDiff using the rice code family selected by
// comparing maxAbs against params.Thresholds.
func encodeRiceBlock(bw *BitWriter, wavDiff []int32, params Parameters, maxAbs int32) int {
	ftype := 0
	for _, t := range params.Thresholds {
		if maxAbs > int32(t) {
			ftype++
		}
	}

	// 2-bit block header selects the rice family (1, 2 or 3).
	bw.WriteBits(uint32(ftype+1), 2)

	rc := params.riceCodes[ftype]
	for _, w := range wavDiff {
		ii := int(w) + rc.offset
		code := rc.code[ii]
		numBits := rc.numBits[ii]
		numZeros := numBits - countBits(uint32(code))
		bw.WritePackedZeros(numZeros)
		bw.WriteBits(uint32(code), numBits-numZeros)
	}

	return ricecodeBlockType(rc.nsubs)
}

// ricecodeBlockType maps a rice code's nsubs back to the Stats histogram
// index for that code family.
func ricecodeBlockType(nsubs int) int {
	switch nsubs {
	case 0:
		return blockTypeRice0
	case 1:
		return blockTypeRice1
	case 2:
		return blockTypeRice2
	default:
		return blockTypeRice3
	}
}

// encodeBFPBlock packs wavDiff at a fixed bit width of numBits+1 bits per
// sample (block-floating-point).
func encodeBFPBlock(bw *BitWriter, wavDiff []int32, numBits int) int {
	bw.WriteBits(uint32(numBits), bfpHdrLen)
	for _, w := range wavDiff {
		bw.WriteBits(uint32(w), numBits+1)
	}
	return blockTypeBFP
}

// encodeLiteral packs wav samples verbatim as 16-bit values, used when no
// Rice or BFP encoding can represent the block's dynamic range.
func encodeLiteral(bw *BitWriter, wav []int16) int {
	bw.WriteBits(15, bfpHdrLen)
	for _, w := range wav {
		bw.WriteBits(uint32(uint16(w)), WavBitSize)
	}
	return blockTypePassThrough
}

// decodeBlock reads one block's ftype header from br and dispatches to the
// appropriate decode path, writing block.len() samples into wav and
// updating *lastWav to the block's final reconstructed sample.
func decodeBlock(br *BitReader, wav []int16, lastWav *int16, params Parameters) error {
	ftype, err := br.ReadNBits(2)
	if err != nil {
		return err
	}
	switch ftype {
	case 0:
		return decodeBPFBlock(br, wav, lastWav)
	case 1:
		return decodeRiceBlockR1(br, wav, lastWav, params, int(ftype))
	case 2, 3:
		return decodeRiceBlockR2R3(br, wav, lastWav, params, int(ftype))
	default:
		return ErrFrameDecodeInvalidFType
	}
}

// decodeRiceBlockR1 decodes a block encoded with the nsubs=0 rice family
// (ftype 1), where the value is recovered purely from the unary prefix.
func decodeRiceBlockR1(br *BitReader, wav []int16, lastWav *int16, params Parameters, ftype int) error {
	code := params.riceCodes[ftype-1]
	lw := *lastWav
	for b := range wav {
		i, err := br.CountZeroBits()
		if err != nil {
			return err
		}
		if _, err := br.ReadNBits(1); err != nil { // skip the terminating one bit
			return err
		}
		if i >= len(code.inv) {
			return ErrOutOfBoundsInverse
		}
		lw += code.inv[i]
		wav[b] = lw
	}
	*lastWav = lw
	return nil
}

// decodeRiceBlockR2R3 decodes a block encoded with the rice family selected
// for ftype 2 or 3 (nsubs 1 and 3 with DefaultCodes), where the value is the
// unary prefix combined with a fixed-width suffix of nsubs bits.
func decodeRiceBlockR2R3(br *BitReader, wav []int16, lastWav *int16, params Parameters, ftype int) error {
	code := params.riceCodes[ftype-1]
	nb := code.nsubs + 1 // the prefix's terminating one bit plus the suffix
	level := int32(1) << uint(code.nsubs)
	lw := *lastWav
	for b := range wav {
		n, err := br.CountZeroBits()
		if err != nil {
			return err
		}
		r, err := br.ReadNBits(nb)
		if err != nil {
			return err
		}
		i := int(int32(r) + level*(int32(n)-1))
		if i < 0 || i >= len(code.inv) {
			return ErrOutOfBoundsInverse
		}
		lw += code.inv[i]
		wav[b] = lw
	}
	*lastWav = lw
	return nil
}

// unsignedToI16 interprets a as a two's-complement value of numBits bits.
func unsignedToI16(a uint32, numBits int) int16 {
	v := int32(a)
	negThresh := int32(1) << uint(numBits-1)
	neg := int32(1) << uint(numBits)
	if v > negThresh {
		v -= neg
	}
	return int16(v)
}

// decodeBPFBlock decodes a BFP or 16-bit pass-through block (ftype 0).
func decodeBPFBlock(br *BitReader, wav []int16, lastWav *int16) error {
	hdr, err := br.ReadNBits(4)
	if err != nil {
		return err
	}
	numBits := int(hdr) + 1

	if numBits <= 5 {
		return ErrFrameDecodeInvalidBPF
	}

	if numBits == 16 {
		for i := range wav {
			v, err := br.ReadNBits(16)
			if err != nil {
				return err
			}
			wav[i] = int16(v)
		}
	} else {
		value := *lastWav
		for i := range wav {
			d, err := br.ReadNBits(numBits)
			if err != nil {
				return err
			}
			value += unsignedToI16(d, numBits)
			wav[i] = value
		}
	}
	*lastWav = wav[len(wav)-1]
	return nil
}
