/*
NAME
  crc.go

DESCRIPTION
  CRC-16/CCITT-FALSE, used to guard x3 frame headers and payloads.

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

// crc16Poly is the CRC-16/CCITT-FALSE generator polynomial.
const crc16Poly = 0x1021

// crc16Init is the initial register value for CRC-16/CCITT-FALSE. There is
// no final XOR and no input/output reflection.
const crc16Init uint16 = 0xffff

// crc16Table is built once at init time the same way psi's crc32 table is
// built: walk each possible byte value through the polynomial division.
var crc16Table [256]uint16

func init() {
	for i := 0; i < 256; i++ {
		crc := uint16(i) << 8
		for b := 0; b < 8; b++ {
			if crc&0x8000 != 0 {
				crc = (crc << 1) ^ crc16Poly
			} else {
				crc <<= 1
			}
		}
		crc16Table[i] = crc
	}
}

// updateCRC16 folds a single byte into an existing CRC-16/CCITT-FALSE
// running value.
func updateCRC16(crc uint16, b byte) uint16 {
	return (crc << 8) ^ crc16Table[byte(crc>>8)^b]
}

// crc16 computes the CRC-16/CCITT-FALSE of b.
func crc16(b []byte) uint16 {
	crc := crc16Init
	for _, v := range b {
		crc = updateCRC16(crc, v)
	}
	return crc
}
