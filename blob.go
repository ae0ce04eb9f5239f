package xsatmgr

import (
	"encoding/binary"
	"fmt"
)

// CTMWords is the element count of a packed CTM blob: two 32-bit words
// per Q31.32 entry.
const CTMWords = 18

// PackCTM splits each 64-bit fixed-point entry into two 32-bit words in
// the platform's native byte order and appends both, low address first.
//
// The RandR property interface carries 32-bit array elements, so each
// S31.32 value must travel as two elements. Reading the entry's bytes
// back as native-order 32-bit units reproduces exactly what a straight
// memory copy of the 9x int64 matrix would contain on this platform,
// which is the layout the receiving side reassembles. The split is done
// explicitly here rather than by reinterpreting a buffer, so it stays
// portable and testable.
func PackCTM(ctm FixedCTM) []uint32 {
	words := make([]uint32, 0, CTMWords)
	var buf [8]byte
	for _, f := range ctm {
		binary.NativeEndian.PutUint64(buf[:], f.Bits())
		words = append(words,
			binary.NativeEndian.Uint32(buf[0:4]),
			binary.NativeEndian.Uint32(buf[4:8]))
	}
	return words
}

// UnpackCTM reassembles pairs of 32-bit words back into fixed-point
// entries. It is the exact inverse of PackCTM.
func UnpackCTM(words []uint32) (FixedCTM, error) {
	var ctm FixedCTM
	if len(words) != CTMWords {
		return ctm, fmt.Errorf("packed CTM must be %d words, got %d", CTMWords, len(words))
	}
	var buf [8]byte
	for i := range ctm {
		binary.NativeEndian.PutUint32(buf[0:4], words[i*2])
		binary.NativeEndian.PutUint32(buf[4:8], words[i*2+1])
		ctm[i] = FixedFromBits(binary.NativeEndian.Uint64(buf[:]))
	}
	return ctm, nil
}
