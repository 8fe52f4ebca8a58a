package seed

import (
	"hash/fnv"
	"math"
)

// sampleDenominator controls row sampling: every max(1, N/128)-th row is
// hashed, keeping derivation sub-linear on very large inputs. Rows outside
// the sample do not influence the seed; that collision window is an
// accepted trade-off.
const sampleDenominator = 128

// Derive computes a positive 31-bit seed from the matrix contents.
//
// Each sampled value is quantized to three decimals by multiplying by 1000
// and rounding half away from zero (math.Round). The low three bytes of the
// quantized integer, little-endian, are folded into a 32-bit FNV-1a hash in
// row-major order, so the hash is order-sensitive. Floating noise below the
// quantization precision never changes the result.
func Derive(matrix [][]float64) uint32 {
	h := fnv.New32a()

	step := len(matrix) / sampleDenominator
	if step < 1 {
		step = 1
	}

	var buf [3]byte
	for i := 0; i < len(matrix); i += step {
		for _, v := range matrix[i] {
			q := int32(math.Round(v * 1000))
			buf[0] = byte(q)
			buf[1] = byte(q >> 8)
			buf[2] = byte(q >> 16)
			_, _ = h.Write(buf[:])
		}
	}

	return h.Sum32() & 0x7FFFFFFF
}
