package permyriad

import "math/bits"

// Total is the whole expressed in parts-per-10000.
const Total = 10000

// Cut returns floor(amount * share / Total) using a 128 bit intermediate so
// the product cannot overflow for any uint64 amount. share must not exceed
// Total; validated splits guarantee this.
func Cut(amount uint64, share uint64) uint64 {
	hi, lo := bits.Mul64(amount, share)
	quo, _ := bits.Div64(hi, lo, Total)

	return quo
}
