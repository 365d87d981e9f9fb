package permyriad

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCut(t *testing.T) {
	assert.Equal(t, uint64(600), Cut(1000, 6000))
	assert.Equal(t, uint64(400), Cut(1000, 4000))
	assert.Equal(t, uint64(1000), Cut(1000, Total))
	assert.Equal(t, uint64(0), Cut(1000, 0))
	assert.Equal(t, uint64(0), Cut(0, 5000))
}

func TestCutTruncates(t *testing.T) {
	cuts := []uint64{Cut(100, 3333), Cut(100, 3333), Cut(100, 3334)}

	var total uint64
	for _, cut := range cuts {
		assert.Equal(t, uint64(33), cut)
		total += cut
	}

	// The fractional remainder is never distributed.
	assert.Equal(t, uint64(99), total)
}

func TestCutDoesNotOverflow(t *testing.T) {
	// amount * share would overflow uint64; the 128 bit intermediate must not.
	assert.Equal(t, uint64(math.MaxUint64)/2, Cut(math.MaxUint64, 5000))
	assert.Equal(t, uint64(math.MaxUint64)/10000*9999+1614, Cut(math.MaxUint64, 9999))
}
