package bst

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

type score int16

type ratio float32

func TestIsFloat(t *testing.T) {
	assert := assert.New(t)
	assert.False(isFloat[int8]())
	assert.False(isFloat[int64]())
	assert.False(isFloat[score]())
	assert.True(isFloat[float32]())
	assert.True(isFloat[float64]())
	assert.True(isFloat[ratio]())
}

func TestIntGap(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(uint64(228), intGap[int8](-128, 100))
	assert.Equal(uint64(228), intGap[int8](100, -128))
	assert.Equal(uint64(255), intGap[int8](math.MinInt8, math.MaxInt8))
	assert.Equal(uint64(math.MaxUint64), intGap[int64](math.MinInt64, math.MaxInt64))
	assert.Equal(uint64(0), intGap[score](7, 7))
}

func TestCloser(t *testing.T) {
	assert := assert.New(t)
	assert.True(closer[int8](-128, -100, 100))
	assert.False(closer[int8](-128, 100, -100))
	// equal distance is not closer
	assert.False(closer[int64](6, 7, 5))
	assert.True(closer[float64](0.4, 0.5, 0.2))
	assert.False(closer[ratio](1, 1.5, 0.5))
}
