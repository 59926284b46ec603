package radixheap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewElementAccessors(t *testing.T) {
	e := NewElement("payload", uint32(42))
	assert.Equal(t, "payload", e.Value())
	assert.Equal(t, uint32(42), e.Key())
}

func TestZeroPairReturnsZeroValues(t *testing.T) {
	v, k := zeroPair[string, uint32]()
	assert.Equal(t, "", v)
	assert.Equal(t, uint32(0), k)
}
