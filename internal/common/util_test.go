package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateRandByteArray(t *testing.T) {
	a := GenerateRandByteArray(16)
	b := GenerateRandByteArray(16)

	assert.Len(t, a, 16)
	assert.NotEqual(t, a, b)
	assert.Empty(t, GenerateRandByteArray(0))
}

func TestWipeByteArray(t *testing.T) {
	b := []byte("secret1")
	WipeByteArray(b)
	assert.Equal(t, make([]byte, 7), b)

	assert.NotPanics(t, func() { WipeByteArray(nil) })
}
