package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWipeByteArray_ZeroesAllBytes(t *testing.T) {
	b := []byte("secret")
	WipeByteArray(b)
	assert.Equal(t, make([]byte, 6), b)
}

func TestWipeByteArray_NilIsNoop(t *testing.T) {
	assert.NotPanics(t, func() { WipeByteArray(nil) })
}
