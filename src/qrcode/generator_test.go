package qrcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGeneratePNG(t *testing.T) {
	png, err := GeneratePNG("http://localhost:3000/f/abc123", 256)

	assert.NoError(t, err)
	assert.True(t, len(png) > 8)
	// PNG signature
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}, png[:8])
}

func TestGeneratePNGEmptyData(t *testing.T) {
	_, err := GeneratePNG("", 256)
	assert.Error(t, err)
}
