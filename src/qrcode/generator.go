package qrcode

import (
	"github.com/skip2/go-qrcode"
)

// GeneratePNG renders data as a square QR code PNG of size×size pixels.
func GeneratePNG(data string, size int) ([]byte, error) {
	return qrcode.Encode(data, qrcode.Medium, size)
}
