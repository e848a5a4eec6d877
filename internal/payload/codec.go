// Package payload encodes binary PDF and image payloads to and from the
// text-safe representation used for storage and transport.
package payload

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// Encode returns the text-safe representation of raw bytes.
func Encode(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// Decode is the inverse of Encode. Input carrying a data-URI style prefix
// ("data:application/pdf;base64,....") is accepted; everything up to and
// including the first comma is stripped before decoding.
func Decode(encoded string) ([]byte, error) {
	if i := strings.IndexByte(encoded, ','); i >= 0 {
		encoded = encoded[i+1:]
	}
	encoded = strings.TrimSpace(encoded)
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("decoding payload: %w", err)
	}
	return data, nil
}
