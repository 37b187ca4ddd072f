package models

import "fmt"

// Color is a 32-bit ARGB color value, e.g. 0xFFD32F2F.
type Color uint32

// Hex renders the color as "#AARRGGBB".
func (c Color) Hex() string {
	return fmt.Sprintf("#%08X", uint32(c))
}
