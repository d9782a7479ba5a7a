// file: internals/helpers/rounding.go
package helper

import "math"

// Round2 membulatkan ke 2 desimal. Semua nilai skor/rating di sistem ini
// dibulatkan 2 desimal pada titik perhitungan.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
