package output

import (
	"bufio"
	"fmt"
	"io"

	"rsc.io/qr"
)

const qrQuietZone = 2

// WriteQR renders text as a QR code made of Unicode half blocks, two module
// rows per line. Light modules are drawn so the code scans on dark terminals.
func WriteQR(w io.Writer, text string) error {
	code, err := qr.Encode(text, qr.M)
	if err != nil {
		return fmt.Errorf("encoding QR code: %w", err)
	}

	light := func(x, y int) bool {
		if x < 0 || y < 0 || x >= code.Size || y >= code.Size {
			return true
		}
		return !code.Black(x, y)
	}

	bw := bufio.NewWriter(w)
	lo, hi := -qrQuietZone, code.Size+qrQuietZone
	for y := lo; y < hi; y += 2 {
		for x := lo; x < hi; x++ {
			top, bottom := light(x, y), y+1 < hi && light(x, y+1)
			switch {
			case top && bottom:
				bw.WriteRune('█')
			case top:
				bw.WriteRune('▀')
			case bottom:
				bw.WriteRune('▄')
			default:
				bw.WriteRune(' ')
			}
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
