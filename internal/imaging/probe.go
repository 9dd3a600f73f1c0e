package imaging

import (
	"bytes"
	"image"
	"io"
	"sync"

	"github.com/chai2010/webp"
)

// webpEncode is a seam for tests.
var webpEncode = func(w io.Writer, m image.Image, quality float32) error {
	return webp.Encode(w, m, &webp.Options{Quality: quality})
}

var (
	probeOnce sync.Once
	probeOK   bool
)

// WebPSupported reports whether the WebP encoder produces a valid container.
// It is probed once per process by encoding a throwaway 1x1 surface and
// sniffing the result, so repeated calls always agree.
func WebPSupported() bool {
	probeOnce.Do(func() {
		var buf bytes.Buffer
		probe := image.NewRGBA(image.Rect(0, 0, 1, 1))
		if err := webpEncode(&buf, probe, 80); err != nil {
			return
		}
		probeOK = isWebP(buf.Bytes())
	})
	return probeOK
}

// isWebP sniffs the RIFF/WEBP container magic.
func isWebP(b []byte) bool {
	return len(b) >= 12 && string(b[0:4]) == "RIFF" && string(b[8:12]) == "WEBP"
}
