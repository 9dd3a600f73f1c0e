package imaging

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	"image/png"
	"math"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// Normalize decodes data, scales it down to opts.MaxWidth (never up) keeping
// the aspect ratio, and re-encodes it. The output format is WebP when the
// encoder probe succeeds, otherwise PNG for PNG sources (keeps transparency)
// and JPEG for everything else.
//
// The size ceiling is enforced on the raw input before any decoding, so
// oversized files never reach the pixel pipeline.
func Normalize(data []byte, opts Options) (*Result, error) {
	if opts.SizeLimit > 0 && int64(len(data)) > opts.SizeLimit {
		return nil, fmt.Errorf("%w: %d bytes, limit %d", ErrTooLarge, len(data), opts.SizeLimit)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrDecode)
	}

	src, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	b := src.Bounds()
	srcW, srcH := b.Dx(), b.Dy()
	if srcW <= 0 || srcH <= 0 {
		// a zero-size target surface is invalid, bail out before allocating one
		return nil, fmt.Errorf("%w: zero-dimension image", ErrDecode)
	}

	w := srcW
	if opts.MaxWidth > 0 && opts.MaxWidth < srcW {
		w = opts.MaxWidth
	}
	ratio := float64(srcW) / float64(srcH)
	h := int(math.Round(float64(w) / ratio))
	if h < 1 {
		h = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)

	mime := pickFormat(format)
	encoded, err := encode(dst, mime, opts.Quality)
	if err != nil {
		return nil, err
	}

	return &Result{Data: encoded, MIME: mime, Width: w, Height: h}, nil
}

// pickFormat chooses the output MIME type for a source decoded as srcFormat.
// The choice is stable within a process: the WebP probe runs once.
func pickFormat(srcFormat string) string {
	if WebPSupported() {
		return "image/webp"
	}
	if srcFormat == "png" {
		return "image/png"
	}
	return "image/jpeg"
}

func encode(img image.Image, mime string, quality int) ([]byte, error) {
	if quality <= 0 || quality > 100 {
		quality = DefaultQuality
	}

	var buf bytes.Buffer
	switch mime {
	case "image/webp":
		if err := webpEncode(&buf, img, float32(quality)); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrEncoderUnavailable, err)
		}
	case "image/png":
		if err := png.Encode(&buf, img); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrEncoderUnavailable, err)
		}
	default:
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrEncoderUnavailable, err)
		}
	}
	return buf.Bytes(), nil
}
