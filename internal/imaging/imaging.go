// Package imaging normalizes user-submitted images before they are stored:
// it enforces a byte-size ceiling, downsizes to a maximum width while
// preserving the aspect ratio, and re-encodes at a target quality, preferring
// WebP when the encoder is available.
package imaging

import (
	"encoding/base64"
	"errors"
)

const (
	// Byte-size ceilings, checked before any decode work happens.
	MaxPortraitBytes    = 8 << 20
	MaxTestimonialBytes = 5 << 20

	DefaultMaxWidth = 1200
	DefaultQuality  = 85

	TestimonialMaxWidth = 800
	TestimonialQuality  = 80
)

var (
	// ErrTooLarge is returned when the input exceeds Options.SizeLimit.
	ErrTooLarge = errors.New("image exceeds size limit")

	// ErrDecode is returned for unreadable, corrupt or zero-dimension input.
	ErrDecode = errors.New("cannot decode image")

	// ErrEncoderUnavailable is returned when the selected encoder fails to
	// produce output.
	ErrEncoderUnavailable = errors.New("image encoder unavailable")
)

// Options controls a single normalization pass.
type Options struct {
	// MaxWidth caps the output width; sources narrower than this are never
	// upscaled. Zero means keep the source width.
	MaxWidth int
	// Quality is the lossy encoder quality in [1,100].
	Quality int
	// SizeLimit rejects inputs larger than this many bytes before decoding.
	// Zero disables the check.
	SizeLimit int64
}

// PortraitOptions are the parameters used for person portraits.
func PortraitOptions() Options {
	return Options{MaxWidth: DefaultMaxWidth, Quality: DefaultQuality, SizeLimit: MaxPortraitBytes}
}

// TestimonialOptions are the parameters used for testimonial photos.
func TestimonialOptions() Options {
	return Options{MaxWidth: TestimonialMaxWidth, Quality: TestimonialQuality, SizeLimit: MaxTestimonialBytes}
}

// Result is a single encoded image payload. The same bytes back both the
// binary upload form and the inline preview form.
type Result struct {
	Data   []byte
	MIME   string
	Width  int
	Height int
}

// DataURL renders the encoded payload as an inline base64 data URL without
// re-encoding.
func (r *Result) DataURL() string {
	return "data:" + r.MIME + ";base64," + base64.StdEncoding.EncodeToString(r.Data)
}

// Ext returns the file extension matching the encoded format, without a dot.
func (r *Result) Ext() string {
	switch r.MIME {
	case "image/webp":
		return "webp"
	case "image/png":
		return "png"
	default:
		return "jpg"
	}
}
