package blob

import "bytes"

// ProgressFunc receives advisory upload progress. No caller behavior may
// depend on intermediate values; it exists for status display only.
type ProgressFunc func(written, total int64)

// progressReader wraps an in-memory payload and reports bytes handed to the
// transport. The S3 SDK may re-read the body, so written never exceeds total.
type progressReader struct {
	r        *bytes.Reader
	total    int64
	written  int64
	progress ProgressFunc
}

func newProgressReader(data []byte, progress ProgressFunc) *progressReader {
	return &progressReader{r: bytes.NewReader(data), total: int64(len(data)), progress: progress}
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	if n > 0 {
		p.written += int64(n)
		if p.written > p.total {
			p.written = p.total
		}
		if p.progress != nil {
			p.progress(p.written, p.total)
		}
	}
	return n, err
}

// Seek keeps the reader usable with transports that rewind the body on retry.
func (p *progressReader) Seek(offset int64, whence int) (int64, error) {
	pos, err := p.r.Seek(offset, whence)
	if err == nil {
		p.written = pos
	}
	return pos, err
}
