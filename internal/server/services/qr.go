package services

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/memoriam-app/memoriam/internal/blob"
	"github.com/memoriam-app/memoriam/internal/server/config"
)

const qrSize = "400x400"

// QRService renders share codes for profile pages through an external QR
// endpoint. The encoded link carries a qr=true marker so visits arriving
// through a printed code can be told apart.
type QRService struct {
	endpoint string
	baseURL  string
	client   *http.Client
}

func NewQRService(cfg *config.Config) *QRService {
	return &QRService{
		endpoint: cfg.QREndpoint,
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		client:   &http.Client{Timeout: 15 * time.Second},
	}
}

// ProfileURL is the absolute share link encoded into the QR image.
func (s *QRService) ProfileURL(personID string) string {
	return fmt.Sprintf("%s/person/%s?qr=true", s.baseURL, personID)
}

// ImageURL builds the rendering request for a 400x400 PNG of the share link.
func (s *QRService) ImageURL(personID string) string {
	q := url.Values{}
	q.Set("size", qrSize)
	q.Set("format", "png")
	q.Set("data", s.ProfileURL(personID))
	return s.endpoint + "?" + q.Encode()
}

// Fetch retrieves the rendered PNG bytes.
func (s *QRService) Fetch(ctx context.Context, personID string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.ImageURL(personID), nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error fetching qr image: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("qr endpoint returned %s", resp.Status)
	}
	return io.ReadAll(resp.Body)
}

// DownloadFilename names the saved image after the person; sanitization
// supplies a placeholder when the name has no safe characters.
func (s *QRService) DownloadFilename(personName, personID string) string {
	name := blob.SanitizeFilename(personName)
	return fmt.Sprintf("%s_%s_qr.png", name, personID)
}
