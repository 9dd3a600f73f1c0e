package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/memoriam-app/memoriam/internal/server/config"
	"github.com/stretchr/testify/require"
)

func TestQRImageURL_EncodesShareLink(t *testing.T) {
	s := NewQRService(&config.Config{
		QREndpoint: "https://api.qrserver.com/v1/create-qr-code/",
		BaseURL:    "https://memoriam.example/",
	})

	raw := s.ImageURL("p1")
	u, err := url.Parse(raw)
	require.NoError(t, err)
	require.Equal(t, "400x400", u.Query().Get("size"))
	require.Equal(t, "https://memoriam.example/person/p1?qr=true", u.Query().Get("data"))
}

func TestQRFetch_Success(t *testing.T) {
	png := []byte("\x89PNG fake")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "400x400", r.URL.Query().Get("size"))
		w.Write(png)
	}))
	defer srv.Close()

	s := NewQRService(&config.Config{QREndpoint: srv.URL, BaseURL: "https://memoriam.example"})

	got, err := s.Fetch(context.Background(), "p1")
	require.NoError(t, err)
	require.Equal(t, png, got)
}

func TestQRFetch_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer srv.Close()

	s := NewQRService(&config.Config{QREndpoint: srv.URL, BaseURL: "https://memoriam.example"})

	_, err := s.Fetch(context.Background(), "p1")
	require.ErrorContains(t, err, "502")
}

func TestQRDownloadFilename(t *testing.T) {
	s := NewQRService(&config.Config{})

	require.Equal(t, "Meeka_Smith_p1_qr.png", s.DownloadFilename("Meeka Smith", "p1"))
	require.Equal(t, "file_p1_qr.png", s.DownloadFilename("***", "p1"))
}
