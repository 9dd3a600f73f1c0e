package httpapi

import (
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/memoriam-app/memoriam/internal/slideshow"
)

// slideshowEvents streams auto-advance ticks for a profile's gallery as
// server-sent events. Each connection owns one rotator; it is stopped when
// the client goes away, so no tick outlives the request.
func (s *Server) slideshowEvents(c *gin.Context) {
	p, err := s.people.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.renderError(c, err)
		return
	}
	if p == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	if len(p.Gallery) == 0 {
		c.Status(http.StatusNoContent)
		return
	}

	interval := slideshow.DefaultInterval
	if raw := c.Query("interval"); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil && d > 0 {
			interval = d
		}
	}

	events := make(chan int, 1)
	rot := slideshow.New(len(p.Gallery), interval, func(index int) {
		select {
		case events <- index:
		default:
		}
	})
	rot.Start()
	defer rot.Stop()

	// the SSE render sets Content-Type
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	c.SSEvent("advance", gin.H{"index": rot.Index(), "count": len(p.Gallery)})
	c.Writer.Flush()

	c.Stream(func(w io.Writer) bool {
		select {
		case index := <-events:
			c.SSEvent("advance", gin.H{"index": index, "count": len(p.Gallery)})
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
