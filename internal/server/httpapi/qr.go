package httpapi

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// qrDownload streams the share code PNG as an attachment named after the
// person.
func (s *Server) qrDownload(c *gin.Context) {
	id := c.Param("id")

	p, err := s.people.Get(c.Request.Context(), id)
	if err != nil {
		s.renderError(c, err)
		return
	}
	if p == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	png, err := s.qr.Fetch(c.Request.Context(), id)
	if err != nil {
		s.renderError(c, err)
		return
	}

	filename := s.qr.DownloadFilename(p.Name, id)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "image/png", png)
}
