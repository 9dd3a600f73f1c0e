package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/memoriam-app/memoriam/internal/server/models"
	"github.com/memoriam-app/memoriam/internal/server/services"
)

// addTestimonial is the public tribute endpoint. It accepts either a JSON
// body or a multipart form with an optional photo. Legacy field spellings
// are normalized by the model's unmarshaller for JSON; the form fields use
// the canonical names.
func (s *Server) addTestimonial(c *gin.Context) {
	var t models.Testimonial
	var photo *services.Upload

	if isMultipart(c) {
		t.Name = c.PostForm("name")
		t.Relationship = c.PostForm("relationship")
		t.Message = c.PostForm("message")

		var err error
		if photo, err = formUpload(c, "photo"); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid upload"})
			return
		}
	} else if err := c.ShouldBindJSON(&t); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if err := s.testimonials.Add(c.Request.Context(), c.Param("id"), &t, photo); err != nil {
		s.renderError(c, err)
		return
	}
	c.Status(http.StatusCreated)
}
