package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/memoriam-app/memoriam/internal/server/models"
)

func (s *Server) getHeroDraft(c *gin.Context) {
	draft, err := s.drafts.Get(c.Request.Context(), currentUserID(c))
	if err != nil {
		s.renderError(c, err)
		return
	}
	if draft == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no draft"})
		return
	}
	c.JSON(http.StatusOK, draft)
}

func (s *Server) putHeroDraft(c *gin.Context) {
	var draft models.HeroDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if err := s.drafts.Put(c.Request.Context(), currentUserID(c), &draft); err != nil {
		s.renderError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
