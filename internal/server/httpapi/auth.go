package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/memoriam-app/memoriam/internal/server/services"
)

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

func tokenResponse(pair *services.TokenPair) gin.H {
	return gin.H{"token": pair.AccessToken, "refreshToken": pair.RefreshToken}
}

// setSessionCookie carries the access token to the page routes. The API keeps
// using the Authorization header; the cookie exists for the guard only.
func (s *Server) setSessionCookie(c *gin.Context, token string) {
	maxAge := int(s.cfg.AccessTokenValidityDuration.Seconds())
	c.SetCookie(sessionCookie, token, maxAge, "/", "", false, true)
}

func (s *Server) signup(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	user, pair, err := s.auth.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		s.renderError(c, err)
		return
	}

	s.setSessionCookie(c, pair.AccessToken)
	resp := tokenResponse(pair)
	resp["user"] = gin.H{"id": user.ID, "email": user.Email}
	c.JSON(http.StatusCreated, resp)
}

func (s *Server) signin(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	user, pair, err := s.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		s.renderError(c, err)
		return
	}

	s.setSessionCookie(c, pair.AccessToken)
	resp := tokenResponse(pair)
	resp["user"] = gin.H{"id": user.ID, "email": user.Email}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) refresh(c *gin.Context) {
	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.RefreshToken == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	pair, err := s.auth.RefreshToken(c.Request.Context(), req.RefreshToken)
	if err != nil {
		s.renderError(c, err)
		return
	}

	s.setSessionCookie(c, pair.AccessToken)
	c.JSON(http.StatusOK, tokenResponse(pair))
}

func (s *Server) signout(c *gin.Context) {
	var req refreshRequest
	_ = c.ShouldBindJSON(&req)

	if req.RefreshToken != "" {
		if err := s.auth.Logout(c.Request.Context(), req.RefreshToken); err != nil {
			s.renderError(c, err)
			return
		}
	}

	c.SetCookie(sessionCookie, "", -1, "/", "", false, true)
	c.Status(http.StatusNoContent)
}
