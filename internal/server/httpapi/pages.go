package httpapi

import (
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
)

var pageShell = template.Must(template.New("shell").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>{{.Title}} | Memoriam</title></head>
<body data-page="{{.Page}}"></body>
</html>
`))

// page serves the minimal shell after the guard lets the request through.
// The guard waits for session restoration to finish before deciding, so a
// freshly started server never bounces a signed-in browser to /signin.
func (s *Server) page(name, title string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := s.state.WhenInitialized(c.Request.Context()); err != nil {
			c.Status(http.StatusServiceUnavailable)
			return
		}

		decision := Decide(c.Request.URL.Path, s.sessionAuthed(c))
		if decision.Action == GuardRedirect {
			c.Redirect(http.StatusFound, decision.Location)
			return
		}

		c.Header("Content-Type", "text/html; charset=utf-8")
		c.Status(http.StatusOK)
		_ = pageShell.Execute(c.Writer, map[string]string{"Page": name, "Title": title})
	}
}

// noRoute sends unknown paths through the same guard, which redirects them
// to the home page.
func (s *Server) noRoute(c *gin.Context) {
	if err := s.state.WhenInitialized(c.Request.Context()); err != nil {
		c.Status(http.StatusServiceUnavailable)
		return
	}

	decision := Decide(c.Request.URL.Path, s.sessionAuthed(c))
	if decision.Action == GuardRedirect {
		c.Redirect(http.StatusFound, decision.Location)
		return
	}
	c.Status(http.StatusNotFound)
}
