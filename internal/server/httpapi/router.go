package httpapi

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter builds the gin engine with middleware, the JSON API, and the
// guarded page routes.
func NewRouter(s *Server) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger(s.logger))

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowOrigins = s.cfg.CORSAllowedOrigins
	corsCfg.AllowCredentials = true
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	corsCfg.AddAllowMethods("PATCH")
	r.Use(cors.New(corsCfg))

	api := r.Group("/api")
	{
		authGroup := api.Group("/auth")
		authGroup.POST("/signup", s.signup)
		authGroup.POST("/signin", s.signin)
		authGroup.POST("/refresh", s.refresh)
		authGroup.POST("/signout", s.signout)

		// public profile surface
		api.GET("/people/:id", s.getPerson)
		api.POST("/people/:id/testimonials", s.addTestimonial)
		api.GET("/people/:id/qr", s.qrDownload)
		api.GET("/people/:id/slideshow/events", s.slideshowEvents)

		protected := api.Group("", s.bearerAuth())
		protected.GET("/people", s.listPeople)
		protected.POST("/people", s.createPerson)
		protected.PATCH("/people/:id", s.updatePerson)
		protected.POST("/people/:id/gallery", s.addGalleryImages)
		protected.GET("/drafts/hero", s.getHeroDraft)
		protected.PUT("/drafts/hero", s.putHeroDraft)
	}

	r.GET("/healthz", s.healthz)

	r.GET("/", s.page("home", "People"))
	r.GET("/signin", s.page("signin", "Sign in"))
	r.GET("/signup", s.page("signup", "Sign up"))
	r.GET("/person/:id", s.page("person", "Memorial"))
	r.GET("/person/:id/slideshow", s.page("slideshow", "Slideshow"))
	r.NoRoute(s.noRoute)

	return r
}
