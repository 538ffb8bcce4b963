// README: HTTP surface of the fare form; registers routes and middleware.
package http

import (
	"embed"
	"html/template"
	"log"
	"net/http"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"taxifare/internal/http/handlers"
	"taxifare/internal/http/middleware"
	"taxifare/internal/modules/form"
)

//go:embed templates/*.html
var templateFS embed.FS

type ServerDeps struct {
	Shell          *form.Shell
	AllowedOrigins []string
}

type Server struct {
	shell          *form.Shell
	allowedOrigins []string
}

func NewServer(deps ServerDeps) *Server {
	return &Server{shell: deps.Shell, allowedOrigins: deps.AllowedOrigins}
}

func (s *Server) Routes() http.Handler {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logging(), middleware.Recovery())
	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("[HTTP] warning: failed to set trusted proxies: %v", err)
	}
	r.SetHTMLTemplate(template.Must(template.ParseFS(templateFS, "templates/*.html")))

	formHandler := handlers.NewFormHandler(s.shell)
	r.GET("/", formHandler.Show)
	r.POST("/", formHandler.Submit)

	api := r.Group("/api")
	if c, ok := s.corsConfig(); ok {
		api.Use(cors.New(c))
	}
	predictHandler := handlers.NewPredictHandler(s.shell)
	api.GET("/demo", predictHandler.Demo)
	api.GET("/predict", predictHandler.Predict)
	api.OPTIONS("/*path", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "route not found", "path": c.Request.URL.Path})
	})
	return r
}

// corsConfig reports false when no origins are configured; "*" allows all.
func (s *Server) corsConfig() (cors.Config, bool) {
	if len(s.allowedOrigins) == 0 {
		return cors.Config{}, false
	}
	c := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
		ExposeHeaders: []string{middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if slices.Contains(s.allowedOrigins, "*") {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = s.allowedOrigins
	}
	return c, true
}
