package handlers

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/corkboard/corkboard/internal/config"
	"github.com/corkboard/corkboard/internal/posts"
	"github.com/corkboard/corkboard/internal/sessions"
	"github.com/corkboard/corkboard/internal/users"
	"github.com/corkboard/corkboard/pkg/logger"
	"github.com/corkboard/corkboard/pkg/middleware"
)

//go:embed templates/*.html
var templateFS embed.FS

// Deps carries the collaborators for all routes. Everything is constructed
// once in main and injected here; handlers never reach for globals.
type Deps struct {
	Cfg      *config.Config
	Users    *users.Service
	Sessions *sessions.Service
	Posts    *posts.Service
}

// NewRouter builds the gin engine with all application routes registered.
func NewRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.CustomRecovery(renderError))
	r.SetHTMLTemplate(template.Must(template.ParseFS(templateFS, "templates/*.html")))
	r.Use(middleware.Identity(d.Cfg.Session.Secret, d.Sessions, d.Users))

	rg := r.Group("/")
	NewPostHandler(d.Posts, d.Users).Register(rg)
	NewAuthHandler(d.Cfg, d.Users, d.Sessions).Register(rg)
	return r
}

// renderError is the catch-all used for panics and store failures: a generic
// error page carrying the failure details. Development posture only.
func renderError(c *gin.Context, err any) {
	logger.Errorf("request %s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)
	c.HTML(http.StatusInternalServerError, "error.html", gin.H{"Error": fmt.Sprintf("%v", err)})
	c.Abort()
}
