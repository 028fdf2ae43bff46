package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/corkboard/corkboard/internal/config"
	"github.com/corkboard/corkboard/internal/models"
	"github.com/corkboard/corkboard/internal/sessions"
	"github.com/corkboard/corkboard/internal/tokens"
	"github.com/corkboard/corkboard/internal/users"
	"github.com/corkboard/corkboard/pkg/logger"
	"github.com/corkboard/corkboard/pkg/metrics"
	"github.com/corkboard/corkboard/pkg/middleware"
)

// AuthHandler holds the dependencies for signup, login and logout.
type AuthHandler struct {
	cfg      *config.Config
	users    *users.Service
	sessions *sessions.Service
}

func NewAuthHandler(cfg *config.Config, u *users.Service, s *sessions.Service) *AuthHandler {
	return &AuthHandler{cfg: cfg, users: u, sessions: s}
}

func (h *AuthHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/signup", h.SignupForm)
	rg.POST("/signup", h.Signup)
	rg.GET("/login", h.LoginForm)
	rg.POST("/login", h.Login)
	rg.GET("/logout", h.Logout)
	rg.GET("/protected", middleware.RequireAuth(), h.Protected)
}

// SignupForm renders the signup page; already authenticated users go home.
func (h *AuthHandler) SignupForm(c *gin.Context) {
	if middleware.CurrentUser(c) != nil {
		c.Redirect(http.StatusFound, "/")
		return
	}
	c.HTML(http.StatusOK, "signup.html", gin.H{"Flash": takeFlash(c)})
}

// Signup creates the identity, logs it in and sends the browser home.
func (h *AuthHandler) Signup(c *gin.Context) {
	email := c.PostForm("femail")
	name := c.PostForm("fname")
	pass := c.PostForm("fpassword")

	u, err := h.users.Register(c.Request.Context(), email, name, pass)
	if err != nil {
		if errors.Is(err, users.ErrDuplicateEmail) {
			setFlash(c, "An account with that email already exists. Log in instead.")
			c.Redirect(http.StatusFound, "/login")
			return
		}
		renderError(c, err)
		return
	}
	metrics.Signups.Inc()

	if err := h.establishSession(c, u); err != nil {
		renderError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/")
}

// LoginForm renders the login page; already authenticated users go home.
func (h *AuthHandler) LoginForm(c *gin.Context) {
	if middleware.CurrentUser(c) != nil {
		c.Redirect(http.StatusFound, "/")
		return
	}
	c.HTML(http.StatusOK, "login.html", gin.H{"Flash": takeFlash(c)})
}

func (h *AuthHandler) Login(c *gin.Context) {
	email := c.PostForm("femail")
	pass := c.PostForm("fpassword")

	u, err := h.users.Authenticate(c.Request.Context(), email, pass)
	if err != nil {
		if errors.Is(err, users.ErrInvalidCredential) {
			metrics.LoginFailures.Inc()
			setFlash(c, "Wrong email or password.")
			c.Redirect(http.StatusFound, "/login")
			return
		}
		renderError(c, err)
		return
	}

	if err := h.establishSession(c, u); err != nil {
		renderError(c, err)
		return
	}
	metrics.Logins.Inc()
	c.Redirect(http.StatusFound, "/")
}

// Logout invalidates the server-side session and clears the cookie. Always
// redirects home, even when no valid session was present.
func (h *AuthHandler) Logout(c *gin.Context) {
	if raw, err := c.Cookie(middleware.SessionCookie); err == nil && raw != "" {
		if sid, err := tokens.Parse(h.cfg.Session.Secret, raw); err == nil {
			if err := h.sessions.Delete(c.Request.Context(), sid); err != nil {
				logger.Warnf("failed to delete session: %v", err)
			}
		}
	}
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/")
}

// Protected is the example route that requires an authenticated identity.
func (h *AuthHandler) Protected(c *gin.Context) {
	c.HTML(http.StatusOK, "protected.html", gin.H{"User": middleware.CurrentUser(c)})
}

func (h *AuthHandler) establishSession(c *gin.Context, u *models.User) error {
	sid, err := h.sessions.Create(c.Request.Context(), u.ID, h.cfg.Session.TTL)
	if err != nil {
		return err
	}
	raw, err := tokens.Sign(h.cfg.Session.Secret, sid, h.cfg.Session.TTL)
	if err != nil {
		return err
	}
	c.SetCookie(middleware.SessionCookie, raw, int(h.cfg.Session.TTL.Seconds()), "/", "", false, true)
	return nil
}
