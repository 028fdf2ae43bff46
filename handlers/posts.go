package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/corkboard/corkboard/internal/posts"
	"github.com/corkboard/corkboard/internal/users"
	"github.com/corkboard/corkboard/pkg/metrics"
	"github.com/corkboard/corkboard/pkg/middleware"
)

// PostHandler holds the dependencies for the message-board routes.
type PostHandler struct {
	posts *posts.Service
	users *users.Service
}

func NewPostHandler(p *posts.Service, u *users.Service) *PostHandler {
	return &PostHandler{posts: p, users: u}
}

func (h *PostHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/", h.Home)
	rg.POST("/create", h.Create)
	rg.GET("/edit/:id", h.EditForm)
	rg.POST("/edit/:id", h.Edit)
	rg.GET("/delete/:id", h.Delete)
	rg.POST("/delete/:id", h.Delete)
	rg.GET("/user/:id", h.Profile)
}

// Home lists all posts, newest first.
func (h *PostHandler) Home(c *gin.Context) {
	list, err := h.posts.ListRecent(c.Request.Context())
	if err != nil {
		renderError(c, err)
		return
	}
	c.HTML(http.StatusOK, "index.html", gin.H{
		"Posts": list,
		"User":  middleware.CurrentUser(c),
		"Flash": takeFlash(c),
	})
}

// Create accepts the new-post form and redirects home. Authenticated
// requests post under their identity; anonymous ones under the form name.
func (h *PostHandler) Create(c *gin.Context) {
	name := c.PostForm("fname")
	message := c.PostForm("fmessage")

	if _, err := h.posts.Create(c.Request.Context(), middleware.CurrentIdentity(c), name, message); err != nil {
		renderError(c, err)
		return
	}
	metrics.PostsCreated.Inc()
	c.Redirect(http.StatusFound, "/")
}

// EditForm renders the edit page. An absent id still renders, with a
// missing-post notice instead of the form.
func (h *PostHandler) EditForm(c *gin.Context) {
	p, err := h.posts.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		renderError(c, err)
		return
	}
	c.HTML(http.StatusOK, "edit.html", gin.H{
		"Post": p,
		"User": middleware.CurrentUser(c),
	})
}

// Edit applies the edit form. Updating an absent id is a silent no-op and
// still redirects home.
func (h *PostHandler) Edit(c *gin.Context) {
	message := c.PostForm("fmessage")
	var name *string
	if v := c.PostForm("fname"); v != "" {
		name = &v
	}
	if err := h.posts.Update(c.Request.Context(), c.Param("id"), message, name); err != nil {
		renderError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/")
}

// Delete removes the post and redirects home. Idempotent.
func (h *PostHandler) Delete(c *gin.Context) {
	if err := h.posts.Delete(c.Request.Context(), c.Param("id")); err != nil {
		renderError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/")
}

// Profile renders a user page together with that user's posts. An unknown
// id renders with absent profile data.
func (h *PostHandler) Profile(c *gin.Context) {
	id := c.Param("id")
	owner, err := h.users.GetByID(c.Request.Context(), id)
	if err != nil {
		renderError(c, err)
		return
	}
	list, err := h.posts.ListByAuthor(c.Request.Context(), id)
	if err != nil {
		renderError(c, err)
		return
	}
	c.HTML(http.StatusOK, "user.html", gin.H{
		"Owner": owner,
		"Posts": list,
		"User":  middleware.CurrentUser(c),
	})
}
