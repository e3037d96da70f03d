// Package handlers serves the portfolio shell and the theme API.
package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/thatcatcamp/folio/internal/engine"
	"github.com/thatcatcamp/folio/internal/middleware"
	"github.com/thatcatcamp/folio/internal/sessions"
	"github.com/thatcatcamp/folio/internal/themes"
)

// Handler serves every route against the visitor's session.
type Handler struct {
	logger   zerolog.Logger
	sessions *sessions.Manager
	siteCSS  string
}

func New(logger zerolog.Logger, mgr *sessions.Manager) *Handler {
	return &Handler{
		logger:   logger,
		sessions: mgr,
		siteCSS:  GetSiteCSS(),
	}
}

// Register mounts the routes on r. Mutations go through limit when it is
// not nil. Visitor and CSRF middleware must already be installed on r.
func (h *Handler) Register(r gin.IRouter, limit gin.HandlerFunc) {
	if limit == nil {
		limit = func(c *gin.Context) { c.Next() }
	}

	r.GET("/health", h.Health)
	r.GET("/", h.Home)
	r.GET("/site.css", h.SiteCSS)
	r.GET("/theme.css", h.ThemeCSS)

	api := r.Group("/api")
	{
		api.GET("/themes", h.ListThemes)
		api.GET("/theme", h.State)
		api.POST("/theme", limit, h.SetTheme)
		api.POST("/mode", limit, h.SetMode)
	}
}

// SystemPreference reads the OS color scheme from the client hint header.
// Anything other than dark or light yields "".
func SystemPreference(r *http.Request) themes.ColorMode {
	raw := strings.ToLower(strings.Trim(strings.TrimSpace(r.Header.Get(middleware.PrefersColorSchemeHint)), `"`))
	mode, ok := themes.ParseColorMode(raw)
	if !ok || !mode.IsResolved() {
		return ""
	}
	return mode
}

// session returns the visitor's session. URL ?theme= and ?mode= only
// matter for a visitor without a live session.
func (h *Handler) session(c *gin.Context) (*sessions.Session, bool) {
	id := middleware.GetVisitorID(c)
	if id == "" {
		h.logger.Error().Str("path", c.Request.URL.Path).Msg("request without visitor id")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "no visitor"})
		return nil, false
	}
	params := engine.Params{
		Theme: c.Query("theme"),
		Mode:  c.Query("mode"),
	}
	return h.sessions.Acquire(id, params, SystemPreference(c.Request)), true
}

// Health reports liveness.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"service":  "folio",
		"sessions": h.sessions.Len(),
	})
}

// ThemeCSS renders the visitor's applied variables as a stylesheet.
func (h *Handler) ThemeCSS(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	c.Header("Cache-Control", "no-store")
	c.Header("Vary", "Cookie, "+middleware.PrefersColorSchemeHint)
	c.Data(http.StatusOK, "text/css; charset=utf-8", []byte(themes.GenerateCSS(s.Variables())))
}
