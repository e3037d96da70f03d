package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
	"github.com/thatcatcamp/folio/internal/engine"
	"github.com/thatcatcamp/folio/internal/sessions"
	"github.com/thatcatcamp/folio/internal/themes"
)

type themeSummary struct {
	Name    string `json:"name"`
	Label   string `json:"label"`
	Primary string `json:"primary"`
	Accent  string `json:"accent"`
}

type stateResponse struct {
	Theme        string            `json:"theme"`
	Label        string            `json:"label"`
	ColorMode    string            `json:"colorMode"`
	ResolvedMode string            `json:"resolvedMode"`
	Variables    map[string]string `json:"variables"`
}

type setThemeRequest struct {
	Name string `json:"name" form:"name"`
}

type setModeRequest struct {
	Mode string `json:"mode" form:"mode"`
}

// ListThemes returns every registered theme in registry order.
func (h *Handler) ListThemes(c *gin.Context) {
	list := lo.Map(h.sessions.Registry().List(), func(t themes.Theme, _ int) themeSummary {
		return themeSummary{
			Name:    t.Name,
			Label:   t.Label,
			Primary: t.Colors.Primary,
			Accent:  t.Colors.Accent,
		}
	})
	c.JSON(http.StatusOK, gin.H{"themes": list})
}

// State returns the visitor's selection and applied variables.
func (h *Handler) State(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, snapshot(s))
}

// SetTheme switches the visitor's theme.
func (h *Handler) SetTheme(c *gin.Context) {
	var req setThemeRequest
	h.mutate(c, &req, func(e *engine.Engine) error {
		return e.SetTheme(strings.TrimSpace(req.Name))
	})
}

// SetMode switches the visitor's color mode.
func (h *Handler) SetMode(c *gin.Context) {
	var req setModeRequest
	h.mutate(c, &req, func(e *engine.Engine) error {
		return e.SetColorMode(req.Mode)
	})
}

// mutate binds req, runs fn on the session and answers in the caller's
// format: JSON callers get the new state or a 400, form posts are sent
// back to the page.
func (h *Handler) mutate(c *gin.Context, req any, fn func(e *engine.Engine) error) {
	s, ok := h.session(c)
	if !ok {
		return
	}

	err := c.ShouldBind(req)
	if err == nil {
		s.Do(func(e *engine.Engine) {
			err = fn(e)
		})
	}

	if !wantsJSON(c) {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, snapshot(s))
}

func wantsJSON(c *gin.Context) bool {
	return c.ContentType() == gin.MIMEJSON ||
		strings.Contains(c.GetHeader("Accept"), gin.MIMEJSON)
}

func snapshot(s *sessions.Session) stateResponse {
	var resp stateResponse
	s.Do(func(e *engine.Engine) {
		resp = stateResponse{
			Theme:        e.Theme().Name,
			Label:        e.Theme().Label,
			ColorMode:    string(e.ColorMode()),
			ResolvedMode: string(e.ResolvedMode()),
		}
	})
	resp.Variables = s.Variables()
	return resp
}
