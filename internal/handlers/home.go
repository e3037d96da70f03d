package handlers

import (
	"bytes"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/thatcatcamp/folio/internal/engine"
	"github.com/thatcatcamp/folio/internal/middleware"
	"github.com/thatcatcamp/folio/internal/themes"
)

type homeOption struct {
	Value    string
	Label    string
	Selected bool
}

type homePage struct {
	Theme        string
	ResolvedMode string
	Themes       []homeOption
	Modes        []homeOption
	CSRF         template.HTML
}

var homeTemplate = template.Must(template.New("home").Parse(`<!DOCTYPE html>
<html lang="en" data-theme="{{.Theme}}" data-mode="{{.ResolvedMode}}">
<head>
	<meta charset="utf-8">
	<meta name="viewport" content="width=device-width, initial-scale=1">
	<meta name="color-scheme" content="light dark">
	<title>Portfolio</title>
	<link rel="stylesheet" href="/site.css">
	<link rel="stylesheet" href="/theme.css">
</head>
<body>
	<header class="site-header">
		<div class="site-header-content">
			<span class="site-header-logo">Portfolio</span>
			<nav class="switcher" aria-label="Appearance">
				<form method="POST" action="/api/theme">
					{{.CSRF}}
					{{range .Themes}}<button type="submit" name="name" value="{{.Value}}" aria-pressed="{{.Selected}}">{{.Label}}</button>{{end}}
				</form>
				<form method="POST" action="/api/mode">
					{{.CSRF}}
					{{range .Modes}}<button type="submit" name="mode" value="{{.Value}}" aria-pressed="{{.Selected}}">{{.Label}}</button>{{end}}
				</form>
			</nav>
		</div>
	</header>
	<section class="hero">
		<h1>Selected work</h1>
		<p class="lede">Interfaces, tools and the occasional typeface.</p>
		<a class="btn" href="#projects">See projects</a>
	</section>
	<section class="projects" id="projects">
		<article class="card">
			<span class="chip">Design system</span>
			<h2>Tidewater</h2>
			<p>Component library with contrast-checked color tokens.</p>
		</article>
		<article class="card">
			<span class="chip">Data viz</span>
			<h2>Harbor Lights</h2>
			<p class="text-secondary">Interactive shipping traffic maps.</p>
		</article>
		<article class="card">
			<span class="chip">Tooling</span>
			<h2>Sift</h2>
			<p class="text-muted">Log search for small teams.</p>
		</article>
	</section>
	<footer class="site-footer">Theme: {{.Theme}} ({{.ResolvedMode}})</footer>
</body>
</html>
`))

var modeLabels = []homeOption{
	{Value: string(themes.ModeLight), Label: "Light"},
	{Value: string(themes.ModeDark), Label: "Dark"},
	{Value: string(themes.ModeSystem), Label: "System"},
}

// Home renders the portfolio shell with the theme switcher. The html
// element carries the visitor's data-theme and data-mode.
func (h *Handler) Home(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}

	page := homePage{CSRF: template.HTML(middleware.GetCSRFTokenHTML(c))}
	s.Do(func(e *engine.Engine) {
		page.Theme = e.Theme().Name
		page.ResolvedMode = string(e.ResolvedMode())
		for _, t := range h.sessions.Registry().List() {
			page.Themes = append(page.Themes, homeOption{
				Value:    t.Name,
				Label:    t.Label,
				Selected: t.Name == page.Theme,
			})
		}
		for _, m := range modeLabels {
			m.Selected = m.Value == string(e.ColorMode())
			page.Modes = append(page.Modes, m)
		}
	})

	var buf bytes.Buffer
	if err := homeTemplate.Execute(&buf, page); err != nil {
		h.logger.Error().Err(err).Msg("render home")
		c.String(http.StatusInternalServerError, "Failed to render page")
		return
	}
	c.Header("Vary", "Cookie, "+middleware.PrefersColorSchemeHint)
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}
