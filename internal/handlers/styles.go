// SPDX-License-Identifier: MIT
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Layout tokens. Colors are not defined here: they come from /theme.css.
const (
	FontFamily  = `-apple-system, BlinkMacSystemFont, "Segoe UI", sans-serif`
	MaxWidth    = "1100px"
	RadiusSmall = "4px"
	RadiusBase  = "8px"
)

// GetSiteCSS returns the layout stylesheet. It only references the
// --color-* properties the theme stylesheet defines.
func GetSiteCSS() string {
	return `
:root {
	--font-family: ` + FontFamily + `;
	--max-width: ` + MaxWidth + `;
	--spacing-xs: 4px;
	--spacing-sm: 8px;
	--spacing-base: 16px;
	--spacing-md: 24px;
	--spacing-lg: 40px;
	--radius-sm: ` + RadiusSmall + `;
	--radius-base: ` + RadiusBase + `;
	--transition: 200ms ease;
}

* { box-sizing: border-box; }

body {
	font-family: var(--font-family);
	margin: 0;
	padding: 0;
	line-height: 1.5;
}

h1 { font-size: 32px; font-weight: 700; margin: 0 0 var(--spacing-sm); }
h2 { font-size: 20px; font-weight: 600; margin: 0 0 var(--spacing-sm); }
p { font-size: 16px; margin: 0 0 var(--spacing-base); }

/* Site Header */
.site-header {
	background: var(--color-bg-card);
	border-bottom: 1px solid var(--color-border-subtle);
	position: sticky;
	top: 0;
	z-index: 100;
}

.site-header-content {
	max-width: var(--max-width);
	margin: 0 auto;
	padding: var(--spacing-base) var(--spacing-lg);
	display: flex;
	justify-content: space-between;
	align-items: center;
}

.site-header-logo {
	font-size: 20px;
	font-weight: 700;
	color: var(--color-text-primary);
}

/* Hero */
.hero {
	max-width: var(--max-width);
	margin: 0 auto;
	padding: var(--spacing-lg);
}

.hero .lede { color: var(--color-text-secondary); font-size: 18px; }

/* Project grid */
.projects {
	max-width: var(--max-width);
	margin: 0 auto;
	padding: 0 var(--spacing-lg) var(--spacing-lg);
	display: grid;
	grid-template-columns: repeat(auto-fill, minmax(280px, 1fr));
	gap: var(--spacing-md);
}

.projects .card p { color: var(--color-text-secondary); }
.projects .card .chip { font-size: 13px; }

/* Theme switcher */
.switcher {
	display: flex;
	flex-wrap: wrap;
	gap: var(--spacing-sm);
	align-items: center;
}

.switcher form { display: inline-flex; gap: var(--spacing-xs); margin: 0; }

.switcher button {
	font-family: inherit;
	font-size: 13px;
	padding: var(--spacing-xs) var(--spacing-sm);
	border-radius: var(--radius-sm);
}

.switcher button[aria-pressed="true"] {
	outline: 2px solid var(--color-accent-ink);
	outline-offset: 2px;
}

.site-footer {
	max-width: var(--max-width);
	margin: 0 auto;
	padding: var(--spacing-md) var(--spacing-lg);
	border-top: 1px solid var(--color-border-subtle);
	color: var(--color-text-muted);
	font-size: 14px;
}

/* Mobile Responsive */
@media (max-width: 600px) {
	.site-header-content {
		flex-direction: column;
		gap: var(--spacing-base);
		padding: var(--spacing-base);
	}

	.hero, .projects { padding-left: var(--spacing-base); padding-right: var(--spacing-base); }
}
`
}

// SiteCSS serves the layout stylesheet.
func (h *Handler) SiteCSS(c *gin.Context) {
	c.Header("Cache-Control", "public, max-age=3600")
	c.Data(http.StatusOK, "text/css; charset=utf-8", []byte(h.siteCSS))
}
