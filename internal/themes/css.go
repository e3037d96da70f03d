// SPDX-License-Identifier: MIT
package themes

import (
	"maps"
	"slices"
	"strings"
)

// GenerateCSS renders the custom properties in vars as a :root block
// followed by base element styles that consume them. Metadata entries
// (data-theme, data-mode) select color-scheme but are not emitted as
// properties.
func GenerateCSS(vars map[string]string) string {
	var b strings.Builder

	b.WriteString(":root {\n")
	if mode := vars[AttrMode]; mode != "" {
		b.WriteString("  color-scheme: " + mode + ";\n")
	}
	for _, name := range slices.Sorted(maps.Keys(vars)) {
		if !strings.HasPrefix(name, "--") {
			continue
		}
		b.WriteString("  " + name + ": " + vars[name] + ";\n")
	}
	b.WriteString("}\n")
	b.WriteString(baseCSS)

	return b.String()
}

const baseCSS = `
/* Base element styles */
body {
  background-color: var(--color-bg-main);
  color: var(--color-text-primary);
  transition: background-color 0.2s, color 0.2s;
}

a {
  color: var(--color-primary-ink);
  text-decoration: none;
}

a:hover {
  text-decoration: underline;
}

/* Button styles */
button, .btn {
  background-color: var(--color-primary);
  color: var(--color-on-primary);
  border: none;
  padding: 8px 16px;
  border-radius: 4px;
  cursor: pointer;
  transition: opacity 0.2s;
}

button:hover, .btn:hover {
  opacity: 0.9;
}

button:focus-visible, .btn:focus-visible {
  outline: none;
  box-shadow: 0 0 0 3px rgba(var(--color-primary-rgb), 0.35);
}

/* Card/surface styles */
.card {
  background-color: var(--color-bg-card);
  border: 1px solid var(--color-border-subtle);
  border-radius: 8px;
  padding: 16px;
}

.card:hover {
  background-color: var(--color-bg-card-hover);
  border-color: var(--color-border-hover);
}

/* Accent chips */
.chip {
  background-color: var(--color-accent-surface);
  color: var(--color-accent-ink);
  border-radius: 999px;
  padding: 2px 10px;
}

.glow {
  box-shadow: 0 0 24px rgba(var(--color-accent-teal-rgb), 0.25);
}

h1, h2, h3, h4, h5, h6 {
  color: var(--color-text-primary);
}

.text-secondary {
  color: var(--color-text-secondary);
}

.text-muted, .muted {
  color: var(--color-text-muted);
}

input, select {
  border: 1px solid var(--color-border-subtle);
  background-color: var(--color-bg-card);
  color: var(--color-text-primary);
  padding: 8px;
  border-radius: 4px;
}

input:focus, select:focus {
  outline: none;
  border-color: var(--color-border-hover);
  box-shadow: 0 0 0 3px rgba(var(--color-accent-rgb), 0.15);
}
`
