package icons

import (
	"html"
	"strings"
)

// SVG returns decorative inline markup for id, or "" when id is unknown.
// The icon inherits the surrounding text color.
func SVG(id ID, class string) string {
	def, ok := Lookup(id)
	if !ok {
		return ""
	}
	var b strings.Builder
	b.WriteString(`<svg`)
	if class = strings.TrimSpace(class); class != "" {
		b.WriteString(` class="`)
		b.WriteString(html.EscapeString(class))
		b.WriteString(`"`)
	}
	b.WriteString(` viewBox="0 0 24 24" fill="none" stroke="currentColor" aria-hidden="true">`)
	for _, path := range def.Paths {
		b.WriteString(`<path stroke-linecap="round" stroke-linejoin="round" stroke-width="1.5" d="`)
		b.WriteString(path)
		b.WriteString(`"/>`)
	}
	b.WriteString(`</svg>`)
	return b.String()
}
